package router

import (
	"net/http"

	"github.com/go-playground/validator/v10"
	"github.com/golang-jwt/jwt/v5"
	echojwt "github.com/labstack/echo-jwt/v4"
	"github.com/labstack/echo/v4"
	"github.com/labstack/echo/v4/middleware"
	echoSwagger "github.com/swaggo/echo-swagger"

	"github.com/meselghea/teledoc-app/internal/auth"
	"github.com/meselghea/teledoc-app/internal/config"
	"github.com/meselghea/teledoc-app/internal/errors"
	"github.com/meselghea/teledoc-app/internal/handler"
)

// Register wires routes and middleware.
func Register(
	e *echo.Echo,
	cfg *config.Config,
	authHandler *handler.AuthHandler,
	profileHandler *handler.ProfileHandler,
	appointmentHandler *handler.AppointmentHandler,
	doctorHandler *handler.DoctorHandler,
	mediaHandler *handler.MediaHandler,
) {
	e.Use(middleware.Recover())

	// Add validator
	e.Validator = &CustomValidator{validator: validator.New()}

	e.GET("/healthz", func(c echo.Context) error {
		return c.String(http.StatusOK, "ok")
	})

	e.GET("/swagger/*", echoSwagger.WrapHandler)

	api := e.Group("/api")

	// Public routes
	api.POST("/auth/register", authHandler.Register)
	api.POST("/auth/login", authHandler.Login)
	api.POST("/auth/refresh", authHandler.Refresh)
	api.POST("/auth/logout", authHandler.Logout)

	// Secured routes (require JWT authentication)
	secured := api.Group("", echojwt.WithConfig(echojwt.Config{
		SigningKey:  []byte(cfg.JWTSecret),
		TokenLookup: "header:" + echo.HeaderAuthorization,
		NewClaimsFunc: func(c echo.Context) jwt.Claims {
			return new(auth.Claims)
		},
		ErrorHandler: func(c echo.Context, err error) error {
			httpErr := errors.MapErrorToHTTP(errors.ErrNotLoggedIn)
			return c.JSON(httpErr.StatusCode, httpErr.Envelope())
		},
	}))

	// Profile routes
	secured.GET("/users/me", profileHandler.GetMe)
	secured.PATCH("/users/me", profileHandler.UpdateMe)
	secured.DELETE("/users/me", profileHandler.DeleteMe)

	// Appointment routes
	secured.GET("/appointments", appointmentHandler.List)
	secured.GET("/appointment/:id", appointmentHandler.Get)
	secured.PATCH("/appointment/:id", appointmentHandler.ChangeStatus)

	// Doctor sub-profile routes
	secured.PATCH("/doctor/:id", doctorHandler.Update)

	// Media upload credentials
	secured.GET("/media/auth", mediaHandler.UploadAuth)
}

// CustomValidator wraps validator for Echo.
type CustomValidator struct {
	validator *validator.Validate
}

// Validate implements echo.Validator interface.
func (cv *CustomValidator) Validate(i interface{}) error {
	return cv.validator.Struct(i)
}
