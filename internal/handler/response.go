package handler

import (
	"net/http"

	"github.com/golang-jwt/jwt/v5"
	"github.com/labstack/echo/v4"

	"github.com/meselghea/teledoc-app/internal/auth"
	"github.com/meselghea/teledoc-app/internal/errors"
)

// success writes the uniform success envelope.
func success(c echo.Context, code int, data interface{}) error {
	return c.JSON(code, errors.Envelope{
		Status: "success",
		Data:   data,
	})
}

// fail maps a domain error onto its HTTP envelope.
func fail(c echo.Context, err error) error {
	httpErr := errors.MapErrorToHTTP(err)
	return c.JSON(httpErr.StatusCode, httpErr.Envelope())
}

// badRequest writes a 400 fail envelope with the given message.
func badRequest(c echo.Context, message string) error {
	return c.JSON(http.StatusBadRequest, errors.Envelope{
		Status:  "fail",
		Message: message,
	})
}

// currentClaims resolves the session claims placed in context by the JWT
// middleware. Absence means the request never passed authentication.
func currentClaims(c echo.Context) (*auth.Claims, error) {
	token, ok := c.Get("user").(*jwt.Token)
	if !ok {
		return nil, errors.ErrNotLoggedIn
	}
	claims, ok := token.Claims.(*auth.Claims)
	if !ok {
		return nil, errors.ErrNotLoggedIn
	}
	return claims, nil
}
