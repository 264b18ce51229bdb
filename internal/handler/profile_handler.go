package handler

import (
	"net/http"

	"github.com/labstack/echo/v4"

	"github.com/meselghea/teledoc-app/internal/service"
)

// ProfileHandler handles the authenticated user's profile endpoints.
type ProfileHandler struct {
	profileService service.ProfileService
}

// NewProfileHandler creates a new profile handler.
func NewProfileHandler(profileService service.ProfileService) *ProfileHandler {
	return &ProfileHandler{profileService: profileService}
}

// UpdateProfileRequest is the allow-listed partial update body. Fields absent
// from this struct (id, role) are silently dropped by binding.
type UpdateProfileRequest struct {
	Name      *string `json:"name" validate:"omitempty,min=1"`
	Email     *string `json:"email" validate:"omitempty,email"`
	Phone     *string `json:"phone" validate:"omitempty,max=32"`
	Gender    *string `json:"gender" validate:"omitempty,oneof=M F"`
	BirthDate *string `json:"birthDate"`
	Image     *string `json:"image" validate:"omitempty,url"`
	Password  *string `json:"password" validate:"omitempty,min=6"`
}

// userEnvelope nests the user under data per the wire contract.
type userEnvelope struct {
	User interface{} `json:"user"`
}

// GetMe godoc
// @Summary Get the authenticated user's profile
// @Tags users
// @Produce json
// @Security BearerAuth
// @Success 200 {object} errors.Envelope
// @Failure 401 {object} errors.Envelope
// @Failure 404 {object} errors.Envelope
// @Failure 500 {object} errors.Envelope
// @Router /users/me [get]
func (h *ProfileHandler) GetMe(c echo.Context) error {
	claims, err := currentClaims(c)
	if err != nil {
		return fail(c, err)
	}

	user, err := h.profileService.GetProfile(c.Request().Context(), claims.UserID)
	if err != nil {
		return fail(c, err)
	}

	return success(c, http.StatusOK, userEnvelope{User: user})
}

// UpdateMe godoc
// @Summary Partially update the authenticated user's profile
// @Tags users
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param request body UpdateProfileRequest true "Fields to update"
// @Success 200 {object} errors.Envelope
// @Failure 400 {object} errors.Envelope
// @Failure 401 {object} errors.Envelope
// @Failure 404 {object} errors.Envelope
// @Failure 500 {object} errors.Envelope
// @Router /users/me [patch]
func (h *ProfileHandler) UpdateMe(c echo.Context) error {
	claims, err := currentClaims(c)
	if err != nil {
		return fail(c, err)
	}

	var req UpdateProfileRequest
	if err := c.Bind(&req); err != nil {
		return badRequest(c, "invalid request body")
	}
	if err := c.Validate(&req); err != nil {
		return badRequest(c, err.Error())
	}

	user, err := h.profileService.UpdateProfile(c.Request().Context(), claims.UserID, service.UpdateProfileInput{
		Name:      req.Name,
		Email:     req.Email,
		Phone:     req.Phone,
		Gender:    req.Gender,
		BirthDate: req.BirthDate,
		Image:     req.Image,
		Password:  req.Password,
	})
	if err != nil {
		return fail(c, err)
	}

	return success(c, http.StatusOK, userEnvelope{User: user})
}

// DeleteMe godoc
// @Summary Delete the authenticated user's account
// @Tags users
// @Security BearerAuth
// @Success 204 "No Content"
// @Failure 401 {object} errors.Envelope
// @Failure 404 {object} errors.Envelope
// @Failure 500 {object} errors.Envelope
// @Router /users/me [delete]
func (h *ProfileHandler) DeleteMe(c echo.Context) error {
	claims, err := currentClaims(c)
	if err != nil {
		return fail(c, err)
	}

	if err := h.profileService.DeleteProfile(c.Request().Context(), claims.UserID); err != nil {
		return fail(c, err)
	}

	return c.NoContent(http.StatusNoContent)
}
