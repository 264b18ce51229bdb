package handler

import (
	"net/http"

	"github.com/google/uuid"
	"github.com/labstack/echo/v4"
	"github.com/shopspring/decimal"

	"github.com/meselghea/teledoc-app/internal/service"
)

// DoctorHandler handles doctor sub-profile endpoints.
type DoctorHandler struct {
	doctorService service.DoctorService
}

// NewDoctorHandler creates a new doctor handler.
func NewDoctorHandler(doctorService service.DoctorService) *DoctorHandler {
	return &DoctorHandler{doctorService: doctorService}
}

// UpdateDoctorRequest is the partial update body for a doctor sub-profile.
type UpdateDoctorRequest struct {
	StrNumber       *string `json:"strNumber" validate:"omitempty,max=64"`
	Username        *string `json:"username" validate:"omitempty,min=1"`
	Specialist      *string `json:"specialist" validate:"omitempty,min=1"`
	ConsultationFee *string `json:"consultationFee"`
}

// Update godoc
// @Summary Update the authenticated doctor's sub-profile
// @Tags doctors
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param id path string true "User ID of the doctor"
// @Param request body UpdateDoctorRequest true "Fields to update"
// @Success 200 {object} errors.Envelope
// @Failure 400 {object} errors.Envelope
// @Failure 401 {object} errors.Envelope
// @Failure 403 {object} errors.Envelope
// @Failure 404 {object} errors.Envelope
// @Failure 500 {object} errors.Envelope
// @Router /doctor/{id} [patch]
func (h *DoctorHandler) Update(c echo.Context) error {
	claims, err := currentClaims(c)
	if err != nil {
		return fail(c, err)
	}

	userID, err := uuid.Parse(c.Param("id"))
	if err != nil {
		return badRequest(c, "invalid user id")
	}

	var req UpdateDoctorRequest
	if err := c.Bind(&req); err != nil {
		return badRequest(c, "invalid request body")
	}
	if err := c.Validate(&req); err != nil {
		return badRequest(c, err.Error())
	}

	input := service.UpdateDoctorInput{
		StrNumber:  req.StrNumber,
		Username:   req.Username,
		Specialist: req.Specialist,
	}
	if req.ConsultationFee != nil {
		fee, err := decimal.NewFromString(*req.ConsultationFee)
		if err != nil {
			return badRequest(c, "invalid consultation fee")
		}
		input.ConsultationFee = &fee
	}

	doctor, err := h.doctorService.UpdateDoctor(c.Request().Context(), claims.UserID, userID, input)
	if err != nil {
		return fail(c, err)
	}

	return success(c, http.StatusOK, map[string]interface{}{"doctor": doctor})
}
