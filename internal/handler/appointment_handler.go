package handler

import (
	"net/http"

	"github.com/google/uuid"
	"github.com/labstack/echo/v4"

	"github.com/meselghea/teledoc-app/internal/model"
	"github.com/meselghea/teledoc-app/internal/service"
)

// AppointmentHandler handles appointment card endpoints.
type AppointmentHandler struct {
	appointmentService service.AppointmentService
}

// NewAppointmentHandler creates a new appointment handler.
func NewAppointmentHandler(appointmentService service.AppointmentService) *AppointmentHandler {
	return &AppointmentHandler{appointmentService: appointmentService}
}

// ChangeStatusRequest asks for a transition by status name. The reason is
// required only when rejecting.
type ChangeStatusRequest struct {
	Status          string `json:"status" validate:"required,oneof=accepted rejected"`
	RejectionReason string `json:"rejectionReason"`
}

// List godoc
// @Summary List the authenticated doctor's appointment cards
// @Tags appointments
// @Produce json
// @Security BearerAuth
// @Success 200 {object} errors.Envelope
// @Failure 401 {object} errors.Envelope
// @Failure 500 {object} errors.Envelope
// @Router /appointments [get]
func (h *AppointmentHandler) List(c echo.Context) error {
	claims, err := currentClaims(c)
	if err != nil {
		return fail(c, err)
	}

	cards, err := h.appointmentService.ListForDoctor(c.Request().Context(), claims.UserID)
	if err != nil {
		return fail(c, err)
	}

	return success(c, http.StatusOK, map[string]interface{}{"appointments": cards})
}

// Get godoc
// @Summary Get one appointment card
// @Tags appointments
// @Produce json
// @Security BearerAuth
// @Param id path string true "Appointment ID"
// @Success 200 {object} errors.Envelope
// @Failure 400 {object} errors.Envelope
// @Failure 401 {object} errors.Envelope
// @Failure 403 {object} errors.Envelope
// @Failure 404 {object} errors.Envelope
// @Failure 500 {object} errors.Envelope
// @Router /appointment/{id} [get]
func (h *AppointmentHandler) Get(c echo.Context) error {
	claims, err := currentClaims(c)
	if err != nil {
		return fail(c, err)
	}

	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		return badRequest(c, "invalid appointment id")
	}

	card, err := h.appointmentService.GetAppointment(c.Request().Context(), id, claims.UserID)
	if err != nil {
		return fail(c, err)
	}

	return success(c, http.StatusOK, map[string]interface{}{"appointment": card})
}

// ChangeStatus godoc
// @Summary Accept or reject a pending appointment
// @Tags appointments
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param id path string true "Appointment ID"
// @Param request body ChangeStatusRequest true "Target status"
// @Success 200 {object} errors.Envelope
// @Failure 400 {object} errors.Envelope
// @Failure 401 {object} errors.Envelope
// @Failure 403 {object} errors.Envelope
// @Failure 404 {object} errors.Envelope
// @Failure 409 {object} errors.Envelope
// @Failure 500 {object} errors.Envelope
// @Router /appointment/{id} [patch]
func (h *AppointmentHandler) ChangeStatus(c echo.Context) error {
	claims, err := currentClaims(c)
	if err != nil {
		return fail(c, err)
	}

	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		return badRequest(c, "invalid appointment id")
	}

	var req ChangeStatusRequest
	if err := c.Bind(&req); err != nil {
		return badRequest(c, "invalid request body")
	}
	if err := c.Validate(&req); err != nil {
		return badRequest(c, err.Error())
	}

	card, err := h.appointmentService.ChangeStatus(
		c.Request().Context(),
		id,
		claims.UserID,
		model.StatusName(req.Status),
		req.RejectionReason,
	)
	if err != nil {
		return fail(c, err)
	}

	return success(c, http.StatusOK, map[string]interface{}{"appointment": card})
}
