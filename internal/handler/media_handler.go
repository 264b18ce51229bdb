package handler

import (
	"net/http"

	"github.com/labstack/echo/v4"

	"github.com/meselghea/teledoc-app/internal/service"
)

// MediaHandler issues client-upload credentials for the image service.
type MediaHandler struct {
	mediaService service.MediaService
}

// NewMediaHandler creates a new media handler.
func NewMediaHandler(mediaService service.MediaService) *MediaHandler {
	return &MediaHandler{mediaService: mediaService}
}

// UploadAuth godoc
// @Summary Get signed parameters for a direct image upload
// @Tags media
// @Produce json
// @Security BearerAuth
// @Success 200 {object} errors.Envelope
// @Failure 401 {object} errors.Envelope
// @Router /media/auth [get]
func (h *MediaHandler) UploadAuth(c echo.Context) error {
	if _, err := currentClaims(c); err != nil {
		return fail(c, err)
	}
	return success(c, http.StatusOK, h.mediaService.UploadAuth())
}
