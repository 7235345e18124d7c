package handler

import (
	"github.com/gofiber/fiber/v3"

	"github.com/Achyut17/Mrbeast-Dashboard/internal/middleware"
	"github.com/Achyut17/Mrbeast-Dashboard/internal/service"
)

type ChannelHandler struct {
	svc *service.ChannelService
}

func NewChannelHandler(svc *service.ChannelService) *ChannelHandler {
	return &ChannelHandler{svc: svc}
}

// GetReport handles GET /api/channel
func (h *ChannelHandler) GetReport(c fiber.Ctx) error {
	w, errMsg := parseWindow(c)
	if errMsg != "" {
		return middleware.ErrorResponse(c, fiber.StatusBadRequest, "INVALID_FIELD", errMsg)
	}

	report, err := h.svc.Report(c.Context(), w)
	if err != nil {
		return middleware.ErrorResponse(c, fiber.StatusInternalServerError, "INTERNAL_ERROR", "Failed to build channel report")
	}

	return c.JSON(report)
}
