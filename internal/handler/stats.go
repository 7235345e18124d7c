package handler

import (
	"github.com/gofiber/fiber/v3"

	"github.com/Achyut17/Mrbeast-Dashboard/internal/middleware"
	"github.com/Achyut17/Mrbeast-Dashboard/internal/service"
)

type StatsHandler struct {
	svc *service.ChannelService
}

func NewStatsHandler(svc *service.ChannelService) *StatsHandler {
	return &StatsHandler{svc: svc}
}

// GetCorrelations handles GET /api/stats/correlations
func (h *StatsHandler) GetCorrelations(c fiber.Ctx) error {
	w, errMsg := parseWindow(c)
	if errMsg != "" {
		return middleware.ErrorResponse(c, fiber.StatusBadRequest, "INVALID_FIELD", errMsg)
	}

	report, err := h.svc.MetricCorrelations(c.Context(), w)
	if err != nil {
		return middleware.ErrorResponse(c, fiber.StatusInternalServerError, "INTERNAL_ERROR", "Failed to compute correlations")
	}

	return c.JSON(report)
}
