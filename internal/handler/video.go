package handler

import (
	"github.com/gofiber/fiber/v3"

	"github.com/Achyut17/Mrbeast-Dashboard/internal/middleware"
	"github.com/Achyut17/Mrbeast-Dashboard/internal/service"
)

type VideoHandler struct {
	svc *service.ChannelService
}

func NewVideoHandler(svc *service.ChannelService) *VideoHandler {
	return &VideoHandler{svc: svc}
}

// List handles GET /api/videos
func (h *VideoHandler) List(c fiber.Ctx) error {
	w, errMsg := parseWindow(c)
	if errMsg != "" {
		return middleware.ErrorResponse(c, fiber.StatusBadRequest, "INVALID_FIELD", errMsg)
	}

	minViews, errMsg := middleware.ValidateMinViews(c.Query("minViews"))
	if errMsg != "" {
		return middleware.ErrorResponse(c, fiber.StatusBadRequest, "INVALID_FIELD", errMsg)
	}

	sortKey, err := service.ParseSortKey(c.Query("sort"))
	if err != nil {
		return middleware.ErrorResponse(c, fiber.StatusBadRequest, "INVALID_FIELD", err.Error())
	}

	report, err := h.svc.Videos(c.Context(), w, minViews, sortKey)
	if err != nil {
		return middleware.ErrorResponse(c, fiber.StatusInternalServerError, "INTERNAL_ERROR", "Failed to list videos")
	}

	return c.JSON(report)
}

// Top handles GET /api/videos/top
func (h *VideoHandler) Top(c fiber.Ctx) error {
	w, errMsg := parseWindow(c)
	if errMsg != "" {
		return middleware.ErrorResponse(c, fiber.StatusBadRequest, "INVALID_FIELD", errMsg)
	}

	metric, err := service.ParseMetric(c.Query("metric"))
	if err != nil {
		return middleware.ErrorResponse(c, fiber.StatusBadRequest, "INVALID_FIELD", err.Error())
	}

	limit, errMsg := middleware.ValidateLimit(c.Query("limit"), 10, 50)
	if errMsg != "" {
		return middleware.ErrorResponse(c, fiber.StatusBadRequest, "INVALID_FIELD", errMsg)
	}

	report, err := h.svc.TopVideos(c.Context(), w, metric, limit)
	if err != nil {
		return middleware.ErrorResponse(c, fiber.StatusInternalServerError, "INTERNAL_ERROR", "Failed to rank videos")
	}

	return c.JSON(report)
}

// Comments handles GET /api/videos/:videoId/comments
func (h *VideoHandler) Comments(c fiber.Ctx) error {
	videoID, errMsg := middleware.ValidateVideoID(c.Params("videoId"))
	if errMsg != "" {
		return middleware.ErrorResponse(c, fiber.StatusBadRequest, "INVALID_FIELD", errMsg)
	}

	limit, errMsg := middleware.ValidateLimit(c.Query("limit"), 100, 100)
	if errMsg != "" {
		return middleware.ErrorResponse(c, fiber.StatusBadRequest, "INVALID_FIELD", errMsg)
	}

	report, err := h.svc.Comments(c.Context(), videoID, limit)
	if err != nil {
		return middleware.ErrorResponse(c, fiber.StatusInternalServerError, "INTERNAL_ERROR", "Failed to fetch comments")
	}

	return c.JSON(report)
}
