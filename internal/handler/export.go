package handler

import (
	"bytes"
	"encoding/csv"
	"strconv"

	"github.com/gofiber/fiber/v3"

	"github.com/Achyut17/Mrbeast-Dashboard/internal/middleware"
	"github.com/Achyut17/Mrbeast-Dashboard/internal/service"
)

type ExportHandler struct {
	svc *service.ChannelService
}

func NewExportHandler(svc *service.ChannelService) *ExportHandler {
	return &ExportHandler{svc: svc}
}

// Export handles GET /api/videos/export
// Streams the window's video table as a CSV download.
func (h *ExportHandler) Export(c fiber.Ctx) error {
	w, errMsg := parseWindow(c)
	if errMsg != "" {
		return middleware.ErrorResponse(c, fiber.StatusBadRequest, "INVALID_FIELD", errMsg)
	}

	report, err := h.svc.Videos(c.Context(), w, 0, service.SortDateDesc)
	if err != nil {
		return middleware.ErrorResponse(c, fiber.StatusInternalServerError, "INTERNAL_ERROR", "Failed to export videos")
	}

	var buf bytes.Buffer
	cw := csv.NewWriter(&buf)
	cw.Write([]string{"id", "title", "published", "views", "likes", "comments", "duration_seconds", "likes_per_view", "comments_per_view"})
	for _, v := range report.Videos {
		cw.Write([]string{
			v.ID,
			v.Title,
			v.PublishedDate,
			strconv.FormatInt(v.Views, 10),
			strconv.FormatInt(v.Likes, 10),
			strconv.FormatInt(v.Comments, 10),
			strconv.FormatFloat(v.DurationSeconds, 'f', -1, 64),
			strconv.FormatFloat(v.LikesPerView, 'f', 2, 64),
			strconv.FormatFloat(v.CommentsPerView, 'f', 2, 64),
		})
	}
	cw.Flush()
	if err := cw.Error(); err != nil {
		return middleware.ErrorResponse(c, fiber.StatusInternalServerError, "INTERNAL_ERROR", "Failed to write CSV")
	}

	c.Set("Content-Type", "text/csv")
	c.Set("Content-Disposition", "attachment; filename=videos.csv")
	return c.Send(buf.Bytes())
}
