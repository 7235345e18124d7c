package middleware

import (
	"regexp"
	"strconv"
	"strings"
	"time"

	"github.com/gofiber/fiber/v3"
)

const (
	MaxVideoIDLen   = 16 // provider video ids are 11 chars, leave headroom
	MaxChannelIDLen = 32

	// dateLayout is the explicit start/end query format.
	dateLayout = "2006-01-02"
)

var (
	// videoIDRe matches YouTube video IDs: alphanumeric, dash, underscore.
	videoIDRe = regexp.MustCompile(`^[A-Za-z0-9_-]+$`)
	// channelIDRe matches YouTube channel IDs.
	channelIDRe = regexp.MustCompile(`^[A-Za-z0-9_-]+$`)
)

// ErrorResponse is a helper that returns a standard API error response.
func ErrorResponse(c fiber.Ctx, status int, code, message string) error {
	return c.Status(status).JSON(fiber.Map{
		"error": fiber.Map{
			"code":    code,
			"message": message,
		},
	})
}

// ValidateVideoID checks that a video ID is well-formed.
func ValidateVideoID(id string) (string, string) {
	id = strings.TrimSpace(id)
	if id == "" {
		return "", "videoId is required"
	}
	if len(id) > MaxVideoIDLen {
		return "", "videoId must be at most 16 characters"
	}
	if !videoIDRe.MatchString(id) {
		return "", "videoId contains invalid characters"
	}
	return id, ""
}

// ValidateChannelID checks that a channel ID is well-formed.
func ValidateChannelID(id string) (string, string) {
	id = strings.TrimSpace(id)
	if id == "" {
		return "", "channelId is required"
	}
	if len(id) > MaxChannelIDLen {
		return "", "channelId must be at most 32 characters"
	}
	if !channelIDRe.MatchString(id) {
		return "", "channelId contains invalid characters"
	}
	return id, ""
}

// ValidateMinViews parses the minimum-views filter. Empty means no threshold.
func ValidateMinViews(s string) (int64, string) {
	if s == "" {
		return 0, ""
	}
	n, err := strconv.ParseInt(s, 10, 64)
	if err != nil || n < 0 {
		return 0, "minViews must be a non-negative integer"
	}
	return n, ""
}

// ValidateLimit parses a result limit, applying a default and a ceiling.
func ValidateLimit(s string, fallback, max int) (int, string) {
	if s == "" {
		return fallback, ""
	}
	n, err := strconv.Atoi(s)
	if err != nil || n <= 0 {
		return 0, "limit must be a positive integer"
	}
	if n > max {
		n = max
	}
	return n, ""
}

// ValidateDate parses a YYYY-MM-DD query value as a UTC date.
func ValidateDate(name, s string) (time.Time, string) {
	t, err := time.Parse(dateLayout, s)
	if err != nil {
		return time.Time{}, name + " must be a YYYY-MM-DD date"
	}
	return t.UTC(), ""
}
