package handler

import (
	"strconv"

	"github.com/gofiber/fiber/v3"

	"github.com/Achyut17/Mrbeast-Dashboard/internal/middleware"
	"github.com/Achyut17/Mrbeast-Dashboard/internal/service"
)

// defaultPeriodDays is the lookback applied when no window params are given.
const defaultPeriodDays = 30

// parseWindow reads the window selection shared by every report route:
// either ?period=7|30|90|365 or an explicit ?start=YYYY-MM-DD&end=YYYY-MM-DD
// pair. Supplying neither selects the default lookback. A non-empty errMsg
// means the request is malformed.
func parseWindow(c fiber.Ctx) (service.Window, string) {
	startParam := c.Query("start")
	endParam := c.Query("end")

	if startParam != "" || endParam != "" {
		if startParam == "" || endParam == "" {
			return service.Window{}, "start and end must be supplied together"
		}
		start, errMsg := middleware.ValidateDate("start", startParam)
		if errMsg != "" {
			return service.Window{}, errMsg
		}
		end, errMsg := middleware.ValidateDate("end", endParam)
		if errMsg != "" {
			return service.Window{}, errMsg
		}
		w, err := service.RangeWindow(start, end)
		if err != nil {
			return service.Window{}, err.Error()
		}
		return w, ""
	}

	days := defaultPeriodDays
	if p := c.Query("period"); p != "" {
		n, err := strconv.Atoi(p)
		if err != nil {
			return service.Window{}, "period must be a number of days"
		}
		days = n
	}
	w, err := service.PresetWindow(days)
	if err != nil {
		return service.Window{}, err.Error()
	}
	return w, ""
}
