package handler

import (
	"net/http"

	"github.com/labstack/echo/v4"

	"bistro-boss-api/internal/service"
)

type StatsHandler struct {
	analyticsService service.AnalyticsService
}

func NewStatsHandler(analyticsService service.AnalyticsService) *StatsHandler {
	return &StatsHandler{
		analyticsService: analyticsService,
	}
}

func (h *StatsHandler) AdminStats(c echo.Context) error {
	ctx := c.Request().Context()

	stats, err := h.analyticsService.AdminStats(ctx)
	if err != nil {
		return err
	}

	return c.JSON(http.StatusOK, stats)
}

func (h *StatsHandler) OrderStats(c echo.Context) error {
	ctx := c.Request().Context()

	stats, err := h.analyticsService.OrderStats(ctx)
	if err != nil {
		return err
	}

	return c.JSON(http.StatusOK, stats)
}
