package handler

import (
	"strconv"

	"github.com/labstack/echo/v4"

	"ecosort/internal/usecase"
	"ecosort/pkg/response"
)

type DashboardHandler struct {
	dashboardUseCase *usecase.DashboardUseCase
}

func NewDashboardHandler(dashboardUseCase *usecase.DashboardUseCase) *DashboardHandler {
	return &DashboardHandler{
		dashboardUseCase: dashboardUseCase,
	}
}

func (h *DashboardHandler) Leaderboard(c echo.Context) error {
	limit := 10
	if raw := c.QueryParam("limit"); raw != "" {
		parsed, err := strconv.Atoi(raw)
		if err == nil && parsed > 0 && parsed <= 100 {
			limit = parsed
		}
	}

	entries, err := h.dashboardUseCase.Leaderboard(c.Request().Context(), limit)
	if err != nil {
		return response.Error(c, err)
	}

	return response.Paginated(c, entries, int64(len(entries)), 1, limit)
}

func (h *DashboardHandler) UserActivity(c echo.Context) error {
	userID := c.Param("userId")

	limit := 0
	if raw := c.QueryParam("limit"); raw != "" {
		parsed, err := strconv.Atoi(raw)
		if err == nil {
			limit = parsed
		}
	}

	activity, err := h.dashboardUseCase.UserActivity(c.Request().Context(), userID, limit)
	if err != nil {
		return response.Error(c, err)
	}

	return response.Success(c, activity)
}

func (h *DashboardHandler) CommunityStats(c echo.Context) error {
	stats, err := h.dashboardUseCase.CommunityStats(c.Request().Context())
	if err != nil {
		return response.Error(c, err)
	}

	return response.Success(c, stats)
}
