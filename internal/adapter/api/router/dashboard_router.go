package router

import (
	"ecosort/internal/adapter/api/handler"

	"github.com/labstack/echo/v4"
)

func SetupDashboardRouter(e *echo.Echo) {
	dashboardHandler := handler.GetDashboardHandler()
	binHandler := handler.GetBinHandler()

	e.GET("/v1/leaderboard", dashboardHandler.Leaderboard)
	e.GET("/v1/community/stats", dashboardHandler.CommunityStats)
	e.GET("/v1/community/users/:userId/activity", dashboardHandler.UserActivity)

	bins := e.Group("/v1/bins")
	bins.GET("", binHandler.ListBins)
	bins.GET("/:binId", binHandler.GetBin)
	bins.GET("/:binId/levels", binHandler.FillHistory)
}
