package router

import (
	"github.com/labstack/echo/v4"

	"ecosort/internal/adapter/api/handler"
)

// SetupWebSocketRouter sets up the dashboard streaming route. The dashboard
// is a read-only view, so no auth middleware is applied here.
func SetupWebSocketRouter(e *echo.Echo, wsHandler *handler.WebSocketHandler) {
	e.GET("/v1/ws/dashboard", wsHandler.HandleDashboard)
}
