package handler

import (
	"github.com/labstack/echo/v4"

	"github.com/BidumanADT/bellwood-admin/internal/pkg/middleware"
	"github.com/BidumanADT/bellwood-admin/internal/pkg/models"
	ws "github.com/BidumanADT/bellwood-admin/internal/pkg/websocket"
	"github.com/BidumanADT/bellwood-admin/services/tracking"
	httpHandler "github.com/BidumanADT/bellwood-admin/services/tracking/handler/http"
	wsHandler "github.com/BidumanADT/bellwood-admin/services/tracking/handler/websocket"
)

// Handler combines the HTTP and WebSocket handlers for the tracking service
type Handler struct {
	trackingHTTP *httpHandler.TrackingHandler
	trackingWS   *wsHandler.TrackingWSHandler
	cfg          *models.Config
}

// NewHandler creates the combined tracking handler
func NewHandler(
	trackingUC tracking.TrackingUC,
	wsManager *ws.Manager,
	registry *tracking.SubscriptionRegistry,
	cfg *models.Config,
) *Handler {
	return &Handler{
		trackingHTTP: httpHandler.NewTrackingHandler(trackingUC),
		trackingWS:   wsHandler.NewTrackingWSHandler(wsManager, registry),
		cfg:          cfg,
	}
}

// RegisterRoutes registers the tracking routes. The WebSocket endpoint is
// outside the bearer middleware because it authenticates itself; browsers
// cannot set headers on upgrade requests.
func (h *Handler) RegisterRoutes(e *echo.Echo, auth echo.MiddlewareFunc) {
	v1 := e.Group("/v1")

	trackingGroup := v1.Group("/tracking", auth)
	trackingGroup.POST("/rides/:id/location", h.trackingHTTP.UpdateLocation)
	trackingGroup.GET("/rides/:id/location", h.trackingHTTP.GetRideLocation)
	trackingGroup.GET("/rides/:id/passenger", h.trackingHTTP.GetPassengerView)
	trackingGroup.GET("/active", h.trackingHTTP.GetActiveLocations, middleware.RequireStaff())
	trackingGroup.PATCH("/rides/:id/status", h.trackingHTTP.UpdateRideStatus)

	v1.GET("/tracking/ws", h.trackingWS.HandleWebSocket)
}
