package websocket

import (
	"encoding/json"

	"github.com/labstack/echo/v4"

	"github.com/BidumanADT/bellwood-admin/internal/pkg/constants"
	"github.com/BidumanADT/bellwood-admin/internal/pkg/logger"
	"github.com/BidumanADT/bellwood-admin/internal/pkg/models"
	ws "github.com/BidumanADT/bellwood-admin/internal/pkg/websocket"
	"github.com/BidumanADT/bellwood-admin/services/tracking"
)

// clientConn is the slice of a connection the dispatcher needs. The
// WebSocket client satisfies it; tests substitute a recording fake.
type clientConn interface {
	ID() string
	Identity() models.CallerIdentity
	Send(event string, data interface{}) error
	SendError(code, message string) error
}

// TrackingWSHandler serves the realtime tracking channel. It owns the
// subscribe/unsubscribe protocol; broadcasts themselves come from the
// scheduler and the status-change path through the shared registry.
type TrackingWSHandler struct {
	manager  *ws.Manager
	registry *tracking.SubscriptionRegistry
	gate     *tracking.AuthorizationGate
}

// NewTrackingWSHandler creates a new tracking WebSocket handler
func NewTrackingWSHandler(manager *ws.Manager, registry *tracking.SubscriptionRegistry) *TrackingWSHandler {
	return &TrackingWSHandler{
		manager:  manager,
		registry: registry,
		gate:     tracking.NewAuthorizationGate(),
	}
}

// HandleWebSocket upgrades the connection and runs its message loop
func (h *TrackingWSHandler) HandleWebSocket(c echo.Context) error {
	return h.manager.HandleConnection(c, h.serveClient)
}

// serveClient runs one connection from registration to disconnect
func (h *TrackingWSHandler) serveClient(client *ws.Client) error {
	h.register(client)
	defer h.registry.RemoveAll(client.ID())

	logger.Info("Tracking WebSocket connected",
		logger.String("connection_id", client.ID()),
		logger.String("role", string(client.Identity().Role)))

	for {
		raw, err := client.ReadMessage()
		if err != nil {
			logger.Debug("Tracking WebSocket disconnected",
				logger.String("connection_id", client.ID()))
			return nil
		}
		h.dispatch(client, raw)
	}
}

// register performs the on-connect group placement. Staff land on the
// dispatch board feed without an explicit subscribe.
func (h *TrackingWSHandler) register(client clientConn) {
	if client.Identity().IsStaff() {
		h.registry.Join(client, constants.GroupAdmin)
	}
}

// dispatch routes one client message to its operation handler
func (h *TrackingWSHandler) dispatch(client clientConn, raw []byte) {
	var msg models.WSMessage
	if err := json.Unmarshal(raw, &msg); err != nil {
		client.SendError(constants.ErrorInvalidFormat, "Invalid message format")
		return
	}

	var err error
	switch msg.Event {
	case constants.EventPing:
		err = client.Send(constants.EventPong, nil)
	case constants.EventSubscribeRide:
		err = h.handleSubscribeRide(client, msg.Data)
	case constants.EventUnsubscribeRide:
		err = h.handleUnsubscribeRide(client, msg.Data)
	case constants.EventSubscribeDriver:
		err = h.handleSubscribeDriver(client, msg.Data)
	case constants.EventUnsubscribeDriver:
		err = h.handleUnsubscribeDriver(client, msg.Data)
	default:
		err = client.SendError(constants.ErrorInvalidFormat, "Unknown event: "+msg.Event)
	}

	if err != nil {
		logger.Warn("Failed to handle tracking WebSocket message",
			logger.String("connection_id", client.ID()),
			logger.String("event", msg.Event),
			logger.Err(err))
	}
}

// handleSubscribeRide joins the per-ride feed and confirms to the caller
// only; the confirmation is never broadcast.
func (h *TrackingWSHandler) handleSubscribeRide(client clientConn, data json.RawMessage) error {
	var req models.WSSubscribeRide
	if err := json.Unmarshal(data, &req); err != nil || req.RideID == "" {
		return client.SendError(constants.ErrorValidationFailed, "rideId is required")
	}

	group := tracking.RideGroup(req.RideID)
	if !h.gate.CanSubscribe(client.Identity(), group) {
		return client.SendError(constants.ErrorUnauthorized, "Not authorized for this feed")
	}

	h.registry.Join(client, group)
	return client.Send(constants.EventSubscriptionConfirmed, models.SubscriptionConfirmed{Group: group})
}

func (h *TrackingWSHandler) handleUnsubscribeRide(client clientConn, data json.RawMessage) error {
	var req models.WSSubscribeRide
	if err := json.Unmarshal(data, &req); err != nil || req.RideID == "" {
		return client.SendError(constants.ErrorValidationFailed, "rideId is required")
	}

	// Leaving a feed never joined is a no-op
	h.registry.Leave(client.ID(), tracking.RideGroup(req.RideID))
	return nil
}

// handleSubscribeDriver joins a per-driver feed, which is staff only
func (h *TrackingWSHandler) handleSubscribeDriver(client clientConn, data json.RawMessage) error {
	var req models.WSSubscribeDriver
	if err := json.Unmarshal(data, &req); err != nil || req.DriverUID == "" {
		return client.SendError(constants.ErrorValidationFailed, "driverUid is required")
	}

	group := tracking.DriverGroup(req.DriverUID)
	if !h.gate.CanSubscribe(client.Identity(), group) {
		return client.SendError(constants.ErrorUnauthorized, "Not authorized for this feed")
	}

	h.registry.Join(client, group)
	return client.Send(constants.EventSubscriptionConfirmed, models.SubscriptionConfirmed{Group: group})
}

func (h *TrackingWSHandler) handleUnsubscribeDriver(client clientConn, data json.RawMessage) error {
	var req models.WSSubscribeDriver
	if err := json.Unmarshal(data, &req); err != nil || req.DriverUID == "" {
		return client.SendError(constants.ErrorValidationFailed, "driverUid is required")
	}

	h.registry.Leave(client.ID(), tracking.DriverGroup(req.DriverUID))
	return nil
}
