package http

import (
	"errors"
	"net/http"

	"github.com/labstack/echo/v4"

	"github.com/BidumanADT/bellwood-admin/internal/pkg/logger"
	"github.com/BidumanADT/bellwood-admin/internal/pkg/middleware"
	"github.com/BidumanADT/bellwood-admin/internal/pkg/models"
	nrpkg "github.com/BidumanADT/bellwood-admin/internal/pkg/newrelic"
	"github.com/BidumanADT/bellwood-admin/internal/utils"
	"github.com/BidumanADT/bellwood-admin/services/tracking"
)

// TrackingHandler handles HTTP requests for ride tracking operations
type TrackingHandler struct {
	trackingUC tracking.TrackingUC
}

// NewTrackingHandler creates a new tracking handler
func NewTrackingHandler(trackingUC tracking.TrackingUC) *TrackingHandler {
	return &TrackingHandler{
		trackingUC: trackingUC,
	}
}

// UpdateLocation handles driver position reports
func (h *TrackingHandler) UpdateLocation(c echo.Context) error {
	// Get transaction from Echo context using centralized package
	txn := nrpkg.FromEchoContext(c)
	nrpkg.SetTransactionName(txn, "Tracking.UpdateLocation")

	rideID := c.Param("id")
	if rideID == "" {
		return utils.BadRequestResponse(c, "Invalid ride ID")
	}

	nrpkg.AddTransactionAttribute(txn, "ride.id", rideID)

	caller, ok := middleware.CallerFromContext(c)
	if !ok {
		return utils.UnauthorizedResponse(c, "Authentication required")
	}

	var req models.LocationUpdateRequest
	if err := c.Bind(&req); err != nil {
		nrpkg.NoticeTransactionError(txn, err)
		return utils.BadRequestResponse(c, "Invalid request payload")
	}
	if req.Latitude < -90 || req.Latitude > 90 {
		return utils.BadRequestResponse(c, "Latitude must be between -90 and 90")
	}
	if req.Longitude < -180 || req.Longitude > 180 {
		return utils.BadRequestResponse(c, "Longitude must be between -180 and 180")
	}

	ack, err := h.trackingUC.UpdateLocation(c.Request().Context(), caller, rideID, req)
	if err != nil {
		// Throttled pings are routine, not error traces
		if !errors.Is(err, tracking.ErrRateLimited) {
			nrpkg.NoticeTransactionError(txn, err)
		}
		return h.mapTrackingError(c, err, "Failed to record location")
	}

	return utils.SuccessResponse(c, http.StatusOK, "Location recorded", ack)
}

// GetRideLocation handles the staff and driver read of the latest sample
func (h *TrackingHandler) GetRideLocation(c echo.Context) error {
	rideID := c.Param("id")
	if rideID == "" {
		return utils.BadRequestResponse(c, "Invalid ride ID")
	}

	caller, ok := middleware.CallerFromContext(c)
	if !ok {
		return utils.UnauthorizedResponse(c, "Authentication required")
	}

	view, err := h.trackingUC.GetRideLocation(c.Request().Context(), caller, rideID)
	if err != nil {
		if errors.Is(err, tracking.ErrNoRecentLocation) {
			return utils.NotFoundResponse(c, "No recent location for this ride")
		}
		return h.mapTrackingError(c, err, "Failed to retrieve location")
	}

	return utils.SuccessResponse(c, http.StatusOK, "Location retrieved", view)
}

// GetPassengerView handles the customer-facing tracking read
func (h *TrackingHandler) GetPassengerView(c echo.Context) error {
	rideID := c.Param("id")
	if rideID == "" {
		return utils.BadRequestResponse(c, "Invalid ride ID")
	}

	caller, ok := middleware.CallerFromContext(c)
	if !ok {
		return utils.UnauthorizedResponse(c, "Authentication required")
	}

	view, err := h.trackingUC.GetPassengerView(c.Request().Context(), caller, rideID)
	if err != nil {
		return h.mapTrackingError(c, err, "Failed to retrieve tracking")
	}

	return utils.SuccessResponse(c, http.StatusOK, "Tracking retrieved", view)
}

// GetActiveLocations handles the staff overview of all tracked rides
func (h *TrackingHandler) GetActiveLocations(c echo.Context) error {
	caller, ok := middleware.CallerFromContext(c)
	if !ok {
		return utils.UnauthorizedResponse(c, "Authentication required")
	}

	resp, err := h.trackingUC.ListActiveLocations(c.Request().Context(), caller)
	if err != nil {
		return h.mapTrackingError(c, err, "Failed to list active locations")
	}

	return utils.SuccessResponse(c, http.StatusOK, "Active locations retrieved", resp)
}

// UpdateRideStatus handles ride status transitions
func (h *TrackingHandler) UpdateRideStatus(c echo.Context) error {
	// Get transaction from Echo context using centralized package
	txn := nrpkg.FromEchoContext(c)
	nrpkg.SetTransactionName(txn, "Tracking.UpdateRideStatus")

	rideID := c.Param("id")
	if rideID == "" {
		return utils.BadRequestResponse(c, "Invalid ride ID")
	}

	nrpkg.AddTransactionAttribute(txn, "ride.id", rideID)

	caller, ok := middleware.CallerFromContext(c)
	if !ok {
		return utils.UnauthorizedResponse(c, "Authentication required")
	}

	var req models.StatusUpdateRequest
	if err := c.Bind(&req); err != nil {
		nrpkg.NoticeTransactionError(txn, err)
		return utils.BadRequestResponse(c, "Invalid request payload")
	}
	if req.NewStatus == "" {
		return utils.BadRequestResponse(c, "newStatus is required")
	}

	nrpkg.AddTransactionAttribute(txn, "status.new", string(req.NewStatus))

	resp, err := h.trackingUC.UpdateRideStatus(c.Request().Context(), caller, rideID, req)
	if err != nil {
		nrpkg.NoticeTransactionError(txn, err)
		return h.mapTrackingError(c, err, "Failed to update ride status")
	}

	return utils.SuccessResponse(c, http.StatusOK, "Ride status updated", resp)
}

// mapTrackingError translates use case rejections to HTTP statuses. Each
// rejection class gets a distinct status so clients can react without
// parsing messages.
func (h *TrackingHandler) mapTrackingError(c echo.Context, err error, fallback string) error {
	var invalid *tracking.InvalidTransitionError

	switch {
	case errors.Is(err, tracking.ErrRateLimited):
		return utils.TooManyRequestsResponse(c, "Location update rate limit exceeded")
	case errors.Is(err, tracking.ErrRideNotActive):
		return utils.ConflictResponse(c, "Ride is not in a trackable status")
	case errors.As(err, &invalid):
		return utils.UnprocessableEntityResponse(c, invalid.Error())
	case errors.Is(err, tracking.ErrInvalidTransition):
		return utils.UnprocessableEntityResponse(c, err.Error())
	case errors.Is(err, tracking.ErrUnauthorized):
		return utils.ForbiddenResponse(c, "You are not authorized for this ride")
	case errors.Is(err, tracking.ErrRideNotFound):
		return utils.NotFoundResponse(c, "Ride not found")
	default:
		logger.ErrorCtx(c.Request().Context(), fallback, logger.Err(err))
		return utils.InternalServerErrorResponse(c, fallback)
	}
}
