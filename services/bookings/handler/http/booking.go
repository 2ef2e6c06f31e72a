package http

import (
	"errors"
	"net/http"

	"github.com/labstack/echo/v4"

	"github.com/BidumanADT/bellwood-admin/internal/pkg/logger"
	"github.com/BidumanADT/bellwood-admin/internal/pkg/middleware"
	"github.com/BidumanADT/bellwood-admin/internal/pkg/models"
	"github.com/BidumanADT/bellwood-admin/internal/utils"
	"github.com/BidumanADT/bellwood-admin/services/bookings"
)

// BookingHandler handles HTTP requests for quotes and bookings
type BookingHandler struct {
	bookingUC bookings.BookingUC
}

// NewBookingHandler creates a new booking handler
func NewBookingHandler(bookingUC bookings.BookingUC) *BookingHandler {
	return &BookingHandler{
		bookingUC: bookingUC,
	}
}

// CreateQuote handles fare estimate requests
func (h *BookingHandler) CreateQuote(c echo.Context) error {
	caller, ok := middleware.CallerFromContext(c)
	if !ok {
		return utils.UnauthorizedResponse(c, "Authentication required")
	}

	var req models.QuoteRequest
	if err := c.Bind(&req); err != nil {
		return utils.BadRequestResponse(c, "Invalid request payload")
	}
	if msg := stopValidationError("Pickup", req.Pickup); msg != "" {
		return utils.BadRequestResponse(c, msg)
	}
	if msg := stopValidationError("Dropoff", req.Dropoff); msg != "" {
		return utils.BadRequestResponse(c, msg)
	}

	quote, err := h.bookingUC.CreateQuote(c.Request().Context(), caller, req)
	if err != nil {
		return h.mapBookingError(c, err, "Failed to create quote")
	}

	return utils.SuccessResponse(c, http.StatusCreated, "Quote created", quote)
}

// AcceptQuote handles turning a pending quote into a booking
func (h *BookingHandler) AcceptQuote(c echo.Context) error {
	quoteID := c.Param("id")
	if quoteID == "" {
		return utils.BadRequestResponse(c, "Invalid quote ID")
	}

	caller, ok := middleware.CallerFromContext(c)
	if !ok {
		return utils.UnauthorizedResponse(c, "Authentication required")
	}

	var req models.AcceptQuoteRequest
	if err := c.Bind(&req); err != nil {
		return utils.BadRequestResponse(c, "Invalid request payload")
	}
	if req.PassengerName == "" {
		return utils.BadRequestResponse(c, "passengerName is required")
	}

	booking, err := h.bookingUC.AcceptQuote(c.Request().Context(), caller, quoteID, req)
	if err != nil {
		return h.mapBookingError(c, err, "Failed to accept quote")
	}

	return utils.SuccessResponse(c, http.StatusCreated, "Booking created", booking)
}

// CreateBooking handles direct booking creation, without a prior quote
func (h *BookingHandler) CreateBooking(c echo.Context) error {
	caller, ok := middleware.CallerFromContext(c)
	if !ok {
		return utils.UnauthorizedResponse(c, "Authentication required")
	}

	var req models.BookingRequest
	if err := c.Bind(&req); err != nil {
		return utils.BadRequestResponse(c, "Invalid request payload")
	}
	if req.PassengerName == "" {
		return utils.BadRequestResponse(c, "passengerName is required")
	}
	if msg := stopValidationError("Pickup", req.Pickup); msg != "" {
		return utils.BadRequestResponse(c, msg)
	}
	if msg := stopValidationError("Dropoff", req.Dropoff); msg != "" {
		return utils.BadRequestResponse(c, msg)
	}

	booking, err := h.bookingUC.CreateBooking(c.Request().Context(), caller, req)
	if err != nil {
		return h.mapBookingError(c, err, "Failed to create booking")
	}

	return utils.SuccessResponse(c, http.StatusCreated, "Booking created", booking)
}

// GetBooking handles the booking detail read. Staff receive the full
// record; customers receive the filtered projection.
func (h *BookingHandler) GetBooking(c echo.Context) error {
	bookingID := c.Param("id")
	if bookingID == "" {
		return utils.BadRequestResponse(c, "Invalid booking ID")
	}

	caller, ok := middleware.CallerFromContext(c)
	if !ok {
		return utils.UnauthorizedResponse(c, "Authentication required")
	}

	if caller.IsStaff() {
		booking, err := h.bookingUC.GetBooking(c.Request().Context(), caller, bookingID)
		if err != nil {
			return h.mapBookingError(c, err, "Failed to retrieve booking")
		}
		return utils.SuccessResponse(c, http.StatusOK, "Booking retrieved", booking)
	}

	summary, err := h.bookingUC.GetBookingSummary(c.Request().Context(), caller, bookingID)
	if err != nil {
		return h.mapBookingError(c, err, "Failed to retrieve booking")
	}

	return utils.SuccessResponse(c, http.StatusOK, "Booking retrieved", summary)
}

// ListBookings handles the booking listing. Staff see every booking;
// bookers see their own.
func (h *BookingHandler) ListBookings(c echo.Context) error {
	caller, ok := middleware.CallerFromContext(c)
	if !ok {
		return utils.UnauthorizedResponse(c, "Authentication required")
	}

	if caller.IsStaff() {
		resp, err := h.bookingUC.ListBookings(c.Request().Context(), caller)
		if err != nil {
			return h.mapBookingError(c, err, "Failed to list bookings")
		}
		return utils.SuccessResponse(c, http.StatusOK, "Bookings retrieved", resp)
	}

	resp, err := h.bookingUC.ListOwnBookings(c.Request().Context(), caller)
	if err != nil {
		return h.mapBookingError(c, err, "Failed to list bookings")
	}

	return utils.SuccessResponse(c, http.StatusOK, "Bookings retrieved", resp)
}

// AssignDriver handles driver assignment by staff
func (h *BookingHandler) AssignDriver(c echo.Context) error {
	bookingID := c.Param("id")
	if bookingID == "" {
		return utils.BadRequestResponse(c, "Invalid booking ID")
	}

	caller, ok := middleware.CallerFromContext(c)
	if !ok {
		return utils.UnauthorizedResponse(c, "Authentication required")
	}

	var req models.AssignDriverRequest
	if err := c.Bind(&req); err != nil {
		return utils.BadRequestResponse(c, "Invalid request payload")
	}
	if req.DriverUID == "" {
		return utils.BadRequestResponse(c, "driverUid is required")
	}

	booking, err := h.bookingUC.AssignDriver(c.Request().Context(), caller, bookingID, req)
	if err != nil {
		return h.mapBookingError(c, err, "Failed to assign driver")
	}

	return utils.SuccessResponse(c, http.StatusOK, "Driver assigned", booking)
}

// IssueTrackingLink handles minting a passenger tracking link
func (h *BookingHandler) IssueTrackingLink(c echo.Context) error {
	bookingID := c.Param("id")
	if bookingID == "" {
		return utils.BadRequestResponse(c, "Invalid booking ID")
	}

	caller, ok := middleware.CallerFromContext(c)
	if !ok {
		return utils.UnauthorizedResponse(c, "Authentication required")
	}

	link, err := h.bookingUC.IssueTrackingLink(c.Request().Context(), caller, bookingID)
	if err != nil {
		return h.mapBookingError(c, err, "Failed to issue tracking link")
	}

	return utils.SuccessResponse(c, http.StatusCreated, "Tracking link issued", link)
}

// mapBookingError translates use case rejections to HTTP statuses
func (h *BookingHandler) mapBookingError(c echo.Context, err error, fallback string) error {
	switch {
	case errors.Is(err, bookings.ErrQuoteNotFound):
		return utils.NotFoundResponse(c, "Quote not found")
	case errors.Is(err, bookings.ErrBookingNotFound):
		return utils.NotFoundResponse(c, "Booking not found")
	case errors.Is(err, bookings.ErrDriverNotFound):
		return utils.NotFoundResponse(c, "Driver not found")
	case errors.Is(err, bookings.ErrQuoteExpired):
		return utils.ConflictResponse(c, "Quote has expired")
	case errors.Is(err, bookings.ErrQuoteNotPending):
		return utils.ConflictResponse(c, "Quote was already used")
	case errors.Is(err, bookings.ErrBookingClosed):
		return utils.ConflictResponse(c, "Booking is no longer open")
	case errors.Is(err, bookings.ErrUnauthorized):
		return utils.ForbiddenResponse(c, "You are not authorized for this booking")
	default:
		logger.ErrorCtx(c.Request().Context(), fallback, logger.Err(err))
		return utils.InternalServerErrorResponse(c, fallback)
	}
}

// stopValidationError checks one trip end for valid coordinates,
// returning an empty string when the stop is acceptable
func stopValidationError(label string, stop models.Stop) string {
	if stop.Latitude < -90 || stop.Latitude > 90 {
		return label + " latitude must be between -90 and 90"
	}
	if stop.Longitude < -180 || stop.Longitude > 180 {
		return label + " longitude must be between -180 and 180"
	}
	return ""
}
