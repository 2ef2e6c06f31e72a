package handler

import (
	"github.com/labstack/echo/v4"

	"github.com/BidumanADT/bellwood-admin/internal/pkg/middleware"
	"github.com/BidumanADT/bellwood-admin/internal/pkg/models"
	"github.com/BidumanADT/bellwood-admin/services/bookings"
	httpHandler "github.com/BidumanADT/bellwood-admin/services/bookings/handler/http"
)

// Handler wires the booking HTTP handler into the router
type Handler struct {
	bookingHTTP *httpHandler.BookingHandler
	cfg         *models.Config
}

// NewHandler creates the booking handler
func NewHandler(bookingUC bookings.BookingUC, cfg *models.Config) *Handler {
	return &Handler{
		bookingHTTP: httpHandler.NewBookingHandler(bookingUC),
		cfg:         cfg,
	}
}

// RegisterRoutes registers the quote and booking routes
func (h *Handler) RegisterRoutes(e *echo.Echo, auth echo.MiddlewareFunc) {
	v1 := e.Group("/v1")

	quoteGroup := v1.Group("/quotes", auth)
	quoteGroup.POST("", h.bookingHTTP.CreateQuote)
	quoteGroup.POST("/:id/accept", h.bookingHTTP.AcceptQuote)

	bookingGroup := v1.Group("/bookings", auth)
	bookingGroup.POST("", h.bookingHTTP.CreateBooking)
	bookingGroup.GET("", h.bookingHTTP.ListBookings)
	bookingGroup.GET("/:id", h.bookingHTTP.GetBooking)
	bookingGroup.POST("/:id/assign", h.bookingHTTP.AssignDriver, middleware.RequireStaff())
	bookingGroup.POST("/:id/tracking-link", h.bookingHTTP.IssueTrackingLink, middleware.RequireStaff())
}
