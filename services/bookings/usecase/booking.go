package usecase

import (
	"context"
	"errors"
	"fmt"
	"math"
	"strings"
	"time"

	"github.com/google/uuid"

	jwtpkg "github.com/BidumanADT/bellwood-admin/internal/pkg/jwt"
	"github.com/BidumanADT/bellwood-admin/internal/pkg/logger"
	"github.com/BidumanADT/bellwood-admin/internal/pkg/models"
	"github.com/BidumanADT/bellwood-admin/internal/utils"
	"github.com/BidumanADT/bellwood-admin/services/bookings"
)

// quoteTTL bounds how long a pending quote stays acceptable. Expiry is
// lazy; there is no background sweeper.
const quoteTTL = 30 * time.Minute

// bookingUC implements the bookings.BookingUC interface
type bookingUC struct {
	cfg  *models.Config
	repo bookings.BookingRepo
	gw   bookings.BookingGW
}

// NewBookingUC creates a new booking use case
func NewBookingUC(
	cfg *models.Config,
	repo bookings.BookingRepo,
	gw bookings.BookingGW,
) (bookings.BookingUC, error) {
	return &bookingUC{
		cfg:  cfg,
		repo: repo,
		gw:   gw,
	}, nil
}

// CreateQuote prices a trip and stores the estimate
func (uc *bookingUC) CreateQuote(ctx context.Context, caller models.CallerIdentity, req models.QuoteRequest) (*models.Quote, error) {
	bookerEmail := req.BookerEmail
	if !caller.IsStaff() {
		// Customers always quote for themselves
		bookerEmail = caller.Email
	}

	distance := utils.CalculateDistance(
		utils.GeoPoint{Latitude: req.Pickup.Latitude, Longitude: req.Pickup.Longitude},
		utils.GeoPoint{Latitude: req.Dropoff.Latitude, Longitude: req.Dropoff.Longitude},
	)
	fare := uc.cfg.Pricing.BaseFare + uc.cfg.Pricing.PerKmRate*distance

	quote := &models.Quote{
		BookerEmail:   bookerEmail,
		PickupLat:     req.Pickup.Latitude,
		PickupLon:     req.Pickup.Longitude,
		PickupAddr:    req.Pickup.Address,
		DropoffLat:    req.Dropoff.Latitude,
		DropoffLon:    req.Dropoff.Longitude,
		DropoffAddr:   req.Dropoff.Address,
		DistanceKm:    roundHundredths(distance),
		EstimatedFare: roundHundredths(fare),
		Currency:      uc.cfg.Pricing.Currency,
		Status:        models.QuoteStatusPending,
	}

	if err := uc.repo.CreateQuote(ctx, quote); err != nil {
		return nil, fmt.Errorf("failed to create quote: %w", err)
	}

	logger.InfoCtx(ctx, "Quote created",
		logger.String("quote_id", quote.ID),
		logger.Float64("distance_km", quote.DistanceKm),
		logger.Float64("estimated_fare", quote.EstimatedFare))

	return quote, nil
}

// AcceptQuote turns a pending quote into a booking
func (uc *bookingUC) AcceptQuote(ctx context.Context, caller models.CallerIdentity, quoteID string, req models.AcceptQuoteRequest) (*models.Booking, error) {
	quote, err := uc.repo.GetQuote(ctx, quoteID)
	if err != nil {
		return nil, fmt.Errorf("failed to resolve quote %s: %w", quoteID, err)
	}
	if quote == nil {
		return nil, bookings.ErrQuoteNotFound
	}

	if !uc.canUseQuote(caller, quote) {
		return nil, bookings.ErrUnauthorized
	}

	switch quote.Status {
	case models.QuoteStatusPending:
	case models.QuoteStatusExpired:
		return nil, bookings.ErrQuoteExpired
	default:
		return nil, bookings.ErrQuoteNotPending
	}

	if models.Now().Sub(quote.CreatedAt) > quoteTTL {
		if err := uc.repo.UpdateQuoteStatus(ctx, quote.ID, models.QuoteStatusExpired); err != nil {
			logger.WarnCtx(ctx, "Failed to mark quote expired",
				logger.String("quote_id", quote.ID),
				logger.Err(err))
		}
		return nil, bookings.ErrQuoteExpired
	}

	booking := &models.Booking{
		QuoteID:        &quote.ID,
		BookerEmail:    quote.BookerEmail,
		PassengerName:  utils.SanitizeString(req.PassengerName),
		PassengerEmail: req.PassengerEmail,
		PickupLat:      quote.PickupLat,
		PickupLon:      quote.PickupLon,
		PickupAddr:     quote.PickupAddr,
		DropoffLat:     quote.DropoffLat,
		DropoffLon:     quote.DropoffLon,
		DropoffAddr:    quote.DropoffAddr,
		ScheduledAt:    req.ScheduledAt,
		RideStatus:     models.RideStatusScheduled,
		BookingStatus:  models.BookingStatusPending,
	}

	if err := uc.repo.CreateBookingFromQuote(ctx, booking); err != nil {
		return nil, fmt.Errorf("failed to accept quote %s: %w", quoteID, err)
	}

	logger.InfoCtx(ctx, "Quote accepted",
		logger.String("quote_id", quoteID),
		logger.String("booking_id", booking.ID))

	uc.publishCreated(ctx, booking)

	return booking, nil
}

// CreateBooking creates a booking directly, without a prior quote
func (uc *bookingUC) CreateBooking(ctx context.Context, caller models.CallerIdentity, req models.BookingRequest) (*models.Booking, error) {
	bookerEmail := req.BookerEmail
	if !caller.IsStaff() {
		bookerEmail = caller.Email
	}

	booking := &models.Booking{
		BookerEmail:    bookerEmail,
		PassengerName:  utils.SanitizeString(req.PassengerName),
		PassengerEmail: req.PassengerEmail,
		PickupLat:      req.Pickup.Latitude,
		PickupLon:      req.Pickup.Longitude,
		PickupAddr:     req.Pickup.Address,
		DropoffLat:     req.Dropoff.Latitude,
		DropoffLon:     req.Dropoff.Longitude,
		DropoffAddr:    req.Dropoff.Address,
		ScheduledAt:    req.ScheduledAt,
		RideStatus:     models.RideStatusScheduled,
		BookingStatus:  models.BookingStatusPending,
	}

	if err := uc.repo.CreateBooking(ctx, booking); err != nil {
		return nil, fmt.Errorf("failed to create booking: %w", err)
	}

	logger.InfoCtx(ctx, "Booking created",
		logger.String("booking_id", booking.ID),
		logger.String("booker_email", booking.BookerEmail))

	uc.publishCreated(ctx, booking)

	return booking, nil
}

// GetBooking returns the full booking record; staff only
func (uc *bookingUC) GetBooking(ctx context.Context, caller models.CallerIdentity, bookingID string) (*models.Booking, error) {
	if !caller.IsStaff() {
		return nil, bookings.ErrUnauthorized
	}

	booking, err := uc.repo.GetBooking(ctx, bookingID)
	if err != nil {
		return nil, fmt.Errorf("failed to get booking %s: %w", bookingID, err)
	}
	if booking == nil {
		return nil, bookings.ErrBookingNotFound
	}

	return booking, nil
}

// GetBookingSummary returns the customer projection for the booker, the
// passenger or the assigned driver
func (uc *bookingUC) GetBookingSummary(ctx context.Context, caller models.CallerIdentity, bookingID string) (*models.BookingSummary, error) {
	booking, err := uc.repo.GetBooking(ctx, bookingID)
	if err != nil {
		return nil, fmt.Errorf("failed to get booking %s: %w", bookingID, err)
	}
	if booking == nil {
		return nil, bookings.ErrBookingNotFound
	}

	if !uc.canViewSummary(caller, booking) {
		return nil, bookings.ErrUnauthorized
	}

	return toSummary(booking, uc.driverName(ctx, booking.AssignedDriver())), nil
}

// ListBookings returns all bookings; staff only
func (uc *bookingUC) ListBookings(ctx context.Context, caller models.CallerIdentity) (*models.BookingListResponse, error) {
	if !caller.IsStaff() {
		return nil, bookings.ErrUnauthorized
	}

	list, err := uc.repo.ListBookings(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to list bookings: %w", err)
	}

	return &models.BookingListResponse{
		Count:    len(list),
		Bookings: list,
	}, nil
}

// ListOwnBookings returns the caller's bookings as customer projections
func (uc *bookingUC) ListOwnBookings(ctx context.Context, caller models.CallerIdentity) (*models.BookingSummaryListResponse, error) {
	if caller.Email == "" {
		return nil, bookings.ErrUnauthorized
	}

	list, err := uc.repo.ListBookingsByBooker(ctx, caller.Email)
	if err != nil {
		return nil, fmt.Errorf("failed to list bookings: %w", err)
	}

	names := make(map[string]string)
	summaries := make([]models.BookingSummary, 0, len(list))
	for i := range list {
		booking := &list[i]
		uid := booking.AssignedDriver()
		name, ok := names[uid]
		if !ok && uid != "" {
			name = uc.driverName(ctx, uid)
			names[uid] = name
		}
		summaries = append(summaries, *toSummary(booking, name))
	}

	return &models.BookingSummaryListResponse{
		Count:    len(summaries),
		Bookings: summaries,
	}, nil
}

// AssignDriver assigns a driver to a booking and confirms it. The driver
// must exist and be active; reassignment is allowed until the ride ends.
func (uc *bookingUC) AssignDriver(ctx context.Context, caller models.CallerIdentity, bookingID string, req models.AssignDriverRequest) (*models.Booking, error) {
	if !caller.IsStaff() {
		return nil, bookings.ErrUnauthorized
	}

	booking, err := uc.repo.GetBooking(ctx, bookingID)
	if err != nil {
		return nil, fmt.Errorf("failed to get booking %s: %w", bookingID, err)
	}
	if booking == nil {
		return nil, bookings.ErrBookingNotFound
	}

	if booking.RideStatus.IsTerminal() {
		return nil, bookings.ErrBookingClosed
	}

	driverName, err := uc.repo.GetDriverName(ctx, req.DriverUID)
	if err != nil {
		if errors.Is(err, bookings.ErrDriverNotFound) {
			return nil, err
		}
		return nil, fmt.Errorf("failed to resolve driver %s: %w", req.DriverUID, err)
	}

	status := booking.BookingStatus
	if status == models.BookingStatusPending {
		status = models.BookingStatusConfirmed
	}

	if err := uc.repo.AssignDriver(ctx, bookingID, req.DriverUID, status); err != nil {
		return nil, err
	}

	booking.DriverUID = &req.DriverUID
	booking.BookingStatus = status
	booking.UpdatedAt = models.Now()

	logger.InfoCtx(ctx, "Driver assigned",
		logger.String("booking_id", bookingID),
		logger.String("driver_uid", req.DriverUID),
		logger.String("driver_name", driverName))

	return booking, nil
}

// IssueTrackingLink mints a passenger tracking token and URL
func (uc *bookingUC) IssueTrackingLink(ctx context.Context, caller models.CallerIdentity, bookingID string) (*models.TrackingLink, error) {
	if !caller.IsStaff() {
		return nil, bookings.ErrUnauthorized
	}

	booking, err := uc.repo.GetBooking(ctx, bookingID)
	if err != nil {
		return nil, fmt.Errorf("failed to get booking %s: %w", bookingID, err)
	}
	if booking == nil {
		return nil, bookings.ErrBookingNotFound
	}

	if booking.RideStatus.IsTerminal() {
		return nil, bookings.ErrBookingClosed
	}

	rideUUID, err := uuid.Parse(booking.ID)
	if err != nil {
		return nil, fmt.Errorf("booking %s has a malformed id: %w", bookingID, err)
	}

	token, expiresAt, err := jwtpkg.GenerateTrackingToken(rideUUID, booking.PassengerEmail, uc.cfg)
	if err != nil {
		return nil, fmt.Errorf("failed to generate tracking token: %w", err)
	}

	url := fmt.Sprintf("%s/track/%s?token=%s",
		strings.TrimRight(uc.cfg.App.BaseURL, "/"), booking.ID, token)

	logger.InfoCtx(ctx, "Tracking link issued",
		logger.String("booking_id", bookingID))

	return &models.TrackingLink{
		RideID:    booking.ID,
		URL:       url,
		Token:     token,
		ExpiresAt: time.Unix(expiresAt, 0).UTC(),
	}, nil
}

// canUseQuote allows staff and the quote's own booker
func (uc *bookingUC) canUseQuote(caller models.CallerIdentity, quote *models.Quote) bool {
	if caller.IsStaff() {
		return true
	}
	return caller.Email != "" && strings.EqualFold(caller.Email, quote.BookerEmail)
}

// canViewSummary allows staff, the booker, the passenger and the
// assigned driver
func (uc *bookingUC) canViewSummary(caller models.CallerIdentity, booking *models.Booking) bool {
	if caller.IsStaff() {
		return true
	}
	if caller.DriverUID != "" && caller.DriverUID == booking.AssignedDriver() {
		return true
	}
	if caller.Email == "" {
		return false
	}
	return strings.EqualFold(caller.Email, booking.BookerEmail) ||
		strings.EqualFold(caller.Email, booking.PassengerEmail)
}

// driverName resolves a driver's display name, tolerating lookup
// failures with an empty name
func (uc *bookingUC) driverName(ctx context.Context, driverUID string) string {
	if driverUID == "" {
		return ""
	}

	name, err := uc.repo.GetDriverName(ctx, driverUID)
	if err != nil {
		logger.DebugCtx(ctx, "Driver name lookup failed",
			logger.String("driver_uid", driverUID),
			logger.Err(err))
		return ""
	}

	return name
}

// publishCreated announces a new booking. Delivery is best effort and
// never fails the request.
func (uc *bookingUC) publishCreated(ctx context.Context, booking *models.Booking) {
	event := models.BookingCreatedEvent{
		BookingID:      booking.ID,
		BookerEmail:    booking.BookerEmail,
		PassengerName:  booking.PassengerName,
		PassengerEmail: booking.PassengerEmail,
		ScheduledAt:    booking.ScheduledAt,
		CreatedAt:      booking.CreatedAt,
	}

	if err := uc.gw.PublishBookingCreated(ctx, event); err != nil {
		logger.WarnCtx(ctx, "Failed to publish booking created",
			logger.String("booking_id", booking.ID),
			logger.Err(err))
	}
}

func toSummary(booking *models.Booking, driverName string) *models.BookingSummary {
	return &models.BookingSummary{
		ID:            booking.ID,
		PassengerName: booking.PassengerName,
		Pickup:        booking.Pickup(),
		Dropoff:       booking.Dropoff(),
		ScheduledAt:   booking.ScheduledAt,
		BookingStatus: booking.BookingStatus,
		RideStatus:    booking.RideStatus,
		DriverName:    driverName,
	}
}

// roundHundredths keeps money and distance fields at two decimals
func roundHundredths(v float64) float64 {
	return math.Round(v*100) / 100
}
