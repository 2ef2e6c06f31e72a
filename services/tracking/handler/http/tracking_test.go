package http

import (
	"bytes"
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/golang/mock/gomock"
	"github.com/labstack/echo/v4"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/BidumanADT/bellwood-admin/internal/pkg/middleware"
	"github.com/BidumanADT/bellwood-admin/internal/pkg/models"
	"github.com/BidumanADT/bellwood-admin/services/tracking"
	"github.com/BidumanADT/bellwood-admin/services/tracking/mocks"
)

var testStaff = models.CallerIdentity{UserID: "u-admin", Role: models.RoleAdmin}

func newTrackingContext(t *testing.T, method, path string, body interface{}, caller *models.CallerIdentity) (echo.Context, *httptest.ResponseRecorder) {
	t.Helper()

	var reqBody []byte
	if body != nil {
		var err error
		reqBody, err = json.Marshal(body)
		require.NoError(t, err)
	}

	req := httptest.NewRequest(method, path, bytes.NewBuffer(reqBody))
	req.Header.Set(echo.HeaderContentType, echo.MIMEApplicationJSON)
	rec := httptest.NewRecorder()
	c := echo.New().NewContext(req, rec)
	if caller != nil {
		c.Set(middleware.CallerContextKey, *caller)
	}
	return c, rec
}

func TestNewTrackingHandler(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	mockUC := mocks.NewMockTrackingUC(ctrl)
	handler := NewTrackingHandler(mockUC)

	assert.NotNil(t, handler)
	assert.Equal(t, mockUC, handler.trackingUC)
}

func TestTrackingHandler_UpdateLocation(t *testing.T) {
	driver := models.CallerIdentity{UserID: "u-d1", Role: models.RoleDriver, DriverUID: "D1"}

	tests := []struct {
		name           string
		rideID         string
		caller         *models.CallerIdentity
		requestBody    interface{}
		mockSetup      func(*mocks.MockTrackingUC)
		expectedStatus int
	}{
		{
			name:        "Success",
			rideID:      "R1",
			caller:      &driver,
			requestBody: models.LocationUpdateRequest{Latitude: 41.8814, Longitude: -87.8831},
			mockSetup: func(mockUC *mocks.MockTrackingUC) {
				mockUC.EXPECT().
					UpdateLocation(gomock.Any(), driver, "R1", gomock.Any()).
					Return(&models.LocationUpdateAck{RideID: "R1", Timestamp: time.Now()}, nil).
					Times(1)
			},
			expectedStatus: http.StatusOK,
		},
		{
			name:           "Missing ride ID",
			rideID:         "",
			caller:         &driver,
			requestBody:    models.LocationUpdateRequest{Latitude: 41.88, Longitude: -87.63},
			mockSetup:      func(mockUC *mocks.MockTrackingUC) {},
			expectedStatus: http.StatusBadRequest,
		},
		{
			name:           "No authenticated caller",
			rideID:         "R1",
			caller:         nil,
			requestBody:    models.LocationUpdateRequest{Latitude: 41.88, Longitude: -87.63},
			mockSetup:      func(mockUC *mocks.MockTrackingUC) {},
			expectedStatus: http.StatusUnauthorized,
		},
		{
			name:           "Invalid request body",
			rideID:         "R1",
			caller:         &driver,
			requestBody:    "not json",
			mockSetup:      func(mockUC *mocks.MockTrackingUC) {},
			expectedStatus: http.StatusBadRequest,
		},
		{
			name:           "Latitude out of range",
			rideID:         "R1",
			caller:         &driver,
			requestBody:    models.LocationUpdateRequest{Latitude: 91.0, Longitude: -87.63},
			mockSetup:      func(mockUC *mocks.MockTrackingUC) {},
			expectedStatus: http.StatusBadRequest,
		},
		{
			name:           "Longitude out of range",
			rideID:         "R1",
			caller:         &driver,
			requestBody:    models.LocationUpdateRequest{Latitude: 41.88, Longitude: -190.0},
			mockSetup:      func(mockUC *mocks.MockTrackingUC) {},
			expectedStatus: http.StatusBadRequest,
		},
		{
			name:        "Rate limited",
			rideID:      "R1",
			caller:      &driver,
			requestBody: models.LocationUpdateRequest{Latitude: 41.88, Longitude: -87.63},
			mockSetup: func(mockUC *mocks.MockTrackingUC) {
				mockUC.EXPECT().
					UpdateLocation(gomock.Any(), driver, "R1", gomock.Any()).
					Return(nil, tracking.ErrRateLimited).
					Times(1)
			},
			expectedStatus: http.StatusTooManyRequests,
		},
		{
			name:        "Ride not active",
			rideID:      "R1",
			caller:      &driver,
			requestBody: models.LocationUpdateRequest{Latitude: 41.88, Longitude: -87.63},
			mockSetup: func(mockUC *mocks.MockTrackingUC) {
				mockUC.EXPECT().
					UpdateLocation(gomock.Any(), driver, "R1", gomock.Any()).
					Return(nil, tracking.ErrRideNotActive).
					Times(1)
			},
			expectedStatus: http.StatusConflict,
		},
		{
			name:        "Not the assigned driver",
			rideID:      "R1",
			caller:      &driver,
			requestBody: models.LocationUpdateRequest{Latitude: 41.88, Longitude: -87.63},
			mockSetup: func(mockUC *mocks.MockTrackingUC) {
				mockUC.EXPECT().
					UpdateLocation(gomock.Any(), driver, "R1", gomock.Any()).
					Return(nil, tracking.ErrRideNotFound).
					Times(1)
			},
			expectedStatus: http.StatusNotFound,
		},
		{
			name:        "Usecase failure",
			rideID:      "R1",
			caller:      &driver,
			requestBody: models.LocationUpdateRequest{Latitude: 41.88, Longitude: -87.63},
			mockSetup: func(mockUC *mocks.MockTrackingUC) {
				mockUC.EXPECT().
					UpdateLocation(gomock.Any(), driver, "R1", gomock.Any()).
					Return(nil, errors.New("database error")).
					Times(1)
			},
			expectedStatus: http.StatusInternalServerError,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			ctrl := gomock.NewController(t)
			defer ctrl.Finish()

			mockUC := mocks.NewMockTrackingUC(ctrl)
			tt.mockSetup(mockUC)
			handler := NewTrackingHandler(mockUC)

			c, rec := newTrackingContext(t, http.MethodPost, "/v1/tracking/rides/:id/location", tt.requestBody, tt.caller)
			c.SetParamNames("id")
			c.SetParamValues(tt.rideID)

			err := handler.UpdateLocation(c)

			assert.NoError(t, err)
			assert.Equal(t, tt.expectedStatus, rec.Code)
		})
	}
}

func TestTrackingHandler_GetRideLocation(t *testing.T) {
	tests := []struct {
		name           string
		mockSetup      func(*mocks.MockTrackingUC)
		expectedStatus int
	}{
		{
			name: "Success",
			mockSetup: func(mockUC *mocks.MockTrackingUC) {
				mockUC.EXPECT().
					GetRideLocation(gomock.Any(), testStaff, "R1").
					Return(&models.DriverLocationView{RideID: "R1", DriverUID: "D1", AgeSeconds: 4}, nil).
					Times(1)
			},
			expectedStatus: http.StatusOK,
		},
		{
			name: "No recent location",
			mockSetup: func(mockUC *mocks.MockTrackingUC) {
				mockUC.EXPECT().
					GetRideLocation(gomock.Any(), testStaff, "R1").
					Return(nil, tracking.ErrNoRecentLocation).
					Times(1)
			},
			expectedStatus: http.StatusNotFound,
		},
		{
			name: "Unauthorized caller",
			mockSetup: func(mockUC *mocks.MockTrackingUC) {
				mockUC.EXPECT().
					GetRideLocation(gomock.Any(), testStaff, "R1").
					Return(nil, tracking.ErrUnauthorized).
					Times(1)
			},
			expectedStatus: http.StatusForbidden,
		},
		{
			name: "Unknown ride",
			mockSetup: func(mockUC *mocks.MockTrackingUC) {
				mockUC.EXPECT().
					GetRideLocation(gomock.Any(), testStaff, "R1").
					Return(nil, tracking.ErrRideNotFound).
					Times(1)
			},
			expectedStatus: http.StatusNotFound,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			ctrl := gomock.NewController(t)
			defer ctrl.Finish()

			mockUC := mocks.NewMockTrackingUC(ctrl)
			tt.mockSetup(mockUC)
			handler := NewTrackingHandler(mockUC)

			c, rec := newTrackingContext(t, http.MethodGet, "/v1/tracking/rides/:id/location", nil, &testStaff)
			c.SetParamNames("id")
			c.SetParamValues("R1")

			err := handler.GetRideLocation(c)

			assert.NoError(t, err)
			assert.Equal(t, tt.expectedStatus, rec.Code)
		})
	}
}

func TestTrackingHandler_GetPassengerView_BeforeFirstSample(t *testing.T) {
	// Arrange: the no-data case must be a 200 with trackingActive false
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	passenger := models.CallerIdentity{Role: models.RolePassenger, Email: "m.sterling@sterlingcorp.example"}
	mockUC := mocks.NewMockTrackingUC(ctrl)
	mockUC.EXPECT().
		GetPassengerView(gomock.Any(), passenger, "R1").
		Return(&models.PassengerTrackingView{
			RideID:         "R1",
			TrackingActive: false,
			Message:        "Tracking has not started for this ride",
			CurrentStatus:  models.RideStatusScheduled,
		}, nil).
		Times(1)
	handler := NewTrackingHandler(mockUC)

	c, rec := newTrackingContext(t, http.MethodGet, "/v1/tracking/rides/:id/passenger", nil, &passenger)
	c.SetParamNames("id")
	c.SetParamValues("R1")

	// Act
	err := handler.GetPassengerView(c)

	// Assert
	require.NoError(t, err)
	assert.Equal(t, http.StatusOK, rec.Code)
	assert.Contains(t, rec.Body.String(), `"trackingActive":false`)
	assert.Contains(t, rec.Body.String(), `"currentStatus":"Scheduled"`)
}

func TestTrackingHandler_GetPassengerView_Forbidden(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	stranger := models.CallerIdentity{Role: models.RolePassenger, Email: "nobody@else.example"}
	mockUC := mocks.NewMockTrackingUC(ctrl)
	mockUC.EXPECT().
		GetPassengerView(gomock.Any(), stranger, "R1").
		Return(nil, tracking.ErrUnauthorized).
		Times(1)
	handler := NewTrackingHandler(mockUC)

	c, rec := newTrackingContext(t, http.MethodGet, "/v1/tracking/rides/:id/passenger", nil, &stranger)
	c.SetParamNames("id")
	c.SetParamValues("R1")

	err := handler.GetPassengerView(c)

	assert.NoError(t, err)
	assert.Equal(t, http.StatusForbidden, rec.Code)
}

func TestTrackingHandler_GetActiveLocations(t *testing.T) {
	tests := []struct {
		name           string
		mockSetup      func(*mocks.MockTrackingUC)
		expectedStatus int
		expectedBody   string
	}{
		{
			name: "Success envelope",
			mockSetup: func(mockUC *mocks.MockTrackingUC) {
				mockUC.EXPECT().
					ListActiveLocations(gomock.Any(), testStaff).
					Return(&models.ActiveLocationsResponse{
						Count:     1,
						Locations: []models.EnrichedLocation{{RideID: "R1", DriverUID: "D1"}},
						Timestamp: time.Now(),
					}, nil).
					Times(1)
			},
			expectedStatus: http.StatusOK,
			expectedBody:   `"count":1`,
		},
		{
			name: "Non-staff forbidden",
			mockSetup: func(mockUC *mocks.MockTrackingUC) {
				mockUC.EXPECT().
					ListActiveLocations(gomock.Any(), testStaff).
					Return(nil, tracking.ErrUnauthorized).
					Times(1)
			},
			expectedStatus: http.StatusForbidden,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			ctrl := gomock.NewController(t)
			defer ctrl.Finish()

			mockUC := mocks.NewMockTrackingUC(ctrl)
			tt.mockSetup(mockUC)
			handler := NewTrackingHandler(mockUC)

			c, rec := newTrackingContext(t, http.MethodGet, "/v1/tracking/active", nil, &testStaff)

			err := handler.GetActiveLocations(c)

			assert.NoError(t, err)
			assert.Equal(t, tt.expectedStatus, rec.Code)
			if tt.expectedBody != "" {
				assert.Contains(t, rec.Body.String(), tt.expectedBody)
			}
		})
	}
}

func TestTrackingHandler_UpdateRideStatus(t *testing.T) {
	tests := []struct {
		name           string
		requestBody    interface{}
		mockSetup      func(*mocks.MockTrackingUC)
		expectedStatus int
		expectedBody   string
	}{
		{
			name:        "Success",
			requestBody: models.StatusUpdateRequest{NewStatus: models.RideStatusOnRoute},
			mockSetup: func(mockUC *mocks.MockTrackingUC) {
				mockUC.EXPECT().
					UpdateRideStatus(gomock.Any(), testStaff, "R1", models.StatusUpdateRequest{NewStatus: models.RideStatusOnRoute}).
					Return(&models.StatusUpdateResponse{
						Success:       true,
						RideID:        "R1",
						NewStatus:     models.RideStatusOnRoute,
						BookingStatus: models.BookingStatusConfirmed,
						Timestamp:     time.Now(),
					}, nil).
					Times(1)
			},
			expectedStatus: http.StatusOK,
			expectedBody:   `"newStatus":"OnRoute"`,
		},
		{
			name:           "Missing newStatus",
			requestBody:    map[string]string{},
			mockSetup:      func(mockUC *mocks.MockTrackingUC) {},
			expectedStatus: http.StatusBadRequest,
		},
		{
			name:        "Invalid transition names both states",
			requestBody: models.StatusUpdateRequest{NewStatus: models.RideStatusCompleted},
			mockSetup: func(mockUC *mocks.MockTrackingUC) {
				mockUC.EXPECT().
					UpdateRideStatus(gomock.Any(), testStaff, "R1", gomock.Any()).
					Return(nil, &tracking.InvalidTransitionError{
						Current:   models.RideStatusScheduled,
						Requested: models.RideStatusCompleted,
					}).
					Times(1)
			},
			expectedStatus: http.StatusUnprocessableEntity,
			expectedBody:   "Scheduled",
		},
		{
			name:        "Unknown ride",
			requestBody: models.StatusUpdateRequest{NewStatus: models.RideStatusOnRoute},
			mockSetup: func(mockUC *mocks.MockTrackingUC) {
				mockUC.EXPECT().
					UpdateRideStatus(gomock.Any(), testStaff, "R1", gomock.Any()).
					Return(nil, tracking.ErrRideNotFound).
					Times(1)
			},
			expectedStatus: http.StatusNotFound,
		},
		{
			name:        "Unauthorized caller",
			requestBody: models.StatusUpdateRequest{NewStatus: models.RideStatusOnRoute},
			mockSetup: func(mockUC *mocks.MockTrackingUC) {
				mockUC.EXPECT().
					UpdateRideStatus(gomock.Any(), testStaff, "R1", gomock.Any()).
					Return(nil, tracking.ErrUnauthorized).
					Times(1)
			},
			expectedStatus: http.StatusForbidden,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			ctrl := gomock.NewController(t)
			defer ctrl.Finish()

			mockUC := mocks.NewMockTrackingUC(ctrl)
			tt.mockSetup(mockUC)
			handler := NewTrackingHandler(mockUC)

			c, rec := newTrackingContext(t, http.MethodPatch, "/v1/tracking/rides/:id/status", tt.requestBody, &testStaff)
			c.SetParamNames("id")
			c.SetParamValues("R1")

			err := handler.UpdateRideStatus(c)

			assert.NoError(t, err)
			assert.Equal(t, tt.expectedStatus, rec.Code)
			if tt.expectedBody != "" {
				assert.Contains(t, rec.Body.String(), tt.expectedBody)
			}
		})
	}
}
