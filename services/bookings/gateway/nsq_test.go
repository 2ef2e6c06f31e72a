package gateway

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	"github.com/BidumanADT/bellwood-admin/internal/pkg/constants"
	"github.com/BidumanADT/bellwood-admin/internal/pkg/logger"
	"github.com/BidumanADT/bellwood-admin/internal/pkg/models"
)

// MockPublisher is a mock implementation of the Publisher interface
type MockPublisher struct {
	mock.Mock
}

func (m *MockPublisher) Publish(topic string, message interface{}) error {
	args := m.Called(topic, message)
	return args.Error(0)
}

func newTestLogger(t *testing.T) *logger.ZapLogger {
	t.Helper()
	log, err := logger.NewZapLogger(logger.ZapConfig{Level: "fatal"}, nil)
	require.NoError(t, err)
	return log
}

func TestNewBookingGW(t *testing.T) {
	gw := NewBookingGW(&MockPublisher{}, newTestLogger(t))

	assert.NotNil(t, gw)
}

func TestBookingGW_PublishBookingCreated_Success(t *testing.T) {
	// Arrange
	mockPub := &MockPublisher{}
	gw := NewBookingGW(mockPub, newTestLogger(t))

	event := models.BookingCreatedEvent{
		BookingID:      "7b2c8e54-1f3a-4d6b-9c8e-0a1b2c3d4e5f",
		BookerEmail:    "assistant@sterlingcorp.example",
		PassengerName:  "Eleanor Whitfield",
		PassengerEmail: "e.whitfield@sterlingcorp.example",
		ScheduledAt:    time.Date(2025, 5, 20, 14, 30, 0, 0, time.UTC),
		CreatedAt:      time.Now().UTC(),
	}

	mockPub.On("Publish", constants.TopicBookingCreated, mock.MatchedBy(func(msg interface{}) bool {
		published, ok := msg.(models.BookingCreatedEvent)
		return ok &&
			published.BookingID == "7b2c8e54-1f3a-4d6b-9c8e-0a1b2c3d4e5f" &&
			published.PassengerName == "Eleanor Whitfield"
	})).Return(nil).Once()

	// Act
	err := gw.PublishBookingCreated(context.Background(), event)

	// Assert
	assert.NoError(t, err)
	mockPub.AssertExpectations(t)
}

func TestBookingGW_PublishBookingCreated_RetriesBeforeFailing(t *testing.T) {
	// Arrange
	mockPub := &MockPublisher{}
	gw := NewBookingGW(mockPub, newTestLogger(t))

	mockPub.On("Publish", constants.TopicBookingCreated, mock.Anything).
		Return(errors.New("nsqd unavailable"))

	// Act
	err := gw.PublishBookingCreated(context.Background(), models.BookingCreatedEvent{
		BookingID: "7b2c8e54-1f3a-4d6b-9c8e-0a1b2c3d4e5f",
	})

	// Assert
	assert.Error(t, err)
	assert.Contains(t, err.Error(), "failed to publish booking created event")
	// Default retry policy makes one initial attempt plus three retries
	mockPub.AssertNumberOfCalls(t, "Publish", 4)
}

func TestBookingGW_PublishBookingCreated_CancelledContext(t *testing.T) {
	// Arrange
	mockPub := &MockPublisher{}
	gw := NewBookingGW(mockPub, newTestLogger(t))

	mockPub.On("Publish", constants.TopicBookingCreated, mock.Anything).
		Return(errors.New("nsqd unavailable"))

	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	// Act
	err := gw.PublishBookingCreated(ctx, models.BookingCreatedEvent{
		BookingID: "7b2c8e54-1f3a-4d6b-9c8e-0a1b2c3d4e5f",
	})

	// Assert: the retrier gives up without burning through the backoff
	assert.Error(t, err)
	mockPub.AssertNumberOfCalls(t, "Publish", 0)
}
