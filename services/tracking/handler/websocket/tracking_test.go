package websocket

import (
	"encoding/json"
	"sync"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/BidumanADT/bellwood-admin/internal/pkg/constants"
	"github.com/BidumanADT/bellwood-admin/internal/pkg/models"
	"github.com/BidumanADT/bellwood-admin/services/tracking"
)

type sentMsg struct {
	event string
	data  interface{}
}

// fakeConn records everything sent to it
type fakeConn struct {
	id       string
	identity models.CallerIdentity
	mu       sync.Mutex
	sent     []sentMsg
}

func newFakeConn(id string, identity models.CallerIdentity) *fakeConn {
	return &fakeConn{id: id, identity: identity}
}

func (f *fakeConn) ID() string                      { return f.id }
func (f *fakeConn) Identity() models.CallerIdentity { return f.identity }

func (f *fakeConn) Send(event string, data interface{}) error {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.sent = append(f.sent, sentMsg{event: event, data: data})
	return nil
}

func (f *fakeConn) SendError(code, message string) error {
	return f.Send(constants.EventError, models.WSErrorMessage{Code: code, Message: message})
}

func (f *fakeConn) messages() []sentMsg {
	f.mu.Lock()
	defer f.mu.Unlock()
	out := make([]sentMsg, len(f.sent))
	copy(out, f.sent)
	return out
}

func (f *fakeConn) lastError() (models.WSErrorMessage, bool) {
	for _, m := range f.messages() {
		if m.event == constants.EventError {
			return m.data.(models.WSErrorMessage), true
		}
	}
	return models.WSErrorMessage{}, false
}

func newWSFixture() (*TrackingWSHandler, *tracking.SubscriptionRegistry) {
	registry := tracking.NewSubscriptionRegistry()
	return NewTrackingWSHandler(nil, registry), registry
}

func clientMessage(t *testing.T, event string, payload interface{}) []byte {
	t.Helper()
	data, err := json.Marshal(payload)
	require.NoError(t, err)
	raw, err := json.Marshal(models.WSMessage{Event: event, Data: data})
	require.NoError(t, err)
	return raw
}

func TestDispatch_InvalidJSON(t *testing.T) {
	h, _ := newWSFixture()
	conn := newFakeConn("c1", models.CallerIdentity{Role: models.RoleBooker})

	h.dispatch(conn, []byte("{not json"))

	errMsg, ok := conn.lastError()
	require.True(t, ok)
	assert.Equal(t, constants.ErrorInvalidFormat, errMsg.Code)
}

func TestDispatch_Ping(t *testing.T) {
	h, _ := newWSFixture()
	conn := newFakeConn("c1", models.CallerIdentity{Role: models.RoleBooker})

	h.dispatch(conn, clientMessage(t, constants.EventPing, nil))

	msgs := conn.messages()
	require.Len(t, msgs, 1)
	assert.Equal(t, constants.EventPong, msgs[0].event)
}

func TestDispatch_UnknownEvent(t *testing.T) {
	h, _ := newWSFixture()
	conn := newFakeConn("c1", models.CallerIdentity{Role: models.RoleBooker})

	h.dispatch(conn, clientMessage(t, "subscribe_everything", nil))

	errMsg, ok := conn.lastError()
	require.True(t, ok)
	assert.Equal(t, constants.ErrorInvalidFormat, errMsg.Code)
	assert.Contains(t, errMsg.Message, "subscribe_everything")
}

func TestSubscribeRide_JoinsAndConfirmsDirectly(t *testing.T) {
	// Arrange: a second member of the feed must not see the confirmation
	h, registry := newWSFixture()
	conn := newFakeConn("c1", models.CallerIdentity{UserID: "u1", Role: models.RoleBooker, Email: "a@b.example"})
	other := newFakeConn("c2", models.CallerIdentity{UserID: "u2", Role: models.RoleBooker})
	registry.Join(other, tracking.RideGroup("R1"))

	// Act
	h.dispatch(conn, clientMessage(t, constants.EventSubscribeRide, models.WSSubscribeRide{RideID: "R1"}))

	// Assert
	assert.True(t, registry.IsMember("c1", tracking.RideGroup("R1")))

	msgs := conn.messages()
	require.Len(t, msgs, 1)
	assert.Equal(t, constants.EventSubscriptionConfirmed, msgs[0].event)
	assert.Equal(t, models.SubscriptionConfirmed{Group: "ride:R1"}, msgs[0].data)
	assert.Empty(t, other.messages())
}

func TestSubscribeRide_MissingRideID(t *testing.T) {
	h, registry := newWSFixture()
	conn := newFakeConn("c1", models.CallerIdentity{Role: models.RoleBooker})

	h.dispatch(conn, clientMessage(t, constants.EventSubscribeRide, models.WSSubscribeRide{}))

	errMsg, ok := conn.lastError()
	require.True(t, ok)
	assert.Equal(t, constants.ErrorValidationFailed, errMsg.Code)
	assert.Equal(t, 0, registry.GroupSize(tracking.RideGroup("")))
}

func TestSubscribeDriver_DeniedForNonStaff(t *testing.T) {
	h, registry := newWSFixture()
	conn := newFakeConn("c1", models.CallerIdentity{UserID: "u-d1", Role: models.RoleDriver, DriverUID: "D1"})

	h.dispatch(conn, clientMessage(t, constants.EventSubscribeDriver, models.WSSubscribeDriver{DriverUID: "D1"}))

	errMsg, ok := conn.lastError()
	require.True(t, ok)
	assert.Equal(t, constants.ErrorUnauthorized, errMsg.Code)
	assert.False(t, registry.IsMember("c1", tracking.DriverGroup("D1")))
}

func TestSubscribeDriver_AllowedForStaff(t *testing.T) {
	h, registry := newWSFixture()
	conn := newFakeConn("c1", models.CallerIdentity{UserID: "u-p1", Role: models.RoleDispatcher})

	h.dispatch(conn, clientMessage(t, constants.EventSubscribeDriver, models.WSSubscribeDriver{DriverUID: "D1"}))

	assert.True(t, registry.IsMember("c1", tracking.DriverGroup("D1")))

	msgs := conn.messages()
	require.Len(t, msgs, 1)
	assert.Equal(t, constants.EventSubscriptionConfirmed, msgs[0].event)
}

func TestUnsubscribeRide_Idempotent(t *testing.T) {
	// Arrange
	h, registry := newWSFixture()
	conn := newFakeConn("c1", models.CallerIdentity{UserID: "u1", Role: models.RoleBooker})
	registry.Join(conn, tracking.RideGroup("R1"))

	// Act: leave once, then leave again, then leave a feed never joined
	h.dispatch(conn, clientMessage(t, constants.EventUnsubscribeRide, models.WSSubscribeRide{RideID: "R1"}))
	h.dispatch(conn, clientMessage(t, constants.EventUnsubscribeRide, models.WSSubscribeRide{RideID: "R1"}))
	h.dispatch(conn, clientMessage(t, constants.EventUnsubscribeRide, models.WSSubscribeRide{RideID: "R9"}))

	// Assert: no error events, membership gone
	assert.False(t, registry.IsMember("c1", tracking.RideGroup("R1")))
	assert.Empty(t, conn.messages())
}

func TestUnsubscribeDriver_Idempotent(t *testing.T) {
	h, registry := newWSFixture()
	conn := newFakeConn("c1", models.CallerIdentity{UserID: "u-p1", Role: models.RoleDispatcher})
	registry.Join(conn, tracking.DriverGroup("D1"))

	h.dispatch(conn, clientMessage(t, constants.EventUnsubscribeDriver, models.WSSubscribeDriver{DriverUID: "D1"}))
	h.dispatch(conn, clientMessage(t, constants.EventUnsubscribeDriver, models.WSSubscribeDriver{DriverUID: "D1"}))

	assert.False(t, registry.IsMember("c1", tracking.DriverGroup("D1")))
	assert.Empty(t, conn.messages())
}

func TestRegister_StaffAutoJoinsAdminFeed(t *testing.T) {
	h, registry := newWSFixture()

	admin := newFakeConn("c1", models.CallerIdentity{UserID: "u-a1", Role: models.RoleAdmin})
	dispatcher := newFakeConn("c2", models.CallerIdentity{UserID: "u-p1", Role: models.RoleDispatcher})
	driver := newFakeConn("c3", models.CallerIdentity{UserID: "u-d1", Role: models.RoleDriver, DriverUID: "D1"})
	booker := newFakeConn("c4", models.CallerIdentity{UserID: "u-b1", Role: models.RoleBooker})

	h.register(admin)
	h.register(dispatcher)
	h.register(driver)
	h.register(booker)

	assert.True(t, registry.IsMember("c1", constants.GroupAdmin))
	assert.True(t, registry.IsMember("c2", constants.GroupAdmin))
	assert.False(t, registry.IsMember("c3", constants.GroupAdmin))
	assert.False(t, registry.IsMember("c4", constants.GroupAdmin))
}

func TestSubscribedConnReceivesBroadcasts(t *testing.T) {
	// Arrange
	h, registry := newWSFixture()
	conn := newFakeConn("c1", models.CallerIdentity{UserID: "u1", Role: models.RoleBooker, Email: "a@b.example"})
	h.dispatch(conn, clientMessage(t, constants.EventSubscribeRide, models.WSSubscribeRide{RideID: "R1"}))

	// Act: the scheduler side of the registry pushes an update
	delivered := registry.Broadcast(tracking.RideGroup("R1"), constants.EventLocationUpdate, models.EnrichedLocation{RideID: "R1"})

	// Assert
	assert.Equal(t, 1, delivered)
	msgs := conn.messages()
	require.Len(t, msgs, 2) // confirmation then the broadcast
	assert.Equal(t, constants.EventLocationUpdate, msgs[1].event)
}
