package websocket

import (
	"encoding/json"
	"fmt"
	"net/http"
	"strings"
	"sync"

	"github.com/google/uuid"
	"github.com/gorilla/websocket"
	"github.com/labstack/echo/v4"

	"github.com/BidumanADT/bellwood-admin/internal/pkg/constants"
	jwtpkg "github.com/BidumanADT/bellwood-admin/internal/pkg/jwt"
	"github.com/BidumanADT/bellwood-admin/internal/pkg/logger"
	"github.com/BidumanADT/bellwood-admin/internal/pkg/models"
)

// Client is a single authenticated WebSocket connection. Writes are
// serialized through an internal mutex; gorilla/websocket allows only
// one concurrent writer per connection.
type Client struct {
	id       string
	identity models.CallerIdentity
	conn     *websocket.Conn
	writeMu  sync.Mutex
}

// ID returns the connection id assigned at upgrade time
func (c *Client) ID() string {
	return c.id
}

// Identity returns the authenticated caller behind the connection
func (c *Client) Identity() models.CallerIdentity {
	return c.identity
}

// Send writes an event envelope to the connection
func (c *Client) Send(event string, data interface{}) error {
	if c.conn == nil {
		return nil // nil connection is allowed in tests
	}

	rawData, err := json.Marshal(data)
	if err != nil {
		return fmt.Errorf("failed to marshal event data: %w", err)
	}

	c.writeMu.Lock()
	defer c.writeMu.Unlock()

	return c.conn.WriteJSON(models.WSMessage{
		Event: event,
		Data:  rawData,
	})
}

// SendError writes an error event to the connection
func (c *Client) SendError(code, message string) error {
	return c.Send(constants.EventError, models.WSErrorMessage{
		Code:    code,
		Message: message,
	})
}

// ReadMessage blocks until the next client message arrives
func (c *Client) ReadMessage() ([]byte, error) {
	_, msg, err := c.conn.ReadMessage()
	return msg, err
}

// NewTestClient builds a client without a live connection, for tests
func NewTestClient(id string, identity models.CallerIdentity) *Client {
	return &Client{id: id, identity: identity}
}

// Manager authenticates and upgrades WebSocket connections. Group
// membership is not tracked here; the tracking subscription registry
// owns that state.
type Manager struct {
	cfg      models.JWTConfig
	upgrader websocket.Upgrader
}

// NewManager creates a new WebSocket manager
func NewManager(jwtConfig models.JWTConfig) *Manager {
	return &Manager{
		cfg: jwtConfig,
		upgrader: websocket.Upgrader{
			CheckOrigin: func(r *http.Request) bool { return true },
		},
	}
}

// HandleConnection authenticates the request, upgrades it and hands the
// connection to the given handler. The connection is closed when the
// handler returns.
func (m *Manager) HandleConnection(c echo.Context, handleClient func(*Client) error) error {
	identity, err := m.authenticate(c)
	if err != nil {
		return err
	}

	ws, err := m.upgrader.Upgrade(c.Response(), c.Request(), nil)
	if err != nil {
		return err
	}
	defer ws.Close()

	client := &Client{
		id:       uuid.New().String(),
		identity: identity,
		conn:     ws,
	}

	return handleClient(client)
}

// authenticate resolves the caller identity from the Authorization
// header, falling back to a token query parameter. Browsers cannot set
// headers on WebSocket upgrades, so passenger tracking pages pass the
// token in the URL.
func (m *Manager) authenticate(c echo.Context) (models.CallerIdentity, error) {
	tokenString := ""

	authHeader := c.Request().Header.Get("Authorization")
	if authHeader != "" {
		parts := strings.Split(authHeader, " ")
		if len(parts) != 2 || parts[0] != "Bearer" {
			return models.CallerIdentity{}, echo.NewHTTPError(http.StatusUnauthorized, "Invalid authorization format")
		}
		tokenString = parts[1]
	} else {
		tokenString = c.QueryParam("token")
	}

	if tokenString == "" {
		return models.CallerIdentity{}, echo.NewHTTPError(http.StatusUnauthorized, "Authorization is required")
	}

	claims, err := jwtpkg.ValidateToken(tokenString, m.cfg.Secret)
	if err != nil {
		logger.Warn("WebSocket token validation failed", logger.Err(err))
		return models.CallerIdentity{}, echo.NewHTTPError(http.StatusUnauthorized, "Invalid token")
	}

	identity, err := jwtpkg.IdentityFromClaims(*claims)
	if err != nil {
		return models.CallerIdentity{}, echo.NewHTTPError(http.StatusUnauthorized, "Invalid token claims")
	}

	return identity, nil
}
