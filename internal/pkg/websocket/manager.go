package websocket

import (
	"encoding/json"
	"errors"
	"fmt"
	"net/http"
	"strings"
	"sync"
	"time"

	"github.com/Juankcba/choapp-back/internal/pkg/constants"
	jwtpkg "github.com/Juankcba/choapp-back/internal/pkg/jwt"
	"github.com/Juankcba/choapp-back/internal/pkg/logger"
	"github.com/Juankcba/choapp-back/internal/pkg/models"
	"github.com/Juankcba/choapp-back/internal/pkg/presence"
	"github.com/google/uuid"
	"github.com/gorilla/websocket"
	"github.com/labstack/echo/v4"
)

const (
	writeWait      = 10 * time.Second
	pongWait       = 60 * time.Second
	pingPeriod     = (pongWait * 9) / 10
	maxMessageSize = 4096
	sendBuffer     = 32
)

// ErrUserOffline is returned when a push targets a user with no live connection
var ErrUserOffline = errors.New("user has no live connection")

// Client is one authenticated realtime connection
type Client struct {
	ConnID string
	UserID string
	Role   string
	conn   *websocket.Conn
	send   chan []byte
	once   sync.Once
}

func (c *Client) close() {
	c.once.Do(func() { close(c.send) })
}

// Manager owns realtime connections and keeps the presence registry in sync with them
type Manager struct {
	sync.RWMutex
	clients  map[string]*Client
	presence presence.Registry
	cfg      models.JWTConfig
	upgrader websocket.Upgrader
}

// NewManager creates a new WebSocket manager
func NewManager(jwtConfig models.JWTConfig, registry presence.Registry) *Manager {
	return &Manager{
		clients:  make(map[string]*Client),
		presence: registry,
		cfg:      jwtConfig,
		upgrader: websocket.Upgrader{
			ReadBufferSize:  1024,
			WriteBufferSize: 1024,
			CheckOrigin:     func(r *http.Request) bool { return true },
		},
	}
}

// HandleConnection authenticates, upgrades and serves a connection until it closes
func (m *Manager) HandleConnection(c echo.Context) error {
	claims, err := m.authenticate(c)
	if err != nil {
		return err
	}

	ws, err := m.upgrader.Upgrade(c.Response(), c.Request(), nil)
	if err != nil {
		logger.Warn("WebSocket upgrade failed", logger.Err(err))
		return nil
	}

	client := &Client{
		ConnID: uuid.NewString(),
		UserID: claims.UserID,
		Role:   claims.Role,
		conn:   ws,
		send:   make(chan []byte, sendBuffer),
	}
	m.AddClient(client)

	logger.Info("WebSocket client connected",
		logger.UserID(client.UserID),
		logger.String("conn_id", client.ConnID),
		logger.String("role", client.Role))

	_ = m.Send(client, constants.EventConnected, map[string]string{
		"user_id": client.UserID,
		"conn_id": client.ConnID,
	})

	go m.writePump(client)
	m.readPump(client)
	return nil
}

func (m *Manager) authenticate(c echo.Context) (*jwtpkg.Claims, error) {
	token := c.QueryParam("token")
	if authHeader := c.Request().Header.Get("Authorization"); authHeader != "" {
		parts := strings.SplitN(authHeader, " ", 2)
		if len(parts) != 2 || parts[0] != "Bearer" {
			return nil, echo.NewHTTPError(http.StatusUnauthorized, "Invalid authorization format")
		}
		token = parts[1]
	}
	if token == "" {
		return nil, echo.NewHTTPError(http.StatusUnauthorized, "Authorization is required")
	}

	claims, err := jwtpkg.ValidateToken(token, m.cfg.Secret, m.cfg.Issuer)
	if err != nil {
		logger.Warn("Token validation failed", logger.Err(err))
		return nil, echo.NewHTTPError(http.StatusUnauthorized, "Invalid token")
	}
	return claims, nil
}

// AddClient registers a connection and marks its user online
func (m *Manager) AddClient(client *Client) {
	m.Lock()
	m.clients[client.ConnID] = client
	m.Unlock()
	m.presence.Register(client.UserID, client.ConnID)
}

// RemoveClient drops a connection; its user goes offline with the last one
func (m *Manager) RemoveClient(connID string) {
	m.Lock()
	client, ok := m.clients[connID]
	delete(m.clients, connID)
	m.Unlock()

	m.presence.Unregister(connID)
	if ok {
		client.close()
	}
}

// IsOnline reports whether the user holds a live connection
func (m *Manager) IsOnline(userID string) bool {
	return m.presence.IsOnline(userID)
}

// OnlineCount returns the number of connected users
func (m *Manager) OnlineCount() int {
	return m.presence.OnlineCount()
}

// NotifyUser sends an event to every connection of the user
func (m *Manager) NotifyUser(userID, event string, data interface{}) error {
	connIDs := m.presence.Connections(userID)
	if len(connIDs) == 0 {
		return ErrUserOffline
	}

	frame, err := encode(event, data)
	if err != nil {
		return err
	}

	delivered := 0
	m.RLock()
	for _, id := range connIDs {
		client, ok := m.clients[id]
		if !ok {
			continue
		}
		if m.enqueue(client, frame) {
			delivered++
		}
	}
	m.RUnlock()

	logger.Debug("Notified user",
		logger.UserID(userID),
		logger.String("event", event),
		logger.Int("connections", delivered))

	if delivered == 0 {
		return ErrUserOffline
	}
	return nil
}

// Send queues an event on a single connection
func (m *Manager) Send(client *Client, event string, data interface{}) error {
	frame, err := encode(event, data)
	if err != nil {
		return err
	}
	if !m.enqueue(client, frame) {
		return fmt.Errorf("send buffer full for connection %s", client.ConnID)
	}
	return nil
}

// SendError queues an error frame on a single connection
func (m *Manager) SendError(client *Client, code, message string) error {
	return m.Send(client, constants.EventError, models.WSError{Code: code, Message: message})
}

func (m *Manager) enqueue(client *Client, frame []byte) (ok bool) {
	defer func() {
		// send on a channel closed by a concurrent RemoveClient
		if recover() != nil {
			ok = false
		}
	}()
	select {
	case client.send <- frame:
		return true
	default:
		logger.Warn("Dropping frame for slow connection",
			logger.UserID(client.UserID),
			logger.String("conn_id", client.ConnID))
		return false
	}
}

func encode(event string, data interface{}) ([]byte, error) {
	raw, err := json.Marshal(data)
	if err != nil {
		return nil, fmt.Errorf("error marshaling message data: %w", err)
	}
	return json.Marshal(models.WSFrame{Event: event, Data: raw})
}

func (m *Manager) readPump(client *Client) {
	defer func() {
		m.RemoveClient(client.ConnID)
		client.conn.Close()
		logger.Info("WebSocket client disconnected",
			logger.UserID(client.UserID),
			logger.String("conn_id", client.ConnID))
	}()

	client.conn.SetReadLimit(maxMessageSize)
	_ = client.conn.SetReadDeadline(time.Now().Add(pongWait))
	client.conn.SetPongHandler(func(string) error {
		return client.conn.SetReadDeadline(time.Now().Add(pongWait))
	})

	for {
		_, payload, err := client.conn.ReadMessage()
		if err != nil {
			if websocket.IsUnexpectedCloseError(err, websocket.CloseGoingAway, websocket.CloseNormalClosure) {
				logger.Warn("WebSocket read error", logger.UserID(client.UserID), logger.Err(err))
			}
			return
		}
		m.handleFrame(client, payload)
	}
}

// handleFrame answers client frames; the channel is server-push only apart from ping
func (m *Manager) handleFrame(client *Client, payload []byte) {
	var msg models.WSFrame
	if err := json.Unmarshal(payload, &msg); err != nil {
		_ = m.SendError(client, constants.ErrorInvalidFormat, "Invalid message format")
		return
	}

	switch msg.Event {
	case constants.EventPing:
		_ = m.Send(client, constants.EventPong, map[string]int64{"ts": time.Now().Unix()})
	default:
		_ = m.SendError(client, constants.ErrorUnknownEvent, "Unknown event: "+msg.Event)
	}
}

func (m *Manager) writePump(client *Client) {
	ticker := time.NewTicker(pingPeriod)
	defer func() {
		ticker.Stop()
		client.conn.Close()
	}()

	for {
		select {
		case frame, ok := <-client.send:
			_ = client.conn.SetWriteDeadline(time.Now().Add(writeWait))
			if !ok {
				_ = client.conn.WriteMessage(websocket.CloseMessage, []byte{})
				return
			}
			if err := client.conn.WriteMessage(websocket.TextMessage, frame); err != nil {
				return
			}
		case <-ticker.C:
			_ = client.conn.SetWriteDeadline(time.Now().Add(writeWait))
			if err := client.conn.WriteMessage(websocket.PingMessage, nil); err != nil {
				return
			}
		}
	}
}
