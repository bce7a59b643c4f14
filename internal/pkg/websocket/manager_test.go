package websocket

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/Juankcba/choapp-back/internal/pkg/constants"
	jwtpkg "github.com/Juankcba/choapp-back/internal/pkg/jwt"
	"github.com/Juankcba/choapp-back/internal/pkg/models"
	"github.com/Juankcba/choapp-back/internal/pkg/presence"
	"github.com/gorilla/websocket"
	"github.com/labstack/echo/v4"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

var testJWT = models.JWTConfig{Secret: "ws-secret", Issuer: "choapp"}

func setupServer(t *testing.T) (*Manager, *httptest.Server) {
	m := NewManager(testJWT, presence.NewMemoryRegistry())
	e := echo.New()
	e.GET("/ws", m.HandleConnection)
	srv := httptest.NewServer(e)
	t.Cleanup(srv.Close)
	return m, srv
}

func dial(t *testing.T, srv *httptest.Server, userID string) *websocket.Conn {
	token, err := jwtpkg.GenerateToken(userID, "", "caregiver", testJWT.Secret, testJWT.Issuer, time.Hour)
	require.NoError(t, err)

	url := "ws" + strings.TrimPrefix(srv.URL, "http") + "/ws?token=" + token
	conn, _, err := websocket.DefaultDialer.Dial(url, nil)
	require.NoError(t, err)
	t.Cleanup(func() { conn.Close() })

	var hello models.WSFrame
	require.NoError(t, conn.ReadJSON(&hello))
	require.Equal(t, constants.EventConnected, hello.Event)
	return conn
}

func TestManager_RejectsUnauthenticated(t *testing.T) {
	_, srv := setupServer(t)

	url := "ws" + strings.TrimPrefix(srv.URL, "http") + "/ws"
	_, resp, err := websocket.DefaultDialer.Dial(url, nil)
	require.Error(t, err)
	require.NotNil(t, resp)
	assert.Equal(t, http.StatusUnauthorized, resp.StatusCode)
}

func TestManager_PresenceFollowsConnections(t *testing.T) {
	m, srv := setupServer(t)

	c1 := dial(t, srv, "u1")
	c2 := dial(t, srv, "u1")
	assert.True(t, m.IsOnline("u1"))
	assert.Equal(t, 1, m.OnlineCount())

	c1.Close()
	assert.Eventually(t, func() bool { return len(m.presence.Connections("u1")) == 1 }, time.Second, 10*time.Millisecond)
	assert.True(t, m.IsOnline("u1"))

	c2.Close()
	assert.Eventually(t, func() bool { return !m.IsOnline("u1") }, time.Second, 10*time.Millisecond)
}

func TestManager_NotifyUser_AllConnections(t *testing.T) {
	m, srv := setupServer(t)

	c1 := dial(t, srv, "u1")
	c2 := dial(t, srv, "u1")

	require.NoError(t, m.NotifyUser("u1", constants.EventServiceNearby, map[string]string{"service_id": "s1"}))

	for _, c := range []*websocket.Conn{c1, c2} {
		var msg models.WSFrame
		require.NoError(t, c.SetReadDeadline(time.Now().Add(time.Second)))
		require.NoError(t, c.ReadJSON(&msg))
		assert.Equal(t, constants.EventServiceNearby, msg.Event)

		var data map[string]string
		require.NoError(t, json.Unmarshal(msg.Data, &data))
		assert.Equal(t, "s1", data["service_id"])
	}
}

func TestManager_NotifyUser_Offline(t *testing.T) {
	m := NewManager(testJWT, presence.NewMemoryRegistry())
	assert.ErrorIs(t, m.NotifyUser("nobody", "x", nil), ErrUserOffline)
}

func TestManager_PingPong(t *testing.T) {
	_, srv := setupServer(t)
	c := dial(t, srv, "u1")

	require.NoError(t, c.WriteJSON(models.WSFrame{Event: constants.EventPing, Data: json.RawMessage(`{}`)}))

	var msg models.WSFrame
	require.NoError(t, c.SetReadDeadline(time.Now().Add(time.Second)))
	require.NoError(t, c.ReadJSON(&msg))
	assert.Equal(t, constants.EventPong, msg.Event)
}

func TestManager_UnknownEvent(t *testing.T) {
	_, srv := setupServer(t)
	c := dial(t, srv, "u1")

	require.NoError(t, c.WriteJSON(models.WSFrame{Event: "register", Data: json.RawMessage(`{}`)}))

	var msg models.WSFrame
	require.NoError(t, c.SetReadDeadline(time.Now().Add(time.Second)))
	require.NoError(t, c.ReadJSON(&msg))
	assert.Equal(t, constants.EventError, msg.Event)
}
