// Package websocket provides the live notification stream for the portal.
// file: websocket/connection.go
package websocket

import (
	"encoding/json"
	"net"
	"net/http"
	"sync"
	"time"

	"github.com/gorilla/websocket"

	"stream-music-portal/logger"
	"stream-music-portal/models"
)

// WSConn is an interface for the WebSocket connection.
type WSConn interface {
	WriteMessage(messageType int, data []byte) error
	SetWriteDeadline(t time.Time) error
	ReadMessage() (int, []byte, error)
	Close() error
	RemoteAddr() net.Addr
	SetReadLimit(limit int64)
	SetReadDeadline(t time.Time) error
	SetPongHandler(h func(string) error)
}

// Connection represents a single WebSocket connection for one client.
type Connection struct {
	conn     WSConn
	send     chan []byte
	audience models.Audience
	userID   string
}

// connections tracks every active client.
var (
	connections   = make(map[*Connection]bool)
	connectionsMu sync.Mutex
)

// Configuration constants.
const (
	writeWait      = 10 * time.Second
	pongWait       = 60 * time.Second
	pingPeriod     = (pongWait * 9) / 10
	maxMessageSize = 2048
)

// upgrader upgrades HTTP requests to WebSocket connections.
var upgrader = websocket.Upgrader{
	CheckOrigin: func(r *http.Request) bool {
		// Allow all if Test-Mode
		if r.Header.Get("Test-Mode") == "true" {
			return true
		}
		origin := r.Header.Get("Origin")
		return origin == "" ||
			origin == "http://localhost:8080" ||
			origin == "https://portal.streammusic.ao"
	},
}

// ServeWs upgrades the HTTP request to a WebSocket connection and starts the
// read and write pumps. The audience query parameter selects which toasts the
// client receives.
func ServeWs(w http.ResponseWriter, r *http.Request) {
	audience := models.Audience(r.URL.Query().Get("audience"))
	if audience != models.AudienceAdmin {
		audience = models.AudienceArtist
	}

	logger.Info.Printf("[ServeWs] Upgrading to WS: remoteAddr=%v, audience=%q", r.RemoteAddr, audience)
	wsConn, err := upgrader.Upgrade(w, r, nil)
	if err != nil {
		logger.Error.Printf("[ServeWs] WebSocket upgrade error: %v", err)
		return
	}

	c := &Connection{
		conn:     wsConn,
		send:     make(chan []byte, 256),
		audience: audience,
		userID:   r.URL.Query().Get("userId"),
	}

	registerConnection(c)

	go c.readPump()
	go c.writePump()
}

// readPump handles inbound messages from the client.
func (c *Connection) readPump() {
	defer func() {
		unregisterConnection(c)
		err := c.conn.Close()
		if err != nil {
			return
		}
	}()

	c.conn.SetReadLimit(maxMessageSize)
	err := c.conn.SetReadDeadline(time.Now().Add(pongWait))
	if err != nil {
		return
	}
	c.conn.SetPongHandler(func(string) error {
		return c.conn.SetReadDeadline(time.Now().Add(pongWait))
	})

	for {
		messageType, message, err := c.conn.ReadMessage()
		if err != nil {
			logger.Warn.Printf("[readPump] Read error from %v: %v", c.conn.RemoteAddr(), err)
			break
		}
		if messageType != websocket.TextMessage {
			logger.Debug.Printf("[readPump] Ignoring non-text messageType=%d", messageType)
			continue
		}

		var cm ClientMessage
		if err := json.Unmarshal(message, &cm); err != nil {
			logger.Warn.Printf("[readPump] Invalid JSON from %v: %v", c.conn.RemoteAddr(), err)
			continue
		}
		handleIncoming(c, cm)
	}
}

// writePump handles outbound messages to the client, including periodic pings.
func (c *Connection) writePump() {
	ticker := time.NewTicker(pingPeriod)
	defer func() {
		ticker.Stop()
		err := c.conn.Close()
		if err != nil {
			return
		}
	}()

	for {
		select {
		case message, ok := <-c.send:
			err := c.conn.SetWriteDeadline(time.Now().Add(writeWait))
			if err != nil {
				return
			}
			if !ok {
				logger.Debug.Printf("[writePump] Send channel closed for %v", c.conn.RemoteAddr())
				_ = c.conn.WriteMessage(websocket.CloseMessage, []byte{})
				return
			}
			if err := c.conn.WriteMessage(websocket.TextMessage, message); err != nil {
				logger.Warn.Printf("[writePump] Error writing to %v: %v", c.conn.RemoteAddr(), err)
				return
			}

		case <-ticker.C:
			err := c.conn.SetWriteDeadline(time.Now().Add(writeWait))
			if err != nil {
				return
			}
			if err := c.conn.WriteMessage(websocket.PingMessage, nil); err != nil {
				logger.Warn.Printf("[writePump] Ping error for %v: %v", c.conn.RemoteAddr(), err)
				return
			}
		}
	}
}

// registerConnection adds the given connection to the global connections map.
func registerConnection(c *Connection) {
	connectionsMu.Lock()
	connections[c] = true
	count := len(connections)
	audience := string(c.audience)
	connectionsMu.Unlock()
	PublishClientConnections(count, audience)
}

// unregisterConnection removes the given connection from the global connections map.
func unregisterConnection(c *Connection) {
	connectionsMu.Lock()
	if _, ok := connections[c]; ok {
		delete(connections, c)
	}
	count := len(connections)
	audience := string(c.audience)
	connectionsMu.Unlock()
	PublishClientConnections(count, audience)
}

// ConnectionCount reports how many clients are currently attached.
func ConnectionCount() int {
	connectionsMu.Lock()
	defer connectionsMu.Unlock()
	return len(connections)
}

// ClientMessage represents the JSON structure of messages from clients.
type ClientMessage struct {
	Action   string `json:"action"`
	Audience string `json:"audience"`
	UserID   string `json:"userId"`
}

// handleIncoming processes an inbound JSON message. Subscribe mutations take
// connectionsMu because dispatch reads audience from the broadcast goroutine.
func handleIncoming(c *Connection, cm ClientMessage) {
	logger.Debug.Printf("[handleIncoming] Action=%s, UserID=%s, Audience=%s", cm.Action, cm.UserID, cm.Audience)
	switch cm.Action {
	case "subscribe":
		connectionsMu.Lock()
		if a := models.Audience(cm.Audience); a == models.AudienceAdmin || a == models.AudienceArtist {
			c.audience = a
		}
		if cm.UserID != "" {
			c.userID = cm.UserID
		}
		audience := c.audience
		connectionsMu.Unlock()
		logger.Info.Printf("Client %v subscribed to %s toasts", c.conn.RemoteAddr(), audience)
	case "ping":
		// Keepalive from clients without native pong support.
	default:
		logger.Debug.Printf("Unhandled action: %s", cm.Action)
	}
}
