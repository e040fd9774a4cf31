//go:build integration
// +build integration

// integration/notification_stream_test.go
package integration

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/gorilla/websocket"
	"github.com/stretchr/testify/assert"

	"stream-music-portal/models"
	"stream-music-portal/services"
	ws "stream-music-portal/websocket"
)

// startStreamServer spins up the notification stream endpoint and dials it.
func startStreamServer(t *testing.T, audience string) (*httptest.Server, *websocket.Conn) {
	t.Helper()
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		ws.ServeWs(w, r)
	}))

	header := http.Header{}
	header.Set("Test-Mode", "true")
	wsURL := "ws" + server.URL[4:] + "?audience=" + audience
	conn, _, err := websocket.DefaultDialer.Dial(wsURL, header)
	assert.NoError(t, err, "WebSocket connection should succeed")
	return server, conn
}

// TestToastReachesSubscribedClient runs the full path: a domain mutation adds
// a notification, the broadcaster pushes it to the hub and the connected
// client receives the showToast followed by the dismissToast.
func TestToastReachesSubscribedClient(t *testing.T) {
	go ws.HandleMessages()

	server, conn := startStreamServer(t, "artist")
	defer server.Close()
	defer func() {
		if err := conn.Close(); err != nil {
			t.Logf("Warning: WebSocket close error: %v", err)
		}
	}()

	notifications := services.NewNotificationService(ws.ToastBroadcaster{}, nil)
	catalog := services.NewCatalogService(services.SeedReleases(), notifications)

	// give the server a moment to register the connection
	time.Sleep(200 * time.Millisecond)

	_, err := catalog.Approve("2")
	assert.NoError(t, err)

	_ = conn.SetReadDeadline(time.Now().Add(3 * time.Second))
	_, msg, err := conn.ReadMessage()
	assert.NoError(t, err, "expected the showToast frame")

	var show map[string]interface{}
	assert.NoError(t, json.Unmarshal(msg, &show))
	assert.Equal(t, "showToast", show["action"])
	assert.Equal(t, "artist", show["audience"])

	notification := show["notification"].(map[string]interface{})
	assert.Contains(t, notification["message"], "aprovado")

	// the dismiss follows after the four second display window
	_ = conn.SetReadDeadline(time.Now().Add(6 * time.Second))
	_, msg, err = conn.ReadMessage()
	assert.NoError(t, err, "expected the dismissToast frame")

	var dismiss map[string]interface{}
	assert.NoError(t, json.Unmarshal(msg, &dismiss))
	assert.Equal(t, "dismissToast", dismiss["action"])
	assert.Equal(t, notification["id"], dismiss["id"])
}

// TestAdminAudienceDoesNotReceiveArtistToasts checks audience isolation over
// a real socket.
func TestAdminAudienceDoesNotReceiveArtistToasts(t *testing.T) {
	go ws.HandleMessages()

	server, conn := startStreamServer(t, "admin")
	defer server.Close()
	defer conn.Close()

	notifications := services.NewNotificationService(ws.ToastBroadcaster{}, nil)

	time.Sleep(200 * time.Millisecond)
	notifications.Add("Para artista", "mensagem", models.AudienceArtist)

	_ = conn.SetReadDeadline(time.Now().Add(1 * time.Second))
	_, _, err := conn.ReadMessage()
	assert.Error(t, err, "admin subscriber must not see artist toasts")
}
