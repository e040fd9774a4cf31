// file: websocket/connection_test.go

//go:build unit
// +build unit

package websocket

import (
	"net"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"

	"stream-music-portal/models"
)

// fakeConn satisfies WSConn without a network socket.
type fakeConn struct{}

func (fakeConn) WriteMessage(int, []byte) error      { return nil }
func (fakeConn) SetWriteDeadline(time.Time) error    { return nil }
func (fakeConn) ReadMessage() (int, []byte, error)   { return 0, nil, nil }
func (fakeConn) Close() error                        { return nil }
func (fakeConn) RemoteAddr() net.Addr                { return &net.TCPAddr{} }
func (fakeConn) SetReadLimit(int64)                  {}
func (fakeConn) SetReadDeadline(time.Time) error     { return nil }
func (fakeConn) SetPongHandler(func(string) error)   {}

func newTestConnection(audience models.Audience) *Connection {
	return &Connection{
		conn:     fakeConn{},
		send:     make(chan []byte, 8),
		audience: audience,
	}
}

func TestDispatch_FiltersByAudience(t *testing.T) {
	InitTest()

	artist := newTestConnection(models.AudienceArtist)
	admin := newTestConnection(models.AudienceAdmin)
	registerConnection(artist)
	registerConnection(admin)
	defer unregisterConnection(artist)
	defer unregisterConnection(admin)

	dispatch([]byte(`{"action":"showToast","audience":"artist"}`))

	assert.Len(t, artist.send, 1, "artist connection receives artist toasts")
	assert.Len(t, admin.send, 0, "admin connection is skipped")
}

func TestDispatch_NoAudienceReachesEveryone(t *testing.T) {
	InitTest()

	artist := newTestConnection(models.AudienceArtist)
	admin := newTestConnection(models.AudienceAdmin)
	registerConnection(artist)
	registerConnection(admin)
	defer unregisterConnection(artist)
	defer unregisterConnection(admin)

	dispatch([]byte(`{"action":"ping"}`))

	assert.Len(t, artist.send, 1)
	assert.Len(t, admin.send, 1)
}

func TestHandleIncoming_SubscribeSwitchesAudience(t *testing.T) {
	InitTest()

	c := newTestConnection(models.AudienceArtist)
	handleIncoming(c, ClientMessage{Action: "subscribe", Audience: "admin", UserID: "admin-master"})

	assert.Equal(t, models.AudienceAdmin, c.audience)
	assert.Equal(t, "admin-master", c.userID)
}

func TestHandleIncoming_RejectsUnknownAudience(t *testing.T) {
	InitTest()

	c := newTestConnection(models.AudienceArtist)
	handleIncoming(c, ClientMessage{Action: "subscribe", Audience: "superuser"})

	assert.Equal(t, models.AudienceArtist, c.audience, "unknown audiences keep the current one")
}

// TestHandleIncoming_SubscribeWhileDispatching flips the subscription from a
// second goroutine while toasts fan out, the way a client re-subscribing
// mid-broadcast does. Run with -race.
func TestHandleIncoming_SubscribeWhileDispatching(t *testing.T) {
	InitTest()

	c := &Connection{
		conn:     fakeConn{},
		send:     make(chan []byte, 1024),
		audience: models.AudienceArtist,
	}
	registerConnection(c)
	defer unregisterConnection(c)

	done := make(chan struct{})
	go func() {
		defer close(done)
		for i := 0; i < 200; i++ {
			handleIncoming(c, ClientMessage{Action: "subscribe", Audience: "admin", UserID: "admin-master"})
			handleIncoming(c, ClientMessage{Action: "subscribe", Audience: "artist", UserID: "user-1"})
		}
	}()
	for i := 0; i < 200; i++ {
		dispatch([]byte(`{"action":"showToast","audience":"admin"}`))
	}
	<-done

	assert.Equal(t, models.AudienceArtist, c.audience, "the last subscribe wins")
}

func TestConnectionCount(t *testing.T) {
	InitTest()

	assert.Equal(t, 0, ConnectionCount())
	c := newTestConnection(models.AudienceArtist)
	registerConnection(c)
	assert.Equal(t, 1, ConnectionCount())
	unregisterConnection(c)
	assert.Equal(t, 0, ConnectionCount())
}
