// file: websocket/broadcast_test.go

//go:build unit
// +build unit

package websocket

import (
	"encoding/json"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"

	"stream-music-portal/models"
)

// TestShowToast_BroadcastsShowThenDismiss verifies the show message goes out
// immediately and the dismiss follows after the display window.
func TestShowToast_BroadcastsShowThenDismiss(t *testing.T) {
	InitTest()

	slept := make(chan time.Duration, 1)
	sleepFunc = func(d time.Duration) {
		slept <- d
	}

	n := models.Notification{
		ID:       "n-1",
		Title:    "Aviso do Sistema",
		Message:  "Seu lançamento foi aprovado",
		Audience: models.AudienceArtist,
	}
	ToastBroadcaster{}.ShowToast(n)

	// the show message is queued synchronously
	select {
	case msg := <-broadcast:
		var decoded map[string]interface{}
		assert.NoError(t, json.Unmarshal(msg, &decoded))
		assert.Equal(t, "showToast", decoded["action"])
		assert.Equal(t, "artist", decoded["audience"])
	default:
		t.Fatal("Expected showToast in broadcast channel, but got none")
	}

	// the dismiss is scheduled for the display window
	select {
	case d := <-slept:
		assert.Equal(t, 4*time.Second, d, "toasts stay for four seconds")
	case <-time.After(time.Second):
		t.Fatal("Expected the dismiss goroutine to sleep")
	}

	select {
	case msg := <-broadcast:
		var decoded map[string]interface{}
		assert.NoError(t, json.Unmarshal(msg, &decoded))
		assert.Equal(t, "dismissToast", decoded["action"])
		assert.Equal(t, "n-1", decoded["id"])
	case <-time.After(time.Second):
		t.Fatal("Expected dismissToast in broadcast channel, but got none")
	}
}

// TestHandleNext_ReportsQueueDepth verifies each take off the broadcast
// channel records the remaining backlog and delivers the message.
func TestHandleNext_ReportsQueueDepth(t *testing.T) {
	InitTest()

	var depths []int
	backlogGauge = func(depth int, _ string) {
		depths = append(depths, depth)
	}

	c := newTestConnection(models.AudienceArtist)
	registerConnection(c)
	defer unregisterConnection(c)

	SendBroadcastMessage([]byte(`{"action":"showToast","audience":"artist"}`))
	SendBroadcastMessage([]byte(`{"action":"showToast","audience":"artist"}`))

	handleNext()
	handleNext()

	assert.Equal(t, []int{1, 0}, depths, "depth shrinks as the queue drains")
	assert.Len(t, c.send, 2, "both messages reach the subscriber")
}

// TestSendBroadcastMessage verifies raw bytes pass through untouched.
func TestSendBroadcastMessage(t *testing.T) {
	InitTest()

	SendBroadcastMessage([]byte(`{"action":"custom"}`))

	select {
	case msg := <-broadcast:
		assert.JSONEq(t, `{"action":"custom"}`, string(msg))
	default:
		t.Fatal("Expected message in broadcast channel, but got none")
	}
}
