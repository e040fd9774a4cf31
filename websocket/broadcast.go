// Package websocket handles real-time toast delivery to logged-in clients.
// file: websocket/broadcast.go
package websocket

import (
	"encoding/json"
	"time"

	"stream-music-portal/logger"
	"stream-music-portal/models"
)

// Allow tests to override the sleep behaviour.
var sleepFunc = time.Sleep

// toastDisplayDuration controls how long a toast stays on screen before the
// auto-dismiss message is sent.
var toastDisplayDuration = 4 * time.Second

// broadcast is the channel every outbound message funnels through.
var broadcast = make(chan []byte, 64)

// backlogGauge reports the queue depth left behind after each take. Tests
// substitute a recorder.
var backlogGauge = PublishBroadcastBacklog

// HandleMessages listens on the broadcast channel and distributes each
// message to matching connections. Messages that carry an audience field only
// go to clients subscribed to that audience.
func HandleMessages() {
	for {
		handleNext()
	}
}

// handleNext takes one message off the broadcast channel, records the
// remaining queue depth and fans the message out.
func handleNext() {
	msg := <-broadcast
	backlogGauge(len(broadcast), "all")
	dispatch(msg)
}

// dispatch fans one message out to every matching connection.
func dispatch(msg []byte) {
	var msgMap map[string]interface{}
	var audienceFilter string

	if err := json.Unmarshal(msg, &msgMap); err == nil {
		if a, ok := msgMap["audience"].(string); ok {
			audienceFilter = a
		}
	}

	connectionsMu.Lock()
	defer connectionsMu.Unlock()
	for c := range connections {
		if audienceFilter != "" && string(c.audience) != audienceFilter {
			continue
		}
		select {
		case c.send <- msg:
		default:
			logger.Warn.Printf("Dropping broadcast message for connection %v", c.conn.RemoteAddr())
		}
	}
}

// SendBroadcastMessage allows raw byte data to be sent over the broadcast channel.
func SendBroadcastMessage(data []byte) {
	broadcast <- data
}

// ToastBroadcaster pushes freshly created notifications to connected clients
// as transient toasts. It implements the notification service's Toaster.
type ToastBroadcaster struct{}

// ShowToast broadcasts the notification to its audience and schedules the
// matching dismiss message. The dismiss only removes the on-screen toast; the
// notification itself stays in the inbox.
func (ToastBroadcaster) ShowToast(n models.Notification) {
	show := map[string]interface{}{
		"action":       "showToast",
		"audience":     string(n.Audience),
		"notification": n,
	}
	out, err := json.Marshal(show)
	if err != nil {
		logger.Error.Printf("Error marshalling showToast message: %v", err)
		return
	}
	logger.Info.Printf("[ShowToast] audience=%s title=%q", n.Audience, n.Title)
	broadcast <- out

	go func() {
		sleepFunc(toastDisplayDuration)

		dismiss := map[string]interface{}{
			"action":   "dismissToast",
			"audience": string(n.Audience),
			"id":       n.ID,
		}
		dismissJSON, err := json.Marshal(dismiss)
		if err != nil {
			logger.Error.Printf("Error marshalling dismissToast: %v", err)
			return
		}
		broadcast <- dismissJSON
	}()

	PublishToastVolume(1, string(n.Audience))
}
