// Package websocket test_helpers.go
package websocket

import "time"

// InitTest resets the hub's shared state between tests.
func InitTest() {
	// Flush the broadcast channel if necessary.
	for len(broadcast) > 0 {
		<-broadcast
	}
	toastDisplayDuration = 4 * time.Second
	sleepFunc = time.Sleep
	backlogGauge = PublishBroadcastBacklog

	connectionsMu.Lock()
	connections = make(map[*Connection]bool)
	connectionsMu.Unlock()
}
