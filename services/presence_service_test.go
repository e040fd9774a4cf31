// file: services/presence_service_test.go
package services_test

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"

	"stream-music-portal/services"
)

func TestPresenceService_TouchAndCount(t *testing.T) {
	svc := services.NewPresenceService()
	assert.Equal(t, 0, svc.ActiveCount(time.Minute))

	svc.Touch("user-1")
	svc.Touch("user-2")
	svc.Touch("user-1") // repeated touches do not double count

	assert.Equal(t, 2, svc.ActiveCount(time.Minute))
}

func TestPresenceService_IgnoresEmptyID(t *testing.T) {
	svc := services.NewPresenceService()
	svc.Touch("")
	assert.Equal(t, 0, svc.ActiveCount(time.Minute))
}

func TestPresenceService_Forget(t *testing.T) {
	svc := services.NewPresenceService()
	svc.Touch("user-1")
	svc.Forget("user-1")
	assert.Equal(t, 0, svc.ActiveCount(time.Minute))
}
