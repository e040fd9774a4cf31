// file: models/release_test.go
package models_test

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"stream-music-portal/models"
)

func TestRelease_Pending(t *testing.T) {
	cases := []struct {
		status  models.ReleaseStatus
		pending bool
	}{
		{models.StatusInReview, true},
		{models.StatusNeedsCorrection, true},
		{models.StatusDistributed, false},
		{models.StatusRejected, false},
		{models.StatusApproved, false},
	}

	for _, tc := range cases {
		r := models.Release{Status: tc.status}
		assert.Equal(t, tc.pending, r.Pending(), "status %s", tc.status)
	}
}

func TestUser_IsAdmin(t *testing.T) {
	assert.True(t, models.User{Role: models.RoleAdmin}.IsAdmin())
	assert.False(t, models.User{Role: models.RoleArtist}.IsAdmin())
}
