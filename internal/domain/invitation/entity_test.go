package invitation

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func TestIsExpired(t *testing.T) {
	fresh := &Invitation{ExpiresAt: time.Now().Add(time.Hour)}
	assert.False(t, fresh.IsExpired())

	stale := &Invitation{ExpiresAt: time.Now().Add(-time.Minute)}
	assert.True(t, stale.IsExpired())
}

func TestCanBeAccepted(t *testing.T) {
	future := time.Now().Add(24 * time.Hour)
	past := time.Now().Add(-24 * time.Hour)

	pending := &Invitation{Status: StatusPending, ExpiresAt: future}
	assert.True(t, pending.CanBeAccepted())

	expired := &Invitation{Status: StatusPending, ExpiresAt: past}
	assert.False(t, expired.CanBeAccepted())

	accepted := &Invitation{Status: StatusAccepted, ExpiresAt: future}
	assert.False(t, accepted.CanBeAccepted())

	revoked := &Invitation{Status: StatusRevoked, ExpiresAt: future}
	assert.False(t, revoked.CanBeAccepted())
}
