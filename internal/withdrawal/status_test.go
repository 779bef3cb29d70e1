package withdrawal

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestCanTransition(t *testing.T) {
	assert.True(t, CanTransition(StatusPending, StatusApproved))
	assert.True(t, CanTransition(StatusPending, StatusRejected))

	// Terminal states never move again, whatever the target.
	for _, from := range []string{StatusApproved, StatusRejected} {
		for _, to := range []string{StatusPending, StatusApproved, StatusRejected} {
			assert.False(t, CanTransition(from, to), "%s -> %s", from, to)
		}
	}

	assert.False(t, CanTransition(StatusPending, StatusPending))
	assert.False(t, CanTransition(StatusPending, "deleted"))
}

func TestIsTerminal(t *testing.T) {
	assert.False(t, IsTerminal(StatusPending))
	assert.True(t, IsTerminal(StatusApproved))
	assert.True(t, IsTerminal(StatusRejected))
}
