package models

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestCanTransition(t *testing.T) {
	t.Parallel()

	cases := []struct {
		from    SwapStatus
		to      SwapStatus
		allowed bool
	}{
		{SwapStatusPending, SwapStatusAccepted, true},
		{SwapStatusPending, SwapStatusRejected, true},
		{SwapStatusPending, SwapStatusCompleted, false},
		{SwapStatusPending, SwapStatusPending, false},
		{SwapStatusAccepted, SwapStatusCompleted, true},
		{SwapStatusAccepted, SwapStatusRejected, false},
		{SwapStatusAccepted, SwapStatusPending, false},
		{SwapStatusRejected, SwapStatusAccepted, false},
		{SwapStatusRejected, SwapStatusCompleted, false},
		{SwapStatusCompleted, SwapStatusPending, false},
		{SwapStatusCompleted, SwapStatusAccepted, false},
	}

	for _, tc := range cases {
		assert.Equal(t, tc.allowed, CanTransition(tc.from, tc.to),
			"transition %s -> %s", tc.from, tc.to)
	}
}

func TestSwapStatusIsTerminal(t *testing.T) {
	t.Parallel()

	assert.False(t, SwapStatusPending.IsTerminal())
	assert.False(t, SwapStatusAccepted.IsTerminal())
	assert.True(t, SwapStatusRejected.IsTerminal())
	assert.True(t, SwapStatusCompleted.IsTerminal())
}

func TestSwapStatusValid(t *testing.T) {
	t.Parallel()

	assert.True(t, SwapStatusPending.Valid())
	assert.True(t, SwapStatusCompleted.Valid())
	assert.False(t, SwapStatus("cancelled").Valid())
	assert.False(t, SwapStatus("").Valid())
}

func TestUserStatusValid(t *testing.T) {
	t.Parallel()

	assert.True(t, UserStatusActive.Valid())
	assert.True(t, UserStatusSuspended.Valid())
	assert.True(t, UserStatusBanned.Valid())
	assert.False(t, UserStatus("deleted").Valid())
}

func TestSkillTypeValid(t *testing.T) {
	t.Parallel()

	assert.True(t, SkillTypeOffered.Valid())
	assert.True(t, SkillTypeWanted.Valid())
	assert.False(t, SkillType("teaching").Valid())
}
