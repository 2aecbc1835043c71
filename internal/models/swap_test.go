package models

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestSwapRequestInvolves(t *testing.T) {
	t.Parallel()

	swap := &SwapRequest{RequesterID: "alice", ProviderID: "bob"}

	assert.True(t, swap.Involves("alice"))
	assert.True(t, swap.Involves("bob"))
	assert.False(t, swap.Involves("carol"))
	assert.False(t, swap.Involves(""))
}

func TestSwapRequestCounterparty(t *testing.T) {
	t.Parallel()

	swap := &SwapRequest{RequesterID: "alice", ProviderID: "bob"}

	assert.Equal(t, "bob", swap.Counterparty("alice"))
	assert.Equal(t, "alice", swap.Counterparty("bob"))
	assert.Equal(t, "", swap.Counterparty("carol"))
}

func TestSwapRequestHasFeedback(t *testing.T) {
	t.Parallel()

	swap := &SwapRequest{}
	assert.False(t, swap.HasFeedback())

	rating := 4
	swap.FeedbackRating = &rating
	assert.True(t, swap.HasFeedback())
}
