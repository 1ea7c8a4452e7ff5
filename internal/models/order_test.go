package models

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestParseOrderStatus(t *testing.T) {
	status, err := ParseOrderStatus("PROCESSING")
	assert.NoError(t, err)
	assert.Equal(t, StatusProcessing, status)

	_, err = ParseOrderStatus("REFUNDED")
	assert.Error(t, err)
}

func TestTerminalStatuses(t *testing.T) {
	assert.True(t, StatusDelivered.IsTerminal())
	assert.True(t, StatusCancelled.IsTerminal())
	assert.False(t, StatusPendingVerification.IsTerminal())
	assert.False(t, StatusShipped.IsTerminal())
}

func TestCanTransitionTo(t *testing.T) {
	// Staff may move a live order anywhere, including backwards and to
	// CANCELLED.
	assert.True(t, StatusPendingVerification.CanTransitionTo(StatusProcessing))
	assert.True(t, StatusShipped.CanTransitionTo(StatusProcessing))
	assert.True(t, StatusProcessing.CanTransitionTo(StatusCancelled))
	assert.True(t, StatusPendingPayment.CanTransitionTo(StatusDelivered))

	// Terminal orders never move again.
	assert.False(t, StatusDelivered.CanTransitionTo(StatusProcessing))
	assert.False(t, StatusCancelled.CanTransitionTo(StatusPendingVerification))

	// Self-transitions and unknown targets are rejected.
	assert.False(t, StatusProcessing.CanTransitionTo(StatusProcessing))
	assert.False(t, StatusProcessing.CanTransitionTo(OrderStatus("REFUNDED")))
}
