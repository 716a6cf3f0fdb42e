package models

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestStatusIndex(t *testing.T) {
	assert.Equal(t, 0, StatusIndex(StatusPaid))
	assert.Equal(t, 2, StatusIndex(StatusReadyForDelivery))
	assert.Equal(t, 4, StatusIndex(StatusDelivered))
	assert.Equal(t, -1, StatusIndex(OrderStatus("refunded")))
}

func TestNextStatusWalksTheLadder(t *testing.T) {
	status := StatusPaid
	var walked []OrderStatus
	for range StatusSteps {
		walked = append(walked, status)
		status = NextStatus(status)
	}

	assert.Equal(t, StatusSteps, walked)
}

func TestNextStatusDeliveredIsTerminal(t *testing.T) {
	assert.Equal(t, StatusDelivered, NextStatus(StatusDelivered))
}

func TestNextStatusUnknownUnchanged(t *testing.T) {
	unknown := OrderStatus("refunded")
	assert.Equal(t, unknown, NextStatus(unknown))
}
