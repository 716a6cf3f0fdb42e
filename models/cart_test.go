package models

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestCartTotal(t *testing.T) {
	items := []CartItem{
		{ID: "a", UnitPrice: 15.90, Quantity: 2},
		{ID: "b", UnitPrice: 45.90, Quantity: 1},
	}

	assert.Equal(t, 77.70, CartTotal(items))
}

func TestCartTotalEmpty(t *testing.T) {
	assert.Equal(t, 0.0, CartTotal(nil))
}

func TestCartTotalNoFloatDrift(t *testing.T) {
	// 0.10 × 3 accumulates drift under binary floats.
	items := []CartItem{
		{ID: "a", UnitPrice: 0.10, Quantity: 3},
	}

	assert.Equal(t, 0.30, CartTotal(items))
}
