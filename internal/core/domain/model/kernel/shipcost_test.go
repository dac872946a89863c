package kernel_test

import (
	"fmt"
	"testing"

	"store/internal/core/domain/model/kernel"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
)

func TestShippingCost(t *testing.T) {
	testCases := []struct {
		country string
		weight  float64
		cost    int
	}{
		// zero weight is free everywhere, even for unknown codes
		{"US", 0, 0},
		{"CA", 0, 0},
		{"ZH", 0, 0},
		{"US", -1, 0},

		{"US", 0.1, 3},
		{"US", 0.5, 3},
		{"US", 1, 4},
		{"US", 1.5, 5},
		{"US", 2, 5},
		{"US", 4, 7},
		{"US", 4.01, 12},

		{"CA", 0.3, 5},
		{"CA", 1, 6},
		{"CA", 400, 13},

		{"RU", 0.5, 7},
		{"IE", 1, 8},
		{"IE", 1.01, 9},
		{"SG", 400, 14},

		// unknown countries always pay the default flat rate
		{"XX", 1, 20},
		{"XX", 1000, 20},
	}

	for _, tc := range testCases {
		t.Run(fmt.Sprintf("%s_%v", tc.country, tc.weight), func(t *testing.T) {
			cost := kernel.ShippingCost(tc.country, decimal.NewFromFloat(tc.weight))
			assert.Equal(t, tc.cost, cost)
		})
	}
}

func TestShippingCost_BracketBoundariesAreHalfOpen(t *testing.T) {
	// each breakpoint belongs to the cheaper bracket
	assert.Equal(t, 3, kernel.ShippingCost("US", decimal.NewFromFloat(0.5)))
	assert.Equal(t, 4, kernel.ShippingCost("US", decimal.NewFromFloat(0.51)))
	assert.Equal(t, 4, kernel.ShippingCost("US", decimal.NewFromInt(1)))
	assert.Equal(t, 5, kernel.ShippingCost("US", decimal.NewFromFloat(1.001)))
	assert.Equal(t, 7, kernel.ShippingCost("US", decimal.NewFromInt(4)))
	assert.Equal(t, 12, kernel.ShippingCost("US", decimal.NewFromFloat(4.001)))
}
