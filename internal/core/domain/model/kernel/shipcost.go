package kernel

import "github.com/shopspring/decimal"

// shippingTier groups countries that share a shipping cost vector.
type shippingTier int

const (
	tierDefault shippingTier = iota
	tierDomestic
	tierNorthAmerica
	tierEurope
	tierAsiaPacific
)

// weightBreakpoints are the upper bounds of the five chargeable weight
// brackets: (0, 0.5], (0.5, 1], (1, 2], (2, 4] and everything above 4.
// Weights of zero or less are never charged.
var weightBreakpoints = []decimal.Decimal{
	decimal.NewFromFloat(0.5),
	decimal.NewFromInt(1),
	decimal.NewFromInt(2),
	decimal.NewFromInt(4),
}

// costVector holds the flat fee per chargeable weight bracket.
type costVector [5]int

// shippingRates is the cost vector per tier. The schedule is seed data;
// replacing a vector here changes the fees without touching any control flow.
var shippingRates = map[shippingTier]costVector{
	tierDomestic:     {3, 4, 5, 7, 12},
	tierNorthAmerica: {5, 6, 8, 10, 13},
	tierEurope:       {7, 8, 9, 11, 13},
	tierAsiaPacific:  {6, 7, 8, 10, 14},
	tierDefault:      {20, 20, 20, 20, 20},
}

// ShippingCost returns the flat shipping fee for a shipment of the given total
// weight to the given country code.
//
// The function is pure and performs no validation of the country code: any
// string is accepted, and codes outside the shipping tiers fall back to the
// default rate. A weight of zero or less costs nothing for every country.
func ShippingCost(country string, weight decimal.Decimal) int {
	if weight.Sign() <= 0 {
		return 0
	}

	tier, ok := countryTiers[country]
	if !ok {
		tier = tierDefault
	}
	rates := shippingRates[tier]

	for i, breakpoint := range weightBreakpoints {
		if weight.Cmp(breakpoint) <= 0 {
			return rates[i]
		}
	}
	return rates[len(rates)-1]
}
