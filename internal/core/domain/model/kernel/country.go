package kernel

import (
	"errors"
	"fmt"
)

// ErrCountryNotAllowed indicates that a country code is outside the enumerated
// set of countries the store ships to. The message deliberately carries
// "violates" so callers and operators can recognize the constraint failure.
var ErrCountryNotAllowed = errors.New("country violates allowed country codes")

// ErrCountryIsNotConstructed is returned when validating a zero-value Country.
var ErrCountryIsNotConstructed = errors.New("Country must be created via NewCountry constructor")

// countryTiers assigns every shippable country to a shipping rate tier.
// This doubles as the enumerated set of valid destination countries:
// a code absent from this map is rejected by NewCountry.
var countryTiers = map[string]shippingTier{
	"US": tierDomestic,
	"CA": tierNorthAmerica,
	"MX": tierNorthAmerica,
	"GB": tierEurope,
	"IE": tierEurope,
	"DE": tierEurope,
	"FR": tierEurope,
	"RU": tierEurope,
	"SG": tierAsiaPacific,
	"CN": tierAsiaPacific,
	"TW": tierAsiaPacific,
	"JP": tierAsiaPacific,
	"AU": tierAsiaPacific,
	"NZ": tierAsiaPacific,
}

// Country is a value object holding a destination country code from the
// enumerated set of countries the store ships to.
//
// The zero value of Country is invalid and must be constructed via NewCountry
// or DefaultCountry.
//
// Example:
//
//	country, err := kernel.NewCountry("US")
//	if err != nil {
//	    // "XX" and other unknown codes end up here
//	}
type Country struct {
	code string
}

// NewCountry creates a Country from its two-letter code.
// Returns an error wrapping ErrCountryNotAllowed for codes outside the
// enumerated set.
func NewCountry(code string) (Country, error) {
	if _, ok := countryTiers[code]; !ok {
		return Country{}, fmt.Errorf("%q: %w", code, ErrCountryNotAllowed)
	}
	return Country{code: code}, nil
}

// DefaultCountry returns the system default destination used for carts created
// for persons without a stored address.
func DefaultCountry() Country {
	return Country{code: "SG"}
}

// Code returns the two-letter country code.
func (c Country) Code() string {
	return c.code
}

// String implements fmt.Stringer.
func (c Country) String() string {
	return c.code
}

// IsEqual compares two countries by code.
func (c Country) IsEqual(other Country) bool {
	return c.code == other.code
}

// Validate checks that the Country was constructed via NewCountry.
func (c Country) Validate() error {
	if c.code == "" {
		return ErrCountryIsNotConstructed
	}
	return nil
}
