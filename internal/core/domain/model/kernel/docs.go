// Package kernel provides core domain primitives and utilities for the store system.
// It implements fundamental building blocks following Domain-Driven Design principles
// that are used throughout the domain model.
//
// The package includes:
//   - Country: A value object for destination country codes, validated against the
//     enumerated set of countries the store ships to
//   - ShippingCost: The pure shipping cost schedule mapping a destination country
//     and a shipment weight to a flat shipping fee
//
// These primitives enforce domain invariants and validation rules, ensuring that
// domain objects are always in a valid state. They are designed to be immutable
// and thread-safe, making them suitable for concurrent use.
//
// The package follows Domain-Driven Design best practices, providing rich domain
// behavior and encapsulation of implementation details.
package kernel
