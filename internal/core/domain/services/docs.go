// Package services provides the domain services of the shipping system.
//
// The package includes:
//   - ShippingCostCalculator: the single authoritative cost formula, applied
//     identically on insert, update and every cache reload
//
// Domain services hold business logic that does not belong to a single
// entity; they are stateless and safe for concurrent use.
package services
