// Package services provides domain services that orchestrate business operations
// across multiple domain entities in the freight marketplace. It implements
// business workflows that don't naturally belong to a single aggregate root.
//
// The package includes:
//   - QuoteAward: A domain service guarding quote acceptance against the shipment lifecycle
//   - TripAuthorizer: A domain service authorizing trip transitions against the accepted quote
//
// Domain services coordinate between aggregates, implementing business logic that
// spans multiple bounded contexts following Domain-Driven Design principles.
package services
