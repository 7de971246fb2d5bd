// Package shipment contains the Shipment aggregate of the freight domain:
// a cargo owner's request to move goods from an origin to a destination,
// optionally through intermediate stops.
//
// The aggregate owns the shipment status state machine. Every status change
// goes through a transition method that enforces the lifecycle rules; no
// other code writes the status field. The progression is
//
//	Requested ──> Available ──> InProgress ──> Completed
//	     │            │              │
//	     └────────────┴──────────────┴──> Cancelled
//
// Requested becomes Available when the first quote arrives. StartTrip and
// CompleteTrip are carrier-driven; Cancel is reachable from any non-terminal
// status. Shipments are never hard-deleted, they are retained for history
// and reporting.
package shipment
