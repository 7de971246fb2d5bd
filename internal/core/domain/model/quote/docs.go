// Package quote contains the Quote aggregate: a carrier's priced offer
// against a shipment. A quote is valid for a fixed window after submission
// and follows a two-step lifecycle,
//
//	Pending ──> Accepted
//	    │
//	    └─────> Rejected
//
// both outcomes terminal. Acceptance is guarded: an expired quote cannot be
// accepted, and at most one quote per shipment may be Accepted at any time
// (the cross-quote half of that invariant is enforced by the application
// layer inside a single transaction).
package quote
