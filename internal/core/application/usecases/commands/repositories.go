// Package commands contains business operations that modify system state.
// Implements the Command pattern for write operations in the CQRS architecture.
// All commands follow a consistent pattern: validation, transaction management, and persistence.
package commands

import (
	"context"

	"freight/internal/core/ports"
)

// Unit of Work interfaces provide transaction management for command handlers.
// These abstractions ensure data consistency across aggregate boundaries.
type (
	// TxManager handles database transaction lifecycle.
	// Ensures atomic operations across multiple repository calls.
	TxManager interface {
		Begin(ctx context.Context) error
		Commit(ctx context.Context) error
		Rollback(ctx context.Context) error
	}

	// ShipmentRepoFactory provides access to the shipment repository within a transaction.
	ShipmentRepoFactory interface {
		ShipmentRepository() ports.ShipmentRepository
	}

	// QuoteRepoFactory provides access to the quote repository within a transaction.
	QuoteRepoFactory interface {
		QuoteRepository() ports.QuoteRepository
	}

	// ProfileRepoFactory provides access to the profile repository within a transaction.
	ProfileRepoFactory interface {
		ProfileRepository() ports.ProfileRepository
	}

	// FleetRepoFactory provides access to the fleet repository within a transaction.
	FleetRepoFactory interface {
		FleetRepository() ports.FleetRepository
	}

	// ScoringRepoFactory provides access to the scoring repository within a transaction.
	ScoringRepoFactory interface {
		ScoringRepository() ports.ScoringRepository
	}

	// HistoryRepoFactory provides access to the transition log within a transaction.
	HistoryRepoFactory interface {
		HistoryRepository() ports.HistoryRepository
	}

	// ShipmentUoW manages transactions for shipment creation; profile access
	// is needed to verify the owner may publish shipments.
	ShipmentUoW interface {
		TxManager
		ShipmentRepoFactory
		ProfileRepoFactory
	}

	// ShipmentUoWFactory creates new shipment unit of work instances.
	ShipmentUoWFactory interface {
		Create() ShipmentUoW
	}

	// LifecycleUoW manages transactions for lifecycle transitions, which touch
	// the shipment, its quotes, and the transition log together.
	//
	// Example:
	//   uow := factory.Create()
	//   err := uow.Begin(ctx)
	//   defer uow.Rollback(ctx)
	//
	//   shipmentRepo := uow.ShipmentRepository()
	//   quoteRepo := uow.QuoteRepository()
	//   // ... apply the transition, append history
	//
	//   err = uow.Commit(ctx)
	LifecycleUoW interface {
		TxManager
		ShipmentRepoFactory
		QuoteRepoFactory
		HistoryRepoFactory
	}

	// LifecycleUoWFactory creates new lifecycle unit of work instances.
	LifecycleUoWFactory interface {
		Create() LifecycleUoW
	}

	// SubmitQuoteUoW extends LifecycleUoW with profile access, used when
	// submitting a quote to verify the carrier and snapshot its display name.
	SubmitQuoteUoW interface {
		LifecycleUoW
		ProfileRepoFactory
	}

	// SubmitQuoteUoWFactory creates new quote submission unit of work instances.
	SubmitQuoteUoWFactory interface {
		Create() SubmitQuoteUoW
	}

	// ProfileUoW manages transactions for profile-only operations.
	ProfileUoW interface {
		TxManager
		ProfileRepoFactory
	}

	// ProfileUoWFactory creates new profile unit of work instances.
	ProfileUoWFactory interface {
		Create() ProfileUoW
	}

	// FleetUoW manages transactions for fleet operations; profile access is
	// needed to verify the owner may carry cargo.
	FleetUoW interface {
		TxManager
		FleetRepoFactory
		ProfileRepoFactory
	}

	// FleetUoWFactory creates new fleet unit of work instances.
	FleetUoWFactory interface {
		Create() FleetUoW
	}

	// ScoringUoW manages transactions for rating operations; shipment and
	// quote access is needed to verify the shipment finished and find the
	// rated carrier.
	ScoringUoW interface {
		TxManager
		ScoringRepoFactory
		ShipmentRepoFactory
		QuoteRepoFactory
	}

	// ScoringUoWFactory creates new scoring unit of work instances.
	ScoringUoWFactory interface {
		Create() ScoringUoW
	}
)
