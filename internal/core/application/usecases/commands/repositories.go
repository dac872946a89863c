// Package commands contains business operations that modify system state.
// Implements the Command pattern for write operations in the CQRS architecture.
// All commands follow a consistent pattern: validation, transaction management, and persistence.
package commands

import (
	"context"

	"store/internal/core/ports"
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

	// InvoiceRepoFactory provides access to the invoice repository within a transaction.
	InvoiceRepoFactory interface {
		InvoiceRepository() ports.InvoiceRepository
	}

	// ItemRepoFactory provides access to the item catalog within a transaction.
	ItemRepoFactory interface {
		ItemRepository() ports.ItemRepository
	}

	// PersonRepoFactory provides access to person reference data within a transaction.
	PersonRepoFactory interface {
		PersonRepository() ports.PersonRepository
	}

	// InvoiceUoW manages transactions for invoice-only operations.
	// Used by commands that mutate a single invoice aggregate.
	InvoiceUoW interface {
		TxManager
		InvoiceRepoFactory
	}

	// InvoiceUoWFactory creates new invoice unit of work instances.
	InvoiceUoWFactory interface {
		Create() InvoiceUoW
	}

	// LineItemUoW manages transactions for line item additions, which
	// resolve the person's cart, read the catalog and write the invoice.
	LineItemUoW interface {
		TxManager
		InvoiceRepoFactory
		ItemRepoFactory
		PersonRepoFactory
	}

	// LineItemUoWFactory creates new line item unit of work instances.
	LineItemUoWFactory interface {
		Create() LineItemUoW
	}
)
