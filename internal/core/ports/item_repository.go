package ports

import (
	"context"

	"store/internal/core/domain/model/item"
)

// ItemRepository defines the read contract for the item catalog. The catalog
// is seeded out of band and never written by the engine, so the port carries
// lookups only.
type ItemRepository interface {
	// Get retrieves a catalog item by its unique identifier.
	// Returns errs.ObjectNotFoundError when no such item exists.
	Get(ctx context.Context, id int64) (*item.Item, error)
}
