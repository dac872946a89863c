package ports

import (
	"context"

	"store/internal/core/domain/model/person"
)

// PersonRepository defines the read contract for persons and their addresses.
// Person records are reference data for the engine; only invoices are written.
type PersonRepository interface {
	// Get retrieves a person by their unique identifier.
	// Returns errs.ObjectNotFoundError when no such person exists.
	Get(ctx context.Context, id int64) (*person.Person, error)

	// GetPrimaryAddress retrieves the person's first address, used to seed
	// the destination of a new cart. Returns errs.ObjectNotFoundError when
	// the person has no addresses on file.
	GetPrimaryAddress(ctx context.Context, personID int64) (*person.Address, error)
}
