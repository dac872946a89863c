package queries

import (
	"errors"

	"store/internal/pkg/guard"
)

var ErrGetItemsQueryIsNotConstructed = errors.New(
	"GetItemsQuery must be created via NewGetItemsQuery constructor",
)

// GetItemsQuery retrieves the full item catalog, alphabetically by name.
//
// Example:
//
//	query := NewGetItemsQuery()
//	handler := NewGetItemsQueryHandler(db)
//
//	items, err := handler.Handle(ctx, query)
//	if err != nil {
//	    return fmt.Errorf("failed to list catalog: %w", err)
//	}
type GetItemsQuery struct {
	guard guard.ConstructorGuard
}

// NewGetItemsQuery creates a query to retrieve the catalog.
// This is a parameterless query that fetches every item.
func NewGetItemsQuery() GetItemsQuery {
	return GetItemsQuery{guard: guard.NewConstructorGuard()}
}

// Validate ensures the query was created through the constructor.
// Returns ErrGetItemsQueryIsNotConstructed if validation fails.
func (q GetItemsQuery) Validate() error {
	return q.guard.Validate(ErrGetItemsQueryIsNotConstructed)
}
