package queries

import (
	"context"

	"gorm.io/gorm"
)

// GetAddressesQueryHandler retrieves a person's addresses from the database,
// sorted by address ID so the first row is the default cart destination.
type GetAddressesQueryHandler struct {
	db *gorm.DB
}

// NewGetAddressesQueryHandler creates a handler for address queries.
// Requires a GORM database connection for query execution.
func NewGetAddressesQueryHandler(db *gorm.DB) GetAddressesQueryHandler {
	return GetAddressesQueryHandler{db: db}
}

// Handle executes the query and returns the person's address views.
// Unknown persons yield an empty list, not an error.
func (h GetAddressesQueryHandler) Handle(ctx context.Context, query GetAddressesQuery) ([]AddressView, error) {
	if err := query.Validate(); err != nil {
		return nil, err
	}

	addresses := make([]AddressView, 0)

	rows, err := h.db.WithContext(ctx).Raw(`
		SELECT
			id,
			person_id,
			country,
			address
		FROM addresses
		WHERE person_id = ?
		ORDER BY id
	`, query.PersonID()).Rows()
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	for rows.Next() {
		var addr AddressView

		err = rows.Scan(
			&addr.ID,
			&addr.PersonID,
			&addr.Country,
			&addr.Address,
		)
		if err != nil {
			return nil, err
		}

		addresses = append(addresses, addr)
	}

	if err = rows.Err(); err != nil {
		return nil, err
	}

	return addresses, nil
}
