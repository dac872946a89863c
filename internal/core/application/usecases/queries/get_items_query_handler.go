package queries

import (
	"context"

	"github.com/shopspring/decimal"
	"gorm.io/gorm"
)

// GetItemsQueryHandler retrieves the item catalog from the database.
type GetItemsQueryHandler struct {
	db *gorm.DB
}

// NewGetItemsQueryHandler creates a handler for catalog queries.
// Requires a GORM database connection for query execution.
func NewGetItemsQueryHandler(db *gorm.DB) GetItemsQueryHandler {
	return GetItemsQueryHandler{db: db}
}

// Handle executes the query and returns all items ordered by name.
func (h GetItemsQueryHandler) Handle(ctx context.Context, query GetItemsQuery) ([]ItemView, error) {
	if err := query.Validate(); err != nil {
		return nil, err
	}

	items := make([]ItemView, 0)

	rows, err := h.db.WithContext(ctx).Raw(`
		SELECT
			id,
			name,
			price,
			weight
		FROM items
		ORDER BY name
	`).Rows()
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	for rows.Next() {
		var item ItemView
		var weight decimal.NullDecimal

		err = rows.Scan(
			&item.ID,
			&item.Name,
			&item.Price,
			&weight,
		)
		if err != nil {
			return nil, err
		}

		if weight.Valid {
			item.Weight = &weight.Decimal
		}
		items = append(items, item)
	}

	if err = rows.Err(); err != nil {
		return nil, err
	}

	return items, nil
}
