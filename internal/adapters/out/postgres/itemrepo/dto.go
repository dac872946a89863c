// Package itemrepo provides data transfer objects and mapping functions for
// the item catalog. The catalog is read-only for the engine; rows are seeded
// out of band.
package itemrepo

import (
	"store/internal/core/domain/model/item"

	"github.com/shopspring/decimal"
)

// ItemDTO represents the database structure of a catalog item.
type ItemDTO struct {
	ID     int64            `gorm:"primaryKey"`
	Name   string           `gorm:"not null"`
	Price  decimal.Decimal  `gorm:"type:numeric;not null"`
	Weight *decimal.Decimal `gorm:"type:numeric"`
}

// TableName specifies the database table name for catalog items.
func (ItemDTO) TableName() string {
	return "items"
}

// toDomain converts a database DTO to an item domain entity.
func toDomain(dto ItemDTO) (*item.Item, error) {
	return item.RestoreItem(dto.ID, dto.Name, dto.Price, dto.Weight)
}
