package itemrepo

import (
	"context"
	"errors"

	"store/internal/core/domain/model/item"
	"store/internal/pkg/errs"

	"gorm.io/gorm"
)

// GormItemRepository implements ItemRepository using GORM.
type GormItemRepository struct {
	db *gorm.DB
}

// NewGormItemRepository creates a new GORM item repository.
func NewGormItemRepository(db *gorm.DB) *GormItemRepository {
	return &GormItemRepository{db: db}
}

// Get retrieves a catalog item by ID.
func (r *GormItemRepository) Get(ctx context.Context, id int64) (*item.Item, error) {
	var dto ItemDTO
	if err := r.db.WithContext(ctx).First(&dto, "id = ?", id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, errs.NewObjectNotFoundError("itemId", id)
		}
		return nil, err
	}

	return toDomain(dto)
}
