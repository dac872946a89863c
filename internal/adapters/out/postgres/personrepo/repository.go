package personrepo

import (
	"context"
	"errors"

	"store/internal/core/domain/model/person"
	"store/internal/pkg/errs"

	"gorm.io/gorm"
)

// GormPersonRepository implements PersonRepository using GORM.
type GormPersonRepository struct {
	db *gorm.DB
}

// NewGormPersonRepository creates a new GORM person repository.
func NewGormPersonRepository(db *gorm.DB) *GormPersonRepository {
	return &GormPersonRepository{db: db}
}

// Get retrieves a person by ID.
func (r *GormPersonRepository) Get(ctx context.Context, id int64) (*person.Person, error) {
	var dto PersonDTO
	if err := r.db.WithContext(ctx).First(&dto, "id = ?", id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, errs.NewObjectNotFoundError("personId", id)
		}
		return nil, err
	}

	return personToDomain(dto)
}

// GetPrimaryAddress retrieves the person's first address, which seeds the
// destination of a new cart.
func (r *GormPersonRepository) GetPrimaryAddress(ctx context.Context, personID int64) (*person.Address, error) {
	var dto AddressDTO
	err := r.db.WithContext(ctx).
		Where("person_id = ?", personID).
		Order("id").
		First(&dto).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, errs.NewObjectNotFoundError("personId", personID)
		}
		return nil, err
	}

	return addressToDomain(dto)
}
