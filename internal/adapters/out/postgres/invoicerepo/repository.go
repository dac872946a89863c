package invoicerepo

import (
	"context"
	"errors"

	"store/internal/core/domain/model/invoice"
	"store/internal/pkg/errs"

	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

// ErrDuplicateLineItem indicates a direct insert collided with the unique
// (invoice, item) index. The aggregate merges quantities instead of inserting
// duplicates, so hitting this means a row was written behind its back.
var ErrDuplicateLineItem = errors.New("invoice already has a line item for this item")

// GormInvoiceRepository implements InvoiceRepository using GORM.
type GormInvoiceRepository struct {
	db      *gorm.DB
	tracker aggregateTracker
}

// aggregateTracker defines the interface for tracking aggregates.
type aggregateTracker interface {
	TrackAggregate(id int64, aggregate any)
}

// NewGormInvoiceRepository creates a new GORM invoice repository.
func NewGormInvoiceRepository(db *gorm.DB, tracker aggregateTracker) *GormInvoiceRepository {
	return &GormInvoiceRepository{
		db:      db,
		tracker: tracker,
	}
}

// Add saves a new invoice to the database and returns the stored aggregate
// with its database-assigned identifiers. A concurrent cart insert for the
// same person surfaces invoice.ErrDuplicateCart via the partial unique index.
func (r *GormInvoiceRepository) Add(ctx context.Context, aggregate *invoice.Invoice) (*invoice.Invoice, error) {
	if err := aggregate.Validate(); err != nil {
		return nil, err
	}

	dto := fromDomain(aggregate)
	if err := r.db.WithContext(ctx).Create(&dto).Error; err != nil {
		if errors.Is(err, gorm.ErrDuplicatedKey) {
			return nil, invoice.ErrDuplicateCart
		}
		return nil, err
	}

	stored, err := toDomain(dto)
	if err != nil {
		return nil, err
	}

	r.tracker.TrackAggregate(stored.ID(), stored)
	return stored, nil
}

// Update saves an existing invoice to the database: scalar fields are written
// unconditionally, removed line items are deleted, survivors updated and new
// ones inserted. Returns the stored aggregate re-read from the database so
// fresh line items carry their assigned identifiers.
func (r *GormInvoiceRepository) Update(ctx context.Context, aggregate *invoice.Invoice) (*invoice.Invoice, error) {
	if err := aggregate.Validate(); err != nil {
		return nil, err
	}

	dto := fromDomain(aggregate)

	result := r.db.WithContext(ctx).
		Model(&InvoiceDTO{}).
		Where("id = ?", dto.ID).
		Select("*").
		Omit("LineItems").
		Updates(&dto)
	if result.Error != nil {
		return nil, result.Error
	}
	if result.RowsAffected == 0 {
		return nil, errs.NewObjectNotFoundError("invoiceId", dto.ID)
	}

	if err := r.saveLineItems(ctx, dto); err != nil {
		return nil, err
	}

	stored, err := r.get(ctx, dto.ID, false)
	if err != nil {
		return nil, err
	}

	r.tracker.TrackAggregate(stored.ID(), stored)
	return stored, nil
}

// Get retrieves an invoice by ID, including its line items.
func (r *GormInvoiceRepository) Get(ctx context.Context, id int64) (*invoice.Invoice, error) {
	return r.get(ctx, id, false)
}

// GetForUpdate retrieves an invoice by ID with a FOR UPDATE row lock so
// concurrent mutations of the same invoice serialize.
func (r *GormInvoiceRepository) GetForUpdate(ctx context.Context, id int64) (*invoice.Invoice, error) {
	return r.get(ctx, id, true)
}

// GetByLineItemForUpdate retrieves the locked invoice owning the given line item.
func (r *GormInvoiceRepository) GetByLineItemForUpdate(ctx context.Context, lineItemID int64) (*invoice.Invoice, error) {
	var li LineItemDTO
	if err := r.db.WithContext(ctx).First(&li, "id = ?", lineItemID).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, errs.NewObjectNotFoundError("lineItemId", lineItemID)
		}
		return nil, err
	}

	return r.get(ctx, li.InvoiceID, true)
}

// GetCartForUpdate retrieves the person's unpaid invoice with a FOR UPDATE lock.
func (r *GormInvoiceRepository) GetCartForUpdate(ctx context.Context, personID int64) (*invoice.Invoice, error) {
	var dto InvoiceDTO
	err := r.db.WithContext(ctx).
		Clauses(clause.Locking{Strength: "UPDATE"}).
		Where("person_id = ? AND payment_date IS NULL", personID).
		First(&dto).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, errs.NewObjectNotFoundError("personId", personID)
		}
		return nil, err
	}

	if err = r.loadLineItems(ctx, &dto); err != nil {
		return nil, err
	}

	return toDomain(dto)
}

// Delete removes an invoice and all of its line items.
func (r *GormInvoiceRepository) Delete(ctx context.Context, id int64) error {
	if err := r.db.WithContext(ctx).Where("invoice_id = ?", id).Delete(&LineItemDTO{}).Error; err != nil {
		return err
	}

	result := r.db.WithContext(ctx).Where("id = ?", id).Delete(&InvoiceDTO{})
	if result.Error != nil {
		return result.Error
	}
	if result.RowsAffected == 0 {
		return errs.NewObjectNotFoundError("invoiceId", id)
	}

	return nil
}

func (r *GormInvoiceRepository) get(ctx context.Context, id int64, forUpdate bool) (*invoice.Invoice, error) {
	var dto InvoiceDTO

	query := r.db.WithContext(ctx)
	if forUpdate {
		query = query.Clauses(clause.Locking{Strength: "UPDATE"})
	}

	if err := query.First(&dto, "id = ?", id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, errs.NewObjectNotFoundError("invoiceId", id)
		}
		return nil, err
	}

	if err := r.loadLineItems(ctx, &dto); err != nil {
		return nil, err
	}

	return toDomain(dto)
}

func (r *GormInvoiceRepository) loadLineItems(ctx context.Context, dto *InvoiceDTO) error {
	return r.db.WithContext(ctx).
		Where("invoice_id = ?", dto.ID).
		Order("id").
		Find(&dto.LineItems).Error
}

// saveLineItems reconciles the stored line items with the aggregate's current
// set: rows the aggregate no longer carries are deleted, existing rows are
// updated in place and rows without an identifier are inserted.
func (r *GormInvoiceRepository) saveLineItems(ctx context.Context, dto InvoiceDTO) error {
	keep := make([]int64, 0, len(dto.LineItems))
	for _, li := range dto.LineItems {
		if li.ID > 0 {
			keep = append(keep, li.ID)
		}
	}

	query := r.db.WithContext(ctx).Where("invoice_id = ?", dto.ID)
	if len(keep) > 0 {
		query = query.Where("id NOT IN ?", keep)
	}
	if err := query.Delete(&LineItemDTO{}).Error; err != nil {
		return err
	}

	for i := range dto.LineItems {
		li := &dto.LineItems[i]
		li.InvoiceID = dto.ID

		if li.ID > 0 {
			err := r.db.WithContext(ctx).
				Model(&LineItemDTO{}).
				Where("id = ?", li.ID).
				Select("*").
				Updates(li).Error
			if err != nil {
				return err
			}
			continue
		}

		if err := r.db.WithContext(ctx).Create(li).Error; err != nil {
			if errors.Is(err, gorm.ErrDuplicatedKey) {
				return ErrDuplicateLineItem
			}
			return err
		}
	}

	return nil
}
