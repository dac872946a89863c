package item

import (
	"errors"

	"store/internal/pkg/errs"

	"github.com/shopspring/decimal"
)

var (
	// ErrItemIsNotConstructed is returned when an Item instance was not created
	// through the RestoreItem factory method.
	ErrItemIsNotConstructed = errors.New("Item must be created via RestoreItem constructor")

	// ErrNameIsRequired is returned when an item has no name.
	ErrNameIsRequired = errs.NewValueIsRequiredError("name")
)

// Item represents an entry of the read-only product catalog. The catalog is
// managed by an external system; the order engine only reads items to price
// line items and to compute shipment weights.
//
// Item follows these invariants:
//   - Price must be positive
//   - Weight, when present, must not be negative (digital goods have no weight)
//   - Can only be created through the RestoreItem constructor
type Item struct {
	id     int64
	name   string
	price  decimal.Decimal
	weight *decimal.Decimal

	isConstructed bool
}

// RestoreItem reconstructs a catalog item from persistent storage.
// A nil weight marks an item that does not contribute to shipment weight.
func RestoreItem(id int64, name string, price decimal.Decimal, weight *decimal.Decimal) (*Item, error) {
	it := &Item{
		isConstructed: true,
	}

	if err := errors.Join(
		it.setID(id),
		it.setName(name),
		it.setPrice(price),
		it.setWeight(weight),
	); err != nil {
		return nil, err
	}

	return it, nil
}

// Validate ensures the Item instance was properly constructed through RestoreItem.
func (i *Item) Validate() error {
	if i == nil || !i.isConstructed {
		return ErrItemIsNotConstructed
	}
	return nil
}

// ID returns the item's unique identifier.
func (i *Item) ID() int64 {
	return i.id
}

// Name returns the item's display name.
func (i *Item) Name() string {
	return i.name
}

// Price returns the item's current catalog price.
func (i *Item) Price() decimal.Decimal {
	return i.price
}

// Weight returns the item's unit weight, or nil for weightless items.
func (i *Item) Weight() *decimal.Decimal {
	return i.weight
}

func (i *Item) setID(id int64) error {
	if id <= 0 {
		return errs.NewValueIsInvalidError("item id")
	}
	i.id = id
	return nil
}

func (i *Item) setName(name string) error {
	if name == "" {
		return ErrNameIsRequired
	}
	i.name = name
	return nil
}

func (i *Item) setPrice(price decimal.Decimal) error {
	if price.Sign() <= 0 {
		return errs.NewValueIsInvalidError("price")
	}
	i.price = price
	return nil
}

func (i *Item) setWeight(weight *decimal.Decimal) error {
	if weight != nil && weight.Sign() < 0 {
		return errs.NewValueIsInvalidError("weight")
	}
	i.weight = weight
	return nil
}
