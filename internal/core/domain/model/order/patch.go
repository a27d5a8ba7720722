package order

import (
	"errors"
	"time"
)

// Patch is a partial update: nil fields are left untouched.
type Patch struct {
	Item   *string
	Price  *float64
	Status *Status

	// UpdatedAt is stamped by Stamp and written together with the supplied fields.
	UpdatedAt time.Time
}

// NewPatch validates every supplied field with the same rules as NewOrder.
func NewPatch(item *string, price *float64, status *string) (Patch, error) {
	var probe Order
	var errItem, errPrice, errStatus error
	if item != nil {
		errItem = probe.setItem(*item)
	}
	if price != nil {
		errPrice = probe.setPrice(*price)
	}

	p := Patch{Item: item, Price: price}
	if status != nil {
		var s Status
		s, errStatus = ParseStatus(*status)
		p.Status = &s
	}

	if err := errors.Join(errItem, errPrice, errStatus); err != nil {
		return Patch{}, err
	}
	return p, nil
}

// IsEmpty reports whether no field was supplied.
func (p Patch) IsEmpty() bool {
	return p.Item == nil && p.Price == nil && p.Status == nil
}

// Stamp returns a copy of the patch carrying the modification time.
func (p Patch) Stamp(now time.Time) Patch {
	p.UpdatedAt = now
	return p
}
