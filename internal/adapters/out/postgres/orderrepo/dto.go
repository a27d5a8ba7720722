// Package orderrepo maps orders onto the "orders" table.
// There is no foreign key on customer_id: orders outlive their customers.
package orderrepo

import (
	"time"

	"customerorder/internal/core/domain/model/kernel"
	"customerorder/internal/core/domain/model/order"
)

// OrderDTO is the row shape of an order.
type OrderDTO struct {
	ID         string    `gorm:"type:char(24);primaryKey"`
	Item       string    `gorm:"not null"`
	Price      float64   `gorm:"not null"`
	CustomerID string    `gorm:"type:char(24);not null;index"`
	Status     *string   `gorm:"type:varchar(16)"`
	CreatedAt  time.Time `gorm:"not null;autoCreateTime:false"`
	UpdatedAt  time.Time `gorm:"not null;autoUpdateTime:false"`
}

func (OrderDTO) TableName() string {
	return "orders"
}

func fromDomain(id kernel.ID, o *order.Order) OrderDTO {
	var status *string
	if o.Status().IsSet() {
		s := o.Status().String()
		status = &s
	}

	return OrderDTO{
		ID:         id.String(),
		Item:       o.Item(),
		Price:      o.Price(),
		CustomerID: o.CustomerID().String(),
		Status:     status,
		CreatedAt:  o.CreatedAt(),
		UpdatedAt:  o.UpdatedAt(),
	}
}

func toDomain(dto OrderDTO) (*order.Order, error) {
	id, err := kernel.IDFromString(dto.ID)
	if err != nil {
		return nil, err
	}
	customerID, err := kernel.IDFromString(dto.CustomerID)
	if err != nil {
		return nil, err
	}

	status := order.Unset
	if dto.Status != nil {
		if status, err = order.ParseStatus(*dto.Status); err != nil {
			return nil, err
		}
	}

	return order.RestoreOrder(id, dto.Item, dto.Price, customerID, status, dto.CreatedAt.UTC(), dto.UpdatedAt.UTC())
}

func columns(p order.Patch) map[string]any {
	cols := map[string]any{"updated_at": p.UpdatedAt}
	if p.Item != nil {
		cols["item"] = *p.Item
	}
	if p.Price != nil {
		cols["price"] = *p.Price
	}
	if p.Status != nil {
		cols["status"] = p.Status.String()
	}
	return cols
}
