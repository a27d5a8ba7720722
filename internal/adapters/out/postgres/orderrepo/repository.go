package orderrepo

import (
	"context"
	"errors"

	"customerorder/internal/core/domain/model/kernel"
	"customerorder/internal/core/domain/model/order"
	"customerorder/internal/pkg/errs"

	"gorm.io/gorm"
)

// GormOrderRepository implements ports.OrderRepository using GORM.
type GormOrderRepository struct {
	db *gorm.DB
}

func NewGormOrderRepository(db *gorm.DB) *GormOrderRepository {
	return &GormOrderRepository{db: db}
}

// Add saves a new order under a freshly generated identifier.
func (r *GormOrderRepository) Add(ctx context.Context, o *order.Order) (kernel.ID, error) {
	if err := o.Validate(); err != nil {
		return kernel.ID{}, err
	}

	id := kernel.NewID()
	dto := fromDomain(id, o)
	if err := r.db.WithContext(ctx).Create(&dto).Error; err != nil {
		return kernel.ID{}, err
	}
	return id, nil
}

// Get retrieves an order by ID.
func (r *GormOrderRepository) Get(ctx context.Context, id kernel.ID) (*order.Order, error) {
	if err := id.Validate(); err != nil {
		return nil, err
	}

	var dto OrderDTO
	if err := r.db.WithContext(ctx).First(&dto, "id = ?", id.String()).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, errs.NewObjectNotFoundError("order", id.String())
		}
		return nil, err
	}

	return toDomain(dto)
}

// Update writes the supplied columns. The count is the number of matched rows.
func (r *GormOrderRepository) Update(ctx context.Context, id kernel.ID, patch order.Patch) (int64, error) {
	if err := id.Validate(); err != nil {
		return 0, err
	}

	result := r.db.WithContext(ctx).Model(&OrderDTO{}).Where("id = ?", id.String()).Updates(columns(patch))
	return result.RowsAffected, result.Error
}

// Delete removes an order and returns the deleted count.
func (r *GormOrderRepository) Delete(ctx context.Context, id kernel.ID) (int64, error) {
	if err := id.Validate(); err != nil {
		return 0, err
	}

	result := r.db.WithContext(ctx).Delete(&OrderDTO{}, "id = ?", id.String())
	return result.RowsAffected, result.Error
}

// CountOrphaned counts orders with no matching customer row.
func (r *GormOrderRepository) CountOrphaned(ctx context.Context) (int64, error) {
	var n int64
	err := r.db.WithContext(ctx).
		Model(&OrderDTO{}).
		Joins("LEFT JOIN customers ON customers.id = orders.customer_id").
		Where("customers.id IS NULL").
		Count(&n).Error
	return n, err
}
