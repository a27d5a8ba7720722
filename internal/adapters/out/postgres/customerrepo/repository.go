package customerrepo

import (
	"context"
	"errors"

	"customerorder/internal/core/domain/model/customer"
	"customerorder/internal/core/domain/model/kernel"
	"customerorder/internal/pkg/errs"

	"gorm.io/gorm"
)

// GormCustomerRepository implements ports.CustomerRepository using GORM.
type GormCustomerRepository struct {
	db *gorm.DB
}

func NewGormCustomerRepository(db *gorm.DB) *GormCustomerRepository {
	return &GormCustomerRepository{db: db}
}

// Add saves a new customer under a freshly generated identifier.
func (r *GormCustomerRepository) Add(ctx context.Context, c *customer.Customer) (kernel.ID, error) {
	if err := c.Validate(); err != nil {
		return kernel.ID{}, err
	}

	id := kernel.NewID()
	dto := fromDomain(id, c)
	if err := r.db.WithContext(ctx).Create(&dto).Error; err != nil {
		if errors.Is(err, gorm.ErrDuplicatedKey) {
			return kernel.ID{}, errs.NewObjectAlreadyExistsErrorWithCause("email_address", c.EmailAddress(), err)
		}
		return kernel.ID{}, err
	}
	return id, nil
}

// Get retrieves a customer by ID.
func (r *GormCustomerRepository) Get(ctx context.Context, id kernel.ID) (*customer.Customer, error) {
	if err := id.Validate(); err != nil {
		return nil, err
	}
	return r.first(ctx, "customer", id.String(), "id = ?", id.String())
}

// FindByEmail retrieves the customer holding emailAddress.
func (r *GormCustomerRepository) FindByEmail(ctx context.Context, emailAddress string) (*customer.Customer, error) {
	return r.first(ctx, "email_address", emailAddress, "email_address = ?", emailAddress)
}

// Update writes the supplied columns. The count is the number of matched rows.
func (r *GormCustomerRepository) Update(ctx context.Context, id kernel.ID, patch customer.Patch) (int64, error) {
	if err := id.Validate(); err != nil {
		return 0, err
	}

	result := r.db.WithContext(ctx).Model(&CustomerDTO{}).Where("id = ?", id.String()).Updates(columns(patch))
	if result.Error != nil {
		if errors.Is(result.Error, gorm.ErrDuplicatedKey) && patch.EmailAddress != nil {
			return 0, errs.NewObjectAlreadyExistsErrorWithCause("email_address", *patch.EmailAddress, result.Error)
		}
		return 0, result.Error
	}
	return result.RowsAffected, nil
}

// Delete removes a customer and returns the deleted count.
func (r *GormCustomerRepository) Delete(ctx context.Context, id kernel.ID) (int64, error) {
	if err := id.Validate(); err != nil {
		return 0, err
	}

	result := r.db.WithContext(ctx).Delete(&CustomerDTO{}, "id = ?", id.String())
	return result.RowsAffected, result.Error
}

func (r *GormCustomerRepository) first(ctx context.Context, param string, value any, query string, args ...any) (*customer.Customer, error) {
	var dto CustomerDTO
	if err := r.db.WithContext(ctx).Where(query, args...).First(&dto).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, errs.NewObjectNotFoundError(param, value)
		}
		return nil, err
	}
	return toDomain(dto)
}
