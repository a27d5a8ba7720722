// Package customerrepo maps customers onto the "customers" table.
package customerrepo

import (
	"time"

	"customerorder/internal/core/domain/model/customer"
	"customerorder/internal/core/domain/model/kernel"
)

// CustomerDTO is the row shape of a customer. Timestamps are written by the application.
type CustomerDTO struct {
	ID           string     `gorm:"type:char(24);primaryKey"`
	FullName     string     `gorm:"not null"`
	EmailAddress string     `gorm:"not null;uniqueIndex"`
	PhoneNumber  string     `gorm:"not null"`
	CreatedAt    time.Time  `gorm:"not null;autoCreateTime:false"`
	UpdatedAt    *time.Time `gorm:"autoUpdateTime:false"`
}

func (CustomerDTO) TableName() string {
	return "customers"
}

func fromDomain(id kernel.ID, c *customer.Customer) CustomerDTO {
	return CustomerDTO{
		ID:           id.String(),
		FullName:     c.FullName(),
		EmailAddress: c.EmailAddress(),
		PhoneNumber:  c.PhoneNumber(),
		CreatedAt:    c.CreatedAt(),
		UpdatedAt:    c.UpdatedAt(),
	}
}

func toDomain(dto CustomerDTO) (*customer.Customer, error) {
	id, err := kernel.IDFromString(dto.ID)
	if err != nil {
		return nil, err
	}

	var updatedAt *time.Time
	if dto.UpdatedAt != nil {
		t := dto.UpdatedAt.UTC()
		updatedAt = &t
	}

	return customer.RestoreCustomer(id, dto.FullName, dto.EmailAddress, dto.PhoneNumber, dto.CreatedAt.UTC(), updatedAt)
}

func columns(p customer.Patch) map[string]any {
	cols := map[string]any{"updated_at": p.UpdatedAt}
	if p.FullName != nil {
		cols["full_name"] = *p.FullName
	}
	if p.EmailAddress != nil {
		cols["email_address"] = *p.EmailAddress
	}
	if p.PhoneNumber != nil {
		cols["phone_number"] = *p.PhoneNumber
	}
	return cols
}
