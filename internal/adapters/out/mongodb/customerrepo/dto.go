// Package customerrepo persists customers in the "customers" collection.
package customerrepo

import (
	"time"

	"customerorder/internal/core/domain/model/customer"
	"customerorder/internal/core/domain/model/kernel"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
)

// CollectionName is the collection holding customer documents.
const CollectionName = "customers"

// CustomerDocument is the stored shape of a customer.
type CustomerDocument struct {
	ID           primitive.ObjectID `bson:"_id,omitempty"`
	FullName     string             `bson:"full_name"`
	EmailAddress string             `bson:"email_address"`
	PhoneNumber  string             `bson:"phone_number"`
	CreatedAt    time.Time          `bson:"created_at"`
	UpdatedAt    *time.Time         `bson:"updated_at,omitempty"`
}

// fromDomain leaves ID empty so the store generates it.
func fromDomain(c *customer.Customer) CustomerDocument {
	return CustomerDocument{
		FullName:     c.FullName(),
		EmailAddress: c.EmailAddress(),
		PhoneNumber:  c.PhoneNumber(),
		CreatedAt:    c.CreatedAt(),
		UpdatedAt:    c.UpdatedAt(),
	}
}

func toDomain(doc CustomerDocument) (*customer.Customer, error) {
	id, err := kernel.IDFromObjectID(doc.ID)
	if err != nil {
		return nil, err
	}

	var updatedAt *time.Time
	if doc.UpdatedAt != nil {
		t := doc.UpdatedAt.UTC()
		updatedAt = &t
	}

	return customer.RestoreCustomer(id, doc.FullName, doc.EmailAddress, doc.PhoneNumber, doc.CreatedAt.UTC(), updatedAt)
}

// setFields builds the $set document for the supplied patch fields.
func setFields(p customer.Patch) bson.M {
	set := bson.M{"updated_at": p.UpdatedAt}
	if p.FullName != nil {
		set["full_name"] = *p.FullName
	}
	if p.EmailAddress != nil {
		set["email_address"] = *p.EmailAddress
	}
	if p.PhoneNumber != nil {
		set["phone_number"] = *p.PhoneNumber
	}
	return set
}
