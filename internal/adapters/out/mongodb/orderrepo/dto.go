// Package orderrepo persists orders in the "orders" collection.
package orderrepo

import (
	"time"

	"customerorder/internal/core/domain/model/kernel"
	"customerorder/internal/core/domain/model/order"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
)

// CollectionName is the collection holding order documents.
const CollectionName = "orders"

// OrderDocument is the stored shape of an order. The customer reference is kept as an
// ObjectID so it can be joined against customers._id.
type OrderDocument struct {
	ID         primitive.ObjectID `bson:"_id,omitempty"`
	Item       string             `bson:"item"`
	Price      float64            `bson:"price"`
	CustomerID primitive.ObjectID `bson:"customer_id"`
	Status     string             `bson:"status,omitempty"`
	CreatedAt  time.Time          `bson:"created_at"`
	UpdatedAt  time.Time          `bson:"updated_at"`
}

func fromDomain(o *order.Order) OrderDocument {
	return OrderDocument{
		Item:       o.Item(),
		Price:      o.Price(),
		CustomerID: o.CustomerID().ObjectID(),
		Status:     o.Status().String(),
		CreatedAt:  o.CreatedAt(),
		UpdatedAt:  o.UpdatedAt(),
	}
}

func toDomain(doc OrderDocument) (*order.Order, error) {
	id, err := kernel.IDFromObjectID(doc.ID)
	if err != nil {
		return nil, err
	}
	customerID, err := kernel.IDFromObjectID(doc.CustomerID)
	if err != nil {
		return nil, err
	}

	status := order.Unset
	if doc.Status != "" {
		if status, err = order.ParseStatus(doc.Status); err != nil {
			return nil, err
		}
	}

	return order.RestoreOrder(id, doc.Item, doc.Price, customerID, status, doc.CreatedAt.UTC(), doc.UpdatedAt.UTC())
}

func setFields(p order.Patch) bson.M {
	set := bson.M{"updated_at": p.UpdatedAt}
	if p.Item != nil {
		set["item"] = *p.Item
	}
	if p.Price != nil {
		set["price"] = *p.Price
	}
	if p.Status != nil {
		set["status"] = p.Status.String()
	}
	return set
}
