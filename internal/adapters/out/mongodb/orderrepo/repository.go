package orderrepo

import (
	"context"
	"errors"
	"fmt"

	"customerorder/internal/adapters/out/mongodb/customerrepo"
	"customerorder/internal/core/domain/model/kernel"
	"customerorder/internal/core/domain/model/order"
	"customerorder/internal/pkg/errs"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"
)

// MongoOrderRepository implements ports.OrderRepository on a mongo collection.
type MongoOrderRepository struct {
	coll *mongo.Collection
}

func NewMongoOrderRepository(db *mongo.Database) *MongoOrderRepository {
	return &MongoOrderRepository{coll: db.Collection(CollectionName)}
}

// Add inserts a new order.
func (r *MongoOrderRepository) Add(ctx context.Context, o *order.Order) (kernel.ID, error) {
	if err := o.Validate(); err != nil {
		return kernel.ID{}, err
	}

	res, err := r.coll.InsertOne(ctx, fromDomain(o))
	if err != nil {
		return kernel.ID{}, err
	}

	oid, ok := res.InsertedID.(primitive.ObjectID)
	if !ok {
		return kernel.ID{}, fmt.Errorf("unexpected inserted id type %T", res.InsertedID)
	}
	return kernel.IDFromObjectID(oid)
}

// Get retrieves an order by ID.
func (r *MongoOrderRepository) Get(ctx context.Context, id kernel.ID) (*order.Order, error) {
	if err := id.Validate(); err != nil {
		return nil, err
	}

	var doc OrderDocument
	if err := r.coll.FindOne(ctx, bson.M{"_id": id.ObjectID()}).Decode(&doc); err != nil {
		if errors.Is(err, mongo.ErrNoDocuments) {
			return nil, errs.NewObjectNotFoundError("order", id.String())
		}
		return nil, err
	}
	return toDomain(doc)
}

// Update applies the patch with $set and returns the modified count.
func (r *MongoOrderRepository) Update(ctx context.Context, id kernel.ID, patch order.Patch) (int64, error) {
	if err := id.Validate(); err != nil {
		return 0, err
	}

	res, err := r.coll.UpdateByID(ctx, id.ObjectID(), bson.M{"$set": setFields(patch)})
	if err != nil {
		return 0, err
	}
	return res.ModifiedCount, nil
}

// Delete removes an order and returns the deleted count.
func (r *MongoOrderRepository) Delete(ctx context.Context, id kernel.ID) (int64, error) {
	if err := id.Validate(); err != nil {
		return 0, err
	}

	res, err := r.coll.DeleteOne(ctx, bson.M{"_id": id.ObjectID()})
	if err != nil {
		return 0, err
	}
	return res.DeletedCount, nil
}

// CountOrphaned joins orders against customers and counts the ones with no match.
func (r *MongoOrderRepository) CountOrphaned(ctx context.Context) (int64, error) {
	pipeline := mongo.Pipeline{
		{{Key: "$lookup", Value: bson.D{
			{Key: "from", Value: customerrepo.CollectionName},
			{Key: "localField", Value: "customer_id"},
			{Key: "foreignField", Value: "_id"},
			{Key: "as", Value: "customer"},
		}}},
		{{Key: "$match", Value: bson.D{{Key: "customer", Value: bson.D{{Key: "$size", Value: 0}}}}}},
		{{Key: "$count", Value: "orphaned"}},
	}

	cur, err := r.coll.Aggregate(ctx, pipeline)
	if err != nil {
		return 0, err
	}

	var rows []struct {
		Orphaned int64 `bson:"orphaned"`
	}
	if err = cur.All(ctx, &rows); err != nil {
		return 0, err
	}
	if len(rows) == 0 {
		return 0, nil
	}
	return rows[0].Orphaned, nil
}
