package customerrepo

import (
	"context"
	"errors"
	"fmt"

	"customerorder/internal/core/domain/model/customer"
	"customerorder/internal/core/domain/model/kernel"
	"customerorder/internal/pkg/errs"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
)

// MongoCustomerRepository implements ports.CustomerRepository on a mongo collection.
type MongoCustomerRepository struct {
	coll *mongo.Collection
}

func NewMongoCustomerRepository(db *mongo.Database) *MongoCustomerRepository {
	return &MongoCustomerRepository{coll: db.Collection(CollectionName)}
}

// EnsureIndexes creates the unique email index. It is idempotent.
func (r *MongoCustomerRepository) EnsureIndexes(ctx context.Context) error {
	_, err := r.coll.Indexes().CreateOne(ctx, mongo.IndexModel{
		Keys:    bson.D{{Key: "email_address", Value: 1}},
		Options: options.Index().SetUnique(true).SetName("email_address_unique"),
	})
	if err != nil {
		return fmt.Errorf("create email_address index: %w", err)
	}
	return nil
}

// Add inserts a new customer.
func (r *MongoCustomerRepository) Add(ctx context.Context, c *customer.Customer) (kernel.ID, error) {
	if err := c.Validate(); err != nil {
		return kernel.ID{}, err
	}

	res, err := r.coll.InsertOne(ctx, fromDomain(c))
	if err != nil {
		if mongo.IsDuplicateKeyError(err) {
			return kernel.ID{}, errs.NewObjectAlreadyExistsErrorWithCause("email_address", c.EmailAddress(), err)
		}
		return kernel.ID{}, err
	}

	oid, ok := res.InsertedID.(primitive.ObjectID)
	if !ok {
		return kernel.ID{}, fmt.Errorf("unexpected inserted id type %T", res.InsertedID)
	}
	return kernel.IDFromObjectID(oid)
}

// Get retrieves a customer by ID.
func (r *MongoCustomerRepository) Get(ctx context.Context, id kernel.ID) (*customer.Customer, error) {
	if err := id.Validate(); err != nil {
		return nil, err
	}
	return r.findOne(ctx, bson.M{"_id": id.ObjectID()}, "customer", id.String())
}

// FindByEmail retrieves the customer holding emailAddress.
func (r *MongoCustomerRepository) FindByEmail(ctx context.Context, emailAddress string) (*customer.Customer, error) {
	return r.findOne(ctx, bson.M{"email_address": emailAddress}, "email_address", emailAddress)
}

// Update applies the patch with $set and returns the modified count.
func (r *MongoCustomerRepository) Update(ctx context.Context, id kernel.ID, patch customer.Patch) (int64, error) {
	if err := id.Validate(); err != nil {
		return 0, err
	}

	res, err := r.coll.UpdateByID(ctx, id.ObjectID(), bson.M{"$set": setFields(patch)})
	if err != nil {
		if mongo.IsDuplicateKeyError(err) && patch.EmailAddress != nil {
			return 0, errs.NewObjectAlreadyExistsErrorWithCause("email_address", *patch.EmailAddress, err)
		}
		return 0, err
	}
	return res.ModifiedCount, nil
}

// Delete removes a customer and returns the deleted count.
func (r *MongoCustomerRepository) Delete(ctx context.Context, id kernel.ID) (int64, error) {
	if err := id.Validate(); err != nil {
		return 0, err
	}

	res, err := r.coll.DeleteOne(ctx, bson.M{"_id": id.ObjectID()})
	if err != nil {
		return 0, err
	}
	return res.DeletedCount, nil
}

func (r *MongoCustomerRepository) findOne(ctx context.Context, filter bson.M, param string, value any) (*customer.Customer, error) {
	var doc CustomerDocument
	if err := r.coll.FindOne(ctx, filter).Decode(&doc); err != nil {
		if errors.Is(err, mongo.ErrNoDocuments) {
			return nil, errs.NewObjectNotFoundError(param, value)
		}
		return nil, err
	}
	return toDomain(doc)
}
