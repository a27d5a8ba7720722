package orderrepo_test

import (
	"context"
	"testing"
	"time"

	"customerorder/internal/adapters/out/mongodb"
	"customerorder/internal/adapters/out/mongodb/customerrepo"
	"customerorder/internal/adapters/out/mongodb/orderrepo"
	"customerorder/internal/core/domain/model/customer"
	"customerorder/internal/core/domain/model/kernel"
	"customerorder/internal/core/domain/model/order"
	"customerorder/internal/pkg/errs"

	"github.com/stretchr/testify/suite"
	tcmongodb "github.com/testcontainers/testcontainers-go/modules/mongodb"
	"go.mongodb.org/mongo-driver/bson"
)

// OrderRepositoryIntegrationTestSuite runs the repository against a real MongoDB container.
type OrderRepositoryIntegrationTestSuite struct {
	suite.Suite
	container  *tcmongodb.MongoDBContainer
	client     *mongodb.Client
	customers  *customerrepo.MongoCustomerRepository
	repository *orderrepo.MongoOrderRepository
}

func (suite *OrderRepositoryIntegrationTestSuite) SetupSuite() {
	ctx := context.Background()

	container, err := tcmongodb.Run(ctx, "mongo:7")
	suite.Require().NoError(err)
	suite.container = container

	uri, err := container.ConnectionString(ctx)
	suite.Require().NoError(err)

	client, err := mongodb.Connect(ctx, uri, "customer_order_test")
	suite.Require().NoError(err)
	suite.client = client

	suite.customers = customerrepo.NewMongoCustomerRepository(client.Database())
	suite.repository = orderrepo.NewMongoOrderRepository(client.Database())
}

func (suite *OrderRepositoryIntegrationTestSuite) SetupTest() {
	ctx := context.Background()
	for _, name := range []string{customerrepo.CollectionName, orderrepo.CollectionName} {
		_, err := suite.client.Database().Collection(name).DeleteMany(ctx, bson.M{})
		suite.Require().NoError(err)
	}
}

func (suite *OrderRepositoryIntegrationTestSuite) TearDownSuite() {
	if suite.client != nil {
		suite.Require().NoError(suite.client.Close(context.Background()))
	}
	if suite.container != nil {
		suite.Require().NoError(suite.container.Terminate(context.Background()))
	}
}

func (suite *OrderRepositoryIntegrationTestSuite) addCustomer(email string) kernel.ID {
	c, err := customer.NewCustomer("Jaba Ganji", email, "+254791111111", time.Now().UTC())
	suite.Require().NoError(err)
	id, err := suite.customers.Add(context.Background(), c)
	suite.Require().NoError(err)
	return id
}

func (suite *OrderRepositoryIntegrationTestSuite) addOrder(customerID kernel.ID) kernel.ID {
	o, err := order.NewOrder("Widget", 9.99, customerID, time.Now().UTC().Truncate(time.Millisecond))
	suite.Require().NoError(err)
	id, err := suite.repository.Add(context.Background(), o)
	suite.Require().NoError(err)
	return id
}

func (suite *OrderRepositoryIntegrationTestSuite) TestAdd_ThenGet() {
	customerID := suite.addCustomer("ganji@jaba.com")
	id := suite.addOrder(customerID)

	got, err := suite.repository.Get(context.Background(), id)
	suite.Require().NoError(err)
	suite.Equal(id, got.ID())
	suite.Equal("Widget", got.Item())
	suite.InDelta(9.99, got.Price(), 1e-9)
	suite.Equal(customerID, got.CustomerID())
	suite.Equal(order.Unset, got.Status())
}

func (suite *OrderRepositoryIntegrationTestSuite) TestGet_NotFound() {
	_, err := suite.repository.Get(context.Background(), kernel.NewID())
	suite.Require().ErrorIs(err, errs.ErrObjectNotFound)
}

func (suite *OrderRepositoryIntegrationTestSuite) TestUpdate_Status() {
	ctx := context.Background()
	id := suite.addOrder(suite.addCustomer("ganji@jaba.com"))

	status := "completed"
	patch, err := order.NewPatch(nil, nil, &status)
	suite.Require().NoError(err)

	modified, err := suite.repository.Update(ctx, id, patch.Stamp(time.Now().UTC()))
	suite.Require().NoError(err)
	suite.EqualValues(1, modified)

	got, err := suite.repository.Get(ctx, id)
	suite.Require().NoError(err)
	suite.Equal(order.Completed, got.Status())
	suite.Equal("Widget", got.Item())
}

func (suite *OrderRepositoryIntegrationTestSuite) TestDelete() {
	ctx := context.Background()
	id := suite.addOrder(suite.addCustomer("ganji@jaba.com"))

	deleted, err := suite.repository.Delete(ctx, id)
	suite.Require().NoError(err)
	suite.EqualValues(1, deleted)

	deleted, err = suite.repository.Delete(ctx, id)
	suite.Require().NoError(err)
	suite.Zero(deleted)
}

func (suite *OrderRepositoryIntegrationTestSuite) TestCountOrphaned() {
	ctx := context.Background()

	n, err := suite.repository.CountOrphaned(ctx)
	suite.Require().NoError(err)
	suite.Zero(n)

	kept := suite.addCustomer("kept@jaba.com")
	gone := suite.addCustomer("gone@jaba.com")
	suite.addOrder(kept)
	suite.addOrder(gone)
	suite.addOrder(gone)

	_, err = suite.customers.Delete(ctx, gone)
	suite.Require().NoError(err)

	n, err = suite.repository.CountOrphaned(ctx)
	suite.Require().NoError(err)
	suite.EqualValues(2, n)
}

func TestOrderRepositoryIntegrationTestSuite(t *testing.T) {
	if testing.Short() {
		t.Skip("skipping MongoDB integration tests in short mode")
	}
	suite.Run(t, new(OrderRepositoryIntegrationTestSuite))
}
