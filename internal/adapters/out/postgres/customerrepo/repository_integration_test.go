package customerrepo_test

import (
	"context"
	"testing"
	"time"

	"customerorder/internal/adapters/out/postgres"
	"customerorder/internal/adapters/out/postgres/customerrepo"
	"customerorder/internal/core/domain/model/customer"
	"customerorder/internal/core/domain/model/kernel"
	"customerorder/internal/pkg/errs"

	"github.com/stretchr/testify/suite"
	"github.com/testcontainers/testcontainers-go"
	tcpostgres "github.com/testcontainers/testcontainers-go/modules/postgres"
	"github.com/testcontainers/testcontainers-go/wait"
	"gorm.io/gorm"
)

// CustomerRepositoryIntegrationTestSuite runs the repository against a PostgreSQL container.
type CustomerRepositoryIntegrationTestSuite struct {
	suite.Suite
	container  *tcpostgres.PostgresContainer
	db         *gorm.DB
	repository *customerrepo.GormCustomerRepository
}

func (suite *CustomerRepositoryIntegrationTestSuite) SetupSuite() {
	ctx := context.Background()

	container, err := tcpostgres.Run(ctx,
		"postgres:15-alpine",
		tcpostgres.WithDatabase("testdb"),
		tcpostgres.WithUsername("testuser"),
		tcpostgres.WithPassword("testpass"),
		testcontainers.WithWaitStrategy(
			wait.ForLog("database system is ready to accept connections").
				WithOccurrence(2).
				WithStartupTimeout(30*time.Second),
		),
	)
	suite.Require().NoError(err)
	suite.container = container

	connStr, err := container.ConnectionString(ctx, "sslmode=disable")
	suite.Require().NoError(err)

	db, err := postgres.Open(connStr)
	suite.Require().NoError(err)
	suite.db = db

	suite.Require().NoError(postgres.Migrate(db))
}

func (suite *CustomerRepositoryIntegrationTestSuite) SetupTest() {
	suite.Require().NoError(suite.db.Exec("TRUNCATE TABLE customers").Error)
	suite.repository = customerrepo.NewGormCustomerRepository(suite.db)
}

func (suite *CustomerRepositoryIntegrationTestSuite) TearDownSuite() {
	if suite.db != nil {
		suite.Require().NoError(postgres.Close(suite.db))
	}
	if suite.container != nil {
		suite.Require().NoError(suite.container.Terminate(context.Background()))
	}
}

func (suite *CustomerRepositoryIntegrationTestSuite) newCustomer(email string) *customer.Customer {
	c, err := customer.NewCustomer("Jaba Ganji", email, "+254791111111", time.Now().UTC().Truncate(time.Millisecond))
	suite.Require().NoError(err)
	return c
}

func (suite *CustomerRepositoryIntegrationTestSuite) TestAdd_ThenGet() {
	ctx := context.Background()
	c := suite.newCustomer("ganji@jaba.com")

	id, err := suite.repository.Add(ctx, c)
	suite.Require().NoError(err)

	got, err := suite.repository.Get(ctx, id)
	suite.Require().NoError(err)
	suite.Equal(id, got.ID())
	suite.Equal("Jaba Ganji", got.FullName())
	suite.True(c.CreatedAt().Equal(got.CreatedAt()))
	suite.Nil(got.UpdatedAt())
}

func (suite *CustomerRepositoryIntegrationTestSuite) TestAdd_DuplicateEmail() {
	ctx := context.Background()
	_, err := suite.repository.Add(ctx, suite.newCustomer("ganji@jaba.com"))
	suite.Require().NoError(err)

	_, err = suite.repository.Add(ctx, suite.newCustomer("ganji@jaba.com"))

	var exists *errs.ObjectAlreadyExistsError
	suite.Require().ErrorAs(err, &exists)
	suite.Equal("email_address", exists.ParamName)
}

func (suite *CustomerRepositoryIntegrationTestSuite) TestGet_NotFound() {
	_, err := suite.repository.Get(context.Background(), kernel.NewID())
	suite.Require().ErrorIs(err, errs.ErrObjectNotFound)
}

func (suite *CustomerRepositoryIntegrationTestSuite) TestFindByEmail() {
	ctx := context.Background()
	id, err := suite.repository.Add(ctx, suite.newCustomer("ganji@jaba.com"))
	suite.Require().NoError(err)

	got, err := suite.repository.FindByEmail(ctx, "ganji@jaba.com")
	suite.Require().NoError(err)
	suite.Equal(id, got.ID())

	_, err = suite.repository.FindByEmail(ctx, "other@jaba.com")
	suite.Require().ErrorIs(err, errs.ErrObjectNotFound)
}

func (suite *CustomerRepositoryIntegrationTestSuite) TestUpdate() {
	ctx := context.Background()
	id, err := suite.repository.Add(ctx, suite.newCustomer("ganji@jaba.com"))
	suite.Require().NoError(err)

	phone := "+254700000000"
	patch, err := customer.NewPatch(nil, nil, &phone)
	suite.Require().NoError(err)

	n, err := suite.repository.Update(ctx, id, patch.Stamp(time.Now().UTC()))
	suite.Require().NoError(err)
	suite.EqualValues(1, n)

	got, err := suite.repository.Get(ctx, id)
	suite.Require().NoError(err)
	suite.Equal(phone, got.PhoneNumber())
	suite.Equal("ganji@jaba.com", got.EmailAddress())
	suite.NotNil(got.UpdatedAt())
}

func (suite *CustomerRepositoryIntegrationTestSuite) TestDelete() {
	ctx := context.Background()
	id, err := suite.repository.Add(ctx, suite.newCustomer("ganji@jaba.com"))
	suite.Require().NoError(err)

	n, err := suite.repository.Delete(ctx, id)
	suite.Require().NoError(err)
	suite.EqualValues(1, n)

	n, err = suite.repository.Delete(ctx, id)
	suite.Require().NoError(err)
	suite.Zero(n)
}

func TestCustomerRepositoryIntegrationTestSuite(t *testing.T) {
	if testing.Short() {
		t.Skip("skipping PostgreSQL integration tests in short mode")
	}
	suite.Run(t, new(CustomerRepositoryIntegrationTestSuite))
}
