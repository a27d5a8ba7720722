package cmd

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"net/http"

	httpin "customerorder/internal/adapters/in/http"
	"customerorder/internal/adapters/out/mongodb"
	mongocustomerrepo "customerorder/internal/adapters/out/mongodb/customerrepo"
	mongoorderrepo "customerorder/internal/adapters/out/mongodb/orderrepo"
	"customerorder/internal/adapters/out/postgres"
	pgcustomerrepo "customerorder/internal/adapters/out/postgres/customerrepo"
	pgorderrepo "customerorder/internal/adapters/out/postgres/orderrepo"
	"customerorder/internal/adapters/out/sms"
	"customerorder/internal/core/application/usecases/commands"
	"customerorder/internal/core/application/usecases/queries"
	"customerorder/internal/core/ports"
	"customerorder/internal/jobs"
	"customerorder/internal/pkg/logging"

	"github.com/labstack/echo/v4"
)

// store is the record store chosen by STORE_DRIVER.
type store struct {
	customers ports.CustomerRepository
	orders    ports.OrderRepository
	ping      func(ctx context.Context) error
	close     func(ctx context.Context) error
}

type CompositionRoot struct {
	cfg      Config
	logger   *slog.Logger
	store    store
	notifier ports.Notifier
	clock    commands.Clock
}

// NewCompositionRoot connects the record store and builds the notifier. Close releases both.
func NewCompositionRoot(ctx context.Context, cfg Config, logger *slog.Logger) (*CompositionRoot, error) {
	s, err := openStore(ctx, cfg, logger)
	if err != nil {
		return nil, err
	}

	notifier, err := newNotifier(cfg, logger)
	if err != nil {
		return nil, errors.Join(err, s.close(ctx))
	}

	return &CompositionRoot{
		cfg:      cfg,
		logger:   logger,
		store:    s,
		notifier: notifier,
		clock:    commands.SystemClock,
	}, nil
}

func openStore(ctx context.Context, cfg Config, logger *slog.Logger) (store, error) {
	switch cfg.StoreDriver {
	case StoreDriverPostgres:
		db, err := postgres.Open(postgres.DSN(cfg.DBHost, cfg.DBPort, cfg.DBUser, cfg.DBPassword, cfg.DBName, cfg.DBSslMode))
		if err != nil {
			return store{}, err
		}
		if err := postgres.Migrate(db); err != nil {
			return store{}, errors.Join(err, postgres.Close(db))
		}
		logger.Info("Connected to postgres", "host", cfg.DBHost, "database", cfg.DBName)
		return store{
			customers: pgcustomerrepo.NewGormCustomerRepository(db),
			orders:    pgorderrepo.NewGormOrderRepository(db),
			ping: func(ctx context.Context) error {
				sqlDB, err := db.DB()
				if err != nil {
					return err
				}
				return sqlDB.PingContext(ctx)
			},
			close: func(context.Context) error { return postgres.Close(db) },
		}, nil

	case StoreDriverMongo:
		client, err := mongodb.Connect(ctx, cfg.MongoURL, cfg.MongoDB)
		if err != nil {
			return store{}, err
		}
		customers := mongocustomerrepo.NewMongoCustomerRepository(client.Database())
		if err := customers.EnsureIndexes(ctx); err != nil {
			return store{}, errors.Join(err, client.Close(ctx))
		}
		logger.Info("Connected to mongodb", "database", cfg.MongoDB)
		return store{
			customers: customers,
			orders:    mongoorderrepo.NewMongoOrderRepository(client.Database()),
			ping:      client.Ping,
			close:     client.Close,
		}, nil

	default:
		return store{}, fmt.Errorf("unknown store driver %q", cfg.StoreDriver)
	}
}

func newNotifier(cfg Config, logger *slog.Logger) (ports.Notifier, error) {
	switch cfg.SMSDriver {
	case SMSDriverLog:
		return sms.NewLogNotifier(logger), nil
	case SMSDriverAfricasTalking:
		baseURL := sms.ProductionBaseURL
		if cfg.AfricasTalkingEnvironment == AfricasTalkingSandbox {
			baseURL = sms.SandboxBaseURL
		}
		client, err := sms.NewAfricasTalkingClient(sms.AfricasTalkingConfig{
			Username: cfg.AfricasTalkingUsername,
			APIKey:   cfg.AfricasTalkingAPIKey,
			SenderID: cfg.AfricasTalkingSenderID,
			BaseURL:  baseURL,
		}, &http.Client{}, logger)
		if err != nil {
			return nil, err
		}
		return client, nil
	default:
		return nil, fmt.Errorf("unknown sms driver %q", cfg.SMSDriver)
	}
}

func (c *CompositionRoot) CreateCreateCustomerCommandHandler() commands.CreateCustomerCommandHandler {
	return commands.NewCreateCustomerCommandHandler(c.store.customers, c.clock, c.logger)
}

func (c *CompositionRoot) CreateUpdateCustomerCommandHandler() commands.UpdateCustomerCommandHandler {
	return commands.NewUpdateCustomerCommandHandler(c.store.customers, c.clock, c.logger)
}

func (c *CompositionRoot) CreateDeleteCustomerCommandHandler() commands.DeleteCustomerCommandHandler {
	return commands.NewDeleteCustomerCommandHandler(c.store.customers, c.logger)
}

func (c *CompositionRoot) CreateCreateOrderCommandHandler() commands.CreateOrderCommandHandler {
	return commands.NewCreateOrderCommandHandler(
		c.store.orders,
		c.CreateGetCustomerQueryHandler(),
		c.notifier,
		c.cfg.CustomerCheck(),
		c.clock,
		c.logger,
	)
}

func (c *CompositionRoot) CreateUpdateOrderCommandHandler() commands.UpdateOrderCommandHandler {
	return commands.NewUpdateOrderCommandHandler(c.store.orders, c.clock, c.logger)
}

func (c *CompositionRoot) CreateDeleteOrderCommandHandler() commands.DeleteOrderCommandHandler {
	return commands.NewDeleteOrderCommandHandler(c.store.orders, c.logger)
}

func (c *CompositionRoot) CreateGetCustomerQueryHandler() queries.GetCustomerQueryHandler {
	return queries.NewGetCustomerQueryHandler(c.store.customers, c.logger)
}

func (c *CompositionRoot) CreateGetOrderQueryHandler() queries.GetOrderQueryHandler {
	return queries.NewGetOrderQueryHandler(c.store.orders, c.logger)
}

func (c *CompositionRoot) CreateCountOrphanedOrdersQueryHandler() queries.CountOrphanedOrdersQueryHandler {
	return queries.NewCountOrphanedOrdersQueryHandler(c.store.orders)
}

// CreateRouter returns the echo instance serving the HTTP API.
func (c *CompositionRoot) CreateRouter() (*echo.Echo, error) {
	server := httpin.NewServer(httpin.Handlers{
		CreateCustomer: c.CreateCreateCustomerCommandHandler(),
		UpdateCustomer: c.CreateUpdateCustomerCommandHandler(),
		DeleteCustomer: c.CreateDeleteCustomerCommandHandler(),
		CreateOrder:    c.CreateCreateOrderCommandHandler(),
		UpdateOrder:    c.CreateUpdateOrderCommandHandler(),
		DeleteOrder:    c.CreateDeleteOrderCommandHandler(),
		GetCustomer:    c.CreateGetCustomerQueryHandler(),
		GetOrder:       c.CreateGetOrderQueryHandler(),
	})

	level, _ := logging.ParseLevel(c.cfg.LogLevel)
	return httpin.NewRouter(server, httpin.RouterConfig{
		AllowOrigins: c.cfg.CORSAllowOrigins,
		LogLevel:     level,
		Health:       c.store.ping,
	}, c.logger)
}

func (c *CompositionRoot) CreateJobManager() *jobs.JobManager {
	return jobs.NewJobManager(c.CreateCountOrphanedOrdersQueryHandler(), c.cfg.OrphanAuditSchedule, c.logger)
}

// Close disconnects the record store.
func (c *CompositionRoot) Close(ctx context.Context) error {
	return c.store.close(ctx)
}
