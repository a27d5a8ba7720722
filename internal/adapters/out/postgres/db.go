// Package postgres provides the relational record store built on GORM.
//
// Identifiers are ObjectID hex strings generated by the application, so records stored here
// are addressable with the same identifiers as the document store.
//
//	db, err := postgres.Open(postgres.DSN(cfg.DBHost, cfg.DBPort, cfg.DBUser, cfg.DBPassword, cfg.DBName, cfg.DBSslMode))
//	if err != nil {
//	    return err
//	}
//	if err := postgres.Migrate(db); err != nil {
//	    return err
//	}
//	customers := customerrepo.NewGormCustomerRepository(db)
package postgres

import (
	"fmt"

	"customerorder/internal/adapters/out/postgres/customerrepo"
	"customerorder/internal/adapters/out/postgres/orderrepo"

	postgresdriver "gorm.io/driver/postgres"
	"gorm.io/gorm"
	gormlogger "gorm.io/gorm/logger"
)

// DSN builds a libpq style connection string.
func DSN(host, port, user, password, dbName, sslMode string) string {
	return fmt.Sprintf(
		"host=%s port=%s user=%s password=%s dbname=%s sslmode=%s",
		host, port, user, password, dbName, sslMode,
	)
}

// Open connects with driver errors translated, so unique violations surface as gorm.ErrDuplicatedKey.
func Open(dsn string) (*gorm.DB, error) {
	db, err := gorm.Open(postgresdriver.Open(dsn), &gorm.Config{
		TranslateError: true,
		Logger:         gormlogger.Default.LogMode(gormlogger.Warn),
	})
	if err != nil {
		return nil, fmt.Errorf("connect to postgres: %w", err)
	}
	return db, nil
}

// Migrate creates or updates the customers and orders tables and the unique email index.
func Migrate(db *gorm.DB) error {
	return db.AutoMigrate(&customerrepo.CustomerDTO{}, &orderrepo.OrderDTO{})
}

// Close releases the underlying connection pool.
func Close(db *gorm.DB) error {
	sqlDB, err := db.DB()
	if err != nil {
		return err
	}
	return sqlDB.Close()
}
