// Package mongodb owns the connection to the document store.
//
// A single Client is acquired at startup, shared by every repository and released on shutdown:
//
//	client, err := mongodb.Connect(ctx, cfg.MongoURL, cfg.MongoDB)
//	if err != nil {
//	    return err
//	}
//	defer client.Close(context.Background())
//
//	customers := customerrepo.NewMongoCustomerRepository(client.Database())
//	if err := customers.EnsureIndexes(ctx); err != nil {
//	    return err
//	}
package mongodb

import (
	"context"
	"fmt"
	"time"

	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
	"go.mongodb.org/mongo-driver/mongo/readpref"
)

const connectTimeout = 10 * time.Second

// Client is the process-wide store handle.
type Client struct {
	client *mongo.Client
	db     *mongo.Database
}

// Connect dials uri and pings the primary before returning.
func Connect(ctx context.Context, uri, database string) (*Client, error) {
	ctx, cancel := context.WithTimeout(ctx, connectTimeout)
	defer cancel()

	c, err := mongo.Connect(ctx, options.Client().ApplyURI(uri))
	if err != nil {
		return nil, fmt.Errorf("connect to mongodb: %w", err)
	}
	if err = c.Ping(ctx, readpref.Primary()); err != nil {
		_ = c.Disconnect(context.Background())
		return nil, fmt.Errorf("ping mongodb: %w", err)
	}

	return &Client{client: c, db: c.Database(database)}, nil
}

// Database returns the configured database.
func (c *Client) Database() *mongo.Database {
	return c.db
}

// Ping reports whether the primary is reachable.
func (c *Client) Ping(ctx context.Context) error {
	return c.client.Ping(ctx, readpref.Primary())
}

// Close disconnects from the server.
func (c *Client) Close(ctx context.Context) error {
	return c.client.Disconnect(ctx)
}
