// Package mongo provides MongoDB-backed persistence for render jobs.
package mongo

import (
	"context"
	"fmt"
	"time"

	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
	"go.mongodb.org/mongo-driver/mongo/readpref"
	"go.uber.org/zap"
)

// Client wraps the mongo driver client with the application database handle.
type Client struct {
	client   *mongo.Client
	database *mongo.Database
	logger   *zap.Logger
}

// NewClient connects and pings the deployment. uri is the full connection
// string; databaseName defaults to "wicara".
func NewClient(ctx context.Context, uri, databaseName string, logger *zap.Logger) (*Client, error) {
	if databaseName == "" {
		databaseName = "wicara"
	}

	ctx, cancel := context.WithTimeout(ctx, 10*time.Second)
	defer cancel()

	client, err := mongo.Connect(ctx, options.Client().ApplyURI(uri))
	if err != nil {
		return nil, fmt.Errorf("failed to connect to mongodb: %w", err)
	}

	if err := client.Ping(ctx, readpref.Primary()); err != nil {
		return nil, fmt.Errorf("failed to ping mongodb: %w", err)
	}

	logger.Info("Connected to MongoDB", zap.String("database", databaseName))

	return &Client{
		client:   client,
		database: client.Database(databaseName),
		logger:   logger,
	}, nil
}

// Disconnect closes the underlying connection.
func (c *Client) Disconnect(ctx context.Context) error {
	return c.client.Disconnect(ctx)
}
