package database

import (
	"context"
	"fmt"
	"time"

	"github.com/Juankcba/choapp-back/internal/pkg/models"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
	"go.mongodb.org/mongo-driver/mongo/readpref"
)

// MongoClient holds the document store used for chat history
type MongoClient struct {
	client *mongo.Client
	db     *mongo.Database
}

// NewMongoClient connects to MongoDB and verifies the primary is reachable
func NewMongoClient(config models.MongoConfig) (*MongoClient, error) {
	timeout := config.ConnectTimeout
	if timeout <= 0 {
		timeout = 10 * time.Second
	}

	ctx, cancel := context.WithTimeout(context.Background(), timeout)
	defer cancel()

	client, err := mongo.Connect(ctx, options.Client().
		ApplyURI(config.URI).
		SetConnectTimeout(timeout))
	if err != nil {
		return nil, fmt.Errorf("failed to connect to mongo: %w", err)
	}

	if err := client.Ping(ctx, readpref.Primary()); err != nil {
		_ = client.Disconnect(context.Background())
		return nil, fmt.Errorf("failed to ping mongo: %w", err)
	}

	return &MongoClient{client: client, db: client.Database(config.Database)}, nil
}

// Database returns the configured database handle
func (m *MongoClient) Database() *mongo.Database {
	return m.db
}

// Ping reports whether MongoDB is reachable
func (m *MongoClient) Ping(ctx context.Context) error {
	return m.client.Ping(ctx, readpref.Primary())
}

// Close disconnects the client
func (m *MongoClient) Close(ctx context.Context) error {
	return m.client.Disconnect(ctx)
}
