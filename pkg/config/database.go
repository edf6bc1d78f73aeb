package config

import (
	"context"
	"fmt"
	"log/slog"
	"time"

	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
	"go.mongodb.org/mongo-driver/mongo/readpref"
)

// DB holds the database connection
type DB struct {
	Mongo    *mongo.Client
	Database *mongo.Database
}

// InitDB connects to MongoDB and selects the configured database
func InitDB(ctx context.Context, cfg *Config) (*DB, error) {
	client, err := initMongo(ctx, cfg.MongoURI())
	if err != nil {
		return nil, fmt.Errorf("failed to connect to MongoDB: %w", err)
	}

	return &DB{
		Mongo:    client,
		Database: client.Database(cfg.MongoDatabase),
	}, nil
}

// initMongo initializes the MongoDB connection
func initMongo(ctx context.Context, uri string) (*mongo.Client, error) {
	// Stable API v1 without strict mode: $text is outside the strict API surface.
	serverAPI := options.ServerAPI(options.ServerAPIVersion1)
	clientOptions := options.Client().ApplyURI(uri).SetServerAPIOptions(serverAPI)

	ctx, cancel := context.WithTimeout(ctx, 10*time.Second)
	defer cancel()

	client, err := mongo.Connect(ctx, clientOptions)
	if err != nil {
		return nil, err
	}

	// Ping the primary to verify connection
	if err = client.Ping(ctx, readpref.Primary()); err != nil {
		_ = client.Disconnect(context.Background())
		return nil, err
	}

	slog.Info("Successfully connected to MongoDB!")
	return client, nil
}

// Ping reports whether the primary is reachable
func (db *DB) Ping(ctx context.Context) error {
	return db.Mongo.Ping(ctx, readpref.Primary())
}

// CloseDB closes the database connection
func (db *DB) CloseDB() {
	if db == nil || db.Mongo == nil {
		return
	}

	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()
	if err := db.Mongo.Disconnect(ctx); err != nil {
		slog.Error("Error closing MongoDB connection", "err", err)
	} else {
		slog.Info("MongoDB connection closed.")
	}
}
