package database

import (
	"context"
	"fmt"
	"log"
	"time"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"

	"library-backend/internal/config"
)

// MongoDB wraps the driver client and manages its lifecycle.
// A single instance is shared by every repository.
type MongoDB struct {
	Client   *mongo.Client
	Database *mongo.Database
	Config   *config.MongoConfig
}

// NewMongoDB creates an unconnected instance; call Connect before use.
func NewMongoDB(cfg *config.MongoConfig) *MongoDB {
	return &MongoDB{Config: cfg}
}

// Connect establishes the client connection with retry and exponential
// backoff, then verifies it with a ping.
func (db *MongoDB) Connect(ctx context.Context) error {
	log.Println("[DATABASE] Initializing MongoDB connection...")

	opts := options.Client().
		ApplyURI(db.Config.URI).
		SetConnectTimeout(db.Config.ConnectTimeout)

	client, err := db.connectWithRetry(ctx, opts)
	if err != nil {
		return fmt.Errorf("connection failed: %w", err)
	}

	db.Client = client
	db.Database = client.Database(db.Config.Database)

	log.Println("[DATABASE] MongoDB connection established successfully")
	return nil
}

func (db *MongoDB) connectWithRetry(ctx context.Context, opts *options.ClientOptions) (*mongo.Client, error) {
	var client *mongo.Client
	var lastErr error

	for attempt := 1; attempt <= db.Config.MaxRetries; attempt++ {
		log.Printf("[DATABASE] Connection attempt %d/%d", attempt, db.Config.MaxRetries)

		connectCtx, cancel := context.WithTimeout(ctx, db.Config.ConnectTimeout)
		client, lastErr = mongo.Connect(connectCtx, opts)
		if lastErr == nil {
			// Connect is lazy; ping to verify the deployment is reachable.
			if err := client.Ping(connectCtx, nil); err != nil {
				_ = client.Disconnect(connectCtx)
				lastErr = err
				log.Printf("[DATABASE] Ping failed: %v", err)
			} else {
				cancel()
				log.Printf("[DATABASE] Successfully connected on attempt %d", attempt)
				return client, nil
			}
		}
		cancel()

		log.Printf("[DATABASE] Attempt %d failed: %v", attempt, lastErr)

		if attempt < db.Config.MaxRetries {
			// delay = base_delay * 2^(attempt-1)
			delay := db.Config.RetryDelay * time.Duration(1<<uint(attempt-1))
			log.Printf("[DATABASE] Retrying in %v...", delay)

			select {
			case <-time.After(delay):
			case <-ctx.Done():
				return nil, fmt.Errorf("connection cancelled: %w", ctx.Err())
			}
		}
	}

	return nil, fmt.Errorf("failed to connect after %d attempts: %w",
		db.Config.MaxRetries, lastErr)
}

// EnsureIndexes creates the unique indexes the domain relies on.
// Uniqueness of author names and usernames is enforced here, not in
// application code, so concurrent writers race to an index error
// instead of creating duplicates.
func (db *MongoDB) EnsureIndexes(ctx context.Context) error {
	unique := options.Index().SetUnique(true)

	_, err := db.Database.Collection("authors").Indexes().CreateOne(ctx, mongo.IndexModel{
		Keys:    bson.D{{Key: "name", Value: 1}},
		Options: unique,
	})
	if err != nil {
		return fmt.Errorf("create authors.name index: %w", err)
	}

	_, err = db.Database.Collection("users").Indexes().CreateOne(ctx, mongo.IndexModel{
		Keys:    bson.D{{Key: "username", Value: 1}},
		Options: unique,
	})
	if err != nil {
		return fmt.Errorf("create users.username index: %w", err)
	}

	// Non-unique, supports the author/genre book filters.
	_, err = db.Database.Collection("books").Indexes().CreateOne(ctx, mongo.IndexModel{
		Keys: bson.D{{Key: "author", Value: 1}},
	})
	if err != nil {
		return fmt.Errorf("create books.author index: %w", err)
	}

	return nil
}

// HealthCheck verifies database connectivity; called by the health endpoint.
func (db *MongoDB) HealthCheck(ctx context.Context) error {
	if db.Client == nil {
		return fmt.Errorf("mongo client is not initialized")
	}

	healthCtx, cancel := context.WithTimeout(ctx, 5*time.Second)
	defer cancel()

	if err := db.Client.Ping(healthCtx, nil); err != nil {
		return fmt.Errorf("mongo ping failed: %w", err)
	}

	return nil
}

// Close disconnects the client.
func (db *MongoDB) Close(ctx context.Context) error {
	if db.Client == nil {
		return nil
	}
	return db.Client.Disconnect(ctx)
}
