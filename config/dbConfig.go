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

// DBinstance connects to MongoDB and verifies the connection with a ping.
func DBinstance(ctx context.Context, uri string) (*mongo.Client, error) {
	slog.Info("Connecting to MongoDB...")

	ctx, cancel := context.WithTimeout(ctx, 10*time.Second)
	defer cancel()

	client, err := mongo.Connect(ctx, options.Client().ApplyURI(uri))
	if err != nil {
		return nil, fmt.Errorf("connect mongo: %w", err)
	}

	if err := client.Ping(ctx, readpref.Primary()); err != nil {
		_ = client.Disconnect(context.Background())
		return nil, fmt.Errorf("ping mongo: %w", err)
	}

	slog.Info("Connected to MongoDB")
	return client, nil
}

func OpenDatabase(client *mongo.Client, name string) *mongo.Database {
	return client.Database(name)
}
