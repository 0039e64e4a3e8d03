// Package store holds the MongoDB collections behind the marketplace.
package store

import (
	"context"
	"errors"
	"fmt"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
)

const (
	CustomersCollection = "customers"
	SellersCollection   = "sellers"
	DishesCollection    = "dishes"
	OrdersCollection    = "orders"
	ReviewsCollection   = "reviews"
)

var (
	ErrNotFound     = errors.New("document not found")
	ErrDuplicateKey = errors.New("duplicate key")
)

// EnsureIndexes creates the unique keys the API relies on for conflict
// detection plus the indexes behind the list queries.
func EnsureIndexes(ctx context.Context, db *mongo.Database) error {
	indexes := map[string][]mongo.IndexModel{
		CustomersCollection: {
			{Keys: bson.D{{Key: "email", Value: 1}}, Options: options.Index().SetUnique(true)},
		},
		SellersCollection: {
			{Keys: bson.D{{Key: "username", Value: 1}}, Options: options.Index().SetUnique(true)},
			{Keys: bson.D{{Key: "email", Value: 1}}, Options: options.Index().SetUnique(true)},
		},
		DishesCollection: {
			{Keys: bson.D{{Key: "is_available", Value: 1}, {Key: "rating", Value: -1}}},
			{Keys: bson.D{{Key: "seller_id", Value: 1}}},
		},
		OrdersCollection: {
			{Keys: bson.D{{Key: "customer_id", Value: 1}, {Key: "created_at", Value: -1}}},
			{Keys: bson.D{{Key: "seller_id", Value: 1}, {Key: "created_at", Value: -1}}},
		},
		ReviewsCollection: {
			{Keys: bson.D{{Key: "order_id", Value: 1}, {Key: "customer_id", Value: 1}}, Options: options.Index().SetUnique(true)},
			{Keys: bson.D{{Key: "seller_id", Value: 1}, {Key: "created_at", Value: -1}}},
		},
	}

	for collection, models := range indexes {
		if _, err := db.Collection(collection).Indexes().CreateMany(ctx, models); err != nil {
			return fmt.Errorf("create indexes on %s: %w", collection, err)
		}
	}
	return nil
}

func objectID(hex string) (primitive.ObjectID, error) {
	id, err := primitive.ObjectIDFromHex(hex)
	if err != nil {
		return primitive.NilObjectID, ErrNotFound
	}
	return id, nil
}

func translate(err error) error {
	switch {
	case err == nil:
		return nil
	case errors.Is(err, mongo.ErrNoDocuments):
		return ErrNotFound
	case mongo.IsDuplicateKeyError(err):
		return fmt.Errorf("%w: %v", ErrDuplicateKey, err)
	}
	return err
}

// customerLookup joins the customer document referenced by customer_id
// (stored as a hex string) under the field as.
func customerLookup(as string, fields ...string) bson.D {
	project := bson.D{{Key: "_id", Value: 0}}
	for _, field := range fields {
		project = append(project, bson.E{Key: field, Value: 1})
	}

	return bson.D{{Key: "$lookup", Value: bson.D{
		{Key: "from", Value: CustomersCollection},
		{Key: "let", Value: bson.D{{Key: "cid", Value: bson.D{{Key: "$convert", Value: bson.D{
			{Key: "input", Value: "$customer_id"},
			{Key: "to", Value: "objectId"},
			{Key: "onError", Value: nil},
			{Key: "onNull", Value: nil},
		}}}}}},
		{Key: "pipeline", Value: bson.A{
			bson.D{{Key: "$match", Value: bson.D{{Key: "$expr", Value: bson.D{{Key: "$eq", Value: bson.A{"$_id", "$$cid"}}}}}}},
			bson.D{{Key: "$project", Value: project}},
		}},
		{Key: "as", Value: as},
	}}}
}
