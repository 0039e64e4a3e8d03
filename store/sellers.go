package store

import (
	"context"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"

	"github.com/02priyeshraj/HomePlate_Backend/models"
)

type SellerStore struct {
	coll *mongo.Collection
}

func NewSellerStore(db *mongo.Database) *SellerStore {
	return &SellerStore{coll: db.Collection(SellersCollection)}
}

func (s *SellerStore) InsertSeller(ctx context.Context, seller *models.Seller) error {
	if seller.ID.IsZero() {
		seller.ID = primitive.NewObjectID()
	}
	_, err := s.coll.InsertOne(ctx, seller)
	return translate(err)
}

func (s *SellerStore) FindSellerByUsername(ctx context.Context, username string) (*models.Seller, error) {
	var seller models.Seller
	if err := s.coll.FindOne(ctx, bson.M{"username": username}).Decode(&seller); err != nil {
		return nil, translate(err)
	}
	return &seller, nil
}

func (s *SellerStore) FindSellerByID(ctx context.Context, id string) (*models.Seller, error) {
	oid, err := objectID(id)
	if err != nil {
		return nil, err
	}

	var seller models.Seller
	if err := s.coll.FindOne(ctx, bson.M{"_id": oid}).Decode(&seller); err != nil {
		return nil, translate(err)
	}
	return &seller, nil
}

// UpdateSellerLogo stores the logo URL and returns the updated seller.
func (s *SellerStore) UpdateSellerLogo(ctx context.Context, id, logoURL string) (*models.Seller, error) {
	oid, err := objectID(id)
	if err != nil {
		return nil, err
	}

	opts := options.FindOneAndUpdate().SetReturnDocument(options.After)
	update := bson.M{"$set": bson.M{"logo_url": logoURL}}

	var seller models.Seller
	if err := s.coll.FindOneAndUpdate(ctx, bson.M{"_id": oid}, update, opts).Decode(&seller); err != nil {
		return nil, translate(err)
	}
	return &seller, nil
}
