package store

import (
	"context"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"

	"github.com/02priyeshraj/HomePlate_Backend/models"
)

type ReviewStore struct {
	coll *mongo.Collection
}

func NewReviewStore(db *mongo.Database) *ReviewStore {
	return &ReviewStore{coll: db.Collection(ReviewsCollection)}
}

// InsertReview relies on the unique (order_id, customer_id) index: a second
// review for the same pair fails with ErrDuplicateKey.
func (s *ReviewStore) InsertReview(ctx context.Context, review *models.Review) error {
	if review.ID.IsZero() {
		review.ID = primitive.NewObjectID()
	}
	_, err := s.coll.InsertOne(ctx, review)
	return translate(err)
}

func (s *ReviewStore) ListSellerReviews(ctx context.Context, sellerID string) ([]models.Review, error) {
	matchStage := bson.D{{Key: "$match", Value: bson.D{{Key: "seller_id", Value: sellerID}}}}
	sortStage := bson.D{{Key: "$sort", Value: bson.D{{Key: "created_at", Value: -1}}}}
	lookupStage := customerLookup("customer", "name")
	nameStage := bson.D{{Key: "$addFields", Value: bson.D{
		{Key: "customer_name", Value: bson.D{{Key: "$ifNull", Value: bson.A{
			bson.D{{Key: "$arrayElemAt", Value: bson.A{"$customer.name", 0}}},
			"",
		}}}},
	}}}
	projectStage := bson.D{{Key: "$project", Value: bson.D{{Key: "customer", Value: 0}}}}

	cursor, err := s.coll.Aggregate(ctx, mongo.Pipeline{matchStage, sortStage, lookupStage, nameStage, projectStage})
	if err != nil {
		return nil, err
	}
	defer cursor.Close(ctx)

	reviews := []models.Review{}
	if err := cursor.All(ctx, &reviews); err != nil {
		return nil, err
	}
	return reviews, nil
}

// SellerRatingSummary averages the ratings of all reviews for the seller.
func (s *ReviewStore) SellerRatingSummary(ctx context.Context, sellerID string) (float64, int64, error) {
	matchStage := bson.D{{Key: "$match", Value: bson.D{{Key: "seller_id", Value: sellerID}}}}
	groupStage := bson.D{{Key: "$group", Value: bson.D{
		{Key: "_id", Value: nil},
		{Key: "avg", Value: bson.D{{Key: "$avg", Value: "$rating"}}},
		{Key: "count", Value: bson.D{{Key: "$sum", Value: 1}}},
	}}}

	cursor, err := s.coll.Aggregate(ctx, mongo.Pipeline{matchStage, groupStage})
	if err != nil {
		return 0, 0, err
	}
	defer cursor.Close(ctx)

	var summary []struct {
		Avg   float64 `bson:"avg"`
		Count int64   `bson:"count"`
	}
	if err := cursor.All(ctx, &summary); err != nil {
		return 0, 0, err
	}
	if len(summary) == 0 {
		return 0, 0, nil
	}
	return summary[0].Avg, summary[0].Count, nil
}
