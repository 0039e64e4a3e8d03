package store

import (
	"context"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"

	"github.com/02priyeshraj/HomePlate_Backend/models"
)

type OrderStore struct {
	coll *mongo.Collection
}

func NewOrderStore(db *mongo.Database) *OrderStore {
	return &OrderStore{coll: db.Collection(OrdersCollection)}
}

func (s *OrderStore) InsertOrder(ctx context.Context, order *models.Order) error {
	if order.ID.IsZero() {
		order.ID = primitive.NewObjectID()
	}
	_, err := s.coll.InsertOne(ctx, order)
	return translate(err)
}

func (s *OrderStore) FindOrderByID(ctx context.Context, id string) (*models.Order, error) {
	oid, err := objectID(id)
	if err != nil {
		return nil, err
	}

	var order models.Order
	if err := s.coll.FindOne(ctx, bson.M{"_id": oid}).Decode(&order); err != nil {
		return nil, translate(err)
	}
	return &order, nil
}

// ListCustomerOrders returns the customer's orders newest first. limit <= 0
// returns all of them.
func (s *OrderStore) ListCustomerOrders(ctx context.Context, customerID string, limit int64) ([]models.Order, error) {
	opts := options.Find().SetSort(bson.D{{Key: "created_at", Value: -1}})
	if limit > 0 {
		opts.SetLimit(limit)
	}

	cursor, err := s.coll.Find(ctx, bson.M{"customer_id": customerID}, opts)
	if err != nil {
		return nil, err
	}
	defer cursor.Close(ctx)

	orders := []models.Order{}
	if err := cursor.All(ctx, &orders); err != nil {
		return nil, err
	}
	return orders, nil
}

// ListSellerOrders returns the seller's orders newest first with the
// customer's name and phone attached.
func (s *OrderStore) ListSellerOrders(ctx context.Context, sellerID string) ([]models.Order, error) {
	matchStage := bson.D{{Key: "$match", Value: bson.D{{Key: "seller_id", Value: sellerID}}}}
	sortStage := bson.D{{Key: "$sort", Value: bson.D{{Key: "created_at", Value: -1}}}}
	lookupStage := customerLookup("customer", "name", "phone")
	unwindStage := bson.D{{Key: "$unwind", Value: bson.D{
		{Key: "path", Value: "$customer"},
		{Key: "preserveNullAndEmptyArrays", Value: true},
	}}}

	cursor, err := s.coll.Aggregate(ctx, mongo.Pipeline{matchStage, sortStage, lookupStage, unwindStage})
	if err != nil {
		return nil, err
	}
	defer cursor.Close(ctx)

	orders := []models.Order{}
	if err := cursor.All(ctx, &orders); err != nil {
		return nil, err
	}
	return orders, nil
}

// UpdateOrderStatus moves the order from one status to another. It reports
// false when no order with that id, seller and current status exists.
func (s *OrderStore) UpdateOrderStatus(ctx context.Context, id, sellerID, from, to string) (bool, error) {
	oid, err := objectID(id)
	if err != nil {
		return false, err
	}

	filter := bson.M{"_id": oid, "seller_id": sellerID, "status": from}
	update := bson.M{"$set": bson.M{"status": to}}

	result, err := s.coll.UpdateOne(ctx, filter, update)
	if err != nil {
		return false, err
	}
	return result.MatchedCount > 0, nil
}

// SellerOrderTotals counts the seller's orders and sums their totals.
func (s *OrderStore) SellerOrderTotals(ctx context.Context, sellerID string) (int64, float64, error) {
	matchStage := bson.D{{Key: "$match", Value: bson.D{{Key: "seller_id", Value: sellerID}}}}
	groupStage := bson.D{{Key: "$group", Value: bson.D{
		{Key: "_id", Value: nil},
		{Key: "count", Value: bson.D{{Key: "$sum", Value: 1}}},
		{Key: "revenue", Value: bson.D{{Key: "$sum", Value: "$total_amount"}}},
	}}}

	cursor, err := s.coll.Aggregate(ctx, mongo.Pipeline{matchStage, groupStage})
	if err != nil {
		return 0, 0, err
	}
	defer cursor.Close(ctx)

	var totals []struct {
		Count   int64   `bson:"count"`
		Revenue float64 `bson:"revenue"`
	}
	if err := cursor.All(ctx, &totals); err != nil {
		return 0, 0, err
	}
	if len(totals) == 0 {
		return 0, 0, nil
	}
	return totals[0].Count, totals[0].Revenue, nil
}
