package store

import (
	"context"
	"regexp"
	"strings"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"

	"github.com/02priyeshraj/HomePlate_Backend/models"
)

type DishStore struct {
	coll *mongo.Collection
}

func NewDishStore(db *mongo.Database) *DishStore {
	return &DishStore{coll: db.Collection(DishesCollection)}
}

func (s *DishStore) InsertDish(ctx context.Context, dish *models.Dish) error {
	if dish.ID.IsZero() {
		dish.ID = primitive.NewObjectID()
	}
	_, err := s.coll.InsertOne(ctx, dish)
	return translate(err)
}

func (s *DishStore) FindDishes(ctx context.Context, q models.DishQuery) ([]models.Dish, error) {
	opts := options.Find().SetSort(dishSort(q))
	if q.Skip > 0 {
		opts.SetSkip(q.Skip)
	}
	if q.Limit > 0 {
		opts.SetLimit(q.Limit)
	}

	cursor, err := s.coll.Find(ctx, dishFilter(q), opts)
	if err != nil {
		return nil, err
	}
	defer cursor.Close(ctx)

	dishes := []models.Dish{}
	if err := cursor.All(ctx, &dishes); err != nil {
		return nil, err
	}
	return dishes, nil
}

func (s *DishStore) FindDishByID(ctx context.Context, id string) (*models.Dish, error) {
	oid, err := objectID(id)
	if err != nil {
		return nil, err
	}

	var dish models.Dish
	if err := s.coll.FindOne(ctx, bson.M{"_id": oid}).Decode(&dish); err != nil {
		return nil, translate(err)
	}
	return &dish, nil
}

// SetDishAvailability flips the soft-hide flag on a dish owned by sellerID.
func (s *DishStore) SetDishAvailability(ctx context.Context, id, sellerID string, available bool) (*models.Dish, error) {
	oid, err := objectID(id)
	if err != nil {
		return nil, err
	}

	opts := options.FindOneAndUpdate().SetReturnDocument(options.After)
	filter := bson.M{"_id": oid, "seller_id": sellerID}
	update := bson.M{"$set": bson.M{"is_available": available}}

	var dish models.Dish
	if err := s.coll.FindOneAndUpdate(ctx, filter, update, opts).Decode(&dish); err != nil {
		return nil, translate(err)
	}
	return &dish, nil
}

func (s *DishStore) CountSellerDishes(ctx context.Context, sellerID string) (int64, error) {
	return s.coll.CountDocuments(ctx, bson.M{"seller_id": sellerID})
}

func dishFilter(q models.DishQuery) bson.M {
	filter := bson.M{}

	if q.AvailableOnly {
		filter["is_available"] = true
	}
	if q.SellerID != "" {
		filter["seller_id"] = q.SellerID
	}
	if q.Type != "" {
		filter["type"] = q.Type
	}

	switch len(q.Categories) {
	case 0:
	case 1:
		filter["category"] = q.Categories[0]
	default:
		filter["category"] = bson.M{"$in": q.Categories}
	}

	if len(q.NameKeywords) > 0 {
		quoted := make([]string, 0, len(q.NameKeywords))
		for _, keyword := range q.NameKeywords {
			quoted = append(quoted, regexp.QuoteMeta(keyword))
		}
		filter["name"] = primitive.Regex{Pattern: strings.Join(quoted, "|"), Options: "i"}
	}

	if q.Search != "" {
		pattern := primitive.Regex{Pattern: regexp.QuoteMeta(q.Search), Options: "i"}
		filter["$or"] = bson.A{
			bson.M{"name": pattern},
			bson.M{"description": pattern},
		}
	}

	if q.IDs != nil {
		ids := make([]primitive.ObjectID, 0, len(q.IDs))
		for _, hex := range q.IDs {
			if oid, err := primitive.ObjectIDFromHex(hex); err == nil {
				ids = append(ids, oid)
			}
		}
		filter["_id"] = bson.M{"$in": ids}
	}

	return filter
}

func dishSort(q models.DishQuery) bson.D {
	if q.SortByRating {
		return bson.D{{Key: "rating", Value: -1}, {Key: "_id", Value: 1}}
	}
	return bson.D{{Key: "created_at", Value: -1}, {Key: "_id", Value: 1}}
}
