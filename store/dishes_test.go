package store

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo/integration/mtest"

	"github.com/02priyeshraj/HomePlate_Backend/models"
)

func TestDishFilter(t *testing.T) {
	t.Run("empty_query_matches_everything", func(t *testing.T) {
		assert.Equal(t, bson.M{}, dishFilter(models.DishQuery{}))
	})

	t.Run("catalog_listing", func(t *testing.T) {
		filter := dishFilter(models.DishQuery{
			AvailableOnly: true,
			Type:          models.TypeVeg,
			Categories:    []string{models.CategoryDessert},
			Search:        "gulab (jamun)",
		})

		assert.Equal(t, true, filter["is_available"])
		assert.Equal(t, models.TypeVeg, filter["type"])
		assert.Equal(t, models.CategoryDessert, filter["category"])

		pattern := primitive.Regex{Pattern: `gulab \(jamun\)`, Options: "i"}
		assert.Equal(t, bson.A{bson.M{"name": pattern}, bson.M{"description": pattern}}, filter["$or"])
	})

	t.Run("keywords_and_categories", func(t *testing.T) {
		filter := dishFilter(models.DishQuery{
			Categories:   []string{models.CategoryMainCourse, models.CategoryAppetizer},
			NameKeywords: []string{"naan", "roti"},
		})

		assert.Equal(t, bson.M{"$in": []string{models.CategoryMainCourse, models.CategoryAppetizer}}, filter["category"])
		assert.Equal(t, primitive.Regex{Pattern: "naan|roti", Options: "i"}, filter["name"])
	})

	t.Run("ids_skip_malformed_hex", func(t *testing.T) {
		valid := primitive.NewObjectID()
		filter := dishFilter(models.DishQuery{IDs: []string{valid.Hex(), "d1"}})

		assert.Equal(t, bson.M{"$in": []primitive.ObjectID{valid}}, filter["_id"])
	})

	t.Run("empty_id_list_matches_nothing", func(t *testing.T) {
		filter := dishFilter(models.DishQuery{IDs: []string{}})
		assert.Equal(t, bson.M{"$in": []primitive.ObjectID{}}, filter["_id"])
	})
}

func TestDishSort(t *testing.T) {
	assert.Equal(t, "rating", dishSort(models.DishQuery{SortByRating: true})[0].Key)
	assert.Equal(t, "created_at", dishSort(models.DishQuery{})[0].Key)
}

func TestDishStore(t *testing.T) {
	mt := mtest.New(t, mtest.NewOptions().ClientType(mtest.Mock))

	mt.Run("find_dishes_decodes_documents", func(mt *mtest.T) {
		store := NewDishStore(mt.DB)
		id := primitive.NewObjectID()

		mt.AddMockResponses(mtest.CreateCursorResponse(0, "homeplate.dishes", mtest.FirstBatch, bson.D{
			{Key: "_id", Value: id},
			{Key: "seller_id", Value: "s1"},
			{Key: "name", Value: "Butter Naan"},
			{Key: "price", Value: 40.0},
			{Key: "category", Value: models.CategoryMainCourse},
			{Key: "type", Value: models.TypeVeg},
			{Key: "rating", Value: 4.5},
			{Key: "is_available", Value: true},
		}))

		dishes, err := store.FindDishes(context.Background(), models.DishQuery{AvailableOnly: true, Limit: 3})
		require.NoError(mt, err)
		require.Len(mt, dishes, 1)
		assert.Equal(mt, id, dishes[0].ID)
		assert.Equal(mt, "Butter Naan", dishes[0].Name)
		assert.Equal(mt, 4.5, dishes[0].Rating)
	})

	mt.Run("find_dish_by_malformed_id_is_not_found", func(mt *mtest.T) {
		store := NewDishStore(mt.DB)

		_, err := store.FindDishByID(context.Background(), "not-hex")
		assert.ErrorIs(mt, err, ErrNotFound)
	})

	mt.Run("find_dish_by_id_missing", func(mt *mtest.T) {
		store := NewDishStore(mt.DB)
		mt.AddMockResponses(mtest.CreateCursorResponse(0, "homeplate.dishes", mtest.FirstBatch))

		_, err := store.FindDishByID(context.Background(), primitive.NewObjectID().Hex())
		assert.ErrorIs(mt, err, ErrNotFound)
	})

	mt.Run("insert_assigns_id", func(mt *mtest.T) {
		store := NewDishStore(mt.DB)
		mt.AddMockResponses(mtest.CreateSuccessResponse())

		dish := &models.Dish{SellerID: "s1", Name: "Masala Chai", Price: 30}
		require.NoError(mt, store.InsertDish(context.Background(), dish))
		assert.False(mt, dish.ID.IsZero())
	})
}
