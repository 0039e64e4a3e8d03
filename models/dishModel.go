package models

import (
	"time"

	"go.mongodb.org/mongo-driver/bson/primitive"
)

const (
	CategoryAppetizer  = "appetizer"
	CategoryMainCourse = "main-course"
	CategoryDessert    = "dessert"
	CategoryBeverage   = "beverage"

	TypeVeg    = "veg"
	TypeNonVeg = "non-veg"

	DefaultDishRating = 4.0
)

type Dish struct {
	ID          primitive.ObjectID `bson:"_id,omitempty" json:"id"`
	SellerID    string             `bson:"seller_id" json:"seller_id" validate:"required"`
	Name        string             `bson:"name" json:"name" validate:"required,min=2,max=100"`
	Description string             `bson:"description" json:"description"`
	Price       float64            `bson:"price" json:"price" validate:"required,gt=0"`
	Category    string             `bson:"category" json:"category" validate:"required,oneof=appetizer main-course dessert beverage"`
	Type        string             `bson:"type" json:"type" validate:"required,oneof=veg non-veg"`
	PrepTime    int                `bson:"prep_time" json:"prep_time" validate:"gte=0"`
	Rating      float64            `bson:"rating" json:"rating"`
	IsAvailable bool               `bson:"is_available" json:"is_available"`
	Image       string             `bson:"image" json:"image"`
	Created_at  time.Time          `bson:"created_at" json:"created_at"`
}

// DishQuery narrows a catalog lookup. Zero-valued fields do not filter.
type DishQuery struct {
	SellerID      string
	Type          string
	Categories    []string
	Search        string
	NameKeywords  []string
	IDs           []string
	AvailableOnly bool
	SortByRating  bool
	Skip          int64
	Limit         int64
}
