package models

import (
	"time"

	"go.mongodb.org/mongo-driver/bson/primitive"
)

type Review struct {
	ID           primitive.ObjectID `bson:"_id,omitempty" json:"id"`
	OrderID      string             `bson:"order_id" json:"order_id"`
	SellerID     string             `bson:"seller_id" json:"seller_id"`
	CustomerID   string             `bson:"customer_id" json:"customer_id"`
	Rating       int                `bson:"rating" json:"rating" validate:"required,min=1,max=5"`
	Comment      string             `bson:"comment" json:"comment" validate:"max=1000"`
	Created_at   time.Time          `bson:"created_at" json:"created_at"`
	CustomerName string             `bson:"customer_name,omitempty" json:"customer_name,omitempty"`
}

// SellerStats is the seller dashboard summary.
type SellerStats struct {
	TotalOrders  int64   `json:"total_orders"`
	TotalDishes  int64   `json:"total_dishes"`
	TotalRevenue float64 `json:"total_revenue"`
	AvgRating    float64 `json:"avg_rating"`
	ReviewCount  int64   `json:"review_count"`
}
