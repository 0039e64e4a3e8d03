package models

import (
	"time"

	"go.mongodb.org/mongo-driver/bson/primitive"
)

const (
	StatusNew            = "new"
	StatusPreparing      = "preparing"
	StatusOutForDelivery = "out-for-delivery"
	StatusDelivered      = "delivered"
	StatusCancelled      = "cancelled"

	PaymentCOD    = "cod"
	PaymentOnline = "online"
)

// orderTransitions lists the only status moves a seller may make.
// out-for-delivery and cancelled are valid labels with no path into them yet.
var orderTransitions = map[string]string{
	StatusNew:       StatusPreparing,
	StatusPreparing: StatusDelivered,
}

// CanTransition reports whether an order in status from may be moved to to.
// Re-applying the current status is accepted as a no-op.
func CanTransition(from, to string) bool {
	if from == to {
		return IsKnownStatus(to)
	}
	next, ok := orderTransitions[from]
	return ok && next == to
}

func IsKnownStatus(status string) bool {
	switch status {
	case StatusNew, StatusPreparing, StatusOutForDelivery, StatusDelivered, StatusCancelled:
		return true
	}
	return false
}

// LineItem is a snapshot of a dish at checkout time.
type LineItem struct {
	DishID   string  `bson:"dish_id" json:"dish_id" validate:"required"`
	Name     string  `bson:"name" json:"name" validate:"required"`
	Price    float64 `bson:"price" json:"price" validate:"gt=0,finite"`
	Quantity int     `bson:"quantity" json:"quantity" validate:"gte=1"`
}

type Order struct {
	ID                  primitive.ObjectID `bson:"_id,omitempty" json:"id"`
	CustomerID          string             `bson:"customer_id" json:"customer_id"`
	SellerID            string             `bson:"seller_id" json:"seller_id"`
	Items               []LineItem         `bson:"items" json:"items"`
	TotalAmount         float64            `bson:"total_amount" json:"total_amount"`
	DeliveryAddress     string             `bson:"delivery_address" json:"delivery_address"`
	PaymentMethod       string             `bson:"payment_method" json:"payment_method"`
	Status              string             `bson:"status" json:"status"`
	SpecialInstructions string             `bson:"special_instructions,omitempty" json:"special_instructions,omitempty"`
	Created_at          time.Time          `bson:"created_at" json:"created_at"`
	Customer            *CustomerSummary   `bson:"customer,omitempty" json:"customer,omitempty"`
}

// CustomerSummary is joined onto orders in the seller view.
type CustomerSummary struct {
	Name  string `bson:"name" json:"name"`
	Phone string `bson:"phone" json:"phone"`
}

// ItemsTotal sums price times quantity over the line items.
func ItemsTotal(items []LineItem) float64 {
	var total float64
	for _, item := range items {
		total += item.Price * float64(item.Quantity)
	}
	return total
}
