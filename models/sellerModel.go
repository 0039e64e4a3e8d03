package models

import (
	"time"

	"go.mongodb.org/mongo-driver/bson/primitive"
)

// Seller is a kitchen owner. IsVerified is stored for the onboarding
// workflow but nothing in the API sets it yet.
type Seller struct {
	ID           primitive.ObjectID `bson:"_id,omitempty" json:"id"`
	BusinessName string             `bson:"business_name" json:"business_name" validate:"required,min=2,max=100"`
	OwnerName    string             `bson:"owner_name" json:"owner_name" validate:"required"`
	Username     string             `bson:"username" json:"username" validate:"required,min=3,max=50"`
	Email        string             `bson:"email" json:"email" validate:"required,email"`
	Password     string             `bson:"password" json:"-"`
	Phone        string             `bson:"phone" json:"phone" validate:"required"`
	Address      string             `bson:"address" json:"address" validate:"required"`
	FssaiNumber  string             `bson:"fssai_number,omitempty" json:"fssai_number,omitempty"`
	IsVerified   bool               `bson:"is_verified" json:"is_verified"`
	LogoURL      string             `bson:"logo_url" json:"logo_url"`
	Created_at   time.Time          `bson:"created_at" json:"created_at"`
}
