package store

import (
	"context"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"

	"github.com/02priyeshraj/HomePlate_Backend/models"
)

type CustomerStore struct {
	coll *mongo.Collection
}

func NewCustomerStore(db *mongo.Database) *CustomerStore {
	return &CustomerStore{coll: db.Collection(CustomersCollection)}
}

func (s *CustomerStore) InsertCustomer(ctx context.Context, customer *models.Customer) error {
	if customer.ID.IsZero() {
		customer.ID = primitive.NewObjectID()
	}
	_, err := s.coll.InsertOne(ctx, customer)
	return translate(err)
}

func (s *CustomerStore) FindCustomerByEmail(ctx context.Context, email string) (*models.Customer, error) {
	var customer models.Customer
	if err := s.coll.FindOne(ctx, bson.M{"email": email}).Decode(&customer); err != nil {
		return nil, translate(err)
	}
	return &customer, nil
}

func (s *CustomerStore) FindCustomerByID(ctx context.Context, id string) (*models.Customer, error) {
	oid, err := objectID(id)
	if err != nil {
		return nil, err
	}

	var customer models.Customer
	if err := s.coll.FindOne(ctx, bson.M{"_id": oid}).Decode(&customer); err != nil {
		return nil, translate(err)
	}
	return &customer, nil
}
