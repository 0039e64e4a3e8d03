package mocks

import (
	"context"

	"github.com/stretchr/testify/mock"

	"github.com/02priyeshraj/HomePlate_Backend/models"
)

type CustomerRepository struct {
	mock.Mock
}

func NewCustomerRepository(t testingT) *CustomerRepository {
	m := &CustomerRepository{}
	register(&m.Mock, t)
	return m
}

func (_m *CustomerRepository) InsertCustomer(ctx context.Context, customer *models.Customer) error {
	ret := _m.Called(ctx, customer)
	return ret.Error(0)
}

func (_m *CustomerRepository) FindCustomerByEmail(ctx context.Context, email string) (*models.Customer, error) {
	ret := _m.Called(ctx, email)
	customer, _ := ret.Get(0).(*models.Customer)
	return customer, ret.Error(1)
}

func (_m *CustomerRepository) FindCustomerByID(ctx context.Context, id string) (*models.Customer, error) {
	ret := _m.Called(ctx, id)
	customer, _ := ret.Get(0).(*models.Customer)
	return customer, ret.Error(1)
}

type SellerRepository struct {
	mock.Mock
}

func NewSellerRepository(t testingT) *SellerRepository {
	m := &SellerRepository{}
	register(&m.Mock, t)
	return m
}

func (_m *SellerRepository) InsertSeller(ctx context.Context, seller *models.Seller) error {
	ret := _m.Called(ctx, seller)
	return ret.Error(0)
}

func (_m *SellerRepository) FindSellerByUsername(ctx context.Context, username string) (*models.Seller, error) {
	ret := _m.Called(ctx, username)
	seller, _ := ret.Get(0).(*models.Seller)
	return seller, ret.Error(1)
}

func (_m *SellerRepository) FindSellerByID(ctx context.Context, id string) (*models.Seller, error) {
	ret := _m.Called(ctx, id)
	seller, _ := ret.Get(0).(*models.Seller)
	return seller, ret.Error(1)
}

func (_m *SellerRepository) UpdateSellerLogo(ctx context.Context, id, logoURL string) (*models.Seller, error) {
	ret := _m.Called(ctx, id, logoURL)
	seller, _ := ret.Get(0).(*models.Seller)
	return seller, ret.Error(1)
}
