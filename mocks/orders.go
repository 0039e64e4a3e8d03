package mocks

import (
	"context"

	"github.com/stretchr/testify/mock"

	"github.com/02priyeshraj/HomePlate_Backend/models"
)

type OrderRepository struct {
	mock.Mock
}

func NewOrderRepository(t testingT) *OrderRepository {
	m := &OrderRepository{}
	register(&m.Mock, t)
	return m
}

func (_m *OrderRepository) ListCustomerOrders(ctx context.Context, customerID string, limit int64) ([]models.Order, error) {
	ret := _m.Called(ctx, customerID, limit)
	orders, _ := ret.Get(0).([]models.Order)
	return orders, ret.Error(1)
}

func (_m *OrderRepository) InsertOrder(ctx context.Context, order *models.Order) error {
	ret := _m.Called(ctx, order)
	return ret.Error(0)
}

func (_m *OrderRepository) FindOrderByID(ctx context.Context, id string) (*models.Order, error) {
	ret := _m.Called(ctx, id)
	order, _ := ret.Get(0).(*models.Order)
	return order, ret.Error(1)
}

func (_m *OrderRepository) ListSellerOrders(ctx context.Context, sellerID string) ([]models.Order, error) {
	ret := _m.Called(ctx, sellerID)
	orders, _ := ret.Get(0).([]models.Order)
	return orders, ret.Error(1)
}

func (_m *OrderRepository) UpdateOrderStatus(ctx context.Context, id, sellerID, from, to string) (bool, error) {
	ret := _m.Called(ctx, id, sellerID, from, to)
	return ret.Bool(0), ret.Error(1)
}

func (_m *OrderRepository) SellerOrderTotals(ctx context.Context, sellerID string) (int64, float64, error) {
	ret := _m.Called(ctx, sellerID)
	count, _ := ret.Get(0).(int64)
	revenue, _ := ret.Get(1).(float64)
	return count, revenue, ret.Error(2)
}

type QRGenerator struct {
	mock.Mock
}

func NewQRGenerator(t testingT) *QRGenerator {
	m := &QRGenerator{}
	register(&m.Mock, t)
	return m
}

func (_m *QRGenerator) Generate(orderID string) ([]byte, error) {
	ret := _m.Called(orderID)
	png, _ := ret.Get(0).([]byte)
	return png, ret.Error(1)
}
