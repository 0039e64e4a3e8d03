package mocks

import (
	"context"
	"io"

	"github.com/stretchr/testify/mock"

	"github.com/02priyeshraj/HomePlate_Backend/models"
)

type DishRepository struct {
	mock.Mock
}

func NewDishRepository(t testingT) *DishRepository {
	m := &DishRepository{}
	register(&m.Mock, t)
	return m
}

func (_m *DishRepository) FindDishes(ctx context.Context, q models.DishQuery) ([]models.Dish, error) {
	ret := _m.Called(ctx, q)
	dishes, _ := ret.Get(0).([]models.Dish)
	return dishes, ret.Error(1)
}

func (_m *DishRepository) InsertDish(ctx context.Context, dish *models.Dish) error {
	ret := _m.Called(ctx, dish)
	return ret.Error(0)
}

func (_m *DishRepository) FindDishByID(ctx context.Context, id string) (*models.Dish, error) {
	ret := _m.Called(ctx, id)
	dish, _ := ret.Get(0).(*models.Dish)
	return dish, ret.Error(1)
}

func (_m *DishRepository) SetDishAvailability(ctx context.Context, id, sellerID string, available bool) (*models.Dish, error) {
	ret := _m.Called(ctx, id, sellerID, available)
	dish, _ := ret.Get(0).(*models.Dish)
	return dish, ret.Error(1)
}

func (_m *DishRepository) CountSellerDishes(ctx context.Context, sellerID string) (int64, error) {
	ret := _m.Called(ctx, sellerID)
	count, _ := ret.Get(0).(int64)
	return count, ret.Error(1)
}

type ImageSaver struct {
	mock.Mock
}

func NewImageSaver(t testingT) *ImageSaver {
	m := &ImageSaver{}
	register(&m.Mock, t)
	return m
}

func (_m *ImageSaver) Save(r io.Reader, originalName string) (string, error) {
	ret := _m.Called(r, originalName)
	return ret.String(0), ret.Error(1)
}

func (_m *ImageSaver) Remove(url string) error {
	ret := _m.Called(url)
	return ret.Error(0)
}
