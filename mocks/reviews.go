package mocks

import (
	"context"

	"github.com/stretchr/testify/mock"

	"github.com/02priyeshraj/HomePlate_Backend/models"
)

type ReviewRepository struct {
	mock.Mock
}

func NewReviewRepository(t testingT) *ReviewRepository {
	m := &ReviewRepository{}
	register(&m.Mock, t)
	return m
}

func (_m *ReviewRepository) InsertReview(ctx context.Context, review *models.Review) error {
	ret := _m.Called(ctx, review)
	if fn, ok := ret.Get(0).(func(context.Context, *models.Review) error); ok {
		return fn(ctx, review)
	}
	return ret.Error(0)
}

func (_m *ReviewRepository) ListSellerReviews(ctx context.Context, sellerID string) ([]models.Review, error) {
	ret := _m.Called(ctx, sellerID)
	reviews, _ := ret.Get(0).([]models.Review)
	return reviews, ret.Error(1)
}

func (_m *ReviewRepository) SellerRatingSummary(ctx context.Context, sellerID string) (float64, int64, error) {
	ret := _m.Called(ctx, sellerID)
	avg, _ := ret.Get(0).(float64)
	count, _ := ret.Get(1).(int64)
	return avg, count, ret.Error(2)
}

type Completer struct {
	mock.Mock
}

func NewCompleter(t testingT) *Completer {
	m := &Completer{}
	register(&m.Mock, t)
	return m
}

func (_m *Completer) Complete(ctx context.Context, system, message string) (string, error) {
	ret := _m.Called(ctx, system, message)
	return ret.String(0), ret.Error(1)
}
