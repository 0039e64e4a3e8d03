package services

import (
	"context"
	"fmt"
	"math"

	"github.com/02priyeshraj/HomePlate_Backend/models"
)

type StatsService struct {
	orders  OrderRepository
	dishes  DishRepository
	reviews ReviewRepository
}

func NewStatsService(orders OrderRepository, dishes DishRepository, reviews ReviewRepository) *StatsService {
	return &StatsService{orders: orders, dishes: dishes, reviews: reviews}
}

// SellerStats builds the dashboard numbers. The average rating comes from
// the seller's reviews; the static per-dish rating is not used here.
func (s *StatsService) SellerStats(ctx context.Context, p models.Principal) (*models.SellerStats, error) {
	if !p.IsSeller() {
		return nil, ErrForbidden
	}

	orderCount, revenue, err := s.orders.SellerOrderTotals(ctx, p.ID)
	if err != nil {
		return nil, fmt.Errorf("order totals: %w", err)
	}

	dishCount, err := s.dishes.CountSellerDishes(ctx, p.ID)
	if err != nil {
		return nil, fmt.Errorf("count dishes: %w", err)
	}

	avg, reviewCount, err := s.reviews.SellerRatingSummary(ctx, p.ID)
	if err != nil {
		return nil, fmt.Errorf("rating summary: %w", err)
	}

	return &models.SellerStats{
		TotalOrders:  orderCount,
		TotalDishes:  dishCount,
		TotalRevenue: roundCents(revenue),
		AvgRating:    math.Round(avg*10) / 10,
		ReviewCount:  reviewCount,
	}, nil
}
