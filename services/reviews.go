package services

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/02priyeshraj/HomePlate_Backend/models"
	"github.com/02priyeshraj/HomePlate_Backend/store"
)

type ReviewRequest struct {
	OrderID  string `json:"order_id" validate:"required"`
	SellerID string `json:"seller_id"`
	Rating   int    `json:"rating" validate:"required,min=1,max=5"`
	Comment  string `json:"comment" validate:"max=1000"`
}

type ReviewService struct {
	reviews ReviewRepository
	orders  OrderRepository
}

func NewReviewService(reviews ReviewRepository, orders OrderRepository) *ReviewService {
	return &ReviewService{reviews: reviews, orders: orders}
}

// SubmitReview stores one review per (order, customer). The order id is
// stored in its canonical hex form so the unique index on insert catches
// duplicates however the client spelled the id.
func (s *ReviewService) SubmitReview(ctx context.Context, p models.Principal, req ReviewRequest) (*models.Review, error) {
	if !p.IsCustomer() {
		return nil, fmt.Errorf("%w: only customers can write reviews", ErrForbidden)
	}

	req.OrderID = strings.TrimSpace(req.OrderID)
	req.SellerID = strings.TrimSpace(req.SellerID)
	if err := validateStruct(req); err != nil {
		return nil, err
	}

	order, err := s.orders.FindOrderByID(ctx, req.OrderID)
	if errors.Is(err, store.ErrNotFound) {
		return nil, fmt.Errorf("%w: order not found", ErrNotFound)
	} else if err != nil {
		return nil, fmt.Errorf("find order: %w", err)
	}
	if order.CustomerID != p.ID {
		return nil, fmt.Errorf("%w: order belongs to another customer", ErrForbidden)
	}
	if req.SellerID != "" && !strings.EqualFold(req.SellerID, order.SellerID) {
		return nil, fmt.Errorf("%w: seller_id does not match the order", ErrValidation)
	}

	review := &models.Review{
		OrderID:    order.ID.Hex(),
		SellerID:   order.SellerID,
		CustomerID: p.ID,
		Rating:     req.Rating,
		Comment:    strings.TrimSpace(req.Comment),
		Created_at: time.Now().UTC(),
	}
	if err := s.reviews.InsertReview(ctx, review); err != nil {
		if errors.Is(err, store.ErrDuplicateKey) {
			return nil, fmt.Errorf("%w: you have already reviewed this order", ErrConflict)
		}
		return nil, fmt.Errorf("insert review: %w", err)
	}
	return review, nil
}

func (s *ReviewService) ListSellerReviews(ctx context.Context, sellerID string) ([]models.Review, error) {
	sellerID = strings.TrimSpace(sellerID)
	if sellerID == "" {
		return nil, fmt.Errorf("%w: seller id is required", ErrValidation)
	}

	reviews, err := s.reviews.ListSellerReviews(ctx, sellerID)
	if err != nil {
		return nil, fmt.Errorf("list reviews: %w", err)
	}
	return reviews, nil
}
