package services

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/02priyeshraj/HomePlate_Backend/helper"
	"github.com/02priyeshraj/HomePlate_Backend/models"
	"github.com/02priyeshraj/HomePlate_Backend/store"
)

type CatalogFilter struct {
	Type     string `validate:"omitempty,oneof=veg non-veg"`
	Category string `validate:"omitempty,oneof=appetizer main-course dessert beverage"`
	Search   string `validate:"max=100"`
	Skip     int64
	Limit    int64
}

type DishRequest struct {
	Name        string  `json:"name" validate:"required,min=2,max=100"`
	Description string  `json:"description" validate:"max=1000"`
	Price       float64 `json:"price" validate:"required,gt=0,finite"`
	Category    string  `json:"category" validate:"required,oneof=appetizer main-course dessert beverage"`
	Type        string  `json:"type" validate:"required,oneof=veg non-veg"`
	PrepTime    int     `json:"prep_time" validate:"gte=0,lte=600"`
	Image       string  `json:"image" validate:"omitempty,url"`
}

type CatalogService struct {
	dishes DishRepository
	images ImageSaver
}

func NewCatalogService(dishes DishRepository, images ImageSaver) *CatalogService {
	return &CatalogService{dishes: dishes, images: images}
}

// ListDishes is the customer-facing catalog: unavailable dishes never show.
func (s *CatalogService) ListDishes(ctx context.Context, filter CatalogFilter) ([]models.Dish, error) {
	filter.Search = strings.TrimSpace(filter.Search)
	if err := validateStruct(filter); err != nil {
		return nil, err
	}

	q := models.DishQuery{
		AvailableOnly: true,
		Type:          filter.Type,
		Search:        filter.Search,
		Skip:          filter.Skip,
		Limit:         filter.Limit,
	}
	if filter.Category != "" {
		q.Categories = []string{filter.Category}
	}

	dishes, err := s.dishes.FindDishes(ctx, q)
	if err != nil {
		return nil, fmt.Errorf("find dishes: %w", err)
	}
	return dishes, nil
}

func (s *CatalogService) GetDish(ctx context.Context, id string) (*models.Dish, error) {
	dish, err := s.dishes.FindDishByID(ctx, id)
	if errors.Is(err, store.ErrNotFound) {
		return nil, fmt.Errorf("%w: dish not found", ErrNotFound)
	} else if err != nil {
		return nil, fmt.Errorf("find dish: %w", err)
	}
	if !dish.IsAvailable {
		return nil, fmt.Errorf("%w: dish not found", ErrNotFound)
	}
	return dish, nil
}

func (s *CatalogService) AddDish(ctx context.Context, p models.Principal, req DishRequest, image *Upload) (*models.Dish, error) {
	if !p.IsSeller() {
		return nil, fmt.Errorf("%w: only sellers can add dishes", ErrForbidden)
	}

	req.Name = strings.TrimSpace(req.Name)
	req.Description = strings.TrimSpace(req.Description)
	if err := validateStruct(req); err != nil {
		return nil, err
	}

	imageURL, uploaded := req.Image, false
	if image != nil && image.File != nil {
		url, err := s.images.Save(image.File, image.Filename)
		if errors.Is(err, helper.ErrUnsupportedImage) {
			return nil, fmt.Errorf("%w: %v", ErrValidation, err)
		} else if err != nil {
			return nil, fmt.Errorf("save dish image: %w", err)
		}
		imageURL, uploaded = url, true
	}

	dish := &models.Dish{
		SellerID:    p.ID,
		Name:        req.Name,
		Description: req.Description,
		Price:       req.Price,
		Category:    req.Category,
		Type:        req.Type,
		PrepTime:    req.PrepTime,
		Rating:      models.DefaultDishRating,
		IsAvailable: true,
		Image:       imageURL,
		Created_at:  time.Now().UTC(),
	}
	if err := s.dishes.InsertDish(ctx, dish); err != nil {
		if uploaded {
			discardUpload(s.images, imageURL)
		}
		return nil, fmt.Errorf("insert dish: %w", err)
	}
	return dish, nil
}

// SellerDishes lists every dish the seller owns, hidden ones included.
func (s *CatalogService) SellerDishes(ctx context.Context, p models.Principal) ([]models.Dish, error) {
	if !p.IsSeller() {
		return nil, ErrForbidden
	}

	dishes, err := s.dishes.FindDishes(ctx, models.DishQuery{SellerID: p.ID})
	if err != nil {
		return nil, fmt.Errorf("find seller dishes: %w", err)
	}
	return dishes, nil
}

func (s *CatalogService) SetAvailability(ctx context.Context, p models.Principal, dishID string, available bool) (*models.Dish, error) {
	if !p.IsSeller() {
		return nil, fmt.Errorf("%w: only sellers can change dish availability", ErrForbidden)
	}

	dish, err := s.dishes.FindDishByID(ctx, dishID)
	if errors.Is(err, store.ErrNotFound) {
		return nil, fmt.Errorf("%w: dish not found", ErrNotFound)
	} else if err != nil {
		return nil, fmt.Errorf("find dish: %w", err)
	}
	if dish.SellerID != p.ID {
		return nil, fmt.Errorf("%w: dish belongs to another seller", ErrForbidden)
	}
	if dish.IsAvailable == available {
		return dish, nil
	}

	updated, err := s.dishes.SetDishAvailability(ctx, dishID, p.ID, available)
	if errors.Is(err, store.ErrNotFound) {
		return nil, fmt.Errorf("%w: dish not found", ErrNotFound)
	} else if err != nil {
		return nil, fmt.Errorf("update dish availability: %w", err)
	}
	return updated, nil
}
