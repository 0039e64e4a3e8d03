package services

import (
	"context"
	"log/slog"

	"github.com/02priyeshraj/HomePlate_Backend/models"
)

const (
	suggestionGroupSize = 3
	historyDepth        = 10
)

var breadKeywords = []string{"chapati", "naan", "roti"}

// Recommender assembles suggestion groups from the catalog, the customer's
// order history and the cart the client sends along. It never fails: a
// store error yields no suggestions.
type Recommender struct {
	dishes DishFinder
	orders OrderHistory
	logger *slog.Logger
}

func NewRecommender(dishes DishFinder, orders OrderHistory, logger *slog.Logger) *Recommender {
	if logger == nil {
		logger = slog.Default()
	}
	return &Recommender{dishes: dishes, orders: orders, logger: logger}
}

func (r *Recommender) Assemble(ctx context.Context, p models.Principal, cart []models.CartItem) []models.SuggestionGroup {
	groups, err := r.assemble(ctx, p, cart)
	if err != nil {
		r.logger.Error("Recommendation assembly failed", "principal", p.ID, "error", err)
		return []models.SuggestionGroup{}
	}
	return groups
}

func (r *Recommender) assemble(ctx context.Context, p models.Principal, cart []models.CartItem) ([]models.SuggestionGroup, error) {
	groups := []models.SuggestionGroup{}
	add := func(kind, reason string, dishes []models.Dish) {
		if len(dishes) > 0 {
			groups = append(groups, models.SuggestionGroup{Kind: kind, Reason: reason, Dishes: dishes})
		}
	}

	if cartHasNonVeg(cart) {
		breads, err := r.dishes.FindDishes(ctx, models.DishQuery{
			AvailableOnly: true,
			Categories:    []string{models.CategoryMainCourse},
			Type:          models.TypeVeg,
			NameKeywords:  breadKeywords,
			Limit:         suggestionGroupSize,
		})
		if err != nil {
			return nil, err
		}
		add(models.GroupComplementary, "Perfect pairing with your non-veg selection", breads)
	}

	popular, err := r.dishes.FindDishes(ctx, models.DishQuery{
		AvailableOnly: true,
		SortByRating:  true,
		Limit:         suggestionGroupSize,
	})
	if err != nil {
		return nil, err
	}
	add(models.GroupPopular, "Top rated dishes", popular)

	if categories := cartCategories(cart); len(categories) > 0 {
		similar, err := r.dishes.FindDishes(ctx, models.DishQuery{
			AvailableOnly: true,
			Categories:    categories,
			Limit:         suggestionGroupSize,
		})
		if err != nil {
			return nil, err
		}
		add(models.GroupCategory, "You might also like", similar)
	}

	if p.IsCustomer() {
		history, err := r.orders.ListCustomerOrders(ctx, p.ID, historyDepth)
		if err != nil {
			return nil, err
		}
		if ids := orderedDishIDs(history); len(ids) > 0 {
			previous, err := r.dishes.FindDishes(ctx, models.DishQuery{
				AvailableOnly: true,
				IDs:           ids,
				Limit:         suggestionGroupSize,
			})
			if err != nil {
				return nil, err
			}
			add(models.GroupHistory, "Based on your order history", previous)
		}
	}

	return groups, nil
}

func cartHasNonVeg(cart []models.CartItem) bool {
	for _, item := range cart {
		if item.Type == models.TypeNonVeg {
			return true
		}
	}
	return false
}

func cartCategories(cart []models.CartItem) []string {
	seen := map[string]bool{}
	var categories []string
	for _, item := range cart {
		if item.Category != "" && !seen[item.Category] {
			seen[item.Category] = true
			categories = append(categories, item.Category)
		}
	}
	return categories
}

func orderedDishIDs(orders []models.Order) []string {
	seen := map[string]bool{}
	var ids []string
	for _, order := range orders {
		for _, item := range order.Items {
			if item.DishID != "" && !seen[item.DishID] {
				seen[item.DishID] = true
				ids = append(ids, item.DishID)
			}
		}
	}
	return ids
}
