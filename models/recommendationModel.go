package models

const (
	GroupComplementary = "complementary"
	GroupPopular       = "popular"
	GroupCategory      = "category"
	GroupHistory       = "history"
)

// CartItem is what the client holds in its local cart. Type and Category
// come from the dish the item was added from.
type CartItem struct {
	DishID   string  `json:"dish_id"`
	Name     string  `json:"name"`
	Price    float64 `json:"price"`
	Quantity int     `json:"quantity"`
	Type     string  `json:"type"`
	Category string  `json:"category"`
}

type SuggestionGroup struct {
	Kind   string `json:"kind"`
	Reason string `json:"reason"`
	Dishes []Dish `json:"dishes"`
}
