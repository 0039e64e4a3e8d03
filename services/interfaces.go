package services

import (
	"context"
	"io"
	"log/slog"

	"github.com/02priyeshraj/HomePlate_Backend/models"
)

type CustomerRepository interface {
	InsertCustomer(ctx context.Context, customer *models.Customer) error
	FindCustomerByEmail(ctx context.Context, email string) (*models.Customer, error)
	FindCustomerByID(ctx context.Context, id string) (*models.Customer, error)
}

type SellerRepository interface {
	InsertSeller(ctx context.Context, seller *models.Seller) error
	FindSellerByUsername(ctx context.Context, username string) (*models.Seller, error)
	FindSellerByID(ctx context.Context, id string) (*models.Seller, error)
	UpdateSellerLogo(ctx context.Context, id, logoURL string) (*models.Seller, error)
}

// DishFinder is the read side of the catalog.
type DishFinder interface {
	FindDishes(ctx context.Context, q models.DishQuery) ([]models.Dish, error)
}

type DishRepository interface {
	DishFinder
	InsertDish(ctx context.Context, dish *models.Dish) error
	FindDishByID(ctx context.Context, id string) (*models.Dish, error)
	SetDishAvailability(ctx context.Context, id, sellerID string, available bool) (*models.Dish, error)
	CountSellerDishes(ctx context.Context, sellerID string) (int64, error)
}

// OrderHistory lists a customer's past orders, newest first.
type OrderHistory interface {
	ListCustomerOrders(ctx context.Context, customerID string, limit int64) ([]models.Order, error)
}

type OrderRepository interface {
	OrderHistory
	InsertOrder(ctx context.Context, order *models.Order) error
	FindOrderByID(ctx context.Context, id string) (*models.Order, error)
	ListSellerOrders(ctx context.Context, sellerID string) ([]models.Order, error)
	UpdateOrderStatus(ctx context.Context, id, sellerID, from, to string) (bool, error)
	SellerOrderTotals(ctx context.Context, sellerID string) (int64, float64, error)
}

type ReviewRepository interface {
	InsertReview(ctx context.Context, review *models.Review) error
	ListSellerReviews(ctx context.Context, sellerID string) ([]models.Review, error)
	SellerRatingSummary(ctx context.Context, sellerID string) (float64, int64, error)
}

type TokenIssuer interface {
	GenerateToken(p models.Principal) (string, error)
}

type PasswordHasher interface {
	HashPassword(password string) (string, error)
	VerifyPassword(providedPassword, hashedPassword string) bool
}

// ImageSaver stores an uploaded image and returns the URL it is served from.
// Remove takes a URL returned by Save.
type ImageSaver interface {
	Save(r io.Reader, originalName string) (string, error)
	Remove(url string) error
}

// discardUpload drops a saved image whose database write failed.
func discardUpload(images ImageSaver, url string) {
	if err := images.Remove(url); err != nil {
		slog.Warn("Failed to remove orphaned upload", "url", url, "error", err)
	}
}

// Upload is a file received from a multipart form.
type Upload struct {
	File     io.Reader
	Filename string
}

type IdentityServiceInterface interface {
	RegisterCustomer(ctx context.Context, req CustomerRegistration) (*AuthResult, error)
	LoginCustomer(ctx context.Context, req CustomerLogin) (*AuthResult, error)
	RegisterSeller(ctx context.Context, req SellerRegistration) (*models.Seller, error)
	LoginSeller(ctx context.Context, req SellerLogin) (*AuthResult, error)
	UpdateSellerLogo(ctx context.Context, p models.Principal, logo *Upload) (*models.Seller, error)
	Profile(ctx context.Context, p models.Principal) (*Profile, error)
}

type CatalogServiceInterface interface {
	ListDishes(ctx context.Context, filter CatalogFilter) ([]models.Dish, error)
	GetDish(ctx context.Context, id string) (*models.Dish, error)
	AddDish(ctx context.Context, p models.Principal, req DishRequest, image *Upload) (*models.Dish, error)
	SellerDishes(ctx context.Context, p models.Principal) ([]models.Dish, error)
	SetAvailability(ctx context.Context, p models.Principal, dishID string, available bool) (*models.Dish, error)
}

type OrderLedgerInterface interface {
	CreateOrder(ctx context.Context, p models.Principal, req OrderRequest) (*models.Order, error)
	TransitionStatus(ctx context.Context, p models.Principal, orderID, target string) (*models.Order, error)
	ListOrders(ctx context.Context, p models.Principal) ([]models.Order, error)
	GetOrder(ctx context.Context, p models.Principal, orderID string) (*models.Order, error)
	OrderQRCode(ctx context.Context, p models.Principal, orderID string) ([]byte, error)
}

type ReviewServiceInterface interface {
	SubmitReview(ctx context.Context, p models.Principal, req ReviewRequest) (*models.Review, error)
	ListSellerReviews(ctx context.Context, sellerID string) ([]models.Review, error)
}

type RecommenderInterface interface {
	Assemble(ctx context.Context, p models.Principal, cart []models.CartItem) []models.SuggestionGroup
}

type StatsServiceInterface interface {
	SellerStats(ctx context.Context, p models.Principal) (*models.SellerStats, error)
}

type ChatAssistantInterface interface {
	Reply(ctx context.Context, message string) (string, error)
}

var (
	_ IdentityServiceInterface = (*IdentityService)(nil)
	_ CatalogServiceInterface  = (*CatalogService)(nil)
	_ OrderLedgerInterface     = (*OrderLedger)(nil)
	_ ReviewServiceInterface   = (*ReviewService)(nil)
	_ RecommenderInterface     = (*Recommender)(nil)
	_ StatsServiceInterface    = (*StatsService)(nil)
	_ ChatAssistantInterface   = (*ChatAssistant)(nil)
)
