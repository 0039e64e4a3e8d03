package services

import (
	"context"
	"errors"
	"fmt"
	"math"
	"strings"
	"time"

	"go.mongodb.org/mongo-driver/bson/primitive"

	"github.com/02priyeshraj/HomePlate_Backend/models"
	"github.com/02priyeshraj/HomePlate_Backend/store"
)

type OrderRequest struct {
	SellerID            string            `json:"seller_id" validate:"required"`
	Items               []models.LineItem `json:"items" validate:"required,min=1,dive"`
	TotalAmount         float64           `json:"total_amount" validate:"gte=0,finite"`
	DeliveryAddress     string            `json:"delivery_address" validate:"required,max=300"`
	PaymentMethod       string            `json:"payment_method" validate:"oneof=cod online"`
	SpecialInstructions string            `json:"special_instructions" validate:"max=500"`
}

// SellerFinder resolves a seller by id.
type SellerFinder interface {
	FindSellerByID(ctx context.Context, id string) (*models.Seller, error)
}

// OrderLedger owns the order lifecycle. Status moves follow
// models.CanTransition and are written as a compare-and-set on the
// current status.
type OrderLedger struct {
	orders  OrderRepository
	sellers SellerFinder
	qr      QRGenerator
}

func NewOrderLedger(orders OrderRepository, sellers SellerFinder, qr QRGenerator) *OrderLedger {
	return &OrderLedger{orders: orders, sellers: sellers, qr: qr}
}

func (l *OrderLedger) CreateOrder(ctx context.Context, p models.Principal, req OrderRequest) (*models.Order, error) {
	if !p.IsCustomer() {
		return nil, fmt.Errorf("%w: only customers can place orders", ErrForbidden)
	}

	req.SellerID = strings.TrimSpace(req.SellerID)
	req.DeliveryAddress = strings.TrimSpace(req.DeliveryAddress)
	req.PaymentMethod = strings.ToLower(strings.TrimSpace(req.PaymentMethod))
	if req.PaymentMethod == "" {
		req.PaymentMethod = models.PaymentCOD
	}
	if err := validateStruct(req); err != nil {
		return nil, err
	}

	// Orders are keyed by the canonical lowercase hex so they match the
	// seller's token id.
	sellerID, err := primitive.ObjectIDFromHex(req.SellerID)
	if err != nil {
		return nil, fmt.Errorf("%w: seller_id is not a valid id", ErrValidation)
	}

	total := roundCents(models.ItemsTotal(req.Items))
	if math.IsInf(total, 0) || math.IsNaN(total) {
		return nil, fmt.Errorf("%w: order total is out of range", ErrValidation)
	}
	if req.TotalAmount != 0 && math.Abs(req.TotalAmount-total) > 0.01 {
		return nil, fmt.Errorf("%w: total_amount %.2f does not match line items %.2f", ErrValidation, req.TotalAmount, total)
	}

	seller, err := l.sellers.FindSellerByID(ctx, sellerID.Hex())
	if errors.Is(err, store.ErrNotFound) {
		return nil, fmt.Errorf("%w: seller not found", ErrNotFound)
	} else if err != nil {
		return nil, fmt.Errorf("find seller: %w", err)
	}

	order := &models.Order{
		CustomerID:          p.ID,
		SellerID:            seller.ID.Hex(),
		Items:               append([]models.LineItem(nil), req.Items...),
		TotalAmount:         total,
		DeliveryAddress:     req.DeliveryAddress,
		PaymentMethod:       req.PaymentMethod,
		Status:              models.StatusNew,
		SpecialInstructions: strings.TrimSpace(req.SpecialInstructions),
		Created_at:          time.Now().UTC(),
	}
	if err := l.orders.InsertOrder(ctx, order); err != nil {
		return nil, fmt.Errorf("insert order: %w", err)
	}
	return order, nil
}

func (l *OrderLedger) TransitionStatus(ctx context.Context, p models.Principal, orderID, target string) (*models.Order, error) {
	if !p.IsSeller() {
		return nil, fmt.Errorf("%w: only sellers can update order status", ErrForbidden)
	}

	target = strings.TrimSpace(target)
	if !models.IsKnownStatus(target) {
		return nil, fmt.Errorf("%w: unknown order status %q", ErrValidation, target)
	}

	order, err := l.findOrder(ctx, orderID)
	if err != nil {
		return nil, err
	}
	if order.SellerID != p.ID {
		return nil, fmt.Errorf("%w: order belongs to another seller", ErrForbidden)
	}
	if order.Status == target {
		return order, nil
	}
	if !models.CanTransition(order.Status, target) {
		return nil, fmt.Errorf("%w: cannot move order from %s to %s", ErrValidation, order.Status, target)
	}

	updated, err := l.orders.UpdateOrderStatus(ctx, orderID, p.ID, order.Status, target)
	if err != nil {
		return nil, fmt.Errorf("update order status: %w", err)
	}
	if !updated {
		return nil, fmt.Errorf("%w: order status changed concurrently", ErrConflict)
	}

	order.Status = target
	return order, nil
}

func (l *OrderLedger) ListOrders(ctx context.Context, p models.Principal) ([]models.Order, error) {
	var (
		orders []models.Order
		err    error
	)
	switch {
	case p.IsCustomer():
		orders, err = l.orders.ListCustomerOrders(ctx, p.ID, 0)
	case p.IsSeller():
		orders, err = l.orders.ListSellerOrders(ctx, p.ID)
	default:
		return nil, ErrForbidden
	}
	if err != nil {
		return nil, fmt.Errorf("list orders: %w", err)
	}
	return orders, nil
}

// GetOrder returns the order when the caller is its customer or its seller.
func (l *OrderLedger) GetOrder(ctx context.Context, p models.Principal, orderID string) (*models.Order, error) {
	order, err := l.findOrder(ctx, orderID)
	if err != nil {
		return nil, err
	}

	switch {
	case p.IsCustomer() && order.CustomerID == p.ID:
	case p.IsSeller() && order.SellerID == p.ID:
	default:
		return nil, fmt.Errorf("%w: order belongs to another account", ErrForbidden)
	}
	return order, nil
}

// OrderQRCode renders a PNG pointing at the review page for the order.
func (l *OrderLedger) OrderQRCode(ctx context.Context, p models.Principal, orderID string) ([]byte, error) {
	order, err := l.GetOrder(ctx, p, orderID)
	if err != nil {
		return nil, err
	}

	png, err := l.qr.Generate(order.ID.Hex())
	if err != nil {
		return nil, fmt.Errorf("generate qr code: %w", err)
	}
	return png, nil
}

func (l *OrderLedger) findOrder(ctx context.Context, orderID string) (*models.Order, error) {
	order, err := l.orders.FindOrderByID(ctx, orderID)
	if errors.Is(err, store.ErrNotFound) {
		return nil, fmt.Errorf("%w: order not found", ErrNotFound)
	} else if err != nil {
		return nil, fmt.Errorf("find order: %w", err)
	}
	return order, nil
}

func roundCents(v float64) float64 {
	return math.Round(v*100) / 100
}
