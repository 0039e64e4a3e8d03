package services

import (
	"context"
	"errors"
	"math"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
	"go.mongodb.org/mongo-driver/bson/primitive"

	"github.com/02priyeshraj/HomePlate_Backend/mocks"
	"github.com/02priyeshraj/HomePlate_Backend/models"
	"github.com/02priyeshraj/HomePlate_Backend/store"
)

var (
	customerAsha = models.Principal{ID: "c1", Type: models.PrincipalCustomer, Name: "Asha"}
	customerRavi = models.Principal{ID: "c2", Type: models.PrincipalCustomer, Name: "Ravi"}
	sellerSpice  = models.Principal{ID: "s1", Type: models.PrincipalSeller, Name: "Spice Route"}
	sellerOther  = models.Principal{ID: "s2", Type: models.PrincipalSeller, Name: "Other Kitchen"}

	spiceSellerID = primitive.NewObjectID()
)

func spiceSellers(t *testing.T) *mocks.SellerRepository {
	sellers := mocks.NewSellerRepository(t)
	sellers.On("FindSellerByID", mock.Anything, spiceSellerID.Hex()).
		Return(&models.Seller{ID: spiceSellerID, BusinessName: "Spice Route"}, nil).Once()
	return sellers
}

func paneerOrderRequest() OrderRequest {
	return OrderRequest{
		SellerID:        spiceSellerID.Hex(),
		Items:           []models.LineItem{{DishID: "d1", Name: "Paneer Tikka", Price: 200, Quantity: 2}},
		TotalAmount:     400,
		DeliveryAddress: "12 MG Road",
		PaymentMethod:   "cod",
	}
}

func TestOrderLedger_CreateOrder(t *testing.T) {
	ctx := context.Background()

	t.Run("customer_places_order", func(t *testing.T) {
		orders := mocks.NewOrderRepository(t)
		ledger := NewOrderLedger(orders, spiceSellers(t), nil)
		orders.On("InsertOrder", mock.Anything, mock.AnythingOfType("*models.Order")).Return(nil).Once()

		order, err := ledger.CreateOrder(ctx, customerAsha, paneerOrderRequest())
		require.NoError(t, err)
		assert.Equal(t, models.StatusNew, order.Status)
		assert.Equal(t, 400.0, order.TotalAmount)
		assert.Equal(t, "c1", order.CustomerID)
		assert.Equal(t, spiceSellerID.Hex(), order.SellerID)
		assert.Len(t, order.Items, 1)
	})

	t.Run("payment_method_defaults_to_cod", func(t *testing.T) {
		orders := mocks.NewOrderRepository(t)
		ledger := NewOrderLedger(orders, spiceSellers(t), nil)
		orders.On("InsertOrder", mock.Anything, mock.AnythingOfType("*models.Order")).Return(nil).Once()

		req := paneerOrderRequest()
		req.PaymentMethod = ""
		req.TotalAmount = 0
		order, err := ledger.CreateOrder(ctx, customerAsha, req)
		require.NoError(t, err)
		assert.Equal(t, models.PaymentCOD, order.PaymentMethod)
		assert.Equal(t, 400.0, order.TotalAmount)
	})

	t.Run("seller_id_is_stored_lowercase", func(t *testing.T) {
		orders := mocks.NewOrderRepository(t)
		ledger := NewOrderLedger(orders, spiceSellers(t), nil)
		orders.On("InsertOrder", mock.Anything, mock.MatchedBy(func(o *models.Order) bool {
			return o.SellerID == spiceSellerID.Hex()
		})).Return(nil).Once()

		req := paneerOrderRequest()
		req.SellerID = " " + strings.ToUpper(spiceSellerID.Hex()) + " "
		order, err := ledger.CreateOrder(ctx, customerAsha, req)
		require.NoError(t, err)

		// The seller's token carries the lowercase hex, so it can move the order.
		order.ID = primitive.NewObjectID()
		order.Status = models.StatusNew
		orders.On("FindOrderByID", mock.Anything, order.ID.Hex()).Return(order, nil).Once()
		orders.On("UpdateOrderStatus", mock.Anything, order.ID.Hex(), spiceSellerID.Hex(), models.StatusNew, models.StatusPreparing).Return(true, nil).Once()

		seller := models.Principal{ID: spiceSellerID.Hex(), Type: models.PrincipalSeller}
		moved, err := ledger.TransitionStatus(ctx, seller, order.ID.Hex(), models.StatusPreparing)
		require.NoError(t, err)
		assert.Equal(t, models.StatusPreparing, moved.Status)
	})

	t.Run("unknown_seller", func(t *testing.T) {
		sellers := mocks.NewSellerRepository(t)
		sellers.On("FindSellerByID", mock.Anything, spiceSellerID.Hex()).Return(nil, store.ErrNotFound).Once()
		ledger := NewOrderLedger(mocks.NewOrderRepository(t), sellers, nil)

		order, err := ledger.CreateOrder(ctx, customerAsha, paneerOrderRequest())
		assert.ErrorIs(t, err, ErrNotFound)
		assert.Nil(t, order)
	})

	tests := []struct {
		name        string
		principal   models.Principal
		mutate      func(*OrderRequest)
		expectedErr error
	}{
		{
			name:        "seller_cannot_order",
			principal:   sellerSpice,
			mutate:      func(*OrderRequest) {},
			expectedErr: ErrForbidden,
		},
		{
			name:        "no_items",
			principal:   customerAsha,
			mutate:      func(r *OrderRequest) { r.Items = nil },
			expectedErr: ErrValidation,
		},
		{
			name:        "missing_address",
			principal:   customerAsha,
			mutate:      func(r *OrderRequest) { r.DeliveryAddress = "   " },
			expectedErr: ErrValidation,
		},
		{
			name:        "zero_quantity",
			principal:   customerAsha,
			mutate:      func(r *OrderRequest) { r.Items[0].Quantity = 0 },
			expectedErr: ErrValidation,
		},
		{
			name:        "unknown_payment_method",
			principal:   customerAsha,
			mutate:      func(r *OrderRequest) { r.PaymentMethod = "barter" },
			expectedErr: ErrValidation,
		},
		{
			name:        "total_mismatch",
			principal:   customerAsha,
			mutate:      func(r *OrderRequest) { r.TotalAmount = 350 },
			expectedErr: ErrValidation,
		},
		{
			name:        "malformed_seller_id",
			principal:   customerAsha,
			mutate:      func(r *OrderRequest) { r.SellerID = "s1" },
			expectedErr: ErrValidation,
		},
		{
			name:        "infinite_price",
			principal:   customerAsha,
			mutate:      func(r *OrderRequest) { r.Items[0].Price = math.Inf(1); r.TotalAmount = 0 },
			expectedErr: ErrValidation,
		},
		{
			name:        "total_overflows",
			principal:   customerAsha,
			mutate:      func(r *OrderRequest) { r.Items[0].Price = 1e308; r.Items[0].Quantity = 10; r.TotalAmount = 0 },
			expectedErr: ErrValidation,
		},
	}

	for _, testCase := range tests {
		t.Run(testCase.name, func(t *testing.T) {
			ledger := NewOrderLedger(mocks.NewOrderRepository(t), mocks.NewSellerRepository(t), nil)
			req := paneerOrderRequest()
			testCase.mutate(&req)

			order, err := ledger.CreateOrder(ctx, testCase.principal, req)
			assert.ErrorIs(t, err, testCase.expectedErr)
			assert.Nil(t, order)
		})
	}
}

func TestOrderLedger_TransitionStatus(t *testing.T) {
	ctx := context.Background()
	orderID := primitive.NewObjectID()

	stored := func(status string) *models.Order {
		return &models.Order{ID: orderID, CustomerID: "c1", SellerID: "s1", Status: status, TotalAmount: 400}
	}

	tests := []struct {
		name           string
		principal      models.Principal
		target         string
		prepareMocks   func(orders *mocks.OrderRepository)
		expectedErr    error
		expectedStatus string
	}{
		{
			name:      "new_to_preparing",
			principal: sellerSpice,
			target:    models.StatusPreparing,
			prepareMocks: func(orders *mocks.OrderRepository) {
				orders.On("FindOrderByID", mock.Anything, orderID.Hex()).Return(stored(models.StatusNew), nil).Once()
				orders.On("UpdateOrderStatus", mock.Anything, orderID.Hex(), "s1", models.StatusNew, models.StatusPreparing).Return(true, nil).Once()
			},
			expectedStatus: models.StatusPreparing,
		},
		{
			name:      "preparing_again_is_noop",
			principal: sellerSpice,
			target:    models.StatusPreparing,
			prepareMocks: func(orders *mocks.OrderRepository) {
				orders.On("FindOrderByID", mock.Anything, orderID.Hex()).Return(stored(models.StatusPreparing), nil).Once()
			},
			expectedStatus: models.StatusPreparing,
		},
		{
			name:      "preparing_to_delivered",
			principal: sellerSpice,
			target:    models.StatusDelivered,
			prepareMocks: func(orders *mocks.OrderRepository) {
				orders.On("FindOrderByID", mock.Anything, orderID.Hex()).Return(stored(models.StatusPreparing), nil).Once()
				orders.On("UpdateOrderStatus", mock.Anything, orderID.Hex(), "s1", models.StatusPreparing, models.StatusDelivered).Return(true, nil).Once()
			},
			expectedStatus: models.StatusDelivered,
		},
		{
			name:      "new_to_delivered_skips_a_step",
			principal: sellerSpice,
			target:    models.StatusDelivered,
			prepareMocks: func(orders *mocks.OrderRepository) {
				orders.On("FindOrderByID", mock.Anything, orderID.Hex()).Return(stored(models.StatusNew), nil).Once()
			},
			expectedErr: ErrValidation,
		},
		{
			name:      "no_path_into_cancelled",
			principal: sellerSpice,
			target:    models.StatusCancelled,
			prepareMocks: func(orders *mocks.OrderRepository) {
				orders.On("FindOrderByID", mock.Anything, orderID.Hex()).Return(stored(models.StatusNew), nil).Once()
			},
			expectedErr: ErrValidation,
		},
		{
			name:         "unknown_label",
			principal:    sellerSpice,
			target:       "shipped",
			prepareMocks: func(*mocks.OrderRepository) {},
			expectedErr:  ErrValidation,
		},
		{
			name:      "other_seller",
			principal: sellerOther,
			target:    models.StatusPreparing,
			prepareMocks: func(orders *mocks.OrderRepository) {
				orders.On("FindOrderByID", mock.Anything, orderID.Hex()).Return(stored(models.StatusNew), nil).Once()
			},
			expectedErr: ErrForbidden,
		},
		{
			name:         "customer_cannot_transition",
			principal:    customerAsha,
			target:       models.StatusPreparing,
			prepareMocks: func(*mocks.OrderRepository) {},
			expectedErr:  ErrForbidden,
		},
		{
			name:      "unknown_order",
			principal: sellerSpice,
			target:    models.StatusPreparing,
			prepareMocks: func(orders *mocks.OrderRepository) {
				orders.On("FindOrderByID", mock.Anything, orderID.Hex()).Return(nil, store.ErrNotFound).Once()
			},
			expectedErr: ErrNotFound,
		},
		{
			name:      "lost_race",
			principal: sellerSpice,
			target:    models.StatusPreparing,
			prepareMocks: func(orders *mocks.OrderRepository) {
				orders.On("FindOrderByID", mock.Anything, orderID.Hex()).Return(stored(models.StatusNew), nil).Once()
				orders.On("UpdateOrderStatus", mock.Anything, orderID.Hex(), "s1", models.StatusNew, models.StatusPreparing).Return(false, nil).Once()
			},
			expectedErr: ErrConflict,
		},
	}

	for _, testCase := range tests {
		t.Run(testCase.name, func(t *testing.T) {
			orders := mocks.NewOrderRepository(t)
			testCase.prepareMocks(orders)
			ledger := NewOrderLedger(orders, nil, nil)

			order, err := ledger.TransitionStatus(ctx, testCase.principal, orderID.Hex(), testCase.target)
			if testCase.expectedErr != nil {
				assert.ErrorIs(t, err, testCase.expectedErr)
				assert.Nil(t, order)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, testCase.expectedStatus, order.Status)
		})
	}
}

func TestOrderLedger_StoreFailure(t *testing.T) {
	orders := mocks.NewOrderRepository(t)
	ledger := NewOrderLedger(orders, nil, nil)
	boom := errors.New("connection reset")
	orders.On("FindOrderByID", mock.Anything, "o1").Return(nil, boom).Once()

	_, err := ledger.TransitionStatus(context.Background(), sellerSpice, "o1", models.StatusPreparing)
	assert.ErrorIs(t, err, boom)
	assert.NotErrorIs(t, err, ErrNotFound)
}

func TestOrderLedger_ListOrders(t *testing.T) {
	ctx := context.Background()
	orders := mocks.NewOrderRepository(t)
	ledger := NewOrderLedger(orders, nil, nil)

	mine := []models.Order{{CustomerID: "c1", SellerID: "s1", Status: models.StatusNew}}
	incoming := []models.Order{{CustomerID: "c1", SellerID: "s1", Customer: &models.CustomerSummary{Name: "Asha", Phone: "98450"}}}
	orders.On("ListCustomerOrders", mock.Anything, "c1", int64(0)).Return(mine, nil).Once()
	orders.On("ListSellerOrders", mock.Anything, "s1").Return(incoming, nil).Once()

	got, err := ledger.ListOrders(ctx, customerAsha)
	require.NoError(t, err)
	assert.Equal(t, mine, got)

	got, err = ledger.ListOrders(ctx, sellerSpice)
	require.NoError(t, err)
	require.Len(t, got, 1)
	assert.Equal(t, "Asha", got[0].Customer.Name)

	_, err = ledger.ListOrders(ctx, models.Principal{})
	assert.ErrorIs(t, err, ErrForbidden)
}

func TestOrderLedger_GetOrderVisibility(t *testing.T) {
	ctx := context.Background()
	orderID := primitive.NewObjectID()
	order := &models.Order{ID: orderID, CustomerID: "c1", SellerID: "s1", Status: models.StatusNew}

	tests := []struct {
		name        string
		principal   models.Principal
		expectedErr error
	}{
		{name: "owning_customer", principal: customerAsha},
		{name: "owning_seller", principal: sellerSpice},
		{name: "other_customer", principal: customerRavi, expectedErr: ErrForbidden},
		{name: "other_seller", principal: sellerOther, expectedErr: ErrForbidden},
	}

	for _, testCase := range tests {
		t.Run(testCase.name, func(t *testing.T) {
			orders := mocks.NewOrderRepository(t)
			orders.On("FindOrderByID", mock.Anything, orderID.Hex()).Return(order, nil).Once()
			ledger := NewOrderLedger(orders, nil, nil)

			got, err := ledger.GetOrder(ctx, testCase.principal, orderID.Hex())
			if testCase.expectedErr != nil {
				assert.ErrorIs(t, err, testCase.expectedErr)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, orderID, got.ID)
		})
	}
}

func TestOrderLedger_OrderQRCode(t *testing.T) {
	ctx := context.Background()
	orderID := primitive.NewObjectID()
	order := &models.Order{ID: orderID, CustomerID: "c1", SellerID: "s1"}

	orders := mocks.NewOrderRepository(t)
	qr := mocks.NewQRGenerator(t)
	ledger := NewOrderLedger(orders, nil, qr)

	orders.On("FindOrderByID", mock.Anything, orderID.Hex()).Return(order, nil).Twice()
	qr.On("Generate", orderID.Hex()).Return([]byte("png"), nil).Once()

	png, err := ledger.OrderQRCode(ctx, customerAsha, orderID.Hex())
	require.NoError(t, err)
	assert.Equal(t, []byte("png"), png)

	_, err = ledger.OrderQRCode(ctx, customerRavi, orderID.Hex())
	assert.ErrorIs(t, err, ErrForbidden)
}
