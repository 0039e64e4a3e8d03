package controller

import (
	"net/http"
	"strconv"

	"github.com/gorilla/mux"

	"github.com/02priyeshraj/HomePlate_Backend/helper"
	middleware "github.com/02priyeshraj/HomePlate_Backend/middlewares"
	"github.com/02priyeshraj/HomePlate_Backend/models"
	"github.com/02priyeshraj/HomePlate_Backend/services"
)

type OrderController struct {
	Orders services.OrderLedgerInterface
}

func (c *OrderController) CreateOrder(w http.ResponseWriter, r *http.Request) {
	var req services.OrderRequest
	if !decodeJSON(w, r, &req) {
		return
	}

	ctx, cancel := requestContext(r)
	defer cancel()

	order, err := c.Orders.CreateOrder(ctx, middleware.PrincipalFromContext(r.Context()), req)
	if err != nil {
		writeServiceError(w, r, err, "Error creating order")
		return
	}
	helper.WriteJSON(w, http.StatusCreated, "Order placed successfully", order)
}

func (c *OrderController) GetCustomerOrders(w http.ResponseWriter, r *http.Request) {
	if !middleware.PrincipalFromContext(r.Context()).IsCustomer() {
		helper.WriteError(w, http.StatusForbidden, "Access denied")
		return
	}
	c.listOrders(w, r)
}

func (c *OrderController) GetSellerOrders(w http.ResponseWriter, r *http.Request) {
	if !middleware.PrincipalFromContext(r.Context()).IsSeller() {
		helper.WriteError(w, http.StatusForbidden, "Access denied")
		return
	}
	c.listOrders(w, r)
}

// listOrders lists the caller's side of the ledger, newest first.
func (c *OrderController) listOrders(w http.ResponseWriter, r *http.Request) {
	ctx, cancel := requestContext(r)
	defer cancel()

	orders, err := c.Orders.ListOrders(ctx, middleware.PrincipalFromContext(r.Context()))
	if err != nil {
		writeServiceError(w, r, err, "Error retrieving orders")
		return
	}
	if orders == nil {
		orders = []models.Order{}
	}
	helper.WriteJSON(w, http.StatusOK, "Orders retrieved successfully", orders)
}

func (c *OrderController) GetOrderById(w http.ResponseWriter, r *http.Request) {
	ctx, cancel := requestContext(r)
	defer cancel()

	order, err := c.Orders.GetOrder(ctx, middleware.PrincipalFromContext(r.Context()), mux.Vars(r)["orderId"])
	if err != nil {
		writeServiceError(w, r, err, "Error retrieving order")
		return
	}
	helper.WriteJSON(w, http.StatusOK, "Order retrieved successfully", order)
}

type statusRequest struct {
	Status string `json:"status"`
}

func (c *OrderController) UpdateOrderStatus(w http.ResponseWriter, r *http.Request) {
	var req statusRequest
	if !decodeJSON(w, r, &req) {
		return
	}

	ctx, cancel := requestContext(r)
	defer cancel()

	order, err := c.Orders.TransitionStatus(ctx, middleware.PrincipalFromContext(r.Context()), mux.Vars(r)["orderId"], req.Status)
	if err != nil {
		writeServiceError(w, r, err, "Error updating order status")
		return
	}
	helper.WriteJSON(w, http.StatusOK, "Order status updated", order)
}

// GetOrderQRCode returns a PNG linking to the review page of the order.
func (c *OrderController) GetOrderQRCode(w http.ResponseWriter, r *http.Request) {
	ctx, cancel := requestContext(r)
	defer cancel()

	png, err := c.Orders.OrderQRCode(ctx, middleware.PrincipalFromContext(r.Context()), mux.Vars(r)["orderId"])
	if err != nil {
		writeServiceError(w, r, err, "Error generating QR code")
		return
	}

	w.Header().Set("Content-Type", "image/png")
	w.Header().Set("Content-Length", strconv.Itoa(len(png)))
	w.WriteHeader(http.StatusOK)
	w.Write(png)
}
