package routes

import (
	"net/http"

	"github.com/gorilla/mux"

	controller "github.com/02priyeshraj/HomePlate_Backend/controllers"
)

func OrderProtectedRoutes(router *mux.Router, c *controller.OrderController) {
	router.HandleFunc("/orders", c.CreateOrder).Methods(http.MethodPost)
	router.HandleFunc("/customer/orders", c.GetCustomerOrders).Methods(http.MethodGet)
	router.HandleFunc("/seller/orders", c.GetSellerOrders).Methods(http.MethodGet)

	router.HandleFunc("/orders/{orderId}", c.GetOrderById).Methods(http.MethodGet)
	router.HandleFunc("/orders/{orderId}/status", c.UpdateOrderStatus).Methods(http.MethodPatch)
	router.HandleFunc("/orders/{orderId}/qrcode", c.GetOrderQRCode).Methods(http.MethodGet)
}
