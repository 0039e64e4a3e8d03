package routes

import (
	"net/http"

	"github.com/gorilla/mux"

	controller "github.com/02priyeshraj/HomePlate_Backend/controllers"
)

func DishPublicRoutes(router *mux.Router, c *controller.DishController) {
	router.HandleFunc("/dishes", c.GetDishes).Methods(http.MethodGet)
	router.HandleFunc("/dishes/{dishId}", c.GetDish).Methods(http.MethodGet)
}

func DishProtectedRoutes(router *mux.Router, c *controller.DishController) {
	router.HandleFunc("/dishes", c.CreateDish).Methods(http.MethodPost)
	router.HandleFunc("/dishes/{dishId}/availability", c.UpdateAvailability).Methods(http.MethodPatch)
	router.HandleFunc("/seller/dishes", c.GetSellerDishes).Methods(http.MethodGet)
}
