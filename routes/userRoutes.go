package routes

import (
	"net/http"

	"github.com/gorilla/mux"

	controller "github.com/02priyeshraj/HomePlate_Backend/controllers"
)

func UserPublicRoutes(router *mux.Router, c *controller.UserController) {
	router.HandleFunc("/customer/register", c.RegisterCustomer).Methods(http.MethodPost)
	router.HandleFunc("/customer/login", c.LoginCustomer).Methods(http.MethodPost)
	router.HandleFunc("/seller/register", c.RegisterSeller).Methods(http.MethodPost)
	router.HandleFunc("/seller/login", c.LoginSeller).Methods(http.MethodPost)
}

func UserProtectedRoutes(router *mux.Router, c *controller.UserController) {
	router.HandleFunc("/me", c.Me).Methods(http.MethodGet)
	router.HandleFunc("/seller/logo", c.UpdateLogo).Methods(http.MethodPatch)
}
