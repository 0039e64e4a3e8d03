package routes

import (
	"net/http"

	"github.com/gorilla/mux"

	controller "github.com/02priyeshraj/HomePlate_Backend/controllers"
	middleware "github.com/02priyeshraj/HomePlate_Backend/middlewares"
)

type Controllers struct {
	Users     *controller.UserController
	Dishes    *controller.DishController
	Orders    *controller.OrderController
	Reviews   *controller.ReviewController
	Assistant *controller.AssistantController
	Stats     *controller.StatsController
	Health    *controller.HealthController
}

// NewRouter mounts the public and bearer-protected API under /api and serves
// uploaded images from uploadDir under /uploads/.
func NewRouter(c Controllers, tokens middleware.TokenValidator, uploadDir string) *mux.Router {
	router := mux.NewRouter()

	api := router.PathPrefix("/api").Subrouter()
	api.HandleFunc("/health", c.Health.Health).Methods(http.MethodGet)
	UserPublicRoutes(api, c.Users)
	DishPublicRoutes(api, c.Dishes)
	ReviewPublicRoutes(api, c.Reviews)

	secured := router.PathPrefix("/api").Subrouter()
	secured.Use(middleware.Authentication(tokens))
	UserProtectedRoutes(secured, c.Users)
	DishProtectedRoutes(secured, c.Dishes)
	OrderProtectedRoutes(secured, c.Orders)
	ReviewProtectedRoutes(secured, c.Reviews)
	AssistantProtectedRoutes(secured, c.Assistant)
	secured.HandleFunc("/seller/stats", c.Stats.GetSellerStats).Methods(http.MethodGet)

	router.PathPrefix("/uploads/").Handler(http.StripPrefix("/uploads/", http.FileServer(http.Dir(uploadDir))))
	return router
}
