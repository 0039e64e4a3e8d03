package routes

import (
	"net/http"

	"github.com/gorilla/mux"

	controller "github.com/02priyeshraj/HomePlate_Backend/controllers"
)

func ReviewPublicRoutes(router *mux.Router, c *controller.ReviewController) {
	router.HandleFunc("/seller/{sellerId}/reviews", c.GetSellerReviews).Methods(http.MethodGet)
}

func ReviewProtectedRoutes(router *mux.Router, c *controller.ReviewController) {
	router.HandleFunc("/reviews", c.CreateReview).Methods(http.MethodPost)
}

func AssistantProtectedRoutes(router *mux.Router, c *controller.AssistantController) {
	router.HandleFunc("/recommendations", c.GetRecommendations).Methods(http.MethodPost)
	router.HandleFunc("/chatbot", c.Chat).Methods(http.MethodPost)
}
