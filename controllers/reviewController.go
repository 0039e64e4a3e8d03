package controller

import (
	"net/http"

	"github.com/gorilla/mux"

	"github.com/02priyeshraj/HomePlate_Backend/helper"
	middleware "github.com/02priyeshraj/HomePlate_Backend/middlewares"
	"github.com/02priyeshraj/HomePlate_Backend/models"
	"github.com/02priyeshraj/HomePlate_Backend/services"
)

type ReviewController struct {
	Reviews services.ReviewServiceInterface
}

func (c *ReviewController) CreateReview(w http.ResponseWriter, r *http.Request) {
	var req services.ReviewRequest
	if !decodeJSON(w, r, &req) {
		return
	}

	ctx, cancel := requestContext(r)
	defer cancel()

	review, err := c.Reviews.SubmitReview(ctx, middleware.PrincipalFromContext(r.Context()), req)
	if err != nil {
		writeServiceError(w, r, err, "Error submitting review")
		return
	}
	helper.WriteJSON(w, http.StatusCreated, "Review submitted successfully", review)
}

func (c *ReviewController) GetSellerReviews(w http.ResponseWriter, r *http.Request) {
	ctx, cancel := requestContext(r)
	defer cancel()

	reviews, err := c.Reviews.ListSellerReviews(ctx, mux.Vars(r)["sellerId"])
	if err != nil {
		writeServiceError(w, r, err, "Error retrieving reviews")
		return
	}
	if reviews == nil {
		reviews = []models.Review{}
	}
	helper.WriteJSON(w, http.StatusOK, "Reviews retrieved successfully", reviews)
}
