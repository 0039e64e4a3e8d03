package controller

import (
	"net/http"

	"github.com/02priyeshraj/HomePlate_Backend/helper"
	middleware "github.com/02priyeshraj/HomePlate_Backend/middlewares"
	"github.com/02priyeshraj/HomePlate_Backend/models"
	"github.com/02priyeshraj/HomePlate_Backend/services"
)

// AssistantController serves the recommendation and chat endpoints.
type AssistantController struct {
	Recommender services.RecommenderInterface
	Assistant   services.ChatAssistantInterface
}

type recommendationRequest struct {
	CartItems []models.CartItem `json:"cart_items"`
}

// GetRecommendations always answers 200; an empty list means nothing could
// be suggested.
func (c *AssistantController) GetRecommendations(w http.ResponseWriter, r *http.Request) {
	var req recommendationRequest
	if !decodeJSON(w, r, &req) {
		return
	}

	ctx, cancel := requestContext(r)
	defer cancel()

	groups := c.Recommender.Assemble(ctx, middleware.PrincipalFromContext(r.Context()), req.CartItems)
	helper.WriteJSON(w, http.StatusOK, "Recommendations retrieved successfully", groups)
}

type chatRequest struct {
	Message string `json:"message"`
}

type chatReply struct {
	Reply string `json:"reply"`
}

// Chat runs without requestTimeout so long model replies are not cut off.
// The request context still cancels the call when the client goes away.
func (c *AssistantController) Chat(w http.ResponseWriter, r *http.Request) {
	var req chatRequest
	if !decodeJSON(w, r, &req) {
		return
	}

	reply, err := c.Assistant.Reply(r.Context(), req.Message)
	if err != nil {
		writeServiceError(w, r, err, "Failed to get response from AI assistant.")
		return
	}
	helper.WriteJSON(w, http.StatusOK, "Reply generated", chatReply{Reply: reply})
}
