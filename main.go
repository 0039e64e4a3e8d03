package main

import (
	"context"
	"errors"
	"log/slog"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/rs/cors"
	"go.mongodb.org/mongo-driver/mongo/readpref"

	"github.com/02priyeshraj/HomePlate_Backend/config"
	controller "github.com/02priyeshraj/HomePlate_Backend/controllers"
	"github.com/02priyeshraj/HomePlate_Backend/helper"
	middleware "github.com/02priyeshraj/HomePlate_Backend/middlewares"
	"github.com/02priyeshraj/HomePlate_Backend/routes"
	"github.com/02priyeshraj/HomePlate_Backend/services"
	"github.com/02priyeshraj/HomePlate_Backend/store"
)

func main() {
	logger := slog.New(slog.NewTextHandler(os.Stdout, nil))
	slog.SetDefault(logger)

	cfg := config.LoadConfig()

	client, err := config.DBinstance(context.Background(), cfg.MongoURI)
	if err != nil {
		slog.Error("Failed to connect to database", "error", err)
		os.Exit(1)
	}
	defer func() {
		ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
		defer cancel()
		if err := client.Disconnect(ctx); err != nil {
			slog.Error("Failed to disconnect from database", "error", err)
		}
	}()

	db := config.OpenDatabase(client, cfg.DBName)
	if err := store.EnsureIndexes(context.Background(), db); err != nil {
		slog.Error("Failed to create indexes", "error", err)
		os.Exit(1)
	}

	if err := os.MkdirAll(cfg.UploadDir, 0o755); err != nil {
		slog.Error("Failed to create upload directory", "dir", cfg.UploadDir, "error", err)
		os.Exit(1)
	}

	customers := store.NewCustomerStore(db)
	sellers := store.NewSellerStore(db)
	dishes := store.NewDishStore(db)
	orders := store.NewOrderStore(db)
	reviews := store.NewReviewStore(db)

	tokens := helper.NewTokenMaker(cfg.JWTSecret, cfg.TokenTTL)
	images := helper.ImageStore{Dir: cfg.UploadDir, BaseURL: cfg.PublicBaseURL}

	var completer services.Completer
	if cfg.OpenAIKey != "" {
		llm, err := services.NewOpenAICompleter(cfg.OpenAIKey, cfg.OpenAIModel)
		if err != nil {
			slog.Error("Failed to create chat model", "error", err)
			os.Exit(1)
		}
		completer = llm
	} else {
		slog.Warn("OPENAI_API_KEY is not set, chatbot is disabled")
	}

	router := routes.NewRouter(routes.Controllers{
		Users: &controller.UserController{
			Identity: services.NewIdentityService(customers, sellers, tokens, helper.PasswordHasher{Cost: cfg.BcryptCost}, images),
		},
		Dishes: &controller.DishController{Catalog: services.NewCatalogService(dishes, images)},
		Orders: &controller.OrderController{
			Orders: services.NewOrderLedger(orders, sellers, services.ReviewLinkQR{BaseURL: cfg.ClientBaseURL}),
		},
		Reviews: &controller.ReviewController{Reviews: services.NewReviewService(reviews, orders)},
		Assistant: &controller.AssistantController{
			Recommender: services.NewRecommender(dishes, orders, logger),
			Assistant:   services.NewChatAssistant(completer),
		},
		Stats: &controller.StatsController{Stats: services.NewStatsService(orders, dishes, reviews)},
		Health: &controller.HealthController{
			Ping: func(ctx context.Context) error { return client.Ping(ctx, readpref.Primary()) },
		},
	}, tokens, cfg.UploadDir)

	corsHandler := cors.New(cors.Options{
		AllowedOrigins:   cfg.CORSOrigins,
		AllowedMethods:   []string{http.MethodGet, http.MethodPost, http.MethodPatch, http.MethodOptions},
		AllowedHeaders:   []string{"Authorization", "Content-Type"},
		AllowCredentials: true,
	})

	server := &http.Server{
		Addr:              ":" + cfg.Port,
		Handler:           middleware.Logging(logger)(corsHandler.Handler(router)),
		ReadHeaderTimeout: 10 * time.Second,
	}

	stop := make(chan os.Signal, 1)
	signal.Notify(stop, syscall.SIGINT, syscall.SIGTERM)

	go func() {
		slog.Info("Server starting", "port", cfg.Port, "api", cfg.PublicBaseURL+"/api")
		if err := server.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			slog.Error("Server failed to listen and serve", "error", err)
			os.Exit(1)
		}
	}()

	<-stop
	slog.Info("Shutting down server gracefully...")

	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()
	if err := server.Shutdown(ctx); err != nil {
		slog.Error("Server shutdown failed", "error", err)
	}
	slog.Info("Server exited gracefully.")
}
