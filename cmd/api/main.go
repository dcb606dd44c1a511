package main

import (
	"context"
	"log"
	"time"

	"storefront-tracker/internal/core/cache"
	"storefront-tracker/internal/core/config"
	"storefront-tracker/internal/core/logger"
	"storefront-tracker/internal/core/server"
	"storefront-tracker/internal/core/storefront"
	cartadapter "storefront-tracker/internal/features/cart/adapters"
	carthandler "storefront-tracker/internal/features/cart/handler"
	cartservice "storefront-tracker/internal/features/cart/service"
	identityadapter "storefront-tracker/internal/features/identity/adapters"
	identityhandler "storefront-tracker/internal/features/identity/handler"
	identityservice "storefront-tracker/internal/features/identity/service"
	orderadapter "storefront-tracker/internal/features/orders/adapters"
	orderhandler "storefront-tracker/internal/features/orders/handler"
	orderservice "storefront-tracker/internal/features/orders/service"
	trackingadapter "storefront-tracker/internal/features/tracking/adapters"
	trackinghandler "storefront-tracker/internal/features/tracking/handler"
	trackingservice "storefront-tracker/internal/features/tracking/service"
	wishlistadapter "storefront-tracker/internal/features/wishlist/adapters"
	wishlisthandler "storefront-tracker/internal/features/wishlist/handler"
	wishlistservice "storefront-tracker/internal/features/wishlist/service"

	"go.uber.org/zap"
)

// @title Storefront Tracker API
// @version 1.0
// @description Aggregates storefront orders with shipment tracking histories and derived progress state.
// @contact.name API Support
// @contact.email support@storefront-tracker.dev
// @license.name MIT
// @host localhost:8080
// @BasePath /
func main() {
	cfg, err := config.Load(".")
	if err != nil {
		log.Fatalf("Failed to load config: %v", err)
	}

	if err := logger.Init(cfg.Environment, cfg.LogLevel); err != nil {
		log.Fatalf("Failed to init logger: %v", err)
	}
	defer logger.Sync()

	l := logger.Get()
	l.Info("Application starting",
		zap.String("environment", cfg.Environment),
		zap.String("log_level", cfg.LogLevel),
	)

	// Shared REST client for the storefront backend
	client := storefront.NewClient(cfg.Storefront)

	// Initialize Order Adapter and run Health Check
	ordersAdapter := orderadapter.NewStorefrontAdapter(client)
	healthCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	if err := ordersAdapter.HealthCheck(healthCtx); err != nil {
		cancel()
		l.Fatal("Storefront Health Check Failed", zap.Error(err))
	}
	cancel()
	l.Info("Storefront connection verified")

	// Initialize Redis cache
	redisCache, err := cache.NewRedisAdapter(cfg.Redis.URL)
	if err != nil {
		l.Fatal("Failed to create Redis adapter", zap.Error(err))
	}
	defer redisCache.Close()

	if err := redisCache.Ping(context.Background()); err != nil {
		l.Fatal("Redis Health Check Failed", zap.Error(err))
	}
	l.Info("Redis connection verified")

	// Initialize Order Service & Handler
	orderSvc := orderservice.NewOrderService(ordersAdapter)
	orderHdl := orderhandler.NewOrderHandler(orderSvc)

	// Initialize Tracking Service & Handler
	trackingAdapter := trackingadapter.NewStorefrontAdapter(client)
	trackingSvc := trackingservice.NewTrackingService(trackingAdapter, ordersAdapter, redisCache, cfg.Tracking)
	trackingHdl := trackinghandler.NewTrackingHandler(trackingSvc)

	// Initialize Cart Service & Handler
	cartSvc := cartservice.NewCartService(cartadapter.NewStorefrontAdapter(client))
	cartHdl := carthandler.NewCartHandler(cartSvc)

	// Initialize Wishlist Service & Handler
	wishlistSvc := wishlistservice.NewWishlistService(wishlistadapter.NewStorefrontAdapter(client))
	wishlistHdl := wishlisthandler.NewWishlistHandler(wishlistSvc)

	// Initialize Session Service & Handler
	sessionTTL := time.Duration(cfg.Session.TTLSeconds) * time.Second
	sessionRepo := identityadapter.NewRedisSessionRepository(redisCache, sessionTTL)
	sessionSvc := identityservice.NewSessionService(sessionRepo)
	sessionHdl := identityhandler.NewSessionHandler(sessionSvc)

	srv := server.New(cfg)

	// Register Routes
	srv.App.Get("/tracking/board", trackingHdl.GetBoard)
	srv.App.Get("/tracking/my/:userId", trackingHdl.GetMyOrders)
	srv.App.Post("/tracking/updates", trackingHdl.AddUpdate)

	srv.App.Get("/orders", orderHdl.ListOrders)
	srv.App.Post("/orders", orderHdl.CreateOrder)
	srv.App.Get("/orders/user/:userId", orderHdl.GetUserOrders)
	srv.App.Get("/orders/:id", orderHdl.GetOrder)

	srv.App.Get("/cart/:userId", cartHdl.GetCart)
	srv.App.Post("/cart/items", cartHdl.AddItem)
	srv.App.Patch("/cart/items/:id", cartHdl.UpdateItem)
	srv.App.Delete("/cart/items/:id", cartHdl.RemoveItem)

	srv.App.Get("/wishlist/:userId", wishlistHdl.GetWishlist)
	srv.App.Post("/wishlist/items", wishlistHdl.AddItem)
	srv.App.Delete("/wishlist/items/:id", wishlistHdl.RemoveItem)

	srv.App.Post("/session", sessionHdl.OpenSession)
	srv.App.Get("/session/:id", sessionHdl.GetSession)
	srv.App.Delete("/session/:id", sessionHdl.CloseSession)

	if err := srv.Run(); err != nil {
		l.Fatal("Server failed to start", zap.Error(err))
	}
}
