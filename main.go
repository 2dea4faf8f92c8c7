package main

import (
	"context"
	"log"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/gorilla/mux"
	"github.com/joho/godotenv"
	"github.com/stripe/stripe-go/v76"

	"github.com/aburayhan-bpi/assetwise-server/config"
	"github.com/aburayhan-bpi/assetwise-server/database"
	"github.com/aburayhan-bpi/assetwise-server/handlers"
	"github.com/aburayhan-bpi/assetwise-server/inventory"
	"github.com/aburayhan-bpi/assetwise-server/metrics"
	"github.com/aburayhan-bpi/assetwise-server/middleware"
	"github.com/aburayhan-bpi/assetwise-server/routes"
	"github.com/aburayhan-bpi/assetwise-server/storage"
	"github.com/aburayhan-bpi/assetwise-server/websocket"
)

func main() {
	// Load environment variables
	if err := godotenv.Load(); err != nil {
		log.Println("No .env file found or error loading it")
	}

	config.LoadConfig()
	metrics.InitMetrics("assetwise")
	stripe.Key = config.StripeKey

	// Database connection
	client, err := database.Connect()
	if err != nil {
		log.Fatalf("Failed to connect to database: %v", err)
	}

	store := storage.New(client.Database(config.DBName))
	inv := inventory.NewService(store)
	hub := websocket.NewHub()
	h := handlers.New(store, inv, hub)

	// Router setup
	router := mux.NewRouter()
	routes.RegisterRoutes(router, h)

	// Global middlewares (order matters!)
	router.Use(middleware.LoggingMiddleware)
	router.Use(middleware.RecoveryMiddleware)
	router.Use(middleware.CORSMiddleware)
	router.Use(middleware.MetricsMiddleware)

	// HTTP server configuration
	srv := &http.Server{
		Addr:         ":" + config.Port,
		Handler:      router,
		ReadTimeout:  10 * time.Second,
		WriteTimeout: 15 * time.Second,
		IdleTimeout:  60 * time.Second,
	}

	// Start server in goroutine
	go func() {
		log.Printf("AssetWise is running on port %s", config.Port)

		if err := srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			log.Fatalf("HTTP server failed: %v", err)
		}
	}()

	// Graceful shutdown
	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM, syscall.SIGHUP)

	<-quit
	log.Println("Shutting down server...")

	ctx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
	defer cancel()

	if err := srv.Shutdown(ctx); err != nil {
		log.Printf("Server forced shutdown: %v", err)
	}

	database.Disconnect(client)
	log.Println("Server stopped gracefully")
}
