package main

import (
	"context"
	"log"
	"os"
	"time"

	"github.com/joho/godotenv"

	"github.com/bazartoghar/storefront-golang/internal/coupon"
	"github.com/bazartoghar/storefront-golang/internal/database"
	"github.com/bazartoghar/storefront-golang/internal/handlers"
	"github.com/bazartoghar/storefront-golang/internal/kvstore"
	"github.com/bazartoghar/storefront-golang/internal/routes"
)

func main() {
	// 0. --- Load Environment Variables (.env) ---
	if err := godotenv.Load(); err != nil {
		log.Println("WARNING: Could not find or load .env file. Relying on system environment variables.")
	}

	// 1. --- MySQL Connection ---
	db, err := database.OpenDB()
	if err != nil {
		log.Fatalf("Failed to connect to database: %v", err)
	}
	defer db.Close()

	// 2. --- Redis Connection (per-profile state) ---
	redisAddr := os.Getenv("REDIS_ADDR")
	if redisAddr == "" {
		redisAddr = "localhost:6379"
	}
	kv := kvstore.NewRedisStore(redisAddr, os.Getenv("REDIS_PASSWORD"), 0)

	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()
	if err := kv.Ping(ctx); err != nil {
		log.Fatalf("Failed to connect to Redis at %s: %v", redisAddr, err)
	}
	log.Println("Redis connection established successfully")

	// 3. --- Application Setup ---
	subscribers := coupon.NewMySQLStore(db)
	app := &handlers.Handlers{
		DB:          db,
		KV:          kv,
		Coupons:     coupon.NewService(subscribers),
		Subscribers: subscribers,
	}

	// --- Router Setup ---
	router := routes.SetupRouter(app)

	// --- Start Server ---
	port := os.Getenv("PORT")
	if port == "" {
		port = "8080"
	}
	log.Printf("Starting storefront API server on port %s...", port)
	if err := router.Run(":" + port); err != nil {
		log.Fatalf("Failed to start server: %v", err)
	}
}
