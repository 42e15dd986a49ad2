// Package main is the entry point for the ledger writer service. It loads
// configuration, connects the backing stores, wires the request pipeline,
// and starts the HTTP server.
package main

import (
	"context"
	"log"
	"time"

	"ledgerwriter/internal/auth"
	"ledgerwriter/internal/balances"
	"ledgerwriter/internal/config"
	"ledgerwriter/internal/handlers"
	"ledgerwriter/internal/ledger"
	"ledgerwriter/internal/middleware"
	"ledgerwriter/internal/repositories"
	"ledgerwriter/internal/routes"
	"ledgerwriter/internal/services/transaction"

	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/cors"
	"github.com/gofiber/fiber/v2/middleware/logger"
)

func main() {
	// Load environment variables
	config.LoadEnv()

	// The verification key is loaded once and shared read-only for the
	// process lifetime.
	verifier, err := auth.NewVerifierFromFile(config.GetEnv("PUB_KEY_PATH", "/keys/jwtRS256.key.pub"))
	if err != nil {
		log.Fatalf("Failed to load verification key: %v", err)
	}

	localRoutingNum := config.GetEnv("LOCAL_ROUTING_NUM", "")
	if localRoutingNum == "" {
		log.Fatal("LOCAL_ROUTING_NUM is required")
	}

	// Ledger stream store
	redisClient := repositories.NewRedisClient(&repositories.RedisConfig{
		Host:     config.GetEnv("REDIS_HOST", "localhost"),
		Port:     config.GetEnv("REDIS_PORT", "6379"),
		Password: config.GetEnv("REDIS_PASSWORD", ""),
		DB:       config.GetIntEnv("REDIS_DB", 0),
	})
	defer func() {
		if err := redisClient.Close(); err != nil {
			log.Printf("Failed to close redis connection: %v", err)
		}
	}()

	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	if err := redisClient.Ping(ctx).Err(); err != nil {
		log.Fatalf("Failed to ping ledger store: %v", err)
	}
	cancel()

	var appender ledger.Appender = ledger.NewRedisAppender(redisClient, config.GetEnv("LEDGER_STREAM", "ledger"))
	if config.GetEnv("LEDGER_BACKEND", "redis") == "memory" {
		log.Println("Using in-memory ledger, entries will not survive restarts")
		appender = ledger.NewMemoryAppender()
	}

	// Relational mirror for reporting
	db, err := repositories.InitDB()
	if err != nil {
		log.Fatalf("Failed to connect to database: %v", err)
	}
	defer func() {
		sqlDB, err := db.DB()
		if err != nil {
			log.Printf("Failed to get database instance: %v", err)
			return
		}
		if err := sqlDB.Close(); err != nil {
			log.Printf("Failed to close database connection: %v", err)
		}
	}()
	mirror := repositories.NewTransactionRepository(db)

	balanceTimeout, err := time.ParseDuration(config.GetEnv("BALANCES_API_TIMEOUT", "5s"))
	if err != nil {
		balanceTimeout = 5 * time.Second
		log.Printf("Invalid BALANCES_API_TIMEOUT, using default: %s", balanceTimeout)
	}
	fetcher := balances.NewHTTPClient(config.GetEnv("BALANCES_API_ADDR", "localhost:8080"), balanceTimeout)

	txService := transaction.NewService(localRoutingNum, fetcher, appender, mirror)

	// Create Fiber app
	app := fiber.New()

	app.Use(cors.New(cors.Config{
		AllowHeaders: "Origin, Content-Type, Accept, Authorization",
		AllowMethods: "GET,POST",
	}))

	app.Use(logger.New(logger.Config{
		Format: "[${time}] ${status} - ${latency} ${method} ${path}\n",
	}))

	// Routes
	routes.SetupRoutes(app,
		middleware.NewAuthMiddleware(verifier),
		handlers.NewTransactionHandler(txService),
		handlers.NewHealthHandler(config.GetEnv("VERSION", "dev"), db, redisClient),
	)

	// Start server
	log.Fatal(app.Listen(":" + config.GetEnv("PORT", "8080")))
}
