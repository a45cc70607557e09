package main

import (
	"context"
	"log"
	"os"
	"time"

	"github.com/getsentry/sentry-go"
	"github.com/gofiber/fiber/v2"

	"truleadai/config"
	"truleadai/middleware"
	"truleadai/routes"
	"truleadai/worker"
)

func main() {
	// Initialize logger
	logger := log.New(os.Stdout, "SERVER: ", log.Ldate|log.Ltime|log.Lshortfile)

	// Load configuration
	if err := config.LoadConfig(); err != nil {
		logger.Fatalf("Failed to load configuration: %v", err)
	}

	// Initialize Sentry when a DSN is configured
	if dsn := config.AppConfig.SentryDSN; dsn != "" {
		if err := sentry.Init(sentry.ClientOptions{
			Dsn:         dsn,
			Environment: config.AppConfig.Environment,
		}); err != nil {
			logger.Fatalf("Failed to initialize Sentry: %v", err)
		}
		defer sentry.Flush(2 * time.Second)
	}

	// Initialize the key-value store
	if err := config.ConnectStore(); err != nil {
		logger.Fatalf("Failed to connect to store: %v", err)
	}

	// Create Fiber app
	app := fiber.New()

	// Add CORS middleware
	app.Use(middleware.CORS(middleware.DefaultCORSConfig(config.AppConfig.CORSAllowOrigin)))

	// Initialize and start the activity trim worker
	activityWorker := worker.NewActivityWorker(config.KV,
		log.New(os.Stdout, "ACTIVITY: ", log.LstdFlags),
		time.Duration(config.AppConfig.ActivityTrimMins)*time.Minute)
	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()
	go activityWorker.Start(ctx)

	// Health check endpoint, registered before the routes so the 404
	// fallback never shadows it
	app.Get("/", func(c *fiber.Ctx) error {
		return c.JSON(fiber.Map{
			"status":  "running",
			"version": "1.0.0",
		})
	})

	// Setup routes
	routes.SetupRoutes(app)

	// Start server
	logger.Printf("🚀 Server starting on port %s", config.AppConfig.ServerPort)
	if err := app.Listen(":" + config.AppConfig.ServerPort); err != nil {
		logger.Fatalf("Failed to start server: %v", err)
	}
}
