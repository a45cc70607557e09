package routes

import (
	"log"
	"os"

	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/logger"

	"truleadai/config"
	controller "truleadai/controllers"
	"truleadai/middleware"
	"truleadai/utils"
)

func SetupRoutes(app *fiber.App) {
	// Initialize controllers with their respective loggers
	authController := controller.NewAuthController(config.KV, log.New(os.Stdout, "AUTH: ", log.LstdFlags))
	discoveryController := controller.NewDiscoveryController(config.KV, log.New(os.Stdout, "DISCOVER: ", log.LstdFlags))
	leadController := controller.NewLeadController(config.KV, log.New(os.Stdout, "LEAD: ", log.LstdFlags))
	analyticsController := controller.NewAnalyticsController(config.KV, log.New(os.Stdout, "ANALYTICS: ", log.LstdFlags))
	insightController := controller.NewInsightController(config.KV,
		log.New(os.Stdout, "INSIGHT: ", log.LstdFlags), utils.NewTemplateInsightGenerator())
	activityController := controller.NewActivityController(config.KV, log.New(os.Stdout, "ACTIVITY: ", log.LstdFlags))

	// Auth routes group with logging middleware
	auth := app.Group("/auth", logger.New(logger.Config{
		Format: "[${time}] ${status} - ${latency} ${method} ${path}\n",
	}))
	auth.Post("/login", authController.Login)
	auth.Get("/me", middleware.Protected(), authController.GetCurrentUser)

	// API group with versioning and protection
	api := app.Group("/api/v1", middleware.Protected(), logger.New(logger.Config{
		Format: "[${time}] ${status} - ${latency} ${method} ${path}\n",
	}))

	// Discovery, rate limited on top of the daily quota
	api.Post("/discover", middleware.DiscoveryRateLimiter(), discoveryController.DiscoverLeads)

	// Lead routes
	leads := api.Group("/leads")
	leads.Get("/", leadController.GetLeads)
	leads.Get("/:id", leadController.GetLead)
	leads.Put("/:id/status", leadController.UpdateLeadStatus)
	leads.Put("/:id/notes", leadController.UpdateLeadNotes)
	leads.Post("/:id/insight", insightController.GenerateInsight)

	// Analytics and activity feed
	api.Post("/analytics", analyticsController.GetAnalytics)
	api.Get("/activity", activityController.GetActivity)

	// 404 handler
	app.Use(func(c *fiber.Ctx) error {
		return c.Status(fiber.StatusNotFound).JSON(fiber.Map{
			"error": "Endpoint not found",
		})
	})
}
