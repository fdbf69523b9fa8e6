package routes

import (
	"github.com/gofiber/fiber/v2"

	"github.com/servicehubhq/servicehub/controllers"
	"github.com/servicehubhq/servicehub/middleware"
)

// SetupProviderRoutes configures all provider related routes
func SetupProviderRoutes(app *fiber.App) {
	provider := app.Group("/providers")
	provider.Get("/", controllers.GetProviders)
	provider.Get("/:id", controllers.GetProvider)
	provider.Get("/:id/review-stats", controllers.GetProviderReviewStats)
	provider.Post("/", middleware.Protected(), controllers.CreateProvider)
	provider.Patch("/:id", middleware.Protected(), controllers.UpdateProvider)
	provider.Delete("/:id", middleware.Protected(), controllers.DeleteProvider)
}
