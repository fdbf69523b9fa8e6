package routes

import (
	"github.com/gofiber/fiber/v2"

	"github.com/servicehubhq/servicehub/controllers"
	"github.com/servicehubhq/servicehub/middleware"
)

// SetupCategoryRoutes configures all category related routes
func SetupCategoryRoutes(app *fiber.App) {
	category := app.Group("/categories")
	category.Get("/", controllers.GetCategories)
	category.Get("/:id", controllers.GetCategory)
	category.Post("/", middleware.Protected(), controllers.CreateCategory)
	category.Patch("/:id", middleware.Protected(), controllers.UpdateCategory)
	category.Delete("/:id", middleware.Protected(), controllers.DeleteCategory)
}
