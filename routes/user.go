package routes

import (
	"github.com/gofiber/fiber/v2"

	"github.com/servicehubhq/servicehub/controllers"
	"github.com/servicehubhq/servicehub/middleware"
)

// SetupUserRoutes configures the admin user management routes
func SetupUserRoutes(app *fiber.App) {
	user := app.Group("/users", middleware.Protected())
	user.Get("/", controllers.GetUsers)
	user.Get("/:id", controllers.GetUser)
	user.Patch("/:id", controllers.UpdateUser)
	user.Delete("/:id", controllers.DeleteUser)
}
