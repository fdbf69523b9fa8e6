package routes

import (
	"github.com/gofiber/fiber/v2"

	"github.com/servicehubhq/servicehub/controllers"
	"github.com/servicehubhq/servicehub/middleware"
)

func SetupServiceRoutes(app *fiber.App) {
	service := app.Group("/services")
	service.Get("/", controllers.GetServices)
	service.Get("/:id", controllers.GetService)
	service.Post("/", middleware.Protected(), controllers.CreateService)
	service.Patch("/:id", middleware.Protected(), controllers.UpdateService)
	service.Delete("/:id", middleware.Protected(), controllers.DeleteService)
}
