package routes

import (
	"github.com/gofiber/fiber/v2"

	"github.com/servicehubhq/servicehub/controllers"
	"github.com/servicehubhq/servicehub/middleware"
)

func SetupUploadRoutes(app *fiber.App) {
	app.Post("/uploads", middleware.Protected(), controllers.UploadFile)
}
