package routes

import (
	"github.com/gofiber/fiber/v2"

	"github.com/servicehubhq/servicehub/controllers"
	"github.com/servicehubhq/servicehub/middleware"
)

// SetupBookingRoutes configures all booking related routes
func SetupBookingRoutes(app *fiber.App) {
	booking := app.Group("/bookings", middleware.Protected())
	booking.Get("/", controllers.GetBookings)
	booking.Get("/:id", controllers.GetBooking)
	booking.Post("/", controllers.CreateBooking)
	booking.Patch("/:id", controllers.UpdateBooking)
	booking.Delete("/:id", controllers.DeleteBooking)
}
