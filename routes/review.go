package routes

import (
	"github.com/gofiber/fiber/v2"

	"github.com/servicehubhq/servicehub/controllers"
	"github.com/servicehubhq/servicehub/middleware"
)

// SetupReviewRoutes configures all review related routes
func SetupReviewRoutes(app *fiber.App) {
	review := app.Group("/reviews")
	review.Get("/", controllers.GetReviews)
	review.Get("/:id", controllers.GetReview)
	review.Post("/", middleware.Protected(), controllers.CreateReview)
	review.Patch("/:id", middleware.Protected(), controllers.UpdateReview)
	review.Delete("/:id", middleware.Protected(), controllers.DeleteReview)
}
