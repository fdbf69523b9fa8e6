package controllers

import (
	"fmt"

	"github.com/gofiber/fiber/v2"

	"github.com/servicehubhq/servicehub/db"
	"github.com/servicehubhq/servicehub/models"
	"github.com/servicehubhq/servicehub/redis"
	"github.com/servicehubhq/servicehub/services"
	"github.com/servicehubhq/servicehub/utils"
)

func providerStatsKey(providerID uint) string {
	return fmt.Sprintf("provider:%d:review-stats", providerID)
}

// GetReviews lists reviews, newest first. Filter with service_id= or
// provider_id= query params.
func GetReviews(c *fiber.Ctx) error {
	base := db.DB.Model(&models.Review{}).Preload("User").Preload("Service")
	var reviews []models.Review
	return utils.List(c, base, &reviews)
}

func GetReview(c *fiber.Ctx) error {
	id, err := paramID(c)
	if err != nil {
		return handleError(c, err)
	}
	var review models.Review
	if db.DB.Preload("User").Preload("Service").Preload("Provider").
		First(&review, id).RowsAffected == 0 {
		return c.Status(fiber.StatusNotFound).JSON(fiber.Map{
			"success": false,
			"error":   fmt.Sprintf("review not found with id of %d", id),
		})
	}
	return ok(c, review)
}

// CreateReview adds a review for a service, optionally tied to a completed
// booking.
func CreateReview(c *fiber.Ctx) error {
	a, okActor := actor(c)
	if !okActor {
		return c.Status(fiber.StatusUnauthorized).JSON(fiber.Map{"error": "Invalid user"})
	}

	var in services.CreateReviewInput
	if err := c.BodyParser(&in); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "Invalid review data"})
	}
	if msg := utils.ValidateStruct(in); msg != "" {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": msg})
	}

	review, err := reviewSvc.Create(a.ID, in)
	if err != nil {
		return handleError(c, err)
	}
	redis.Invalidate(providerStatsKey(review.ProviderID))
	return created(c, review)
}

// UpdateReview lets the author edit content fields, or the owning provider
// attach a reply.
func UpdateReview(c *fiber.Ctx) error {
	a, okActor := actor(c)
	if !okActor {
		return c.Status(fiber.StatusUnauthorized).JSON(fiber.Map{"error": "Invalid user"})
	}
	id, err := paramID(c)
	if err != nil {
		return handleError(c, err)
	}

	payload := make(map[string]any)
	if err := c.BodyParser(&payload); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "Invalid review data"})
	}

	review, err := reviewSvc.Update(a, id, payload)
	if err != nil {
		return handleError(c, err)
	}
	return ok(c, review)
}

func DeleteReview(c *fiber.Ctx) error {
	a, okActor := actor(c)
	if !okActor {
		return c.Status(fiber.StatusUnauthorized).JSON(fiber.Map{"error": "Invalid user"})
	}
	id, err := paramID(c)
	if err != nil {
		return handleError(c, err)
	}

	review, err := reviewSvc.Delete(a, id)
	if err != nil {
		return handleError(c, err)
	}
	redis.Invalidate(providerStatsKey(review.ProviderID))
	return ok(c, fiber.Map{})
}
