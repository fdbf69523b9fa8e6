package controllers

import (
	"encoding/json"
	"time"

	"github.com/gofiber/fiber/v2"

	"github.com/servicehubhq/servicehub/db"
	"github.com/servicehubhq/servicehub/models"
	"github.com/servicehubhq/servicehub/redis"
	"github.com/servicehubhq/servicehub/services"
	"github.com/servicehubhq/servicehub/utils"
)

func GetProviders(c *fiber.Ctx) error {
	base := db.DB.Model(&models.Provider{}).Preload("User")
	var providers []models.Provider
	return utils.List(c, base, &providers)
}

func GetProvider(c *fiber.Ctx) error {
	id, err := paramID(c)
	if err != nil {
		return handleError(c, err)
	}
	var provider models.Provider
	if db.DB.Preload("User").Preload("Services").Preload("Categories").
		First(&provider, id).RowsAffected == 0 {
		return c.Status(fiber.StatusNotFound).JSON(fiber.Map{
			"success": false,
			"error":   "provider not found",
		})
	}
	return ok(c, provider)
}

// CreateProvider registers a business profile for the authenticated user and
// promotes them to the provider role. A second profile is rejected.
func CreateProvider(c *fiber.Ctx) error {
	a, okActor := actor(c)
	if !okActor {
		return c.Status(fiber.StatusUnauthorized).JSON(fiber.Map{"error": "Invalid user"})
	}

	var in services.CreateProviderInput
	if err := c.BodyParser(&in); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "Invalid provider data"})
	}
	if msg := utils.ValidateStruct(in); msg != "" {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": msg})
	}

	provider, err := providerSvc.Create(a.ID, in)
	if err != nil {
		return handleError(c, err)
	}
	return created(c, provider)
}

func UpdateProvider(c *fiber.Ctx) error {
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
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "Invalid provider data"})
	}

	provider, err := providerSvc.Update(a, id, payload)
	if err != nil {
		return handleError(c, err)
	}
	return ok(c, provider)
}

// DeleteProvider removes the business profile and reverts the owning user to
// the customer role.
func DeleteProvider(c *fiber.Ctx) error {
	a, okActor := actor(c)
	if !okActor {
		return c.Status(fiber.StatusUnauthorized).JSON(fiber.Map{"error": "Invalid user"})
	}
	id, err := paramID(c)
	if err != nil {
		return handleError(c, err)
	}

	if err := providerSvc.Delete(a, id); err != nil {
		return handleError(c, err)
	}
	redis.Invalidate(providerStatsKey(id))
	return ok(c, fiber.Map{})
}

// GetProviderReviewStats returns cached review statistics for a provider.
func GetProviderReviewStats(c *fiber.Ctx) error {
	id, err := paramID(c)
	if err != nil {
		return handleError(c, err)
	}

	key := providerStatsKey(id)
	if cached := redis.GetCached(key); cached != nil {
		c.Set(fiber.HeaderContentType, fiber.MIMEApplicationJSON)
		return c.Send(cached)
	}

	type ReviewStats struct {
		ProviderID   uint    `json:"provider_id"`
		TotalReviews int64   `json:"total_reviews"`
		AvgRating    float64 `json:"average_rating"`
		Rating5Count int64   `json:"rating_5_count"`
		Rating4Count int64   `json:"rating_4_count"`
		Rating3Count int64   `json:"rating_3_count"`
		Rating2Count int64   `json:"rating_2_count"`
		Rating1Count int64   `json:"rating_1_count"`
	}

	stats := ReviewStats{ProviderID: id}
	db.DB.Model(&models.Review{}).Where("provider_id = ?", id).Count(&stats.TotalReviews)

	var avgResult struct {
		AvgRating float64
	}
	db.DB.Model(&models.Review{}).
		Select("COALESCE(AVG(rating), 0) as avg_rating").
		Where("provider_id = ?", id).
		Scan(&avgResult)
	stats.AvgRating = avgResult.AvgRating

	db.DB.Model(&models.Review{}).Where("provider_id = ? AND rating = 5", id).Count(&stats.Rating5Count)
	db.DB.Model(&models.Review{}).Where("provider_id = ? AND rating = 4", id).Count(&stats.Rating4Count)
	db.DB.Model(&models.Review{}).Where("provider_id = ? AND rating = 3", id).Count(&stats.Rating3Count)
	db.DB.Model(&models.Review{}).Where("provider_id = ? AND rating = 2", id).Count(&stats.Rating2Count)
	db.DB.Model(&models.Review{}).Where("provider_id = ? AND rating = 1", id).Count(&stats.Rating1Count)

	if payload, err := json.Marshal(stats); err == nil {
		redis.SetCached(key, payload, 5*time.Minute)
	}
	return c.JSON(stats)
}
