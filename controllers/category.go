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

const categoriesCacheKey = "categories:all"

// GetCategories lists all categories sorted by name, served from cache when
// possible.
func GetCategories(c *fiber.Ctx) error {
	if cached := redis.GetCached(categoriesCacheKey); cached != nil {
		c.Set(fiber.HeaderContentType, fiber.MIMEApplicationJSON)
		return c.Send(cached)
	}

	var categories []models.Category
	if err := db.DB.Order("name").Find(&categories).Error; err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{
			"success": false,
			"error":   "failed to fetch categories",
		})
	}

	body := fiber.Map{"success": true, "count": len(categories), "data": categories}
	if payload, err := json.Marshal(body); err == nil {
		redis.SetCached(categoriesCacheKey, payload, 10*time.Minute)
	}
	return c.JSON(body)
}

func GetCategory(c *fiber.Ctx) error {
	id, err := paramID(c)
	if err != nil {
		return handleError(c, err)
	}
	var category models.Category
	if db.DB.First(&category, id).RowsAffected == 0 {
		return c.Status(fiber.StatusNotFound).JSON(fiber.Map{
			"success": false,
			"error":   "category not found",
		})
	}
	return ok(c, category)
}

func CreateCategory(c *fiber.Ctx) error {
	a, okActor := actor(c)
	if !okActor {
		return c.Status(fiber.StatusUnauthorized).JSON(fiber.Map{"error": "Invalid user"})
	}

	var in services.CreateCategoryInput
	if err := c.BodyParser(&in); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "Invalid category data"})
	}
	if msg := utils.ValidateStruct(in); msg != "" {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": msg})
	}

	category, err := categorySvc.Create(a, in)
	if err != nil {
		return handleError(c, err)
	}
	redis.Invalidate(categoriesCacheKey)
	return created(c, category)
}

func UpdateCategory(c *fiber.Ctx) error {
	a, okActor := actor(c)
	if !okActor {
		return c.Status(fiber.StatusUnauthorized).JSON(fiber.Map{"error": "Invalid user"})
	}
	id, err := paramID(c)
	if err != nil {
		return handleError(c, err)
	}

	var in services.CreateCategoryInput
	if err := c.BodyParser(&in); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "Invalid category data"})
	}
	if msg := utils.ValidateStruct(in); msg != "" {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": msg})
	}

	category, err := categorySvc.Update(a, id, in)
	if err != nil {
		return handleError(c, err)
	}
	redis.Invalidate(categoriesCacheKey)
	return ok(c, category)
}

func DeleteCategory(c *fiber.Ctx) error {
	a, okActor := actor(c)
	if !okActor {
		return c.Status(fiber.StatusUnauthorized).JSON(fiber.Map{"error": "Invalid user"})
	}
	id, err := paramID(c)
	if err != nil {
		return handleError(c, err)
	}

	if err := categorySvc.Delete(a, id); err != nil {
		return handleError(c, err)
	}
	redis.Invalidate(categoriesCacheKey)
	return ok(c, fiber.Map{})
}
