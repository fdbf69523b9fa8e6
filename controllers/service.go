package controllers

import (
	"github.com/gofiber/fiber/v2"

	"github.com/servicehubhq/servicehub/db"
	"github.com/servicehubhq/servicehub/models"
	"github.com/servicehubhq/servicehub/services"
	"github.com/servicehubhq/servicehub/utils"
)

func GetServices(c *fiber.Ctx) error {
	base := db.DB.Model(&models.Service{}).Preload("Provider").Preload("Category")
	var list []models.Service
	return utils.List(c, base, &list)
}

func GetService(c *fiber.Ctx) error {
	id, err := paramID(c)
	if err != nil {
		return handleError(c, err)
	}
	var svc models.Service
	if db.DB.Preload("Provider").Preload("Category").
		First(&svc, id).RowsAffected == 0 {
		return c.Status(fiber.StatusNotFound).JSON(fiber.Map{
			"success": false,
			"error":   "service not found",
		})
	}
	return ok(c, svc)
}

// CreateService creates a listing for the provider owned by the acting
// user. The provider is resolved server-side, never taken from the body.
func CreateService(c *fiber.Ctx) error {
	a, okActor := actor(c)
	if !okActor {
		return c.Status(fiber.StatusUnauthorized).JSON(fiber.Map{"error": "Invalid user"})
	}

	var in services.CreateServiceInput
	if err := c.BodyParser(&in); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "Invalid service data"})
	}
	if msg := utils.ValidateStruct(in); msg != "" {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": msg})
	}

	svc, err := serviceSvc.Create(a.ID, in)
	if err != nil {
		return handleError(c, err)
	}
	return created(c, svc)
}

func UpdateService(c *fiber.Ctx) error {
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
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "Invalid service data"})
	}

	svc, err := serviceSvc.Update(a, id, payload)
	if err != nil {
		return handleError(c, err)
	}
	return ok(c, svc)
}

func DeleteService(c *fiber.Ctx) error {
	a, okActor := actor(c)
	if !okActor {
		return c.Status(fiber.StatusUnauthorized).JSON(fiber.Map{"error": "Invalid user"})
	}
	id, err := paramID(c)
	if err != nil {
		return handleError(c, err)
	}

	if err := serviceSvc.Delete(a, id); err != nil {
		return handleError(c, err)
	}
	return ok(c, fiber.Map{})
}
