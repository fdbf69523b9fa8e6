package controllers

import (
	"github.com/gofiber/fiber/v2"

	"github.com/servicehubhq/servicehub/db"
	"github.com/servicehubhq/servicehub/models"
	"github.com/servicehubhq/servicehub/services"
	"github.com/servicehubhq/servicehub/utils"
)

// GetBookings lists bookings scoped to the caller: customers see their own,
// providers see bookings for their services, admins see everything.
func GetBookings(c *fiber.Ctx) error {
	a, okActor := actor(c)
	if !okActor {
		return c.Status(fiber.StatusUnauthorized).JSON(fiber.Map{"error": "Invalid user"})
	}

	base := db.DB.Model(&models.Booking{}).
		Preload("Service").Preload("Provider").Preload("Customer")

	switch a.Role {
	case models.RoleCustomer:
		base = base.Where("customer_id = ?", a.ID)
	case models.RoleProvider:
		var provider models.Provider
		if db.DB.Where("user_id = ?", a.ID).First(&provider).RowsAffected == 0 {
			return c.Status(fiber.StatusNotFound).JSON(fiber.Map{
				"success": false,
				"error":   "no provider found for user",
			})
		}
		base = base.Where("provider_id = ?", provider.ID)
	}

	var bookings []models.Booking
	return utils.List(c, base, &bookings)
}

// GetBooking returns a single booking to its customer, its provider, or an
// admin.
func GetBooking(c *fiber.Ctx) error {
	a, okActor := actor(c)
	if !okActor {
		return c.Status(fiber.StatusUnauthorized).JSON(fiber.Map{"error": "Invalid user"})
	}
	id, err := paramID(c)
	if err != nil {
		return handleError(c, err)
	}

	if _, err := bookingSvc.Get(a, id); err != nil {
		return handleError(c, err)
	}

	var booking models.Booking
	if err := db.DB.Preload("Service").Preload("Provider").Preload("Customer").
		First(&booking, id).Error; err != nil {
		return c.Status(fiber.StatusNotFound).JSON(fiber.Map{
			"success": false,
			"error":   "booking not found",
		})
	}
	return ok(c, booking)
}

// CreateBooking books a service for the authenticated customer.
func CreateBooking(c *fiber.Ctx) error {
	a, okActor := actor(c)
	if !okActor {
		return c.Status(fiber.StatusUnauthorized).JSON(fiber.Map{"error": "Invalid user"})
	}

	var in services.CreateBookingInput
	if err := c.BodyParser(&in); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "Invalid booking data"})
	}
	if msg := utils.ValidateStruct(in); msg != "" {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": msg})
	}

	booking, err := bookingSvc.Create(a.ID, in)
	if err != nil {
		return handleError(c, err)
	}
	return created(c, booking)
}

// UpdateBooking applies a partial update; fields outside the caller's
// whitelist are dropped silently.
func UpdateBooking(c *fiber.Ctx) error {
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
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "Invalid booking data"})
	}

	booking, err := bookingSvc.Update(a, id, payload)
	if err != nil {
		return handleError(c, err)
	}
	return ok(c, booking)
}

// DeleteBooking removes a booking; customers may delete their own, admins
// anything.
func DeleteBooking(c *fiber.Ctx) error {
	a, okActor := actor(c)
	if !okActor {
		return c.Status(fiber.StatusUnauthorized).JSON(fiber.Map{"error": "Invalid user"})
	}
	id, err := paramID(c)
	if err != nil {
		return handleError(c, err)
	}

	if err := bookingSvc.Delete(a, id); err != nil {
		return handleError(c, err)
	}
	return ok(c, fiber.Map{})
}
