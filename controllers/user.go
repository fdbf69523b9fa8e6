package controllers

import (
	"github.com/gofiber/fiber/v2"

	"github.com/servicehubhq/servicehub/db"
	"github.com/servicehubhq/servicehub/models"
	"github.com/servicehubhq/servicehub/policy"
	"github.com/servicehubhq/servicehub/utils"
)

// GetUsers lists users; admin only.
func GetUsers(c *fiber.Ctx) error {
	a, okActor := actor(c)
	if !okActor {
		return c.Status(fiber.StatusUnauthorized).JSON(fiber.Map{"error": "Invalid user"})
	}
	if !policy.CanManageUsers(a) {
		return c.Status(fiber.StatusForbidden).JSON(fiber.Map{
			"success": false,
			"error":   "only admins can manage users",
		})
	}

	base := db.DB.Model(&models.User{}).Omit("password")
	var users []models.User
	return utils.List(c, base, &users)
}

func GetUser(c *fiber.Ctx) error {
	a, okActor := actor(c)
	if !okActor {
		return c.Status(fiber.StatusUnauthorized).JSON(fiber.Map{"error": "Invalid user"})
	}
	id, err := paramID(c)
	if err != nil {
		return handleError(c, err)
	}

	user, err := userSvc.Get(a, id)
	if err != nil {
		return handleError(c, err)
	}
	user.Password = ""
	return ok(c, user)
}

// UpdateUser applies an admin edit to a user profile.
func UpdateUser(c *fiber.Ctx) error {
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
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "Invalid user data"})
	}

	user, err := userSvc.Update(a, id, payload)
	if err != nil {
		return handleError(c, err)
	}
	user.Password = ""
	return ok(c, user)
}

func DeleteUser(c *fiber.Ctx) error {
	a, okActor := actor(c)
	if !okActor {
		return c.Status(fiber.StatusUnauthorized).JSON(fiber.Map{"error": "Invalid user"})
	}
	id, err := paramID(c)
	if err != nil {
		return handleError(c, err)
	}

	if err := userSvc.Delete(a, id); err != nil {
		return handleError(c, err)
	}
	return ok(c, fiber.Map{})
}

// UpdatePassword changes the authenticated user's own password.
func UpdatePassword(c *fiber.Ctx) error {
	a, okActor := actor(c)
	if !okActor {
		return c.Status(fiber.StatusUnauthorized).JSON(fiber.Map{"error": "Invalid user"})
	}

	type PasswordInput struct {
		CurrentPassword string `json:"current_password"`
		NewPassword     string `json:"new_password"`
	}
	input := new(PasswordInput)
	if err := c.BodyParser(input); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "Cannot parse JSON"})
	}

	if err := userSvc.ChangePassword(a.ID, input.CurrentPassword, input.NewPassword); err != nil {
		return handleError(c, err)
	}
	return ok(c, fiber.Map{"message": "Password updated"})
}
