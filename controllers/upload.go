package controllers

import (
	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"

	"github.com/servicehubhq/servicehub/utils"
)

var uploadFolders = map[string]bool{
	"reviews":  true,
	"bookings": true,
	"avatars":  true,
}

// UploadFile stores a review image or booking attachment in Cloudinary and
// returns the URL the client should put in the review/booking payload.
func UploadFile(c *fiber.Ctx) error {
	if _, okActor := actor(c); !okActor {
		return c.Status(fiber.StatusUnauthorized).JSON(fiber.Map{"error": "Invalid user"})
	}

	fileHeader, err := c.FormFile("file")
	if err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "No file uploaded"})
	}

	folder := c.Query("folder", "reviews")
	if !uploadFolders[folder] {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "Unknown upload folder"})
	}

	file, err := fileHeader.Open()
	if err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "Cannot read uploaded file"})
	}
	defer file.Close()

	url, err := utils.UploadToCloudinary(file, uuid.NewString(), folder)
	if err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"error": "Upload failed"})
	}

	return created(c, fiber.Map{"url": url})
}
