package controllers

import (
	"errors"

	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"

	"github.com/servicehubhq/servicehub/apperr"
	"github.com/servicehubhq/servicehub/policy"
	"github.com/servicehubhq/servicehub/services"
	"github.com/servicehubhq/servicehub/store"
)

var (
	bookingSvc  *services.BookingService
	reviewSvc   *services.ReviewService
	providerSvc *services.ProviderService
	serviceSvc  *services.ServiceService
	categorySvc *services.CategoryService
	userSvc     *services.UserService
)

// Init wires the service layer against the database. Called once at startup.
func Init(g *gorm.DB) {
	s := store.New(g)
	bookingSvc = services.NewBookingService(s)
	reviewSvc = services.NewReviewService(s)
	providerSvc = services.NewProviderService(s)
	serviceSvc = services.NewServiceService(s)
	categorySvc = services.NewCategoryService(s)
	userSvc = services.NewUserService(s)
}

// actor reads the authenticated user from the request locals set by the JWT
// middleware.
func actor(c *fiber.Ctx) (policy.Actor, bool) {
	id, ok := c.Locals("userID").(uint)
	if !ok {
		return policy.Actor{}, false
	}
	role, ok := c.Locals("role").(string)
	if !ok {
		return policy.Actor{}, false
	}
	return policy.Actor{ID: id, Role: role}, true
}

// handleError maps domain errors onto HTTP statuses. Reasons are surfaced
// as message strings; internals are not.
func handleError(c *fiber.Ctx, err error) error {
	var (
		notFound     *apperr.NotFoundError
		forbidden    *apperr.ForbiddenError
		conflict     *apperr.ConflictError
		invalidState *apperr.InvalidStateError
		validation   *apperr.ValidationError
	)
	switch {
	case errors.As(err, &notFound):
		return c.Status(fiber.StatusNotFound).JSON(fiber.Map{"success": false, "error": err.Error()})
	case errors.As(err, &forbidden):
		return c.Status(fiber.StatusForbidden).JSON(fiber.Map{"success": false, "error": err.Error()})
	case errors.As(err, &conflict):
		return c.Status(fiber.StatusConflict).JSON(fiber.Map{"success": false, "error": err.Error()})
	case errors.As(err, &invalidState), errors.As(err, &validation):
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"success": false, "error": err.Error()})
	default:
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"success": false, "error": "server error"})
	}
}

func ok(c *fiber.Ctx, data any) error {
	return c.JSON(fiber.Map{"success": true, "data": data})
}

func created(c *fiber.Ctx, data any) error {
	return c.Status(fiber.StatusCreated).JSON(fiber.Map{"success": true, "data": data})
}

func paramID(c *fiber.Ctx) (uint, error) {
	id, err := c.ParamsInt("id")
	if err != nil || id < 1 {
		return 0, apperr.Validation("id", "invalid id")
	}
	return uint(id), nil
}
