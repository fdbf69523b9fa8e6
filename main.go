package main

import (
	"log"
	"os"

	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/cors"

	"github.com/servicehubhq/servicehub/controllers"
	"github.com/servicehubhq/servicehub/cron"
	"github.com/servicehubhq/servicehub/db"
	"github.com/servicehubhq/servicehub/redis"
	"github.com/servicehubhq/servicehub/routes"
)

func main() {
	app := fiber.New()
	db.Init()
	controllers.Init(db.DB)

	if os.Getenv("REDIS_ADDR") != "" {
		redis.InitRedis()
	} else {
		log.Println("REDIS_ADDR not set, running without cache")
	}

	app.Use(cors.New(cors.Config{
		AllowOrigins: "*",
	}))

	app.Get("/", func(c *fiber.Ctx) error {
		return c.SendString("ServiceHub API")
	})
	routes.SetupAuthRoutes(app)
	routes.SetupUserRoutes(app)
	routes.SetupProviderRoutes(app)
	routes.SetupServiceRoutes(app)
	routes.SetupCategoryRoutes(app)
	routes.SetupBookingRoutes(app)
	routes.SetupReviewRoutes(app)
	routes.SetupUploadRoutes(app)

	cron.StartCronJobs()

	log.Fatal(app.Listen(":8000"))
}
