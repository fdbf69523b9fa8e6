package db

import (
	"fmt"
	"log"

	"github.com/servicehubhq/servicehub/models"
)

func Migrate() {
	// Initialize DB connection
	Init()

	// Run AutoMigrate only when explicitly called. The unique index on
	// (user_id, service_id) for reviews is the safety net behind the
	// application-level duplicate check.
	err := DB.AutoMigrate(
		&models.User{},
		&models.Provider{},
		&models.Category{},
		&models.Service{},
		&models.Booking{},
		&models.Review{},
	)
	if err != nil {
		log.Fatal("Failed to run migrations: ", err)
	}

	fmt.Println("✅ Migrations applied successfully!")
}
