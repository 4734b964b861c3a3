package migrations

import (
	"context"
	"errors"
	"log"

	"gorm.io/gorm"

	"back_office/internal/models"
	"back_office/internal/repository"
	"back_office/internal/services"
	"back_office/internal/validation"
)

// Reset drops and recreates every table. Used by the init script, never by
// the running server.
func Reset(db *gorm.DB) error {
	log.Println("Dropping existing tables...")
	err := db.Migrator().DropTable(
		&models.InventoryTransaction{},
		&models.OrderItem{},
		&models.Order{},
		&models.Media{},
		&models.Product{},
		&models.Category{},
		&models.Customer{},
		&models.User{},
	)
	if err != nil {
		log.Printf("Warning: Error dropping tables: %v", err)
	}

	log.Println("Creating tables...")
	return db.AutoMigrate(
		&models.User{},
		&models.Customer{},
		&models.Category{},
		&models.Product{},
		&models.Order{},
		&models.OrderItem{},
		&models.InventoryTransaction{},
		&models.Media{},
	)
}

// EnsureDefaultData creates the initial admin account when no users exist.
func EnsureDefaultData(db *gorm.DB) error {
	userRepo := repository.NewUserRepository(db)
	userService := services.NewUserService(userRepo)

	_, err := userService.Create(context.Background(), validation.CreateUserRequest{
		Email:       "admin@example.com",
		FullName:    "Administrator",
		Password:    "changeme123",
		IsSuperuser: true,
	})
	if err != nil {
		if errors.Is(err, services.ErrConflict) {
			log.Println("Admin user already exists")
			return nil
		}
		return err
	}

	log.Println("Admin user created successfully")
	log.Println("Email: admin@example.com")
	log.Println("Password: changeme123")
	return nil
}
