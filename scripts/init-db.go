package main

import (
	"context"
	"fmt"
	"log"

	"back_office/internal/config"
	"back_office/internal/database"
	"back_office/internal/migrations"
	"back_office/internal/repository"
	"back_office/internal/services"
	"back_office/internal/validation"
)

func main() {
	fmt.Println("Initializing database...")

	cfg := config.Load()

	db, err := database.Initialize(cfg.DatabaseURL)
	if err != nil {
		log.Fatal("Failed to connect to database:", err)
	}

	if err := migrations.Reset(db); err != nil {
		log.Fatal("Failed to migrate database:", err)
	}

	if err := migrations.EnsureDefaultData(db); err != nil {
		log.Fatal("Failed to create default data:", err)
	}

	ctx := context.Background()

	fmt.Println("Creating sample catalog...")
	categoryService := services.NewCategoryService(db, repository.NewCategoryRepository(db), nil)
	productService := services.NewProductService(repository.NewProductRepository(db), repository.NewCategoryRepository(db), nil)
	customerService := services.NewCustomerService(repository.NewCustomerRepository(db), nil)

	apparel, err := categoryService.Create(ctx, validation.CreateCategoryRequest{
		Name: "Apparel",
		Slug: "apparel",
	})
	if err != nil {
		log.Fatal("Failed to create category:", err)
	}
	accessories, err := categoryService.Create(ctx, validation.CreateCategoryRequest{
		Name: "Accessories",
		Slug: "accessories",
	})
	if err != nil {
		log.Fatal("Failed to create category:", err)
	}

	samples := []validation.CreateProductRequest{
		{
			Name:       "Classic Tee",
			SKU:        "TEE-001",
			CategoryID: &apparel.ID,
			Price:      19.90,
			Stock:      120,
			Status:     "published",
		},
		{
			Name:       "Hooded Sweatshirt",
			SKU:        "HOOD-001",
			CategoryID: &apparel.ID,
			Price:      49.00,
			Stock:      40,
			Status:     "published",
			Badge:      "new",
		},
		{
			Name:       "Canvas Tote",
			SKU:        "TOTE-001",
			CategoryID: &accessories.ID,
			Price:      12.50,
			Stock:      200,
			Status:     "draft",
		},
	}
	for _, req := range samples {
		if _, err := productService.Create(ctx, req); err != nil {
			log.Fatal("Failed to create product:", err)
		}
	}

	if _, err := customerService.Create(ctx, validation.CreateCustomerRequest{
		Name:  "Walk-in Customer",
		Phone: "000-000-0000",
	}); err != nil {
		log.Fatal("Failed to create customer:", err)
	}

	fmt.Println("Database initialization completed successfully!")
}
