package services

import (
	"context"
	"errors"

	"github.com/google/uuid"
	"gorm.io/gorm"

	"back_office/internal/cache"
	"back_office/internal/models"
	"back_office/internal/query"
	"back_office/internal/repository"
	"back_office/internal/validation"
)

const entityCategories = "categories"

type CategoryService interface {
	List(ctx context.Context, filter query.CategoryFilter) (*models.Page[models.Category], error)
	Get(ctx context.Context, id uuid.UUID) (*models.Category, error)
	Create(ctx context.Context, req validation.CreateCategoryRequest) (*models.Category, error)
	Update(ctx context.Context, id uuid.UUID, req validation.UpdateCategoryRequest) (*models.Category, error)
	Delete(ctx context.Context, id uuid.UUID) error
}

type categoryService struct {
	db    *gorm.DB
	repo  repository.CategoryRepository
	cache *cache.Client
}

func NewCategoryService(db *gorm.DB, repo repository.CategoryRepository, cacheClient *cache.Client) CategoryService {
	return &categoryService{db: db, repo: repo, cache: cacheClient}
}

func (s *categoryService) List(ctx context.Context, filter query.CategoryFilter) (*models.Page[models.Category], error) {
	key := cache.ListKey(entityCategories, filter.Encode())
	var page models.Page[models.Category]
	if s.cache.GetJSON(ctx, key, &page) {
		return &page, nil
	}

	categories, count, err := s.repo.List(filter)
	if err != nil {
		return nil, err
	}
	page = models.Page[models.Category]{Data: categories, Count: count}
	s.cache.SetJSON(ctx, entityCategories, key, page)
	return &page, nil
}

func (s *categoryService) Get(ctx context.Context, id uuid.UUID) (*models.Category, error) {
	category, err := s.repo.GetByID(id)
	if err != nil {
		return nil, translateNotFound(err, "category")
	}
	return category, nil
}

func (s *categoryService) Create(ctx context.Context, req validation.CreateCategoryRequest) (*models.Category, error) {
	if _, err := s.repo.GetBySlug(req.Slug); err == nil {
		return nil, conflict("slug")
	} else if !errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, err
	}

	category := &models.Category{
		Name:        req.Name,
		Slug:        req.Slug,
		Description: req.Description,
	}
	if err := s.repo.Create(category); err != nil {
		return nil, err
	}
	s.cache.Invalidate(ctx, entityCategories)
	return category, nil
}

func (s *categoryService) Update(ctx context.Context, id uuid.UUID, req validation.UpdateCategoryRequest) (*models.Category, error) {
	category, err := s.repo.GetByID(id)
	if err != nil {
		return nil, translateNotFound(err, "category")
	}

	if req.Slug != nil && *req.Slug != category.Slug {
		if _, err := s.repo.GetBySlug(*req.Slug); err == nil {
			return nil, conflict("slug")
		} else if !errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, err
		}
		category.Slug = *req.Slug
	}
	if req.Name != nil {
		category.Name = *req.Name
	}
	if req.Description != nil {
		category.Description = *req.Description
	}

	if err := s.repo.Update(category); err != nil {
		return nil, err
	}
	s.cache.Invalidate(ctx, entityCategories)
	return category, nil
}

func (s *categoryService) Delete(ctx context.Context, id uuid.UUID) error {
	if _, err := s.repo.GetByID(id); err != nil {
		return translateNotFound(err, "category")
	}

	// detach products before removing the category so they stay listable
	err := s.db.Transaction(func(tx *gorm.DB) error {
		if err := tx.Model(&models.Product{}).
			Where("category_id = ?", id).
			Update("category_id", nil).Error; err != nil {
			return err
		}
		return tx.Delete(&models.Category{}, "id = ?", id).Error
	})
	if err != nil {
		return err
	}
	s.cache.Invalidate(ctx, entityCategories, entityProducts)
	return nil
}
