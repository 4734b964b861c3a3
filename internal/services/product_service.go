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

const entityProducts = "products"

type ProductService interface {
	List(ctx context.Context, filter query.ProductFilter) (*models.Page[models.Product], error)
	Get(ctx context.Context, id uuid.UUID) (*models.Product, error)
	Create(ctx context.Context, req validation.CreateProductRequest) (*models.Product, error)
	Update(ctx context.Context, id uuid.UUID, req validation.UpdateProductRequest) (*models.Product, error)
	Delete(ctx context.Context, id uuid.UUID) error
}

type productService struct {
	repo         repository.ProductRepository
	categoryRepo repository.CategoryRepository
	cache        *cache.Client
}

func NewProductService(repo repository.ProductRepository, categoryRepo repository.CategoryRepository, cacheClient *cache.Client) ProductService {
	return &productService{repo: repo, categoryRepo: categoryRepo, cache: cacheClient}
}

func (s *productService) List(ctx context.Context, filter query.ProductFilter) (*models.Page[models.Product], error) {
	key := cache.ListKey(entityProducts, filter.Encode())
	var page models.Page[models.Product]
	if s.cache.GetJSON(ctx, key, &page) {
		return &page, nil
	}

	products, count, err := s.repo.List(filter)
	if err != nil {
		return nil, err
	}
	page = models.Page[models.Product]{Data: products, Count: count}
	s.cache.SetJSON(ctx, entityProducts, key, page)
	return &page, nil
}

func (s *productService) Get(ctx context.Context, id uuid.UUID) (*models.Product, error) {
	key := cache.ItemKey(entityProducts, id.String())
	var cached models.Product
	if s.cache.GetJSON(ctx, key, &cached) {
		return &cached, nil
	}

	product, err := s.repo.GetByID(id)
	if err != nil {
		return nil, translateNotFound(err, "product")
	}
	s.cache.SetJSON(ctx, entityProducts, key, product)
	return product, nil
}

func (s *productService) slugTaken(slug string) bool {
	_, err := s.repo.GetBySlug(slug)
	return err == nil
}

func (s *productService) Create(ctx context.Context, req validation.CreateProductRequest) (*models.Product, error) {
	if req.CategoryID != nil {
		if _, err := s.categoryRepo.GetByID(*req.CategoryID); err != nil {
			return nil, translateNotFound(err, "category")
		}
	}
	if _, err := s.repo.GetBySKU(req.SKU); err == nil {
		return nil, conflict("sku")
	} else if !errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, err
	}

	status := models.ProductStatus(req.Status)
	if status == "" {
		status = models.ProductDraft
	}
	images := models.ImageList(req.Images)
	if images == nil {
		images = models.ImageList{}
	}

	product := &models.Product{
		CategoryID:     req.CategoryID,
		Name:           req.Name,
		Slug:           uniqueProductSlug(Slugify(req.Name), s.slugTaken),
		SKU:            req.SKU,
		Description:    req.Description,
		Price:          req.Price,
		PriceOrigin:    req.PriceOrigin,
		Badge:          models.ProductBadge(req.Badge),
		Stock:          req.Stock,
		Status:         status,
		ThumbnailImage: req.ThumbnailImage,
		Images:         images,
	}
	if err := s.repo.Create(product); err != nil {
		return nil, err
	}
	s.cache.Invalidate(ctx, entityProducts)
	return product, nil
}

func (s *productService) Update(ctx context.Context, id uuid.UUID, req validation.UpdateProductRequest) (*models.Product, error) {
	product, err := s.repo.GetByID(id)
	if err != nil {
		return nil, translateNotFound(err, "product")
	}

	if req.CategoryID != nil {
		if _, err := s.categoryRepo.GetByID(*req.CategoryID); err != nil {
			return nil, translateNotFound(err, "category")
		}
		product.CategoryID = req.CategoryID
	}
	if req.SKU != nil && *req.SKU != product.SKU {
		if _, err := s.repo.GetBySKU(*req.SKU); err == nil {
			return nil, conflict("sku")
		} else if !errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, err
		}
		product.SKU = *req.SKU
	}
	if req.Name != nil {
		// only renames that change the slug base get a fresh slug
		newBase := Slugify(*req.Name)
		if newBase != slugBase(product.Slug) {
			product.Slug = uniqueProductSlug(newBase, s.slugTaken)
		}
		product.Name = *req.Name
	}
	if req.Description != nil {
		product.Description = *req.Description
	}
	if req.Price != nil {
		product.Price = *req.Price
	}
	if req.PriceOrigin != nil {
		product.PriceOrigin = req.PriceOrigin
	}
	if req.Badge != nil {
		product.Badge = models.ProductBadge(*req.Badge)
	}
	if req.Stock != nil {
		product.Stock = *req.Stock
	}
	if req.Status != nil {
		product.Status = models.ProductStatus(*req.Status)
	}
	if req.ThumbnailImage != nil {
		product.ThumbnailImage = *req.ThumbnailImage
	}
	if req.Images != nil {
		product.Images = models.ImageList(*req.Images)
	}

	if err := s.repo.Update(product); err != nil {
		return nil, err
	}
	s.cache.Invalidate(ctx, entityProducts)
	return product, nil
}

func (s *productService) Delete(ctx context.Context, id uuid.UUID) error {
	if _, err := s.repo.GetByID(id); err != nil {
		return translateNotFound(err, "product")
	}
	if err := s.repo.Delete(id); err != nil {
		return err
	}
	s.cache.Invalidate(ctx, entityProducts)
	return nil
}
