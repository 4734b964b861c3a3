package services

import (
	"context"

	"github.com/google/uuid"
	"gorm.io/gorm"

	"back_office/internal/cache"
	"back_office/internal/models"
	"back_office/internal/query"
	"back_office/internal/repository"
	"back_office/internal/validation"
)

const entityInventory = "inventory"

type InventoryService interface {
	ListTransactions(ctx context.Context, filter query.InventoryFilter) (*models.Page[models.InventoryTransaction], error)
	CreateAdjustment(ctx context.Context, req validation.CreateAdjustmentRequest, actorID *uuid.UUID) (*models.InventoryTransaction, error)
}

type inventoryService struct {
	db    *gorm.DB
	repo  repository.InventoryRepository
	cache *cache.Client
}

func NewInventoryService(db *gorm.DB, repo repository.InventoryRepository, cacheClient *cache.Client) InventoryService {
	return &inventoryService{db: db, repo: repo, cache: cacheClient}
}

func (s *inventoryService) ListTransactions(ctx context.Context, filter query.InventoryFilter) (*models.Page[models.InventoryTransaction], error) {
	key := cache.ListKey(entityInventory, filter.Encode())
	var page models.Page[models.InventoryTransaction]
	if s.cache.GetJSON(ctx, key, &page) {
		return &page, nil
	}

	transactions, count, err := s.repo.List(filter)
	if err != nil {
		return nil, err
	}
	page = models.Page[models.InventoryTransaction]{Data: transactions, Count: count}
	s.cache.SetJSON(ctx, entityInventory, key, page)
	return &page, nil
}

func (s *inventoryService) CreateAdjustment(ctx context.Context, req validation.CreateAdjustmentRequest, actorID *uuid.UUID) (*models.InventoryTransaction, error) {
	if req.Quantity == 0 {
		return nil, invalid("quantity must be non-zero")
	}

	var transaction *models.InventoryTransaction
	err := s.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		var err error
		transaction, err = adjustProductStock(tx, req.ProductID, req.Quantity, models.TxAdjustment, nil, actorID, req.Memo)
		return err
	})
	if err != nil {
		return nil, err
	}

	s.cache.Invalidate(ctx, entityInventory, entityProducts)
	return transaction, nil
}
