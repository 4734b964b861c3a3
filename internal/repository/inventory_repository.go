package repository

import (
	"back_office/internal/models"
	"back_office/internal/query"

	"gorm.io/gorm"
)

type InventoryRepository interface {
	List(filter query.InventoryFilter) ([]models.InventoryTransaction, int64, error)
}

type inventoryRepository struct {
	db *gorm.DB
}

func NewInventoryRepository(db *gorm.DB) InventoryRepository {
	return &inventoryRepository{db: db}
}

func (r *inventoryRepository) List(filter query.InventoryFilter) ([]models.InventoryTransaction, int64, error) {
	tx := r.db.Model(&models.InventoryTransaction{})
	if filter.ProductID != nil {
		tx = tx.Where("product_id = ?", *filter.ProductID)
	}
	if filter.OrderID != nil {
		tx = tx.Where("order_id = ?", *filter.OrderID)
	}
	if filter.Type != "" {
		tx = tx.Where("type = ?", filter.Type)
	}
	if filter.FromDate != nil {
		tx = tx.Where("created_at >= ?", *filter.FromDate)
	}
	if filter.ToDate != nil {
		tx = tx.Where("created_at <= ?", *filter.ToDate)
	}

	var count int64
	if err := tx.Count(&count).Error; err != nil {
		return nil, 0, err
	}

	var transactions []models.InventoryTransaction
	err := tx.Order("created_at DESC").
		Offset(filter.Skip).
		Limit(filter.Limit).
		Find(&transactions).Error
	return transactions, count, err
}
