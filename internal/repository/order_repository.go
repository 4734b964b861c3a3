package repository

import (
	"back_office/internal/models"
	"back_office/internal/query"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

type OrderRepository interface {
	GetByID(id uuid.UUID) (*models.Order, error)
	List(filter query.OrderFilter) ([]models.Order, int64, error)
	// LastOrderNumber returns the highest issued order number with the
	// given day prefix, or "" when none exists yet.
	LastOrderNumber(prefix string) (string, error)
}

type orderRepository struct {
	db *gorm.DB
}

func NewOrderRepository(db *gorm.DB) OrderRepository {
	return &orderRepository{db: db}
}

func (r *orderRepository) GetByID(id uuid.UUID) (*models.Order, error) {
	var order models.Order
	err := r.db.Preload("Items").First(&order, "id = ?", id).Error
	if err != nil {
		return nil, err
	}
	return &order, nil
}

func (r *orderRepository) List(filter query.OrderFilter) ([]models.Order, int64, error) {
	tx := r.db.Model(&models.Order{})
	if filter.CustomerID != nil {
		tx = tx.Where("customer_id = ?", *filter.CustomerID)
	}
	if filter.Status != "" {
		tx = tx.Where("status = ?", filter.Status)
	}
	if filter.PaymentStatus != "" {
		tx = tx.Where("payment_status = ?", filter.PaymentStatus)
	}
	if filter.AssignedTo != nil {
		tx = tx.Where("assigned_to = ?", *filter.AssignedTo)
	}
	if filter.CreatedBy != nil {
		tx = tx.Where("created_by = ?", *filter.CreatedBy)
	}
	if filter.FromDate != nil {
		tx = tx.Where("created_at >= ?", *filter.FromDate)
	}
	if filter.ToDate != nil {
		tx = tx.Where("created_at <= ?", *filter.ToDate)
	}
	if filter.Search != "" {
		tx = tx.Where("order_number ILIKE ?", "%"+filter.Search+"%")
	}

	var count int64
	if err := tx.Count(&count).Error; err != nil {
		return nil, 0, err
	}

	var orders []models.Order
	err := tx.Preload("Items").
		Order("created_at DESC").
		Offset(filter.Skip).
		Limit(filter.Limit).
		Find(&orders).Error
	return orders, count, err
}

func (r *orderRepository) LastOrderNumber(prefix string) (string, error) {
	var number string
	err := r.db.Model(&models.Order{}).
		Where("order_number LIKE ?", prefix+"-%").
		Order("order_number DESC").
		Limit(1).
		Pluck("order_number", &number).Error
	if err != nil {
		return "", err
	}
	return number, nil
}
