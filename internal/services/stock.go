package services

import (
	"github.com/google/uuid"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"

	"back_office/internal/models"
)

// Statuses whose orders hold deducted stock.
var inventoryDeductStatuses = map[models.OrderStatus]bool{
	models.OrderConfirmed: true,
	models.OrderPaid:      true,
	models.OrderFulfilled: true,
}

func requiresInventoryDeduction(status models.OrderStatus) bool {
	return inventoryDeductStatuses[status]
}

// adjustProductStock applies a signed delta to a product's stock and writes
// the matching audit transaction, holding a row lock on the product for the
// duration. Stock may go negative; the caller decides policy, not this layer.
// Must run inside a database transaction.
func adjustProductStock(tx *gorm.DB, productID uuid.UUID, delta int, txType models.InventoryTransactionType, orderID, actorID *uuid.UUID, memo string) (*models.InventoryTransaction, error) {
	var product models.Product
	err := tx.Clauses(clause.Locking{Strength: "UPDATE"}).
		First(&product, "id = ?", productID).Error
	if err != nil {
		return nil, translateNotFound(err, "product")
	}

	newStock := product.Stock + delta
	if err := tx.Model(&models.Product{}).Where("id = ?", productID).Update("stock", newStock).Error; err != nil {
		return nil, err
	}

	transaction := &models.InventoryTransaction{
		ProductID: productID,
		OrderID:   orderID,
		Type:      txType,
		Quantity:  delta,
		ActorID:   actorID,
		Memo:      memo,
	}
	if err := tx.Create(transaction).Error; err != nil {
		return nil, err
	}
	return transaction, nil
}

func hasOrderTransactions(tx *gorm.DB, orderID uuid.UUID, txType models.InventoryTransactionType) (bool, error) {
	var count int64
	err := tx.Model(&models.InventoryTransaction{}).
		Where("order_id = ? AND type = ?", orderID, txType).
		Count(&count).Error
	return count > 0, err
}

// deductInventoryForOrder writes one sale transaction per item line.
// Idempotent: if the order already has sale transactions nothing happens.
func deductInventoryForOrder(tx *gorm.DB, order *models.Order, actorID *uuid.UUID) error {
	if len(order.Items) == 0 {
		return nil
	}
	done, err := hasOrderTransactions(tx, order.ID, models.TxSale)
	if err != nil || done {
		return err
	}

	for _, item := range order.Items {
		if item.ProductID == nil {
			continue
		}
		orderID := order.ID
		if _, err := adjustProductStock(tx, *item.ProductID, -item.Quantity, models.TxSale, &orderID, actorID, "Order "+order.OrderNumber); err != nil {
			return err
		}
	}
	return nil
}

// restoreInventoryForOrder reverses a prior deduction with return
// transactions. Runs only when a sale exists and no return was written yet.
func restoreInventoryForOrder(tx *gorm.DB, order *models.Order, actorID *uuid.UUID) error {
	if len(order.Items) == 0 {
		return nil
	}
	deducted, err := hasOrderTransactions(tx, order.ID, models.TxSale)
	if err != nil || !deducted {
		return err
	}
	restored, err := hasOrderTransactions(tx, order.ID, models.TxReturn)
	if err != nil || restored {
		return err
	}

	for _, item := range order.Items {
		if item.ProductID == nil {
			continue
		}
		orderID := order.ID
		if _, err := adjustProductStock(tx, *item.ProductID, item.Quantity, models.TxReturn, &orderID, actorID, "Order "+order.OrderNumber); err != nil {
			return err
		}
	}
	return nil
}
