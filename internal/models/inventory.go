package models

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

type InventoryTransactionType string

const (
	TxSale       InventoryTransactionType = "sale"
	TxReturn     InventoryTransactionType = "return"
	TxAdjustment InventoryTransactionType = "adjustment"
)

// InventoryTransaction is an immutable audit record of a stock change.
// Quantity is a signed delta; sales are negative, returns positive.
type InventoryTransaction struct {
	ID        uuid.UUID                `json:"id" gorm:"type:uuid;primaryKey"`
	ProductID uuid.UUID                `json:"product_id" gorm:"type:uuid;index;not null"`
	OrderID   *uuid.UUID               `json:"order_id,omitempty" gorm:"type:uuid;index"`
	Type      InventoryTransactionType `json:"type" gorm:"size:50;index;not null"`
	Quantity  int                      `json:"quantity" gorm:"not null"`
	ActorID   *uuid.UUID               `json:"actor_id,omitempty" gorm:"type:uuid"`
	Memo      string                   `json:"memo,omitempty" gorm:"size:1024"`
	CreatedAt time.Time                `json:"created_at" gorm:"index"`
}

func (t *InventoryTransaction) BeforeCreate(tx *gorm.DB) error {
	if t.ID == uuid.Nil {
		t.ID = uuid.New()
	}
	return nil
}
