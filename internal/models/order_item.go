package models

import (
	"github.com/google/uuid"
	"gorm.io/gorm"
)

// OrderItem snapshots the product at order time so later product edits
// do not rewrite order history.
type OrderItem struct {
	ID             uuid.UUID  `json:"id" gorm:"type:uuid;primaryKey"`
	OrderID        uuid.UUID  `json:"order_id" gorm:"type:uuid;index;not null"`
	ProductID      *uuid.UUID `json:"product_id,omitempty" gorm:"type:uuid"`
	ProductName    string     `json:"product_name" gorm:"size:255;not null"`
	SKU            string     `json:"sku,omitempty" gorm:"column:sku;size:64"`
	ThumbnailImage string     `json:"thumbnail_image,omitempty" gorm:"size:2048"`
	Quantity       int        `json:"quantity" gorm:"not null"`
	UnitPrice      float64    `json:"unit_price" gorm:"type:numeric(10,2);not null"`
	TotalPrice     float64    `json:"total_price" gorm:"type:numeric(10,2);not null"`
}

func (i *OrderItem) BeforeCreate(tx *gorm.DB) error {
	if i.ID == uuid.Nil {
		i.ID = uuid.New()
	}
	return nil
}
