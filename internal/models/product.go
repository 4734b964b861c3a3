package models

import (
	"database/sql/driver"
	"encoding/json"
	"errors"
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

type ProductStatus string

const (
	ProductDraft     ProductStatus = "draft"
	ProductPublished ProductStatus = "published"
	ProductArchived  ProductStatus = "archived"
)

type ProductBadge string

const (
	BadgeNew      ProductBadge = "new"
	BadgeSale     ProductBadge = "sale"
	BadgeFeatured ProductBadge = "featured"
)

// ImageList is stored as a JSONB array of image URLs.
type ImageList []string

func (l ImageList) Value() (driver.Value, error) {
	if l == nil {
		l = ImageList{}
	}
	return json.Marshal(l)
}

func (l *ImageList) Scan(value interface{}) error {
	if value == nil {
		*l = ImageList{}
		return nil
	}
	var raw []byte
	switch v := value.(type) {
	case []byte:
		raw = v
	case string:
		raw = []byte(v)
	default:
		return errors.New("unsupported type for ImageList")
	}
	return json.Unmarshal(raw, l)
}

type Product struct {
	ID             uuid.UUID     `json:"id" gorm:"type:uuid;primaryKey"`
	CategoryID     *uuid.UUID    `json:"category_id,omitempty" gorm:"type:uuid;index"`
	Name           string        `json:"name" gorm:"size:255;not null"`
	Slug           string        `json:"slug" gorm:"size:255;uniqueIndex;not null"`
	SKU            string        `json:"sku" gorm:"column:sku;size:64;uniqueIndex;not null"`
	Description    string        `json:"description,omitempty" gorm:"size:2048"`
	Price          float64       `json:"price" gorm:"type:numeric(10,2);not null;default:0"`
	PriceOrigin    *float64      `json:"price_origin,omitempty" gorm:"type:numeric(10,2)"`
	Badge          ProductBadge  `json:"badge,omitempty" gorm:"size:50"`
	Stock          int           `json:"stock" gorm:"not null;default:0"`
	Status         ProductStatus `json:"status" gorm:"size:50;not null;default:'draft'"`
	ThumbnailImage string        `json:"thumbnail_image,omitempty" gorm:"size:2048"`
	Images         ImageList     `json:"images" gorm:"type:jsonb;not null;default:'[]'"`
	CreatedAt      time.Time     `json:"created_at" gorm:"index"`
	UpdatedAt      time.Time     `json:"updated_at"`
}

func (p *Product) BeforeCreate(tx *gorm.DB) error {
	if p.ID == uuid.Nil {
		p.ID = uuid.New()
	}
	return nil
}
