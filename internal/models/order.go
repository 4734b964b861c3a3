package models

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

type OrderStatus string

const (
	OrderDraft     OrderStatus = "draft"
	OrderConfirmed OrderStatus = "confirmed"
	OrderPaid      OrderStatus = "paid"
	OrderFulfilled OrderStatus = "fulfilled"
	OrderCancelled OrderStatus = "cancelled"
)

type PaymentStatus string

const (
	PaymentUnpaid   PaymentStatus = "unpaid"
	PaymentPending  PaymentStatus = "pending"
	PaymentPaid     PaymentStatus = "paid"
	PaymentRefunded PaymentStatus = "refunded"
)

type Order struct {
	ID              uuid.UUID     `json:"id" gorm:"type:uuid;primaryKey"`
	OrderNumber     string        `json:"order_number" gorm:"size:32;uniqueIndex;not null"`
	CustomerID      uuid.UUID     `json:"customer_id" gorm:"type:uuid;index;not null"`
	Status          OrderStatus   `json:"status" gorm:"size:50;index;not null;default:'draft'"`
	PaymentStatus   PaymentStatus `json:"payment_status" gorm:"size:50;not null;default:'unpaid'"`
	PaymentMethod   string        `json:"payment_method" gorm:"size:50;not null;default:'cash'"`
	AssignedTo      *uuid.UUID    `json:"assigned_to,omitempty" gorm:"type:uuid;index"`
	ShippingAddress string        `json:"shipping_address,omitempty" gorm:"type:text"`
	BillingAddress  string        `json:"billing_address,omitempty" gorm:"type:text"`
	Notes           string        `json:"notes,omitempty" gorm:"type:text"`
	Subtotal        float64       `json:"subtotal" gorm:"type:numeric(12,2);not null;default:0"`
	DiscountTotal   float64       `json:"discount_total" gorm:"type:numeric(12,2);not null;default:0"`
	TaxTotal        float64       `json:"tax_total" gorm:"type:numeric(12,2);not null;default:0"`
	ShippingFee     float64       `json:"shipping_fee" gorm:"type:numeric(12,2);not null;default:0"`
	GrandTotal      float64       `json:"grand_total" gorm:"type:numeric(12,2);not null;default:0"`
	CreatedBy       *uuid.UUID    `json:"created_by,omitempty" gorm:"type:uuid"`
	UpdatedBy       *uuid.UUID    `json:"updated_by,omitempty" gorm:"type:uuid"`
	ConfirmedAt     *time.Time    `json:"confirmed_at,omitempty"`
	PaidAt          *time.Time    `json:"paid_at,omitempty"`
	FulfilledAt     *time.Time    `json:"fulfilled_at,omitempty"`
	CancelledAt     *time.Time    `json:"cancelled_at,omitempty"`
	Items           []OrderItem   `json:"items" gorm:"foreignKey:OrderID;constraint:OnDelete:CASCADE"`
	CreatedAt       time.Time     `json:"created_at" gorm:"index"`
	UpdatedAt       time.Time     `json:"updated_at"`
}

func (o *Order) BeforeCreate(tx *gorm.DB) error {
	if o.ID == uuid.Nil {
		o.ID = uuid.New()
	}
	return nil
}
