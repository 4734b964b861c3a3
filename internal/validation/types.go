package validation

import "github.com/google/uuid"

type CreateCustomerRequest struct {
	Name    string `json:"name" validate:"required,max=255"`
	Phone   string `json:"phone" validate:"required,max=50"`
	Email   string `json:"email" validate:"omitempty,email,max=255"`
	Address string `json:"address"`
}

type UpdateCustomerRequest struct {
	Name    *string `json:"name" validate:"omitempty,min=1,max=255"`
	Phone   *string `json:"phone" validate:"omitempty,min=1,max=50"`
	Email   *string `json:"email" validate:"omitempty,email,max=255"`
	Address *string `json:"address"`
}

type CreateCategoryRequest struct {
	Name        string `json:"name" validate:"required,max=255"`
	Slug        string `json:"slug" validate:"required,max=255"`
	Description string `json:"description" validate:"max=1024"`
}

type UpdateCategoryRequest struct {
	Name        *string `json:"name" validate:"omitempty,min=1,max=255"`
	Slug        *string `json:"slug" validate:"omitempty,min=1,max=255"`
	Description *string `json:"description" validate:"omitempty,max=1024"`
}

type CreateProductRequest struct {
	Name           string     `json:"name" validate:"required,max=255"`
	SKU            string     `json:"sku" validate:"required,max=64"`
	CategoryID     *uuid.UUID `json:"category_id"`
	Description    string     `json:"description" validate:"max=2048"`
	Price          float64    `json:"price" validate:"gte=0"`
	PriceOrigin    *float64   `json:"price_origin" validate:"omitempty,gte=0"`
	Badge          string     `json:"badge" validate:"omitempty,oneof=new sale featured"`
	Stock          int        `json:"stock" validate:"gte=0"`
	Status         string     `json:"status" validate:"omitempty,oneof=draft published archived"`
	ThumbnailImage string     `json:"thumbnail_image" validate:"max=2048"`
	Images         []string   `json:"images"`
}

type UpdateProductRequest struct {
	Name           *string    `json:"name" validate:"omitempty,min=1,max=255"`
	SKU            *string    `json:"sku" validate:"omitempty,min=1,max=64"`
	CategoryID     *uuid.UUID `json:"category_id"`
	Description    *string    `json:"description" validate:"omitempty,max=2048"`
	Price          *float64   `json:"price" validate:"omitempty,gte=0"`
	PriceOrigin    *float64   `json:"price_origin" validate:"omitempty,gte=0"`
	Badge          *string    `json:"badge" validate:"omitempty,oneof=new sale featured"`
	Stock          *int       `json:"stock" validate:"omitempty,gte=0"`
	Status         *string    `json:"status" validate:"omitempty,oneof=draft published archived"`
	ThumbnailImage *string    `json:"thumbnail_image" validate:"omitempty,max=2048"`
	Images         *[]string  `json:"images"`
}

// OrderItemInput is a single (product, quantity) line on an incoming order.
type OrderItemInput struct {
	ProductID *uuid.UUID `json:"product_id"`
	Quantity  int        `json:"quantity" validate:"required,min=1"`
}

type CreateOrderRequest struct {
	CustomerID      uuid.UUID        `json:"customer_id" validate:"required"`
	Items           []OrderItemInput `json:"items" validate:"required,min=1,dive"`
	Status          string           `json:"status" validate:"omitempty,oneof=draft confirmed paid fulfilled cancelled"`
	PaymentStatus   string           `json:"payment_status" validate:"omitempty,oneof=unpaid pending paid refunded"`
	PaymentMethod   string           `json:"payment_method" validate:"omitempty,max=50"`
	AssignedTo      *uuid.UUID       `json:"assigned_to"`
	ShippingAddress string           `json:"shipping_address"`
	BillingAddress  string           `json:"billing_address"`
	Notes           string           `json:"notes"`
	DiscountTotal   float64          `json:"discount_total" validate:"gte=0"`
	TaxTotal        float64          `json:"tax_total" validate:"gte=0"`
	ShippingFee     float64          `json:"shipping_fee" validate:"gte=0"`
}

type UpdateOrderRequest struct {
	Status          *string    `json:"status" validate:"omitempty,oneof=draft confirmed paid fulfilled cancelled"`
	PaymentStatus   *string    `json:"payment_status" validate:"omitempty,oneof=unpaid pending paid refunded"`
	PaymentMethod   *string    `json:"payment_method" validate:"omitempty,max=50"`
	AssignedTo      *uuid.UUID `json:"assigned_to"`
	ShippingAddress *string    `json:"shipping_address"`
	BillingAddress  *string    `json:"billing_address"`
	Notes           *string    `json:"notes"`
	DiscountTotal   *float64   `json:"discount_total" validate:"omitempty,gte=0"`
	TaxTotal        *float64   `json:"tax_total" validate:"omitempty,gte=0"`
	ShippingFee     *float64   `json:"shipping_fee" validate:"omitempty,gte=0"`
}

// CreateAdjustmentRequest posts a signed stock delta against a product.
// Quantity zero is meaningless and rejected before any store call.
type CreateAdjustmentRequest struct {
	ProductID uuid.UUID `json:"product_id" validate:"required"`
	Quantity  int       `json:"quantity" validate:"required,ne=0"`
	Memo      string    `json:"memo" validate:"max=1024"`
}

type CreateUserRequest struct {
	Email       string `json:"email" validate:"required,email,max=255"`
	Password    string `json:"password" validate:"required,min=8,max=40"`
	FullName    string `json:"full_name" validate:"max=255"`
	IsSuperuser bool   `json:"is_superuser"`
}

type UpdateUserRequest struct {
	Email    *string `json:"email" validate:"omitempty,email,max=255"`
	Password *string `json:"password" validate:"omitempty,min=8,max=40"`
	FullName *string `json:"full_name" validate:"omitempty,max=255"`
	IsActive *bool   `json:"is_active"`
}
