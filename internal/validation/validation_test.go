package validation

import (
	"testing"

	"github.com/google/uuid"
)

func TestCreateAdjustmentRequest_ZeroQuantityRejected(t *testing.T) {
	v := New()

	req := CreateAdjustmentRequest{
		ProductID: uuid.New(),
		Quantity:  0,
	}
	if err := v.Struct(req); err == nil {
		t.Fatal("expected validation error for zero quantity, got nil")
	}
}

func TestCreateAdjustmentRequest_NegativeQuantityAllowed(t *testing.T) {
	v := New()

	// stock may go negative; the backend decides, not the form
	req := CreateAdjustmentRequest{
		ProductID: uuid.New(),
		Quantity:  -5,
		Memo:      "damaged in transit",
	}
	if err := v.Struct(req); err != nil {
		t.Fatalf("expected valid, got error: %v", err)
	}
}

func TestCreateAdjustmentRequest_MissingProduct(t *testing.T) {
	v := New()

	req := CreateAdjustmentRequest{Quantity: 3}
	if err := v.Struct(req); err == nil {
		t.Fatal("expected validation error for missing product_id, got nil")
	}
}

func TestCreateOrderRequest_Valid(t *testing.T) {
	v := New()

	productID := uuid.New()
	req := CreateOrderRequest{
		CustomerID: uuid.New(),
		Items: []OrderItemInput{
			{ProductID: &productID, Quantity: 2},
		},
		Status:        "draft",
		PaymentMethod: "cash",
	}
	if err := v.Struct(req); err != nil {
		t.Fatalf("expected valid, got error: %v", err)
	}
}

func TestCreateOrderRequest_NoItems(t *testing.T) {
	v := New()

	req := CreateOrderRequest{
		CustomerID: uuid.New(),
		Items:      []OrderItemInput{},
	}
	if err := v.Struct(req); err == nil {
		t.Fatal("expected validation error for empty items, got nil")
	}
}

func TestCreateOrderRequest_NoLineHasProduct(t *testing.T) {
	v := New()

	req := CreateOrderRequest{
		CustomerID: uuid.New(),
		Items: []OrderItemInput{
			{ProductID: nil, Quantity: 1},
			{ProductID: nil, Quantity: 2},
		},
	}
	if err := v.Struct(req); err == nil {
		t.Fatal("expected validation error when no line selects a product, got nil")
	}
}

func TestCreateOrderRequest_InvalidStatus(t *testing.T) {
	v := New()

	productID := uuid.New()
	req := CreateOrderRequest{
		CustomerID: uuid.New(),
		Items:      []OrderItemInput{{ProductID: &productID, Quantity: 1}},
		Status:     "shipped",
	}
	if err := v.Struct(req); err == nil {
		t.Fatal("expected validation error for unknown status, got nil")
	}
}

func TestCreateUserRequest_ShortPassword(t *testing.T) {
	v := New()

	req := CreateUserRequest{Email: "ops@example.com", Password: "short"}
	if err := v.Struct(req); err == nil {
		t.Fatal("expected validation error for short password, got nil")
	}
}
