package services

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"back_office/internal/models"
)

func TestComputeSubtotal(t *testing.T) {
	items := []models.OrderItem{
		{Quantity: 2, UnitPrice: 10, TotalPrice: 20},
		{Quantity: 1, UnitPrice: 5.5, TotalPrice: 5.5},
	}
	assert.InDelta(t, 25.5, computeSubtotal(items), 0.001)
	assert.Zero(t, computeSubtotal(nil))
}

func TestComputeGrandTotal(t *testing.T) {
	grand, err := computeGrandTotal(100, 10, 5, 7.5)
	require.NoError(t, err)
	assert.InDelta(t, 102.5, grand, 0.001)
}

func TestComputeGrandTotalRejectsNegative(t *testing.T) {
	_, err := computeGrandTotal(10, 50, 0, 0)
	require.Error(t, err)
	assert.ErrorIs(t, err, ErrInvalid)
}

func TestRequiresInventoryDeduction(t *testing.T) {
	assert.False(t, requiresInventoryDeduction(models.OrderDraft))
	assert.True(t, requiresInventoryDeduction(models.OrderConfirmed))
	assert.True(t, requiresInventoryDeduction(models.OrderPaid))
	assert.True(t, requiresInventoryDeduction(models.OrderFulfilled))
	assert.False(t, requiresInventoryDeduction(models.OrderCancelled))
}
