package policy

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"back_office/internal/models"
)

var allStatuses = []models.OrderStatus{
	models.OrderDraft,
	models.OrderConfirmed,
	models.OrderPaid,
	models.OrderFulfilled,
	models.OrderCancelled,
}

func TestAllowedTransitionsIncludeSelf(t *testing.T) {
	for _, s := range allStatuses {
		assert.Contains(t, AllowedTransitions(s), s, "status %s must allow itself", s)
	}
}

func TestAllowedTransitionsTable(t *testing.T) {
	cases := []struct {
		from models.OrderStatus
		want []models.OrderStatus
	}{
		{models.OrderDraft, []models.OrderStatus{models.OrderDraft, models.OrderConfirmed, models.OrderPaid, models.OrderFulfilled, models.OrderCancelled}},
		{models.OrderConfirmed, []models.OrderStatus{models.OrderConfirmed, models.OrderPaid, models.OrderFulfilled, models.OrderCancelled}},
		{models.OrderPaid, []models.OrderStatus{models.OrderPaid, models.OrderFulfilled, models.OrderCancelled}},
		{models.OrderFulfilled, []models.OrderStatus{models.OrderFulfilled, models.OrderCancelled}},
		{models.OrderCancelled, []models.OrderStatus{models.OrderCancelled}},
	}
	for _, tc := range cases {
		assert.Equal(t, tc.want, AllowedTransitions(tc.from), "from %s", tc.from)
	}
}

func TestNoBackwardTransitions(t *testing.T) {
	assert.False(t, CanTransition(models.OrderConfirmed, models.OrderDraft))
	assert.False(t, CanTransition(models.OrderPaid, models.OrderConfirmed))
	assert.False(t, CanTransition(models.OrderFulfilled, models.OrderPaid))
	assert.False(t, CanTransition(models.OrderCancelled, models.OrderDraft))
	assert.False(t, CanTransition(models.OrderCancelled, models.OrderFulfilled))
}

func TestCancellationReachableFromNonCancelled(t *testing.T) {
	for _, s := range allStatuses {
		assert.True(t, CanTransition(s, models.OrderCancelled), "from %s", s)
	}
}

func TestCanDeleteOnlyDraft(t *testing.T) {
	for _, s := range allStatuses {
		assert.Equal(t, s == models.OrderDraft, CanDelete(s), "status %s", s)
	}
}

func TestHasOtherTransitions(t *testing.T) {
	for _, s := range allStatuses {
		want := s != models.OrderCancelled
		assert.Equal(t, want, HasOtherTransitions(s), "status %s", s)
	}
}

func TestUnknownStatusNormalizesToDraft(t *testing.T) {
	assert.Equal(t, models.OrderDraft, Normalize(""))
	assert.Equal(t, models.OrderDraft, Normalize("shipped"))
	assert.True(t, CanDelete("bogus"))
	assert.Equal(t, AllowedTransitions(models.OrderDraft), AllowedTransitions("bogus"))
}
