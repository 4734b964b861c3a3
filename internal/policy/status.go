// Package policy holds the order lifecycle rules: statuses move forward
// along draft -> confirmed -> paid -> fulfilled, cancellation is reachable
// from any non-cancelled state, and cancelled is terminal.
package policy

import "back_office/internal/models"

var transitions = map[models.OrderStatus][]models.OrderStatus{
	models.OrderDraft:     {models.OrderDraft, models.OrderConfirmed, models.OrderPaid, models.OrderFulfilled, models.OrderCancelled},
	models.OrderConfirmed: {models.OrderConfirmed, models.OrderPaid, models.OrderFulfilled, models.OrderCancelled},
	models.OrderPaid:      {models.OrderPaid, models.OrderFulfilled, models.OrderCancelled},
	models.OrderFulfilled: {models.OrderFulfilled, models.OrderCancelled},
	models.OrderCancelled: {models.OrderCancelled},
}

// Normalize maps unknown or empty statuses to draft.
func Normalize(status models.OrderStatus) models.OrderStatus {
	if _, ok := transitions[status]; !ok {
		return models.OrderDraft
	}
	return status
}

// AllowedTransitions returns the statuses reachable from the given status,
// always including the status itself.
func AllowedTransitions(status models.OrderStatus) []models.OrderStatus {
	allowed := transitions[Normalize(status)]
	out := make([]models.OrderStatus, len(allowed))
	copy(out, allowed)
	return out
}

// CanTransition reports whether an order may move from one status to another.
func CanTransition(from, to models.OrderStatus) bool {
	for _, s := range transitions[Normalize(from)] {
		if s == Normalize(to) {
			return true
		}
	}
	return false
}

// CanDelete reports whether an order in the given status may be deleted.
// Only drafts are deletable.
func CanDelete(status models.OrderStatus) bool {
	return Normalize(status) == models.OrderDraft
}

// HasOtherTransitions reports whether any status other than the current one
// is reachable, i.e. whether a status update action is worth offering.
func HasOtherTransitions(status models.OrderStatus) bool {
	current := Normalize(status)
	for _, s := range transitions[current] {
		if s != current {
			return true
		}
	}
	return false
}
