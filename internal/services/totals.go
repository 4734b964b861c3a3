package services

import "back_office/internal/models"

// computeSubtotal sums the priced line totals of an order.
func computeSubtotal(items []models.OrderItem) float64 {
	var subtotal float64
	for _, item := range items {
		subtotal += item.TotalPrice
	}
	return subtotal
}

// computeGrandTotal derives the authoritative grand total. The client never
// computes money; this is the only place the formula lives.
func computeGrandTotal(subtotal, discountTotal, taxTotal, shippingFee float64) (float64, error) {
	grand := subtotal - discountTotal + taxTotal + shippingFee
	if grand < 0 {
		return 0, invalid("grand total cannot be negative")
	}
	return grand, nil
}
