package validation

import (
	validatorv10 "github.com/go-playground/validator/v10"
)

// New returns a configured validator with custom struct-level validation
// registered.
func New() *validatorv10.Validate {
	v := validatorv10.New()

	// an order must carry at least one line with a product selected;
	// lines without a product are dropped by the service, so a request
	// made only of such lines would create an empty order.
	v.RegisterStructValidation(createOrderStructValidation, CreateOrderRequest{})

	return v
}

func createOrderStructValidation(sl validatorv10.StructLevel) {
	req := sl.Current().Interface().(CreateOrderRequest)

	selected := 0
	for _, it := range req.Items {
		if it.ProductID != nil {
			selected++
		}
	}
	if selected == 0 {
		sl.ReportError(req.Items, "items", "Items", "items_need_product", "")
	}
}
