// Package query maps list-endpoint query strings to typed filter structs and
// back. Decoding is forgiving: malformed numbers fall back to defaults and
// invalid enum values fall back to "all" (the zero value). Encoding is
// canonical, so two equivalent URLs produce the same string; the cache layer
// keys list entries on that string.
package query

import (
	"net/url"
	"strconv"
	"time"

	"github.com/google/uuid"

	"back_office/internal/models"
)

const maxLimit = 100

type Pagination struct {
	Skip  int
	Limit int
}

// ParsePagination reads skip/limit with a per-entity default limit.
// Negative skip clamps to zero; limit is capped at 100.
func ParsePagination(values url.Values, defaultLimit int) Pagination {
	p := Pagination{Skip: 0, Limit: defaultLimit}
	if raw := values.Get("skip"); raw != "" {
		if n, err := strconv.Atoi(raw); err == nil && n > 0 {
			p.Skip = n
		}
	}
	if raw := values.Get("limit"); raw != "" {
		if n, err := strconv.Atoi(raw); err == nil && n > 0 {
			p.Limit = n
		}
	}
	if p.Limit > maxLimit {
		p.Limit = maxLimit
	}
	return p
}

func (p Pagination) encode(values url.Values) {
	values.Set("skip", strconv.Itoa(p.Skip))
	values.Set("limit", strconv.Itoa(p.Limit))
}

func parseUUID(values url.Values, key string) *uuid.UUID {
	raw := values.Get(key)
	if raw == "" {
		return nil
	}
	id, err := uuid.Parse(raw)
	if err != nil {
		return nil
	}
	return &id
}

func parseTime(values url.Values, key string) *time.Time {
	raw := values.Get(key)
	if raw == "" {
		return nil
	}
	for _, layout := range []string{time.RFC3339, "2006-01-02"} {
		if t, err := time.Parse(layout, raw); err == nil {
			return &t
		}
	}
	return nil
}

func setUUID(values url.Values, key string, id *uuid.UUID) {
	if id != nil {
		values.Set(key, id.String())
	}
}

func setTime(values url.Values, key string, t *time.Time) {
	if t != nil {
		values.Set(key, t.UTC().Format(time.RFC3339))
	}
}

type ProductFilter struct {
	Pagination
	CategoryID *uuid.UUID
	Status     models.ProductStatus
	Search     string
}

func ParseProductFilter(values url.Values) ProductFilter {
	f := ProductFilter{Pagination: ParsePagination(values, 50)}
	f.CategoryID = parseUUID(values, "category_id")
	switch s := models.ProductStatus(values.Get("status")); s {
	case models.ProductDraft, models.ProductPublished, models.ProductArchived:
		f.Status = s
	}
	f.Search = values.Get("search")
	return f
}

func (f ProductFilter) Encode() string {
	values := url.Values{}
	f.Pagination.encode(values)
	setUUID(values, "category_id", f.CategoryID)
	if f.Status != "" {
		values.Set("status", string(f.Status))
	}
	if f.Search != "" {
		values.Set("search", f.Search)
	}
	return values.Encode()
}

type OrderFilter struct {
	Pagination
	CustomerID    *uuid.UUID
	Status        models.OrderStatus
	PaymentStatus models.PaymentStatus
	AssignedTo    *uuid.UUID
	CreatedBy     *uuid.UUID
	FromDate      *time.Time
	ToDate        *time.Time
	Search        string
}

func ParseOrderFilter(values url.Values) OrderFilter {
	f := OrderFilter{Pagination: ParsePagination(values, 10)}
	f.CustomerID = parseUUID(values, "customer_id")
	switch s := models.OrderStatus(values.Get("status")); s {
	case models.OrderDraft, models.OrderConfirmed, models.OrderPaid, models.OrderFulfilled, models.OrderCancelled:
		f.Status = s
	}
	switch s := models.PaymentStatus(values.Get("payment_status")); s {
	case models.PaymentUnpaid, models.PaymentPending, models.PaymentPaid, models.PaymentRefunded:
		f.PaymentStatus = s
	}
	f.AssignedTo = parseUUID(values, "assigned_to")
	f.CreatedBy = parseUUID(values, "created_by")
	f.FromDate = parseTime(values, "from_date")
	f.ToDate = parseTime(values, "to_date")
	f.Search = values.Get("search")
	return f
}

func (f OrderFilter) Encode() string {
	values := url.Values{}
	f.Pagination.encode(values)
	setUUID(values, "customer_id", f.CustomerID)
	if f.Status != "" {
		values.Set("status", string(f.Status))
	}
	if f.PaymentStatus != "" {
		values.Set("payment_status", string(f.PaymentStatus))
	}
	setUUID(values, "assigned_to", f.AssignedTo)
	setUUID(values, "created_by", f.CreatedBy)
	setTime(values, "from_date", f.FromDate)
	setTime(values, "to_date", f.ToDate)
	if f.Search != "" {
		values.Set("search", f.Search)
	}
	return values.Encode()
}

type InventoryFilter struct {
	Pagination
	ProductID *uuid.UUID
	OrderID   *uuid.UUID
	Type      models.InventoryTransactionType
	FromDate  *time.Time
	ToDate    *time.Time
}

func ParseInventoryFilter(values url.Values) InventoryFilter {
	f := InventoryFilter{Pagination: ParsePagination(values, 50)}
	f.ProductID = parseUUID(values, "product_id")
	f.OrderID = parseUUID(values, "order_id")
	switch t := models.InventoryTransactionType(values.Get("tx_type")); t {
	case models.TxSale, models.TxReturn, models.TxAdjustment:
		f.Type = t
	}
	f.FromDate = parseTime(values, "from_date")
	f.ToDate = parseTime(values, "to_date")
	return f
}

func (f InventoryFilter) Encode() string {
	values := url.Values{}
	f.Pagination.encode(values)
	setUUID(values, "product_id", f.ProductID)
	setUUID(values, "order_id", f.OrderID)
	if f.Type != "" {
		values.Set("tx_type", string(f.Type))
	}
	setTime(values, "from_date", f.FromDate)
	setTime(values, "to_date", f.ToDate)
	return values.Encode()
}

type CustomerFilter struct {
	Pagination
	Search string
}

func ParseCustomerFilter(values url.Values) CustomerFilter {
	return CustomerFilter{
		Pagination: ParsePagination(values, 10),
		Search:     values.Get("search"),
	}
}

func (f CustomerFilter) Encode() string {
	values := url.Values{}
	f.Pagination.encode(values)
	if f.Search != "" {
		values.Set("search", f.Search)
	}
	return values.Encode()
}

type CategoryFilter struct {
	Pagination
	Search string
}

func ParseCategoryFilter(values url.Values) CategoryFilter {
	return CategoryFilter{
		Pagination: ParsePagination(values, 50),
		Search:     values.Get("search"),
	}
}

func (f CategoryFilter) Encode() string {
	values := url.Values{}
	f.Pagination.encode(values)
	if f.Search != "" {
		values.Set("search", f.Search)
	}
	return values.Encode()
}

type MediaFilter struct {
	Pagination
	Query string
}

func ParseMediaFilter(values url.Values) MediaFilter {
	return MediaFilter{
		Pagination: ParsePagination(values, 50),
		Query:      values.Get("query"),
	}
}

func (f MediaFilter) Encode() string {
	values := url.Values{}
	f.Pagination.encode(values)
	if f.Query != "" {
		values.Set("query", f.Query)
	}
	return values.Encode()
}
