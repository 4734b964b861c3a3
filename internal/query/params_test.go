package query

import (
	"net/url"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"back_office/internal/models"
)

func TestParsePaginationDefaults(t *testing.T) {
	p := ParsePagination(url.Values{}, 10)
	assert.Equal(t, 0, p.Skip)
	assert.Equal(t, 10, p.Limit)
}

func TestParsePaginationMalformed(t *testing.T) {
	values := url.Values{"skip": {"abc"}, "limit": {"-5"}}
	p := ParsePagination(values, 10)
	assert.Equal(t, 0, p.Skip)
	assert.Equal(t, 10, p.Limit)
}

func TestParsePaginationCapsLimit(t *testing.T) {
	values := url.Values{"limit": {"5000"}}
	p := ParsePagination(values, 10)
	assert.Equal(t, 100, p.Limit)
}

func TestParseOrderFilterInvalidEnumsFallBackToAll(t *testing.T) {
	values := url.Values{
		"status":         {"shipped"},
		"payment_status": {"maybe"},
	}
	f := ParseOrderFilter(values)
	assert.Empty(t, f.Status)
	assert.Empty(t, f.PaymentStatus)
}

func TestParseOrderFilterValidEnums(t *testing.T) {
	values := url.Values{
		"status":         {"paid"},
		"payment_status": {"refunded"},
	}
	f := ParseOrderFilter(values)
	assert.Equal(t, models.OrderPaid, f.Status)
	assert.Equal(t, models.PaymentRefunded, f.PaymentStatus)
}

func TestParseOrderFilterDates(t *testing.T) {
	values := url.Values{
		"from_date": {"2025-03-01"},
		"to_date":   {"2025-03-31T23:59:59Z"},
	}
	f := ParseOrderFilter(values)
	require.NotNil(t, f.FromDate)
	require.NotNil(t, f.ToDate)
	assert.Equal(t, time.March, f.FromDate.Month())
	assert.Equal(t, 31, f.ToDate.Day())

	f = ParseOrderFilter(url.Values{"from_date": {"yesterday"}})
	assert.Nil(t, f.FromDate)
}

func TestParseUUIDFallsBackToNil(t *testing.T) {
	f := ParseOrderFilter(url.Values{"customer_id": {"not-a-uuid"}})
	assert.Nil(t, f.CustomerID)

	id := uuid.New()
	f = ParseOrderFilter(url.Values{"customer_id": {id.String()}})
	require.NotNil(t, f.CustomerID)
	assert.Equal(t, id, *f.CustomerID)
}

func TestEncodeDecodeRoundTrip(t *testing.T) {
	customerID := uuid.New()
	from := time.Date(2025, 4, 1, 0, 0, 0, 0, time.UTC)
	orig := OrderFilter{
		Pagination:    Pagination{Skip: 20, Limit: 10},
		CustomerID:    &customerID,
		Status:        models.OrderConfirmed,
		PaymentStatus: models.PaymentPending,
		FromDate:      &from,
		Search:        "ORD2025",
	}

	values, err := url.ParseQuery(orig.Encode())
	require.NoError(t, err)
	decoded := ParseOrderFilter(values)

	assert.Equal(t, orig.Encode(), decoded.Encode())
	assert.Equal(t, orig.Status, decoded.Status)
	assert.Equal(t, orig.Search, decoded.Search)
	require.NotNil(t, decoded.FromDate)
	assert.True(t, decoded.FromDate.Equal(from))
}

func TestEncodeIsCanonical(t *testing.T) {
	// Same logical filter reached from differently ordered URLs must
	// produce identical cache keys.
	a, _ := url.ParseQuery("status=paid&skip=0&limit=10")
	b, _ := url.ParseQuery("limit=10&status=paid")
	assert.Equal(t, ParseOrderFilter(a).Encode(), ParseOrderFilter(b).Encode())
}

func TestProductFilterStatusFallback(t *testing.T) {
	f := ParseProductFilter(url.Values{"status": {"on-sale"}})
	assert.Empty(t, f.Status)

	f = ParseProductFilter(url.Values{"status": {"published"}})
	assert.Equal(t, models.ProductPublished, f.Status)
	assert.Equal(t, 50, f.Limit)
}

func TestInventoryFilterTypeFallback(t *testing.T) {
	f := ParseInventoryFilter(url.Values{"tx_type": {"restock"}})
	assert.Empty(t, f.Type)

	f = ParseInventoryFilter(url.Values{"tx_type": {"adjustment"}})
	assert.Equal(t, models.TxAdjustment, f.Type)
}
