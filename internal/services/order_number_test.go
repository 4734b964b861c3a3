package services

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func TestOrderNumberPrefix(t *testing.T) {
	at := time.Date(2025, 9, 1, 15, 4, 5, 0, time.UTC)
	assert.Equal(t, "ORD20250901", orderNumberPrefix(at))
}

func TestOrderNumberPrefixUsesUTC(t *testing.T) {
	// 23:30 in UTC+7 is already the next day locally but not in UTC
	loc := time.FixedZone("UTC+7", 7*3600)
	at := time.Date(2025, 9, 2, 1, 30, 0, 0, loc)
	assert.Equal(t, "ORD20250901", orderNumberPrefix(at))
}

func TestNextOrderNumber(t *testing.T) {
	assert.Equal(t, "ORD20250901-0001", nextOrderNumber("ORD20250901", ""))
	assert.Equal(t, "ORD20250901-0008", nextOrderNumber("ORD20250901", "ORD20250901-0007"))
	assert.Equal(t, "ORD20250901-0100", nextOrderNumber("ORD20250901", "ORD20250901-0099"))
	// unreadable suffix restarts the counter
	assert.Equal(t, "ORD20250901-0001", nextOrderNumber("ORD20250901", "ORD20250901-xyz"))
}
