package cache

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestKeyBuilders(t *testing.T) {
	assert.Equal(t, "list:products?limit=50&skip=0", ListKey("products", "limit=50&skip=0"))
	assert.Equal(t, "item:orders:abc", ItemKey("orders", "abc"))
	assert.Equal(t, "idx:products", indexKey("products"))
}

func TestNilClientIsNoop(t *testing.T) {
	var c *Client
	ctx := context.Background()

	var dest map[string]string
	assert.False(t, c.GetJSON(ctx, "list:products?skip=0", &dest))
	c.SetJSON(ctx, "products", "list:products?skip=0", map[string]string{"a": "b"})
	c.Invalidate(ctx, "products", "orders")
	assert.NoError(t, c.Close())
}
