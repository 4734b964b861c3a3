package services

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestSlugify(t *testing.T) {
	cases := []struct {
		in   string
		want string
	}{
		{"Blue Mug #3", "blue-mug-3"},
		{"  Ceramic_Vase -- large ", "ceramic-vase-large"},
		{"Café au Lait", "caf-au-lait"},
		{"UPPER", "upper"},
		{"!!!", "product"},
		{"", "product"},
	}
	for _, tc := range cases {
		assert.Equal(t, tc.want, Slugify(tc.in), "input %q", tc.in)
	}
}

func TestSlugBaseStripsHexSuffix(t *testing.T) {
	assert.Equal(t, "blue-mug", slugBase("blue-mug-a1b2c"))
	assert.Equal(t, "blue-mug", slugBase("blue-mug-00000"))
}

func TestSlugBaseKeepsNonSuffixedSlugs(t *testing.T) {
	assert.Equal(t, "blue-mug", slugBase("blue-mug"))
	assert.Equal(t, "blue-mugxy", slugBase("blue-mugxy"))
	// last segment is five chars but not hex
	assert.Equal(t, "blue-mugsy", slugBase("blue-mugsy"))
	assert.Equal(t, "plain", slugBase("plain"))
}

func TestUniqueProductSlugRetriesUntilFree(t *testing.T) {
	calls := 0
	slug := uniqueProductSlug("mug", func(candidate string) bool {
		calls++
		return calls < 3 // first two candidates taken
	})
	assert.True(t, strings.HasPrefix(slug, "mug-"))
	assert.Len(t, slug, len("mug-")+5)
	assert.Equal(t, 3, calls)
}

func TestUniqueProductSlugEmptyBase(t *testing.T) {
	slug := uniqueProductSlug("", func(string) bool { return false })
	assert.True(t, strings.HasPrefix(slug, "product-"))
}
