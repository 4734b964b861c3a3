package services

import (
	"regexp"
	"strings"

	"github.com/google/uuid"
)

var (
	slugStrip    = regexp.MustCompile(`[^\w\s-]`)
	slugCollapse = regexp.MustCompile(`[\s_-]+`)
	hexDigits    = "0123456789abcdef"
)

// Slugify lowercases, strips punctuation and collapses separators into
// hyphens. Empty input degrades to "product".
func Slugify(value string) string {
	value = strings.ToLower(strings.TrimSpace(value))
	value = slugStrip.ReplaceAllString(value, "")
	value = slugCollapse.ReplaceAllString(value, "-")
	value = strings.Trim(value, "-")
	if value == "" {
		return "product"
	}
	return value
}

// slugBase strips the random 5-hex uniqueness suffix if present, so a rename
// check compares base against base.
func slugBase(slug string) string {
	i := strings.LastIndex(slug, "-")
	if i < 0 {
		return slug
	}
	suffix := slug[i+1:]
	if len(suffix) != 5 {
		return slug
	}
	for _, ch := range strings.ToLower(suffix) {
		if !strings.ContainsRune(hexDigits, ch) {
			return slug
		}
	}
	return slug[:i]
}

func slugSuffix() string {
	return strings.ReplaceAll(uuid.NewString(), "-", "")[:5]
}

// uniqueProductSlug appends random suffixes until the candidate is free.
func uniqueProductSlug(base string, taken func(slug string) bool) string {
	if base == "" {
		base = "product"
	}
	for {
		candidate := base + "-" + slugSuffix()
		if !taken(candidate) {
			return candidate
		}
	}
}
