package shared

import (
	"strings"
)

// BuildCacheKey joins key parts with the conventional ":" separator.
func BuildCacheKey(parts ...string) string {
	return strings.Join(parts, ":")
}

// Plural returns the plural suffix for a count, matching the wording used in
// user-facing warnings ("1 room", "2 rooms").
func Plural(count int) string {
	if count == 1 {
		return ""
	}

	return "s"
}
