package utils

import "strings"

// NormalizeName is the canonical form used for natural-key comparison.
// Repositories apply the same transform in SQL (LOWER(TRIM(col))) so the
// duplicate check and the stored value agree.
func NormalizeName(name string) string {
	return strings.ToLower(strings.TrimSpace(name))
}
