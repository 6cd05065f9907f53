package services

import (
	"cmp"
	"slices"
	"strings"
)

// ListOptions narrows and orders a list response.
type ListOptions struct {
	Search     string
	SortBy     string
	Descending bool
}

// matchesAny reports whether query occurs case-insensitively in any field.
// An empty query matches everything.
func matchesAny(query string, fields ...string) bool {
	if query == "" {
		return true
	}
	q := strings.ToLower(query)
	for _, f := range fields {
		if strings.Contains(strings.ToLower(f), q) {
			return true
		}
	}
	return false
}

// sortBy stable-sorts items by key.
func sortBy[T any, K cmp.Ordered](items []T, key func(T) K, descending bool) {
	slices.SortStableFunc(items, func(a, b T) int {
		if descending {
			return cmp.Compare(key(b), key(a))
		}
		return cmp.Compare(key(a), key(b))
	})
}
