// Package reviews fetches external rating data and merges it into tours.
package reviews

import (
	"regexp"
	"strconv"
	"strings"

	"github.com/fairyhunter13/tour-catalog-service/internal/model"
)

var (
	variantSuffix = regexp.MustCompile(`_\d+$`)
	leadingFloat  = regexp.MustCompile(`^[+-]?(\d+\.?\d*|\.\d+)([eE][+-]?\d+)?`)
	leadingInt    = regexp.MustCompile(`^[+-]?\d+`)
)

// BaseSKU strips a trailing "_<digits>" variant suffix.
func BaseSKU(sku string) string {
	return variantSuffix.ReplaceAllString(sku, "")
}

// Match returns the first entry that matches sku by exact sku, by baseSku
// against the stripped sku, or by sku against the stripped sku.
func Match(sku string, entries []model.ReviewEntry) (model.ReviewEntry, bool) {
	base := BaseSKU(sku)
	for _, e := range entries {
		if e.SKU != "" && e.SKU == sku {
			return e, true
		}
		if e.BaseSKU != "" && e.BaseSKU == base {
			return e, true
		}
		if e.SKU != "" && e.SKU == base {
			return e, true
		}
	}
	return model.ReviewEntry{}, false
}

// MergeTour applies the matching review entry to t. The returned bool is
// true when a match defining both rating and numReviews was applied. The
// original rating and review count are captured before the first overwrite
// only.
func MergeTour(t model.Tour, entries []model.ReviewEntry) (model.Tour, bool) {
	e, ok := Match(t.SKU, entries)
	if !ok || !e.HasRating || !e.HasNumReviews {
		return t, false
	}
	if t.OriginalRating == nil {
		r, n := t.Rating, t.NumReviews
		t.OriginalRating = &r
		t.OriginalNumReviews = &n
	}
	if r, ok := parseLeadingFloat(e.Rating); ok && r != 0 {
		t.Rating = r
	}
	if n, ok := parseLeadingInt(e.NumReviews); ok && n != 0 {
		t.NumReviews = n
	}
	return t, true
}

// Merge returns a copy of tours with review data applied. A nil entries
// slice means the review source produced nothing usable and tours is
// returned as is.
func Merge(tours []model.Tour, entries []model.ReviewEntry) []model.Tour {
	if entries == nil {
		return tours
	}
	out := make([]model.Tour, len(tours))
	for i, t := range tours {
		out[i], _ = MergeTour(t.Clone(), entries)
	}
	return out
}

// parseLeadingFloat reads the longest decimal prefix of s, so "4.8 stars"
// yields 4.8.
func parseLeadingFloat(s string) (float64, bool) {
	m := leadingFloat.FindString(strings.TrimSpace(s))
	if m == "" {
		return 0, false
	}
	f, err := strconv.ParseFloat(m, 64)
	if err != nil {
		return 0, false
	}
	return f, true
}

// parseLeadingInt reads the leading base-10 integer of s, so "55.0" yields 55.
func parseLeadingInt(s string) (int, bool) {
	m := leadingInt.FindString(strings.TrimSpace(s))
	if m == "" {
		return 0, false
	}
	n, err := strconv.Atoi(m)
	if err != nil {
		return 0, false
	}
	return n, true
}
