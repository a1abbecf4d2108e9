// Package query filters and orders tour listings.
package query

import (
	"cmp"
	"slices"

	"github.com/fairyhunter13/tour-catalog-service/internal/model"
)

// Run returns the tours matching every active predicate of s, ordered by
// s.Sort and truncated to s.TopN when positive. tours is not modified; the
// result shares no memory with it.
func Run(tours []model.Tour, s Spec) []model.Tour {
	out := make([]model.Tour, 0, len(tours))
	for _, t := range tours {
		if Matches(t, s) {
			out = append(out, t.Clone())
		}
	}
	slices.SortStableFunc(out, comparatorFor(s.Sort))
	if s.TopN > 0 && len(out) > s.TopN {
		out = out[:s.TopN]
	}
	return out
}

// Matches reports whether t passes every filter in s.
func Matches(t model.Tour, s Spec) bool {
	if s.TourType != "" && s.TourType != All && t.Type != s.TourType {
		return false
	}
	if s.SpecialEvent != "" && s.SpecialEvent != All && !t.SpecialEvents[s.SpecialEvent] {
		return false
	}
	if !s.Length.Match(t.DurationVal) {
		return false
	}
	if s.MinGuests != 0 && t.GuestMax < float64(s.MinGuests) {
		return false
	}
	if s.MaxGuests != 0 && t.GuestMin > float64(s.MaxGuests) {
		return false
	}
	if len(s.Destinations) > 0 && !overlaps(t.Destinations, s.Destinations) {
		return false
	}
	if len(s.Transport) > 0 && !overlaps(t.Transport, s.Transport) {
		return false
	}
	if len(s.SKUs) > 0 && !slices.Contains(s.SKUs, t.SKU) {
		return false
	}
	switch s.Active {
	case ActiveTrue:
		return t.Status.Is(true)
	case ActiveFalse:
		return t.Status.Is(false)
	}
	return true
}

func overlaps(have, want []string) bool {
	for _, h := range have {
		if slices.Contains(want, h) {
			return true
		}
	}
	return false
}

type key struct {
	value func(model.Tour) float64
	desc  bool
}

var (
	price    = func(t model.Tour) float64 { return t.Price }
	rating   = func(t model.Tour) float64 { return t.Rating }
	reviews  = func(t model.Tour) float64 { return float64(t.NumReviews) }
	duration = func(t model.Tour) float64 { return t.DurationVal }
	ranking  = func(t model.Tour) float64 { return float64(t.Ranking) }
)

// comparators holds the tie-break chain for each mode after the shared
// active-first key.
var comparators = map[SortMode][]key{
	SortFeatured:    {{ranking, false}},
	SortPriceAsc:    {{price, false}, {rating, true}, {reviews, true}},
	SortPriceDesc:   {{price, true}, {rating, true}, {reviews, true}},
	SortRatingAsc:   {{rating, false}, {reviews, false}},
	SortRatingDesc:  {{rating, true}, {reviews, true}},
	SortReviewsAsc:  {{reviews, false}, {rating, false}},
	SortReviewsDesc: {{reviews, true}, {rating, true}},
	SortDurAsc:      {{duration, false}, {rating, true}, {reviews, true}},
	SortDurDesc:     {{duration, true}, {rating, true}, {reviews, true}},
}

func comparatorFor(m SortMode) func(a, b model.Tour) int {
	keys, ok := comparators[m]
	if !ok {
		keys = comparators[SortFeatured]
	}
	return func(a, b model.Tour) int {
		if c := cmp.Compare(inactiveRank(a), inactiveRank(b)); c != 0 {
			return c
		}
		for _, k := range keys {
			c := cmp.Compare(k.value(a), k.value(b))
			if k.desc {
				c = -c
			}
			if c != 0 {
				return c
			}
		}
		return 0
	}
}

// inactiveRank is 0 for tours that sort as active, 1 for explicit inactive.
func inactiveRank(t model.Tour) int {
	if t.Status.ActiveOrUnset() {
		return 0
	}
	return 1
}
