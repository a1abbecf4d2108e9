package query

import (
	"errors"
	"fmt"
	"net/url"
	"strconv"
	"strings"

	"github.com/fairyhunter13/tour-catalog-service/internal/model"
)

// ErrInvalidSpec wraps every parse failure in this file.
var ErrInvalidSpec = errors.New("invalid query")

// All is the wildcard accepted by the string-valued filters.
const All = "all"

type SortMode string

const (
	SortFeatured    SortMode = "featured"
	SortPriceAsc    SortMode = "price-asc"
	SortPriceDesc   SortMode = "price-desc"
	SortRatingAsc   SortMode = "rating-asc"
	SortRatingDesc  SortMode = "rating-desc"
	SortReviewsAsc  SortMode = "reviews-asc"
	SortReviewsDesc SortMode = "reviews-desc"
	SortDurAsc      SortMode = "dur-asc"
	SortDurDesc     SortMode = "dur-desc"
)

// SortModes lists every mode in display order.
var SortModes = []SortMode{
	SortFeatured, SortPriceAsc, SortPriceDesc, SortRatingAsc, SortRatingDesc,
	SortReviewsAsc, SortReviewsDesc, SortDurAsc, SortDurDesc,
}

// ParseSortMode maps a name to a SortMode. Unknown or empty names fall back
// to featured ordering, matching what the listing widget does.
func ParseSortMode(s string) SortMode {
	m := SortMode(strings.ToLower(strings.TrimSpace(s)))
	if _, ok := comparators[m]; ok {
		return m
	}
	return SortFeatured
}

// Length buckets tours by duration. The ranges share their endpoints: a
// 4 hour tour is both short and half day, a 6 hour one both half and full.
type Length string

const (
	LengthAll   Length = "all"
	LengthShort Length = "short"
	LengthHalf  Length = "half"
	LengthFull  Length = "full"
)

func ParseLength(s string) (Length, error) {
	switch l := Length(strings.ToLower(strings.TrimSpace(s))); l {
	case "", LengthAll:
		return LengthAll, nil
	case LengthShort, LengthHalf, LengthFull:
		return l, nil
	default:
		return "", fmt.Errorf("%w: length %q", ErrInvalidSpec, s)
	}
}

// Match reports whether a duration in hours falls in the bucket.
func (l Length) Match(hours float64) bool {
	switch l {
	case LengthShort:
		return hours <= 4
	case LengthHalf:
		return hours >= 4 && hours <= 6
	case LengthFull:
		return hours >= 6 && hours <= 9
	default:
		return true
	}
}

// ActiveFilter selects on the explicit isActive flag. Tours without the flag
// match neither ActiveTrue nor ActiveFalse.
type ActiveFilter int

const (
	ActiveAll ActiveFilter = iota
	ActiveTrue
	ActiveFalse
)

func ParseActive(s string) (ActiveFilter, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "", All:
		return ActiveAll, nil
	case "true", "1", "yes":
		return ActiveTrue, nil
	case "false", "0", "no":
		return ActiveFalse, nil
	default:
		return ActiveAll, fmt.Errorf("%w: active %q", ErrInvalidSpec, s)
	}
}

func (a ActiveFilter) String() string {
	switch a {
	case ActiveTrue:
		return "true"
	case ActiveFalse:
		return "false"
	default:
		return All
	}
}

// Spec is a listing filter and ordering. The zero value selects every tour
// in featured order.
type Spec struct {
	TourType     model.TourType
	SpecialEvent string
	Length       Length
	MinGuests    int
	MaxGuests    int
	Destinations []string
	Transport    []string
	SKUs         []string
	Active       ActiveFilter
	Sort         SortMode
	TopN         int
}

// ParseValues builds a Spec from URL query parameters:
//
//	type, event, length, minGuests, maxGuests, destination, transport,
//	sku, active, sort, top
//
// List parameters may repeat or hold comma separated values.
func ParseValues(v url.Values) (Spec, error) {
	var (
		s   Spec
		err error
	)
	s.TourType = model.TourType(strings.TrimSpace(v.Get("type")))
	s.SpecialEvent = strings.TrimSpace(v.Get("event"))
	if s.Length, err = ParseLength(v.Get("length")); err != nil {
		return Spec{}, err
	}
	if s.MinGuests, err = nonNegative(v, "minGuests"); err != nil {
		return Spec{}, err
	}
	if s.MaxGuests, err = nonNegative(v, "maxGuests"); err != nil {
		return Spec{}, err
	}
	if s.TopN, err = nonNegative(v, "top"); err != nil {
		return Spec{}, err
	}
	if s.Active, err = ParseActive(v.Get("active")); err != nil {
		return Spec{}, err
	}
	s.Destinations = list(v, "destination", "destinations")
	s.Transport = list(v, "transport")
	s.SKUs = list(v, "sku", "skus")
	s.Sort = ParseSortMode(v.Get("sort"))
	return s, nil
}

func nonNegative(v url.Values, key string) (int, error) {
	raw := strings.TrimSpace(v.Get(key))
	if raw == "" {
		return 0, nil
	}
	n, err := strconv.Atoi(raw)
	if err != nil || n < 0 {
		return 0, fmt.Errorf("%w: %s must be a non-negative integer", ErrInvalidSpec, key)
	}
	return n, nil
}

func list(v url.Values, keys ...string) []string {
	var out []string
	for _, k := range keys {
		for _, raw := range v[k] {
			for _, part := range strings.Split(raw, ",") {
				if p := strings.TrimSpace(part); p != "" {
					out = append(out, p)
				}
			}
		}
	}
	return out
}
