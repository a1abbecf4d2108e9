// Package detail computes the dynamic parts of a tour detail page.
package detail

import (
	"cmp"
	"slices"
	"strconv"

	"github.com/fairyhunter13/tour-catalog-service/internal/model"
)

const DefaultRelatedLimit = 3

// customSKU is typed private in the catalog but is never a suggestion.
const customSKU = "Custom"

type RelatedTour struct {
	SKU       string `json:"sku"`
	Title     string `json:"title"`
	Link      string `json:"link"`
	Image     string `json:"image"`
	ImgAlt    string `json:"imgAlt"`
	ImgStyle  string `json:"imgStyle,omitempty"`
	Info      string `json:"info"`
	Relevance int    `json:"relevance"`
}

// Related suggests up to limit other tours for the tour with the given sku,
// most shared destinations first and then by ranking. Tours must be
// explicitly active; custom and self-guided tours are never suggested.
// An unknown sku yields nil.
func Related(tours []model.Tour, sku string, limit int) []RelatedTour {
	if limit <= 0 {
		limit = DefaultRelatedLimit
	}
	i := slices.IndexFunc(tours, func(t model.Tour) bool { return t.SKU == sku })
	if i < 0 {
		return nil
	}
	current := tours[i]

	type scored struct {
		tour      model.Tour
		relevance int
	}
	var candidates []scored
	for _, t := range tours {
		if t.SKU == sku || t.SKU == customSKU || !t.Status.Is(true) {
			continue
		}
		if t.Type == model.TypeCustom || t.Type == model.TypeSelfGuided {
			continue
		}
		n := 0
		for _, d := range t.Destinations {
			if slices.Contains(current.Destinations, d) {
				n++
			}
		}
		candidates = append(candidates, scored{t, n})
	}
	slices.SortStableFunc(candidates, func(a, b scored) int {
		if c := cmp.Compare(b.relevance, a.relevance); c != 0 {
			return c
		}
		return cmp.Compare(a.tour.Ranking, b.tour.Ranking)
	})
	if len(candidates) > limit {
		candidates = candidates[:limit]
	}

	out := make([]RelatedTour, 0, len(candidates))
	for _, c := range candidates {
		t := c.tour
		alt := t.ImgAlt
		if alt == "" {
			alt = t.Title
		}
		info := strconv.FormatFloat(t.DurationVal, 'f', -1, 64) + "h • From $" + strconv.FormatFloat(t.Price, 'f', -1, 64)
		if t.PriceType != "" {
			info += " " + t.PriceType
		}
		out = append(out, RelatedTour{
			SKU:       t.SKU,
			Title:     t.Title,
			Link:      t.Link,
			Image:     t.Image,
			ImgAlt:    alt,
			ImgStyle:  t.ImgStyle,
			Info:      info,
			Relevance: c.relevance,
		})
	}
	return out
}
