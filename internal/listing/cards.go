// Package listing turns query results into the data a tour card shows.
package listing

import (
	"fmt"
	"math"
	"strconv"

	"github.com/fairyhunter13/tour-catalog-service/internal/model"
)

// ComingSoon replaces the details of tours that are explicitly inactive.
const ComingSoon = "Full Details Coming Soon"

// CustomTitle is the catalog entry whose price is a flat starting rate.
const CustomTitle = "Custom Tours"

// Card is one entry of a listing.
type Card struct {
	SKU         string   `json:"sku"`
	Title       string   `json:"title"`
	Description string   `json:"description"`
	Image       string   `json:"image"`
	ImgAlt      string   `json:"imgAlt,omitempty"`
	ImgStyle    string   `json:"imgStyle,omitempty"`
	Link        string   `json:"link"`
	Active      bool     `json:"active"`
	Details     *Details `json:"details,omitempty"`
	Placeholder string   `json:"placeholder,omitempty"`
}

// Details is nil on inactive cards.
type Details struct {
	Duration    string `json:"duration"`
	Guests      string `json:"guests"`
	Price       string `json:"price"`
	ShowReviews bool   `json:"showReviews"`
	// Review fields are empty when ShowReviews is false.
	Rating      string  `json:"rating,omitempty"`
	ReviewCount string  `json:"reviewCount,omitempty"`
	StarPercent float64 `json:"starPercent,omitempty"`
	StarsLabel  string  `json:"starsLabel,omitempty"`
}

// Cards builds one card per tour, in order. ready reports whether review
// augmentation has finished; before that review counts carry a "+".
func Cards(tours []model.Tour, ready bool) []Card {
	out := make([]Card, 0, len(tours))
	for _, t := range tours {
		out = append(out, CardFor(t, ready))
	}
	return out
}

func CardFor(t model.Tour, ready bool) Card {
	c := Card{
		SKU:         t.SKU,
		Title:       t.Title,
		Description: t.Description,
		Image:       t.Image,
		ImgAlt:      t.ImgAlt,
		ImgStyle:    t.ImgStyle,
		Link:        t.Link,
		Active:      t.Status.ActiveOrUnset(),
	}
	if !c.Active {
		c.Placeholder = ComingSoon
		return c
	}
	d := &Details{
		Duration: DurationLabel(t.DurationVal),
		Guests:   number(t.GuestMin) + "-" + number(t.GuestMax),
		Price:    PriceLabel(t),
	}
	if t.Type != model.TypeSelfGuided {
		d.ShowReviews = true
		d.Rating = RatingLabel(t.Rating, t.NumReviews)
		d.ReviewCount = ReviewCountLabel(t.NumReviews, ready)
		d.StarPercent = t.Rating / 5 * 100
		d.StarsLabel = number(t.Rating) + " out of 5 stars"
	}
	c.Details = d
	return c
}

// DurationLabel renders whole hours as "3h" and fractions as "2h30m".
func DurationLabel(hours float64) string {
	whole, frac := math.Modf(hours)
	if frac == 0 {
		return number(hours) + "h"
	}
	return fmt.Sprintf("%.0fh%dm", whole, int(math.Round(frac*60)))
}

func PriceLabel(t model.Tour) string {
	if t.Title == CustomTitle {
		return "$ " + number(t.Price)
	}
	return "$" + number(t.Price) + "+ " + t.PriceType
}

// RatingLabel is "-" for unrated tours, otherwise one decimal place.
func RatingLabel(rating float64, numReviews int) string {
	if rating == 0 && numReviews == 0 {
		return "-"
	}
	return strconv.FormatFloat(rating, 'f', 1, 64)
}

func ReviewCountLabel(n int, ready bool) string {
	switch {
	case n == 0:
		return "-"
	case ready:
		return strconv.Itoa(n)
	default:
		return strconv.Itoa(n) + "+"
	}
}

func CountLabel(n int) string {
	return fmt.Sprintf("Showing %d tour(s)", n)
}

func number(f float64) string {
	return strconv.FormatFloat(f, 'f', -1, 64)
}
