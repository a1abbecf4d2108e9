package detail

import (
	"fmt"
	"math"
	"strconv"
	"unicode/utf8"

	"golang.org/x/text/cases"
	"golang.org/x/text/language"

	"github.com/fairyhunter13/tour-catalog-service/internal/model"
)

// Facts are the header values of a detail page. Empty fields are left as
// authored in the page.
type Facts struct {
	Rating      string `json:"rating,omitempty"`
	Reviews     string `json:"reviews,omitempty"`
	Price       string `json:"price,omitempty"`
	PriceSuffix string `json:"priceSuffix,omitempty"`
	Type        string `json:"type,omitempty"`
	GroupSize   string `json:"groupSize,omitempty"`
	Duration    string `json:"duration,omitempty"`
}

var upper = cases.Upper(language.English)

func FactsFor(t model.Tour) Facts {
	var f Facts
	if t.Rating != 0 {
		f.Rating = strconv.FormatFloat(t.Rating, 'f', 1, 64)
	}
	if t.NumReviews != 0 {
		f.Reviews = strconv.Itoa(t.NumReviews)
	}
	if t.Price != 0 {
		f.Price = strconv.FormatFloat(t.Price, 'f', -1, 64)
	}
	f.PriceSuffix = t.PriceType
	f.Type = capitalize(string(t.Type))
	if t.GuestMin != 0 || t.GuestMax != 0 {
		f.GroupSize = formatNumber(t.GuestMin) + " to " + formatNumber(t.GuestMax)
	}
	if t.DurationVal != 0 {
		f.Duration = HoursMinutes(t.DurationVal)
	}
	return f
}

// HoursMinutes renders 2.5 as "2h 30m" and 3 as "3h".
func HoursMinutes(hours float64) string {
	h := math.Floor(hours)
	m := int(math.Round((hours - h) * 60))
	if m > 0 {
		return fmt.Sprintf("%.0fh %dm", h, m)
	}
	return fmt.Sprintf("%.0fh", h)
}

// capitalize upper-cases the first letter only, so "self-guided" becomes
// "Self-guided".
func capitalize(s string) string {
	if s == "" {
		return ""
	}
	_, n := utf8.DecodeRuneInString(s)
	return upper.String(s[:n]) + s[n:]
}

func formatNumber(f float64) string {
	return strconv.FormatFloat(f, 'f', -1, 64)
}
