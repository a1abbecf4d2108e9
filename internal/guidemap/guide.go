// Package guidemap builds the point-of-interest map of a neighborhood
// guide page.
package guidemap

import (
	"errors"
	"fmt"
	"os"
	"regexp"
	"strconv"
	"strings"

	"gopkg.in/yaml.v3"

	"github.com/fairyhunter13/tour-catalog-service/internal/model"
)

var ErrDuplicateGuide = errors.New("duplicate guide id")

const (
	CategoryRestaurant = "restaurant"
	CategoryAttraction = "attraction"

	previewLength = 100
)

// Guide is one neighborhood guide as authored.
type Guide struct {
	ID        string        `yaml:"id" json:"id"`
	Name      string        `yaml:"name" json:"name"`
	Locations []RawLocation `yaml:"locations" json:"locations"`
}

// RawLocation keeps coordinates as text; pages author them as either
// numbers or strings.
type RawLocation struct {
	ID          string `yaml:"id" json:"id"`
	Name        string `yaml:"name" json:"name,omitempty"`
	Description string `yaml:"description" json:"description,omitempty"`
	Category    string `yaml:"category" json:"category,omitempty"`
	OurPick     bool   `yaml:"ourPick" json:"ourPick,omitempty"`
	Lat         string `yaml:"lat" json:"lat"`
	Lng         string `yaml:"lng" json:"lng"`
}

// Location is a mappable point.
type Location struct {
	ID          string       `json:"id"`
	Position    model.LatLng `json:"position"`
	Name        string       `json:"name"`
	Description string       `json:"description"`
	Category    string       `json:"category"`
	OurPick     bool         `json:"ourPick"`
}

// Collect converts raw locations, dropping those without an id or whose
// coordinates do not parse.
func Collect(raw []RawLocation) []Location {
	out := make([]Location, 0, len(raw))
	for _, r := range raw {
		if r.ID == "" {
			continue
		}
		lat, okLat := leadingFloat(r.Lat)
		lng, okLng := leadingFloat(r.Lng)
		if !okLat || !okLng {
			continue
		}
		l := Location{
			ID:       r.ID,
			Position: model.LatLng{Lat: lat, Lng: lng},
			Name:     strings.TrimSpace(r.Name),
			Category: r.Category,
			OurPick:  r.OurPick,
		}
		if l.Category == "" {
			l.Category = CategoryRestaurant
		}
		if l.Name == "" {
			l.Name = r.ID
		}
		if d := strings.TrimSpace(r.Description); d != "" {
			l.Description = preview(d)
		}
		out = append(out, l)
	}
	return out
}

// preview cuts to previewLength characters and always appends an ellipsis.
func preview(s string) string {
	r := []rune(s)
	if len(r) > previewLength {
		r = r[:previewLength]
	}
	return string(r) + "..."
}

var leadingNumber = regexp.MustCompile(`^[+-]?(\d+\.?\d*|\.\d+)([eE][+-]?\d+)?`)

func leadingFloat(s string) (float64, bool) {
	m := leadingNumber.FindString(strings.TrimSpace(s))
	if m == "" {
		return 0, false
	}
	f, err := strconv.ParseFloat(m, 64)
	return f, err == nil
}

// LoadFile reads guides from YAML, either a list or {guides: [...]}.
func LoadFile(path string) ([]Guide, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("read guides: %w", err)
	}
	var doc struct {
		Guides []Guide `yaml:"guides"`
	}
	var guides []Guide
	if err := yaml.Unmarshal(data, &guides); err != nil {
		if err2 := yaml.Unmarshal(data, &doc); err2 != nil {
			return nil, fmt.Errorf("decode guides %s: %w", path, err2)
		}
		guides = doc.Guides
	}
	seen := make(map[string]bool, len(guides))
	for i, g := range guides {
		if g.ID == "" {
			return nil, fmt.Errorf("guide %d: missing id", i)
		}
		if seen[g.ID] {
			return nil, fmt.Errorf("%w: %s", ErrDuplicateGuide, g.ID)
		}
		seen[g.ID] = true
	}
	return guides, nil
}
