// Package hubmap holds the Boston neighborhood lookup and the highlight
// state of the hub map and its sidebar.
package hubmap

import "github.com/fairyhunter13/tour-catalog-service/internal/model"

type Status string

const (
	StatusActive      Status = "active"
	StatusComingSoon  Status = "comingSoon"
	StatusGreenSpace  Status = "greenSpace"
	StatusUnavailable Status = "unavailable"
)

// Neighborhood is keyed by the boundary feature name.
type Neighborhood struct {
	Name        string `json:"name"`
	Status      Status `json:"status"`
	Slug        string `json:"slug,omitempty"`
	Link        string `json:"link,omitempty"`
	DisplayName string `json:"displayName,omitempty"`
}

// Label is the name shown to visitors.
func (n Neighborhood) Label() string {
	if n.DisplayName != "" {
		return n.DisplayName
	}
	return n.Name
}

// MapConfig is the initial view of the hub map.
type MapConfig struct {
	Center      model.LatLng `json:"center"`
	Zoom        int          `json:"zoom"`
	MinZoom     int          `json:"minZoom"`
	MaxZoom     int          `json:"maxZoom"`
	TileURL     string       `json:"tileUrl"`
	TileMaxZoom int          `json:"tileMaxZoom"`
	Attribution string       `json:"attribution"`
}

var DefaultMapConfig = MapConfig{
	Center:      model.LatLng{Lat: 42.35823, Lng: -71.06369},
	Zoom:        12,
	MinZoom:     11,
	MaxZoom:     16,
	TileURL:     "https://{s}.basemaps.cartocdn.com/rastertiles/voyager/{z}/{x}/{y}{r}.png",
	TileMaxZoom: 19,
	Attribution: `&copy; <a href="https://www.openstreetmap.org/copyright">OpenStreetMap</a> contributors &copy; <a href="https://carto.com/">CARTO</a>`,
}

func guide(status Status, slug string) Neighborhood {
	return Neighborhood{Status: status, Slug: slug, Link: "/neighborhood-guides/" + slug}
}

var neighborhoods = map[string]Neighborhood{
	"North End": guide(StatusActive, "north-end"),

	"Back Bay":                      guide(StatusComingSoon, "back-bay"),
	"Beacon Hill":                   guide(StatusComingSoon, "beacon-hill"),
	"Charlestown":                   guide(StatusComingSoon, "charlestown"),
	"Chinatown":                     guide(StatusComingSoon, "chinatown"),
	"Dorchester":                    guide(StatusComingSoon, "dorchester"),
	"Downtown (Theater District)":   guide(StatusComingSoon, "downtown"),
	"Downtown Crossing":             guide(StatusComingSoon, "downtown"),
	"Downtown (Financial District)": guide(StatusComingSoon, "downtown"),
	"Downtown (Government Center)":  guide(StatusComingSoon, "downtown"),
	"East Boston":                   guide(StatusComingSoon, "east-boston"),
	"Fenway":                        withDisplay(guide(StatusComingSoon, "fenway-kenmore"), "Fenway-Kenmore"),
	"Jamaica Plain":                 guide(StatusComingSoon, "jamaica-plain"),
	"South Boston Waterfront":       withDisplay(guide(StatusComingSoon, "seaport"), "Seaport"),
	"South Boston":                  guide(StatusComingSoon, "south-boston"),
	"South End":                     guide(StatusComingSoon, "south-end"),
	"West End":                      guide(StatusComingSoon, "west-end"),

	"Boston Common/Public Garden": {Status: StatusGreenSpace},
	"The Esplanade/Charles River": {Status: StatusGreenSpace},
	"The Fens":                    {Status: StatusGreenSpace},
	"Riverway":                    {Status: StatusGreenSpace},

	"Allston":               {Status: StatusUnavailable},
	"Brighton":              {Status: StatusUnavailable},
	"Hyde Park":             {Status: StatusUnavailable},
	"Longwood":              {Status: StatusUnavailable},
	"Mattapan":              {Status: StatusUnavailable},
	"Mission Hill":          {Status: StatusUnavailable},
	"Roslindale":            {Status: StatusUnavailable},
	"Roxbury":               {Status: StatusUnavailable},
	"Leather District":      {Status: StatusUnavailable},
	"Symphony/Northeastern": {Status: StatusUnavailable},
	"West Roxbury":          {Status: StatusUnavailable},
}

func withDisplay(n Neighborhood, display string) Neighborhood {
	n.DisplayName = display
	return n
}

// Lookup returns the entry for a boundary name.
func Lookup(name string) (Neighborhood, bool) {
	n, ok := neighborhoods[name]
	if !ok {
		return Neighborhood{}, false
	}
	n.Name = name
	return n, true
}

// Names lists every neighborhood in the table, unordered.
func Names() []string {
	out := make([]string, 0, len(neighborhoods))
	for name := range neighborhoods {
		out = append(out, name)
	}
	return out
}

// Tooltip is the hover label of a map region.
func Tooltip(name string) string {
	n, ok := Lookup(name)
	if !ok {
		return name
	}
	switch n.Status {
	case StatusComingSoon:
		return n.Label() + " (Coming Soon)"
	case StatusUnavailable:
		return n.Label() + " (Not Available)"
	default:
		return n.Label()
	}
}

// Announcement is the screen reader text for a highlighted region.
func Announcement(name string) string {
	n, ok := Lookup(name)
	if !ok {
		return name
	}
	switch n.Status {
	case StatusActive:
		return n.Label() + " — click to view guide"
	case StatusComingSoon:
		return n.Label() + " — coming soon"
	case StatusGreenSpace:
		return n.Label() + " — green space"
	default:
		return n.Label() + " — not available"
	}
}

// Navigate returns the guide link of an active region.
func Navigate(name string) (string, bool) {
	n, ok := Lookup(name)
	if !ok || n.Status != StatusActive || n.Link == "" {
		return "", false
	}
	return n.Link, true
}
