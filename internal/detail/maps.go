package detail

import "github.com/fairyhunter13/tour-catalog-service/internal/model"

const (
	DefaultContainerID   = "pickup-area-map"
	DefaultMeetingZoom   = 16
	DefaultPickupRadiusM = 5150
	pickupInitialZoom    = 12

	TileURL         = "https://{s}.basemaps.cartocdn.com/rastertiles/voyager/{z}/{x}/{y}{r}.png"
	TileAttribution = `&copy; <a href="https://www.openstreetmap.org/copyright">OpenStreetMap</a> &copy; <a href="https://carto.com/">CARTO</a>`
	TileSubdomains  = "abcd"
	TileMaxZoom     = 20
)

// DefaultPickupCenter is the downtown Boston pickup origin.
var DefaultPickupCenter = model.LatLng{Lat: 42.367069, Lng: -71.05655}

// MapView describes a non-scrolling embedded map.
type MapView struct {
	ContainerID     string        `json:"containerId"`
	Center          model.LatLng  `json:"center"`
	Zoom            int           `json:"zoom"`
	FitCircle       bool          `json:"fitCircle"`
	ScrollWheelZoom bool          `json:"scrollWheelZoom"`
	TileURL         string        `json:"tileUrl"`
	Attribution     string        `json:"attribution"`
	Subdomains      string        `json:"subdomains"`
	MaxZoom         int           `json:"maxZoom"`
	Marker          *model.LatLng `json:"marker,omitempty"`
	Circle          *Circle       `json:"circle,omitempty"`
	CenterDot       *Dot          `json:"centerDot,omitempty"`
}

type Circle struct {
	RadiusMeters float64 `json:"radiusMeters"`
	Color        string  `json:"color"`
	Weight       int     `json:"weight"`
	Opacity      float64 `json:"opacity"`
	FillColor    string  `json:"fillColor"`
	FillOpacity  float64 `json:"fillOpacity"`
}

type Dot struct {
	Radius    int    `json:"radius"`
	Color     string `json:"color"`
	FillColor string `json:"fillColor"`
	Weight    int    `json:"weight"`
}

type MeetingPointOptions struct {
	Center      *model.LatLng
	Zoom        int
	ContainerID string
}

// MeetingPointMap pins a fixed meeting location. There is no map without a
// center.
func MeetingPointMap(o MeetingPointOptions) (MapView, bool) {
	if o.Center == nil {
		return MapView{}, false
	}
	v := baseView(o.ContainerID, *o.Center)
	v.Zoom = o.Zoom
	if v.Zoom == 0 {
		v.Zoom = DefaultMeetingZoom
	}
	c := *o.Center
	v.Marker = &c
	return v, true
}

type PickupAreaOptions struct {
	Center       *model.LatLng
	RadiusMeters float64
	ContainerID  string
}

// PickupAreaMap shows the pickup radius around a center, fitted to the
// circle.
func PickupAreaMap(o PickupAreaOptions) MapView {
	center := DefaultPickupCenter
	if o.Center != nil {
		center = *o.Center
	}
	radius := o.RadiusMeters
	if radius == 0 {
		radius = DefaultPickupRadiusM
	}
	v := baseView(o.ContainerID, center)
	v.Zoom = pickupInitialZoom
	v.FitCircle = true
	v.Circle = &Circle{
		RadiusMeters: radius,
		Color:        "#7CAEF4",
		Weight:       2,
		Opacity:      0.8,
		FillColor:    "#7CAEF4",
		FillOpacity:  0.12,
	}
	v.CenterDot = &Dot{Radius: 6, Color: "#172436", FillColor: "#DE5700", Weight: 2}
	return v
}

func baseView(container string, center model.LatLng) MapView {
	if container == "" {
		container = DefaultContainerID
	}
	return MapView{
		ContainerID: container,
		Center:      center,
		TileURL:     TileURL,
		Attribution: TileAttribution,
		Subdomains:  TileSubdomains,
		MaxZoom:     TileMaxZoom,
	}
}
