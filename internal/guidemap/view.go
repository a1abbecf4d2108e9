package guidemap

import (
	"slices"

	"github.com/fairyhunter13/tour-catalog-service/internal/model"
)

const (
	tileURL         = "https://{s}.basemaps.cartocdn.com/rastertiles/voyager/{z}/{x}/{y}{r}.png"
	tileAttribution = `&copy; <a href="https://www.openstreetmap.org/copyright">OpenStreetMap</a> contributors &copy; <a href="https://carto.com/attributions">CARTO</a>`
)

type Marker struct {
	Location  Location `json:"location"`
	Icon      Icon     `json:"icon"`
	Popup     Popup    `json:"popup"`
	ListLabel string   `json:"listLabel"`
}

// MapView is everything needed to draw one guide map.
type MapView struct {
	GuideID     string       `json:"guideId"`
	Name        string       `json:"name"`
	Center      model.LatLng `json:"center"`
	Zoom        int          `json:"zoom"`
	MinZoom     int          `json:"minZoom"`
	MaxZoom     int          `json:"maxZoom"`
	Bounds      Bounds       `json:"bounds"`
	FitPadding  int          `json:"fitPadding"`
	FitMaxZoom  int          `json:"fitMaxZoom"`
	TileURL     string       `json:"tileUrl"`
	Attribution string       `json:"attribution"`
	Markers     []Marker     `json:"markers"`
	Highlighted string       `json:"highlighted,omitempty"`
}

// Build lays out a guide's markers. A guide without a single usable
// location has no map.
func Build(g Guide) (MapView, bool) {
	locs := Collect(g.Locations)
	bounds, ok := BoundsOf(locs)
	if !ok {
		return MapView{}, false
	}
	v := MapView{
		GuideID:     g.ID,
		Name:        g.Name,
		Center:      Center(locs),
		Zoom:        DefaultZoom,
		MinZoom:     MinZoom,
		MaxZoom:     MaxZoom,
		Bounds:      bounds,
		FitPadding:  FitPadding,
		FitMaxZoom:  FitMaxZoom,
		TileURL:     tileURL,
		Attribution: tileAttribution,
		Markers:     make([]Marker, 0, len(locs)),
	}
	for _, l := range locs {
		v.Markers = append(v.Markers, Marker{
			Location:  l,
			Icon:      IconFor(l, false),
			Popup:     PopupFor(l),
			ListLabel: ListItemLabel(l),
		})
	}
	return v, true
}

// Focus returns v as it looks after the location id was picked from the
// list: panned to it at FocusZoom with only its marker highlighted.
func Focus(v MapView, id string) (MapView, bool) {
	locs := make([]Location, len(v.Markers))
	for i, m := range v.Markers {
		locs[i] = m.Location
	}
	st := NewState(locs)
	view, ok := st.PanTo(id)
	if !ok {
		return v, false
	}
	out := v
	out.Markers = slices.Clone(v.Markers)
	for i := range out.Markers {
		out.Markers[i].Icon, _ = st.IconOf(out.Markers[i].Location.ID)
	}
	out.Center, out.Zoom = view.Center, view.Zoom
	out.Highlighted, _ = st.Highlighted()
	return out, true
}
