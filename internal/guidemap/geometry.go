package guidemap

import "github.com/fairyhunter13/tour-catalog-service/internal/model"

// DefaultCenter is the North End, used when a guide has no locations.
var DefaultCenter = model.LatLng{Lat: 42.3647, Lng: -71.0542}

// Center is the mean position of locs.
func Center(locs []Location) model.LatLng {
	if len(locs) == 0 {
		return DefaultCenter
	}
	var lat, lng float64
	for _, l := range locs {
		lat += l.Position.Lat
		lng += l.Position.Lng
	}
	n := float64(len(locs))
	return model.LatLng{Lat: lat / n, Lng: lng / n}
}

type Bounds struct {
	SouthWest model.LatLng `json:"southWest"`
	NorthEast model.LatLng `json:"northEast"`
}

// BoundsOf is the smallest box holding every location.
func BoundsOf(locs []Location) (Bounds, bool) {
	if len(locs) == 0 {
		return Bounds{}, false
	}
	b := Bounds{SouthWest: locs[0].Position, NorthEast: locs[0].Position}
	for _, l := range locs[1:] {
		b.SouthWest.Lat = min(b.SouthWest.Lat, l.Position.Lat)
		b.SouthWest.Lng = min(b.SouthWest.Lng, l.Position.Lng)
		b.NorthEast.Lat = max(b.NorthEast.Lat, l.Position.Lat)
		b.NorthEast.Lng = max(b.NorthEast.Lng, l.Position.Lng)
	}
	return b, true
}
