// Package model defines domain types used by the service.
package model

// TourType classifies how a tour is run. Catalog input may carry values
// outside the known set; those are kept verbatim.
type TourType string

const (
	TypePrivate    TourType = "private"
	TypeShared     TourType = "shared"
	TypeSelfGuided TourType = "self-guided"
	TypeCustom     TourType = "custom"
)

// Status carries the live state of a tour. IsActive is tri-state: a catalog
// entry may omit it entirely.
type Status struct {
	IsActive *bool `json:"isActive,omitempty" yaml:"isActive,omitempty"`
}

// ActiveOrUnset reports whether the tour counts as active for ordering:
// anything but an explicit false.
func (s Status) ActiveOrUnset() bool {
	return s.IsActive == nil || *s.IsActive
}

// Is reports whether IsActive is set and equal to v.
func (s Status) Is(v bool) bool {
	return s.IsActive != nil && *s.IsActive == v
}

// Tour represents one bookable tour in the catalog. GuestMin and GuestMax
// are numeric capacity bounds and may be fractional.
type Tour struct {
	SKU          string   `json:"sku" yaml:"sku"`
	Title        string   `json:"title" yaml:"title"`
	Description  string   `json:"description" yaml:"description"`
	Image        string   `json:"image" yaml:"image"`
	ImgAlt       string   `json:"imgAlt,omitempty" yaml:"imgAlt,omitempty"`
	ImgStyle     string   `json:"imgStyle,omitempty" yaml:"imgStyle,omitempty"`
	Link         string   `json:"link" yaml:"link"`
	Type         TourType `json:"type" yaml:"type"`
	Destinations []string `json:"destinations" yaml:"destinations"`
	Transport    []string `json:"transport" yaml:"transport"`
	Price        float64  `json:"price" yaml:"price"`
	PriceType    string   `json:"priceType" yaml:"priceType"`
	DurationVal  float64  `json:"durationVal" yaml:"durationVal"`
	GuestMin     float64  `json:"guestMin" yaml:"guestMin"`
	GuestMax     float64  `json:"guestMax" yaml:"guestMax"`
	Rating       float64  `json:"rating" yaml:"rating"`
	NumReviews   int      `json:"numReviews" yaml:"numReviews"`
	Ranking      int      `json:"ranking" yaml:"ranking"`

	// Optional map inputs for the detail page.
	MeetingPoint  *LatLng `json:"meetingPoint,omitempty" yaml:"meetingPoint,omitempty"`
	PickupRadiusM float64 `json:"pickupRadiusM,omitempty" yaml:"pickupRadiusM,omitempty"`

	// Pre-augmentation values, captured once by the review merge.
	OriginalRating     *float64 `json:"originalRating,omitempty" yaml:"originalRating,omitempty"`
	OriginalNumReviews *int     `json:"originalNumReviews,omitempty" yaml:"originalNumReviews,omitempty"`

	Status        Status          `json:"status" yaml:"status"`
	SpecialEvents map[string]bool `json:"specialEvents,omitempty" yaml:"specialEvents,omitempty"`
}

// Clone returns a deep copy of t.
func (t Tour) Clone() Tour {
	c := t
	if t.Destinations != nil {
		c.Destinations = append([]string(nil), t.Destinations...)
	}
	if t.Transport != nil {
		c.Transport = append([]string(nil), t.Transport...)
	}
	if t.MeetingPoint != nil {
		v := *t.MeetingPoint
		c.MeetingPoint = &v
	}
	if t.OriginalRating != nil {
		v := *t.OriginalRating
		c.OriginalRating = &v
	}
	if t.OriginalNumReviews != nil {
		v := *t.OriginalNumReviews
		c.OriginalNumReviews = &v
	}
	if t.Status.IsActive != nil {
		v := *t.Status.IsActive
		c.Status.IsActive = &v
	}
	if t.SpecialEvents != nil {
		c.SpecialEvents = make(map[string]bool, len(t.SpecialEvents))
		for k, v := range t.SpecialEvents {
			c.SpecialEvents[k] = v
		}
	}
	return c
}

// CloneTours deep-copies a slice of tours.
func CloneTours(ts []Tour) []Tour {
	if ts == nil {
		return nil
	}
	out := make([]Tour, len(ts))
	for i, t := range ts {
		out[i] = t.Clone()
	}
	return out
}

// ReviewEntry is one row of external review data. Rating and NumReviews keep
// the raw textual value; the Has flags record whether the field was present
// at all, which is distinct from being empty or null.
type ReviewEntry struct {
	SKU           string `json:"sku,omitempty"`
	BaseSKU       string `json:"baseSku,omitempty"`
	Rating        string `json:"rating,omitempty"`
	NumReviews    string `json:"numReviews,omitempty"`
	HasRating     bool   `json:"-"`
	HasNumReviews bool   `json:"-"`
}

// ReviewBatch is a set of review entries applied to the catalog as a unit.
type ReviewBatch struct {
	Sequence uint64        `json:"sequence"`
	Source   string        `json:"source"`
	Entries  []ReviewEntry `json:"entries"`
}
