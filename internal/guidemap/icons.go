package guidemap

// Icon describes a teardrop marker.
type Icon struct {
	Color       string `json:"color"`
	Symbol      string `json:"symbol"`
	Size        int    `json:"size"`
	GlyphSize   int    `json:"glyphSize"`
	Anchor      [2]int `json:"anchor"`
	PopupAnchor [2]int `json:"popupAnchor"`
	Border      string `json:"border"`
	Shadow      string `json:"shadow"`
	Highlighted bool   `json:"highlighted"`
}

type palette struct{ color, symbol string }

var (
	ourPick    = palette{"#DE5700", "star"}
	attraction = palette{"#172436", "explore"}
	restaurant = palette{"#7CAEF4", "restaurant"}
)

// IconFor picks the marker for l. Our picks win over category.
func IconFor(l Location, highlighted bool) Icon {
	p := restaurant
	switch {
	case l.OurPick:
		p = ourPick
	case l.Category == CategoryAttraction:
		p = attraction
	}
	icon := Icon{
		Color:     p.color,
		Symbol:    p.symbol,
		Size:      36,
		GlyphSize: 20,
		Border:    "2px solid #fff",
		Shadow:    "0 2px 6px rgba(0,0,0,0.3)",
	}
	if highlighted {
		icon.Size = 44
		icon.GlyphSize = 24
		icon.Border = "3px solid #fff"
		icon.Shadow = "0 4px 12px rgba(0,0,0,0.4)"
		icon.Highlighted = true
	}
	icon.Anchor = [2]int{icon.Size / 2, icon.Size}
	icon.PopupAnchor = [2]int{0, -icon.Size + 8}
	return icon
}

// Popup is the marker balloon content.
type Popup struct {
	Symbol      string `json:"symbol"`
	Name        string `json:"name"`
	OurPick     bool   `json:"ourPick"`
	Description string `json:"description"`
	ButtonLabel string `json:"buttonLabel"`
}

func PopupFor(l Location) Popup {
	sym := restaurant.symbol
	if l.Category == CategoryAttraction {
		sym = attraction.symbol
	}
	return Popup{
		Symbol:      sym,
		Name:        l.Name,
		OurPick:     l.OurPick,
		Description: l.Description,
		ButtonLabel: "View in list",
	}
}

// ListItemLabel is the accessible name of the list entry paired with l.
func ListItemLabel(l Location) string { return "Show " + l.Name + " on map" }
