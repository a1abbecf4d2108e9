package hubmap

// Style is a polygon paint.
type Style struct {
	Color       string  `json:"color"`
	Weight      float64 `json:"weight"`
	Opacity     float64 `json:"opacity"`
	FillColor   string  `json:"fillColor"`
	FillOpacity float64 `json:"fillOpacity"`
}

var (
	styleActive          = Style{"#172436", 1.5, 0.6, "#7CAEF4", 0.7}
	styleActiveHover     = Style{"#172436", 1.5, 0.5, "#7CAEF4", 0.8}
	styleComingSoon      = Style{"#172436", 1.5, 0.4, "#b8c2cc", 0.55}
	styleComingSoonHover = Style{"#8891a0", 1, 0.4, "#b8c2cc", 0.65}
	styleGreenSpace      = Style{"#172436", 1.5, 0.3, "#b7d7a8", 0.5}
	styleGreenSpaceHover = Style{"#8891a0", 1, 0.3, "#b7d7a8", 0.6}
	styleBackground      = Style{"#172436", 1.5, 0.3, "#cdd3da", 0.5}
	styleBackgroundHover = Style{"#8891a0", 1, 0.3, "#cdd3da", 0.6}
)

// BaseStyle is the resting paint for a region. Unknown names and
// unavailable regions share the background style.
func BaseStyle(name string) Style {
	n, _ := Lookup(name)
	switch n.Status {
	case StatusActive:
		return styleActive
	case StatusComingSoon:
		return styleComingSoon
	case StatusGreenSpace:
		return styleGreenSpace
	default:
		return styleBackground
	}
}

// HoverStyle is the highlighted paint. Regions missing from the table keep
// their base style.
func HoverStyle(name string) Style {
	n, ok := Lookup(name)
	if !ok {
		return styleBackground
	}
	switch n.Status {
	case StatusActive:
		return styleActiveHover
	case StatusComingSoon:
		return styleComingSoonHover
	case StatusGreenSpace:
		return styleGreenSpaceHover
	default:
		return styleBackgroundHover
	}
}
