package hubmap

import (
	"slices"

	"golang.org/x/text/collate"
	"golang.org/x/text/language"
)

type SidebarItem struct {
	Name     string `json:"name"`
	Label    string `json:"label"`
	Status   Status `json:"status"`
	Class    string `json:"class"`
	Disabled bool   `json:"ariaDisabled"`
	Selected bool   `json:"ariaSelected"`
}

type SidebarGroup struct {
	Status  Status        `json:"status"`
	Heading string        `json:"heading"`
	Items   []SidebarItem `json:"items"`
}

var groupOrder = []struct {
	status  Status
	heading string
	class   string
}{
	{StatusActive, "Neighborhood Guides", "hub-neighborhood-item"},
	{StatusComingSoon, "Coming Soon", "hub-neighborhood-item hub-neighborhood-item--dimmed"},
	{StatusGreenSpace, "Green Spaces", "hub-neighborhood-item hub-neighborhood-item--green"},
	{StatusUnavailable, "Not Available", "hub-neighborhood-item hub-neighborhood-item--unavailable"},
}

// Sidebar groups every neighborhood by status. Items within a group are in
// English collation order of their labels.
func Sidebar() []SidebarGroup {
	col := collate.New(language.English)
	names := Names()
	slices.SortFunc(names, func(a, b string) int {
		na, _ := Lookup(a)
		nb, _ := Lookup(b)
		return col.CompareString(na.Label(), nb.Label())
	})

	groups := make([]SidebarGroup, 0, len(groupOrder))
	for _, g := range groupOrder {
		group := SidebarGroup{Status: g.status, Heading: g.heading, Items: []SidebarItem{}}
		for _, name := range names {
			n, _ := Lookup(name)
			if n.Status != g.status {
				continue
			}
			group.Items = append(group.Items, SidebarItem{
				Name:     name,
				Label:    n.Label(),
				Status:   n.Status,
				Class:    g.class,
				Disabled: n.Status != StatusActive,
			})
		}
		groups = append(groups, group)
	}
	return groups
}

// Move returns the sidebar entry reached from name with ArrowDown or
// ArrowUp, crossing into the next or previous group. ok is false at either
// end, for other keys and for unknown names.
func Move(groups []SidebarGroup, name, key string) (next string, ok bool) {
	var flat []string
	for _, g := range groups {
		for _, it := range g.Items {
			flat = append(flat, it.Name)
		}
	}
	i := slices.Index(flat, name)
	if i < 0 {
		return "", false
	}
	switch key {
	case "ArrowDown":
		i++
	case "ArrowUp":
		i--
	default:
		return "", false
	}
	if i < 0 || i >= len(flat) {
		return "", false
	}
	return flat[i], true
}
