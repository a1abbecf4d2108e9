package hubmap

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func TestLookup(t *testing.T) {
	n, ok := Lookup("Fenway")
	require.True(t, ok)
	require.Equal(t, "Fenway-Kenmore", n.Label())
	require.Equal(t, "/neighborhood-guides/fenway-kenmore", n.Link)
	require.Equal(t, StatusComingSoon, n.Status)

	n, ok = Lookup("North End")
	require.True(t, ok)
	require.Equal(t, "North End", n.Label())

	_, ok = Lookup("Somerville")
	require.False(t, ok)
}

func TestTooltipAndAnnouncement(t *testing.T) {
	require.Equal(t, "North End", Tooltip("North End"))
	require.Equal(t, "Seaport (Coming Soon)", Tooltip("South Boston Waterfront"))
	require.Equal(t, "Allston (Not Available)", Tooltip("Allston"))
	require.Equal(t, "The Fens", Tooltip("The Fens"))

	require.Equal(t, "North End — click to view guide", Announcement("North End"))
	require.Equal(t, "Back Bay — coming soon", Announcement("Back Bay"))
	require.Equal(t, "Riverway — green space", Announcement("Riverway"))
	require.Equal(t, "Roxbury — not available", Announcement("Roxbury"))
	require.Equal(t, "Somerville", Announcement("Somerville"))
}

func TestNavigateOnlyActive(t *testing.T) {
	link, ok := Navigate("North End")
	require.True(t, ok)
	require.Equal(t, "/neighborhood-guides/north-end", link)

	for _, name := range []string{"Back Bay", "The Fens", "Allston", "Somerville"} {
		_, ok := Navigate(name)
		require.False(t, ok, name)
	}
}

func TestStyles(t *testing.T) {
	require.Equal(t, styleActive, BaseStyle("North End"))
	require.Equal(t, styleActiveHover, HoverStyle("North End"))
	require.Equal(t, styleComingSoonHover, HoverStyle("Chinatown"))
	require.Equal(t, styleGreenSpace, BaseStyle("The Esplanade/Charles River"))
	require.Equal(t, styleBackground, BaseStyle("Somerville"))
	require.Equal(t, styleBackground, HoverStyle("Somerville"))
	require.Equal(t, styleBackgroundHover, HoverStyle("Mattapan"))
}

func TestSidebar(t *testing.T) {
	groups := Sidebar()
	require.Len(t, groups, 4)
	total := 0
	for _, g := range groups {
		total += len(g.Items)
		for _, it := range g.Items {
			require.Equal(t, g.Status, it.Status)
			require.Equal(t, it.Status != StatusActive, it.Disabled)
		}
	}
	require.Equal(t, len(Names()), total)

	require.Equal(t, "North End", groups[0].Items[0].Name)

	var coming []string
	for _, it := range groups[1].Items {
		coming = append(coming, it.Label)
	}
	require.Equal(t, []string{
		"Back Bay", "Beacon Hill", "Charlestown", "Chinatown", "Dorchester",
		"Downtown (Financial District)", "Downtown (Government Center)",
		"Downtown (Theater District)", "Downtown Crossing", "East Boston",
		"Fenway-Kenmore", "Jamaica Plain", "Seaport", "South Boston", "South End", "West End",
	}, coming)

	var green []string
	for _, it := range groups[2].Items {
		green = append(green, it.Name)
	}
	require.Equal(t, []string{"Boston Common/Public Garden", "Riverway", "The Esplanade/Charles River", "The Fens"}, green)
}

func TestMoveCrossesGroups(t *testing.T) {
	groups := Sidebar()
	next, ok := Move(groups, "North End", "ArrowDown")
	require.True(t, ok)
	require.Equal(t, "Back Bay", next)

	prev, ok := Move(groups, "Back Bay", "ArrowUp")
	require.True(t, ok)
	require.Equal(t, "North End", prev)

	_, ok = Move(groups, "North End", "ArrowUp")
	require.False(t, ok)
	_, ok = Move(groups, "North End", "Enter")
	require.False(t, ok)
	_, ok = Move(groups, "Somerville", "ArrowDown")
	require.False(t, ok)
}

func TestStateSingleHighlight(t *testing.T) {
	s := NewState()
	require.Equal(t, styleActive, s.Style("North End"))

	msg := s.Highlight("North End")
	require.Equal(t, "North End — click to view guide", msg)
	require.Equal(t, styleActiveHover, s.Style("North End"))
	require.Equal(t, "true", s.AriaSelected("North End"))

	// a missed leave event: entering Back Bay must revert North End
	s.Highlight("Back Bay")
	require.Equal(t, styleActive, s.Style("North End"))
	require.Equal(t, "false", s.AriaSelected("North End"))
	require.Equal(t, styleComingSoonHover, s.Style("Back Bay"))
	h, ok := s.Highlighted()
	require.True(t, ok)
	require.Equal(t, "Back Bay", h)

	s.Unhighlight("Back Bay")
	require.Equal(t, styleComingSoon, s.Style("Back Bay"))
	_, ok = s.Highlighted()
	require.False(t, ok)
}

func TestStateSidebarMarksSelection(t *testing.T) {
	s := NewState()
	for _, g := range s.Sidebar() {
		for _, it := range g.Items {
			require.False(t, it.Selected, it.Name)
		}
	}
	s.Highlight("Back Bay")
	selected := 0
	for _, g := range s.Sidebar() {
		for _, it := range g.Items {
			if it.Selected {
				selected++
				require.Equal(t, "Back Bay", it.Name)
			}
		}
	}
	require.Equal(t, 1, selected)
}

func TestUnhighlightOtherKeepsCurrent(t *testing.T) {
	s := NewState()
	s.Highlight("North End")
	s.Unhighlight("Allston")
	h, ok := s.Highlighted()
	require.True(t, ok)
	require.Equal(t, "North End", h)
	require.Equal(t, styleBackground, s.Style("Allston"))
}
