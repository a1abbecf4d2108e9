package hubmap

import (
	"strconv"
	"sync"
)

// State is the highlight state shared by the map regions and the sidebar.
// At most one region is highlighted.
type State struct {
	mu          sync.Mutex
	highlighted string
	styles      map[string]Style
}

func NewState() *State {
	return &State{styles: make(map[string]Style)}
}

// Highlight reverts any other highlighted region, applies the hover style to
// name and returns its announcement.
func (s *State) Highlight(name string) string {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.highlighted != "" && s.highlighted != name {
		s.styles[s.highlighted] = BaseStyle(s.highlighted)
	}
	s.highlighted = name
	s.styles[name] = HoverStyle(name)
	return Announcement(name)
}

// Unhighlight restores the base style of name.
func (s *State) Unhighlight(name string) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.styles[name] = BaseStyle(name)
	if s.highlighted == name {
		s.highlighted = ""
	}
}

// Highlighted returns the highlighted region, if any.
func (s *State) Highlighted() (string, bool) {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.highlighted, s.highlighted != ""
}

// Style is the current paint of a region.
func (s *State) Style(name string) Style {
	s.mu.Lock()
	defer s.mu.Unlock()
	if st, ok := s.styles[name]; ok {
		return st
	}
	return BaseStyle(name)
}

// AriaSelected mirrors the highlight into the sidebar item.
func (s *State) AriaSelected(name string) string {
	s.mu.Lock()
	defer s.mu.Unlock()
	return strconv.FormatBool(s.highlighted == name)
}

// Sidebar is the grouped sidebar with the highlighted item selected.
func (s *State) Sidebar() []SidebarGroup {
	groups := Sidebar()
	s.mu.Lock()
	defer s.mu.Unlock()
	for gi := range groups {
		for ii := range groups[gi].Items {
			it := &groups[gi].Items[ii]
			it.Selected = it.Name == s.highlighted
		}
	}
	return groups
}
