package guidemap

import (
	"sync"

	"github.com/fairyhunter13/tour-catalog-service/internal/model"
)

const (
	DefaultZoom = 16
	MinZoom     = 14
	MaxZoom     = 19
	FocusZoom   = 17
	FitPadding  = 30
	FitMaxZoom  = 16
)

// View is a map position.
type View struct {
	Center model.LatLng `json:"center"`
	Zoom   int          `json:"zoom"`
}

// State tracks the highlighted marker of one guide map. At most one marker
// is highlighted; highlighting another first reverts the previous one.
type State struct {
	mu          sync.Mutex
	locations   map[string]Location
	highlighted string
}

func NewState(locs []Location) *State {
	m := make(map[string]Location, len(locs))
	for _, l := range locs {
		m[l.ID] = l
	}
	return &State{locations: m}
}

// Highlight marks id. Unknown ids leave the state untouched.
func (s *State) Highlight(id string) bool {
	s.mu.Lock()
	defer s.mu.Unlock()
	if _, ok := s.locations[id]; !ok {
		return false
	}
	s.highlighted = id
	return true
}

// PanTo highlights id and returns the close-up view on it.
func (s *State) PanTo(id string) (View, bool) {
	if !s.Highlight(id) {
		return View{}, false
	}
	s.mu.Lock()
	defer s.mu.Unlock()
	return View{Center: s.locations[id].Position, Zoom: FocusZoom}, true
}

func (s *State) Highlighted() (string, bool) {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.highlighted, s.highlighted != ""
}

// IconOf is the current marker of id.
func (s *State) IconOf(id string) (Icon, bool) {
	s.mu.Lock()
	defer s.mu.Unlock()
	l, ok := s.locations[id]
	if !ok {
		return Icon{}, false
	}
	return IconFor(l, s.highlighted == id), true
}
