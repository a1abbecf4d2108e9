package detail

import (
	"fmt"
	"strconv"
	"sync"

	"github.com/google/uuid"
)

// Itinerary tracks the expand control of a long stop list.
type Itinerary struct {
	hiddenStops int
	expanded    bool
}

// NewItinerary starts collapsed.
func NewItinerary(hiddenStops int) *Itinerary {
	return &Itinerary{hiddenStops: hiddenStops}
}

func (it *Itinerary) Toggle()        { it.expanded = !it.expanded }
func (it *Itinerary) Expanded() bool { return it.expanded }

func (it *Itinerary) ButtonLabel() string {
	if it.expanded {
		return "Show less"
	}
	return fmt.Sprintf("Show %d more stops", it.hiddenStops)
}

func (it *Itinerary) AriaExpanded() string { return strconv.FormatBool(it.expanded) }

// FAQItem is one question of an Accordion.
type FAQItem struct {
	Question string `json:"question"`
	Answer   string `json:"answer"`
	AnswerID string `json:"answerId"`
}

// Accordion keeps at most one FAQ item open. It is safe for concurrent use.
type Accordion struct {
	mu    sync.Mutex
	items []FAQItem
	open  int
}

// NewAccordion copies items and assigns an answer id to each item missing
// one. All items start closed.
func NewAccordion(items []FAQItem) *Accordion {
	cp := make([]FAQItem, len(items))
	copy(cp, items)
	for i := range cp {
		if cp[i].AnswerID == "" {
			cp[i].AnswerID = "faq-answer-" + uuid.NewString()[:8]
		}
	}
	return &Accordion{items: cp, open: -1}
}

// Toggle closes every item, then opens i unless it was the open one.
// Out of range indexes are ignored.
func (a *Accordion) Toggle(i int) {
	a.mu.Lock()
	defer a.mu.Unlock()
	if i < 0 || i >= len(a.items) {
		return
	}
	if a.open == i {
		a.open = -1
		return
	}
	a.open = i
}

// HandleKey toggles i on Enter or Space and reports whether the key was
// consumed.
func (a *Accordion) HandleKey(i int, key string) bool {
	if key != "Enter" && key != " " {
		return false
	}
	a.Toggle(i)
	return true
}

// Open returns the open item index or -1.
func (a *Accordion) Open() int {
	a.mu.Lock()
	defer a.mu.Unlock()
	return a.open
}

func (a *Accordion) AriaExpanded(i int) string {
	return strconv.FormatBool(a.Open() == i)
}

func (a *Accordion) Items() []FAQItem {
	a.mu.Lock()
	defer a.mu.Unlock()
	out := make([]FAQItem, len(a.items))
	copy(out, a.items)
	return out
}

// ImageLabel is the accessible name of a click-to-enlarge image.
func ImageLabel(alt string) string {
	if alt == "" {
		alt = "Image"
	}
	return "View full size: " + alt
}
