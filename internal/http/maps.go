package httpapi

import (
	"net/http"

	"github.com/fairyhunter13/tour-catalog-service/internal/guidemap"
	"github.com/fairyhunter13/tour-catalog-service/internal/hubmap"
)

type neighborhoodView struct {
	hubmap.Neighborhood
	Label        string       `json:"label"`
	Tooltip      string       `json:"tooltip"`
	Announcement string       `json:"announcement"`
	Style        hubmap.Style `json:"style"`
	HoverStyle   hubmap.Style `json:"hoverStyle"`
	Navigable    bool         `json:"navigable"`
}

type highlightView struct {
	Name         string       `json:"name"`
	Announcement string       `json:"announcement"`
	Style        hubmap.Style `json:"style"`
}

// neighborhoodsHandler returns the hub map and its sidebar. With
// ?highlight=<name> the region is highlighted as on hover; adding
// key=ArrowDown or key=ArrowUp first moves along the sidebar from it.
func (a *App) neighborhoodsHandler(w http.ResponseWriter, r *http.Request) {
	if !allowMethod(w, r, http.MethodGet) {
		return
	}
	state := hubmap.NewState()
	out := map[string]any{"map": hubmap.DefaultMapConfig}
	if name := r.URL.Query().Get("highlight"); name != "" {
		if _, ok := hubmap.Lookup(name); !ok {
			WriteJSONError(w, http.StatusNotFound, "not_found", "unknown neighborhood")
			return
		}
		if key := r.URL.Query().Get("key"); key != "" {
			if next, ok := hubmap.Move(hubmap.Sidebar(), name, key); ok {
				name = next
			}
		}
		out["highlighted"] = highlightView{
			Name:         name,
			Announcement: state.Highlight(name),
			Style:        state.Style(name),
		}
	}
	out["sidebar"] = state.Sidebar()
	writeJSON(w, http.StatusOK, out)
}

func (a *App) neighborhoodHandler(w http.ResponseWriter, r *http.Request) {
	if !allowMethod(w, r, http.MethodGet) {
		return
	}
	name := r.PathValue("name")
	n, ok := hubmap.Lookup(name)
	if !ok {
		WriteJSONError(w, http.StatusNotFound, "not_found", "")
		return
	}
	_, navigable := hubmap.Navigate(name)
	writeJSON(w, http.StatusOK, neighborhoodView{
		Neighborhood: n,
		Label:        n.Label(),
		Tooltip:      hubmap.Tooltip(name),
		Announcement: hubmap.Announcement(name),
		Style:        hubmap.BaseStyle(name),
		HoverStyle:   hubmap.HoverStyle(name),
		Navigable:    navigable,
	})
}

func (a *App) guideMapHandler(w http.ResponseWriter, r *http.Request) {
	if !allowMethod(w, r, http.MethodGet) {
		return
	}
	g, ok := a.Guides[r.PathValue("id")]
	if !ok {
		WriteJSONError(w, http.StatusNotFound, "not_found", "")
		return
	}
	view, ok := guidemap.Build(g)
	if !ok {
		WriteJSONError(w, http.StatusNotFound, "not_found", "guide has no mappable locations")
		return
	}
	if id := r.URL.Query().Get("highlight"); id != "" {
		if view, ok = guidemap.Focus(view, id); !ok {
			WriteJSONError(w, http.StatusNotFound, "not_found", "unknown location")
			return
		}
	}
	writeJSON(w, http.StatusOK, view)
}
