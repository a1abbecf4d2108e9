package httpapi

import (
	"context"
	"errors"
	"net/http"
	"strconv"
	"time"

	"github.com/fairyhunter13/tour-catalog-service/internal/detail"
	"github.com/fairyhunter13/tour-catalog-service/internal/listing"
	"github.com/fairyhunter13/tour-catalog-service/internal/model"
	"github.com/fairyhunter13/tour-catalog-service/internal/obs"
	"github.com/fairyhunter13/tour-catalog-service/internal/query"
	"github.com/fairyhunter13/tour-catalog-service/internal/ready"
)

const (
	defaultReadyWait = 30 * time.Second
	maxReadyWait     = 2 * time.Minute
)

type toursResponse struct {
	Count int          `json:"count"`
	Label string       `json:"label"`
	Ready bool         `json:"ready"`
	Tours []model.Tour `json:"tours"`
}

type cardsResponse struct {
	Count int            `json:"count"`
	Label string         `json:"label"`
	Ready bool           `json:"ready"`
	Cards []listing.Card `json:"cards"`
}

// catalogOrUnavailable writes 503 and returns false when no catalog was
// loaded.
func (a *App) catalogOrUnavailable(w http.ResponseWriter, r *http.Request) bool {
	if a.Catalog != nil {
		return true
	}
	obs.Logger.Error("catalog_missing",
		"path", r.URL.Path,
		"request_id", RequestIDFromContext(r.Context()),
	)
	WriteJSONError(w, http.StatusServiceUnavailable, "catalog_unavailable", "no catalog loaded")
	return false
}

// runQuery parses the listing parameters and evaluates them against the
// current catalog.
func (a *App) runQuery(w http.ResponseWriter, r *http.Request) ([]model.Tour, bool) {
	if !allowMethod(w, r, http.MethodGet) || !a.catalogOrUnavailable(w, r) {
		return nil, false
	}
	spec, err := query.ParseValues(r.URL.Query())
	if err != nil {
		WriteJSONError(w, http.StatusBadRequest, "invalid_query", err.Error())
		return nil, false
	}
	return query.Run(a.Catalog.Tours(), spec), true
}

func (a *App) listToursHandler(w http.ResponseWriter, r *http.Request) {
	tours, ok := a.runQuery(w, r)
	if !ok {
		return
	}
	writeJSON(w, http.StatusOK, toursResponse{
		Count: len(tours),
		Label: listing.CountLabel(len(tours)),
		Ready: a.Gate.Ready(),
		Tours: tours,
	})
}

func (a *App) listCardsHandler(w http.ResponseWriter, r *http.Request) {
	tours, ok := a.runQuery(w, r)
	if !ok {
		return
	}
	isReady := a.Gate.Ready()
	writeJSON(w, http.StatusOK, cardsResponse{
		Count: len(tours),
		Label: listing.CountLabel(len(tours)),
		Ready: isReady,
		Cards: listing.Cards(tours, isReady),
	})
}

// toursReadyHandler long-polls until review augmentation has finished and
// returns the catalog as it was at that moment. The wait is bounded by the
// "wait" parameter (a Go duration, default 30s).
func (a *App) toursReadyHandler(w http.ResponseWriter, r *http.Request) {
	if !allowMethod(w, r, http.MethodGet) {
		return
	}
	wait := defaultReadyWait
	if raw := r.URL.Query().Get("wait"); raw != "" {
		d, err := time.ParseDuration(raw)
		if err != nil || d < 0 {
			WriteJSONError(w, http.StatusBadRequest, "invalid_query", "wait must be a non-negative duration")
			return
		}
		wait = min(d, maxReadyWait)
	}
	ctx, cancel := context.WithTimeout(r.Context(), wait)
	defer cancel()
	tours, err := a.Gate.Wait(ctx)
	if errors.Is(err, ready.ErrNotReady) {
		WriteJSONError(w, http.StatusServiceUnavailable, "not_ready", "review augmentation still running")
		return
	}
	if tours == nil {
		tours = []model.Tour{}
	}
	writeJSON(w, http.StatusOK, toursResponse{
		Count: len(tours),
		Label: listing.CountLabel(len(tours)),
		Ready: true,
		Tours: tours,
	})
}

func (a *App) lookupTour(w http.ResponseWriter, r *http.Request) (model.Tour, bool) {
	if !allowMethod(w, r, http.MethodGet) || !a.catalogOrUnavailable(w, r) {
		return model.Tour{}, false
	}
	t, ok := a.Catalog.Get(r.PathValue("sku"))
	if !ok {
		WriteJSONError(w, http.StatusNotFound, "not_found", "")
		return model.Tour{}, false
	}
	return t, true
}

func (a *App) getTourHandler(w http.ResponseWriter, r *http.Request) {
	t, ok := a.lookupTour(w, r)
	if !ok {
		return
	}
	writeJSON(w, http.StatusOK, t)
}

func (a *App) relatedToursHandler(w http.ResponseWriter, r *http.Request) {
	t, ok := a.lookupTour(w, r)
	if !ok {
		return
	}
	limit := detail.DefaultRelatedLimit
	if raw := r.URL.Query().Get("limit"); raw != "" {
		n, err := strconv.Atoi(raw)
		if err != nil || n < 1 {
			WriteJSONError(w, http.StatusBadRequest, "invalid_query", "limit must be a positive integer")
			return
		}
		limit = n
	}
	related := detail.Related(a.Catalog.Tours(), t.SKU, limit)
	if related == nil {
		related = []detail.RelatedTour{}
	}
	writeJSON(w, http.StatusOK, map[string]any{"sku": t.SKU, "related": related})
}

func (a *App) tourFactsHandler(w http.ResponseWriter, r *http.Request) {
	t, ok := a.lookupTour(w, r)
	if !ok {
		return
	}
	writeJSON(w, http.StatusOK, map[string]any{
		"sku":   t.SKU,
		"facts": detail.FactsFor(t),
		"card":  listing.CardFor(t, a.Gate.Ready()),
	})
}

// tourMapsHandler returns the meeting point map when the tour has one and
// the pickup area map for private tours.
func (a *App) tourMapsHandler(w http.ResponseWriter, r *http.Request) {
	t, ok := a.lookupTour(w, r)
	if !ok {
		return
	}
	out := map[string]any{"sku": t.SKU}
	if v, ok := detail.MeetingPointMap(detail.MeetingPointOptions{Center: t.MeetingPoint, ContainerID: "meeting-point-map"}); ok {
		out["meetingPoint"] = v
	}
	if t.Type == model.TypePrivate {
		out["pickupArea"] = detail.PickupAreaMap(detail.PickupAreaOptions{RadiusMeters: t.PickupRadiusM})
	}
	writeJSON(w, http.StatusOK, out)
}
