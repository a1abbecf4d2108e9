package httpapi

import (
	"errors"
	"io"
	"net/http"
	"strings"
	"time"

	"github.com/fairyhunter13/tour-catalog-service/internal/model"
	"github.com/fairyhunter13/tour-catalog-service/internal/obs"
	"github.com/fairyhunter13/tour-catalog-service/internal/reviews"
)

const maxReviewBody = 4 << 20

type ack struct {
	Status      string `json:"status"`
	RequestID   string `json:"request_id"`
	Sequence    uint64 `json:"sequence"`
	Entries     int    `json:"entries"`
	ReceivedAt  string `json:"received_at"`
	QueueDepth  int    `json:"queue_depth"`
	BacklogSize int    `json:"backlog_size"`
	WorkerCount int    `json:"worker_count"`
}

// postReviewsHandler accepts a review data array, the same shape the review
// endpoint serves, and queues it for the workers.
func (a *App) postReviewsHandler(w http.ResponseWriter, r *http.Request) {
	if !allowMethod(w, r, http.MethodPost) {
		return
	}
	if a.closing.Load() || a.Manager.IsClosed() {
		WriteJSONError(w, http.StatusServiceUnavailable, "shutting_down", "")
		return
	}
	ct := r.Header.Get("Content-Type")
	if !strings.HasPrefix(strings.ToLower(ct), "application/json") {
		WriteJSONError(w, http.StatusUnsupportedMediaType, "unsupported_media_type", "expected application/json")
		return
	}
	if !a.catalogOrUnavailable(w, r) {
		return
	}
	body, err := io.ReadAll(http.MaxBytesReader(w, r.Body, maxReviewBody))
	if err != nil {
		var tooLarge *http.MaxBytesError
		if errors.As(err, &tooLarge) {
			WriteJSONError(w, http.StatusRequestEntityTooLarge, "body_too_large", err.Error())
			return
		}
		WriteJSONError(w, http.StatusBadRequest, "invalid_json", err.Error())
		return
	}
	entries, ok := reviews.Decode(body)
	if !ok {
		WriteJSONError(w, http.StatusBadRequest, "invalid_json", "expected a JSON array of review entries")
		return
	}
	seq, ok := a.Manager.Submit(model.ReviewBatch{Source: "api", Entries: entries})
	if !ok {
		WriteJSONError(w, http.StatusServiceUnavailable, "shutting_down", "")
		return
	}
	st := a.Manager.Stats()
	ac := ack{
		Status:      "accepted",
		RequestID:   RequestIDFromContext(r.Context()),
		Sequence:    seq,
		Entries:     len(entries),
		ReceivedAt:  time.Now().UTC().Format(time.RFC3339),
		QueueDepth:  st.Depth,
		BacklogSize: st.Backlog,
		WorkerCount: a.Manager.WorkerCount(),
	}
	writeJSON(w, http.StatusAccepted, ac)
	obs.Logger.Info("reviews_accepted",
		"request_id", ac.RequestID,
		"sequence", ac.Sequence,
		"entries", ac.Entries,
		"queue_depth", ac.QueueDepth,
		"backlog_size", ac.BacklogSize,
	)
}
