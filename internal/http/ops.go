package httpapi

import (
	"encoding/json"
	"net/http"
	"time"

	httpopenapi "github.com/fairyhunter13/tour-catalog-service/internal/http/openapi"
)

func (a *App) healthHandler(w http.ResponseWriter, r *http.Request) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(http.StatusOK)
	_ = json.NewEncoder(w).Encode(map[string]string{"status": "ok"})
}

// readyHandler reports ready once review augmentation has finished, until
// shutdown begins.
func (a *App) readyHandler(w http.ResponseWriter, r *http.Request) {
	switch {
	case a.closing.Load():
		WriteJSONError(w, http.StatusServiceUnavailable, "shutting_down", "")
	case !a.Gate.Ready():
		WriteJSONError(w, http.StatusServiceUnavailable, "not_ready", "review augmentation still running")
	default:
		writeJSON(w, http.StatusOK, map[string]any{
			"status":         "ready",
			"catalog_loaded": a.Catalog != nil,
		})
	}
}

func (a *App) metricsHandler(w http.ResponseWriter, r *http.Request) {
	st := a.Manager.Stats()
	m := map[string]any{
		"batches_enqueued":  st.Enqueued,
		"batches_processed": st.Processed,
		"backlog_size":      st.Backlog,
		"queue_depth":       st.Depth,
		"worker_count":      a.Manager.WorkerCount(),
		"reviews_ready":     a.Gate.Ready(),
		"uptime_sec":        time.Since(a.started).Seconds(),
	}
	if a.Catalog != nil {
		m["catalog_size"] = a.Catalog.Len()
		m["last_sequence"] = a.Catalog.LastSequence()
	}
	w.Header().Set("Content-Type", "application/json")
	_ = json.NewEncoder(w).Encode(m)
}

func (a *App) openapiHandler(w http.ResponseWriter, r *http.Request) {
	w.Header().Set("Content-Type", httpopenapi.ContentType)
	_, _ = w.Write(httpopenapi.YAML)
}

func (a *App) docsHandler(w http.ResponseWriter, r *http.Request) {
	w.Header().Set("Content-Type", "text/html; charset=utf-8")
	html := `<!doctype html>
<html>
  <head>
    <meta charset="utf-8" />
    <title>Tour Catalog API</title>
    <link rel="stylesheet" href="https://unpkg.com/swagger-ui-dist@5/swagger-ui.css" />
  </head>
  <body>
    <div id="swagger-ui"></div>
    <script src="https://unpkg.com/swagger-ui-dist@5/swagger-ui-bundle.js"></script>
    <script>
      window.ui = SwaggerUIBundle({
        url: '/openapi.yaml',
        dom_id: '#swagger-ui'
      });
    </script>
  </body>
</html>`
	_, _ = w.Write([]byte(html))
}
