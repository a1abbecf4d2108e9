package httpapi

import (
	"expvar"
	"net/http"
)

// NewRouter registers HTTP routes and returns the handler with middleware.
func NewRouter(app *App) http.Handler {
	mux := http.NewServeMux()
	mux.HandleFunc("/tours", app.listToursHandler)
	mux.HandleFunc("/tours/cards", app.listCardsHandler)
	mux.HandleFunc("/tours/ready", app.toursReadyHandler)
	mux.HandleFunc("/tours/{sku}", app.getTourHandler)
	mux.HandleFunc("/tours/{sku}/related", app.relatedToursHandler)
	mux.HandleFunc("/tours/{sku}/facts", app.tourFactsHandler)
	mux.HandleFunc("/tours/{sku}/maps", app.tourMapsHandler)
	mux.HandleFunc("/reviews", app.postReviewsHandler)
	mux.HandleFunc("/neighborhoods", app.neighborhoodsHandler)
	mux.HandleFunc("/neighborhoods/{name}", app.neighborhoodHandler)
	mux.HandleFunc("/guides/{id}/map", app.guideMapHandler)
	mux.HandleFunc("/healthz", app.healthHandler)
	mux.HandleFunc("/readyz", app.readyHandler)
	mux.HandleFunc("/debug/metrics", app.metricsHandler)
	mux.Handle("/debug/vars", expvar.Handler())
	mux.HandleFunc("/openapi.yaml", app.openapiHandler)
	mux.HandleFunc("/docs", app.docsHandler)
	return WithRequestID(WithLogging(WithRecovery(WithCORS(app.Cfg.CORSOrigins)(mux))))
}
