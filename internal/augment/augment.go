// Package augment runs the start-up review augmentation and resolves the
// catalog readiness gate when it finishes, whatever the outcome.
package augment

import (
	"context"
	"fmt"
	"time"

	"go.opentelemetry.io/otel/attribute"

	"github.com/fairyhunter13/tour-catalog-service/internal/catalog"
	"github.com/fairyhunter13/tour-catalog-service/internal/model"
	"github.com/fairyhunter13/tour-catalog-service/internal/obs"
	"github.com/fairyhunter13/tour-catalog-service/internal/queue"
	"github.com/fairyhunter13/tour-catalog-service/internal/ready"
)

// Fetcher returns review entries or nil when no usable data is available.
type Fetcher interface {
	Fetch(ctx context.Context) []model.ReviewEntry
}

// Augmenter merges the initial review fetch into the catalog.
type Augmenter struct {
	fetcher Fetcher
	catalog *catalog.Catalog
	gate    *ready.Gate[[]model.Tour]
	seq     *queue.Sequencer
}

// New builds an Augmenter. fetcher may be nil when no review source is
// configured; Run then resolves the gate with the catalog as loaded.
func New(f Fetcher, c *catalog.Catalog, g *ready.Gate[[]model.Tour], seq *queue.Sequencer) *Augmenter {
	return &Augmenter{fetcher: f, catalog: c, gate: g, seq: seq}
}

// Run fetches review data once and applies it. The gate is resolved exactly
// once on every path, including a panic in the fetcher.
func (a *Augmenter) Run(ctx context.Context) {
	ctx, span := obs.Tracer().Start(ctx, "augment.run")
	start := time.Now()
	defer func() {
		if r := recover(); r != nil {
			obs.Logger.Warn("augment_failed", "panic", fmt.Sprint(r))
		}
		var snapshot []model.Tour
		if a.catalog != nil {
			snapshot = a.catalog.Tours()
		}
		a.gate.Resolve(snapshot)
		span.End()
	}()

	if a.catalog == nil {
		obs.Logger.Error("catalog_missing", "stage", "augment")
		return
	}
	if a.fetcher == nil {
		obs.Logger.Info("reviews_unconfigured")
		return
	}

	// The sequence is taken before the fetch so review batches posted while
	// it runs count as newer.
	seq := a.seq.Next()
	entries := a.fetcher.Fetch(ctx)
	if entries == nil {
		obs.Logger.Info("reviews_unavailable", "detail", "using default ratings")
		return
	}
	batch := model.ReviewBatch{Sequence: seq, Source: "startup", Entries: entries}
	updated := a.catalog.ApplyReviews(batch)
	span.SetAttributes(attribute.Int("tours.updated", updated))
	obs.Logger.Info("reviews_applied",
		"sequence", batch.Sequence,
		"entries", len(entries),
		"tours_updated", updated,
		"elapsed_ms", time.Since(start).Milliseconds(),
	)
}
