package httpapi

import (
	"sync/atomic"
	"time"

	"github.com/fairyhunter13/tour-catalog-service/internal/catalog"
	"github.com/fairyhunter13/tour-catalog-service/internal/config"
	"github.com/fairyhunter13/tour-catalog-service/internal/guidemap"
	"github.com/fairyhunter13/tour-catalog-service/internal/model"
	"github.com/fairyhunter13/tour-catalog-service/internal/queue"
	"github.com/fairyhunter13/tour-catalog-service/internal/ready"
)

// App holds the dependencies of every handler. Catalog is nil when no
// catalog input was supplied; listing routes then answer 503.
type App struct {
	Cfg     config.Config
	Catalog *catalog.Catalog
	Gate    *ready.Gate[[]model.Tour]
	Manager *queue.Manager
	Guides  map[string]guidemap.Guide

	closing atomic.Bool
	started time.Time
}

func NewApp(cfg config.Config, c *catalog.Catalog, g *ready.Gate[[]model.Tour], m *queue.Manager, guides []guidemap.Guide) *App {
	byID := make(map[string]guidemap.Guide, len(guides))
	for _, gd := range guides {
		byID[gd.ID] = gd
	}
	return &App{Cfg: cfg, Catalog: c, Gate: g, Manager: m, Guides: byID, started: time.Now()}
}

// StartShutdown rejects new review batches and fails readiness.
func (a *App) StartShutdown() {
	a.closing.Store(true)
	a.Manager.CloseIntake()
}
