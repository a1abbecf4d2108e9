// Package main boots the tour catalog service.
package main

import (
	"context"
	"errors"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/spf13/cobra"
	"golang.org/x/sync/errgroup"

	"github.com/fairyhunter13/tour-catalog-service/internal/augment"
	"github.com/fairyhunter13/tour-catalog-service/internal/catalog"
	"github.com/fairyhunter13/tour-catalog-service/internal/config"
	"github.com/fairyhunter13/tour-catalog-service/internal/guidemap"
	httpapi "github.com/fairyhunter13/tour-catalog-service/internal/http"
	"github.com/fairyhunter13/tour-catalog-service/internal/model"
	"github.com/fairyhunter13/tour-catalog-service/internal/obs"
	"github.com/fairyhunter13/tour-catalog-service/internal/queue"
	"github.com/fairyhunter13/tour-catalog-service/internal/ready"
	"github.com/fairyhunter13/tour-catalog-service/internal/reviews"
)

var rootCmd = &cobra.Command{
	Use:   "tour-catalog-service",
	Short: "Tour catalog, review augmentation and neighborhood map API",
	Long: `tour-catalog-service loads the tour catalog, merges live review data
into it once at start-up and serves listings, detail data and map views
over HTTP. Review batches posted later are applied by a worker pool.

Run without arguments to start the server. Configuration comes from the
environment and an optional .env file.`,
	SilenceUsage: true,
	RunE: func(cmd *cobra.Command, args []string) error {
		return runServe(cmd.Context())
	},
}

var serveCmd = &cobra.Command{
	Use:   "serve",
	Short: "Start the HTTP server (default)",
	RunE: func(cmd *cobra.Command, args []string) error {
		return runServe(cmd.Context())
	},
}

func init() {
	rootCmd.AddCommand(serveCmd, queryCmd)
}

func main() {
	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()
	if err := rootCmd.ExecuteContext(ctx); err != nil {
		obs.Logger.Error("service_failed", "error", err)
		os.Exit(1)
	}
}

func runServe(ctx context.Context) error {
	cfg, err := config.Load()
	if err != nil {
		return err
	}
	obs.InitLogger(cfg.LogLevel)
	obs.Logger.Info("service_starting", "addr", cfg.HTTPAddr, "workers", cfg.ReviewWorkers)

	shutdownTracing, err := obs.SetupTracing(ctx, cfg.ServiceName, cfg.OTelEndpoint)
	if err != nil {
		obs.Logger.Warn("tracing_disabled", "error", err)
	}

	// A missing or broken catalog is not fatal: listing routes answer 503.
	var cat *catalog.Catalog
	if cfg.CatalogPath == "" {
		obs.Logger.Error("catalog_missing", "stage", "load", "detail", "CATALOG_PATH not set")
	} else if tours, err := catalog.LoadFile(cfg.CatalogPath); err != nil {
		obs.Logger.Error("catalog_load_failed", "path", cfg.CatalogPath, "error", err)
	} else {
		cat = catalog.New(tours)
		obs.Logger.Info("catalog_loaded", "path", cfg.CatalogPath, "tours", cat.Len())
	}

	var guides []guidemap.Guide
	if cfg.GuidesPath != "" {
		if guides, err = guidemap.LoadFile(cfg.GuidesPath); err != nil {
			obs.Logger.Error("guides_load_failed", "path", cfg.GuidesPath, "error", err)
		} else {
			obs.Logger.Info("guides_loaded", "path", cfg.GuidesPath, "guides", len(guides))
		}
	}

	gate := ready.New[[]model.Tour]()
	gate.OnReady(func(ts []model.Tour) { obs.Logger.Info("catalog_ready", "tours", len(ts)) })
	seq := &queue.Sequencer{}
	var applier queue.Applier = discardBatches{}
	if cat != nil {
		applier = cat
	}
	mgr := queue.NewManager(queue.New(cfg.ReviewQueueBuffer), applier, seq, cfg.ReviewWorkers)
	workersCtx, cancelWorkers := context.WithCancel(context.Background())
	defer cancelWorkers()
	mgr.Start(workersCtx, cfg.QueueHighWatermark)

	var fetcher augment.Fetcher
	if cfg.ReviewsURL != "" {
		fetcher = reviews.NewClient(cfg.ReviewsURL, cfg.ReviewsTimeout)
	}

	app := httpapi.NewApp(cfg, cat, gate, mgr, guides)
	srv := &http.Server{
		Addr:              cfg.HTTPAddr,
		Handler:           httpapi.NewRouter(app),
		ReadHeaderTimeout: 5 * time.Second,
		ReadTimeout:       10 * time.Second,
		WriteTimeout:      3 * time.Minute, // covers the /tours/ready long poll
		IdleTimeout:       60 * time.Second,
	}

	g, gctx := errgroup.WithContext(ctx)
	g.Go(func() error {
		augment.New(fetcher, cat, gate, seq).Run(gctx)
		return nil
	})
	g.Go(func() error {
		obs.Logger.Info("http_listen", "addr", cfg.HTTPAddr)
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			return err
		}
		return nil
	})
	g.Go(func() error {
		<-gctx.Done()
		obs.Logger.Info("shutdown_signal")
		shutdown(cfg, app, mgr, srv)
		return nil
	})
	err = g.Wait()

	mgr.Stop()
	ctxTrace, cancelTrace := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancelTrace()
	if terr := shutdownTracing(ctxTrace); terr != nil {
		obs.Logger.Warn("tracing_shutdown_error", "error", terr)
	}
	obs.Logger.Info("service_stopped")
	return err
}

// shutdown stops intake, drains queued review batches within the configured
// timeout and then closes the listener.
func shutdown(cfg config.Config, app *httpapi.App, mgr *queue.Manager, srv *http.Server) {
	app.StartShutdown()
	st := mgr.Stats()
	obs.Logger.Info("shutdown_drain_begin", "backlog_size", st.Backlog, "queue_depth", st.Depth, "worker_count", mgr.WorkerCount())

	ctxDrain, cancelDrain := context.WithTimeout(context.Background(), cfg.ShutdownTimeout)
	defer cancelDrain()
	if drained := mgr.DrainUntil(ctxDrain); !drained {
		obs.Logger.Warn("shutdown_drain_timeout")
	} else {
		obs.Logger.Info("shutdown_drain_complete")
	}

	ctxSrv, cancelSrv := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancelSrv()
	if err := srv.Shutdown(ctxSrv); err != nil {
		obs.Logger.Error("http_shutdown_error", "error", err)
	}
}

// discardBatches accepts review batches when no catalog is loaded.
type discardBatches struct{}

func (discardBatches) ApplyReviews(model.ReviewBatch) int { return 0 }
