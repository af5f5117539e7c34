package daemon

import (
	"context"
	"fmt"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/ecotrack-app/ecotrack/internal/api"
	"github.com/ecotrack-app/ecotrack/internal/app/progress"
	"github.com/ecotrack-app/ecotrack/internal/app/tracker"
	"github.com/ecotrack-app/ecotrack/internal/health"
	_ "github.com/ecotrack-app/ecotrack/internal/infra/metrics" // Register Prometheus metrics
	"github.com/ecotrack-app/ecotrack/internal/infra/sqlite"
)

// Daemon is the core EcoTrack runtime. It wires together all services.
type Daemon struct {
	Config  Config
	DB      *sqlite.DB
	Store   *progress.Store
	Session *tracker.Session
	Server  *api.Server
	Health  *health.Checker
	cancel  context.CancelFunc
}

// New creates and initializes a Daemon with all services wired.
func New(version string) (*Daemon, error) {
	cfg, err := LoadConfig()
	if err != nil {
		return nil, fmt.Errorf("load config: %w", err)
	}

	return NewWithConfig(cfg, version)
}

// NewWithConfig creates a Daemon with the given configuration.
func NewWithConfig(cfg Config, version string) (*Daemon, error) {
	dataDir := cfg.Data.Dir
	if dataDir == "" {
		dataDir = ecotrackHome()
	}

	db, err := sqlite.Open(dataDir)
	if err != nil {
		return nil, fmt.Errorf("open database: %w", err)
	}

	store := progress.NewStore(db)
	session := tracker.NewSession(store)

	srv := api.NewServer(session, version)
	if cfg.Telemetry.Prometheus {
		srv.EnableMetrics()
	}

	checker := health.NewChecker(db, dataDir)
	srv.SetHealthChecker(checker)

	return &Daemon{
		Config:  cfg,
		DB:      db,
		Store:   store,
		Session: session,
		Server:  srv,
		Health:  checker,
	}, nil
}

// Serve starts the HTTP server and blocks until shutdown.
func (d *Daemon) Serve(ctx context.Context) error {
	ctx, cancel := context.WithCancel(ctx)
	d.cancel = cancel

	go d.Health.Run(ctx)

	addr := fmt.Sprintf("%s:%d", d.Config.API.Host, d.Config.API.Port)

	httpServer := &http.Server{
		Addr:         addr,
		Handler:      d.Server.Handler(),
		ReadTimeout:  30 * time.Second,
		WriteTimeout: 30 * time.Second,
		IdleTimeout:  2 * time.Minute,
	}

	// Graceful shutdown on signal
	sigCh := make(chan os.Signal, 1)
	signal.Notify(sigCh, syscall.SIGINT, syscall.SIGTERM)

	go func() {
		select {
		case <-sigCh:
		case <-ctx.Done():
		}

		shutdownCtx, shutdownCancel := context.WithTimeout(context.Background(), 30*time.Second)
		defer shutdownCancel()

		_ = httpServer.Shutdown(shutdownCtx)
		_ = d.DB.Close()
	}()

	fmt.Printf("EcoTrack serving on http://%s\n", addr)
	if d.Config.Telemetry.Prometheus {
		fmt.Printf("  Metrics: http://%s/metrics\n", addr)
	}

	if err := httpServer.ListenAndServe(); err != http.ErrServerClosed {
		return err
	}
	return nil
}

// Close shuts down all daemon resources.
func (d *Daemon) Close() {
	if d.cancel != nil {
		d.cancel()
	}
	if d.DB != nil {
		_ = d.DB.Close()
	}
}
