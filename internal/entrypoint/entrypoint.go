package entrypoint

import (
	"context"
	"encoding/hex"
	"fmt"
	"log"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/gin-gonic/gin"

	"github.com/citylib/frontdesk/internal/config"
	"github.com/citylib/frontdesk/internal/database"
	"github.com/citylib/frontdesk/internal/database/loans"
	http_controllers "github.com/citylib/frontdesk/internal/http"
	"github.com/citylib/frontdesk/internal/scheduler"
	"github.com/citylib/frontdesk/internal/session"
	"github.com/citylib/frontdesk/internal/workflows"
)

// ShutdownFunc is called during graceful shutdown to clean up resources.
type ShutdownFunc func(ctx context.Context)

func Serve(router *gin.Engine, cfg *config.Config, onShutdown ShutdownFunc) {
	timeout := time.Duration(cfg.Global.ShutdownTimeoutInSeconds) * time.Second

	srv := &http.Server{
		Addr:    fmt.Sprintf("%s:%d", cfg.HTTP.Host, cfg.HTTP.Port),
		Handler: router,
	}

	go func() {
		fmt.Printf("Starting server at %s:%d\n", cfg.HTTP.Host, cfg.HTTP.Port)
		if err := srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			log.Fatalf("listen: %s\n", err)
		}
	}()

	// Graceful shutdown on SIGINT/SIGTERM.
	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit
	log.Printf("Shutdown Server, waiting %v before killing\n", timeout)

	ctx, cancel := context.WithTimeout(context.Background(), timeout)
	defer cancel()

	if onShutdown != nil {
		onShutdown(ctx)
	}

	if err := srv.Shutdown(ctx); err != nil {
		log.Fatal("Server Shutdown:", err)
	}

	log.Println("Server exiting")
}

func Run(cfg *config.Config, version string) {
	log.Printf("Starting Front Desk v%s", version)

	// Initialize database
	db, err := database.New(cfg.Database.Path)
	if err != nil {
		log.Fatalf("Failed to initialize database: %v", err)
	}
	defer func() {
		if err := db.Close(); err != nil {
			log.Printf("Error closing database: %v", err)
		}
	}()

	// Workflow core
	wf := workflows.NewService(db, cfg.Store.QueryTimeout, cfg.Loans.PeriodDays)

	// Session manager for flash messages
	sessions, err := session.NewManager(db.DB, cfg.Session)
	if err != nil {
		log.Fatalf("Failed to initialize session manager: %v", err)
	}

	// CSRF secret: configured or generated per-process
	var csrfSecret []byte
	if cfg.Session.Secret != "" {
		csrfSecret, err = hex.DecodeString(cfg.Session.Secret)
		if err != nil {
			// Not hex, use as raw bytes
			csrfSecret = []byte(cfg.Session.Secret)
		}
	} else {
		secret, err := session.GenerateSecret()
		if err != nil {
			log.Fatalf("Failed to generate CSRF secret: %v", err)
		}
		csrfSecret, _ = hex.DecodeString(secret)
		log.Printf("Generated session secret (set SESSION_SECRET to persist)")
	}

	// Overdue loan scan
	var overdueScan *scheduler.OverdueScanScheduler
	if cfg.Scheduler.OverdueScanEnabled {
		overdueScan = scheduler.NewOverdueScanScheduler(
			loans.NewRepository(db),
			cfg.Scheduler.OverdueScanSchedule,
			cfg.Loans.PeriodDays,
		)
		if err := overdueScan.Start(context.Background()); err != nil {
			log.Fatalf("Failed to start overdue scan scheduler: %v", err)
		}
	}

	router := http_controllers.NewRouter(http_controllers.RouterConfig{
		Workflows:     wf,
		Database:      db,
		Sessions:      sessions,
		CSRFSecret:    csrfSecret,
		SecureCookies: cfg.Session.SecureCookies,
		TemplatesPath: cfg.UI.TemplatesPath,
		Version:       version,
	})

	onShutdown := func(ctx context.Context) {
		if overdueScan != nil {
			overdueScan.Stop()
		}
	}

	Serve(router, cfg, onShutdown)
}
