package main

import (
	"context"
	"errors"
	"flag"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	logrus "github.com/sirupsen/logrus"

	"fleet_admin/internal/config"
	"fleet_admin/internal/controllers"
	"fleet_admin/internal/logger"
	"fleet_admin/internal/metrics"
	"fleet_admin/internal/middleware"
	"fleet_admin/internal/repository"
	"fleet_admin/internal/routes"
	"fleet_admin/internal/settlement"
)

func main() {
	memory := flag.Bool("memory", false, "keep data in memory instead of Postgres")
	flag.Parse()

	cfg := config.LoadAPI()
	logger.Setup(cfg.Log)

	var store repository.Store
	if *memory {
		logrus.Warn("using the in-memory store: data is lost on restart")
		store = repository.NewMemoryStore()
	} else {
		db, err := config.InitDB(cfg.DB, logger.GormLogger())
		if err != nil {
			logrus.WithError(err).Fatal("database unavailable")
		}
		store = repository.NewGormStore(db)
	}

	rates := settlement.Rates{Salary: cfg.SalaryRate, Contributions: cfg.ContributionRate}
	fc := controllers.NewFleetController(store, rates, cfg.PlatePrefix)
	r := routes.SetupAPI(fc, metrics.New("fleetapi"))

	// CORS sits outside gin so preflights never reach the router.
	handler := middleware.EnableCORS(cfg.CORSOrigins)(r)

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	logrus.WithField("addr", cfg.Addr).Info("fleet api listening")
	if err := serve(ctx, cfg.Addr, handler); err != nil {
		logrus.WithError(err).Fatal("fleet api stopped")
	}
}

func serve(ctx context.Context, addr string, handler http.Handler) error {
	httpServer := &http.Server{
		Addr:              addr,
		Handler:           handler,
		ReadHeaderTimeout: 10 * time.Second,
	}

	errCh := make(chan error, 1)
	go func() {
		errCh <- httpServer.ListenAndServe()
	}()

	select {
	case err := <-errCh:
		if errors.Is(err, http.ErrServerClosed) {
			return nil
		}
		return err
	case <-ctx.Done():
		shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
		defer cancel()
		return httpServer.Shutdown(shutdownCtx)
	}
}
