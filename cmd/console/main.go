package main

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	logrus "github.com/sirupsen/logrus"

	"fleet_admin/internal/api"
	"fleet_admin/internal/config"
	"fleet_admin/internal/console"
	"fleet_admin/internal/logger"
	"fleet_admin/internal/metrics"
	"fleet_admin/internal/routes"
)

func main() {
	// `console hash <password>` prints a value for ADMIN_PASSWORD_HASH.
	if len(os.Args) > 1 && os.Args[1] == "hash" {
		if len(os.Args) != 3 {
			fmt.Fprintln(os.Stderr, "usage: console hash <password>")
			os.Exit(2)
		}
		hash, err := console.HashPassword(os.Args[2])
		if err != nil {
			fmt.Fprintln(os.Stderr, err)
			os.Exit(1)
		}
		fmt.Println(hash)
		return
	}

	cfg := config.LoadConsole()
	logger.Setup(cfg.Log)

	collector := metrics.New("console")
	client := api.NewClient(cfg.APIBaseURL,
		api.WithHTTPClient(&http.Client{Transport: collector.InstrumentTransport(nil)}),
		api.WithLogger(logrus.StandardLogger()),
	)

	srv := console.NewServer(client, cfg)
	if !srv.AuthEnabled() {
		logrus.Warn("ADMIN_PASSWORD_HASH is empty: console login disabled")
	}
	r := routes.SetupConsole(srv, collector)

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	logrus.WithFields(logrus.Fields{"addr": cfg.Addr, "backend": client.BaseURL()}).Info("console listening")
	if err := serve(ctx, cfg.Addr, r); err != nil {
		logrus.WithError(err).Fatal("console stopped")
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
