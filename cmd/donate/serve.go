package main

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"net"
	"net/http"
	"os"
	"os/signal"
	"strings"
	"syscall"
	"time"

	"github.com/AlexZinkM/donate-action/donate"
	"github.com/AlexZinkM/donate-action/internal/api"
	"github.com/AlexZinkM/donate-action/internal/client"
	"github.com/AlexZinkM/donate-action/internal/config"
	"github.com/AlexZinkM/donate-action/internal/events"
	"github.com/AlexZinkM/donate-action/internal/handler"
	"github.com/AlexZinkM/donate-action/internal/metrics"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/urfave/cli/v2"
	"golang.org/x/term"
)

func serveCommand() *cli.Command {
	return &cli.Command{
		Name:   "serve",
		Usage:  "Run the HTTP server (default)",
		Action: serve,
	}
}

func serve(c *cli.Context) error {
	// Fail fast on missing or invalid config
	if err := config.Init(); err != nil {
		return err
	}
	cfg := config.Get()

	logger := setupLogger(cfg.LogLevel)
	slog.SetDefault(logger)
	logger.Info("starting server",
		"port", cfg.Port,
		"cluster", cfg.SolanaCluster,
		"log_level", cfg.LogLevel,
	)

	var (
		m        *metrics.Metrics
		gatherer prometheus.Gatherer
	)
	if cfg.MetricsEnabled {
		reg := prometheus.NewRegistry()
		m = metrics.NewMetrics(reg)
		gatherer = reg
	}

	rpcURL := config.GetSolanaRPCURL()
	solanaClient := client.NewSolanaClient(rpcURL, cfg.SolanaCluster, cfg.SolanaRPCTimeout, m, logger)
	logger.Info("initialized solana RPC client", "url", rpcURL)

	var publisher events.Publisher = events.NopPublisher{}
	if cfg.NATSURL != "" {
		natsPublisher, err := events.NewNATSPublisher(cfg.NATSURL, cfg.NATSSubject, m, logger)
		if err != nil {
			return err
		}
		publisher = natsPublisher
	}
	defer func() {
		if err := publisher.Close(); err != nil {
			logger.Warn("failed to close event publisher", "error", err)
		}
	}()

	builder := donate.NewBuilder(solanaClient, cfg.Recipient(), cfg.BeneficiaryName, logger)
	logger.Info("donations go to", "recipient", builder.Recipient().String(), "beneficiary", cfg.BeneficiaryName)
	donateHandler := handler.NewDonateHandler(builder, publisher, m, logger, handler.Options{
		Meta:    donate.MetaFor(cfg.BeneficiaryName, cfg.ActionIconURL),
		BaseURL: cfg.PublicBaseURL,
		Cluster: cfg.SolanaCluster,
	})

	router := api.SetupRouter(donateHandler, api.RouterConfig{
		Headers: api.ActionHeaders{
			Version:      cfg.ActionVersion,
			BlockchainID: cfg.BlockchainID(),
		},
		Metrics:  m,
		Gatherer: gatherer,
	})

	srv := &http.Server{
		Addr:              net.JoinHostPort("", config.GetPort()),
		Handler:           router,
		ReadHeaderTimeout: 10 * time.Second,
		ReadTimeout:       15 * time.Second,
		WriteTimeout:      cfg.SolanaRPCTimeout + 15*time.Second,
		IdleTimeout:       60 * time.Second,
	}

	serverErrors := make(chan error, 1)
	go func() {
		logger.Info("listening", "addr", srv.Addr)
		serverErrors <- srv.ListenAndServe()
	}()

	shutdown := make(chan os.Signal, 1)
	signal.Notify(shutdown, os.Interrupt, syscall.SIGTERM)

	select {
	case err := <-serverErrors:
		if errors.Is(err, http.ErrServerClosed) {
			return nil
		}
		return fmt.Errorf("server error: %w", err)
	case sig := <-shutdown:
		logger.Info("shutdown signal received", "signal", sig.String())

		shutdownCtx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
		defer cancel()

		if err := srv.Shutdown(shutdownCtx); err != nil {
			return fmt.Errorf("failed to shutdown server gracefully: %w", err)
		}
		logger.Info("server shutdown complete")
	}
	return nil
}

// setupLogger creates a structured logger with the given log level.
// Text output on a terminal, JSON otherwise.
func setupLogger(levelStr string) *slog.Logger {
	var level slog.Level
	switch strings.ToLower(levelStr) {
	case "debug":
		level = slog.LevelDebug
	case "warn":
		level = slog.LevelWarn
	case "error":
		level = slog.LevelError
	default:
		level = slog.LevelInfo
	}

	opts := &slog.HandlerOptions{
		Level: level,
	}

	if term.IsTerminal(int(os.Stderr.Fd())) {
		return slog.New(slog.NewTextHandler(os.Stderr, opts))
	}
	return slog.New(slog.NewJSONHandler(os.Stderr, opts))
}
