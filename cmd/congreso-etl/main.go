package main

import (
	"context"
	"flag"
	"log/slog"
	"net/http"
	"os"
	"os/signal"
	"strings"
	"syscall"
	"time"

	"github.com/prometheus/client_golang/prometheus/promhttp"

	"github.com/zigmaq/congreso-etl/internal/batch"
	"github.com/zigmaq/congreso-etl/internal/config"
	"github.com/zigmaq/congreso-etl/internal/pipeline"
	"github.com/zigmaq/congreso-etl/internal/registry"
)

func main() {
	cfgPath := flag.String("config", "", "Path to YAML config (optional)")
	inputDir := flag.String("input", "", "Input root directory holding dataset directories")
	outputDir := flag.String("output", "", "Output directory (defaults to the input root)")
	formats := flag.String("formats", "", "Comma-separated output formats: csv,sqlite")
	workers := flag.Int("workers", 0, "Member worker count")
	watch := flag.Bool("watch", false, "Keep running and reprocess datasets on file changes")
	reprocess := flag.Bool("reprocess", false, "Reprocess datasets even when outputs are up to date")
	metricsAddr := flag.String("metrics-addr", "", "Listen address for the Prometheus /metrics endpoint")
	flag.Parse()

	logger := slog.New(slog.NewTextHandler(os.Stdout, &slog.HandlerOptions{Level: slog.LevelInfo}))
	slog.SetDefault(logger)

	// ── Load config, flags override ──────────────────────────────────────────
	cfg := config.Default()
	if *cfgPath != "" {
		var err error
		cfg, err = config.Load(*cfgPath)
		if err != nil {
			slog.Error("failed to load config", "err", err)
			os.Exit(1)
		}
	}
	if *inputDir != "" {
		cfg.InputDir = *inputDir
		if *outputDir == "" && *cfgPath == "" {
			cfg.OutputDir = *inputDir
		}
	}
	if *outputDir != "" {
		cfg.OutputDir = *outputDir
	}
	if *formats != "" {
		cfg.Formats = strings.Split(*formats, ",")
	}
	if *workers > 0 {
		cfg.Engine.MemberWorkers = *workers
	}
	if *watch {
		cfg.Watch = true
	}
	if *reprocess {
		cfg.Engine.ReprocessAll = true
	}
	if *metricsAddr != "" {
		cfg.MetricsAddr = *metricsAddr
	}
	if err := config.Validate(cfg); err != nil {
		slog.Error("config validation failed", "err", err)
		os.Exit(1)
	}

	// ── Registry with overrides ──────────────────────────────────────────────
	reg := registry.Default().Overrides(
		cfg.Mappings.Activities, cfg.Mappings.Parties, cfg.Mappings.States)

	// ── Pipeline + runner ────────────────────────────────────────────────────
	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	pipe := pipeline.New(reg, cfg.Engine.MemberWorkers, cfg.OutputDir, cfg.Formats)
	runner := batch.NewRunner(pipe, cfg.OutputDir, cfg.Formats, cfg.Engine.ReprocessAll)

	// ── Metrics endpoint ─────────────────────────────────────────────────────
	var srv *http.Server
	if cfg.MetricsAddr != "" {
		mux := http.NewServeMux()
		mux.Handle("/metrics", promhttp.Handler())
		srv = &http.Server{
			Addr:        cfg.MetricsAddr,
			Handler:     mux,
			ReadTimeout: 10 * time.Second,
			IdleTimeout: 60 * time.Second,
		}
		go func() {
			slog.Info("metrics endpoint", "addr", cfg.MetricsAddr)
			if err := srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
				slog.Error("metrics server error", "err", err)
			}
		}()
	}

	// ── Graceful shutdown on SIGINT/SIGTERM ──────────────────────────────────
	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	go func() {
		<-quit
		slog.Info("shutting down…")
		cancel()
	}()

	// ── Run ──────────────────────────────────────────────────────────────────
	exit := 0
	if cfg.Watch {
		if err := runner.Watch(ctx, cfg.InputDir); err != nil && err != context.Canceled {
			slog.Error("watch failed", "err", err)
			exit = 1
		}
	} else {
		sum, err := runner.Run(ctx, cfg.InputDir)
		if err != nil {
			slog.Error("batch failed", "err", err)
			exit = 1
		} else if sum.Failed > 0 {
			exit = 1
		}
	}

	if srv != nil {
		shutCtx, shutCancel := context.WithTimeout(context.Background(), 5*time.Second)
		_ = srv.Shutdown(shutCtx)
		shutCancel()
	}
	os.Exit(exit)
}
