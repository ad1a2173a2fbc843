package main

import (
	"context"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/YairShachar/sc2-replay-analyzer/internal/api"
	"github.com/YairShachar/sc2-replay-analyzer/internal/config"
	"github.com/YairShachar/sc2-replay-analyzer/internal/db"
	"github.com/YairShachar/sc2-replay-analyzer/internal/logger"
	"github.com/YairShachar/sc2-replay-analyzer/internal/overlay"
	"github.com/YairShachar/sc2-replay-analyzer/internal/repository/sqlite"
	"github.com/YairShachar/sc2-replay-analyzer/internal/scanner"
	"github.com/YairShachar/sc2-replay-analyzer/internal/services"
	"github.com/YairShachar/sc2-replay-analyzer/internal/worker"
)

func main() {
	cfg := config.Load()

	// Initialize logger
	log := logger.New(
		logger.WithLevel(logger.ParseLevel(cfg.LogLevel)),
		logger.WithColors(true),
	)
	logger.SetDefault(log)

	log.Info("===========================================")
	log.Info("SC2 Replay Analyzer Starting")
	log.Info("===========================================")

	if err := cfg.Validate(); err != nil {
		log.Error("invalid configuration: %v", err)
		os.Exit(1)
	}
	log.Info("configuration loaded")
	log.Debug("addr=%s", cfg.Addr)
	log.Debug("db_path=%s", cfg.DBPath)
	log.Debug("replay_folder=%s", cfg.ReplayFolder)
	log.Debug("player_name=%s", cfg.PlayerName)
	log.Debug("extractor_path=%s", cfg.ExtractorPath)
	log.Debug("scan_interval_sec=%d", cfg.ScanIntervalSec)
	log.Debug("poll_interval_sec=%d", cfg.PollIntervalSec)
	log.Debug("history_limit=%d", cfg.HistoryLimit)
	log.Debug("upstream_url=%s", cfg.UpstreamURL)
	log.Debug("log_level=%s", cfg.LogLevel)
	log.Debug("worker_count=%d", cfg.WorkerCount)
	log.Debug("queue_size=%d", cfg.QueueSize)

	// Open database
	database, err := db.Open(cfg.DBPath)
	if err != nil {
		log.Error("failed to open database: %v", err)
		os.Exit(1)
	}
	defer func() {
		log.Debug("closing database connection")
		database.Close()
	}()

	// Repositories and services
	replayRepo := sqlite.NewReplayRepository(database.DB)
	tagRepo := sqlite.NewTagRepository(database.DB)
	statsRepo := sqlite.NewStatsRepository(database.DB)

	historyService := services.NewHistoryService(replayRepo, tagRepo, cfg.PlayerName)
	replayService := services.NewReplayService(replayRepo)
	statsService := services.NewStatsService(statsRepo)
	tagService := services.NewTagService(tagRepo)

	// Ingest worker pool
	ingestPool := worker.NewPool(cfg.WorkerCount, cfg.QueueSize)

	// Overlay poller reads either the local database or a remote instance
	var source overlay.Source
	if cfg.UpstreamURL != "" {
		log.Info("overlay source: upstream %s", cfg.UpstreamURL)
		source = overlay.NewHTTPSource(cfg.UpstreamURL)
	} else {
		source = overlay.NewServiceSource(historyService, cfg.HistoryLimit)
	}
	poller := overlay.NewPoller(source, time.Duration(cfg.PollIntervalSec)*time.Second)

	srv := &api.Server{
		DB:              database,
		History:         historyService,
		Replays:         replayService,
		Stats:           statsService,
		Tags:            tagService,
		Overlay:         poller,
		HistoryLimit:    cfg.HistoryLimit,
		PollIntervalSec: cfg.PollIntervalSec,
	}

	ctx, cancel := context.WithCancel(context.Background())
	ingestPool.Start(ctx)
	go poller.Run(ctx)

	// Replay folder scanner feeds the ingest pool
	if cfg.ReplayFolder != "" {
		parser := scanner.NewExecParser(cfg.ExtractorPath, cfg.PlayerName)
		scan := scanner.New(cfg.ReplayFolder, time.Duration(cfg.ScanIntervalSec)*time.Second,
			replayRepo, parser, ingestPool)
		go scan.Run(ctx)
	} else {
		log.Info("REPLAY_FOLDER not set, replay scanning disabled")
	}

	// Configure HTTP server
	httpServer := &http.Server{
		Addr:         cfg.Addr,
		Handler:      srv.Routes(),
		ReadTimeout:  15 * time.Second,
		WriteTimeout: 30 * time.Second,
		IdleTimeout:  60 * time.Second,
	}

	// Start HTTP server
	go func() {
		log.Info("HTTP server listening on %s", cfg.Addr)
		if err := httpServer.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			log.Error("HTTP server error: %v", err)
			os.Exit(1)
		}
	}()

	// Wait for shutdown signal
	stop := make(chan os.Signal, 1)
	signal.Notify(stop, syscall.SIGINT, syscall.SIGTERM)
	sig := <-stop

	log.Info("received signal %v, initiating graceful shutdown", sig)

	shutdownCtx, shutdownCancel := context.WithTimeout(context.Background(), 30*time.Second)
	defer shutdownCancel()

	// Stop scanner, poller and workers
	log.Debug("stopping background workers")
	cancel()

	log.Debug("shutting down HTTP server")
	if err := httpServer.Shutdown(shutdownCtx); err != nil {
		log.Error("HTTP server shutdown error: %v", err)
	}

	log.Debug("stopping ingest pool")
	ingestPool.Stop()

	log.Info("===========================================")
	log.Info("SC2 Replay Analyzer Stopped")
	log.Info("===========================================")
}
