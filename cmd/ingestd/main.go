package main

import (
	"context"
	"flag"
	"fmt"
	"log/slog"
	"os"
	"os/signal"
	"syscall"

	"github.com/jmoiron/sqlx"
	_ "github.com/lib/pq"

	"youtube_ingest/internal/config"
	"youtube_ingest/internal/extractor"
	"youtube_ingest/internal/publisher"
	"youtube_ingest/internal/scheduler"
	"youtube_ingest/internal/service"
	"youtube_ingest/internal/storage/postgres"
)

func main() {
	configPath := flag.String("config", "config.yaml", "path to config file")
	addSource := flag.String("add-source", "", "register a channel or playlist URL and exit")
	sourceName := flag.String("source-name", "", "display name for -add-source")
	intervalHours := flag.Int("interval-hours", 24, "sync interval for -add-source / -set-interval")
	removeSource := flag.Int64("remove-source", 0, "deactivate a source by id and exit")
	setInterval := flag.Int64("set-interval", 0, "update a source's sync interval by id and exit")
	listSources := flag.Bool("list-sources", false, "print registered sources and exit")
	syncOnce := flag.Bool("sync-once", false, "run a single orchestration pass and exit")
	syncSource := flag.Int64("sync-source", 0, "force-sync a single source by id and exit")
	dryRun := flag.Bool("dry-run", false, "with -sync-once, only report which sources would sync")
	flag.Parse()

	// Setup logger
	logger := setupLogger("info")

	// Load configuration
	cfg, err := config.Load(*configPath)
	if err != nil {
		logger.Error("failed to load config", "error", err)
		os.Exit(1)
	}

	logger = setupLogger(cfg.LogLevel)

	db, err := sqlx.Connect("postgres", cfg.Database.DSN())
	if err != nil {
		logger.Error("failed to connect to database", "error", err)
		os.Exit(1)
	}
	defer db.Close()

	if err := db.Ping(); err != nil {
		logger.Error("failed to ping database", "error", err)
		os.Exit(1)
	}
	logger.Info("connected to database")

	// Initialize stores
	sourceStore := postgres.NewSourceStore(db)
	videoStore := postgres.NewVideoStore(db)
	channelStore := postgres.NewChannelStore(db)
	logStore := postgres.NewIngestionLogStore(db)
	txManager := postgres.NewTransactionManager(db)

	registry := service.NewSourceRegistry(sourceStore, txManager, logger)

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	go func() {
		sigCh := make(chan os.Signal, 1)
		signal.Notify(sigCh, syscall.SIGINT, syscall.SIGTERM)
		sig := <-sigCh
		logger.Info("received shutdown signal", "signal", sig)
		cancel()
	}()

	// Registry-only commands need no gateway or broker.
	switch {
	case *addSource != "":
		src, err := registry.Add(ctx, *addSource, *sourceName, *intervalHours)
		if err != nil {
			logger.Error("failed to add source", "error", err)
			os.Exit(1)
		}
		logger.Info("source registered", "id", src.ID, "kind", src.Kind, "url", src.URL)
		return
	case *removeSource != 0:
		if err := registry.Remove(ctx, *removeSource); err != nil {
			logger.Error("failed to remove source", "error", err)
			os.Exit(1)
		}
		logger.Info("source deactivated", "id", *removeSource)
		return
	case *setInterval != 0:
		if err := registry.SetInterval(ctx, *setInterval, *intervalHours); err != nil {
			logger.Error("failed to update interval", "error", err)
			os.Exit(1)
		}
		logger.Info("interval updated", "id", *setInterval, "hours", *intervalHours)
		return
	case *listSources:
		sources, err := registry.List(ctx, false)
		if err != nil {
			logger.Error("failed to list sources", "error", err)
			os.Exit(1)
		}
		for _, src := range sources {
			name := ""
			if src.Name != nil {
				name = *src.Name
			}
			fmt.Printf("%d\t%s\t%s\t%s\tactive=%t\tevery=%dh\n",
				src.ID, src.Kind, name, src.URL, src.Active, src.SyncIntervalHours)
		}
		return
	}

	// Initialize RabbitMQ publisher
	rabbitMQ, err := publisher.NewRabbitMQ(publisher.Config{
		URL:        cfg.RabbitMQ.URL,
		Exchange:   cfg.RabbitMQ.Exchange,
		RoutingKey: cfg.RabbitMQ.RoutingKey,
		QueueName:  cfg.RabbitMQ.QueueName,
	}, logger)
	if err != nil {
		logger.Error("failed to connect to rabbitmq", "error", err)
		os.Exit(1)
	}
	defer rabbitMQ.Close()

	gateway := extractor.New(cfg.Extractor, logger)

	lists := service.NewListIngestion(gateway, videoStore, channelStore, logStore, logger)
	transcripts := service.NewTranscriptIngestion(gateway, videoStore, logStore, rabbitMQ, cfg.Transcript, logger)
	orchestrator := service.NewOrchestrator(sourceStore, logStore, lists, transcripts, cfg.Sync, logger)

	switch {
	case *syncSource != 0:
		outcome, err := orchestrator.SyncSource(ctx, *syncSource)
		if err != nil {
			logger.Error("source sync failed", "error", err)
			os.Exit(1)
		}
		logger.Info("source sync finished", "id", outcome.SourceID, "status", outcome.Status)
		return
	case *syncOnce:
		stats, err := orchestrator.SyncAll(ctx, *dryRun)
		if err != nil {
			logger.Error("sync run failed", "error", err)
			os.Exit(1)
		}
		logger.Info("sync run finished",
			"eligible", len(stats.Eligible),
			"succeeded", stats.Succeeded,
			"failed", stats.Failed,
			"dry_run", stats.DryRun,
		)
		return
	}

	sched := scheduler.NewScheduler(orchestrator, cfg.Sync.Interval, cfg.Sync.RunTimeout, logger)

	logger.Info("starting youtube ingest daemon",
		"interval", cfg.Sync.Interval,
		"max_concurrent_sources", cfg.Sync.MaxConcurrentSources,
	)

	if err := sched.Start(ctx); err != nil && err != context.Canceled {
		logger.Error("scheduler error", "error", err)
		os.Exit(1)
	}
}

func setupLogger(level string) *slog.Logger {
	var logLevel slog.Level
	switch level {
	case "debug":
		logLevel = slog.LevelDebug
	case "warn":
		logLevel = slog.LevelWarn
	case "error":
		logLevel = slog.LevelError
	default:
		logLevel = slog.LevelInfo
	}

	opts := &slog.HandlerOptions{Level: logLevel}
	handler := slog.NewJSONHandler(os.Stdout, opts)
	return slog.New(handler)
}
