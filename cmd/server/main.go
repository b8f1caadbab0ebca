// cmd/server/main.go
package main

import (
	"context"
	"errors"
	"flag"
	"io"
	"log"
	"log/slog"
	"os"
	"os/signal"
	"syscall"
	"time"

	http_api "imagegen-dispatch/internal/api/http"
	"imagegen-dispatch/internal/api/rpc"
	"imagegen-dispatch/internal/config"
	"imagegen-dispatch/internal/domain"
	"imagegen-dispatch/internal/inference"
	http_infra "imagegen-dispatch/internal/infra/http"
	"imagegen-dispatch/internal/infra/shell"
	"imagegen-dispatch/internal/queue"
	"imagegen-dispatch/internal/scheduler"
	"imagegen-dispatch/internal/tracing"
	"imagegen-dispatch/internal/usecase"
	"imagegen-dispatch/internal/worker"

	"golang.org/x/sync/errgroup"
)

// version is set at build time with -ldflags "-X main.version=...".
var version = "dev"

func main() {
	configPath := flag.String("config", "", "path to a config file (default: search ./configs and .)")
	flag.Parse()

	// 1. Load configuration
	cfg, err := config.Load(*configPath)
	if err != nil {
		log.Fatalf("Failed to load configuration: %v", err)
	}

	// 2. Initialize logger and tracer
	logger := newLogger(cfg.Log, os.Stdout)
	slog.SetDefault(logger)

	tracerShutdown, err := tracing.InitTracer(cfg.Tracing.ServiceName, cfg.Tracing.Enabled, os.Stdout)
	if err != nil {
		log.Fatalf("failed to initialize tracer: %v", err)
	}
	defer func() {
		if err := tracerShutdown(context.Background()); err != nil {
			logger.Error("failed to shutdown tracer", "error", err)
		}
	}()

	logger.Info("starting imagegen dispatch server", "version", version)

	// 3. Create root context for lifecycle management
	rootCtx, cancel := context.WithCancel(context.Background())
	defer cancel()

	// 4. Setup graceful shutdown
	setupGracefulShutdown(cancel, logger)

	// 5. Instantiate components
	policy := domain.NewParamPolicy(cfg.Inference.ParamDefaults(), cfg.Inference.ParamLimits())
	jobQueue := queue.NewGenerationQueue(cfg.Queue.MaxQueueSize, logger,
		queue.WithStatusTTL(cfg.Queue.StatusTTL),
		queue.WithMaxStatusEntries(cfg.Queue.MaxStatusEntries),
	)
	generator := newGenerator(cfg.Inference, logger)

	// Workers are not tied to rootCtx: they keep draining until the front
	// ends have stopped and Stop is called below.
	pool := worker.NewPool(jobQueue, generator, policy, logger,
		worker.WithWorkers(cfg.Queue.WorkerCount),
		worker.WithPollInterval(cfg.Queue.PollInterval),
	)
	if err := pool.Start(context.Background()); err != nil {
		log.Fatalf("Failed to start worker pool: %v", err)
	}

	retention := scheduler.NewRetentionScheduler(jobQueue, cfg.Queue.SweepInterval, logger)
	service := usecase.NewGenerationService(jobQueue, policy, pool.Workers(), cfg.Inference.ModelName,
		cfg.Server.MaxConcurrentRequests, logger)

	restServer := http_api.NewServer(http_api.Config{
		Addr:           cfg.Server.RESTAddr,
		RequestTimeout: cfg.Server.RequestTimeout,
		RateLimit:      cfg.Server.RateLimit,
		RateBurst:      cfg.Server.RateBurst,
		Build:          http_api.BuildInfo{Version: version, Device: cfg.Inference.Device},
	}, service, logger)

	grpcServer := rpc.NewServer(rpc.Config{
		Addr:            cfg.Server.GRPCAddr,
		RateLimit:       cfg.Server.RateLimit,
		RateBurst:       cfg.Server.RateBurst,
		MaxMessageBytes: cfg.Server.MaxMessageBytes,
		Build:           rpc.BuildInfo{Version: version, Device: cfg.Inference.Device},
	}, service, logger)

	// 6. Run the front ends and the retention scheduler. A plain group: one
	// front end failing leaves the other serving.
	var g errgroup.Group
	g.Go(func() error {
		if err := retention.Start(rootCtx); err != nil && !errors.Is(err, context.Canceled) {
			logger.Error("retention scheduler stopped", "error", err)
			return err
		}
		return nil
	})
	g.Go(func() error {
		if err := grpcServer.Start(rootCtx); err != nil {
			logger.Error("gRPC front end stopped", "error", err)
			return err
		}
		return nil
	})
	g.Go(func() error {
		if err := restServer.Start(rootCtx); err != nil {
			logger.Error("REST front end stopped", "error", err)
			return err
		}
		return nil
	})

	// 7. Block until shutdown
	runErr := g.Wait()
	logger.Info("front ends stopped, draining workers")

	shutdownCtx, shutdownCancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer shutdownCancel()
	if err := pool.Stop(shutdownCtx); err != nil {
		logger.Error("worker pool shutdown failed", "error", err)
	}

	if runErr != nil {
		logger.Error("application stopped with error", "error", runErr)
		return
	}
	logger.Info("application shut down")
}

func newGenerator(cfg config.InferenceConfig, logger *slog.Logger) domain.Generator {
	switch cfg.Backend {
	case "http":
		logger.Info("using remote inference backend", "endpoint", cfg.Endpoint)
		return http_infra.NewHTTPGenerator(http_infra.Options{
			Endpoint:   cfg.Endpoint,
			Timeout:    cfg.HTTPTimeout,
			MaxRetries: cfg.MaxRetries,
			Backoff:    cfg.RetryBackoff,
		}, logger)
	case "command":
		logger.Info("using command inference backend", "command", cfg.Command)
		return shell.NewCommandGenerator(cfg.Command, cfg.ModelName, cfg.CommandTimeout, logger)
	default:
		return inference.NewPlaceholderGenerator(cfg.ModelName, logger)
	}
}

func newLogger(cfg config.LogConfig, w io.Writer) *slog.Logger {
	var level slog.Level
	if err := level.UnmarshalText([]byte(cfg.Level)); err != nil {
		level = slog.LevelInfo
	}
	opts := &slog.HandlerOptions{Level: level}
	if cfg.Format == "text" {
		return slog.New(slog.NewTextHandler(w, opts))
	}
	return slog.New(slog.NewJSONHandler(w, opts))
}

func setupGracefulShutdown(cancel context.CancelFunc, logger *slog.Logger) {
	sigChan := make(chan os.Signal, 1)
	signal.Notify(sigChan, syscall.SIGINT, syscall.SIGTERM)
	go func() {
		sig := <-sigChan
		logger.Info("received signal, initiating graceful shutdown", "signal", sig.String())
		cancel()
	}()
}
