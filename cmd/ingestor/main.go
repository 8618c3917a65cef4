package main

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/joho/godotenv"

	"nhl-ingest-service/internal/config"
	"nhl-ingest-service/internal/history"
	"nhl-ingest-service/internal/ingest"
	"nhl-ingest-service/internal/logging"
	"nhl-ingest-service/internal/logos"
	"nhl-ingest-service/internal/metrics"
	"nhl-ingest-service/internal/providers"
	"nhl-ingest-service/internal/providers/fixture"
	"nhl-ingest-service/internal/providers/nhle"
	"nhl-ingest-service/internal/store"
	"nhl-ingest-service/internal/store/firestoredb"
)

const appVersion = "dev"

func main() {
	// Local development convenience; absent .env files are fine.
	_ = godotenv.Load()

	cfg := config.Load()
	logger := logging.NewLogger(logging.Config{
		Level:   os.Getenv("LOG_LEVEL"),
		Format:  os.Getenv("LOG_FORMAT"),
		Service: "nhl-ingest-service",
		Version: appVersion,
	})

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	if err := run(ctx, cfg, logger); err != nil {
		logging.Error(logger, "ingestor exited", err)
		os.Exit(1)
	}
}

func run(ctx context.Context, cfg config.Config, logger *slog.Logger) error {
	recorder, promHandler, shutdownMetrics, err := metrics.Setup(ctx, metrics.TelemetryConfig{
		Enabled:      cfg.Metrics.Enabled,
		ServiceName:  cfg.Metrics.ServiceName,
		OtlpEndpoint: cfg.Metrics.OtlpEndpoint,
		OtlpInsecure: cfg.Metrics.OtlpInsecure,
	})
	if err != nil {
		return fmt.Errorf("metrics setup: %w", err)
	}
	defer func() {
		shutdownCtx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
		defer cancel()
		if err := shutdownMetrics(shutdownCtx); err != nil {
			logging.Warn(logger, "metrics shutdown", "error", err)
		}
	}()

	feed, err := buildFeed(cfg, logger, recorder)
	if err != nil {
		return err
	}

	games, teams, closeStore, err := buildStore(ctx, cfg, logger, recorder)
	if err != nil {
		return err
	}
	defer closeStore()

	hist := history.NewAggregator()
	runner := ingest.NewRunner(ingest.RunnerConfig{
		Feed:        feed,
		Games:       games,
		Teams:       teams,
		History:     hist,
		Logos:       logos.NewFetcher(logos.Config{Logger: logger}),
		Logger:      logger,
		Metrics:     recorder,
		HistorySize: cfg.Ingest.HistorySize,
	})
	scheduler := ingest.NewScheduler(runner, hist, ingest.SchedulerConfig{
		FullFetchInterval:      cfg.Ingest.FullFetchInterval,
		FullRadius:             cfg.Ingest.FullRadius,
		PartialRadius:          cfg.Ingest.PartialRadius,
		ResetHistoryEveryCycle: cfg.Ingest.ResetHistoryEveryCycle,
	}, logger, recorder)

	if promHandler != nil {
		srv := observabilityServer(cfg.Metrics.Port, promHandler, scheduler)
		go func() {
			logging.Info(logger, "metrics listener started", slog.String("port", cfg.Metrics.Port))
			if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
				logging.Error(logger, "metrics listener failed", err)
			}
		}()
		defer func() {
			shutdownCtx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
			defer cancel()
			_ = srv.Shutdown(shutdownCtx)
		}()
	}

	scheduler.Run(ctx)
	return nil
}

func buildFeed(cfg config.Config, logger *slog.Logger, recorder *metrics.Recorder) (providers.FeedProvider, error) {
	var inner providers.FeedProvider
	switch cfg.Provider {
	case "nhle":
		inner = nhle.NewClient(nhle.Config{
			BaseURL:    cfg.NHLE.BaseURL,
			HTTPClient: &http.Client{Timeout: cfg.NHLE.HTTPTimeout},
		})
	case "fixture":
		inner = fixture.New()
	default:
		return nil, fmt.Errorf("unknown provider %q", cfg.Provider)
	}
	return providers.NewInstrumented(inner, cfg.Provider, logger, recorder), nil
}

func buildStore(ctx context.Context, cfg config.Config, logger *slog.Logger, recorder *metrics.Recorder) (store.GameWriter, store.TeamWriter, func(), error) {
	switch cfg.Store {
	case "firestore":
		fs, err := firestoredb.New(ctx, firestoredb.Config{
			ProjectID:       cfg.Firestore.ProjectID,
			CredentialsFile: cfg.Firestore.CredentialsFile,
			GamesCollection: cfg.Firestore.GamesCollection,
			TeamsCollection: cfg.Firestore.TeamsCollection,
			WriteTimeout:    cfg.Firestore.WriteTimeout,
		}, logger, recorder)
		if err != nil {
			return nil, nil, nil, fmt.Errorf("firestore setup: %w", err)
		}
		return fs, fs, func() { _ = fs.Close() }, nil
	case "memory":
		mem := store.NewMemoryStore()
		return mem, mem, func() {}, nil
	default:
		return nil, nil, nil, fmt.Errorf("unknown store %q", cfg.Store)
	}
}

func observabilityServer(port string, promHandler http.Handler, scheduler *ingest.Scheduler) *http.Server {
	mux := http.NewServeMux()
	mux.Handle("/metrics", promHandler)
	mux.HandleFunc("/healthz", func(w http.ResponseWriter, _ *http.Request) {
		w.WriteHeader(http.StatusOK)
		_, _ = w.Write([]byte("ok"))
	})
	mux.HandleFunc("/readyz", func(w http.ResponseWriter, _ *http.Request) {
		if scheduler.Status().IsReady() {
			w.WriteHeader(http.StatusOK)
			_, _ = w.Write([]byte("ready"))
			return
		}
		w.WriteHeader(http.StatusServiceUnavailable)
		_, _ = w.Write([]byte("not ready"))
	})
	return &http.Server{
		Addr:              ":" + port,
		Handler:           mux,
		ReadHeaderTimeout: 5 * time.Second,
	}
}
