package providers

import (
	"context"
	"log/slog"
	"time"

	"nhl-ingest-service/internal/domain"
	"nhl-ingest-service/internal/logging"
	"nhl-ingest-service/internal/metrics"
)

const (
	opStandings = "standings"
	opSchedule  = "schedule"
)

// instrumentedProvider wraps a FeedProvider with logging and metrics.
// It adds no retries: cycle-level recovery is the scheduler's job.
type instrumentedProvider struct {
	inner   FeedProvider
	name    string
	logger  *slog.Logger
	metrics *metrics.Recorder
}

// NewInstrumented decorates the given provider with per-call logging and metrics.
func NewInstrumented(inner FeedProvider, name string, logger *slog.Logger, recorder *metrics.Recorder) FeedProvider {
	return &instrumentedProvider{
		inner:   inner,
		name:    name,
		logger:  logger,
		metrics: recorder,
	}
}

func (p *instrumentedProvider) FetchStandings(ctx context.Context) ([]domain.Standing, error) {
	start := time.Now()
	standings, err := p.inner.FetchStandings(ctx)
	p.metrics.RecordFetch(p.name, opStandings, time.Since(start), err)
	if err != nil {
		logging.Warn(p.logger, "standings fetch failed",
			slog.String(logging.FieldProvider, p.name),
			"error", err,
		)
		return nil, err
	}
	logging.Info(p.logger, "standings fetched",
		slog.String(logging.FieldProvider, p.name),
		slog.Int(logging.FieldCount, len(standings)),
		slog.Int64(logging.FieldDurationMS, time.Since(start).Milliseconds()),
	)
	return standings, nil
}

func (p *instrumentedProvider) FetchSchedule(ctx context.Context, date string) ([]domain.GameSnapshot, error) {
	start := time.Now()
	games, err := p.inner.FetchSchedule(ctx, date)
	p.metrics.RecordFetch(p.name, opSchedule, time.Since(start), err)
	if err != nil {
		logging.Warn(p.logger, "schedule fetch failed",
			slog.String(logging.FieldProvider, p.name),
			slog.String(logging.FieldDate, date),
			"error", err,
		)
		return nil, err
	}
	return games, nil
}
