package ingest

import (
	"context"
	"log/slog"
	"sync"
	"time"

	"github.com/google/uuid"

	"nhl-ingest-service/internal/history"
	"nhl-ingest-service/internal/logging"
	"nhl-ingest-service/internal/metrics"
)

const (
	// Tight poll while a game is live or overdue to start.
	activePollInterval = time.Minute
	// Wake this far ahead of the next scheduled start.
	startLead = 5 * time.Minute
	// Cap on armed sleeps; guards against clock drift and long gaps.
	maxArmedSleep = 4 * time.Hour
	// Nothing scheduled at all.
	idleSleep = time.Hour
	// Fixed backoff after a failed cycle; the loop never gives up.
	errorBackoff = time.Minute

	modeFull    = "full"
	modePartial = "partial"
)

// CycleRunner runs one ingestion pass over the given day-window radius.
type CycleRunner interface {
	Run(ctx context.Context, radius int) (Signals, error)
}

// SchedulerConfig controls cadence and the history lifecycle.
type SchedulerConfig struct {
	FullFetchInterval      time.Duration
	FullRadius             int
	PartialRadius          int
	ResetHistoryEveryCycle bool
}

// Status describes the recent health of the ingest loop.
type Status struct {
	ConsecutiveFailures int
	LastError           string
	LastAttempt         time.Time
	LastSuccess         time.Time
}

// IsReady reports whether the loop has had a recent success and is not
// failing repeatedly.
func (s Status) IsReady() bool {
	if s.LastSuccess.IsZero() {
		return false
	}
	return s.ConsecutiveFailures < 3
}

// Scheduler drives the ingest loop: full-vs-partial window selection, the
// history reset policy, and the adaptive sleep between cycles. Apart from
// the full-fetch timestamp the sleep decision is memoryless: it depends
// only on the signals of the cycle that just ran.
type Scheduler struct {
	runner  CycleRunner
	history *history.Aggregator
	cfg     SchedulerConfig
	logger  *slog.Logger
	metrics *metrics.Recorder
	now     func() time.Time

	lastFullFetch time.Time

	statusMu sync.RWMutex
	status   Status
}

// NewScheduler constructs a Scheduler with sane defaults.
func NewScheduler(runner CycleRunner, hist *history.Aggregator, cfg SchedulerConfig, logger *slog.Logger, recorder *metrics.Recorder) *Scheduler {
	if cfg.FullFetchInterval <= 0 {
		cfg.FullFetchInterval = time.Hour
	}
	if cfg.FullRadius < 0 {
		cfg.FullRadius = 0
	}
	if cfg.PartialRadius < 0 {
		cfg.PartialRadius = 0
	}
	return &Scheduler{
		runner:  runner,
		history: hist,
		cfg:     cfg,
		logger:  logger,
		metrics: recorder,
		now:     time.Now,
	}
}

// Run loops until the context is cancelled. Cycle failures are logged and
// retried after a fixed backoff; they never stop the loop.
func (s *Scheduler) Run(ctx context.Context) {
	logging.Info(s.logger, "ingest loop started",
		slog.Duration("full_fetch_interval", s.cfg.FullFetchInterval),
		slog.Int("full_radius", s.cfg.FullRadius),
		slog.Int("partial_radius", s.cfg.PartialRadius),
	)

	for {
		if ctx.Err() != nil {
			logging.Info(s.logger, "ingest loop stopped")
			return
		}
		sleep := s.runCycle(ctx)
		if !sleepCtx(ctx, sleep) {
			logging.Info(s.logger, "ingest loop stopped")
			return
		}
	}
}

// runCycle executes one cycle and returns how long to sleep before the next.
func (s *Scheduler) runCycle(ctx context.Context) time.Duration {
	now := s.now().UTC()
	isFull := now.Sub(s.lastFullFetch) > s.cfg.FullFetchInterval

	mode, radius := modePartial, s.cfg.PartialRadius
	if isFull {
		mode, radius = modeFull, s.cfg.FullRadius
	}

	if s.cfg.ResetHistoryEveryCycle || isFull {
		s.history.Reset()
	}

	cycleID := uuid.NewString()
	logging.Info(s.logger, "cycle started",
		slog.String(logging.FieldCycleID, cycleID),
		slog.String(logging.FieldMode, mode),
		slog.Int(logging.FieldRadius, radius),
	)

	start := time.Now()
	s.recordAttempt(now)
	sig, err := s.runner.Run(ctx, radius)
	s.metrics.RecordCycle(mode, time.Since(start), err)
	if err != nil {
		s.recordFailure(err, now)
		logging.Error(s.logger, "cycle failed", err,
			slog.String(logging.FieldCycleID, cycleID),
			slog.String(logging.FieldMode, mode),
			slog.Duration(logging.FieldSleep, errorBackoff),
		)
		return errorBackoff
	}
	s.recordSuccess(now)

	if isFull {
		s.lastFullFetch = now
	}

	sleep, reason := nextSleep(sig, s.now().UTC())
	logging.Info(s.logger, "cycle complete",
		slog.String(logging.FieldCycleID, cycleID),
		slog.String(logging.FieldMode, mode),
		slog.String(logging.FieldReason, reason),
		slog.Duration(logging.FieldSleep, sleep),
		slog.Int64(logging.FieldDurationMS, time.Since(start).Milliseconds()),
	)
	return sleep
}

// nextSleep picks the inter-cycle sleep, in priority order: action now,
// action coming, nothing on the horizon.
func nextSleep(sig Signals, now time.Time) (time.Duration, string) {
	switch {
	case sig.Live:
		return activePollInterval, "live game"
	case sig.Pending:
		return activePollInterval, "pending start"
	case !sig.NextStart.IsZero():
		wake := sig.NextStart.Add(-startLead)
		until := wake.Sub(now)
		if until <= 0 {
			return activePollInterval, "start imminent"
		}
		if until > maxArmedSleep {
			return maxArmedSleep, "next start (capped)"
		}
		return until, "next start"
	default:
		return idleSleep, "idle"
	}
}

// sleepCtx sleeps for d, returning false if the context was cancelled first.
func sleepCtx(ctx context.Context, d time.Duration) bool {
	timer := time.NewTimer(d)
	defer timer.Stop()
	select {
	case <-ctx.Done():
		return false
	case <-timer.C:
		return true
	}
}

func (s *Scheduler) recordAttempt(at time.Time) {
	s.statusMu.Lock()
	defer s.statusMu.Unlock()
	s.status.LastAttempt = at
}

func (s *Scheduler) recordSuccess(at time.Time) {
	s.statusMu.Lock()
	defer s.statusMu.Unlock()
	s.status.ConsecutiveFailures = 0
	s.status.LastError = ""
	s.status.LastSuccess = at
}

func (s *Scheduler) recordFailure(err error, at time.Time) {
	s.statusMu.Lock()
	defer s.statusMu.Unlock()
	s.status.ConsecutiveFailures++
	if err != nil {
		s.status.LastError = err.Error()
	}
	s.status.LastAttempt = at
}

// Status returns a snapshot of the loop's recent health.
func (s *Scheduler) Status() Status {
	s.statusMu.RLock()
	defer s.statusMu.RUnlock()
	return s.status
}
