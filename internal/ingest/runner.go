package ingest

import (
	"context"
	"log/slog"
	"strings"
	"time"

	"golang.org/x/sync/errgroup"

	"nhl-ingest-service/internal/domain"
	"nhl-ingest-service/internal/history"
	"nhl-ingest-service/internal/logging"
	"nhl-ingest-service/internal/logos"
	"nhl-ingest-service/internal/metrics"
	"nhl-ingest-service/internal/providers"
	"nhl-ingest-service/internal/records"
	"nhl-ingest-service/internal/store"
	"nhl-ingest-service/internal/timeutil"
)

// Bounded fan-out for per-date schedule fetches within one cycle.
const scheduleFanout = 4

const defaultHistorySize = 5

// Signals summarizes what one cycle observed, for the scheduler's sleep
// decision. NextStart is zero when no future start was seen.
type Signals struct {
	Live      bool
	Pending   bool
	NextStart time.Time
}

// LogoResolver resolves the logo attached to team profile records.
type LogoResolver interface {
	TeamLogo(ctx context.Context, abbrev string) string
}

// RunnerConfig wires a Runner's collaborators.
type RunnerConfig struct {
	Feed        providers.FeedProvider
	Games       store.GameWriter
	Teams       store.TeamWriter
	History     *history.Aggregator
	Logos       LogoResolver
	Logger      *slog.Logger
	Metrics     *metrics.Recorder
	HistorySize int
}

// Runner executes one ingestion pass: standings, a day window of schedules,
// history aggregation, and the downstream writes.
type Runner struct {
	feed        providers.FeedProvider
	games       store.GameWriter
	teams       store.TeamWriter
	history     *history.Aggregator
	logos       LogoResolver
	logger      *slog.Logger
	metrics     *metrics.Recorder
	historySize int
	now         func() time.Time
}

// NewRunner constructs a Runner.
func NewRunner(cfg RunnerConfig) *Runner {
	size := cfg.HistorySize
	if size <= 0 {
		size = defaultHistorySize
	}
	return &Runner{
		feed:        cfg.Feed,
		games:       cfg.Games,
		teams:       cfg.Teams,
		history:     cfg.History,
		logos:       cfg.Logos,
		logger:      cfg.Logger,
		metrics:     cfg.Metrics,
		historySize: size,
		now:         time.Now,
	}
}

// Run executes one pass over today ± radius days.
//
// The standings fetch is fatal: every game side carries a record string
// pulled from it, so the cycle aborts rather than write stale records.
// Individual schedule days are not: a bad day is skipped and the rest of
// the window still lands.
func (r *Runner) Run(ctx context.Context, radius int) (Signals, error) {
	now := r.now().UTC()

	idx, err := records.Build(ctx, r.feed)
	if err != nil {
		return Signals{}, err
	}

	dates := timeutil.DateWindow(now, radius)
	byDate := make([][]domain.GameSnapshot, len(dates))

	g, gctx := errgroup.WithContext(ctx)
	g.SetLimit(scheduleFanout)
	for i, date := range dates {
		i, date := i, date
		g.Go(func() error {
			games, err := r.feed.FetchSchedule(gctx, date)
			if err != nil {
				logging.Warn(r.logger, "schedule day skipped",
					slog.String(logging.FieldDate, date),
					"error", err,
				)
				return nil
			}
			byDate[i] = games
			return nil
		})
	}
	// Per-date errors are swallowed above; Wait only orders the writes
	// below after every fetch has finished.
	_ = g.Wait()
	if err := ctx.Err(); err != nil {
		return Signals{}, err
	}

	var sig Signals
	var toSave []domain.GameRecord
	for _, games := range byDate {
		for _, snap := range games {
			record := r.buildRecord(snap, idx)
			observeSignals(&sig, record.Status, snap.StartTime, now)
			toSave = append(toSave, record)

			if record.Status == domain.StatusFinal {
				r.history.Upsert(record.Home.Abbrev, domain.SideHistoryEntry(record, true))
				r.history.Upsert(record.Away.Abbrev, domain.SideHistoryEntry(record, false))
			}
		}
	}

	if len(toSave) > 0 {
		if err := r.games.UpsertGames(ctx, toSave); err != nil {
			return Signals{}, err
		}
	}

	profiles := r.buildProfiles(ctx, idx)
	if len(profiles) > 0 {
		if err := r.teams.UpsertTeams(ctx, profiles); err != nil {
			return Signals{}, err
		}
	}

	r.metrics.RecordUpserts(len(toSave), len(profiles))
	logging.Info(r.logger, "cycle ingested",
		slog.Int(logging.FieldRadius, radius),
		slog.Int("games", len(toSave)),
		slog.Int("teams", len(profiles)),
	)
	return sig, nil
}

func (r *Runner) buildRecord(snap domain.GameSnapshot, idx *records.Index) domain.GameRecord {
	venue := snap.Venue
	if venue == "" {
		venue = domain.DefaultVenue
	}
	return domain.GameRecord{
		GameID:            snap.ID,
		StartTime:         snap.StartTime,
		Status:            domain.Classify(snap.GameState),
		Venue:             venue,
		Broadcasts:        strings.Join(snap.Broadcasts, ", "),
		WinningGoalScorer: snap.WinningGoalScorer,
		Period:            domain.FormatPeriod(snap.PeriodType, snap.PeriodNumber),
		Clock:             domain.FormatClock(snap.ClockRemaining, snap.ClockIntermission),
		Home:              buildSide(snap.Home, idx),
		Away:              buildSide(snap.Away, idx),
	}
}

func buildSide(team domain.TeamSnapshot, idx *records.Index) domain.TeamSide {
	return domain.TeamSide{
		ID:     team.ID,
		Abbrev: team.Abbrev,
		Name:   team.Name,
		Score:  team.Score,
		Logo:   logos.URL(team.Abbrev),
		Record: idx.Record(team.Abbrev),
	}
}

// observeSignals folds one game into the cycle's scheduling signals.
// Pending means the feed still says Scheduled but the clock has passed the
// start; a zero start time never arms either signal.
func observeSignals(sig *Signals, status domain.Status, start, now time.Time) {
	if status == domain.StatusLive {
		sig.Live = true
	}
	if start.IsZero() {
		return
	}
	if status == domain.StatusScheduled && !start.After(now) {
		sig.Pending = true
	}
	if start.After(now) {
		if sig.NextStart.IsZero() || start.Before(sig.NextStart) {
			sig.NextStart = start
		}
	}
}

// buildProfiles assembles one profile per team in the current record index.
func (r *Runner) buildProfiles(ctx context.Context, idx *records.Index) []domain.TeamProfile {
	teams := idx.Teams()
	profiles := make([]domain.TeamProfile, 0, len(teams))
	for _, abbrev := range teams {
		entry, _ := idx.Lookup(abbrev)
		profiles = append(profiles, domain.TeamProfile{
			TeamID:    abbrev,
			Name:      entry.Standing.Name,
			Record:    entry.RecordString,
			Logo:      r.logos.TeamLogo(ctx, abbrev),
			LastGames: r.history.TopN(abbrev, r.historySize),
		})
	}
	return profiles
}
