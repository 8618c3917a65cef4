package teststubs

import (
	"context"
	"sync"
	"sync/atomic"

	"nhl-ingest-service/internal/domain"
)

// StubStandingsProvider is a test double for providers.StandingsProvider.
type StubStandingsProvider struct {
	Standings []domain.Standing
	Err       error
	Calls     atomic.Int32
}

// FetchStandings returns the configured standings and error while tracking calls.
func (s *StubStandingsProvider) FetchStandings(ctx context.Context) ([]domain.Standing, error) {
	_ = ctx
	s.Calls.Add(1)
	return s.Standings, s.Err
}

// StubScheduleProvider is a test double for providers.ScheduleProvider.
// Games are keyed by date; ErrDates lets individual dates fail.
type StubScheduleProvider struct {
	Games    map[string][]domain.GameSnapshot
	Err      error
	ErrDates map[string]error
	Calls    atomic.Int32

	mu      sync.Mutex
	fetched []string
}

// FetchSchedule returns the configured games for the date.
func (s *StubScheduleProvider) FetchSchedule(ctx context.Context, date string) ([]domain.GameSnapshot, error) {
	_ = ctx
	s.Calls.Add(1)
	s.mu.Lock()
	s.fetched = append(s.fetched, date)
	s.mu.Unlock()

	if s.Err != nil {
		return nil, s.Err
	}
	if err, ok := s.ErrDates[date]; ok {
		return nil, err
	}
	return s.Games[date], nil
}

// FetchedDates returns every date requested so far.
func (s *StubScheduleProvider) FetchedDates() []string {
	s.mu.Lock()
	defer s.mu.Unlock()
	out := make([]string, len(s.fetched))
	copy(out, s.fetched)
	return out
}

// StubGameWriter is a test double for store.GameWriter.
type StubGameWriter struct {
	mu      sync.Mutex
	Err     error
	Batches [][]domain.GameRecord
}

// UpsertGames records the batch for verification in tests.
func (w *StubGameWriter) UpsertGames(ctx context.Context, records []domain.GameRecord) error {
	_ = ctx
	if w.Err != nil {
		return w.Err
	}
	w.mu.Lock()
	defer w.mu.Unlock()
	batch := make([]domain.GameRecord, len(records))
	copy(batch, records)
	w.Batches = append(w.Batches, batch)
	return nil
}

// Games flattens every recorded batch.
func (w *StubGameWriter) Games() []domain.GameRecord {
	w.mu.Lock()
	defer w.mu.Unlock()
	var all []domain.GameRecord
	for _, b := range w.Batches {
		all = append(all, b...)
	}
	return all
}

// StubTeamWriter is a test double for store.TeamWriter.
type StubTeamWriter struct {
	mu      sync.Mutex
	Err     error
	Batches [][]domain.TeamProfile
}

// UpsertTeams records the batch for verification in tests.
func (w *StubTeamWriter) UpsertTeams(ctx context.Context, records []domain.TeamProfile) error {
	_ = ctx
	if w.Err != nil {
		return w.Err
	}
	w.mu.Lock()
	defer w.mu.Unlock()
	batch := make([]domain.TeamProfile, len(records))
	copy(batch, records)
	w.Batches = append(w.Batches, batch)
	return nil
}

// Teams flattens every recorded batch.
func (w *StubTeamWriter) Teams() []domain.TeamProfile {
	w.mu.Lock()
	defer w.mu.Unlock()
	var all []domain.TeamProfile
	for _, b := range w.Batches {
		all = append(all, b...)
	}
	return all
}

// StubLogoResolver returns a predictable logo per team.
type StubLogoResolver struct{}

// TeamLogo returns "logo-<abbrev>".
func (StubLogoResolver) TeamLogo(ctx context.Context, abbrev string) string {
	_ = ctx
	return "logo-" + abbrev
}
