package store

import (
	"context"
	"sync"

	"nhl-ingest-service/internal/domain"
)

// MemoryStore keeps a thread-safe snapshot of written records in memory.
// It backs tests and credential-less local runs.
type MemoryStore struct {
	mu    sync.RWMutex
	games map[string]domain.GameRecord
	teams map[string]domain.TeamProfile
}

// NewMemoryStore constructs an empty MemoryStore.
func NewMemoryStore() *MemoryStore {
	return &MemoryStore{
		games: make(map[string]domain.GameRecord),
		teams: make(map[string]domain.TeamProfile),
	}
}

// UpsertGames inserts or replaces records by game id.
func (s *MemoryStore) UpsertGames(ctx context.Context, records []domain.GameRecord) error {
	_ = ctx
	s.mu.Lock()
	defer s.mu.Unlock()

	for _, g := range records {
		s.games[g.GameID] = g
	}
	return nil
}

// UpsertTeams inserts or replaces records by team id.
func (s *MemoryStore) UpsertTeams(ctx context.Context, records []domain.TeamProfile) error {
	_ = ctx
	s.mu.Lock()
	defer s.mu.Unlock()

	for _, t := range records {
		s.teams[t.TeamID] = t
	}
	return nil
}

// Game retrieves a game record by id.
func (s *MemoryStore) Game(id string) (domain.GameRecord, bool) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	g, ok := s.games[id]
	return g, ok
}

// Team retrieves a team profile by id.
func (s *MemoryStore) Team(id string) (domain.TeamProfile, bool) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	t, ok := s.teams[id]
	return t, ok
}

// GameCount returns how many distinct games have been written.
func (s *MemoryStore) GameCount() int {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return len(s.games)
}

// TeamCount returns how many distinct teams have been written.
func (s *MemoryStore) TeamCount() int {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return len(s.teams)
}
