package history

import (
	"sort"
	"sync"

	"nhl-ingest-service/internal/domain"
)

// Aggregator keeps a per-team collection of completed games, keyed by game
// id so re-ingesting an overlapping day window stays idempotent. Insertion
// order is not meaningful; TopN re-sorts on read.
type Aggregator struct {
	mu      sync.Mutex
	entries map[string][]domain.HistoryEntry
}

// NewAggregator constructs an empty Aggregator.
func NewAggregator() *Aggregator {
	return &Aggregator{
		entries: make(map[string][]domain.HistoryEntry),
	}
}

// Upsert replaces the entry with the same game id for the team, or appends
// when the game has not been seen. Replacement covers score corrections and
// games re-fetched after going final.
func (a *Aggregator) Upsert(teamID string, entry domain.HistoryEntry) {
	a.mu.Lock()
	defer a.mu.Unlock()

	list := a.entries[teamID]
	for i, existing := range list {
		if existing.GameID == entry.GameID {
			list[i] = entry
			return
		}
	}
	a.entries[teamID] = append(list, entry)
}

// TopN returns up to n entries for the team, most recent game date first,
// ties broken by game id ascending. Unknown teams yield an empty slice.
func (a *Aggregator) TopN(teamID string, n int) []domain.HistoryEntry {
	a.mu.Lock()
	list := a.entries[teamID]
	out := make([]domain.HistoryEntry, len(list))
	copy(out, list)
	a.mu.Unlock()

	sort.Slice(out, func(i, j int) bool {
		if !out[i].Date.Equal(out[j].Date) {
			return out[i].Date.After(out[j].Date)
		}
		return out[i].GameID < out[j].GameID
	})

	if n >= 0 && len(out) > n {
		out = out[:n]
	}
	return out
}

// Size returns the number of entries held for a team.
func (a *Aggregator) Size(teamID string) int {
	a.mu.Lock()
	defer a.mu.Unlock()
	return len(a.entries[teamID])
}

// Reset drops all per-team history, ahead of a full rebuild.
func (a *Aggregator) Reset() {
	a.mu.Lock()
	defer a.mu.Unlock()
	a.entries = make(map[string][]domain.HistoryEntry)
}
