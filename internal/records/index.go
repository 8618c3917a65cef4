package records

import (
	"context"
	"fmt"
	"sort"

	"nhl-ingest-service/internal/domain"
	"nhl-ingest-service/internal/providers"
)

// Entry pairs a formatted record string with the raw standing it came from.
type Entry struct {
	RecordString string
	Standing     domain.Standing
}

// Index maps team abbreviation to its season record for one cycle.
// It is rebuilt wholesale each cycle; stale entries never survive a fetch.
type Index struct {
	entries map[string]Entry
}

// Build fetches the current standings and indexes them by team.
// A standings failure propagates: team records are attached to every game
// side, so a cycle must not run with a stale or partial index.
func Build(ctx context.Context, provider providers.StandingsProvider) (*Index, error) {
	standings, err := provider.FetchStandings(ctx)
	if err != nil {
		return nil, fmt.Errorf("records: standings fetch: %w", err)
	}

	entries := make(map[string]Entry, len(standings))
	for _, s := range standings {
		entries[s.Abbrev] = Entry{
			RecordString: FormatRecord(s.Wins, s.Losses, s.OTLosses),
			Standing:     s,
		}
	}
	return &Index{entries: entries}, nil
}

// FormatRecord renders wins-losses-otLosses, e.g. "12-5-2".
func FormatRecord(wins, losses, otLosses int) string {
	return fmt.Sprintf("%d-%d-%d", wins, losses, otLosses)
}

// Record returns the formatted record for a team, or "" when unknown.
func (x *Index) Record(teamID string) string {
	if x == nil {
		return ""
	}
	return x.entries[teamID].RecordString
}

// Lookup returns the full entry for a team.
func (x *Index) Lookup(teamID string) (Entry, bool) {
	if x == nil {
		return Entry{}, false
	}
	e, ok := x.entries[teamID]
	return e, ok
}

// Teams returns all indexed team abbreviations in sorted order.
func (x *Index) Teams() []string {
	if x == nil {
		return nil
	}
	teams := make([]string, 0, len(x.entries))
	for id := range x.entries {
		teams = append(teams, id)
	}
	sort.Strings(teams)
	return teams
}

// Len returns the number of indexed teams.
func (x *Index) Len() int {
	if x == nil {
		return 0
	}
	return len(x.entries)
}
