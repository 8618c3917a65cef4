package nhle

import (
	"strconv"
	"time"

	"nhl-ingest-service/internal/domain"
)

func mapStanding(row standingResponse) domain.Standing {
	name := row.TeamName.Default
	if name == "" {
		name = row.TeamAbbrev.Default
	}
	return domain.Standing{
		Abbrev:   row.TeamAbbrev.Default,
		Name:     name,
		Wins:     row.Wins,
		Losses:   row.Losses,
		OTLosses: row.OTLosses,
	}
}

func mapGame(g gameResponse) domain.GameSnapshot {
	snap := domain.GameSnapshot{
		ID:        strconv.Itoa(g.ID),
		GameState: g.GameState,
		Home:      mapTeam(g.HomeTeam),
		Away:      mapTeam(g.AwayTeam),
	}

	// A bad start time leaves the zero value rather than dropping the game;
	// zero never compares as a future start.
	if start, err := time.Parse(time.RFC3339, g.StartTimeUTC); err == nil {
		snap.StartTime = start.UTC()
	}

	if g.Venue != nil {
		snap.Venue = g.Venue.Default
	}
	for _, b := range g.TVBroadcasts {
		if b.Network != "" {
			snap.Broadcasts = append(snap.Broadcasts, b.Network)
		}
	}
	if g.PeriodDescriptor != nil {
		snap.PeriodType = g.PeriodDescriptor.PeriodType
		snap.PeriodNumber = g.PeriodDescriptor.Number
	}
	if g.Clock != nil {
		snap.ClockRemaining = g.Clock.TimeRemaining
		snap.ClockIntermission = g.Clock.InIntermission
	}
	if g.WinningGoalScorer != nil {
		snap.WinningGoalScorer = g.WinningGoalScorer.LastName.Default
	}
	return snap
}

func mapTeam(t teamResponse) domain.TeamSnapshot {
	score := 0
	if t.Score != nil {
		score = *t.Score
	}
	return domain.TeamSnapshot{
		ID:     t.ID,
		Abbrev: t.Abbrev,
		Name:   t.PlaceName.Default,
		Score:  score,
	}
}
