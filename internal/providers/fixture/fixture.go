package fixture

import (
	"context"
	"time"

	"nhl-ingest-service/internal/domain"
	"nhl-ingest-service/internal/timeutil"
)

// Provider returns a static league slice useful for local runs without
// upstream access: one final from yesterday, one live game today and one
// scheduled for tomorrow.
type Provider struct {
	now func() time.Time
}

// New creates a fixture provider with a time source.
func New() *Provider {
	return &Provider{
		now: time.Now,
	}
}

// FetchStandings returns a deterministic standings snapshot.
func (p *Provider) FetchStandings(ctx context.Context) ([]domain.Standing, error) {
	_ = ctx
	return []domain.Standing{
		{Abbrev: "BOS", Name: "Boston Bruins", Wins: 12, Losses: 5, OTLosses: 2},
		{Abbrev: "TOR", Name: "Toronto Maple Leafs", Wins: 10, Losses: 8, OTLosses: 1},
		{Abbrev: "MTL", Name: "Montréal Canadiens", Wins: 7, Losses: 11, OTLosses: 3},
		{Abbrev: "NYR", Name: "New York Rangers", Wins: 13, Losses: 4, OTLosses: 2},
	}, nil
}

// FetchSchedule returns deterministic games keyed off the requested date's
// position relative to today.
func (p *Provider) FetchSchedule(ctx context.Context, date string) ([]domain.GameSnapshot, error) {
	_ = ctx

	day, err := timeutil.ParseDate(date)
	if err != nil {
		return nil, err
	}

	now := p.now().UTC()
	today := timeutil.FormatDate(now)
	yesterday := timeutil.FormatDate(now.AddDate(0, 0, -1))
	tomorrow := timeutil.FormatDate(now.AddDate(0, 0, 1))

	switch date {
	case yesterday:
		return []domain.GameSnapshot{
			{
				ID:                "fixture-1001",
				StartTime:         day.Add(19 * time.Hour),
				GameState:         "OFF",
				Venue:             "TD Garden",
				Broadcasts:        []string{"NESN"},
				WinningGoalScorer: "Pastrnak",
				Home:              domain.TeamSnapshot{ID: 6, Abbrev: "BOS", Name: "Boston", Score: 4},
				Away:              domain.TeamSnapshot{ID: 10, Abbrev: "TOR", Name: "Toronto", Score: 2},
			},
		}, nil
	case today:
		return []domain.GameSnapshot{
			{
				ID:                "fixture-1002",
				StartTime:         now.Add(-30 * time.Minute),
				GameState:         "LIVE",
				Venue:             "Bell Centre",
				Broadcasts:        []string{"TSN", "RDS"},
				PeriodType:        "REG",
				PeriodNumber:      2,
				ClockRemaining:    "07:12",
				ClockIntermission: false,
				Home:              domain.TeamSnapshot{ID: 8, Abbrev: "MTL", Name: "Montréal", Score: 1},
				Away:              domain.TeamSnapshot{ID: 3, Abbrev: "NYR", Name: "New York", Score: 1},
			},
		}, nil
	case tomorrow:
		return []domain.GameSnapshot{
			{
				ID:        "fixture-1003",
				StartTime: day.Add(23 * time.Hour),
				GameState: "FUT",
				Venue:     "Scotiabank Arena",
				Home:      domain.TeamSnapshot{ID: 10, Abbrev: "TOR", Name: "Toronto"},
				Away:      domain.TeamSnapshot{ID: 6, Abbrev: "BOS", Name: "Boston"},
			},
		}, nil
	default:
		return nil, nil
	}
}
