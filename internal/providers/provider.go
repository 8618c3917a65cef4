package providers

import (
	"context"

	"nhl-ingest-service/internal/domain"
)

// StandingsProvider fetches the whole-league standings snapshot.
type StandingsProvider interface {
	FetchStandings(ctx context.Context) ([]domain.Standing, error)
}

// ScheduleProvider fetches the normalized games for one calendar date.
// The date must be a YYYY-MM-DD string; a date with no games returns an
// empty slice, not an error.
type ScheduleProvider interface {
	FetchSchedule(ctx context.Context, date string) ([]domain.GameSnapshot, error)
}

// FeedProvider combines all upstream capabilities.
type FeedProvider interface {
	StandingsProvider
	ScheduleProvider
}
