package store

import (
	"context"

	"nhl-ingest-service/internal/domain"
)

// GameWriter upserts game records keyed by game id. Writes must merge:
// fields absent from a record may not clobber previously stored fields.
type GameWriter interface {
	UpsertGames(ctx context.Context, records []domain.GameRecord) error
}

// TeamWriter upserts team profile records keyed by team id.
type TeamWriter interface {
	UpsertTeams(ctx context.Context, records []domain.TeamProfile) error
}

// Writer combines both downstream capabilities.
type Writer interface {
	GameWriter
	TeamWriter
}
