package firestoredb

import (
	"context"
	"fmt"
	"log/slog"
	"time"

	"cloud.google.com/go/firestore"
	"google.golang.org/api/option"

	"nhl-ingest-service/internal/domain"
	"nhl-ingest-service/internal/logging"
	"nhl-ingest-service/internal/metrics"
)

// Firestore batches cap at 500 operations; 400 leaves headroom.
const maxBatchOps = 400

// Config controls the Firestore-backed writer.
type Config struct {
	ProjectID       string
	CredentialsFile string
	GamesCollection string
	TeamsCollection string
	WriteTimeout    time.Duration
}

// Store writes game and team records to Firestore with merge semantics, so
// partial records never clobber fields written by other producers.
type Store struct {
	client       *firestore.Client
	games        string
	teams        string
	writeTimeout time.Duration
	logger       *slog.Logger
	metrics      *metrics.Recorder
}

// New connects to Firestore and returns a Store.
func New(ctx context.Context, cfg Config, logger *slog.Logger, recorder *metrics.Recorder) (*Store, error) {
	if cfg.ProjectID == "" {
		return nil, fmt.Errorf("firestoredb: project id is required")
	}

	var opts []option.ClientOption
	if cfg.CredentialsFile != "" {
		opts = append(opts, option.WithCredentialsFile(cfg.CredentialsFile))
	}

	client, err := firestore.NewClient(ctx, cfg.ProjectID, opts...)
	if err != nil {
		return nil, fmt.Errorf("firestoredb: connect: %w", err)
	}

	games := cfg.GamesCollection
	if games == "" {
		games = "games"
	}
	teams := cfg.TeamsCollection
	if teams == "" {
		teams = "teams"
	}

	return &Store{
		client:       client,
		games:        games,
		teams:        teams,
		writeTimeout: cfg.WriteTimeout,
		logger:       logger,
		metrics:      recorder,
	}, nil
}

// Close releases the underlying client.
func (s *Store) Close() error {
	return s.client.Close()
}

// UpsertGames merges game records into the games collection in chunks.
func (s *Store) UpsertGames(ctx context.Context, records []domain.GameRecord) error {
	if len(records) == 0 {
		return nil
	}

	start := time.Now()
	err := s.writeChunks(ctx, len(records), func(batch *firestore.WriteBatch, i int) {
		g := records[i]
		ref := s.client.Collection(s.games).Doc(g.GameID)
		batch.Set(ref, gameDoc(g), firestore.MergeAll)
	})
	s.metrics.RecordWrite("games", len(records), time.Since(start), err)
	if err != nil {
		return fmt.Errorf("firestoredb: upsert games: %w", err)
	}

	logging.Info(s.logger, "games upserted",
		slog.Int(logging.FieldCount, len(records)),
		slog.Int64(logging.FieldDurationMS, time.Since(start).Milliseconds()),
	)
	return nil
}

// UpsertTeams merges team profiles into the teams collection in chunks.
func (s *Store) UpsertTeams(ctx context.Context, records []domain.TeamProfile) error {
	if len(records) == 0 {
		return nil
	}

	start := time.Now()
	err := s.writeChunks(ctx, len(records), func(batch *firestore.WriteBatch, i int) {
		t := records[i]
		ref := s.client.Collection(s.teams).Doc(t.TeamID)
		batch.Set(ref, teamDoc(t), firestore.MergeAll)
	})
	s.metrics.RecordWrite("teams", len(records), time.Since(start), err)
	if err != nil {
		return fmt.Errorf("firestoredb: upsert teams: %w", err)
	}

	logging.Info(s.logger, "teams upserted",
		slog.Int(logging.FieldCount, len(records)),
		slog.Int64(logging.FieldDurationMS, time.Since(start).Milliseconds()),
	)
	return nil
}

// writeChunks commits one batch per maxBatchOps slice of [0, total).
func (s *Store) writeChunks(ctx context.Context, total int, add func(batch *firestore.WriteBatch, i int)) error {
	for offset := 0; offset < total; offset += maxBatchOps {
		end := offset + maxBatchOps
		if end > total {
			end = total
		}

		batch := s.client.Batch()
		for i := offset; i < end; i++ {
			add(batch, i)
		}

		if err := s.commit(ctx, batch); err != nil {
			return err
		}
	}
	return nil
}

func (s *Store) commit(ctx context.Context, batch *firestore.WriteBatch) error {
	if s.writeTimeout > 0 {
		var cancel context.CancelFunc
		ctx, cancel = context.WithTimeout(ctx, s.writeTimeout)
		defer cancel()
	}
	_, err := batch.Commit(ctx)
	return err
}
