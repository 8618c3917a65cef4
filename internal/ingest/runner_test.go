package ingest

import (
	"context"
	"errors"
	"testing"
	"time"

	"nhl-ingest-service/internal/domain"
	"nhl-ingest-service/internal/history"
	"nhl-ingest-service/internal/metrics"
	"nhl-ingest-service/internal/teststubs"
)

// stubFeed composes the standings and schedule stubs into one FeedProvider.
type stubFeed struct {
	*teststubs.StubStandingsProvider
	*teststubs.StubScheduleProvider
}

func newStubFeed() *stubFeed {
	return &stubFeed{
		StubStandingsProvider: &teststubs.StubStandingsProvider{},
		StubScheduleProvider:  &teststubs.StubScheduleProvider{},
	}
}

var testNow = time.Date(2024, 3, 9, 18, 0, 0, 0, time.UTC)

func newTestRunner(feed *stubFeed, games *teststubs.StubGameWriter, teams *teststubs.StubTeamWriter, hist *history.Aggregator) *Runner {
	r := NewRunner(RunnerConfig{
		Feed:    feed,
		Games:   games,
		Teams:   teams,
		History: hist,
		Logos:   teststubs.StubLogoResolver{},
		Metrics: metrics.NewRecorder(),
	})
	r.now = func() time.Time { return testNow }
	return r
}

func TestRunStandingsFailureAborts(t *testing.T) {
	feed := newStubFeed()
	feed.StubStandingsProvider.Err = errors.New("upstream down")
	games := &teststubs.StubGameWriter{}
	teams := &teststubs.StubTeamWriter{}
	r := newTestRunner(feed, games, teams, history.NewAggregator())

	if _, err := r.Run(context.Background(), 1); err == nil {
		t.Fatal("expected error when standings fetch fails")
	}
	if feed.StubScheduleProvider.Calls.Load() != 0 {
		t.Fatal("no schedule fetches should run without a record index")
	}
	if len(games.Batches) != 0 || len(teams.Batches) != 0 {
		t.Fatal("nothing should be written after a standings failure")
	}
}

func TestRunSkipsFailedScheduleDates(t *testing.T) {
	feed := newStubFeed()
	feed.StubStandingsProvider.Standings = []domain.Standing{
		{Abbrev: "BOS", Name: "Boston Bruins", Wins: 12, Losses: 5, OTLosses: 2},
		{Abbrev: "TOR", Name: "Toronto Maple Leafs", Wins: 10, Losses: 7, OTLosses: 1},
	}
	feed.StubScheduleProvider.Games = map[string][]domain.GameSnapshot{
		"2024-03-08": {{
			ID:        "g-yesterday",
			StartTime: testNow.Add(-24 * time.Hour),
			GameState: "OFF",
			Home:      domain.TeamSnapshot{Abbrev: "BOS", Name: "Boston Bruins", Score: 4},
			Away:      domain.TeamSnapshot{Abbrev: "TOR", Name: "Toronto Maple Leafs", Score: 2},
		}},
		"2024-03-10": {{
			ID:        "g-tomorrow",
			StartTime: testNow.Add(24 * time.Hour),
			GameState: "FUT",
			Home:      domain.TeamSnapshot{Abbrev: "TOR"},
			Away:      domain.TeamSnapshot{Abbrev: "BOS"},
		}},
	}
	feed.StubScheduleProvider.ErrDates = map[string]error{
		"2024-03-09": errors.New("timeout"),
	}
	games := &teststubs.StubGameWriter{}
	teams := &teststubs.StubTeamWriter{}
	r := newTestRunner(feed, games, teams, history.NewAggregator())

	if _, err := r.Run(context.Background(), 1); err != nil {
		t.Fatalf("a single bad day must not fail the cycle: %v", err)
	}
	if got := feed.StubScheduleProvider.Calls.Load(); got != 3 {
		t.Fatalf("expected all 3 window dates fetched, got %d", got)
	}
	saved := games.Games()
	if len(saved) != 2 {
		t.Fatalf("expected the 2 healthy days saved, got %d", len(saved))
	}
}

func TestRunBuildsGameRecords(t *testing.T) {
	feed := newStubFeed()
	feed.StubStandingsProvider.Standings = []domain.Standing{
		{Abbrev: "BOS", Name: "Boston Bruins", Wins: 12, Losses: 5, OTLosses: 2},
	}
	feed.StubScheduleProvider.Games = map[string][]domain.GameSnapshot{
		"2024-03-09": {{
			ID:             "g-live",
			StartTime:      testNow.Add(-time.Hour),
			GameState:      "LIVE",
			Broadcasts:     []string{"ESPN", "NESN"},
			PeriodType:     "REG",
			PeriodNumber:   2,
			ClockRemaining: "07:12",
			Home:           domain.TeamSnapshot{ID: 6, Abbrev: "BOS", Name: "Boston Bruins", Score: 2},
			Away:           domain.TeamSnapshot{ID: 55, Abbrev: "SEA", Name: "Seattle Kraken", Score: 1},
		}},
	}
	games := &teststubs.StubGameWriter{}
	r := newTestRunner(feed, games, &teststubs.StubTeamWriter{}, history.NewAggregator())

	if _, err := r.Run(context.Background(), 0); err != nil {
		t.Fatalf("run: %v", err)
	}
	saved := games.Games()
	if len(saved) != 1 {
		t.Fatalf("expected 1 game, got %d", len(saved))
	}
	got := saved[0]
	if got.Status != domain.StatusLive {
		t.Fatalf("expected Live, got %s", got.Status)
	}
	if got.Venue != domain.DefaultVenue {
		t.Fatalf("missing venue must default, got %q", got.Venue)
	}
	if got.Broadcasts != "ESPN, NESN" {
		t.Fatalf("unexpected broadcasts: %q", got.Broadcasts)
	}
	if got.Period != "P2" || got.Clock != "07:12" {
		t.Fatalf("unexpected period/clock: %q %q", got.Period, got.Clock)
	}
	if got.Home.Record != "12-5-2" {
		t.Fatalf("home record should come from standings, got %q", got.Home.Record)
	}
	if got.Away.Record != "" {
		t.Fatalf("unknown team record should be empty, got %q", got.Away.Record)
	}
	if got.Home.Logo == "" {
		t.Fatal("side logo URL should be populated")
	}
}

func TestRunSignals(t *testing.T) {
	nextStart := testNow.Add(3 * time.Hour)
	cases := []struct {
		name  string
		games []domain.GameSnapshot
		want  Signals
	}{
		{
			name: "live game sets live",
			games: []domain.GameSnapshot{
				{ID: "g1", StartTime: testNow.Add(-time.Hour), GameState: "LIVE"},
			},
			want: Signals{Live: true},
		},
		{
			name: "overdue scheduled game sets pending",
			games: []domain.GameSnapshot{
				{ID: "g1", StartTime: testNow.Add(-10 * time.Minute), GameState: "FUT"},
			},
			want: Signals{Pending: true},
		},
		{
			name: "earliest future start wins",
			games: []domain.GameSnapshot{
				{ID: "g1", StartTime: testNow.Add(6 * time.Hour), GameState: "FUT"},
				{ID: "g2", StartTime: nextStart, GameState: "FUT"},
			},
			want: Signals{NextStart: nextStart},
		},
		{
			name: "zero start never arms",
			games: []domain.GameSnapshot{
				{ID: "g1", GameState: "FUT"},
			},
			want: Signals{},
		},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			feed := newStubFeed()
			feed.StubScheduleProvider.Games = map[string][]domain.GameSnapshot{
				"2024-03-09": tc.games,
			}
			r := newTestRunner(feed, &teststubs.StubGameWriter{}, &teststubs.StubTeamWriter{}, history.NewAggregator())

			sig, err := r.Run(context.Background(), 0)
			if err != nil {
				t.Fatalf("run: %v", err)
			}
			if sig.Live != tc.want.Live || sig.Pending != tc.want.Pending || !sig.NextStart.Equal(tc.want.NextStart) {
				t.Fatalf("got %+v, want %+v", sig, tc.want)
			}
		})
	}
}

func TestRunRecordsHistoryForFinalGames(t *testing.T) {
	feed := newStubFeed()
	feed.StubStandingsProvider.Standings = []domain.Standing{
		{Abbrev: "BOS", Name: "Boston Bruins"},
		{Abbrev: "TOR", Name: "Toronto Maple Leafs"},
	}
	feed.StubScheduleProvider.Games = map[string][]domain.GameSnapshot{
		"2024-03-09": {
			{
				ID:        "g-final",
				StartTime: testNow.Add(-4 * time.Hour),
				GameState: "OFF",
				Home:      domain.TeamSnapshot{Abbrev: "BOS", Name: "Boston Bruins", Score: 4},
				Away:      domain.TeamSnapshot{Abbrev: "TOR", Name: "Toronto Maple Leafs", Score: 2},
			},
			{
				ID:        "g-live",
				StartTime: testNow.Add(-time.Hour),
				GameState: "LIVE",
				Home:      domain.TeamSnapshot{Abbrev: "TOR", Score: 1},
				Away:      domain.TeamSnapshot{Abbrev: "BOS", Score: 1},
			},
		},
	}
	hist := history.NewAggregator()
	teams := &teststubs.StubTeamWriter{}
	r := newTestRunner(feed, &teststubs.StubGameWriter{}, teams, hist)

	if _, err := r.Run(context.Background(), 0); err != nil {
		t.Fatalf("run: %v", err)
	}
	if hist.Size("BOS") != 1 || hist.Size("TOR") != 1 {
		t.Fatalf("final game must land in both teams' history: BOS=%d TOR=%d", hist.Size("BOS"), hist.Size("TOR"))
	}

	bos := hist.TopN("BOS", 5)[0]
	if bos.Outcome != domain.OutcomeWin || bos.Opponent != "vs TOR" || bos.Score != "4-2" {
		t.Fatalf("unexpected home entry: %+v", bos)
	}
	tor := hist.TopN("TOR", 5)[0]
	if tor.Outcome != domain.OutcomeLoss || tor.Opponent != "@ BOS" {
		t.Fatalf("unexpected away entry: %+v", tor)
	}

	profiles := teams.Teams()
	if len(profiles) != 2 {
		t.Fatalf("expected a profile per standings team, got %d", len(profiles))
	}
	if profiles[0].TeamID != "BOS" || profiles[1].TeamID != "TOR" {
		t.Fatalf("profiles must be sorted by team: %v, %v", profiles[0].TeamID, profiles[1].TeamID)
	}
	if len(profiles[0].LastGames) != 1 {
		t.Fatalf("profile should carry history, got %d entries", len(profiles[0].LastGames))
	}
	if profiles[0].Logo != "logo-BOS" {
		t.Fatalf("profile logo should come from the resolver, got %q", profiles[0].Logo)
	}
}

func TestRunRerunIsIdempotent(t *testing.T) {
	feed := newStubFeed()
	feed.StubStandingsProvider.Standings = []domain.Standing{{Abbrev: "BOS"}, {Abbrev: "TOR"}}
	feed.StubScheduleProvider.Games = map[string][]domain.GameSnapshot{
		"2024-03-09": {{
			ID:        "g-final",
			StartTime: testNow.Add(-4 * time.Hour),
			GameState: "OFF",
			Home:      domain.TeamSnapshot{Abbrev: "BOS", Score: 4},
			Away:      domain.TeamSnapshot{Abbrev: "TOR", Score: 2},
		}},
	}
	hist := history.NewAggregator()
	r := newTestRunner(feed, &teststubs.StubGameWriter{}, &teststubs.StubTeamWriter{}, hist)

	for i := 0; i < 3; i++ {
		if _, err := r.Run(context.Background(), 0); err != nil {
			t.Fatalf("run %d: %v", i, err)
		}
	}
	if hist.Size("BOS") != 1 {
		t.Fatalf("re-ingesting the same game must not duplicate history, got %d", hist.Size("BOS"))
	}
}

func TestRunGameWriteFailurePropagates(t *testing.T) {
	feed := newStubFeed()
	feed.StubScheduleProvider.Games = map[string][]domain.GameSnapshot{
		"2024-03-09": {{ID: "g1", GameState: "FUT"}},
	}
	games := &teststubs.StubGameWriter{Err: errors.New("firestore unavailable")}
	r := newTestRunner(feed, games, &teststubs.StubTeamWriter{}, history.NewAggregator())

	if _, err := r.Run(context.Background(), 0); err == nil {
		t.Fatal("expected write failure to propagate")
	}
}

func TestRunCancelledContext(t *testing.T) {
	feed := newStubFeed()
	r := newTestRunner(feed, &teststubs.StubGameWriter{}, &teststubs.StubTeamWriter{}, history.NewAggregator())

	ctx, cancel := context.WithCancel(context.Background())
	cancel()
	if _, err := r.Run(ctx, 0); !errors.Is(err, context.Canceled) {
		t.Fatalf("expected context.Canceled, got %v", err)
	}
}
