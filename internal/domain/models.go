package domain

import "time"

// Status is the normalized game lifecycle state.
type Status string

const (
	StatusScheduled Status = "Scheduled"
	StatusLive      Status = "Live"
	StatusFinal     Status = "Final"
)

// Outcome values for a completed game from one team's perspective.
const (
	OutcomeWin  = "W"
	OutcomeLoss = "L"
	OutcomeTie  = "T"
)

// DefaultVenue is written when the upstream omits a venue name.
const DefaultVenue = "Venue TBD"

// TeamSnapshot is one side of a game as returned by the upstream feed.
type TeamSnapshot struct {
	ID     int
	Abbrev string
	Name   string
	Score  int
}

// GameSnapshot is the normalized shape of one game from a single schedule
// fetch. A later fetch of the same game id replaces the prior snapshot.
type GameSnapshot struct {
	ID                string
	StartTime         time.Time
	GameState         string
	Venue             string
	Broadcasts        []string
	PeriodType        string
	PeriodNumber      int
	ClockRemaining    string
	ClockIntermission bool
	WinningGoalScorer string
	Home              TeamSnapshot
	Away              TeamSnapshot
}

// TeamSide is one side of a persisted game record.
type TeamSide struct {
	ID     int    `json:"id"`
	Abbrev string `json:"abbrev"`
	Name   string `json:"name"`
	Score  int    `json:"score"`
	Logo   string `json:"logo"`
	Record string `json:"record"`
}

// GameRecord is the shape upserted into the games collection.
type GameRecord struct {
	GameID            string    `json:"gameId"`
	StartTime         time.Time `json:"startTime"`
	Status            Status    `json:"status"`
	Venue             string    `json:"venue"`
	Broadcasts        string    `json:"broadcasts"`
	WinningGoalScorer string    `json:"winningGoalScorer,omitempty"`
	Period            string    `json:"periodDescriptor,omitempty"`
	Clock             string    `json:"gameClock,omitempty"`
	Home              TeamSide  `json:"homeTeam"`
	Away              TeamSide  `json:"awayTeam"`
}

// HistoryEntry is one completed game from a single team's perspective.
type HistoryEntry struct {
	GameID       string    `json:"gameId"`
	Date         time.Time `json:"date"`
	Opponent     string    `json:"opponent"`
	OpponentLogo string    `json:"opponentLogo"`
	Score        string    `json:"score"`
	Outcome      string    `json:"outcome"`
}

// TeamProfile is the shape upserted into the teams collection.
type TeamProfile struct {
	TeamID    string         `json:"teamId"`
	Name      string         `json:"name"`
	Record    string         `json:"record"`
	Logo      string         `json:"logo"`
	LastGames []HistoryEntry `json:"last5Games"`
}

// Standing is one row of the whole-league standings snapshot.
type Standing struct {
	Abbrev   string
	Name     string
	Wins     int
	Losses   int
	OTLosses int
}
