package nhle

// Payload shapes mirror the api-web.nhle.com JSON.

type localizedName struct {
	Default string `json:"default"`
}

type standingsResponse struct {
	Standings []standingResponse `json:"standings"`
}

type standingResponse struct {
	TeamAbbrev localizedName `json:"teamAbbrev"`
	TeamName   localizedName `json:"teamName"`
	Wins       int           `json:"wins"`
	Losses     int           `json:"losses"`
	OTLosses   int           `json:"otLosses"`
}

type scheduleResponse struct {
	GameWeek []gameDayResponse `json:"gameWeek"`
}

type gameDayResponse struct {
	Date  string         `json:"date"`
	Games []gameResponse `json:"games"`
}

type gameResponse struct {
	ID                int                 `json:"id"`
	StartTimeUTC      string              `json:"startTimeUTC"`
	GameState         string              `json:"gameState"`
	Venue             *localizedName      `json:"venue"`
	TVBroadcasts      []broadcastResponse `json:"tvBroadcasts"`
	PeriodDescriptor  *periodResponse     `json:"periodDescriptor"`
	Clock             *clockResponse      `json:"clock"`
	WinningGoalScorer *scorerResponse     `json:"winningGoalScorer"`
	HomeTeam          teamResponse        `json:"homeTeam"`
	AwayTeam          teamResponse        `json:"awayTeam"`
}

type broadcastResponse struct {
	Market  string `json:"market"`
	Network string `json:"network"`
}

type periodResponse struct {
	Number     int    `json:"number"`
	PeriodType string `json:"periodType"`
}

type clockResponse struct {
	TimeRemaining  string `json:"timeRemaining"`
	InIntermission bool   `json:"inIntermission"`
}

type scorerResponse struct {
	LastName localizedName `json:"lastName"`
}

type teamResponse struct {
	ID        int           `json:"id"`
	Abbrev    string        `json:"abbrev"`
	PlaceName localizedName `json:"placeName"`
	Score     *int          `json:"score"`
}
