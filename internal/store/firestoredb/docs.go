package firestoredb

import "nhl-ingest-service/internal/domain"

// Documents are built as maps because merge writes require map data.
// Field names are the wire contract consumed by the frontend; keep them
// stable.

func gameDoc(g domain.GameRecord) map[string]any {
	doc := map[string]any{
		"gameId":     g.GameID,
		"startTime":  g.StartTime,
		"status":     string(g.Status),
		"venue":      g.Venue,
		"broadcasts": g.Broadcasts,
		"homeTeam":   sideDoc(g.Home),
		"awayTeam":   sideDoc(g.Away),
	}
	if g.WinningGoalScorer != "" {
		doc["winningGoalScorer"] = g.WinningGoalScorer
	}
	if g.Period != "" {
		doc["periodDescriptor"] = g.Period
	}
	if g.Clock != "" {
		doc["gameClock"] = g.Clock
	}
	return doc
}

func sideDoc(side domain.TeamSide) map[string]any {
	return map[string]any{
		"id":     side.ID,
		"abbrev": side.Abbrev,
		"name":   side.Name,
		"score":  side.Score,
		"logo":   side.Logo,
		"record": side.Record,
	}
}

func teamDoc(t domain.TeamProfile) map[string]any {
	games := make([]map[string]any, 0, len(t.LastGames))
	for _, g := range t.LastGames {
		games = append(games, map[string]any{
			"gameId":       g.GameID,
			"date":         g.Date,
			"opponent":     g.Opponent,
			"opponentLogo": g.OpponentLogo,
			"score":        g.Score,
			"outcome":      g.Outcome,
		})
	}
	return map[string]any{
		"teamId":     t.TeamID,
		"name":       t.Name,
		"record":     t.Record,
		"logo":       t.Logo,
		"last5Games": games,
	}
}
