package domain

import (
	"testing"
	"time"
)

func finalGame(homeScore, awayScore int) GameRecord {
	return GameRecord{
		GameID:    "2024020001",
		StartTime: time.Date(2024, 1, 3, 0, 0, 0, 0, time.UTC),
		Status:    StatusFinal,
		Home:      TeamSide{Abbrev: "BOS", Score: homeScore, Logo: "logo-bos"},
		Away:      TeamSide{Abbrev: "TOR", Score: awayScore, Logo: "logo-tor"},
	}
}

func TestOutcomeDerivation(t *testing.T) {
	game := finalGame(4, 2)

	home := SideHistoryEntry(game, true)
	away := SideHistoryEntry(game, false)

	if home.Outcome != OutcomeWin {
		t.Fatalf("expected home W, got %q", home.Outcome)
	}
	if away.Outcome != OutcomeLoss {
		t.Fatalf("expected away L, got %q", away.Outcome)
	}
	if home.Score != "4-2" || away.Score != "2-4" {
		t.Fatalf("unexpected score strings: home=%q away=%q", home.Score, away.Score)
	}
}

func TestOutcomeTieWhenScoresEqual(t *testing.T) {
	game := finalGame(3, 3)

	if got := SideHistoryEntry(game, true).Outcome; got != OutcomeTie {
		t.Fatalf("expected home T, got %q", got)
	}
	if got := SideHistoryEntry(game, false).Outcome; got != OutcomeTie {
		t.Fatalf("expected away T, got %q", got)
	}
}

func TestOpponentDisplayDirection(t *testing.T) {
	game := finalGame(1, 0)

	home := SideHistoryEntry(game, true)
	away := SideHistoryEntry(game, false)

	if home.Opponent != "vs TOR" {
		t.Fatalf("expected home entry 'vs TOR', got %q", home.Opponent)
	}
	if away.Opponent != "@ BOS" {
		t.Fatalf("expected away entry '@ BOS', got %q", away.Opponent)
	}
	if home.OpponentLogo != "logo-tor" || away.OpponentLogo != "logo-bos" {
		t.Fatalf("opponent logos crossed: home=%q away=%q", home.OpponentLogo, away.OpponentLogo)
	}
}
