package domain

import "fmt"

// Outcome derives W/L/T from a final score pair.
func Outcome(myScore, oppScore int) string {
	switch {
	case myScore > oppScore:
		return OutcomeWin
	case myScore < oppScore:
		return OutcomeLoss
	default:
		return OutcomeTie
	}
}

// OpponentDisplay renders the opponent with home/away direction:
// "vs X" when this team hosted, "@ X" when it traveled.
func OpponentDisplay(home bool, opponent string) string {
	if home {
		return "vs " + opponent
	}
	return "@ " + opponent
}

// SideHistoryEntry builds the history entry for one side of a final game.
// The outcome is derived from the same score pair the entry carries, so a
// score correction on re-ingest replaces both together.
func SideHistoryEntry(game GameRecord, home bool) HistoryEntry {
	my, opp := game.Home, game.Away
	if !home {
		my, opp = game.Away, game.Home
	}
	return HistoryEntry{
		GameID:       game.GameID,
		Date:         game.StartTime,
		Opponent:     OpponentDisplay(home, opp.Abbrev),
		OpponentLogo: opp.Logo,
		Score:        fmt.Sprintf("%d-%d", my.Score, opp.Score),
		Outcome:      Outcome(my.Score, opp.Score),
	}
}
