package domain

import "fmt"

// Classify maps a raw upstream game state code to a lifecycle status.
// Unrecognized codes fall through to Scheduled.
func Classify(gameState string) Status {
	switch gameState {
	case "OFF", "FINAL":
		return StatusFinal
	case "LIVE", "CRIT":
		return StatusLive
	default:
		return StatusScheduled
	}
}

// FormatPeriod normalizes an upstream period descriptor to P<n>, OT or SO.
// Returns "" when the game has no period descriptor yet.
func FormatPeriod(periodType string, number int) string {
	switch periodType {
	case "":
		return ""
	case "OT":
		return "OT"
	case "SO":
		return "SO"
	default:
		return fmt.Sprintf("P%d", number)
	}
}

// FormatClock normalizes the in-game clock for display.
func FormatClock(remaining string, intermission bool) string {
	if intermission {
		return "Intermission"
	}
	return remaining
}
