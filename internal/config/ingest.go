package config

import "time"

const (
	envFullFetchInterval = "FULL_FETCH_INTERVAL"
	envFullRadius        = "FULL_FETCH_RADIUS_DAYS"
	envPartialRadius     = "PARTIAL_FETCH_RADIUS_DAYS"
	envResetEveryCycle   = "RESET_HISTORY_EVERY_CYCLE"
	envHistorySize       = "HISTORY_SIZE"

	// One wide rebuild per hour; same-day refreshes in between.
	defaultFullFetchInterval = time.Hour
	defaultFullRadius        = 7
	defaultPartialRadius     = 0
	defaultHistorySize       = 5
)

// IngestConfig controls the fetch cadence and history lifecycle.
type IngestConfig struct {
	FullFetchInterval time.Duration
	FullRadius        int
	PartialRadius     int
	// ResetHistoryEveryCycle clears the rolling history at the start of
	// every cycle instead of only before a full fetch. Both behaviors
	// exist upstream; the full-fetch-only default keeps partial cycles
	// incremental.
	ResetHistoryEveryCycle bool
	HistorySize            int
}

func loadIngest() IngestConfig {
	return IngestConfig{
		FullFetchInterval:      durationEnvOrDefault(envFullFetchInterval, defaultFullFetchInterval),
		FullRadius:             intEnvOrDefault(envFullRadius, defaultFullRadius),
		PartialRadius:          intEnvOrDefault(envPartialRadius, defaultPartialRadius),
		ResetHistoryEveryCycle: boolEnvOrDefault(envResetEveryCycle, false),
		HistorySize:            intEnvOrDefault(envHistorySize, defaultHistorySize),
	}
}
