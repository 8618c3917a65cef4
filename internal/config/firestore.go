package config

import "time"

const (
	envFirestoreProject   = "FIRESTORE_PROJECT_ID"
	envFirestoreCreds     = "GOOGLE_APPLICATION_CREDENTIALS"
	envGamesCollection    = "FIRESTORE_GAMES_COLLECTION"
	envTeamsCollection    = "FIRESTORE_TEAMS_COLLECTION"
	envFirestoreWriteWait = "FIRESTORE_WRITE_TIMEOUT"

	defaultGamesCollection    = "games"
	defaultTeamsCollection    = "teams"
	defaultFirestoreWriteWait = 30 * time.Second
)

// FirestoreConfig controls the downstream Firestore writer.
type FirestoreConfig struct {
	ProjectID       string
	CredentialsFile string
	GamesCollection string
	TeamsCollection string
	WriteTimeout    time.Duration
}

func loadFirestore() FirestoreConfig {
	return FirestoreConfig{
		ProjectID:       envOrDefault(envFirestoreProject, ""),
		CredentialsFile: envOrDefault(envFirestoreCreds, ""),
		GamesCollection: envOrDefault(envGamesCollection, defaultGamesCollection),
		TeamsCollection: envOrDefault(envTeamsCollection, defaultTeamsCollection),
		WriteTimeout:    durationEnvOrDefault(envFirestoreWriteWait, defaultFirestoreWriteWait),
	}
}
