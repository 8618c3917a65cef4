package config

// Config holds runtime configuration for the ingestor.
type Config struct {
	Provider  string
	Store     string
	Ingest    IngestConfig
	NHLE      NHLEConfig
	Firestore FirestoreConfig
	Metrics   MetricsConfig
}

// Load reads configuration from environment variables with sensible defaults.
func Load() Config {
	return Config{
		Provider:  envOrDefault(envProvider, defaultProvider),
		Store:     envOrDefault(envStore, defaultStore),
		Ingest:    loadIngest(),
		NHLE:      loadNHLE(),
		Firestore: loadFirestore(),
		Metrics:   loadMetrics(),
	}
}
