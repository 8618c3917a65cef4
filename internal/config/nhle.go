package config

import "time"

const (
	envNHLBaseURL     = "NHL_API_BASE"
	envNHLHTTPTimeout = "NHL_HTTP_TIMEOUT"

	defaultNHLBaseURL     = "https://api-web.nhle.com/v1"
	defaultNHLHTTPTimeout = 10 * time.Second
)

// NHLEConfig controls how we talk to the NHL web API.
type NHLEConfig struct {
	BaseURL     string
	HTTPTimeout time.Duration
}

func loadNHLE() NHLEConfig {
	return NHLEConfig{
		BaseURL:     envOrDefault(envNHLBaseURL, defaultNHLBaseURL),
		HTTPTimeout: durationEnvOrDefault(envNHLHTTPTimeout, defaultNHLHTTPTimeout),
	}
}
