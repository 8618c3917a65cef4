package nhle

import "time"

const (
	providerName = "nhle"

	defaultBaseURL     = "https://api-web.nhle.com/v1"
	defaultHTTPTimeout = 10 * time.Second

	// Client-side throttle: a full 7-day window is 15 schedule calls plus
	// standings, so a small steady rate keeps wide cycles polite.
	defaultRequestsPerSecond = 5
	defaultBurst             = 5
)
