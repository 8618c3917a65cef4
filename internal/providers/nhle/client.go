package nhle

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"strings"

	"golang.org/x/time/rate"

	"nhl-ingest-service/internal/domain"
	"nhl-ingest-service/internal/timeutil"
)

// Config controls how the client reaches the NHL web API.
type Config struct {
	BaseURL    string
	HTTPClient *http.Client
	// RequestsPerSecond throttles outgoing calls; <= 0 uses the default.
	RequestsPerSecond float64
}

// Client fetches standings and schedules from the NHL web API and maps
// them to domain models.
type Client struct {
	baseURL    string
	httpClient httpDoer
	limiter    *rate.Limiter
}

// NewClient constructs an NHL web API client with the provided configuration.
func NewClient(cfg Config) *Client {
	return &Client{
		baseURL:    normalizeBaseURL(cfg.BaseURL),
		httpClient: resolveHTTPClient(cfg.HTTPClient),
		limiter:    resolveLimiter(cfg.RequestsPerSecond),
	}
}

// FetchStandings retrieves the current whole-league standings.
func (c *Client) FetchStandings(ctx context.Context) ([]domain.Standing, error) {
	var payload standingsResponse
	if err := c.get(ctx, "/standings/now", &payload); err != nil {
		return nil, err
	}

	standings := make([]domain.Standing, 0, len(payload.Standings))
	for _, row := range payload.Standings {
		standings = append(standings, mapStanding(row))
	}
	return standings, nil
}

// FetchSchedule retrieves the games scheduled for one calendar date.
// The upstream returns a whole game week; only the requested day is kept.
func (c *Client) FetchSchedule(ctx context.Context, date string) ([]domain.GameSnapshot, error) {
	if _, err := timeutil.ParseDate(date); err != nil {
		return nil, fmt.Errorf("nhle: invalid schedule date %q: %w", date, err)
	}

	var payload scheduleResponse
	if err := c.get(ctx, "/schedule/"+date, &payload); err != nil {
		return nil, err
	}

	for _, day := range payload.GameWeek {
		if day.Date != date {
			continue
		}
		games := make([]domain.GameSnapshot, 0, len(day.Games))
		for _, g := range day.Games {
			games = append(games, mapGame(g))
		}
		return games, nil
	}
	return nil, nil
}

func (c *Client) get(ctx context.Context, path string, v any) error {
	if c.limiter != nil {
		if err := c.limiter.Wait(ctx); err != nil {
			return err
		}
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, c.baseURL+path, nil)
	if err != nil {
		return err
	}

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return err
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		body, _ := io.ReadAll(io.LimitReader(resp.Body, 512))
		return fmt.Errorf("nhle: unexpected status %d for %s: %s", resp.StatusCode, path, strings.TrimSpace(string(body)))
	}

	return json.NewDecoder(resp.Body).Decode(v)
}
