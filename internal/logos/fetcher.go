package logos

import (
	"context"
	"encoding/base64"
	"fmt"
	"io"
	"log/slog"
	"net/http"
	"strings"
	"time"

	lru "github.com/hashicorp/golang-lru/v2"

	"nhl-ingest-service/internal/logging"
)

const (
	defaultSVGBase     = "https://assets.nhle.com/logos/nhl/svg"
	defaultHTTPTimeout = 10 * time.Second
	// The league tops out in the low thirties; headroom for relocations.
	defaultCacheSize = 64
	maxSVGBytes      = 1 << 20
)

type httpDoer interface {
	Do(req *http.Request) (*http.Response, error)
}

// Config controls the SVG fetcher.
type Config struct {
	BaseURL    string
	HTTPClient *http.Client
	Logger     *slog.Logger
}

// Fetcher resolves team logos as inline SVG data URIs, falling back to the
// ESPN CDN URL when the NHL asset host is unreachable. Successful fetches
// are cached; logos effectively never change within a process lifetime.
type Fetcher struct {
	baseURL    string
	httpClient httpDoer
	logger     *slog.Logger
	cache      *lru.Cache[string, string]
}

// NewFetcher constructs a Fetcher with the provided configuration.
func NewFetcher(cfg Config) *Fetcher {
	base := cfg.BaseURL
	if base == "" {
		base = defaultSVGBase
	}
	var client httpDoer = cfg.HTTPClient
	if cfg.HTTPClient == nil {
		client = &http.Client{Timeout: defaultHTTPTimeout}
	}
	cache, _ := lru.New[string, string](defaultCacheSize)
	return &Fetcher{
		baseURL:    strings.TrimSuffix(base, "/"),
		httpClient: client,
		logger:     cfg.Logger,
		cache:      cache,
	}
}

// TeamLogo returns a data URI for the team's SVG logo, or the ESPN PNG URL
// if the fetch fails. It never returns an error: a missing logo must not
// block a team profile write.
func (f *Fetcher) TeamLogo(ctx context.Context, abbrev string) string {
	if cached, ok := f.cache.Get(abbrev); ok {
		return cached
	}

	uri, err := f.fetchSVG(ctx, abbrev)
	if err != nil {
		logging.Warn(f.logger, "logo fetch failed, using CDN fallback",
			slog.String(logging.FieldTeam, abbrev),
			"error", err,
		)
		return URL(abbrev)
	}

	f.cache.Add(abbrev, uri)
	return uri
}

func (f *Fetcher) fetchSVG(ctx context.Context, abbrev string) (string, error) {
	url := fmt.Sprintf("%s/%s_light.svg", f.baseURL, strings.ToUpper(abbrev))
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, url, nil)
	if err != nil {
		return "", err
	}

	resp, err := f.httpClient.Do(req)
	if err != nil {
		return "", err
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return "", fmt.Errorf("logos: unexpected status %d for %s", resp.StatusCode, url)
	}

	raw, err := io.ReadAll(io.LimitReader(resp.Body, maxSVGBytes))
	if err != nil {
		return "", err
	}

	return "data:image/svg+xml;base64," + base64.StdEncoding.EncodeToString(raw), nil
}
