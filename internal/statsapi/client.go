// Package statsapi is the client for the remote NBA statistics provider
// (stats.nba.com). Every endpoint returns one or more result sets — ordered
// headers plus positional row data — which this package decodes into Tables.
//
// The provider is rate limited and unstable: every request passes through
// the shared admission gate first, carries the browser-ish headers the
// provider insists on, and is bounded by a hard timeout so a stalled
// upstream cannot block a caller indefinitely.
package statsapi

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"time"

	"github.com/rs/zerolog"

	"github.com/courtside/nba-stats-mcp/internal/ratelimit"
)

// DefaultBaseURL is the provider's stats endpoint root.
const DefaultBaseURL = "https://stats.nba.com/stats"

// DefaultTimeout bounds a single provider call. Fail fast instead of
// hanging.
const DefaultTimeout = 15 * time.Second

// Client talks to the stats provider. Zero value is not usable; construct
// with New.
type Client struct {
	HTTP      *http.Client
	BaseURL   string
	UserAgent string
	Gate      *ratelimit.Gate
	Logger    zerolog.Logger
}

// New returns a Client with the default timeout and rate gate.
func New(gate *ratelimit.Gate, logger zerolog.Logger) *Client {
	return &Client{
		HTTP:      &http.Client{Timeout: DefaultTimeout},
		BaseURL:   DefaultBaseURL,
		UserAgent: "Mozilla/5.0 (Windows NT 10.0; Win64; x64) AppleWebKit/537.36 (KHTML, like Gecko) Chrome/120.0.0.0 Safari/537.36",
		Gate:      gate,
		Logger:    logger,
	}
}

// resultSetsEnvelope covers both wire shapes the provider uses: most
// endpoints return "resultSets" (an array), a few older ones return a
// single "resultSet" object.
type resultSetsEnvelope struct {
	Resource   string       `json:"resource"`
	ResultSets []rawDataset `json:"resultSets"`
	ResultSet  *rawDataset  `json:"resultSet"`
}

type rawDataset struct {
	Name    string   `json:"name"`
	Headers []string `json:"headers"`
	RowSet  [][]any  `json:"rowSet"`
}

// ResultSets calls the named provider endpoint and decodes every dataset in
// the response. The admission gate is passed before the request is issued.
func (c *Client) ResultSets(ctx context.Context, endpoint string, params url.Values) ([]Table, error) {
	if c.Gate != nil {
		c.Gate.Admit()
	}

	u := c.BaseURL + "/" + endpoint
	if len(params) > 0 {
		u += "?" + params.Encode()
	}
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, u, nil)
	if err != nil {
		return nil, err
	}
	req.Header.Set("Accept", "application/json")
	req.Header.Set("User-Agent", c.UserAgent)
	req.Header.Set("Referer", "https://www.nba.com/")

	start := time.Now()
	resp, err := c.HTTP.Do(req)
	if err != nil {
		c.Logger.Warn().Str("endpoint", endpoint).Err(err).Msg("provider request failed")
		return nil, fmt.Errorf("GET %s: %w", endpoint, err)
	}
	defer resp.Body.Close()

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, fmt.Errorf("GET %s: read body: %w", endpoint, err)
	}
	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		c.Logger.Warn().Str("endpoint", endpoint).Int("status", resp.StatusCode).Msg("provider returned non-2xx")
		return nil, fmt.Errorf("GET %s: status %d: %s", endpoint, resp.StatusCode, truncate(body, 200))
	}

	var env resultSetsEnvelope
	if err := json.Unmarshal(body, &env); err != nil {
		return nil, fmt.Errorf("GET %s: decode response: %w", endpoint, err)
	}

	sets := env.ResultSets
	if len(sets) == 0 && env.ResultSet != nil {
		sets = []rawDataset{*env.ResultSet}
	}
	tables := make([]Table, 0, len(sets))
	for _, rs := range sets {
		tables = append(tables, Table{Name: rs.Name, Columns: rs.Headers, Rows: rs.RowSet})
	}

	c.Logger.Debug().
		Str("endpoint", endpoint).
		Int("tables", len(tables)).
		Dur("elapsed", time.Since(start)).
		Msg("provider call")
	return tables, nil
}

// truncate keeps error messages readable when the provider returns an HTML
// error page.
func truncate(b []byte, maxLen int) string {
	if len(b) <= maxLen {
		return string(b)
	}
	return string(b[:maxLen]) + "..."
}
