// Package statsapi issues the scoreboard fetches. It knows nothing about
// response shapes; feed modules build the URL and parse whatever comes back.
package statsapi

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"time"

	"go.uber.org/zap"
)

const requestTimeout = 5 * time.Second

// Client fetches raw scoreboard payloads over HTTP.
type Client struct {
	httpClient *http.Client
	userAgent  string
	// probe reports general internet reachability before a fetch. When
	// set and failing, Fetch short-circuits to the canned demo dataset
	// instead of attempting the request. nil disables the probe.
	probe  func() bool
	logger *zap.Logger
}

// New creates a scoreboard client. probeConnectivity enables the
// degrade-to-demo-data policy used on flaky networks.
func New(logger *zap.Logger, probeConnectivity bool) *Client {
	c := &Client{
		httpClient: &http.Client{
			Timeout: requestTimeout,
		},
		userAgent: "scorepanel/1.0",
		logger:    logger,
	}
	if probeConnectivity {
		c.probe = checkConnectivity
	}
	return c
}

// Fetch performs one GET against url and returns the decoded JSON body.
// Network errors, timeouts and non-2xx statuses come back as errors, never
// panics; retrying is the poll loop's call, not the client's.
func (c *Client) Fetch(ctx context.Context, url string) (map[string]interface{}, error) {
	if c.probe != nil && !c.probe() {
		c.logger.Warn("internet unreachable, serving fallback dataset")
		return FallbackScoreboard(), nil
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, url, nil)
	if err != nil {
		return nil, fmt.Errorf("creating request: %w", err)
	}
	req.Header.Set("User-Agent", c.userAgent)

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return nil, fmt.Errorf("fetching scoreboard: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		body, _ := io.ReadAll(io.LimitReader(resp.Body, 512))
		return nil, fmt.Errorf("scoreboard API error: status=%d, body=%s", resp.StatusCode, string(body))
	}

	var result map[string]interface{}
	if err := json.NewDecoder(resp.Body).Decode(&result); err != nil {
		return nil, fmt.Errorf("decoding response: %w", err)
	}

	return result, nil
}
