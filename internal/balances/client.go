// Package balances queries the external balance reader service.
package balances

import (
	"context"
	"fmt"
	"io"
	"net/http"
	"strconv"
	"strings"
	"time"
)

// Fetcher answers "what is this account's current balance". Implementations
// perform exactly one attempt per call; retry policy belongs to callers.
type Fetcher interface {
	Balance(ctx context.Context, accountNum, bearerToken string) (int64, error)
}

// HTTPClient fetches balances from the balances API over HTTP. The caller's
// bearer token is forwarded so the balance service can apply its own
// authorization.
type HTTPClient struct {
	baseURL string
	client  *http.Client
}

// NewHTTPClient creates a client for the balances API at apiAddr
// (host:port). Requests are bounded by timeout.
func NewHTTPClient(apiAddr string, timeout time.Duration) *HTTPClient {
	return &HTTPClient{
		baseURL: fmt.Sprintf("http://%s/balances", apiAddr),
		client:  &http.Client{Timeout: timeout},
	}
}

// Balance fetches the current balance for accountNum. The response body is
// expected to be a bare integer in minor currency units.
func (c *HTTPClient) Balance(ctx context.Context, accountNum, bearerToken string) (int64, error) {
	url := c.baseURL + "/" + accountNum
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, url, nil)
	if err != nil {
		return 0, fmt.Errorf("build balance request: %w", err)
	}
	req.Header.Set("Authorization", "Bearer "+bearerToken)

	resp, err := c.client.Do(req)
	if err != nil {
		return 0, fmt.Errorf("balance request: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return 0, fmt.Errorf("balance service returned %s", resp.Status)
	}

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return 0, fmt.Errorf("read balance response: %w", err)
	}
	balance, err := strconv.ParseInt(strings.TrimSpace(string(body)), 10, 64)
	if err != nil {
		return 0, fmt.Errorf("parse balance response %q: %w", string(body), err)
	}
	return balance, nil
}
