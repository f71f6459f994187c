package exchange

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"time"
)

// HTTPProvider fetches rates from a USD-base latest-rates API
// (api.exchangerate-api.com response shape).
type HTTPProvider struct {
	apiURL     string
	httpClient *http.Client
}

func NewHTTPProvider(apiURL string) *HTTPProvider {
	return &HTTPProvider{
		apiURL:     apiURL,
		httpClient: &http.Client{Timeout: 10 * time.Second},
	}
}

// SetHTTPClient swaps the underlying HTTP client. Used by tests.
func (p *HTTPProvider) SetHTTPClient(client *http.Client) {
	p.httpClient = client
}

func (p *HTTPProvider) FetchRate(ctx context.Context) (float64, error) {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, p.apiURL, nil)
	if err != nil {
		return 0, fmt.Errorf("failed to build rate request: %w", err)
	}

	resp, err := p.httpClient.Do(req)
	if err != nil {
		return 0, fmt.Errorf("rate request failed: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return 0, fmt.Errorf("rate service returned status %d", resp.StatusCode)
	}

	var result struct {
		Rates map[string]float64 `json:"rates"`
	}
	if err := json.NewDecoder(resp.Body).Decode(&result); err != nil {
		return 0, fmt.Errorf("failed to decode rate response: %w", err)
	}

	rate, ok := result.Rates["INR"]
	if !ok || rate <= 0 {
		return 0, fmt.Errorf("rate response missing INR rate")
	}

	return rate, nil
}
