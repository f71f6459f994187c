package relay

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"net/url"
	"time"

	"neuraflow/pkg/logger"
)

const secretHeader = "x-webhook-secret"

type Config struct {
	Endpoint string
	Secret   string
	Timeout  time.Duration
}

// Client posts payloads to a configured HTTPS endpoint. An empty endpoint
// turns Send into a logged no-op that still reports success.
type Client struct {
	config     *Config
	httpClient *http.Client
	logger     *logger.Logger
}

func NewClient(config *Config, log *logger.Logger) *Client {
	timeout := config.Timeout
	if timeout <= 0 {
		timeout = 10 * time.Second
	}

	return &Client{
		config:     config,
		httpClient: &http.Client{Timeout: timeout},
		logger:     log,
	}
}

// SetHTTPClient swaps the underlying HTTP client. Used by tests.
func (c *Client) SetHTTPClient(client *http.Client) {
	c.httpClient = client
}

func (c *Client) Send(ctx context.Context, payload *Payload) error {
	if c.config.Endpoint == "" {
		c.logger.WithField("product", payload.Product).
			Debug("No relay endpoint configured, review payload logged only")
		return nil
	}

	endpoint, err := url.Parse(c.config.Endpoint)
	if err != nil {
		return fmt.Errorf("invalid relay endpoint: %w", err)
	}
	if endpoint.Scheme != "https" {
		return ErrInsecureEndpoint
	}

	body, err := json.Marshal(payload)
	if err != nil {
		return fmt.Errorf("failed to encode relay payload: %w", err)
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, c.config.Endpoint, bytes.NewReader(body))
	if err != nil {
		return fmt.Errorf("failed to build relay request: %w", err)
	}
	req.Header.Set("Content-Type", "application/json")
	if c.config.Secret != "" {
		req.Header.Set(secretHeader, c.config.Secret)
	}

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return fmt.Errorf("relay request failed: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode < 200 || resp.StatusCode >= 300 {
		return fmt.Errorf("relay endpoint returned status %d", resp.StatusCode)
	}

	c.logger.WithField("status", resp.StatusCode).Debug("Relay delivered")
	return nil
}
