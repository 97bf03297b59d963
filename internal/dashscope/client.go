package dashscope

import (
	"fmt"
	"net/http"
	"strings"
	"time"
)

// Client is the public entrypoint for the DashScope multimodal API.
//
// It hides all wire-level details (endpoint paths, authentication, the
// vendor's response envelope) from the application layer. Two operations are
// exposed: computing an image embedding and running a vision-language chat
// turn over images.
type Client struct {
	baseURL    string
	cfg        *Config
	httpClient *http.Client
}

// NewClient constructs a Client from Config after validating it.
func NewClient(cfg *Config) (*Client, error) {
	if err := cfg.Validate(); err != nil {
		return nil, fmt.Errorf("dashscope: invalid config: %w", err)
	}

	// Remove trailing slash if user added it.
	base := strings.TrimRight(cfg.BaseURL, "/")

	return &Client{
		baseURL:    base,
		cfg:        cfg,
		httpClient: &http.Client{Timeout: time.Duration(cfg.HTTPTimeoutS) * time.Second},
	}, nil
}

// Close releases internal resources held by the HTTP client.
func (c *Client) Close() error {
	c.httpClient.CloseIdleConnections()
	return nil
}
