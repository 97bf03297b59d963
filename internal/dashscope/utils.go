package dashscope

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
)

// postJSON sends an HTTP POST request to the DashScope API.
// It marshals the given body as JSON, attaches required headers,
// handles HTTP error codes, and decodes the response JSON into `out`.
func (c *Client) postJSON(ctx context.Context, url string, body any, out any) error {

	// Convert request payload into JSON bytes.
	data, err := json.Marshal(body)
	if err != nil {
		return fmt.Errorf("encode request: %w", err)
	}

	// Construct the HTTP POST request with context (supports cancellation & timeout).
	req, err := http.NewRequestWithContext(ctx, http.MethodPost, url, bytes.NewReader(data))
	if err != nil {
		return fmt.Errorf("build request: %w", err)
	}

	req.Header.Set("Content-Type", "application/json")
	req.Header.Set("Authorization", "Bearer "+c.cfg.APIKey)

	// Execute the HTTP request. Client timeout is configured in NewClient.
	resp, err := c.httpClient.Do(req)
	if err != nil {
		return fmt.Errorf("http error: %w", err)
	}
	defer resp.Body.Close()

	respBody, err := io.ReadAll(resp.Body)
	if err != nil {
		return fmt.Errorf("read response: %w", err)
	}

	// Treat any non-2xx status code as an error, surfacing the vendor's
	// code/message fields when the body carries them.
	if resp.StatusCode >= 300 {
		var vendorErr struct {
			RequestID string `json:"request_id"`
			Code      string `json:"code"`
			Message   string `json:"message"`
		}
		if json.Unmarshal(respBody, &vendorErr) == nil && vendorErr.Code != "" {
			return fmt.Errorf("dashscope: http %d (request_id=%s, code=%s): %s",
				resp.StatusCode, vendorErr.RequestID, vendorErr.Code, vendorErr.Message)
		}
		return fmt.Errorf("dashscope: http %d for %s", resp.StatusCode, url)
	}

	if out != nil {
		if err := json.Unmarshal(respBody, out); err != nil {
			return fmt.Errorf("decode response: %w", err)
		}
	}

	return nil
}
