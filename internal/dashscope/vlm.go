package dashscope

import (
	"context"
	"encoding/json"
	"fmt"
)

const generationPath = "/api/v1/services/aigc/multimodal-generation/generation"

// ContentPart is one element of a multimodal message: an inline image
// (data URL) or a text fragment. Exactly one field should be set.
type ContentPart struct {
	Image string `json:"image,omitempty"`
	Text  string `json:"text,omitempty"`
}

// Message is a single chat turn sent to the vision-language model.
type Message struct {
	Role    string        `json:"role"`
	Content []ContentPart `json:"content"`
}

// generationResponse mirrors the vendor envelope for generation calls.
// The model's text can surface in several places depending on the model
// version, so content is kept raw and normalized afterwards.
type generationResponse struct {
	RequestID string `json:"request_id"`
	Code      string `json:"code"`
	Message   string `json:"message"`
	Output    struct {
		Text    string `json:"text"`
		Choices []struct {
			Message struct {
				Role    string          `json:"role"`
				Content json.RawMessage `json:"content"`
			} `json:"message"`
		} `json:"choices"`
	} `json:"output"`
}

// Chat sends a multimodal conversation to the vision-language model and
// returns the model's text reply.
func (c *Client) Chat(ctx context.Context, messages []Message) (string, error) {
	if len(messages) == 0 {
		return "", fmt.Errorf("dashscope: no messages provided")
	}

	body := map[string]any{
		"model": c.cfg.VLModel,
		"input": map[string]any{
			"messages": messages,
		},
	}

	var parsed generationResponse
	if err := c.postJSON(ctx, c.baseURL+generationPath, body, &parsed); err != nil {
		return "", err
	}

	text := extractReplyText(&parsed)
	if text == "" {
		return "", fmt.Errorf("dashscope: empty model reply (request_id=%s, code=%s, message=%s)",
			parsed.RequestID, parsed.Code, parsed.Message)
	}

	return text, nil
}

// extractReplyText normalizes the reply out of the response envelope.
// The content of a choice may be a plain string or a list of typed parts;
// some models put the text directly under output.text instead.
func extractReplyText(resp *generationResponse) string {
	for _, choice := range resp.Output.Choices {
		raw := choice.Message.Content
		if len(raw) == 0 {
			continue
		}

		var asString string
		if err := json.Unmarshal(raw, &asString); err == nil && asString != "" {
			return asString
		}

		var asParts []ContentPart
		if err := json.Unmarshal(raw, &asParts); err == nil {
			for _, part := range asParts {
				if part.Text != "" {
					return part.Text
				}
			}
		}
	}

	return resp.Output.Text
}
