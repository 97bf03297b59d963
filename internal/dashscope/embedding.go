package dashscope

import (
	"context"
	"encoding/json"
	"fmt"
)

const embeddingPath = "/api/v1/services/embeddings/multimodal-embedding/multimodal-embedding"

// embeddingResponse mirrors the vendor envelope for embedding calls.
// The output carries either a list of per-content embeddings or, for some
// model versions, a single flat embedding. Both shapes are normalized.
type embeddingResponse struct {
	RequestID string `json:"request_id"`
	Code      string `json:"code"`
	Message   string `json:"message"`
	Output    struct {
		Embeddings []struct {
			Index     int       `json:"index"`
			Embedding []float32 `json:"embedding"`
		} `json:"embeddings"`
		Embedding []float32 `json:"embedding"`
	} `json:"output"`
	Usage json.RawMessage `json:"usage"`
}

// EmbedImage computes the feature vector for a single image, passed inline
// as a base64 data URL.
func (c *Client) EmbedImage(ctx context.Context, dataURL string) ([]float32, error) {
	if dataURL == "" {
		return nil, fmt.Errorf("dashscope: no image provided")
	}

	body := map[string]any{
		"model": c.cfg.EmbeddingModel,
		"input": map[string]any{
			"contents": []map[string]any{
				{"image": dataURL},
			},
		},
	}
	if c.cfg.EmbeddingDim > 0 {
		body["parameters"] = map[string]any{"dimension": c.cfg.EmbeddingDim}
	}

	var parsed embeddingResponse
	if err := c.postJSON(ctx, c.baseURL+embeddingPath, body, &parsed); err != nil {
		return nil, err
	}

	vector := normalizeEmbedding(&parsed)
	if len(vector) == 0 {
		return nil, fmt.Errorf("dashscope: empty embedding (request_id=%s, code=%s, message=%s)",
			parsed.RequestID, parsed.Code, parsed.Message)
	}

	return vector, nil
}

// normalizeEmbedding extracts the vector from either response shape.
func normalizeEmbedding(resp *embeddingResponse) []float32 {
	if len(resp.Output.Embeddings) > 0 {
		return resp.Output.Embeddings[0].Embedding
	}
	return resp.Output.Embedding
}
