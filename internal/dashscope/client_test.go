package dashscope

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func testClient(t *testing.T, handler http.HandlerFunc) *Client {
	t.Helper()
	srv := httptest.NewServer(handler)
	t.Cleanup(srv.Close)

	client, err := NewClient(&Config{
		BaseURL:        srv.URL,
		APIKey:         "test-key",
		EmbeddingModel: "tongyi-embedding-vision-plus",
		EmbeddingDim:   1152,
		VLModel:        "qwen3-vl-flash",
		HTTPTimeoutS:   5,
	})
	require.NoError(t, err)
	return client
}

func TestNewClientRequiresAPIKey(t *testing.T) {
	_, err := NewClient(&Config{BaseURL: "https://example.com"})
	require.Error(t, err)
	assert.Contains(t, err.Error(), "DASHSCOPE_API_KEY")
}

func TestEmbedImageListShape(t *testing.T) {
	client := testClient(t, func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, embeddingPath, r.URL.Path)
		assert.Equal(t, "Bearer test-key", r.Header.Get("Authorization"))

		var body map[string]any
		require.NoError(t, json.NewDecoder(r.Body).Decode(&body))
		assert.Equal(t, "tongyi-embedding-vision-plus", body["model"])

		_ = json.NewEncoder(w).Encode(map[string]any{
			"request_id": "req-1",
			"output": map[string]any{
				"embeddings": []map[string]any{
					{"index": 0, "embedding": []float32{0.1, 0.2, 0.3}},
				},
			},
		})
	})

	vector, err := client.EmbedImage(context.Background(), "data:image/png;base64,AAAA")
	require.NoError(t, err)
	assert.Equal(t, []float32{0.1, 0.2, 0.3}, vector)
}

func TestEmbedImageFlatShape(t *testing.T) {
	client := testClient(t, func(w http.ResponseWriter, r *http.Request) {
		_ = json.NewEncoder(w).Encode(map[string]any{
			"output": map[string]any{
				"embedding": []float32{0.5, 0.6},
			},
		})
	})

	vector, err := client.EmbedImage(context.Background(), "data:image/png;base64,AAAA")
	require.NoError(t, err)
	assert.Equal(t, []float32{0.5, 0.6}, vector)
}

func TestEmbedImageEmptyInput(t *testing.T) {
	client := testClient(t, func(w http.ResponseWriter, r *http.Request) {
		t.Error("no request expected")
	})

	_, err := client.EmbedImage(context.Background(), "")
	require.Error(t, err)
}

func TestEmbedImageVendorError(t *testing.T) {
	client := testClient(t, func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusBadRequest)
		_ = json.NewEncoder(w).Encode(map[string]any{
			"request_id": "req-9",
			"code":       "InvalidParameter",
			"message":    "image too large",
		})
	})

	_, err := client.EmbedImage(context.Background(), "data:image/png;base64,AAAA")
	require.Error(t, err)
	assert.Contains(t, err.Error(), "InvalidParameter")
	assert.Contains(t, err.Error(), "image too large")
	assert.Contains(t, err.Error(), "req-9")
}

func TestEmbedImageEmptyVector(t *testing.T) {
	client := testClient(t, func(w http.ResponseWriter, r *http.Request) {
		_ = json.NewEncoder(w).Encode(map[string]any{
			"request_id": "req-2",
			"output":     map[string]any{},
		})
	})

	_, err := client.EmbedImage(context.Background(), "data:image/png;base64,AAAA")
	require.Error(t, err)
	assert.Contains(t, err.Error(), "empty embedding")
}

func TestChatStringContent(t *testing.T) {
	client := testClient(t, func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, generationPath, r.URL.Path)

		_ = json.NewEncoder(w).Encode(map[string]any{
			"output": map[string]any{
				"choices": []map[string]any{
					{"message": map[string]any{"role": "assistant", "content": "plain reply"}},
				},
			},
		})
	})

	reply, err := client.Chat(context.Background(), []Message{
		{Role: "user", Content: []ContentPart{{Text: "hello"}}},
	})
	require.NoError(t, err)
	assert.Equal(t, "plain reply", reply)
}

func TestChatPartsContent(t *testing.T) {
	client := testClient(t, func(w http.ResponseWriter, r *http.Request) {
		_ = json.NewEncoder(w).Encode(map[string]any{
			"output": map[string]any{
				"choices": []map[string]any{
					{"message": map[string]any{
						"role":    "assistant",
						"content": []map[string]any{{"text": "parts reply"}},
					}},
				},
			},
		})
	})

	reply, err := client.Chat(context.Background(), []Message{
		{Role: "user", Content: []ContentPart{{Text: "hello"}}},
	})
	require.NoError(t, err)
	assert.Equal(t, "parts reply", reply)
}

func TestChatOutputTextFallback(t *testing.T) {
	client := testClient(t, func(w http.ResponseWriter, r *http.Request) {
		_ = json.NewEncoder(w).Encode(map[string]any{
			"output": map[string]any{"text": "direct text"},
		})
	})

	reply, err := client.Chat(context.Background(), []Message{
		{Role: "user", Content: []ContentPart{{Text: "hello"}}},
	})
	require.NoError(t, err)
	assert.Equal(t, "direct text", reply)
}

func TestChatNoMessages(t *testing.T) {
	client := testClient(t, func(w http.ResponseWriter, r *http.Request) {
		t.Error("no request expected")
	})

	_, err := client.Chat(context.Background(), nil)
	require.Error(t, err)
}
