package dashscope

import (
	"fmt"
	"os"
	"strconv"
)

const (
	defaultBaseURL        = "https://dashscope.aliyuncs.com"
	defaultEmbeddingModel = "tongyi-embedding-vision-plus"
	defaultEmbeddingDim   = 1152
	defaultVLModel        = "qwen3-vl-flash"
)

// Config holds endpoint and model settings for the DashScope API.
type Config struct {
	// BaseURL is the root of the DashScope API (no path appended).
	BaseURL string

	// APIKey authenticates every request.
	APIKey string

	// EmbeddingModel is the multimodal embedding model name.
	EmbeddingModel string

	// EmbeddingDim is the requested embedding dimension. It must match the
	// vector size of the collection the embeddings are stored in.
	EmbeddingDim int

	// VLModel is the vision-language model used for image comparison.
	VLModel string

	// HTTPTimeoutS is the HTTP timeout in seconds (default 30).
	HTTPTimeoutS int
}

// NewConfig reads from environment variables.
func NewConfig() *Config {
	cfg := &Config{
		BaseURL:        os.Getenv("DASHSCOPE_BASE_URL"),
		APIKey:         os.Getenv("DASHSCOPE_API_KEY"),
		EmbeddingModel: os.Getenv("DASHSCOPE_EMBEDDING_MODEL"),
		EmbeddingDim:   defaultEmbeddingDim,
		VLModel:        os.Getenv("DASHSCOPE_VL_MODEL"),
		HTTPTimeoutS:   30,
	}

	if cfg.BaseURL == "" {
		cfg.BaseURL = defaultBaseURL
	}
	if cfg.EmbeddingModel == "" {
		cfg.EmbeddingModel = defaultEmbeddingModel
	}
	if cfg.VLModel == "" {
		cfg.VLModel = defaultVLModel
	}
	if v := os.Getenv("DASHSCOPE_EMBEDDING_DIMS"); v != "" {
		if n, err := strconv.Atoi(v); err == nil && n > 0 {
			cfg.EmbeddingDim = n
		}
	}
	if v := os.Getenv("DASHSCOPE_HTTP_TIMEOUT_SECONDS"); v != "" {
		if n, err := strconv.Atoi(v); err == nil && n > 0 {
			cfg.HTTPTimeoutS = n
		}
	}

	return cfg
}

// Validate ensures required fields are present.
func (c *Config) Validate() error {
	if c.APIKey == "" {
		return fmt.Errorf("dashscope: missing DASHSCOPE_API_KEY")
	}
	if c.BaseURL == "" {
		return fmt.Errorf("dashscope: missing DASHSCOPE_BASE_URL")
	}
	return nil
}
