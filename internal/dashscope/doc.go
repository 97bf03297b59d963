// Package dashscope provides a small client for the DashScope multimodal
// API.
//
// # Overview
//
// The package exposes a single public entrypoint, Client, which hides the
// endpoint paths, authentication and the vendor's response envelope. Two
// operations cover everything this service needs:
//
//	vector, err := client.EmbedImage(ctx, dataURL)
//	reply, err  := client.Chat(ctx, messages)
//
// EmbedImage calls the multimodal embedding endpoint and normalizes both
// response shapes the vendor is known to return (a per-content embeddings
// list, or a single flat embedding). Chat calls the multimodal generation
// endpoint with a conversation of image and text parts and returns the
// model's text reply, wherever the vendor envelope happens to put it.
//
// # Configuration
//
// Configuration is sourced from environment variables via NewConfig:
//
//   - DASHSCOPE_API_KEY (required)
//   - DASHSCOPE_BASE_URL (default https://dashscope.aliyuncs.com)
//   - DASHSCOPE_EMBEDDING_MODEL (default tongyi-embedding-vision-plus)
//   - DASHSCOPE_EMBEDDING_DIMS (default 1152)
//   - DASHSCOPE_VL_MODEL (default qwen3-vl-flash)
//   - DASHSCOPE_HTTP_TIMEOUT_SECONDS (default 30)
//
// # Dependency Injection (Fx)
//
// A ready-to-use Fx module is provided as dashscope.FXModule, supplying
// *Config and *Client and registering a shutdown hook for the HTTP client.
package dashscope
