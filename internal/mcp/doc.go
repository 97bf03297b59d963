// Package mcp exposes the image search operations as MCP tools so LLM
// agents can upload and search images directly. The tool surface is the
// agent-facing twin of the HTTP server's JSON upload and search endpoints:
// same path-based inputs, same service layer underneath.
package mcp
