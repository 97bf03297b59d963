// Package qdrant implements vectordb.Service on top of the official Qdrant
// Go client.
//
// The wrapper abstracts away low-level SDK details while preserving
// fine-grained control over how Qdrant is accessed:
//
//   - connectivity is validated with an immediate health check at startup
//   - the image collection is created on first run (cosine distance, with
//     the embedding dimension taken from configuration)
//   - inserts are batched, blocking upserts
//   - searches push the score threshold and optional class filter down to
//     the server
//   - DropCollection exists for administrative teardown only
//
// Application code should depend on vectordb.Service; the FXModule provides
// the client under that interface.
package qdrant
