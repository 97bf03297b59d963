package vectordb

import "context"

// Service is the common interface for vector databases.
// It provides a database-agnostic abstraction for vector similarity search,
// keeping SDK types out of the application layer so the backing store can be
// swapped without changing application code.
type Service interface {
	// Search performs a similarity search and returns results ordered by
	// descending score, already filtered by the request's score threshold.
	Search(ctx context.Context, req SearchRequest) ([]SearchResult, error)

	// Insert adds embeddings to a collection.
	// Uses batch processing internally for efficiency.
	Insert(ctx context.Context, collectionName string, inputs []EmbeddingInput) error

	// EnsureCollection creates a collection if it doesn't exist.
	// Safe to call multiple times; no-op if collection already exists.
	EnsureCollection(ctx context.Context, name string, vectorSize uint64) error

	// DropCollection removes a collection and everything in it.
	// Administrative teardown only; there is no per-record deletion.
	DropCollection(ctx context.Context, name string) error

	// GetCollection retrieves metadata about a collection.
	GetCollection(ctx context.Context, name string) (*Collection, error)

	// ListCollections returns names of all collections.
	ListCollections(ctx context.Context) ([]string, error)
}
