package service

import (
	"context"
	"fmt"

	"github.com/plshi/imagesearch/internal/vectordb"
)

const (
	// DefaultTopK is the number of neighbors returned when the request
	// does not specify one.
	DefaultTopK = 5

	// DefaultScoreThreshold drops matches whose cosine similarity is below
	// it. Tuned for the multimodal embedding model in use.
	DefaultScoreThreshold = 0.8
)

// Search vectorizes a query image and returns the most similar stored
// records, filtered by the score threshold.
func (s *ImageService) Search(ctx context.Context, query ImageQuery) ([]SearchHit, error) {
	vector, err := s.Vectorize(ctx, query.Data, query.ContentType)
	if err != nil {
		return nil, err
	}

	topK := query.TopK
	if topK <= 0 {
		topK = DefaultTopK
	}
	threshold := query.ScoreThreshold
	if threshold <= 0 {
		threshold = DefaultScoreThreshold
	}

	results, err := s.store.Search(ctx, vectordb.SearchRequest{
		Vector:         vector,
		TopK:           topK,
		ScoreThreshold: threshold,
	})
	if err != nil {
		return nil, fmt.Errorf("vector search failed: %w", err)
	}
	s.metrics.IncrementSearches()

	hits := make([]SearchHit, 0, len(results))
	for _, r := range results {
		hits = append(hits, hitFromResult(r))
	}

	s.log.Info("image search completed", nil, map[string]interface{}{
		"file_name": query.FileName,
		"hits":      len(hits),
	})
	return hits, nil
}

// hitFromResult maps a raw vector-store result onto the API shape.
func hitFromResult(r vectordb.SearchResult) SearchHit {
	hit := SearchHit{
		ID:    r.ID,
		Score: r.Score,
	}
	hit.ClassName = payloadString(r.Payload, vectordb.FieldClassName)
	hit.FilePath = payloadString(r.Payload, vectordb.FieldFilePath)
	hit.FileDescription = payloadString(r.Payload, vectordb.FieldFileDescription)
	hit.FileURL = payloadString(r.Payload, vectordb.FieldFileURL)
	return hit
}

func payloadString(payload map[string]any, key string) string {
	if payload == nil {
		return ""
	}
	if v, ok := payload[key].(string); ok {
		return v
	}
	return ""
}
