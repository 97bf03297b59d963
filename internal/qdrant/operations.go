package qdrant

import (
	"context"
	"fmt"
	"slices"

	qdrant "github.com/qdrant/go-client/qdrant"

	"github.com/plshi/imagesearch/internal/vectordb"
)

// EnsureCollection verifies if a given collection exists, and creates it if missing.
//
// It's safe to call this multiple times: if the collection already exists,
// the function exits early. This simplifies startup logic: the service
// bootstraps its own collection on first run.
func (c *Client) EnsureCollection(ctx context.Context, name string, vectorSize uint64) error {
	if name == "" {
		return fmt.Errorf("collection name cannot be empty")
	}
	if vectorSize == 0 {
		return fmt.Errorf("vector size cannot be zero")
	}

	collections, err := c.api.ListCollections(ctx)
	if err != nil {
		return fmt.Errorf("qdrant: failed to list collections: %w", err)
	}

	if slices.Contains(collections, name) {
		c.log.Debug("collection already exists", nil, map[string]interface{}{"collection": name})
		return nil
	}

	c.log.Info("creating collection", nil, map[string]interface{}{
		"collection":  name,
		"vector_size": vectorSize,
	})

	req := &qdrant.CreateCollection{
		CollectionName: name,
		VectorsConfig: qdrant.NewVectorsConfig(&qdrant.VectorParams{
			Size:     vectorSize,
			Distance: qdrant.Distance_Cosine,
		}),
	}

	if err := c.api.CreateCollection(ctx, req); err != nil {
		return fmt.Errorf("qdrant: failed to create collection %q: %w", name, err)
	}

	return nil
}

// Insert adds embeddings to a collection in batches to reduce network
// overhead. Each batch is a blocking upsert (Wait=true) so data is persisted
// before the call returns.
func (c *Client) Insert(ctx context.Context, collectionName string, inputs []vectordb.EmbeddingInput) error {
	if len(inputs) == 0 {
		return nil
	}
	if collectionName == "" {
		collectionName = c.cfg.Collection
	}

	for start := 0; start < len(inputs); start += defaultBatchSize {
		end := min(start+defaultBatchSize, len(inputs))

		if err := c.upsertBatch(ctx, collectionName, inputs[start:end]); err != nil {
			return fmt.Errorf("qdrant: batch upsert failed at [%d:%d]: %w", start, end, err)
		}
		c.log.Debug("inserted batch", nil, map[string]interface{}{
			"collection": collectionName,
			"from":       start,
			"to":         end,
		})
	}

	return nil
}

// upsertBatch sends a single Upsert request for a slice of embeddings.
func (c *Client) upsertBatch(ctx context.Context, collectionName string, batch []vectordb.EmbeddingInput) error {
	points := make([]*qdrant.PointStruct, 0, len(batch))
	for _, in := range batch {
		points = append(points, &qdrant.PointStruct{
			Id:      qdrant.NewID(in.ID),
			Vectors: qdrant.NewVectors(in.Vector...),
			Payload: qdrant.NewValueMap(in.Payload),
		})
	}

	wait := true
	req := &qdrant.UpsertPoints{
		CollectionName: collectionName,
		Points:         points,
		Wait:           &wait,
	}

	if _, err := c.api.Upsert(ctx, req); err != nil {
		return err
	}
	return nil
}

// Search performs a similarity search in the requested collection.
//
// The request's score threshold is pushed down to Qdrant so only hits with
// cosine similarity at or above it come back; an optional class name is
// translated into a payload filter.
func (c *Client) Search(ctx context.Context, req vectordb.SearchRequest) ([]vectordb.SearchResult, error) {
	collection := req.CollectionName
	if collection == "" {
		collection = c.cfg.Collection
	}
	if err := validateSearchInput(collection, req.Vector, req.TopK); err != nil {
		return nil, err
	}

	limit := uint64(req.TopK)
	query := &qdrant.QueryPoints{
		CollectionName: collection,
		Query:          qdrant.NewQuery(req.Vector...),
		Limit:          &limit,
		WithPayload:    qdrant.NewWithPayload(true),
	}

	if req.ScoreThreshold > 0 {
		threshold := req.ScoreThreshold
		query.ScoreThreshold = &threshold
	}

	if req.ClassName != "" {
		query.Filter = &qdrant.Filter{
			Must: []*qdrant.Condition{
				qdrant.NewMatch(vectordb.FieldClassName, req.ClassName),
			},
		}
	}

	resp, err := c.api.Query(ctx, query)
	if err != nil {
		return nil, fmt.Errorf("qdrant: search failed: %w", err)
	}

	results, err := parseSearchResults(resp)
	if err != nil {
		return nil, err
	}

	c.log.Debug("search completed", nil, map[string]interface{}{
		"collection": collection,
		"results":    len(results),
	})
	return results, nil
}

// parseSearchResults converts a Qdrant response to vectordb results.
func parseSearchResults(resp []*qdrant.ScoredPoint) ([]vectordb.SearchResult, error) {
	results := make([]vectordb.SearchResult, 0, len(resp))
	for _, r := range resp {
		var id string
		switch v := r.Id.PointIdOptions.(type) {
		case *qdrant.PointId_Num:
			id = fmt.Sprintf("%d", v.Num)
		case *qdrant.PointId_Uuid:
			id = v.Uuid
		default:
			return nil, fmt.Errorf("qdrant: unexpected PointId type: %T", v)
		}

		results = append(results, vectordb.SearchResult{
			ID:      id,
			Score:   r.Score,
			Payload: convertPayload(r.Payload),
		})
	}
	return results, nil
}

// DropCollection removes a collection and all points inside it.
// Administrative teardown only; nothing in the request path calls this.
func (c *Client) DropCollection(ctx context.Context, name string) error {
	if name == "" {
		return fmt.Errorf("collection name cannot be empty")
	}

	collections, err := c.api.ListCollections(ctx)
	if err != nil {
		return fmt.Errorf("qdrant: failed to list collections: %w", err)
	}
	if !slices.Contains(collections, name) {
		return fmt.Errorf("qdrant: collection %q does not exist", name)
	}

	if err := c.api.DeleteCollection(ctx, name); err != nil {
		return fmt.Errorf("qdrant: failed to drop collection %q: %w", name, err)
	}

	c.log.Info("collection dropped", nil, map[string]interface{}{"collection": name})
	return nil
}

// GetCollection retrieves metadata about a collection, decoupled from the
// SDK's protobuf types so the application layer stays independent of the
// Qdrant client library.
func (c *Client) GetCollection(ctx context.Context, name string) (*vectordb.Collection, error) {
	if name == "" {
		return nil, fmt.Errorf("collection name cannot be empty")
	}

	info, err := c.api.GetCollectionInfo(ctx, name)
	if err != nil {
		return nil, fmt.Errorf("qdrant: failed to get collection %q: %w", name, err)
	}

	size, distance := extractVectorDetails(info)

	return &vectordb.Collection{
		Name:       name,
		Status:     info.Status.String(),
		VectorSize: size,
		Distance:   distance,
		PointCount: derefUint64(info.PointsCount),
	}, nil
}

// ListCollections retrieves the names of all existing collections.
func (c *Client) ListCollections(ctx context.Context) ([]string, error) {
	names, err := c.api.ListCollections(ctx)
	if err != nil {
		return nil, fmt.Errorf("qdrant: failed to list collections: %w", err)
	}
	return names, nil
}
