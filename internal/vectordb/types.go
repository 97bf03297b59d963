package vectordb

// Payload field names for image records. These are the only fields the
// service stores alongside a vector.
const (
	FieldClassID         = "class_id"
	FieldClassName       = "class_name"
	FieldFilePath        = "file_path"
	FieldFileDescription = "file_description"
	FieldFileURL         = "file_url"
)

// SearchRequest represents a single similarity search query.
type SearchRequest struct {
	// CollectionName is the target collection to search in
	CollectionName string `json:"collectionName"`

	// Vector is the query embedding to find similar vectors for
	Vector []float32 `json:"vector"`

	// TopK is the maximum number of results to return
	TopK int `json:"topK"`

	// ScoreThreshold drops results whose cosine similarity falls below it.
	// Zero means no threshold.
	ScoreThreshold float32 `json:"scoreThreshold,omitempty"`

	// ClassName optionally restricts the search to records of one class.
	ClassName string `json:"className,omitempty"`
}

// SearchResult represents a single search result with its similarity score.
// This is database-agnostic; payload is converted to map[string]any.
type SearchResult struct {
	// ID is the unique identifier of the matched point
	ID string `json:"id"`

	// Score is the similarity score (higher = more similar for cosine)
	Score float32 `json:"score"`

	// Payload contains the metadata stored with the vector
	Payload map[string]any `json:"payload"`
}

// EmbeddingInput is the input for inserting vectors into a collection.
type EmbeddingInput struct {
	// ID is the unique identifier for this embedding
	ID string `json:"id"`

	// Vector is the dense embedding representation
	Vector []float32 `json:"vector"`

	// Payload is optional metadata to store with the vector
	Payload map[string]any `json:"payload,omitempty"`
}

// Collection contains metadata about a vector collection.
type Collection struct {
	// Name is the unique identifier of the collection
	Name string `json:"name"`

	// Status indicates the operational state (e.g., "Green", "Yellow")
	Status string `json:"status"`

	// VectorSize is the dimension of vectors in this collection
	VectorSize int `json:"vectorSize"`

	// Distance is the similarity metric (e.g., "Cosine", "Dot", "Euclid")
	Distance string `json:"distance"`

	// PointCount is the number of stored points
	PointCount uint64 `json:"pointCount"`
}
