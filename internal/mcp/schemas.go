package mcp

import "github.com/plshi/imagesearch/internal/service"

const (
	// ToolUploadImage is the name of the upload_image MCP tool.
	ToolUploadImage = "upload_image"

	// ToolSearchImage is the name of the search_image MCP tool.
	ToolSearchImage = "search_image"
)

// UploadImageRequest defines the input schema for the upload_image tool.
// The image is referenced by a path on the server's filesystem, matching
// the JSON upload endpoint agents already call over HTTP.
type UploadImageRequest struct {
	// FileName is the original name of the image, extension included.
	FileName string `json:"file_name"`

	// FileData is the local filesystem path of the image.
	FileData string `json:"file_data"`

	// FileClass is the category the image is filed under.
	FileClass string `json:"file_class"`
}

// UploadImageResponse defines the output schema for the upload_image tool.
type UploadImageResponse struct {
	// Status indicates the result of the operation ("success" or "error").
	Status string `json:"status"`

	// ID is the identifier of the stored record.
	ID string `json:"id,omitempty"`

	// Dim is the dimension of the stored embedding.
	Dim int `json:"dim,omitempty"`

	// Error contains an error message if Status is "error".
	Error string `json:"error,omitempty"`
}

// SearchImageRequest defines the input schema for the search_image tool.
type SearchImageRequest struct {
	// FileName is the original name of the query image, extension included.
	FileName string `json:"file_name"`

	// FileData is the local filesystem path of the query image.
	FileData string `json:"file_data"`

	// TopK is the maximum number of results to return. Zero means the
	// service default.
	TopK int `json:"top_k,omitempty"`

	// Threshold drops matches below this cosine similarity. Zero means the
	// service default.
	Threshold float32 `json:"threshold,omitempty"`
}

// SearchImageResponse defines the output schema for the search_image tool.
type SearchImageResponse struct {
	// Status indicates the result of the operation ("success" or "error").
	Status string `json:"status"`

	// Results contains the matching image records, best first.
	Results []service.SearchHit `json:"results"`

	// Error contains an error message if Status is "error".
	Error string `json:"error,omitempty"`
}
