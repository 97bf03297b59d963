package service

import (
	"context"

	"github.com/plshi/imagesearch/internal/dashscope"
)

// Embedder computes an image embedding from an inline data URL.
// Implemented by *dashscope.Client; narrowed to an interface so services can
// be tested without the vendor API.
type Embedder interface {
	EmbedImage(ctx context.Context, dataURL string) ([]float32, error)
}

// ChatModel runs a vision-language chat turn.
// Implemented by *dashscope.Client.
type ChatModel interface {
	Chat(ctx context.Context, messages []dashscope.Message) (string, error)
}

// ObjectStore archives original image files and returns their access URL.
// Implemented by *minio.Minio.
type ObjectStore interface {
	Put(ctx context.Context, objectKey string, data []byte, contentType string) (string, error)
}

// ImageUpload carries one image to be vectorized and inserted.
type ImageUpload struct {
	FileName    string
	Data        []byte
	ContentType string
	Class       string
	FileURL     string // optional object-storage URL of the original file
}

// ImageQuery carries one image to search similar records for.
type ImageQuery struct {
	FileName       string
	Data           []byte
	ContentType    string
	TopK           int
	ScoreThreshold float32
}

// SearchHit is one similar image record.
type SearchHit struct {
	ID              string  `json:"id"`
	Score           float32 `json:"score"`
	ClassName       string  `json:"class_name"`
	FilePath        string  `json:"file_path"`
	FileDescription string  `json:"file_description"`
	FileURL         string  `json:"file_url"`
}

// InsertResult reports a completed insert.
type InsertResult struct {
	ID  string `json:"id"`
	Dim int    `json:"dim"`
}

// CompareInput carries two images and the scene context for comparison.
type CompareInput struct {
	Image1Data       []byte
	Image1Name       string
	Image1Type       string
	Image2Data       []byte
	Image2Name       string
	Image2Type       string
	SceneDescription string
}

// CompareResult is the vision-language model's judgment on whether two
// images show the same object.
type CompareResult struct {
	IsSame     bool    `json:"is_same"`
	Confidence float64 `json:"confidence"`
	Reason     string  `json:"reason"`
}
