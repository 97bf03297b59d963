package service

import (
	"context"
	"fmt"
	"time"

	"github.com/google/uuid"

	"github.com/plshi/imagesearch/internal/imaging"
	"github.com/plshi/imagesearch/internal/vectordb"
)

// Insert vectorizes an uploaded image and stores the record in the vector
// database. The record carries the class identity (a stable hash plus the
// human-readable name), the original filename and the object-storage URL of
// the archived original next to the embedding.
func (s *ImageService) Insert(ctx context.Context, upload ImageUpload) (*InsertResult, error) {
	vector, err := s.Vectorize(ctx, upload.Data, upload.ContentType)
	if err != nil {
		return nil, err
	}

	id := uuid.NewString()
	if upload.FileURL == "" {
		upload.FileURL = s.archiveOriginal(ctx, id, upload)
	}
	input := vectordb.EmbeddingInput{
		ID:     id,
		Vector: vector,
		Payload: map[string]any{
			vectordb.FieldClassID:         imaging.ClassID(upload.Class),
			vectordb.FieldClassName:       upload.Class,
			vectordb.FieldFilePath:        upload.FileName,
			vectordb.FieldFileDescription: "",
			vectordb.FieldFileURL:         upload.FileURL,
		},
	}

	if err := s.store.Insert(ctx, "", []vectordb.EmbeddingInput{input}); err != nil {
		return nil, fmt.Errorf("vector insert failed: %w", err)
	}
	s.metrics.IncrementInserts()

	s.log.Info("image record inserted", nil, map[string]interface{}{
		"id":        id,
		"file_name": upload.FileName,
		"class":     upload.Class,
	})

	return &InsertResult{ID: id, Dim: len(vector)}, nil
}

// archiveOriginal stores the original file bytes in object storage, keyed by
// class, date and point id, and returns the access URL. Archiving is best
// effort: a failing object store degrades the record to an empty file_url
// instead of failing the insert.
func (s *ImageService) archiveOriginal(ctx context.Context, id string, upload ImageUpload) string {
	if s.objects == nil {
		return ""
	}

	objectKey := fmt.Sprintf("%s/%s/%s-%s",
		imaging.SanitizeFolderName(upload.Class),
		time.Now().Format("2006-01-02"),
		id[:8],
		imaging.SanitizeFileName(upload.FileName),
	)

	url, err := s.objects.Put(ctx, objectKey, upload.Data, upload.ContentType)
	if err != nil {
		s.log.Warn("archiving original failed", err, map[string]interface{}{
			"file_name": upload.FileName,
			"object":    objectKey,
		})
		return ""
	}
	return url
}
