package service

import (
	"bytes"
	"context"
	"errors"
	"image"
	"image/png"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"

	"github.com/plshi/imagesearch/internal/dashscope"
	"github.com/plshi/imagesearch/internal/logger"
	"github.com/plshi/imagesearch/internal/metrics"
	"github.com/plshi/imagesearch/internal/vectordb"
)

type fakeEmbedder struct {
	vector     []float32
	err        error
	gotDataURL string
}

func (f *fakeEmbedder) EmbedImage(_ context.Context, dataURL string) ([]float32, error) {
	f.gotDataURL = dataURL
	return f.vector, f.err
}

type fakeChat struct {
	reply       string
	err         error
	gotMessages []dashscope.Message
}

func (f *fakeChat) Chat(_ context.Context, messages []dashscope.Message) (string, error) {
	f.gotMessages = messages
	return f.reply, f.err
}

type fakeStore struct {
	searchResults []vectordb.SearchResult
	searchErr     error
	gotSearch     vectordb.SearchRequest

	inserted      []vectordb.EmbeddingInput
	insertErr     error
	gotCollection string
}

func (f *fakeStore) Search(_ context.Context, req vectordb.SearchRequest) ([]vectordb.SearchResult, error) {
	f.gotSearch = req
	return f.searchResults, f.searchErr
}

func (f *fakeStore) Insert(_ context.Context, collectionName string, inputs []vectordb.EmbeddingInput) error {
	f.gotCollection = collectionName
	f.inserted = append(f.inserted, inputs...)
	return f.insertErr
}

func (f *fakeStore) EnsureCollection(context.Context, string, uint64) error { return nil }
func (f *fakeStore) DropCollection(context.Context, string) error           { return nil }
func (f *fakeStore) GetCollection(context.Context, string) (*vectordb.Collection, error) {
	return nil, nil
}
func (f *fakeStore) ListCollections(context.Context) ([]string, error) { return nil, nil }

type fakeObjects struct {
	putErr  error
	gotKeys []string
}

func (f *fakeObjects) Put(_ context.Context, objectKey string, data []byte, contentType string) (string, error) {
	if f.putErr != nil {
		return "", f.putErr
	}
	f.gotKeys = append(f.gotKeys, objectKey)
	return "http://minio.local/images/" + objectKey, nil
}

func newTestService(embedder Embedder, chat ChatModel, store vectordb.Service) *ImageService {
	return newTestServiceWithObjects(embedder, chat, store, nil)
}

func newTestServiceWithObjects(embedder Embedder, chat ChatModel, store vectordb.Service, objects ObjectStore) *ImageService {
	return NewImageService(
		embedder,
		chat,
		store,
		objects,
		&logger.Logger{Zap: zap.NewNop()},
		metrics.NewMetrics(metrics.Config{ServiceName: "test"}),
	)
}

func pngBytes(t *testing.T) []byte {
	t.Helper()
	var buf bytes.Buffer
	require.NoError(t, png.Encode(&buf, image.NewRGBA(image.Rect(0, 0, 2, 2))))
	return buf.Bytes()
}

func TestVectorize(t *testing.T) {
	embedder := &fakeEmbedder{vector: []float32{0.1, 0.2}}
	svc := newTestService(embedder, &fakeChat{}, &fakeStore{})

	vector, err := svc.Vectorize(context.Background(), pngBytes(t), "image/png")
	require.NoError(t, err)
	assert.Equal(t, []float32{0.1, 0.2}, vector)
	assert.True(t, strings.HasPrefix(embedder.gotDataURL, "data:image/png;base64,"))
}

func TestVectorizeRejectsGarbage(t *testing.T) {
	svc := newTestService(&fakeEmbedder{}, &fakeChat{}, &fakeStore{})

	_, err := svc.Vectorize(context.Background(), []byte("not an image"), "image/png")
	require.Error(t, err)
	assert.Contains(t, err.Error(), "could not be parsed")
}

func TestVectorizeEmbedderError(t *testing.T) {
	embedder := &fakeEmbedder{err: errors.New("quota exceeded")}
	svc := newTestService(embedder, &fakeChat{}, &fakeStore{})

	_, err := svc.Vectorize(context.Background(), pngBytes(t), "image/png")
	require.Error(t, err)
	assert.Contains(t, err.Error(), "quota exceeded")
}

func TestInsert(t *testing.T) {
	store := &fakeStore{}
	svc := newTestService(&fakeEmbedder{vector: []float32{1, 2, 3}}, &fakeChat{}, store)

	result, err := svc.Insert(context.Background(), ImageUpload{
		FileName:    "cat.png",
		Data:        pngBytes(t),
		ContentType: "image/png",
		Class:       "animals",
		FileURL:     "http://minio.local/images/cat.png",
	})
	require.NoError(t, err)
	assert.NotEmpty(t, result.ID)
	assert.Equal(t, 3, result.Dim)

	require.Len(t, store.inserted, 1)
	record := store.inserted[0]
	assert.Equal(t, result.ID, record.ID)
	assert.Equal(t, []float32{1, 2, 3}, record.Vector)
	assert.Equal(t, "animals", record.Payload[vectordb.FieldClassName])
	assert.Len(t, record.Payload[vectordb.FieldClassID], 32)
	assert.Equal(t, "cat.png", record.Payload[vectordb.FieldFilePath])
	assert.Equal(t, "http://minio.local/images/cat.png", record.Payload[vectordb.FieldFileURL])

	// Empty collection name means the store's configured default.
	assert.Empty(t, store.gotCollection)
}

func TestInsertArchivesOriginal(t *testing.T) {
	store := &fakeStore{}
	objects := &fakeObjects{}
	svc := newTestServiceWithObjects(&fakeEmbedder{vector: []float32{1}}, &fakeChat{}, store, objects)

	result, err := svc.Insert(context.Background(), ImageUpload{
		FileName:    "cat.png",
		Data:        pngBytes(t),
		ContentType: "image/png",
		Class:       "animals",
	})
	require.NoError(t, err)

	// Original bytes land in object storage under class/date/id-name.
	require.Len(t, objects.gotKeys, 1)
	assert.Regexp(t, `^animals/\d{4}-\d{2}-\d{2}/[0-9a-f]{8}-cat\.png$`, objects.gotKeys[0])

	require.Len(t, store.inserted, 1)
	url, _ := store.inserted[0].Payload[vectordb.FieldFileURL].(string)
	assert.Equal(t, "http://minio.local/images/"+objects.gotKeys[0], url)
	assert.NotEmpty(t, result.ID)
}

func TestInsertArchiveFailureIsNotFatal(t *testing.T) {
	store := &fakeStore{}
	objects := &fakeObjects{putErr: errors.New("bucket unreachable")}
	svc := newTestServiceWithObjects(&fakeEmbedder{vector: []float32{1}}, &fakeChat{}, store, objects)

	_, err := svc.Insert(context.Background(), ImageUpload{
		FileName: "cat.png",
		Data:     pngBytes(t),
		Class:    "animals",
	})
	require.NoError(t, err)

	require.Len(t, store.inserted, 1)
	assert.Equal(t, "", store.inserted[0].Payload[vectordb.FieldFileURL])
}

func TestInsertKeepsCallerFileURL(t *testing.T) {
	store := &fakeStore{}
	objects := &fakeObjects{}
	svc := newTestServiceWithObjects(&fakeEmbedder{vector: []float32{1}}, &fakeChat{}, store, objects)

	_, err := svc.Insert(context.Background(), ImageUpload{
		FileName: "cat.png",
		Data:     pngBytes(t),
		Class:    "animals",
		FileURL:  "http://elsewhere/cat.png",
	})
	require.NoError(t, err)

	// A caller-supplied URL wins; nothing is re-uploaded.
	assert.Empty(t, objects.gotKeys)
	require.Len(t, store.inserted, 1)
	assert.Equal(t, "http://elsewhere/cat.png", store.inserted[0].Payload[vectordb.FieldFileURL])
}

func TestInsertStoreError(t *testing.T) {
	store := &fakeStore{insertErr: errors.New("connection refused")}
	svc := newTestService(&fakeEmbedder{vector: []float32{1}}, &fakeChat{}, store)

	_, err := svc.Insert(context.Background(), ImageUpload{
		FileName: "cat.png",
		Data:     pngBytes(t),
		Class:    "animals",
	})
	require.Error(t, err)
	assert.Contains(t, err.Error(), "vector insert failed")
}

func TestSearchDefaults(t *testing.T) {
	store := &fakeStore{
		searchResults: []vectordb.SearchResult{
			{
				ID:    "id-1",
				Score: 0.92,
				Payload: map[string]any{
					vectordb.FieldClassName: "animals",
					vectordb.FieldFilePath:  "cat.png",
					vectordb.FieldFileURL:   "http://minio.local/images/cat.png",
				},
			},
		},
	}
	svc := newTestService(&fakeEmbedder{vector: []float32{1}}, &fakeChat{}, store)

	hits, err := svc.Search(context.Background(), ImageQuery{
		FileName: "query.png",
		Data:     pngBytes(t),
	})
	require.NoError(t, err)

	assert.Equal(t, DefaultTopK, store.gotSearch.TopK)
	assert.InDelta(t, DefaultScoreThreshold, store.gotSearch.ScoreThreshold, 1e-6)

	require.Len(t, hits, 1)
	assert.Equal(t, "id-1", hits[0].ID)
	assert.InDelta(t, 0.92, hits[0].Score, 1e-6)
	assert.Equal(t, "animals", hits[0].ClassName)
	assert.Equal(t, "cat.png", hits[0].FilePath)
	assert.Equal(t, "http://minio.local/images/cat.png", hits[0].FileURL)
}

func TestSearchExplicitParams(t *testing.T) {
	store := &fakeStore{}
	svc := newTestService(&fakeEmbedder{vector: []float32{1}}, &fakeChat{}, store)

	_, err := svc.Search(context.Background(), ImageQuery{
		FileName:       "query.png",
		Data:           pngBytes(t),
		TopK:           10,
		ScoreThreshold: 0.25,
	})
	require.NoError(t, err)
	assert.Equal(t, 10, store.gotSearch.TopK)
	assert.InDelta(t, 0.25, store.gotSearch.ScoreThreshold, 1e-6)
}

func TestSearchStoreError(t *testing.T) {
	store := &fakeStore{searchErr: errors.New("timeout")}
	svc := newTestService(&fakeEmbedder{vector: []float32{1}}, &fakeChat{}, store)

	_, err := svc.Search(context.Background(), ImageQuery{Data: pngBytes(t)})
	require.Error(t, err)
	assert.Contains(t, err.Error(), "vector search failed")
}
