package mcp

import (
	"bytes"
	"context"
	"errors"
	"image"
	"image/png"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"

	"github.com/plshi/imagesearch/internal/logger"
	"github.com/plshi/imagesearch/internal/service"
)

type fakeImageOps struct {
	insertErr  error
	gotUploads []service.ImageUpload

	hits       []service.SearchHit
	searchErr  error
	gotQueries []service.ImageQuery
}

func (f *fakeImageOps) Insert(_ context.Context, up service.ImageUpload) (*service.InsertResult, error) {
	f.gotUploads = append(f.gotUploads, up)
	if f.insertErr != nil {
		return nil, f.insertErr
	}
	return &service.InsertResult{ID: "point-1", Dim: 1152}, nil
}

func (f *fakeImageOps) Search(_ context.Context, q service.ImageQuery) ([]service.SearchHit, error) {
	f.gotQueries = append(f.gotQueries, q)
	return f.hits, f.searchErr
}

func newTestToolServer(images ImageOps) *ToolServer {
	return NewToolServer(images, &logger.Logger{Zap: zap.NewNop()})
}

func writeTempImage(t *testing.T, name string) string {
	t.Helper()
	var buf bytes.Buffer
	require.NoError(t, png.Encode(&buf, image.NewRGBA(image.Rect(0, 0, 2, 2))))
	path := filepath.Join(t.TempDir(), name)
	require.NoError(t, os.WriteFile(path, buf.Bytes(), 0o600))
	return path
}

func TestInitialize(t *testing.T) {
	srv := newTestToolServer(&fakeImageOps{})
	require.NoError(t, srv.Initialize())

	srv = newTestToolServer(nil)
	require.Error(t, srv.Initialize())
}

func TestRunRequiresInitialize(t *testing.T) {
	srv := newTestToolServer(&fakeImageOps{})
	require.Error(t, srv.Run())
}

func TestHandleUploadImage(t *testing.T) {
	images := &fakeImageOps{}
	srv := newTestToolServer(images)

	resp, err := srv.handleUploadImage(nil, UploadImageRequest{
		FileName:  "cat.png",
		FileData:  writeTempImage(t, "cat.png"),
		FileClass: "animals",
	})
	require.NoError(t, err)
	assert.Equal(t, "success", resp.Status)
	assert.Equal(t, "point-1", resp.ID)
	assert.Equal(t, 1152, resp.Dim)

	require.Len(t, images.gotUploads, 1)
	assert.Equal(t, "cat.png", images.gotUploads[0].FileName)
	assert.Equal(t, "animals", images.gotUploads[0].Class)
	assert.Equal(t, "image/png", images.gotUploads[0].ContentType)
	assert.NotEmpty(t, images.gotUploads[0].Data)
}

func TestHandleUploadImageUnsupportedExtension(t *testing.T) {
	images := &fakeImageOps{}
	srv := newTestToolServer(images)

	resp, err := srv.handleUploadImage(nil, UploadImageRequest{
		FileName:  "cat.gif",
		FileData:  "/tmp/cat.gif",
		FileClass: "animals",
	})
	require.NoError(t, err)
	assert.Equal(t, "error", resp.Status)
	assert.Contains(t, resp.Error, "unsupported image type")
	assert.Empty(t, images.gotUploads)
}

func TestHandleUploadImageMissingFile(t *testing.T) {
	srv := newTestToolServer(&fakeImageOps{})

	resp, err := srv.handleUploadImage(nil, UploadImageRequest{
		FileName: "cat.png",
		FileData: filepath.Join(t.TempDir(), "nope.png"),
	})
	require.NoError(t, err)
	assert.Equal(t, "error", resp.Status)
	assert.Contains(t, resp.Error, "file not found")
}

func TestHandleUploadImageServiceError(t *testing.T) {
	images := &fakeImageOps{insertErr: errors.New("vector insert failed")}
	srv := newTestToolServer(images)

	resp, err := srv.handleUploadImage(nil, UploadImageRequest{
		FileName:  "cat.png",
		FileData:  writeTempImage(t, "cat.png"),
		FileClass: "animals",
	})
	require.NoError(t, err)
	assert.Equal(t, "error", resp.Status)
	assert.Contains(t, resp.Error, "vector insert failed")
}

func TestHandleSearchImage(t *testing.T) {
	images := &fakeImageOps{
		hits: []service.SearchHit{{ID: "id-1", Score: 0.9, ClassName: "animals"}},
	}
	srv := newTestToolServer(images)

	resp, err := srv.handleSearchImage(nil, SearchImageRequest{
		FileName:  "query.png",
		FileData:  writeTempImage(t, "query.png"),
		TopK:      3,
		Threshold: 0.7,
	})
	require.NoError(t, err)
	assert.Equal(t, "success", resp.Status)
	require.Len(t, resp.Results, 1)
	assert.Equal(t, "id-1", resp.Results[0].ID)

	require.Len(t, images.gotQueries, 1)
	assert.Equal(t, 3, images.gotQueries[0].TopK)
	assert.InDelta(t, 0.7, images.gotQueries[0].ScoreThreshold, 1e-6)
}

func TestHandleSearchImageServiceError(t *testing.T) {
	images := &fakeImageOps{searchErr: errors.New("timeout")}
	srv := newTestToolServer(images)

	resp, err := srv.handleSearchImage(nil, SearchImageRequest{
		FileName: "query.png",
		FileData: writeTempImage(t, "query.png"),
	})
	require.NoError(t, err)
	assert.Equal(t, "error", resp.Status)
	assert.Empty(t, resp.Results)
	assert.Contains(t, resp.Error, "timeout")
}
