package mcp

import (
	"context"
	"errors"
	"fmt"
	"os"

	gomcpserver "github.com/localrivet/gomcp/server"

	"github.com/plshi/imagesearch/internal/imaging"
	"github.com/plshi/imagesearch/internal/logger"
	"github.com/plshi/imagesearch/internal/service"
)

// ImageOps is the slice of the image service the tools need.
// Implemented by *service.ImageService.
type ImageOps interface {
	Insert(ctx context.Context, up service.ImageUpload) (*service.InsertResult, error)
	Search(ctx context.Context, q service.ImageQuery) ([]service.SearchHit, error)
}

// ToolServer exposes image upload and search to agents as MCP tools.
// Tool names and schemas mirror the JSON upload and search endpoints of the
// HTTP server, so an agent and a web client address the same operations.
type ToolServer struct {
	images ImageOps
	log    *logger.Logger
	srv    gomcpserver.Server
}

// NewToolServer constructs the tool server.
func NewToolServer(images ImageOps, log *logger.Logger) *ToolServer {
	return &ToolServer{
		images: images,
		log:    log,
	}
}

// Initialize registers the tools. Must be called before Run.
func (s *ToolServer) Initialize() error {
	if s.images == nil {
		return errors.New("mcp: image service is required")
	}

	srv := gomcpserver.NewServer("imagesearch")
	srv = srv.Tool(ToolUploadImage, "Vectorize an image file and store it under a category",
		s.handleUploadImage)
	srv = srv.Tool(ToolSearchImage, "Find stored images similar to an image file",
		s.handleSearchImage)

	s.srv = srv
	s.log.Info("mcp tool server initialized", nil, map[string]interface{}{"tool_count": 2})
	return nil
}

// Run serves the tools over stdio until stdin closes.
func (s *ToolServer) Run() error {
	if s.srv == nil {
		return errors.New("mcp: tool server not initialized")
	}
	return s.srv.AsStdio().Run()
}

// handleUploadImage handles the upload_image MCP tool call.
// Failures are reported in the response status so the agent can read them;
// the tool call itself still succeeds.
func (s *ToolServer) handleUploadImage(_ *gomcpserver.Context, req UploadImageRequest) (UploadImageResponse, error) {
	data, err := s.loadImage(req.FileName, req.FileData)
	if err != nil {
		return UploadImageResponse{Status: "error", Error: err.Error()}, nil
	}

	result, err := s.images.Insert(context.Background(), service.ImageUpload{
		FileName:    req.FileName,
		Data:        data,
		ContentType: imaging.MIMEFromFilename(req.FileName),
		Class:       req.FileClass,
	})
	if err != nil {
		s.log.Error("upload_image tool failed", err, map[string]interface{}{"file_name": req.FileName})
		return UploadImageResponse{Status: "error", Error: err.Error()}, nil
	}

	return UploadImageResponse{Status: "success", ID: result.ID, Dim: result.Dim}, nil
}

// handleSearchImage handles the search_image MCP tool call.
func (s *ToolServer) handleSearchImage(_ *gomcpserver.Context, req SearchImageRequest) (SearchImageResponse, error) {
	data, err := s.loadImage(req.FileName, req.FileData)
	if err != nil {
		return SearchImageResponse{Status: "error", Results: []service.SearchHit{}, Error: err.Error()}, nil
	}

	hits, err := s.images.Search(context.Background(), service.ImageQuery{
		FileName:       req.FileName,
		Data:           data,
		ContentType:    imaging.MIMEFromFilename(req.FileName),
		TopK:           req.TopK,
		ScoreThreshold: req.Threshold,
	})
	if err != nil {
		s.log.Error("search_image tool failed", err, map[string]interface{}{"file_name": req.FileName})
		return SearchImageResponse{Status: "error", Results: []service.SearchHit{}, Error: err.Error()}, nil
	}

	return SearchImageResponse{Status: "success", Results: hits}, nil
}

// loadImage validates the extension and reads the file from the local path.
func (s *ToolServer) loadImage(fileName, filePath string) ([]byte, error) {
	if !imaging.ExtensionAllowed(fileName) {
		return nil, fmt.Errorf("unsupported image type for %q, allowed: %v", fileName, imaging.AllowedExtensions)
	}

	data, err := os.ReadFile(filePath)
	if err != nil {
		if os.IsNotExist(err) {
			return nil, fmt.Errorf("file not found: %s", filePath)
		}
		return nil, fmt.Errorf("read local file %s: %w", filePath, err)
	}
	return data, nil
}
