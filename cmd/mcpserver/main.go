// Command mcpserver serves the upload_image and search_image MCP tools over
// stdio, letting LLM agents drive the image store directly. It shares the
// service stack with the HTTP server but runs as its own process, since MCP
// hosts spawn their tool servers themselves.
package main

import (
	"context"
	"fmt"
	"os"
	"time"

	"github.com/joho/godotenv"

	"github.com/plshi/imagesearch/internal/dashscope"
	"github.com/plshi/imagesearch/internal/logger"
	"github.com/plshi/imagesearch/internal/mcp"
	"github.com/plshi/imagesearch/internal/metrics"
	"github.com/plshi/imagesearch/internal/minio"
	"github.com/plshi/imagesearch/internal/qdrant"
	"github.com/plshi/imagesearch/internal/service"
)

func main() {
	_ = godotenv.Load()

	log := logger.NewLoggerClient(logger.NewConfig())
	defer func() { _ = log.Zap.Sync() }()

	embedder, err := dashscope.NewClient(dashscope.NewConfig())
	if err != nil {
		fatal("connect to dashscope: %v", err)
	}
	defer embedder.Close()

	qdrantCfg := qdrant.NewConfig()
	store, err := qdrant.NewClient(qdrantCfg, log)
	if err != nil {
		fatal("connect to vector store: %v", err)
	}
	defer store.Close()

	ctx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
	if err := store.EnsureCollection(ctx, qdrantCfg.Collection, qdrantCfg.VectorSize); err != nil {
		cancel()
		fatal("bootstrap collection: %v", err)
	}
	cancel()

	// Object storage is optional here; without it inserts skip archiving.
	var objects service.ObjectStore
	if os.Getenv("MINIO_ENDPOINT") != "" {
		m, err := minio.NewClient(minio.NewConfig(), log)
		if err != nil {
			fatal("connect to object store: %v", err)
		}
		bctx, bcancel := context.WithTimeout(context.Background(), 10*time.Second)
		if err := m.EnsureBucket(bctx); err != nil {
			bcancel()
			fatal("bootstrap bucket: %v", err)
		}
		bcancel()
		objects = m
	}

	svc := service.NewImageService(
		embedder,
		embedder,
		store,
		objects,
		log,
		metrics.NewMetrics(metrics.NewConfig()),
	)

	tools := mcp.NewToolServer(svc, log)
	if err := tools.Initialize(); err != nil {
		fatal("initialize tool server: %v", err)
	}
	if err := tools.Run(); err != nil {
		fatal("tool server stopped: %v", err)
	}
}

func fatal(format string, args ...any) {
	fmt.Fprintf(os.Stderr, format+"\n", args...)
	os.Exit(1)
}
