package main

import (
	"github.com/joho/godotenv"
	"go.uber.org/fx"

	"github.com/plshi/imagesearch/internal/dashscope"
	"github.com/plshi/imagesearch/internal/logger"
	"github.com/plshi/imagesearch/internal/metrics"
	"github.com/plshi/imagesearch/internal/minio"
	"github.com/plshi/imagesearch/internal/qdrant"
	"github.com/plshi/imagesearch/internal/server"
	"github.com/plshi/imagesearch/internal/service"
)

func main() {
	// Missing .env is fine; configuration falls back to the environment.
	_ = godotenv.Load()

	fx.New(
		logger.FXModule,
		metrics.FXModule,
		dashscope.FXModule,
		qdrant.FXModule,
		minio.FXModule,
		service.FXModule,
		server.FXModule,
	).Run()
}
