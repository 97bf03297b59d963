package service

import (
	"go.uber.org/fx"

	"github.com/plshi/imagesearch/internal/dashscope"
	"github.com/plshi/imagesearch/internal/minio"
)

// FXModule wires the image service into Fx.
//
// It provides:
//   - *ImageService (NewImageService, with the DashScope client narrowed to
//     the Embedder and ChatModel interfaces and the MinIO client to
//     ObjectStore)
var FXModule = fx.Module("service",
	fx.Provide(
		NewImageService,
		func(c *dashscope.Client) Embedder { return c },
		func(c *dashscope.Client) ChatModel { return c },
		func(m *minio.Minio) ObjectStore { return m },
	),
)
