package qdrant

import (
	"fmt"

	qdrant "github.com/qdrant/go-client/qdrant"
)

// validateSearchInput validates common search parameters
func validateSearchInput(collectionName string, vector []float32, topK int) error {
	if collectionName == "" {
		return fmt.Errorf("collection name cannot be empty")
	}
	if len(vector) == 0 {
		return fmt.Errorf("vector cannot be empty")
	}
	if topK <= 0 {
		return fmt.Errorf("topK must be greater than 0")
	}
	return nil
}

// extractVectorDetails safely extracts the vector size (embedding dimension)
// and distance metric from a Qdrant CollectionInfo object.
//
// Qdrant represents vector configuration data using a deeply nested protobuf
// structure with "oneof" wrappers. This helper navigates that hierarchy,
// performs type assertions, and guards against nil pointer dereferences.
// If any nested field is missing or of an unexpected type, it returns (0, "").
func extractVectorDetails(info *qdrant.CollectionInfo) (int, string) {
	if info == nil ||
		info.Config == nil ||
		info.Config.Params == nil ||
		info.Config.Params.VectorsConfig == nil ||
		info.Config.Params.VectorsConfig.Config == nil {
		return 0, ""
	}

	if cfg, ok := info.Config.Params.VectorsConfig.Config.(*qdrant.VectorsConfig_Params); ok {
		return int(cfg.Params.Size), cfg.Params.Distance.String()
	}

	return 0, ""
}

// derefUint64 safely dereferences a *uint64 pointer.
// If the pointer is nil, it returns 0 instead of panicking.
func derefUint64(v *uint64) uint64 {
	if v != nil {
		return *v
	}
	return 0
}

// convertPayload converts Qdrant's protobuf payload to a generic map.
func convertPayload(payload map[string]*qdrant.Value) map[string]any {
	if payload == nil {
		return nil
	}
	result := make(map[string]any, len(payload))
	for k, v := range payload {
		result[k] = extractValue(v)
	}
	return result
}

// extractValue recursively converts a Qdrant Value to a Go native type.
func extractValue(v *qdrant.Value) any {
	if v == nil {
		return nil
	}
	switch val := v.Kind.(type) {
	case *qdrant.Value_StringValue:
		return val.StringValue
	case *qdrant.Value_IntegerValue:
		return val.IntegerValue
	case *qdrant.Value_DoubleValue:
		return val.DoubleValue
	case *qdrant.Value_BoolValue:
		return val.BoolValue
	case *qdrant.Value_NullValue:
		return nil
	case *qdrant.Value_StructValue:
		if val.StructValue == nil {
			return nil
		}
		return convertPayload(val.StructValue.Fields)
	case *qdrant.Value_ListValue:
		if val.ListValue == nil {
			return nil
		}
		items := make([]any, len(val.ListValue.Values))
		for i, item := range val.ListValue.Values {
			items[i] = extractValue(item)
		}
		return items
	default:
		return nil
	}
}
