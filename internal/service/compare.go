package service

import (
	"context"
	"encoding/json"
	"fmt"
	"regexp"
	"strings"

	"github.com/plshi/imagesearch/internal/dashscope"
	"github.com/plshi/imagesearch/internal/imaging"
)

const comparePromptTemplate = `You are an expert in visual comparison of objects. Analyze the two images and, guided by the scene description, decide whether they show the same physical object.

Scene description: %s

Compare the objects carefully, including but not limited to:
- appearance (color, shape, size, texture)
- position and viewing angle
- scene context

Return the result as JSON in exactly this shape:
{
    "is_same": true/false,
    "confidence": a float between 0.0 and 1.0,
    "reason": "a detailed justification"
}

Return only the JSON, with no other text.`

var (
	compareJSONPattern = regexp.MustCompile(`(?s)\{[^{}]*"is_same"[^{}]*\}`)
	fenceOpenPattern   = regexp.MustCompile("^```(?:json)?\\s*")
	fenceClosePattern  = regexp.MustCompile("\\s*```$")
)

// Compare asks the vision-language model whether two images show the same
// object. The model is prompted for strict JSON; since LLM output is
// free text the reply goes through extraction and a text-level fallback
// before it is trusted.
func (s *ImageService) Compare(ctx context.Context, input CompareInput) (*CompareResult, error) {
	if !imaging.ValidateImage(input.Image1Data) {
		return nil, fmt.Errorf("first image: %w", ErrInvalidImage)
	}
	if !imaging.ValidateImage(input.Image2Data) {
		return nil, fmt.Errorf("second image: %w", ErrInvalidImage)
	}

	messages := []dashscope.Message{
		{
			Role: "user",
			Content: []dashscope.ContentPart{
				{Image: imaging.DataURL(input.Image1Data, input.Image1Type)},
				{Image: imaging.DataURL(input.Image2Data, input.Image2Type)},
				{Text: fmt.Sprintf(comparePromptTemplate, input.SceneDescription)},
			},
		},
	}

	s.log.Info("comparing images", nil, map[string]interface{}{
		"image1": input.Image1Name,
		"image2": input.Image2Name,
		"scene":  input.SceneDescription,
	})

	content, err := s.chat.Chat(ctx, messages)
	if err != nil {
		return nil, fmt.Errorf("vision-language call failed: %w", err)
	}

	result := parseCompareReply(content)

	s.log.Info("image comparison completed", nil, map[string]interface{}{
		"is_same":    result.IsSame,
		"confidence": result.Confidence,
	})
	return result, nil
}

// parseCompareReply extracts the comparison verdict from the model's reply.
//
// The reply should be a JSON object but often arrives wrapped in markdown
// fences or surrounded by prose. Extraction order:
//  1. a JSON object containing "is_same" anywhere in the text
//  2. the whole reply with markdown fences stripped
//  3. a text-level heuristic with confidence pinned to 0.5
func parseCompareReply(content string) *CompareResult {
	jsonStr := compareJSONPattern.FindString(content)
	if jsonStr == "" {
		jsonStr = strings.TrimSpace(content)
		jsonStr = fenceOpenPattern.ReplaceAllString(jsonStr, "")
		jsonStr = fenceClosePattern.ReplaceAllString(jsonStr, "")
	}

	var raw struct {
		IsSame     bool     `json:"is_same"`
		Confidence *float64 `json:"confidence"`
		Reason     string   `json:"reason"`
	}

	if err := json.Unmarshal([]byte(jsonStr), &raw); err != nil {
		// The model ignored the format. Fall back to reading the text.
		lower := strings.ToLower(content)
		return &CompareResult{
			IsSame:     strings.Contains(lower, "true") || strings.Contains(lower, "same"),
			Confidence: 0.5,
			Reason:     content,
		}
	}

	confidence := 0.5
	if raw.Confidence != nil {
		confidence = clamp01(*raw.Confidence)
	}

	reason := raw.Reason
	if reason == "" {
		reason = "no reason given"
	}

	return &CompareResult{
		IsSame:     raw.IsSame,
		Confidence: confidence,
		Reason:     reason,
	}
}

func clamp01(v float64) float64 {
	if v < 0 {
		return 0
	}
	if v > 1 {
		return 1
	}
	return v
}
