package ai

import (
	"context"
	"encoding/json"
	"fmt"
	"math"
)

const postureSystemPrompt = `You are an expert posture analyst. Analyze the person's posture in the image and provide:
1. A posture score from 0-100 (100 being perfect posture)
2. Specific issues detected (e.g., forward head, rounded shoulders, slouching)
3. Actionable recommendations to improve posture

Be encouraging but honest. Focus on the most impactful improvements.`

const postureUserPrompt = "Please analyze my posture in this image. Provide a score, list any issues you notice, and give me specific recommendations for improvement."

// postureSchema is the function-call parameter schema the model must fill.
var postureSchema = json.RawMessage(`{
  "type": "object",
  "properties": {
    "score": {"type": "number", "description": "Posture score from 0-100"},
    "issues": {"type": "array", "items": {"type": "string"}, "description": "List of posture issues detected"},
    "recommendations": {"type": "array", "items": {"type": "string"}, "description": "Actionable recommendations for improvement"},
    "details": {"type": "string", "description": "Brief overall assessment of the posture"}
  },
  "required": ["score", "issues", "recommendations", "details"],
  "additionalProperties": false
}`)

// rawPostureAnalysis is what the model actually returns; the score is a
// float the model is not trusted to keep in range.
type rawPostureAnalysis struct {
	Score           *float64 `json:"score"`
	Issues          []string `json:"issues"`
	Recommendations []string `json:"recommendations"`
	Details         *string  `json:"details"`
}

// AnalyzePosture sends one base64-encoded frame to the vision model and
// returns the validated analysis. The score is rounded and clamped into
// [0,100] regardless of what the model produced.
func (c *gatewayClient) AnalyzePosture(ctx context.Context, imageBase64 string) (*PostureAnalysis, error) {
	messages := []chatMessage{
		{Role: "system", Content: postureSystemPrompt},
		{Role: "user", Content: []contentPart{
			{Type: "text", Text: postureUserPrompt},
			{Type: "image_url", ImageURL: &imageURL{URL: imageBase64}},
		}},
	}

	fn := toolFunction{
		Name:        "analyze_posture",
		Description: "Return structured posture analysis results",
		Parameters:  postureSchema,
	}

	args, err := c.complete(ctx, c.visionModel, messages, fn)
	if err != nil {
		return nil, err
	}

	var raw rawPostureAnalysis
	if err := json.Unmarshal(args, &raw); err != nil {
		return nil, fmt.Errorf("%w: %v", ErrMalformedResponse, err)
	}
	// All four fields are required by the schema; a missing one means the
	// model broke the contract.
	if raw.Score == nil || raw.Issues == nil || raw.Recommendations == nil || raw.Details == nil {
		return nil, ErrMalformedResponse
	}

	return &PostureAnalysis{
		Score:           ClampScore(*raw.Score),
		Issues:          raw.Issues,
		Recommendations: raw.Recommendations,
		Details:         *raw.Details,
	}, nil
}

// ClampScore rounds and forces a model-produced score into [0,100].
func ClampScore(score float64) int {
	rounded := int(math.Round(score))
	if rounded < 0 {
		return 0
	}
	if rounded > 100 {
		return 100
	}
	return rounded
}
