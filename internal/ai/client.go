// Package ai wraps the hosted model gateway behind two operations: posture
// analysis from a single photo and daily-plan generation from a profile
// snapshot. Both force the model into a function call with a declared JSON
// schema, then validate and clamp whatever comes back. No retries happen
// here; retry policy, if any, belongs to the caller.
package ai

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net/http"

	"fitlife/fitness-api/internal/config"
	"fitlife/fitness-api/internal/domain"
)

// --- Error Definitions ---
var (
	ErrRateLimited       = errors.New("AI gateway rate limit exceeded, please try again in a moment")
	ErrQuotaExhausted    = errors.New("AI credits exhausted, please add credits to continue")
	ErrMalformedResponse = errors.New("AI gateway returned no usable structured output")
	ErrUnavailable       = errors.New("AI gateway is unavailable")
)

// Client is the gateway contract the services depend on.
type Client interface {
	AnalyzePosture(ctx context.Context, imageBase64 string) (*PostureAnalysis, error)
	GeneratePlans(ctx context.Context, profile *domain.Profile) (*domain.GeneratedPlans, error)
}

// PostureAnalysis is the structured result of one camera-frame analysis.
// Score arrives clamped to [0,100]; all four fields are required by the
// schema so none default.
type PostureAnalysis struct {
	Score           int      `json:"score"`
	Issues          []string `json:"issues"`
	Recommendations []string `json:"recommendations"`
	Details         string   `json:"details"`
}

// gatewayClient talks to an OpenAI-compatible chat completions endpoint.
type gatewayClient struct {
	httpClient  *http.Client
	baseURL     string
	apiKey      string
	visionModel string
	planModel   string
}

// NewClient creates the gateway client from config.
func NewClient(cfg config.AIConfig) Client {
	return &gatewayClient{
		httpClient:  &http.Client{Timeout: cfg.Timeout},
		baseURL:     cfg.GatewayURL,
		apiKey:      cfg.APIKey,
		visionModel: cfg.VisionModel,
		planModel:   cfg.PlanModel,
	}
}

// --- chat completions wire types ---

type chatMessage struct {
	Role    string `json:"role"`
	Content any    `json:"content"` // string, or []contentPart for vision
}

type contentPart struct {
	Type     string    `json:"type"`
	Text     string    `json:"text,omitempty"`
	ImageURL *imageURL `json:"image_url,omitempty"`
}

type imageURL struct {
	URL string `json:"url"`
}

type toolFunction struct {
	Name        string          `json:"name"`
	Description string          `json:"description,omitempty"`
	Parameters  json.RawMessage `json:"parameters"`
}

type tool struct {
	Type     string       `json:"type"`
	Function toolFunction `json:"function"`
}

type toolChoice struct {
	Type     string `json:"type"`
	Function struct {
		Name string `json:"name"`
	} `json:"function"`
}

type chatRequest struct {
	Model      string        `json:"model"`
	Messages   []chatMessage `json:"messages"`
	Tools      []tool        `json:"tools,omitempty"`
	ToolChoice *toolChoice   `json:"tool_choice,omitempty"`
}

type chatResponse struct {
	Choices []struct {
		Message struct {
			ToolCalls []struct {
				Function struct {
					Name      string `json:"name"`
					Arguments string `json:"arguments"`
				} `json:"function"`
			} `json:"tool_calls"`
		} `json:"message"`
	} `json:"choices"`
}

// complete sends one forced function-call request and returns the raw
// arguments of the first tool call. HTTP status codes map onto the error
// taxonomy: 429 rate limited, 402 quota exhausted, any other non-2xx
// unavailable. A 2xx without a tool call is a malformed response.
func (c *gatewayClient) complete(ctx context.Context, model string, messages []chatMessage, fn toolFunction) (json.RawMessage, error) {
	choice := &toolChoice{Type: "function"}
	choice.Function.Name = fn.Name

	payload, err := json.Marshal(chatRequest{
		Model:      model,
		Messages:   messages,
		Tools:      []tool{{Type: "function", Function: fn}},
		ToolChoice: choice,
	})
	if err != nil {
		return nil, fmt.Errorf("failed to encode gateway request: %w", err)
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, c.baseURL+"/v1/chat/completions", bytes.NewReader(payload))
	if err != nil {
		return nil, fmt.Errorf("failed to create gateway request: %w", err)
	}
	req.Header.Set("Authorization", "Bearer "+c.apiKey)
	req.Header.Set("Content-Type", "application/json")

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrUnavailable, err)
	}
	defer resp.Body.Close()

	switch {
	case resp.StatusCode == http.StatusTooManyRequests:
		return nil, ErrRateLimited
	case resp.StatusCode == http.StatusPaymentRequired:
		return nil, ErrQuotaExhausted
	case resp.StatusCode < 200 || resp.StatusCode > 299:
		return nil, fmt.Errorf("%w: status %d", ErrUnavailable, resp.StatusCode)
	}

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrUnavailable, err)
	}

	var parsed chatResponse
	if err := json.Unmarshal(body, &parsed); err != nil {
		return nil, fmt.Errorf("%w: %v", ErrMalformedResponse, err)
	}
	if len(parsed.Choices) == 0 || len(parsed.Choices[0].Message.ToolCalls) == 0 {
		return nil, ErrMalformedResponse
	}

	return json.RawMessage(parsed.Choices[0].Message.ToolCalls[0].Function.Arguments), nil
}
