package advisor

import (
	"context"
	"fmt"
	"strings"

	"google.golang.org/genai"
)

// Defaults for the hosted model
const (
	DefaultModel       = "gemini-3-flash-preview"
	DefaultTemperature = 0.7
)

// GeminiConfig configures the Gemini generator
type GeminiConfig struct {
	APIKey      string
	Model       string
	Temperature float32
}

// Gemini is a Generator backed by the Gemini API
type Gemini struct {
	client      *genai.Client
	model       string
	temperature float32
}

// NewGemini creates a Gemini client. It fails with ErrUnavailable when no API
// key is configured.
func NewGemini(ctx context.Context, cfg GeminiConfig) (*Gemini, error) {
	key := strings.TrimSpace(cfg.APIKey)
	if key == "" {
		return nil, ErrUnavailable
	}

	client, err := genai.NewClient(ctx, &genai.ClientConfig{
		APIKey:  key,
		Backend: genai.BackendGeminiAPI,
	})
	if err != nil {
		return nil, fmt.Errorf("gemini: create client: %w", err)
	}

	model := strings.TrimSpace(cfg.Model)
	if model == "" {
		model = DefaultModel
	}
	temperature := cfg.Temperature
	if temperature <= 0 {
		temperature = DefaultTemperature
	}

	return &Gemini{client: client, model: model, temperature: temperature}, nil
}

// NewGenerator returns a Gemini generator, or Unavailable when one cannot be
// built
func NewGenerator(ctx context.Context, cfg GeminiConfig) Generator {
	g, err := NewGemini(ctx, cfg)
	if err != nil {
		return Unavailable{}
	}
	return g
}

// Generate sends a single GenerateContent request
func (g *Gemini) Generate(ctx context.Context, req Request) (string, error) {
	resp, err := g.client.Models.GenerateContent(ctx, g.model, genai.Text(req.Prompt), contentConfig(req.Format, g.temperature))
	if err != nil {
		return "", fmt.Errorf("gemini: generate content: %w", err)
	}
	return resp.Text(), nil
}

// contentConfig builds the request config for format. Plain text requests
// use the model's defaults.
func contentConfig(format Format, temperature float32) *genai.GenerateContentConfig {
	if format != FormatInsights {
		return nil
	}
	return &genai.GenerateContentConfig{
		Temperature:      genai.Ptr(temperature),
		ResponseMIMEType: "application/json",
		ResponseSchema:   insightsSchema(),
	}
}

func insightsSchema() *genai.Schema {
	return &genai.Schema{
		Type: genai.TypeObject,
		Properties: map[string]*genai.Schema{
			"healthScore": {
				Type:        genai.TypeNumber,
				Description: "0-100 score of project health",
			},
			"summary": {Type: genai.TypeString},
			"risks": {
				Type:  genai.TypeArray,
				Items: &genai.Schema{Type: genai.TypeString},
			},
			"recommendations": {
				Type:  genai.TypeArray,
				Items: &genai.Schema{Type: genai.TypeString},
			},
		},
		Required: []string{"healthScore", "summary", "risks", "recommendations"},
	}
}
