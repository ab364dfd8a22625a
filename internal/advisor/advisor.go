// Package advisor asks a generative model for project health insights and
// task description drafts. Every call is advisory: failures are logged and
// turned into a degraded result, never returned to the caller.
package advisor

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"strings"

	"github.com/bytedance/sonic"
	"github.com/thenoetrevino/nexus/internal/models"
)

// DescriptionFallback is returned by GenerateTaskDescription when the model
// cannot be reached
const DescriptionFallback = "Failed to generate description."

// ErrUnavailable is returned by generators that have no model to talk to
var ErrUnavailable = errors.New("ai advisor unavailable: no API key configured")

// Format selects the response shape requested from the model
type Format int

const (
	// FormatText asks for free-form text
	FormatText Format = iota
	// FormatInsights asks for a JSON object matching Insights
	FormatInsights
)

// Request is a single prompt sent to a Generator
type Request struct {
	Prompt string
	Format Format
}

// Generator sends one prompt to a model and returns its text
type Generator interface {
	Generate(ctx context.Context, req Request) (string, error)
}

// Unavailable is a Generator that always fails with ErrUnavailable
type Unavailable struct{}

func (Unavailable) Generate(context.Context, Request) (string, error) {
	return "", ErrUnavailable
}

// Insights is the model's assessment of the board
type Insights struct {
	HealthScore     float64  `json:"healthScore"`
	Summary         string   `json:"summary"`
	Risks           []string `json:"risks"`
	Recommendations []string `json:"recommendations"`
}

// Advisor runs single-shot prompts against a Generator
type Advisor struct {
	gen    Generator
	logger *slog.Logger
}

// New creates an Advisor. A nil generator behaves like Unavailable.
func New(gen Generator, logger *slog.Logger) *Advisor {
	if gen == nil {
		gen = Unavailable{}
	}
	if logger == nil {
		logger = slog.Default()
	}
	return &Advisor{gen: gen, logger: logger}
}

// Available reports whether a real model is configured
func (a *Advisor) Available() bool {
	_, off := a.gen.(Unavailable)
	return !off
}

// ProjectInsights summarizes health, risks and next steps for tasks.
// It returns nil when the model call or response parsing fails. An empty
// response parses as an empty object and yields zero-valued Insights.
func (a *Advisor) ProjectInsights(ctx context.Context, tasks []*models.Task) *Insights {
	prompt, err := insightsPrompt(tasks)
	if err != nil {
		a.logger.Error("failed to encode tasks for insights", "error", err)
		return nil
	}

	text, err := a.gen.Generate(ctx, Request{Prompt: prompt, Format: FormatInsights})
	if err != nil {
		a.logger.Error("insights request failed", "error", err)
		return nil
	}

	insights, err := parseInsights(text)
	if err != nil {
		a.logger.Error("failed to parse insights response", "error", err)
		return nil
	}
	return insights
}

// GenerateTaskDescription drafts a bullet-point description for title.
// On failure it returns DescriptionFallback.
func (a *Advisor) GenerateTaskDescription(ctx context.Context, title string) string {
	text, err := a.gen.Generate(ctx, Request{Prompt: descriptionPrompt(title), Format: FormatText})
	if err != nil {
		a.logger.Error("description request failed", "title", title, "error", err)
		return DescriptionFallback
	}
	return text
}

func insightsPrompt(tasks []*models.Task) (string, error) {
	if tasks == nil {
		tasks = []*models.Task{}
	}
	payload, err := sonic.ConfigStd.Marshal(tasks)
	if err != nil {
		return "", err
	}
	return "Analyze these project tasks and provide a summary of health, risks, and next steps: " + string(payload), nil
}

func descriptionPrompt(title string) string {
	return fmt.Sprintf(`Generate a detailed professional task description for: "%s". Use bullet points for requirements.`, title)
}

func parseInsights(text string) (*Insights, error) {
	text = strings.TrimSpace(text)
	if text == "" {
		text = "{}"
	}

	var out Insights
	if err := sonic.ConfigStd.UnmarshalFromString(text, &out); err != nil {
		return nil, err
	}
	out.HealthScore = clampScore(out.HealthScore)
	return &out, nil
}

func clampScore(v float64) float64 {
	switch {
	case v < 0:
		return 0
	case v > 100:
		return 100
	default:
		return v
	}
}
