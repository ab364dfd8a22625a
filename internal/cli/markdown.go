package cli

import (
	"strings"
	"sync"

	"github.com/charmbracelet/glamour"
)

// Renderers are cached by width
var rendererCache sync.Map // map[int]*glamour.TermRenderer

func markdownRenderer(width int) (*glamour.TermRenderer, error) {
	if cached, ok := rendererCache.Load(width); ok {
		return cached.(*glamour.TermRenderer), nil
	}

	renderer, err := glamour.NewTermRenderer(
		glamour.WithAutoStyle(),
		glamour.WithWordWrap(width),
	)
	if err != nil {
		return nil, err
	}
	rendererCache.Store(width, renderer)
	return renderer, nil
}

// RenderMarkdown renders md for the terminal, returning md unchanged when
// rendering fails
func RenderMarkdown(md string, width int) string {
	renderer, err := markdownRenderer(width)
	if err != nil {
		return md
	}
	out, err := renderer.Render(md)
	if err != nil {
		return md
	}
	return strings.TrimSpace(out)
}
