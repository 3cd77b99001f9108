package render

import (
	"strings"
	"sync"

	"github.com/charmbracelet/glamour"
)

// Markdown renders task specs, caching one glamour renderer per wrap width
type Markdown struct {
	renderers sync.Map // map[int]*glamour.TermRenderer
}

// NewMarkdown returns an empty renderer cache
func NewMarkdown() *Markdown {
	return &Markdown{}
}

func (m *Markdown) renderer(width int) (*glamour.TermRenderer, error) {
	if cached, ok := m.renderers.Load(width); ok {
		return cached.(*glamour.TermRenderer), nil
	}
	r, err := glamour.NewTermRenderer(
		glamour.WithAutoStyle(),
		glamour.WithWordWrap(width),
	)
	if err != nil {
		return nil, err
	}
	actual, _ := m.renderers.LoadOrStore(width, r)
	return actual.(*glamour.TermRenderer), nil
}

// Render returns md formatted for the terminal, or md unchanged when
// rendering fails
func (m *Markdown) Render(md string, width int) string {
	if m == nil || md == "" {
		return md
	}
	r, err := m.renderer(max(width, 10))
	if err != nil {
		return md
	}
	out, err := r.Render(md)
	if err != nil {
		return md
	}
	return strings.Trim(out, "\n")
}
