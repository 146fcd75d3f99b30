package render

import (
	"embed"
	"fmt"
	"io/fs"

	rendertemplate "github.com/jateonwr/dem-survey/pkg/render/template"
	"github.com/jateonwr/dem-survey/pkg/render/template/gotemplate"
)

//go:embed templates/*.tpl
var embeddedTemplates embed.FS

const tagPillsTemplate = "tag_pills"

// TemplatesFS exposes the bundled templates.
func TemplatesFS() fs.FS {
	sub, err := fs.Sub(embeddedTemplates, "templates")
	if err != nil {
		panic(err)
	}
	return sub
}

// Option configures a Markup renderer.
type Option func(*Markup)

// WithTemplateRenderer swaps the template engine.
func WithTemplateRenderer(renderer rendertemplate.TemplateRenderer) Option {
	return func(m *Markup) {
		if renderer != nil {
			m.templates = renderer
		}
	}
}

// Markup renders survey fragments through a template engine.
type Markup struct {
	templates rendertemplate.TemplateRenderer
}

// New builds a Markup renderer backed by the bundled templates unless an
// engine is supplied.
func New(options ...Option) (*Markup, error) {
	m := &Markup{}
	for _, opt := range options {
		if opt != nil {
			opt(m)
		}
	}
	if m.templates == nil {
		engine, err := gotemplate.New(gotemplate.WithFS(TemplatesFS()))
		if err != nil {
			return nil, fmt.Errorf("render: configure template engine: %w", err)
		}
		m.templates = engine
	}
	return m, nil
}

// TagPills renders one removable pill per value, in order.
func (m *Markup) TagPills(values []string) (string, error) {
	if len(values) == 0 {
		return "", nil
	}
	out, err := m.templates.RenderTemplate(tagPillsTemplate, map[string]any{"values": values})
	if err != nil {
		return "", fmt.Errorf("render: tag pills: %w", err)
	}
	return out, nil
}
