package template

import (
	"io"
)

// TemplateRenderer is the contract the survey's markup helpers depend on.
type TemplateRenderer interface {
	RenderTemplate(name string, data any, out ...io.Writer) (string, error)
}
