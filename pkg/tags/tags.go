// Package tags implements the tag collection widget: repeated picks on a
// selector become an ordered, de-duplicated list of removable pills backed by
// one hidden serialized field. The hidden field is the source of truth; the
// pill container is rebuilt from it in full after every mutation.
package tags

import (
	"strings"

	"go.uber.org/zap"

	"github.com/jateonwr/dem-survey/pkg/dom"
	"github.com/jateonwr/dem-survey/pkg/model"
)

// PillRenderer turns the current values into container markup.
type PillRenderer interface {
	TagPills(values []string) (string, error)
}

// Option configures a Widget.
type Option func(*Widget)

// WithLogger reports pill render failures.
func WithLogger(logger *zap.Logger) Option {
	return func(w *Widget) {
		if logger != nil {
			w.logger = logger
		}
	}
}

// Widget binds a selector, a pill container, and a hidden field.
type Widget struct {
	selector  *dom.Control
	container *dom.Block
	hidden    *dom.Control
	renderer  PillRenderer
	logger    *zap.Logger
}

// Bind attaches the widget: a double activation on the selector toggles the
// selected value. It returns nil when any part is missing.
func Bind(selector *dom.Control, container *dom.Block, hidden *dom.Control, renderer PillRenderer, options ...Option) *Widget {
	if selector == nil || container == nil || hidden == nil {
		return nil
	}
	w := &Widget{
		selector:  selector,
		container: container,
		hidden:    hidden,
		renderer:  renderer,
		logger:    zap.NewNop(),
	}
	for _, opt := range options {
		if opt != nil {
			opt(w)
		}
	}
	selector.On(dom.EventDoubleClick, func(c *dom.Control) {
		w.Toggle(c.Value())
	})
	return w
}

// Values parses the hidden field.
func (w *Widget) Values() []string {
	return Split(w.hidden.Value())
}

// Toggle removes value when present, otherwise appends it. Empty values are
// ignored.
func (w *Widget) Toggle(value string) {
	if value == "" {
		return
	}
	current := w.Values()
	if contains(current, value) {
		w.update(without(current, value))
		return
	}
	w.update(append(current, value))
}

// Remove drops value; it backs the remove control inside each pill.
func (w *Widget) Remove(value string) {
	w.update(without(w.Values(), value))
}

// Clear empties both the hidden field and the container.
func (w *Widget) Clear() {
	w.hidden.SetValue("")
	w.container.Empty()
}

func (w *Widget) update(values []string) {
	w.hidden.SetValue(strings.Join(values, model.TagSeparator))
	markup := ""
	if w.renderer != nil {
		var err error
		markup, err = w.renderer.TagPills(values)
		if err != nil {
			// tokens stay exact; only the markup is dropped
			w.logger.Error("tag pill render failed",
				zap.String("field", w.hidden.ID()),
				zap.Strings("values", values),
				zap.Error(err),
			)
			markup = ""
		}
	}
	w.container.Replace(values, markup)
}

// Split parses a serialized tag field.
func Split(serialized string) []string {
	if serialized == "" {
		return nil
	}
	return strings.Split(serialized, model.TagSeparator)
}

func contains(values []string, value string) bool {
	for _, v := range values {
		if v == value {
			return true
		}
	}
	return false
}

func without(values []string, value string) []string {
	out := make([]string, 0, len(values))
	for _, v := range values {
		if v != value {
			out = append(out, v)
		}
	}
	return out
}
