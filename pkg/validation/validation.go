// Package validation sweeps required controls before submission. Only
// controls that are required and currently enabled are considered, so fields
// switched off by toggle rules or the coverage controller never block a
// submission.
package validation

import (
	"strings"

	"github.com/jateonwr/dem-survey/pkg/dom"
)

// RequiredMessage is the inline message shown on empty required controls.
const RequiredMessage = "* จำเป็น (โปรดระบุ)"

// Check inspects one control and returns a failure message, or "" when the
// control passes.
type Check func(c *dom.Control) string

// Issue describes one failing control.
type Issue struct {
	Field   string `json:"field"`
	Message string `json:"message"`

	control *dom.Control
}

// Control returns the failing control.
func (i Issue) Control() *dom.Control { return i.control }

// Result captures the outcome of a sweep.
type Result struct {
	Valid  bool    `json:"valid"`
	Issues []Issue `json:"issues,omitempty"`
}

// First returns the first failing control in document order, or nil.
func (r Result) First() *dom.Control {
	if len(r.Issues) == 0 {
		return nil
	}
	return r.Issues[0].control
}

// Option customises a Validator.
type Option func(*Validator)

// WithCheck adds a check that runs on required, enabled controls whose value
// is not empty. Checks run in registration order; the first message wins.
func WithCheck(check Check) Option {
	return func(v *Validator) {
		if check != nil {
			v.checks = append(v.checks, check)
		}
	}
}

// Validator runs the required sweep plus any extra checks.
type Validator struct {
	checks []Check
}

// New builds a Validator.
func New(options ...Option) *Validator {
	v := &Validator{}
	for _, opt := range options {
		if opt != nil {
			opt(v)
		}
	}
	return v
}

// Validate sweeps controls in the order given. Failing controls get error
// decoration plus one-shot listeners that clear it on the next input or
// change; passing controls lose any decoration. When anything failed, the
// first failure is scrolled into view and focused.
func (v *Validator) Validate(controls []*dom.Control) Result {
	result := Result{Valid: true}
	for _, c := range controls {
		if c == nil || !c.Required() || c.Disabled() {
			continue
		}
		msg := v.inspect(c)
		if msg == "" {
			c.ClearError()
			continue
		}
		// a stale message from a different check would otherwise stick
		c.ClearError()
		c.ShowError(msg)
		c.Once(dom.EventInput, clearError)
		c.Once(dom.EventChange, clearError)
		result.Valid = false
		result.Issues = append(result.Issues, Issue{Field: c.ID(), Message: msg, control: c})
	}
	if first := result.First(); first != nil {
		first.ScrollIntoView()
		first.Focus()
	}
	return result
}

func (v *Validator) inspect(c *dom.Control) string {
	if strings.TrimSpace(c.Value()) == "" {
		return RequiredMessage
	}
	for _, check := range v.checks {
		if msg := check(c); msg != "" {
			return msg
		}
	}
	return ""
}

func clearError(c *dom.Control) { c.ClearError() }
