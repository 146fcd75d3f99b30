// Package toggle interprets declarative "other"-style toggle rules: a trigger
// control decides whether a dependent input (and its optional wrapper) is
// relevant. Irrelevant inputs are hidden, disabled, emptied, and undecorated;
// relevant ones are enabled without restoring earlier values.
package toggle

import (
	"fmt"
	"strings"

	"github.com/jateonwr/dem-survey/pkg/dom"
	"github.com/jateonwr/dem-survey/pkg/visibility"
	"github.com/jateonwr/dem-survey/pkg/visibility/expr"
)

// Kind selects how a rule computes visibility.
type Kind string

const (
	// KindSelect shows the input when the trigger value equals Value.
	KindSelect Kind = "select"
	// KindPredicate shows the input when the When expression holds.
	KindPredicate Kind = "predicate"
	// KindCheckbox shows the input while the trigger is checked.
	KindCheckbox Kind = "checkbox"
)

// Rule binds a trigger control to a dependent input. Identifiers refer to
// control and block ids inside one item fragment.
type Rule struct {
	Trigger string `json:"trigger" yaml:"trigger"`
	Input   string `json:"input" yaml:"input"`
	Wrapper string `json:"wrapper,omitempty" yaml:"wrapper,omitempty"`
	Kind    Kind   `json:"kind" yaml:"kind"`
	Value   string `json:"value,omitempty" yaml:"value,omitempty"`
	When    string `json:"when,omitempty" yaml:"when,omitempty"`
}

// Set is a validated, compiled rule table. It holds no per-item state and is
// shared by every item.
type Set struct {
	rules []compiledRule
}

type compiledRule struct {
	Rule
	program *expr.Program
}

// Compile validates rules and compiles their predicates.
func Compile(rules []Rule) (*Set, error) {
	set := &Set{rules: make([]compiledRule, 0, len(rules))}
	for idx, raw := range rules {
		rule := normalizeRule(raw)
		if rule.Trigger == "" {
			return nil, fmt.Errorf("toggle: rule %d: trigger is required", idx)
		}
		if rule.Input == "" {
			return nil, fmt.Errorf("toggle: rule %d (%s): input is required", idx, rule.Trigger)
		}
		compiled := compiledRule{Rule: rule}
		switch rule.Kind {
		case KindSelect:
			if rule.Value == "" {
				return nil, fmt.Errorf("toggle: rule %d (%s): select rules need a sentinel value", idx, rule.Trigger)
			}
		case KindPredicate:
			prog, err := expr.Compile(rule.When)
			if err != nil {
				return nil, fmt.Errorf("toggle: rule %d (%s): %w", idx, rule.Trigger, err)
			}
			if prog.String() == "" {
				return nil, fmt.Errorf("toggle: rule %d (%s): predicate rules need a when expression", idx, rule.Trigger)
			}
			compiled.program = prog
		case KindCheckbox:
		default:
			return nil, fmt.Errorf("toggle: rule %d (%s): unknown kind %q", idx, rule.Trigger, rule.Kind)
		}
		set.rules = append(set.rules, compiled)
	}
	return set, nil
}

// MustCompile is Compile for static tables.
func MustCompile(rules []Rule) *Set {
	set, err := Compile(rules)
	if err != nil {
		panic(err)
	}
	return set
}

func normalizeRule(rule Rule) Rule {
	rule.Trigger = strings.TrimSpace(rule.Trigger)
	rule.Input = strings.TrimSpace(rule.Input)
	rule.Wrapper = strings.TrimSpace(rule.Wrapper)
	rule.Kind = Kind(strings.ToLower(strings.TrimSpace(string(rule.Kind))))
	rule.When = strings.TrimSpace(rule.When)
	return rule
}

// Rules returns a copy of the source rules.
func (s *Set) Rules() []Rule {
	if s == nil {
		return nil
	}
	out := make([]Rule, len(s.rules))
	for i, r := range s.rules {
		out[i] = r.Rule
	}
	return out
}

// Inputs returns the dependent input ids, in rule order.
func (s *Set) Inputs() []string {
	if s == nil {
		return nil
	}
	out := make([]string, len(s.rules))
	for i, r := range s.rules {
		out[i] = r.Input
	}
	return out
}

// Binding is one rule attached to a live fragment.
type Binding struct {
	rule    compiledRule
	trigger *dom.Control
	input   *dom.Control
	wrapper *dom.Block
	extras  map[string]*dom.Control
}

// Bind attaches every rule to frag and evaluates each once. Rules whose
// trigger or input is missing from the fragment are skipped.
func (s *Set) Bind(frag *dom.Fragment) []*Binding {
	if s == nil || frag == nil {
		return nil
	}
	var out []*Binding
	for _, rule := range s.rules {
		trigger := frag.Control(rule.Trigger)
		input := frag.Control(rule.Input)
		if trigger == nil || input == nil {
			continue
		}
		b := &Binding{
			rule:    rule,
			trigger: trigger,
			input:   input,
			wrapper: frag.Block(rule.Wrapper),
		}
		trigger.On(dom.EventChange, func(*dom.Control) { b.Apply() })
		for _, id := range rule.program.ExtraRefs() {
			c := frag.Control(id)
			if c == nil {
				continue
			}
			if b.extras == nil {
				b.extras = make(map[string]*dom.Control)
			}
			b.extras[id] = c
			if c != trigger {
				c.On(dom.EventChange, func(*dom.Control) { b.Apply() })
			}
		}
		b.Apply()
		out = append(out, b)
	}
	return out
}

// Conceal forces every rule's wrapper hidden and its input disabled without
// evaluating triggers. New items start from this state before binding.
func (s *Set) Conceal(frag *dom.Fragment) {
	if s == nil || frag == nil {
		return
	}
	for _, rule := range s.rules {
		if wrapper := frag.Block(rule.Wrapper); wrapper != nil {
			wrapper.SetHidden(true)
		}
		if input := frag.Control(rule.Input); input != nil {
			input.SetDisabled(true)
		}
	}
}

// Visible evaluates the rule predicate against the trigger's current state.
func (b *Binding) Visible() bool {
	switch b.rule.Kind {
	case KindSelect:
		return b.trigger.Value() == b.rule.Value
	case KindPredicate:
		ok, err := b.rule.program.Eval(b.context())
		return err == nil && ok
	case KindCheckbox:
		return b.trigger.Checked()
	default:
		return false
	}
}

// context exposes the trigger as value/checked and every referenced control
// of the item under extras.<id>.
func (b *Binding) context() visibility.Context {
	ctx := visibility.TriggerContext(b.trigger.Value(), b.trigger.Checked())
	if len(b.extras) > 0 {
		ctx.Extras = make(map[string]any, len(b.extras))
		for id, c := range b.extras {
			ctx.Extras[id] = visibility.ControlState(c.Value(), c.Checked())
		}
	}
	return ctx
}

// Apply recomputes visibility and updates the wrapper and input. It reports
// the resulting visibility.
func (b *Binding) Apply() bool {
	show := b.Visible()
	if b.wrapper != nil {
		b.wrapper.SetHidden(!show)
	}
	b.input.SetDisabled(!show)
	if !show {
		b.input.SetValue("")
		b.input.ClearError()
	}
	return show
}

// Rule returns the source rule.
func (b *Binding) Rule() Rule { return b.rule.Rule }
