// Package visibility defines how toggle predicates are evaluated against the
// state of a trigger control.
package visibility

// Context carries the trigger state. Values holds "value" and "checked";
// Extras maps other control ids of the same item to their ControlState.
type Context struct {
	Values map[string]any
	Extras map[string]any
}

// TriggerContext builds the context for a single trigger control.
func TriggerContext(value string, checked bool) Context {
	return Context{Values: ControlState(value, checked)}
}

// ControlState is the view of one control a predicate can read.
func ControlState(value string, checked bool) map[string]any {
	return map[string]any{
		"value":   value,
		"checked": checked,
	}
}
