package dom

import "strings"

// Kind enumerates the control flavours the survey uses.
type Kind string

const (
	KindText     Kind = "text"
	KindNumber   Kind = "number"
	KindTel      Kind = "tel"
	KindEmail    Kind = "email"
	KindSelect   Kind = "select"
	KindCheckbox Kind = "checkbox"
	KindTextArea Kind = "textarea"
	KindHidden   Kind = "hidden"
	KindButton   Kind = "button"
)

// Event names dispatched by user gestures.
type Event string

const (
	EventInput       Event = "input"
	EventChange      Event = "change"
	EventClick       Event = "click"
	EventDoubleClick Event = "dblclick"
	EventFocus       Event = "focus"
	EventBlur        Event = "blur"
)

// Listener reacts to an event dispatched on a control.
type Listener func(c *Control)

// Option is a single entry of a select control.
type Option struct {
	Value  string `json:"value" yaml:"value"`
	Label  string `json:"label,omitempty" yaml:"label,omitempty"`
	Hidden bool   `json:"-" yaml:"-"`
}

// Text returns the display label, falling back to the value.
func (o Option) Text() string {
	if o.Label != "" {
		return o.Label
	}
	return o.Value
}

type listener struct {
	fn   Listener
	once bool
}

// Control is a single input, select, checkbox, textarea, hidden field, or
// button.
type Control struct {
	id       string
	name     string
	kind     Kind
	value    string
	checked  bool
	disabled bool
	required bool
	hidden   bool
	text     string
	options  []Option
	attrs    map[string]string
	classes  map[string]struct{}
	errMsg   string
	hasErr   bool

	doc       *Document
	listeners map[Event][]listener
}

// ID returns the control identifier, unique within its fragment.
func (c *Control) ID() string { return c.id }

// Name returns the control's group name (several checkboxes may share one).
func (c *Control) Name() string { return c.name }

// Kind reports the control flavour.
func (c *Control) Kind() Kind { return c.kind }

// Value returns the current value. For checkboxes this is the fixed value
// attribute regardless of checked state.
func (c *Control) Value() string { return c.value }

// SetValue writes the value without dispatching events. Select controls only
// accept values present in their option list; anything else selects nothing.
func (c *Control) SetValue(value string) {
	if c.kind == KindSelect && len(c.options) > 0 && !c.hasOption(value) {
		value = ""
	}
	c.value = value
}

// Checked reports the checkbox state.
func (c *Control) Checked() bool { return c.checked }

// SetChecked writes the checkbox state without dispatching events.
func (c *Control) SetChecked(checked bool) { c.checked = checked }

// Disabled reports whether the control is disabled.
func (c *Control) Disabled() bool { return c.disabled }

// SetDisabled toggles the disabled flag.
func (c *Control) SetDisabled(disabled bool) { c.disabled = disabled }

// Required reports whether the control is marked required.
func (c *Control) Required() bool { return c.required }

// SetRequired toggles the required flag.
func (c *Control) SetRequired(required bool) { c.required = required }

// Hidden reports whether the control itself is hidden (buttons).
func (c *Control) Hidden() bool { return c.hidden }

// SetHidden toggles the control's own visibility.
func (c *Control) SetHidden(hidden bool) { c.hidden = hidden }

// Text returns the visible label of a button-like control.
func (c *Control) Text() string { return c.text }

// SetText replaces the visible label.
func (c *Control) SetText(text string) { c.text = text }

// Attr returns a data attribute.
func (c *Control) Attr(name string) string {
	if c.attrs == nil {
		return ""
	}
	return c.attrs[name]
}

// SetAttr writes a data attribute.
func (c *Control) SetAttr(name, value string) {
	if c.attrs == nil {
		c.attrs = make(map[string]string)
	}
	c.attrs[name] = value
}

// HasClass reports whether the class is present.
func (c *Control) HasClass(name string) bool {
	_, ok := c.classes[name]
	return ok
}

// AddClass adds one or more classes.
func (c *Control) AddClass(names ...string) {
	if c.classes == nil {
		c.classes = make(map[string]struct{}, len(names))
	}
	for _, name := range names {
		if name = strings.TrimSpace(name); name != "" {
			c.classes[name] = struct{}{}
		}
	}
}

// RemoveClass removes classes; unknown names are ignored.
func (c *Control) RemoveClass(names ...string) {
	for _, name := range names {
		delete(c.classes, name)
	}
}

// Options returns a copy of the select options.
func (c *Control) Options() []Option {
	return append([]Option(nil), c.options...)
}

// SetOptions replaces the option list. The current value survives when it is
// still one of the options.
func (c *Control) SetOptions(options []Option) {
	c.options = append([]Option(nil), options...)
	if !c.hasOption(c.value) {
		c.value = ""
	}
}

// AppendOption adds a single option to the end of the list.
func (c *Control) AppendOption(option Option) {
	c.options = append(c.options, option)
}

// SetOptionHidden hides or reveals the option at index.
func (c *Control) SetOptionHidden(index int, hidden bool) {
	if index < 0 || index >= len(c.options) {
		return
	}
	c.options[index].Hidden = hidden
}

func (c *Control) hasOption(value string) bool {
	for _, opt := range c.options {
		if opt.Value == value {
			return true
		}
	}
	return false
}

// Reset restores the control to its empty state: selects pick their first
// option, checkboxes are unchecked and enabled, everything else is emptied.
// Error decoration is cleared.
func (c *Control) Reset() {
	switch c.kind {
	case KindSelect:
		c.value = ""
		if len(c.options) > 0 {
			c.value = c.options[0].Value
		}
	case KindCheckbox:
		c.checked = false
		c.disabled = false
	case KindButton:
	default:
		c.value = ""
	}
	c.ClearError()
}

// ShowError decorates the control with an inline message. An existing
// message is kept.
func (c *Control) ShowError(message string) {
	if !c.hasErr {
		c.errMsg = message
	}
	c.hasErr = true
}

// ClearError removes any error decoration.
func (c *Control) ClearError() {
	c.hasErr = false
	c.errMsg = ""
}

// HasError reports whether error decoration is present.
func (c *Control) HasError() bool { return c.hasErr }

// ErrorMessage returns the inline message, empty when undecorated.
func (c *Control) ErrorMessage() string { return c.errMsg }

// On registers a persistent listener.
func (c *Control) On(event Event, fn Listener) {
	c.addListener(event, fn, false)
}

// Once registers a listener that is dropped after its first dispatch.
func (c *Control) Once(event Event, fn Listener) {
	c.addListener(event, fn, true)
}

func (c *Control) addListener(event Event, fn Listener, once bool) {
	if fn == nil {
		return
	}
	if c.listeners == nil {
		c.listeners = make(map[Event][]listener)
	}
	c.listeners[event] = append(c.listeners[event], listener{fn: fn, once: once})
}

// ListenerCount reports the number of listeners registered for event.
func (c *Control) ListenerCount(event Event) int {
	return len(c.listeners[event])
}

// Dispatch runs the listeners registered for event in registration order.
// One-shot listeners are removed before any listener runs.
func (c *Control) Dispatch(event Event) {
	current := c.listeners[event]
	if len(current) == 0 {
		return
	}
	kept := current[:0:0]
	for _, l := range current {
		if !l.once {
			kept = append(kept, l)
		}
	}
	c.listeners[event] = kept
	for _, l := range current {
		l.fn(c)
	}
}

// Type simulates keyboard entry: the value is replaced and input then change
// are dispatched. Disabled controls ignore the gesture.
func (c *Control) Type(value string) {
	if c.disabled {
		return
	}
	c.value = value
	c.Dispatch(EventInput)
	c.Dispatch(EventChange)
}

// Choose selects an option and dispatches change.
func (c *Control) Choose(value string) {
	if c.disabled {
		return
	}
	c.SetValue(value)
	c.Dispatch(EventChange)
}

// Check sets the checkbox state and dispatches change.
func (c *Control) Check(checked bool) {
	if c.disabled {
		return
	}
	c.checked = checked
	c.Dispatch(EventChange)
}

// Click dispatches click on enabled, visible controls.
func (c *Control) Click() {
	if c.disabled || c.hidden {
		return
	}
	c.Dispatch(EventClick)
}

// DoubleClick dispatches dblclick on enabled controls.
func (c *Control) DoubleClick() {
	if c.disabled {
		return
	}
	c.Dispatch(EventDoubleClick)
}

// Focus moves document focus to the control.
func (c *Control) Focus() {
	if c.doc != nil {
		c.doc.focused = c
	}
	c.Dispatch(EventFocus)
}

// Blur drops focus and dispatches blur.
func (c *Control) Blur() {
	if c.doc != nil && c.doc.focused == c {
		c.doc.focused = nil
	}
	c.Dispatch(EventBlur)
}

// ScrollIntoView records the control as the document's scroll target.
func (c *Control) ScrollIntoView() {
	if c.doc != nil {
		c.doc.scrolled = c
	}
}
