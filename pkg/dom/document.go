package dom

// Document owns focus and scroll position for every fragment instantiated
// against it.
type Document struct {
	focused  *Control
	scrolled *Control
}

// NewDocument returns an empty document.
func NewDocument() *Document {
	return &Document{}
}

// Focused returns the control holding focus, or nil.
func (d *Document) Focused() *Control {
	if d == nil {
		return nil
	}
	return d.focused
}

// ScrollTarget returns the last control scrolled into view, or nil.
func (d *Document) ScrollTarget() *Control {
	if d == nil {
		return nil
	}
	return d.scrolled
}
