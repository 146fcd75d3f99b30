package dom

// Fragment is an ordered set of controls and blocks: the agency section or a
// single repeated item.
type Fragment struct {
	controls []*Control
	byID     map[string]*Control
	blocks   []*Block
	blockIDs map[string]*Block
}

// Control returns the control with id, or nil.
func (f *Fragment) Control(id string) *Control {
	if f == nil {
		return nil
	}
	return f.byID[id]
}

// Block returns the block with id, or nil.
func (f *Fragment) Block(id string) *Block {
	if f == nil {
		return nil
	}
	return f.blockIDs[id]
}

// Controls returns every control in document order.
func (f *Fragment) Controls() []*Control {
	if f == nil {
		return nil
	}
	return append([]*Control(nil), f.controls...)
}

// Blocks returns every block in document order.
func (f *Fragment) Blocks() []*Block {
	if f == nil {
		return nil
	}
	return append([]*Block(nil), f.blocks...)
}

// Group returns the controls sharing name, in document order.
func (f *Fragment) Group(name string) []*Control {
	if f == nil {
		return nil
	}
	var out []*Control
	for _, c := range f.controls {
		if c.name == name {
			out = append(out, c)
		}
	}
	return out
}

// CheckedValues returns the values of the checked controls in the group.
func (f *Fragment) CheckedValues(name string) []string {
	var out []string
	for _, c := range f.Group(name) {
		if c.kind == KindCheckbox && c.checked {
			out = append(out, c.value)
		}
	}
	return out
}
