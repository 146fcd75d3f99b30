package dom

// Block is a named region whose visibility can be toggled: toggle-field
// wrappers, section bodies, coverage content blocks, and tag containers.
// Containers also carry derived children and their rendered markup.
type Block struct {
	id       string
	hidden   bool
	text     string
	children []string
	markup   string
}

// ID returns the block identifier.
func (b *Block) ID() string { return b.id }

// Hidden reports whether the block is hidden.
func (b *Block) Hidden() bool { return b.hidden }

// SetHidden hides or shows the block.
func (b *Block) SetHidden(hidden bool) { b.hidden = hidden }

// Text returns the block's heading text.
func (b *Block) Text() string { return b.text }

// SetText replaces the heading text.
func (b *Block) SetText(text string) { b.text = text }

// Children returns a copy of the rendered child tokens.
func (b *Block) Children() []string {
	return append([]string(nil), b.children...)
}

// Markup returns the rendered inner markup.
func (b *Block) Markup() string { return b.markup }

// Replace swaps the whole content of the block.
func (b *Block) Replace(children []string, markup string) {
	b.children = append([]string(nil), children...)
	b.markup = markup
}

// Empty removes every child and the markup.
func (b *Block) Empty() {
	b.children = nil
	b.markup = ""
}
