package dom

// ControlSpec describes the default state of one control.
type ControlSpec struct {
	ID       string            `json:"id" yaml:"id"`
	Name     string            `json:"name,omitempty" yaml:"name,omitempty"`
	Kind     Kind              `json:"kind" yaml:"kind"`
	Value    string            `json:"value,omitempty" yaml:"value,omitempty"`
	Text     string            `json:"text,omitempty" yaml:"text,omitempty"`
	Options  []Option          `json:"options,omitempty" yaml:"options,omitempty"`
	Required bool              `json:"required,omitempty" yaml:"required,omitempty"`
	Disabled bool              `json:"disabled,omitempty" yaml:"disabled,omitempty"`
	Hidden   bool              `json:"hidden,omitempty" yaml:"hidden,omitempty"`
	Attrs    map[string]string `json:"attrs,omitempty" yaml:"attrs,omitempty"`
	Classes  []string          `json:"classes,omitempty" yaml:"classes,omitempty"`
}

// BlockSpec describes the default state of one block.
type BlockSpec struct {
	ID     string `json:"id" yaml:"id"`
	Text   string `json:"text,omitempty" yaml:"text,omitempty"`
	Hidden bool   `json:"hidden,omitempty" yaml:"hidden,omitempty"`
}

// Template is the structural descriptor new fragments are built from. It
// never holds live state, so every instance starts unbound.
type Template struct {
	Controls []ControlSpec `json:"controls" yaml:"controls"`
	Blocks   []BlockSpec   `json:"blocks" yaml:"blocks"`
}

// Instantiate builds a fresh fragment attached to doc.
func (t Template) Instantiate(doc *Document) *Fragment {
	frag := &Fragment{
		controls: make([]*Control, 0, len(t.Controls)),
		byID:     make(map[string]*Control, len(t.Controls)),
		blocks:   make([]*Block, 0, len(t.Blocks)),
		blockIDs: make(map[string]*Block, len(t.Blocks)),
	}
	for _, spec := range t.Controls {
		name := spec.Name
		if name == "" {
			name = spec.ID
		}
		c := &Control{
			id:       spec.ID,
			name:     name,
			kind:     spec.Kind,
			value:    spec.Value,
			text:     spec.Text,
			options:  append([]Option(nil), spec.Options...),
			required: spec.Required,
			disabled: spec.Disabled,
			hidden:   spec.Hidden,
			doc:      doc,
		}
		if c.kind == KindSelect && c.value == "" && len(c.options) > 0 {
			c.value = c.options[0].Value
		}
		for k, v := range spec.Attrs {
			c.SetAttr(k, v)
		}
		c.AddClass(spec.Classes...)
		frag.controls = append(frag.controls, c)
		frag.byID[spec.ID] = c
	}
	for _, spec := range t.Blocks {
		b := &Block{id: spec.ID, text: spec.Text, hidden: spec.Hidden}
		frag.blocks = append(frag.blocks, b)
		frag.blockIDs[spec.ID] = b
	}
	return frag
}
