// Package sections manages the collapsible sections of one survey item and
// the master toggle that reflects their aggregate state.
package sections

import "github.com/jateonwr/dem-survey/pkg/dom"

const (
	// StateAttr holds "shown" or "hidden" on every toggle control.
	StateAttr = "data-state"

	StateShown  = "shown"
	StateHidden = "hidden"

	// LabelShow and LabelHide are the only two toggle captions.
	LabelShow = "แสดง"
	LabelHide = "ซ่อน"
)

// Section pairs a toggle control with the body it collapses.
type Section struct {
	Toggle *dom.Control
	Body   *dom.Block
}

// Shown reports the section state from the toggle attribute.
func (s Section) Shown() bool {
	return s.Toggle.Attr(StateAttr) == StateShown
}

// Controller owns an item's sections and its master toggle.
type Controller struct {
	sections []Section
	master   *dom.Control
}

// Bind wires sections (in display order) and the optional master toggle.
// Exactly the first section starts shown.
func Bind(sections []Section, master *dom.Control) *Controller {
	c := &Controller{master: master}
	for _, s := range sections {
		if s.Toggle == nil || s.Body == nil {
			continue
		}
		c.sections = append(c.sections, s)
	}
	for i, s := range c.sections {
		c.set(s, i == 0)
	}
	for _, s := range c.sections {
		section := s
		section.Toggle.On(dom.EventClick, func(*dom.Control) {
			c.set(section, section.Body.Hidden())
			c.refreshMaster()
		})
	}
	if master != nil {
		master.On(dom.EventClick, func(*dom.Control) { c.ToggleAll() })
	}
	c.refreshMaster()
	return c
}

// Sections returns the bound sections.
func (c *Controller) Sections() []Section {
	return append([]Section(nil), c.sections...)
}

// AnyHidden reports whether at least one section is collapsed.
func (c *Controller) AnyHidden() bool {
	for _, s := range c.sections {
		if s.Body.Hidden() {
			return true
		}
	}
	return false
}

// ToggleAll shows every section when any is hidden, otherwise hides all.
func (c *Controller) ToggleAll() {
	show := c.AnyHidden()
	for _, s := range c.sections {
		c.set(s, show)
	}
	c.refreshMaster()
}

func (c *Controller) set(s Section, show bool) {
	s.Body.SetHidden(!show)
	if show {
		s.Toggle.SetAttr(StateAttr, StateShown)
		s.Toggle.SetText(LabelHide)
		return
	}
	s.Toggle.SetAttr(StateAttr, StateHidden)
	s.Toggle.SetText(LabelShow)
}

func (c *Controller) refreshMaster() {
	if c.master == nil {
		return
	}
	if c.AnyHidden() {
		c.master.SetAttr(StateAttr, StateHidden)
		c.master.SetText(LabelShow)
		return
	}
	c.master.SetAttr(StateAttr, StateShown)
	c.master.SetText(LabelHide)
}
