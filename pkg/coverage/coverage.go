// Package coverage keeps an item's geographic scope consistent: either the
// whole country, or any combination of basin, province, and local scopes.
// Every change recomputes the state from the current toggles.
package coverage

import (
	"github.com/jateonwr/dem-survey/pkg/dom"
	"github.com/jateonwr/dem-survey/pkg/tags"
)

// Mode is the macro state of the controller.
type Mode int

const (
	Regional Mode = iota
	CountryWide
)

func (m Mode) String() string {
	if m == CountryWide {
		return "country_wide"
	}
	return "regional"
}

// Parts are the controls and blocks one controller drives. Tag widgets may be
// nil when the item has no reference-data selectors.
type Parts struct {
	Country        *dom.Control
	BasinToggle    *dom.Control
	ProvinceToggle *dom.Control
	LocalToggle    *dom.Control
	BasinBlock     *dom.Block
	ProvinceBlock  *dom.Block
	LocalBlock     *dom.Block
	LocalInput     *dom.Control
	Basins         *tags.Widget
	Provinces      *tags.Widget
	// Pickers are the basin and province selectors and search inputs. They
	// are locked while the whole country is selected.
	Pickers []*dom.Control
}

// Controller enforces the coverage state machine for one item.
type Controller struct {
	p Parts
}

// Bind listens to the country checkbox and the three mode toggles, then
// computes the initial state.
func Bind(p Parts) *Controller {
	c := &Controller{p: p}
	for _, trigger := range []*dom.Control{p.Country, p.BasinToggle, p.ProvinceToggle, p.LocalToggle} {
		if trigger != nil {
			trigger.On(dom.EventChange, func(*dom.Control) { c.Update() })
		}
	}
	c.Update()
	return c
}

// Mode reports the current macro state.
func (c *Controller) Mode() Mode {
	if c.p.Country != nil && c.p.Country.Checked() {
		return CountryWide
	}
	return Regional
}

// Update recomputes every dependent control from the toggles.
func (c *Controller) Update() {
	if c.Mode() == CountryWide {
		c.enterCountryWide()
		return
	}
	c.enterRegional()
}

func (c *Controller) toggles() []*dom.Control {
	return []*dom.Control{c.p.BasinToggle, c.p.ProvinceToggle, c.p.LocalToggle}
}

func (c *Controller) enterCountryWide() {
	for _, t := range c.toggles() {
		if t != nil {
			t.SetChecked(false)
			t.SetDisabled(true)
		}
	}
	for _, b := range []*dom.Block{c.p.BasinBlock, c.p.ProvinceBlock, c.p.LocalBlock} {
		if b != nil {
			b.SetHidden(true)
		}
	}
	for _, p := range c.p.Pickers {
		if p != nil {
			p.SetDisabled(true)
		}
	}
	if c.p.Basins != nil {
		c.p.Basins.Clear()
	}
	if c.p.Provinces != nil {
		c.p.Provinces.Clear()
	}
	if c.p.LocalInput != nil {
		c.p.LocalInput.SetValue("")
		c.p.LocalInput.SetDisabled(true)
		c.p.LocalInput.ClearError()
	}
}

func (c *Controller) enterRegional() {
	for _, t := range c.toggles() {
		if t != nil {
			t.SetDisabled(false)
		}
	}
	for _, p := range c.p.Pickers {
		if p != nil {
			p.SetDisabled(false)
		}
	}
	reflect := func(b *dom.Block, t *dom.Control) {
		if b != nil {
			b.SetHidden(t == nil || !t.Checked())
		}
	}
	reflect(c.p.BasinBlock, c.p.BasinToggle)
	reflect(c.p.ProvinceBlock, c.p.ProvinceToggle)
	reflect(c.p.LocalBlock, c.p.LocalToggle)

	if c.p.LocalInput == nil {
		return
	}
	showLocal := c.p.LocalToggle != nil && c.p.LocalToggle.Checked()
	c.p.LocalInput.SetDisabled(!showLocal)
	if !showLocal {
		c.p.LocalInput.SetValue("")
		c.p.LocalInput.ClearError()
	}
}
