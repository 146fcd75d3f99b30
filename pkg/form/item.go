package form

import (
	"strings"

	"github.com/jateonwr/dem-survey/pkg/coverage"
	"github.com/jateonwr/dem-survey/pkg/dom"
	"github.com/jateonwr/dem-survey/pkg/sections"
	"github.com/jateonwr/dem-survey/pkg/tags"
	"github.com/jateonwr/dem-survey/pkg/toggle"
)

// TitlePrefix precedes the 1-based item number in every item heading.
const TitlePrefix = "ชุดข้อมูลที่ "

// Item is one live dataset block.
type Item struct {
	id       string
	frag     *dom.Fragment
	toggles  []*toggle.Binding
	sections *sections.Controller
	coverage *coverage.Controller
	basins   *tags.Widget
	prov     *tags.Widget
}

// ID returns the stable identifier; it never changes with renumbering.
func (it *Item) ID() string { return it.id }

// Fragment exposes the item's controls and blocks.
func (it *Item) Fragment() *dom.Fragment { return it.frag }

// Control is shorthand for Fragment().Control.
func (it *Item) Control(id string) *dom.Control { return it.frag.Control(id) }

// Block is shorthand for Fragment().Block.
func (it *Item) Block(id string) *dom.Block { return it.frag.Block(id) }

// Title returns the display label, e.g. "ชุดข้อมูลที่ 2".
func (it *Item) Title() string { return it.frag.Block(ItemTitle).Text() }

// Toggles returns the bound toggle rules.
func (it *Item) Toggles() []*toggle.Binding { return it.toggles }

// Sections returns the section controller.
func (it *Item) Sections() *sections.Controller { return it.sections }

// Coverage returns the coverage controller.
func (it *Item) Coverage() *coverage.Controller { return it.coverage }

// Basins returns the basin tag widget.
func (it *Item) Basins() *tags.Widget { return it.basins }

// Provinces returns the province tag widget.
func (it *Item) Provinces() *tags.Widget { return it.prov }

// buildItem instantiates the template, forces the default state, and binds
// every behaviour.
func (f *Form) buildItem() *Item {
	frag := ItemTemplate().Instantiate(f.doc)
	for _, c := range frag.Controls() {
		c.Reset()
	}
	for _, id := range []string{BasinTags, ProvinceTags} {
		frag.Block(id).Empty()
	}
	for _, id := range []string{BasinBlock, ProvinceBlock, LocalBlock} {
		frag.Block(id).SetHidden(true)
	}
	f.rules.Conceal(frag)

	it := &Item{id: f.newID(), frag: frag}
	f.bindItem(it)
	return it
}

func (f *Form) bindItem(it *Item) {
	frag := it.frag

	var secs []sections.Section
	for _, name := range SectionNames {
		secs = append(secs, sections.Section{
			Toggle: frag.Control(SectionToggleID(name)),
			Body:   frag.Block(SectionBodyID(name)),
		})
	}
	it.sections = sections.Bind(secs, frag.Control(ToggleAll))

	for _, id := range []string{VerticalAccuracy, HorizontalAccuracy, FileSize} {
		bindDecimal(frag.Control(id))
	}

	it.toggles = f.rules.Bind(frag)

	logged := tags.WithLogger(f.logger)
	it.basins = tags.Bind(frag.Control(BasinSelect), frag.Block(BasinTags), frag.Control(BasinValue), f.pills, logged)
	it.prov = tags.Bind(frag.Control(ProvinceSelect), frag.Block(ProvinceTags), frag.Control(ProvinceValue), f.pills, logged)
	it.coverage = coverage.Bind(coverage.Parts{
		Country:        frag.Control(CoverageCountry),
		BasinToggle:    frag.Control(ToggleBasin),
		ProvinceToggle: frag.Control(ToggleProvince),
		LocalToggle:    frag.Control(ToggleLocal),
		BasinBlock:     frag.Block(BasinBlock),
		ProvinceBlock:  frag.Block(ProvinceBlock),
		LocalBlock:     frag.Block(LocalBlock),
		LocalInput:     frag.Control(CoverageLocal),
		Basins:         it.basins,
		Provinces:      it.prov,
		Pickers: []*dom.Control{
			frag.Control(BasinSearch), frag.Control(BasinSelect),
			frag.Control(ProvinceSearch), frag.Control(ProvinceSelect),
		},
	})

	bindSearch(frag.Control(BasinSearch), frag.Control(BasinSelect))
	bindSearch(frag.Control(ProvinceSearch), frag.Control(ProvinceSelect))

	if rm := frag.Control(RemoveButton); rm != nil {
		rm.On(dom.EventClick, func(*dom.Control) { f.RemoveItem(it) })
	}
}

// bindSearch hides selector options whose label does not contain the typed
// term. A leading placeholder option always stays visible.
func bindSearch(search, selector *dom.Control) {
	if search == nil || selector == nil {
		return
	}
	search.On(dom.EventInput, func(c *dom.Control) {
		FilterOptions(selector, c.Value())
	})
}

// FilterOptions applies a case-insensitive label filter to selector.
func FilterOptions(selector *dom.Control, term string) {
	term = strings.ToLower(strings.TrimSpace(term))
	for i, opt := range selector.Options() {
		if i == 0 && opt.Value == "" {
			selector.SetOptionHidden(i, false)
			continue
		}
		hide := term != "" && !strings.Contains(strings.ToLower(opt.Text()), term)
		selector.SetOptionHidden(i, hide)
	}
}
