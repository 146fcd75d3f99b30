package form

import (
	"strconv"

	"go.uber.org/zap"

	"github.com/jateonwr/dem-survey/pkg/dom"
)

// AddItem appends a fresh default item, fully bound, with years and
// reference data populated, then renumbers.
func (f *Form) AddItem() *Item {
	it := f.buildItem()
	f.items = append(f.items, it)
	f.PopulateYears()
	f.ApplyReferenceData()
	f.Renumber()
	f.logger.Debug("item added", zap.String("item", it.id), zap.Int("count", len(f.items)))
	return it
}

// RemoveItem drops it and renumbers. The last remaining item is kept; its
// remove control is hidden anyway.
func (f *Form) RemoveItem(it *Item) bool {
	if it == nil || len(f.items) <= 1 {
		return false
	}
	for i, candidate := range f.items {
		if candidate != it {
			continue
		}
		f.items = append(f.items[:i], f.items[i+1:]...)
		f.Renumber()
		f.logger.Debug("item removed", zap.String("item", it.id), zap.Int("count", len(f.items)))
		return true
	}
	return false
}

// Renumber relabels items 1..N in document order and shows the remove
// control, styled as destructive, only while more than one item exists.
func (f *Form) Renumber() {
	single := len(f.items) == 1
	for i, it := range f.items {
		it.frag.Block(ItemTitle).SetText(TitlePrefix + strconv.Itoa(i+1))
		rm := it.frag.Control(RemoveButton)
		if rm == nil {
			continue
		}
		rm.SetHidden(single)
		rm.AddClass(destructiveClasses...)
		rm.RemoveClass(neutralClass)
	}
}

// PopulateYears fills every year selector that holds only its placeholder,
// newest year first. Selectors that already have years are left alone.
func (f *Form) PopulateYears() {
	for _, it := range f.items {
		sel := it.frag.Control(Year)
		if sel == nil || len(sel.Options()) > 1 {
			continue
		}
		for y := f.yearEnd; y >= f.yearStart; y-- {
			sel.AppendOption(dom.Option{Value: strconv.Itoa(y)})
		}
	}
}

// ApplyReferenceData rebuilds every basin and province selector from the
// reference lists, keeping selections that are still offered.
func (f *Form) ApplyReferenceData() {
	if f.ref.Empty() {
		return
	}
	for _, it := range f.items {
		populate(it.frag.Control(BasinSelect), f.ref.Basins)
		populate(it.frag.Control(ProvinceSelect), f.ref.Provinces)
	}
}

func populate(sel *dom.Control, values []string) {
	if sel == nil {
		return
	}
	options := make([]dom.Option, len(values))
	for i, v := range values {
		options[i] = dom.Option{Value: v}
	}
	sel.SetOptions(options)
}

// Reset clears the agency section and replaces every item with one fresh
// default item. Reference data is kept and re-applied.
func (f *Form) Reset() {
	for _, c := range f.agency.Controls() {
		c.Reset()
	}
	f.items = []*Item{f.buildItem()}
	f.PopulateYears()
	f.ApplyReferenceData()
	f.Renumber()
	f.logger.Debug("form reset")
}
