package form

import (
	"strings"

	"github.com/jateonwr/dem-survey/pkg/dom"
	"github.com/jateonwr/dem-survey/pkg/model"
)

// Collect serializes the form. "Other" selections are replaced by their
// companion text, checkbox groups drop their "other" literals and append the
// companion when its flag is checked, and the country-wide value becomes its
// display label. Every scalar is trimmed.
func (f *Form) Collect() model.Payload {
	a := f.agency
	payload := model.Payload{
		Agency: model.AgencyInfo{
			AgencyName:      value(a, AgencyName),
			SubUnit:         value(a, SubUnit),
			ContactName:     value(a, ContactName),
			ContactPosition: value(a, ContactPosition),
			ContactPhone:    value(a, ContactPhone),
			ContactEmail:    value(a, ContactEmail),
		},
		Items: make([]model.DemItem, 0, len(f.items)),
	}
	for _, it := range f.items {
		payload.Items = append(payload.Items, collectItem(it.frag))
	}
	return payload
}

func collectItem(frag *dom.Fragment) model.DemItem {
	d := model.DemItem{
		DemName:              value(frag, DemName),
		SourceType:           resolveOther(frag, SourceType, SourceOther, isOther),
		Year:                 value(frag, Year),
		CoverageBasinTags:    value(frag, BasinValue),
		CoverageProvinceTags: value(frag, ProvinceValue),
		CoverageLocal:        value(frag, CoverageLocal),
		Resolution:           resolveOther(frag, Resolution, ResolutionOther, isResolutionFreeText),
		VerticalAccuracy:     value(frag, VerticalAccuracy),
		HorizontalAccuracy:   value(frag, HorizontalAccuracy),
		VerticalDatum:        resolveOther(frag, VerticalDatum, VerticalDatumOther, isOther),
		CoordSys:             resolveOther(frag, CoordSys, CoordSysOther, isOther),
		FileSize:             value(frag, FileSize),
		FileSizeUnit:         value(frag, FileSizeUnit),
		License:              resolveOther(frag, License, LicenseOther, isOther),
		AccessOther:          value(frag, AccessOther),
		QcQaOther:            value(frag, QcOther),
		MainUsesOther:        value(frag, UseOther),
		Remark:               value(frag, Remark),
	}

	d.CoverageCountry = []string{}
	for _, v := range frag.CheckedValues(CoverageCountry) {
		d.CoverageCountry = append(d.CoverageCountry, model.CoverageLabel(v))
	}

	d.DemMethods = appendOther(checkedWithoutOther(frag, DemMethodGroup), frag, DemMethodOtherFlag, DemMethodOther)
	d.FileFormats = appendOther(checkedWithoutOther(frag, FormatGroup), frag, FormatOtherFlag, FormatOther)
	d.AccessChannels = appendOther(checkedWithoutOther(frag, AccessGroup), frag, AccessOtherFlag, AccessOther)
	d.QcQa = checkedWithoutOther(frag, QcGroup)
	d.MainUses = checkedWithoutOther(frag, UseGroup)
	return d
}

func value(frag *dom.Fragment, id string) string {
	c := frag.Control(id)
	if c == nil {
		return ""
	}
	return strings.TrimSpace(c.Value())
}

func isOther(v string) bool { return v == model.OtherValue }

func isResolutionFreeText(v string) bool {
	return v == model.OtherValue || v == model.LidarSubMeterValue
}

// resolveOther returns the companion text when the primary value matches,
// otherwise the primary value itself.
func resolveOther(frag *dom.Fragment, primary, companion string, matches func(string) bool) string {
	c := frag.Control(primary)
	if c == nil {
		return ""
	}
	if matches(c.Value()) {
		return value(frag, companion)
	}
	return c.Value()
}

func checkedWithoutOther(frag *dom.Fragment, group string) []string {
	out := []string{}
	for _, v := range frag.CheckedValues(group) {
		if v == "" || model.IsOtherLiteral(v) {
			continue
		}
		out = append(out, v)
	}
	return out
}

func appendOther(values []string, frag *dom.Fragment, flag, companion string) []string {
	c := frag.Control(flag)
	if c == nil || !c.Checked() {
		return values
	}
	if text := value(frag, companion); text != "" {
		values = append(values, text)
	}
	return values
}
