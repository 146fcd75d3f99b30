package form

import "github.com/jateonwr/dem-survey/pkg/toggle"

// DefaultRules is the built-in toggle table for the item template.
func DefaultRules() []toggle.Rule {
	return []toggle.Rule{
		{Trigger: SourceType, Input: SourceOther, Wrapper: "sourceOtherWrapper", Kind: toggle.KindSelect, Value: "other"},
		{Trigger: Resolution, Input: ResolutionOther, Wrapper: "resolutionOtherWrapper", Kind: toggle.KindPredicate, When: `value == "lidar_sub1m" || value == "other"`},
		{Trigger: VerticalDatum, Input: VerticalDatumOther, Wrapper: "verticalDatumOtherWrapper", Kind: toggle.KindSelect, Value: "other"},
		{Trigger: CoordSys, Input: CoordSysOther, Wrapper: "coordSysOtherWrapper", Kind: toggle.KindSelect, Value: "other"},
		{Trigger: License, Input: LicenseOther, Wrapper: "licenseOtherWrapper", Kind: toggle.KindSelect, Value: "other"},
		{Trigger: DemMethodOtherFlag, Input: DemMethodOther, Kind: toggle.KindCheckbox},
		{Trigger: FormatOtherFlag, Input: FormatOther, Kind: toggle.KindCheckbox},
		{Trigger: AccessOtherFlag, Input: AccessOther, Kind: toggle.KindCheckbox},
		{Trigger: QcOtherFlag, Input: QcOther, Kind: toggle.KindCheckbox},
		{Trigger: UseOtherFlag, Input: UseOther, Kind: toggle.KindCheckbox},
	}
}
