package form

import "github.com/jateonwr/dem-survey/pkg/dom"

// Agency control identifiers.
const (
	AgencyName      = "agencyName"
	SubUnit         = "subUnit"
	ContactName     = "contactName"
	ContactPosition = "contactPosition"
	ContactPhone    = "contactPhone"
	ContactEmail    = "contactEmail"
)

// Item control identifiers.
const (
	ItemTitle       = "title"
	RemoveButton    = "removeItem"
	ToggleAll       = "toggleAll"
	DemName         = "demName"
	SourceType      = "sourceType"
	SourceOther     = "sourceOther"
	Year            = "year"
	CoverageCountry = "coverageCountry"
	ToggleBasin     = "toggleBasin"
	ToggleProvince  = "toggleProvince"
	ToggleLocal     = "toggleLocal"
	BasinBlock      = "basinBlock"
	ProvinceBlock   = "provinceBlock"
	LocalBlock      = "localBlock"
	BasinSearch     = "basinSearch"
	BasinSelect     = "basinSelect"
	BasinTags       = "basinTags"
	BasinValue      = "basinTagsValue"
	ProvinceSearch  = "provinceSearch"
	ProvinceSelect  = "provinceSelect"
	ProvinceTags    = "provinceTags"
	ProvinceValue   = "provinceTagsValue"
	CoverageLocal   = "coverageLocal"

	Resolution         = "resolution"
	ResolutionOther    = "resolutionOther"
	VerticalAccuracy   = "verticalAccuracy"
	HorizontalAccuracy = "horizontalAccuracy"
	VerticalDatum      = "verticalDatum"
	VerticalDatumOther = "verticalDatumOther"
	CoordSys           = "coordSys"
	CoordSysOther      = "coordSysOther"
	FileSize           = "fileSize"
	FileSizeUnit       = "fileSizeUnit"
	License            = "license"
	LicenseOther       = "licenseOther"
	Remark             = "remark"
)

// Checkbox groups. The "other" flag of each group shares the group name so
// the serializer has to filter it out, and its companion text sits next to it.
const (
	DemMethodGroup     = "demMethod"
	DemMethodOtherFlag = "demMethodOtherFlag"
	DemMethodOther     = "demMethodOther"
	FormatGroup        = "format"
	FormatOtherFlag    = "formatOtherFlag"
	FormatOther        = "formatOther"
	AccessGroup        = "access"
	AccessOtherFlag    = "accessOtherFlag"
	AccessOther        = "accessOther"
	QcGroup            = "qc"
	QcOtherFlag        = "qcOtherFlag"
	QcOther            = "qcOther"
	UseGroup           = "use"
	UseOtherFlag       = "useOtherFlag"
	UseOther           = "useOther"
)

// Section names in display order. Each has a toggle control "<name>Toggle"
// and a body block "<name>Body".
var SectionNames = []string{"general", "coverage", "technical", "usage"}

// SectionToggleID returns the toggle control id for a section.
func SectionToggleID(name string) string { return name + "Toggle" }

// SectionBodyID returns the body block id for a section.
func SectionBodyID(name string) string { return name + "Body" }

// destructiveClasses mark the remove control once more than one item exists.
var destructiveClasses = []string{"bg-rose-600", "text-white", "border-rose-600", "hover:bg-rose-700"}

const neutralClass = "bg-white"

func placeholder(label string) dom.Option { return dom.Option{Value: "", Label: label} }

func plainOptions(values ...string) []dom.Option {
	out := make([]dom.Option, len(values))
	for i, v := range values {
		out[i] = dom.Option{Value: v}
	}
	return out
}

func withPlaceholder(label string, options ...dom.Option) []dom.Option {
	return append([]dom.Option{placeholder(label)}, options...)
}

// AgencyTemplate describes the agency section.
func AgencyTemplate() dom.Template {
	return dom.Template{Controls: []dom.ControlSpec{
		{ID: AgencyName, Kind: dom.KindText},
		{ID: SubUnit, Kind: dom.KindText},
		{ID: ContactName, Kind: dom.KindText},
		{ID: ContactPosition, Kind: dom.KindText},
		{ID: ContactPhone, Kind: dom.KindTel},
		{ID: ContactEmail, Kind: dom.KindEmail},
	}}
}

func checkboxGroup(group string, values ...string) []dom.ControlSpec {
	out := make([]dom.ControlSpec, 0, len(values))
	for _, v := range values {
		out = append(out, dom.ControlSpec{ID: group + "_" + v, Name: group, Kind: dom.KindCheckbox, Value: v})
	}
	return out
}

func otherPair(group, flag, text string) []dom.ControlSpec {
	return []dom.ControlSpec{
		{ID: flag, Name: group, Kind: dom.KindCheckbox, Value: "other", Attrs: map[string]string{"label": "อื่นๆ (ระบุ)"}},
		{ID: text, Kind: dom.KindText, Disabled: true},
	}
}

// ItemTemplate describes one dataset item in its default state: selects on
// their placeholder, checkboxes clear, every toggle wrapper and coverage block
// hidden, every tag container empty.
func ItemTemplate() dom.Template {
	var controls []dom.ControlSpec
	add := func(specs ...dom.ControlSpec) { controls = append(controls, specs...) }

	add(
		dom.ControlSpec{ID: ToggleAll, Kind: dom.KindButton},
		dom.ControlSpec{ID: RemoveButton, Kind: dom.KindButton, Text: "ลบชุดข้อมูล", Hidden: true, Classes: []string{neutralClass}},
	)
	for _, name := range SectionNames {
		add(dom.ControlSpec{ID: SectionToggleID(name), Kind: dom.KindButton})
	}

	add(
		dom.ControlSpec{ID: DemName, Kind: dom.KindText, Required: true},
		dom.ControlSpec{ID: SourceType, Kind: dom.KindSelect, Required: true, Options: withPlaceholder("เลือกแหล่งที่มา",
			dom.Option{Value: "aerial_photo", Label: "ภาพถ่ายทางอากาศ"},
			dom.Option{Value: "lidar", Label: "LiDAR"},
			dom.Option{Value: "satellite", Label: "ภาพดาวเทียม"},
			dom.Option{Value: "ifsar", Label: "IFSAR"},
			dom.Option{Value: "ground_survey", Label: "สำรวจภาคพื้นดิน"},
			dom.Option{Value: "other", Label: "อื่นๆ (ระบุ)"},
		)},
		dom.ControlSpec{ID: SourceOther, Kind: dom.KindText, Disabled: true},
		dom.ControlSpec{ID: Year, Kind: dom.KindSelect, Required: true, Options: []dom.Option{placeholder("เลือกปี")}},
	)

	add(
		dom.ControlSpec{ID: CoverageCountry, Kind: dom.KindCheckbox, Value: "thailand_all"},
		dom.ControlSpec{ID: ToggleBasin, Kind: dom.KindCheckbox, Value: "basin"},
		dom.ControlSpec{ID: ToggleProvince, Kind: dom.KindCheckbox, Value: "province"},
		dom.ControlSpec{ID: ToggleLocal, Kind: dom.KindCheckbox, Value: "local"},
		dom.ControlSpec{ID: BasinSearch, Kind: dom.KindText},
		dom.ControlSpec{ID: BasinSelect, Kind: dom.KindSelect},
		dom.ControlSpec{ID: BasinValue, Kind: dom.KindHidden},
		dom.ControlSpec{ID: ProvinceSearch, Kind: dom.KindText},
		dom.ControlSpec{ID: ProvinceSelect, Kind: dom.KindSelect},
		dom.ControlSpec{ID: ProvinceValue, Kind: dom.KindHidden},
		dom.ControlSpec{ID: CoverageLocal, Kind: dom.KindText, Disabled: true},
	)

	add(
		dom.ControlSpec{ID: Resolution, Kind: dom.KindSelect, Options: withPlaceholder("เลือกความละเอียด",
			dom.Option{Value: "lidar_sub1m", Label: "LiDAR < 1 m (ระบุ)"},
			dom.Option{Value: "1m"}, dom.Option{Value: "2m"}, dom.Option{Value: "5m"},
			dom.Option{Value: "10m"}, dom.Option{Value: "12.5m"}, dom.Option{Value: "30m"},
			dom.Option{Value: "other", Label: "อื่นๆ (ระบุ)"},
		)},
		dom.ControlSpec{ID: ResolutionOther, Kind: dom.KindText, Disabled: true},
		dom.ControlSpec{ID: VerticalAccuracy, Kind: dom.KindNumber},
		dom.ControlSpec{ID: HorizontalAccuracy, Kind: dom.KindNumber},
		dom.ControlSpec{ID: VerticalDatum, Kind: dom.KindSelect, Options: withPlaceholder("เลือกพื้นหลักฐานทางดิ่ง",
			dom.Option{Value: "msl", Label: "MSL (ระดับทะเลปานกลาง)"},
			dom.Option{Value: "egm96", Label: "EGM96"},
			dom.Option{Value: "egm2008", Label: "EGM2008"},
			dom.Option{Value: "tgm2017", Label: "TGM2017"},
			dom.Option{Value: "other", Label: "อื่นๆ (ระบุ)"},
		)},
		dom.ControlSpec{ID: VerticalDatumOther, Kind: dom.KindText, Disabled: true},
		dom.ControlSpec{ID: CoordSys, Kind: dom.KindSelect, Options: withPlaceholder("เลือกระบบพิกัด",
			dom.Option{Value: "utm47n_wgs84", Label: "UTM 47N / WGS84"},
			dom.Option{Value: "utm48n_wgs84", Label: "UTM 48N / WGS84"},
			dom.Option{Value: "utm47n_indian1975", Label: "UTM 47N / Indian 1975"},
			dom.Option{Value: "geographic_wgs84", Label: "Geographic / WGS84"},
			dom.Option{Value: "other", Label: "อื่นๆ (ระบุ)"},
		)},
		dom.ControlSpec{ID: CoordSysOther, Kind: dom.KindText, Disabled: true},
	)
	add(checkboxGroup(DemMethodGroup, "photogrammetry", "lidar", "ifsar", "interpolation")...)
	add(otherPair(DemMethodGroup, DemMethodOtherFlag, DemMethodOther)...)
	add(checkboxGroup(FormatGroup, "geotiff", "ascii_grid", "img", "las")...)
	add(otherPair(FormatGroup, FormatOtherFlag, FormatOther)...)
	add(
		dom.ControlSpec{ID: FileSize, Kind: dom.KindNumber},
		dom.ControlSpec{ID: FileSizeUnit, Kind: dom.KindSelect, Options: plainOptions("MB", "GB", "TB")},
	)

	add(dom.ControlSpec{ID: License, Kind: dom.KindSelect, Options: withPlaceholder("เลือกสัญญาอนุญาต",
		dom.Option{Value: "open", Label: "เปิดเผยสาธารณะ"},
		dom.Option{Value: "government", Label: "ใช้ภายในหน่วยงานรัฐ"},
		dom.Option{Value: "restricted", Label: "จำกัดการใช้งาน"},
		dom.Option{Value: "commercial", Label: "เชิงพาณิชย์"},
		dom.Option{Value: "other", Label: "อื่นๆ (ระบุ)"},
	)},
		dom.ControlSpec{ID: LicenseOther, Kind: dom.KindText, Disabled: true},
	)
	add(checkboxGroup(AccessGroup, "download", "official_letter", "api", "onsite")...)
	add(otherPair(AccessGroup, AccessOtherFlag, AccessOther)...)
	add(checkboxGroup(QcGroup, "ground_check", "cross_section", "statistics", "visual")...)
	add(otherPair(QcGroup, QcOtherFlag, QcOther)...)
	add(checkboxGroup(UseGroup, "flood", "water_management", "urban_planning", "infrastructure", "research")...)
	add(otherPair(UseGroup, UseOtherFlag, UseOther)...)
	add(dom.ControlSpec{ID: Remark, Kind: dom.KindTextArea})

	blocks := []dom.BlockSpec{{ID: ItemTitle}}
	for _, name := range SectionNames {
		blocks = append(blocks, dom.BlockSpec{ID: SectionBodyID(name), Hidden: true})
	}
	blocks = append(blocks,
		dom.BlockSpec{ID: "sourceOtherWrapper", Hidden: true},
		dom.BlockSpec{ID: BasinBlock, Hidden: true},
		dom.BlockSpec{ID: BasinTags},
		dom.BlockSpec{ID: ProvinceBlock, Hidden: true},
		dom.BlockSpec{ID: ProvinceTags},
		dom.BlockSpec{ID: LocalBlock, Hidden: true},
		dom.BlockSpec{ID: "resolutionOtherWrapper", Hidden: true},
		dom.BlockSpec{ID: "verticalDatumOtherWrapper", Hidden: true},
		dom.BlockSpec{ID: "coordSysOtherWrapper", Hidden: true},
		dom.BlockSpec{ID: "licenseOtherWrapper", Hidden: true},
	)
	return dom.Template{Controls: controls, Blocks: blocks}
}
