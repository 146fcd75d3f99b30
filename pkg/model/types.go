package model

// AgencyInfo is the singleton agency section. Every field is required.
type AgencyInfo struct {
	AgencyName      string `json:"agencyName"`
	SubUnit         string `json:"subUnit"`
	ContactName     string `json:"contactName"`
	ContactPosition string `json:"contactPosition"`
	ContactPhone    string `json:"contactPhone"`
	ContactEmail    string `json:"contactEmail"`
}

// DemItem is the serialized form of one repeated dataset block. "Other"
// selections are already resolved to their free-text companions.
type DemItem struct {
	DemName              string   `json:"demName"`
	SourceType           string   `json:"sourceType"`
	Year                 string   `json:"year"`
	CoverageCountry      []string `json:"coverageCountry"`
	CoverageBasinTags    string   `json:"coverageBasinTags"`
	CoverageProvinceTags string   `json:"coverageProvinceTags"`
	CoverageLocal        string   `json:"coverageLocal"`
	Resolution           string   `json:"resolution"`
	VerticalAccuracy     string   `json:"verticalAccuracy"`
	HorizontalAccuracy   string   `json:"horizontalAccuracy"`
	VerticalDatum        string   `json:"verticalDatum"`
	CoordSys             string   `json:"coordSys"`
	DemMethods           []string `json:"demMethods"`
	FileFormats          []string `json:"fileFormats"`
	FileSize             string   `json:"fileSize"`
	FileSizeUnit         string   `json:"fileSizeUnit"`
	License              string   `json:"license"`
	AccessChannels       []string `json:"accessChannels"`
	AccessOther          string   `json:"accessOther"`
	QcQa                 []string `json:"qcQa"`
	QcQaOther            string   `json:"qcQaOther"`
	MainUses             []string `json:"mainUses"`
	MainUsesOther        string   `json:"mainUsesOther"`
	Remark               string   `json:"remark"`
}

// Payload is the body posted to the survey endpoint.
type Payload struct {
	Agency AgencyInfo `json:"agency"`
	Items  []DemItem  `json:"items"`
}

// ReferenceData holds the option lists shared by every item's basin and
// province selectors. Treat it as immutable once fetched.
type ReferenceData struct {
	Basins    []string `json:"basins"`
	Provinces []string `json:"provinces"`
}

// Empty reports whether both lists are empty.
func (r ReferenceData) Empty() bool {
	return len(r.Basins) == 0 && len(r.Provinces) == 0
}
