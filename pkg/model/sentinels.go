package model

import "strings"

const (
	// OtherValue is the option value that reveals a free-text companion.
	OtherValue = "other"
	// LidarSubMeterValue is the second resolution value that needs free text.
	LidarSubMeterValue = "lidar_sub1m"
	// CountryWideValue is the coverage checkbox value for the whole country.
	CountryWideValue = "thailand_all"
	// CountryWideLabel replaces CountryWideValue in the payload.
	CountryWideLabel = "ทั่วประเทศ"
	// TagSeparator joins tag values in their hidden field.
	TagSeparator = ", "
)

var otherLiterals = map[string]struct{}{
	"other":       {},
	"อื่นๆ":       {},
	"อื่นๆระบุ":   {},
	"อื่นๆ(ระบุ)": {},
}

// IsOtherLiteral reports whether value spells "other" once lower-cased and
// stripped of whitespace.
func IsOtherLiteral(value string) bool {
	if value == "" {
		return false
	}
	normalized := strings.Join(strings.Fields(strings.ToLower(value)), "")
	_, ok := otherLiterals[normalized]
	return ok
}

// CoverageLabel translates the country-wide value into its display string
// and passes every other value through.
func CoverageLabel(value string) string {
	if value == CountryWideValue {
		return CountryWideLabel
	}
	return value
}
