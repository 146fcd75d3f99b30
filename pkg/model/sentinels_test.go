package model_test

import (
	"testing"

	"github.com/jateonwr/dem-survey/pkg/model"
)

func TestIsOtherLiteral(t *testing.T) {
	cases := map[string]bool{
		"other":        true,
		" Other ":      true,
		"OTHER":        true,
		"อื่นๆ":        true,
		"อื่นๆ ระบุ":   true,
		"อื่นๆ (ระบุ)": true,
		"":             false,
		"others":       false,
		"geotiff":      false,
	}
	for input, want := range cases {
		if got := model.IsOtherLiteral(input); got != want {
			t.Fatalf("IsOtherLiteral(%q) = %v, want %v", input, got, want)
		}
	}
}

func TestCoverageLabel(t *testing.T) {
	if got := model.CoverageLabel(model.CountryWideValue); got != model.CountryWideLabel {
		t.Fatalf("country-wide label = %q", got)
	}
	if got := model.CoverageLabel("basin_only"); got != "basin_only" {
		t.Fatalf("pass-through label = %q", got)
	}
}
