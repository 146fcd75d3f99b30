package expr

import (
	"testing"

	"github.com/jateonwr/dem-survey/pkg/visibility"
)

func TestEvaluatorSentinelComparison(t *testing.T) {
	t.Parallel()

	ok, err := MustCompile(`value == "other"`).Eval(visibility.TriggerContext("other", false))
	if err != nil {
		t.Fatalf("Eval returned error: %v", err)
	}
	if !ok {
		t.Fatalf("expected true for sentinel value")
	}

	ok, err = MustCompile(`value == other`).Eval(visibility.TriggerContext("srtm", false))
	if err != nil {
		t.Fatalf("Eval returned error: %v", err)
	}
	if ok {
		t.Fatalf("expected false for non-sentinel value")
	}
}

func TestEvaluatorCheckedTruthiness(t *testing.T) {
	t.Parallel()

	ok, err := MustCompile("checked").Eval(visibility.TriggerContext("other", true))
	if err != nil {
		t.Fatalf("Eval returned error: %v", err)
	}
	if !ok {
		t.Fatalf("expected true for checked trigger")
	}

	ok, err = MustCompile("!checked").Eval(visibility.TriggerContext("other", false))
	if err != nil {
		t.Fatalf("Eval returned error: %v", err)
	}
	if !ok {
		t.Fatalf("expected true for !false")
	}
}

func TestEvaluatorTwoSentinels(t *testing.T) {
	t.Parallel()

	rules := []string{
		`value == "lidar_sub1m" || value == "other"`,
		`value in ("lidar_sub1m", 'other')`,
	}
	cases := map[string]bool{
		"lidar_sub1m": true,
		"other":       true,
		"5m":          false,
		"":            false,
	}

	for _, rule := range rules {
		prog, err := Compile(rule)
		if err != nil {
			t.Fatalf("Compile(%q): %v", rule, err)
		}
		for value, want := range cases {
			got, err := prog.Eval(visibility.TriggerContext(value, false))
			if err != nil {
				t.Fatalf("Eval(%q) on %q: %v", rule, value, err)
			}
			if got != want {
				t.Fatalf("rule %q value %q: got %v want %v", rule, value, got, want)
			}
		}
	}
}

func TestEvaluatorExtrasLookup(t *testing.T) {
	t.Parallel()

	ctx := visibility.Context{
		Values: map[string]any{"value": "x"},
		Extras: map[string]any{"item": map[string]any{"country": true}},
	}
	ok, err := MustCompile(`extras.item.country == true && value != ""`).Eval(ctx)
	if err != nil {
		t.Fatalf("Eval returned error: %v", err)
	}
	if !ok {
		t.Fatalf("expected nested extras lookup to succeed")
	}
}

func TestExtraRefsListsReferencedControls(t *testing.T) {
	t.Parallel()

	prog := MustCompile(`checked && !extras.coverageCountry.checked || extras.toggleLocal.checked || extras.coverageCountry.value == "x"`)
	got := prog.ExtraRefs()
	want := []string{"coverageCountry", "toggleLocal"}
	if len(got) != len(want) || got[0] != want[0] || got[1] != want[1] {
		t.Fatalf("ExtraRefs = %v, want %v", got, want)
	}
	if refs := MustCompile(`value == "other"`).ExtraRefs(); len(refs) != 0 {
		t.Fatalf("expected no extras references, got %v", refs)
	}
}

func TestEmptyRuleIsTrue(t *testing.T) {
	t.Parallel()

	prog, err := Compile("   ")
	if err != nil {
		t.Fatalf("Compile: %v", err)
	}
	ok, err := prog.Eval(visibility.Context{})
	if err != nil || !ok {
		t.Fatalf("empty rule should evaluate true, got %v (%v)", ok, err)
	}
}

func TestCompileErrors(t *testing.T) {
	t.Parallel()

	bad := []string{
		`value = "other"`,
		`value == "other`,
		`(value == "other"`,
		`value in "other"`,
		`value in ("a" "b")`,
		`value & checked`,
		`== "x"`,
	}
	for _, rule := range bad {
		if _, err := Compile(rule); err == nil {
			t.Fatalf("expected compile error for %q", rule)
		}
	}
}

func TestMustCompilePanics(t *testing.T) {
	t.Parallel()

	defer func() {
		if recover() == nil {
			t.Fatalf("expected panic")
		}
	}()
	MustCompile(`value ==`)
}
