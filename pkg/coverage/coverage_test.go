package coverage_test

import (
	"testing"

	"github.com/jateonwr/dem-survey/pkg/coverage"
	"github.com/jateonwr/dem-survey/pkg/dom"
	"github.com/jateonwr/dem-survey/pkg/tags"
)

type fixture struct {
	frag *dom.Fragment
	ctrl *coverage.Controller
}

func newFixture(t *testing.T) fixture {
	t.Helper()
	options := []dom.Option{{Value: "ปิง"}, {Value: "วัง"}}
	frag := dom.Template{
		Controls: []dom.ControlSpec{
			{ID: "coverageCountry", Kind: dom.KindCheckbox, Value: "thailand_all"},
			{ID: "toggleBasin", Kind: dom.KindCheckbox, Value: "basin"},
			{ID: "toggleProvince", Kind: dom.KindCheckbox, Value: "province"},
			{ID: "toggleLocal", Kind: dom.KindCheckbox, Value: "local"},
			{ID: "basinSelect", Kind: dom.KindSelect, Options: options},
			{ID: "basinHidden", Kind: dom.KindHidden},
			{ID: "provinceSelect", Kind: dom.KindSelect, Options: options},
			{ID: "provinceHidden", Kind: dom.KindHidden},
			{ID: "coverageLocal", Kind: dom.KindText},
		},
		Blocks: []dom.BlockSpec{
			{ID: "basinBlock"}, {ID: "provinceBlock"}, {ID: "localBlock"},
			{ID: "basinTags"}, {ID: "provinceTags"},
		},
	}.Instantiate(dom.NewDocument())

	parts := coverage.Parts{
		Country:        frag.Control("coverageCountry"),
		BasinToggle:    frag.Control("toggleBasin"),
		ProvinceToggle: frag.Control("toggleProvince"),
		LocalToggle:    frag.Control("toggleLocal"),
		BasinBlock:     frag.Block("basinBlock"),
		ProvinceBlock:  frag.Block("provinceBlock"),
		LocalBlock:     frag.Block("localBlock"),
		LocalInput:     frag.Control("coverageLocal"),
		Basins:         tags.Bind(frag.Control("basinSelect"), frag.Block("basinTags"), frag.Control("basinHidden"), nil),
		Provinces:      tags.Bind(frag.Control("provinceSelect"), frag.Block("provinceTags"), frag.Control("provinceHidden"), nil),
		Pickers:        []*dom.Control{frag.Control("basinSelect"), frag.Control("provinceSelect")},
	}
	return fixture{frag: frag, ctrl: coverage.Bind(parts)}
}

func TestInitialRegionalState(t *testing.T) {
	f := newFixture(t)
	if f.ctrl.Mode() != coverage.Regional {
		t.Fatalf("mode = %v", f.ctrl.Mode())
	}
	for _, id := range []string{"basinBlock", "provinceBlock", "localBlock"} {
		if !f.frag.Block(id).Hidden() {
			t.Fatalf("%s should start hidden", id)
		}
	}
	if !f.frag.Control("coverageLocal").Disabled() {
		t.Fatalf("local input should start disabled")
	}
}

func TestBasinAndProvinceIndependent(t *testing.T) {
	f := newFixture(t)
	f.frag.Control("toggleBasin").Check(true)
	f.frag.Control("toggleProvince").Check(true)

	if f.frag.Block("basinBlock").Hidden() || f.frag.Block("provinceBlock").Hidden() {
		t.Fatalf("basin and province blocks may be visible together")
	}
	if !f.frag.Block("localBlock").Hidden() {
		t.Fatalf("local block should stay hidden")
	}
}

func TestCountryWideClearsRegionalState(t *testing.T) {
	f := newFixture(t)
	f.frag.Control("toggleBasin").Check(true)
	sel := f.frag.Control("basinSelect")
	sel.Choose("ปิง")
	sel.DoubleClick()
	sel.Choose("วัง")
	sel.DoubleClick()
	f.frag.Control("toggleLocal").Check(true)
	local := f.frag.Control("coverageLocal")
	local.Type("อ.เมือง")
	local.ShowError("* จำเป็น")

	f.frag.Control("coverageCountry").Check(true)

	if f.ctrl.Mode() != coverage.CountryWide {
		t.Fatalf("mode = %v", f.ctrl.Mode())
	}
	if got := f.frag.Control("basinHidden").Value(); got != "" {
		t.Fatalf("basin hidden = %q", got)
	}
	if n := len(f.frag.Block("basinTags").Children()); n != 0 {
		t.Fatalf("basin container has %d pills", n)
	}
	for _, id := range []string{"toggleBasin", "toggleProvince", "toggleLocal"} {
		c := f.frag.Control(id)
		if c.Checked() || !c.Disabled() {
			t.Fatalf("%s should be unchecked and disabled", id)
		}
	}
	if local.Value() != "" || !local.Disabled() || local.HasError() {
		t.Fatalf("local input should be cleared, disabled, undecorated")
	}
	for _, id := range []string{"basinBlock", "provinceBlock", "localBlock"} {
		if !f.frag.Block(id).Hidden() {
			t.Fatalf("%s should be hidden", id)
		}
	}
}

func TestCountryWideLocksPickers(t *testing.T) {
	f := newFixture(t)
	country := f.frag.Control("coverageCountry")
	country.Check(true)

	sel := f.frag.Control("basinSelect")
	for _, id := range []string{"basinSelect", "provinceSelect"} {
		if !f.frag.Control(id).Disabled() {
			t.Fatalf("%s should be disabled while country-wide", id)
		}
	}
	sel.Choose("ปิง")
	sel.DoubleClick()
	if got := f.frag.Control("basinHidden").Value(); got != "" {
		t.Fatalf("country-wide item gained basin tags %q", got)
	}

	country.Check(false)
	if sel.Disabled() || f.frag.Control("provinceSelect").Disabled() {
		t.Fatalf("pickers should be re-enabled when leaving country-wide")
	}
	f.frag.Control("toggleBasin").Check(true)
	sel.Choose("ปิง")
	sel.DoubleClick()
	if got := f.frag.Control("basinHidden").Value(); got != "ปิง" {
		t.Fatalf("basin hidden = %q", got)
	}
}

func TestLeavingCountryWideDoesNotRestore(t *testing.T) {
	f := newFixture(t)
	f.frag.Control("toggleBasin").Check(true)
	f.frag.Control("coverageCountry").Check(true)
	f.frag.Control("coverageCountry").Check(false)

	basin := f.frag.Control("toggleBasin")
	if basin.Disabled() {
		t.Fatalf("toggles should be re-enabled")
	}
	if basin.Checked() {
		t.Fatalf("toggle checked state must not be restored")
	}
	if !f.frag.Block("basinBlock").Hidden() {
		t.Fatalf("basin block should follow its unchecked toggle")
	}
}

func TestUncheckingLocalClearsInput(t *testing.T) {
	f := newFixture(t)
	f.frag.Control("toggleLocal").Check(true)
	local := f.frag.Control("coverageLocal")
	if local.Disabled() {
		t.Fatalf("local input should be enabled")
	}
	local.Type("ต.บางรัก")
	f.frag.Control("toggleLocal").Check(false)
	if local.Value() != "" || !local.Disabled() {
		t.Fatalf("local input should be cleared and disabled")
	}
}

func TestModeIsFunctionOfToggles(t *testing.T) {
	f := newFixture(t)
	country := f.frag.Control("coverageCountry")
	for i := 0; i < 6; i++ {
		country.Check(i%2 == 0)
		want := coverage.Regional
		if country.Checked() {
			want = coverage.CountryWide
		}
		if f.ctrl.Mode() != want {
			t.Fatalf("iteration %d: mode %v want %v", i, f.ctrl.Mode(), want)
		}
		f.ctrl.Update()
		if f.ctrl.Mode() != want {
			t.Fatalf("iteration %d: update changed mode", i)
		}
	}
}
