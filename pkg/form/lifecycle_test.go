package form_test

import (
	"context"
	"math/rand"
	"strconv"
	"testing"

	"github.com/google/go-cmp/cmp"

	"github.com/jateonwr/dem-survey/pkg/form"
	"github.com/jateonwr/dem-survey/pkg/model"
	"github.com/jateonwr/dem-survey/pkg/sections"
)

func assertNumbering(t *testing.T, f *form.Form) {
	t.Helper()
	items := f.Items()
	for i, it := range items {
		want := form.TitlePrefix + strconv.Itoa(i+1)
		if it.Title() != want {
			t.Fatalf("item %d title = %q, want %q", i, it.Title(), want)
		}
		rm := it.Control(form.RemoveButton)
		if rm.Hidden() != (len(items) == 1) {
			t.Fatalf("item %d remove hidden = %v with %d items", i, rm.Hidden(), len(items))
		}
	}
}

func TestAddThenRemoveFirst(t *testing.T) {
	f := newTestForm(t)
	first := f.Items()[0]
	second := f.AddItem()
	if len(f.Items()) != 2 {
		t.Fatalf("items = %d", len(f.Items()))
	}
	assertNumbering(t, f)
	if !first.Control(form.RemoveButton).HasClass("bg-rose-600") || first.Control(form.RemoveButton).HasClass("bg-white") {
		t.Fatalf("remove control should be marked destructive")
	}

	first.Control(form.RemoveButton).Click()

	items := f.Items()
	if len(items) != 1 || items[0] != second {
		t.Fatalf("expected the second item to survive")
	}
	if items[0].Title() != "ชุดข้อมูลที่ 1" {
		t.Fatalf("title = %q", items[0].Title())
	}
	if !items[0].Control(form.RemoveButton).Hidden() {
		t.Fatalf("remove control should be hidden for a single item")
	}
	if items[0].ID() != "item-2" {
		t.Fatalf("stable id changed: %q", items[0].ID())
	}
}

func TestRenumberAfterRandomMutations(t *testing.T) {
	f := newTestForm(t)
	rng := rand.New(rand.NewSource(7))
	for step := 0; step < 200; step++ {
		items := f.Items()
		if rng.Intn(2) == 0 || len(items) == 1 {
			f.AddItem()
		} else {
			items[rng.Intn(len(items))].Control(form.RemoveButton).Click()
		}
		assertNumbering(t, f)
	}
}

func TestLastItemCannotBeRemoved(t *testing.T) {
	f := newTestForm(t)
	only := f.Items()[0]
	if f.RemoveItem(only) {
		t.Fatalf("last item removed")
	}
	only.Control(form.RemoveButton).Click()
	if len(f.Items()) != 1 {
		t.Fatalf("hidden remove control still acted")
	}
}

func TestNewItemStartsFromDefaults(t *testing.T) {
	f := newTestForm(t)
	f.Init(context.Background())
	first := f.Items()[0]
	fillItem(first, "DEM 1")
	first.Control(form.SourceType).Choose("other")
	first.Control(form.SourceOther).Type("ภาพจากโดรน")
	first.Control(form.DemMethodOtherFlag).Check(true)
	first.Control(form.CoverageCountry).Check(true)
	first.Sections().ToggleAll()

	it := f.AddItem()
	for _, id := range []string{form.DemName, form.SourceType, form.Year, form.SourceOther, form.BasinValue, form.ProvinceValue} {
		if got := it.Control(id).Value(); got != "" {
			t.Fatalf("%s = %q on a new item", id, got)
		}
	}
	for _, id := range []string{form.SourceOther, form.DemMethodOther, form.ResolutionOther, form.LicenseOther, form.CoverageLocal} {
		if !it.Control(id).Disabled() {
			t.Fatalf("%s should start disabled", id)
		}
	}
	for _, id := range []string{"sourceOtherWrapper", form.BasinBlock, form.ProvinceBlock, form.LocalBlock} {
		if !it.Block(id).Hidden() {
			t.Fatalf("%s should start hidden", id)
		}
	}
	if it.Control(form.CoverageCountry).Checked() || it.Control(form.ToggleBasin).Disabled() {
		t.Fatalf("coverage should start regional with toggles enabled")
	}
	secs := it.Sections().Sections()
	for i, s := range secs {
		if s.Shown() != (i == 0) {
			t.Fatalf("section %d shown = %v", i, s.Shown())
		}
	}
	if it.Control(form.ToggleAll).Text() != sections.LabelShow {
		t.Fatalf("master label = %q", it.Control(form.ToggleAll).Text())
	}

	// behaviour on the new item is its own
	it.Control(form.SourceType).Choose("other")
	if it.Control(form.SourceOther).Disabled() || it.Block("sourceOtherWrapper").Hidden() {
		t.Fatalf("toggle rule not bound on new item")
	}
	it.Control(form.SourceType).Choose("lidar")
	if first.Control(form.SourceOther).Value() != "ภาพจากโดรน" {
		t.Fatalf("new item's rule touched the first item")
	}
}

func TestPopulateYears(t *testing.T) {
	f := newTestForm(t, form.WithYearRange(2560, 2563))
	year := f.Items()[0].Control(form.Year)
	want := []string{"", "2563", "2562", "2561", "2560"}
	values := func() []string {
		var out []string
		for _, o := range year.Options() {
			out = append(out, o.Value)
		}
		return out
	}
	if diff := cmp.Diff(want, values()); diff != "" {
		t.Fatalf("years mismatch (-want +got):\n%s", diff)
	}
	f.PopulateYears()
	f.AddItem()
	if diff := cmp.Diff(want, values()); diff != "" {
		t.Fatalf("years repopulated (-want +got):\n%s", diff)
	}
}

func TestDefaultYearRange(t *testing.T) {
	f := newTestForm(t)
	opts := f.Items()[0].Control(form.Year).Options()
	if len(opts) != 31 || opts[1].Value != "2568" || opts[30].Value != "2539" {
		t.Fatalf("unexpected default years: %d options", len(opts))
	}
}

func TestReferenceDataKeepsSelection(t *testing.T) {
	remote := &fakeRemote{ref: sampleRef()}
	f := newTestForm(t, form.WithRemote(remote))
	f.Init(context.Background())
	f.Init(context.Background())
	if remote.fetches != 1 {
		t.Fatalf("fetches = %d", remote.fetches)
	}

	it := f.Items()[0]
	sel := it.Control(form.BasinSelect)
	if len(sel.Options()) != 3 {
		t.Fatalf("basin options = %d", len(sel.Options()))
	}
	sel.Choose("ลุ่มน้ำวัง")
	f.ApplyReferenceData()
	if sel.Value() != "ลุ่มน้ำวัง" {
		t.Fatalf("selection lost: %q", sel.Value())
	}

	added := f.AddItem()
	if len(added.Control(form.ProvinceSelect).Options()) != 3 {
		t.Fatalf("new item not populated")
	}
}

func TestSearchFilter(t *testing.T) {
	f := newTestForm(t, form.WithRemote(&fakeRemote{ref: sampleRef()}))
	f.Init(context.Background())
	it := f.Items()[0]

	it.Control(form.ProvinceSearch).Type("  BANG ")
	var visible []string
	for _, o := range it.Control(form.ProvinceSelect).Options() {
		if !o.Hidden {
			visible = append(visible, o.Value)
		}
	}
	if diff := cmp.Diff([]string{"Bangkok"}, visible); diff != "" {
		t.Fatalf("filter mismatch (-want +got):\n%s", diff)
	}

	it.Control(form.ProvinceSearch).Type("")
	for _, o := range it.Control(form.ProvinceSelect).Options() {
		if o.Hidden {
			t.Fatalf("clearing the term should reveal %q", o.Value)
		}
	}
}

func TestCountryWideClearsTagsThroughForm(t *testing.T) {
	f := newTestForm(t, form.WithRemote(&fakeRemote{ref: sampleRef()}))
	f.Init(context.Background())
	it := f.Items()[0]

	it.Control(form.ToggleBasin).Check(true)
	sel := it.Control(form.BasinSelect)
	sel.Choose("ลุ่มน้ำปิง")
	sel.DoubleClick()
	sel.Choose("ลุ่มน้ำยม")
	sel.DoubleClick()
	if got := it.Control(form.BasinValue).Value(); got != "ลุ่มน้ำปิง, ลุ่มน้ำยม" {
		t.Fatalf("hidden value = %q", got)
	}

	it.Control(form.CoverageCountry).Check(true)
	if len(it.Block(form.BasinTags).Children()) != 0 {
		t.Fatalf("basin container not emptied")
	}
	if got := it.Control(form.BasinValue).Value(); got != "" {
		t.Fatalf("hidden value = %q", got)
	}
}

func TestCountryWideItemCollectsNoTags(t *testing.T) {
	f := newTestForm(t, form.WithRemote(&fakeRemote{ref: sampleRef()}))
	f.Init(context.Background())
	it := f.Items()[0]

	it.Control(form.CoverageCountry).Check(true)
	sel := it.Control(form.BasinSelect)
	sel.Choose("ลุ่มน้ำปิง")
	sel.DoubleClick()
	it.Control(form.ProvinceSearch).Type("เชียง")

	item := f.Collect().Items[0]
	if diff := cmp.Diff([]string{model.CountryWideLabel}, item.CoverageCountry); diff != "" {
		t.Fatalf("coverage country mismatch (-want +got):\n%s", diff)
	}
	if item.CoverageBasinTags != "" || item.CoverageProvinceTags != "" {
		t.Fatalf("country-wide item carries tags: basins=%q provinces=%q", item.CoverageBasinTags, item.CoverageProvinceTags)
	}
	if it.Control(form.ProvinceSearch).Value() != "" {
		t.Fatalf("locked search input accepted typing")
	}
}

func TestResetKeepsOneDefaultItem(t *testing.T) {
	f := newTestForm(t, form.WithRemote(&fakeRemote{ref: sampleRef()}))
	f.Init(context.Background())
	fillAgency(f)
	f.Agency().Control(form.AgencyName).ShowError("x")
	fillItem(f.Items()[0], "DEM 1")
	f.AddItem()
	f.AddItem()

	f.Reset()
	items := f.Items()
	if len(items) != 1 {
		t.Fatalf("items = %d", len(items))
	}
	assertNumbering(t, f)
	for _, c := range f.Agency().Controls() {
		if c.Value() != "" || c.HasError() {
			t.Fatalf("agency control %s not cleared", c.ID())
		}
	}
	if items[0].Control(form.DemName).Value() != "" {
		t.Fatalf("item not fresh")
	}
	if len(items[0].Control(form.BasinSelect).Options()) != 3 || len(items[0].Control(form.Year).Options()) != 31 {
		t.Fatalf("reference data or years missing after reset")
	}
}
