package tui_test

import (
	"context"
	"errors"
	"strings"
	"testing"

	"github.com/google/go-cmp/cmp"

	"github.com/jateonwr/dem-survey/pkg/form"
	"github.com/jateonwr/dem-survey/pkg/model"
	"github.com/jateonwr/dem-survey/pkg/renderers/tui"
)

var errExhausted = errors.New("stub: script exhausted")

type stubDriver struct {
	inputs    []string
	confirms  []bool
	selects   []int
	multis    [][]int
	textAreas []string

	prompts []string
	infos   []string
}

func (s *stubDriver) Input(_ context.Context, cfg tui.InputConfig) (string, error) {
	s.prompts = append(s.prompts, "input:"+cfg.Message)
	if len(s.inputs) == 0 {
		return "", errExhausted
	}
	v := s.inputs[0]
	s.inputs = s.inputs[1:]
	return v, nil
}

func (s *stubDriver) Confirm(_ context.Context, cfg tui.ConfirmConfig) (bool, error) {
	s.prompts = append(s.prompts, "confirm:"+cfg.Message)
	if len(s.confirms) == 0 {
		return false, errExhausted
	}
	v := s.confirms[0]
	s.confirms = s.confirms[1:]
	return v, nil
}

func (s *stubDriver) Select(_ context.Context, cfg tui.SelectConfig) (int, error) {
	s.prompts = append(s.prompts, "select:"+cfg.Message)
	if len(s.selects) == 0 {
		return 0, errExhausted
	}
	v := s.selects[0]
	s.selects = s.selects[1:]
	return v, nil
}

func (s *stubDriver) MultiSelect(_ context.Context, cfg tui.SelectConfig) ([]int, error) {
	s.prompts = append(s.prompts, "multi:"+cfg.Message)
	if len(s.multis) == 0 {
		return nil, errExhausted
	}
	v := s.multis[0]
	s.multis = s.multis[1:]
	return v, nil
}

func (s *stubDriver) TextArea(_ context.Context, cfg tui.TextAreaConfig) (string, error) {
	s.prompts = append(s.prompts, "textarea:"+cfg.Message)
	if len(s.textAreas) == 0 {
		return "", errExhausted
	}
	v := s.textAreas[0]
	s.textAreas = s.textAreas[1:]
	return v, nil
}

func (s *stubDriver) Info(_ context.Context, msg string) error {
	s.infos = append(s.infos, msg)
	return nil
}

func (s *stubDriver) sawInfo(substr string) bool {
	for _, msg := range s.infos {
		if strings.Contains(msg, substr) {
			return true
		}
	}
	return false
}

type fakeRemote struct {
	submitErr error
	submitted []model.Payload
}

func (r *fakeRemote) FetchReferenceData(context.Context) (model.ReferenceData, error) {
	return model.ReferenceData{
		Basins:    []string{"ลุ่มน้ำปิง", "ลุ่มน้ำวัง"},
		Provinces: []string{"เชียงใหม่", "ลำพูน"},
	}, nil
}

func (r *fakeRemote) Submit(_ context.Context, payload model.Payload) error {
	r.submitted = append(r.submitted, payload)
	return r.submitErr
}

func newSessionForm(driver *stubDriver, remote form.Remote) (*tui.Session, *form.Form) {
	session := tui.NewSession(tui.WithPromptDriver(driver), tui.WithTheme(tui.Theme{ErrorPrefix: "! ", SuccessPrefix: "✓ "}))
	f := form.New(form.WithRemote(remote), form.WithModals(session), form.WithAlerter(session))
	return session, f
}

func TestSessionFillsAndSubmits(t *testing.T) {
	driver := &stubDriver{
		inputs: []string{
			"กรมพัฒนาที่ดิน", "กองสำรวจดิน", "สมชาย ใจดี", "นักสำรวจ", "025791234", "somchai@example.go.th",
			"DEM ลุ่มน้ำปิง", "โดรน", "0.5", "1.0", "12", "FTP",
		},
		// menu, item selects in prompt order, then submit and exit
		selects:   []int{0, 1, 6, 3, 3, 1, 1, 1, 1, 3, 5},
		confirms:  []bool{false, true},
		multis:    [][]int{{0}, {0, 1}, {1}, {0}, {0, 4}, {}, {0}},
		textAreas: []string{"ok"},
	}
	remote := &fakeRemote{}
	session, f := newSessionForm(driver, remote)

	if err := session.Run(context.Background(), f); err != nil {
		t.Fatalf("Run: %v\nprompts: %v", err, driver.prompts)
	}
	if len(remote.submitted) != 1 {
		t.Fatalf("expected one submission, got %d", len(remote.submitted))
	}

	got := remote.submitted[0]
	if got.Agency.ContactPhone != "02-579-1234" {
		t.Fatalf("phone = %q", got.Agency.ContactPhone)
	}
	item := got.Items[0]
	want := model.DemItem{
		DemName:              "DEM ลุ่มน้ำปิง",
		SourceType:           "โดรน",
		Year:                 "2566",
		CoverageCountry:      item.CoverageCountry,
		CoverageBasinTags:    "ลุ่มน้ำปิง, ลุ่มน้ำวัง",
		Resolution:           "2m",
		VerticalAccuracy:     "0.5",
		HorizontalAccuracy:   "1.0",
		VerticalDatum:        "msl",
		CoordSys:             "utm47n_wgs84",
		DemMethods:           []string{"lidar"},
		FileFormats:          []string{"geotiff"},
		FileSize:             "12",
		FileSizeUnit:         "GB",
		License:              "open",
		AccessChannels:       []string{"download", "FTP"},
		AccessOther:          "FTP",
		QcQa:                 []string{},
		MainUses:             []string{"flood"},
		Remark:               "ok",
	}
	if diff := cmp.Diff(want, item); diff != "" {
		t.Fatalf("item mismatch (-want +got):\n%s", diff)
	}

	if !driver.sawInfo("✓ " + tui.SuccessText) {
		t.Fatalf("expected success notice, infos: %v", driver.infos)
	}
	if v := f.Items()[0].Control(form.DemName).Value(); v != "" {
		t.Fatalf("form should be reset after success, demName = %q", v)
	}
}

func TestSessionReportsValidationIssues(t *testing.T) {
	driver := &stubDriver{selects: []int{3, 5}}
	remote := &fakeRemote{}
	session, f := newSessionForm(driver, remote)

	if err := session.Run(context.Background(), f); err != nil {
		t.Fatalf("Run: %v", err)
	}
	if len(remote.submitted) != 0 {
		t.Fatalf("invalid form must not be submitted")
	}
	if !driver.sawInfo("! ชื่อหน่วยงาน: " + "* จำเป็น (โปรดระบุ)") {
		t.Fatalf("expected agency name issue, infos: %v", driver.infos)
	}
	if f.Pending() {
		t.Fatalf("no confirmation should be pending")
	}
}

func TestSessionFailedSubmissionAlerts(t *testing.T) {
	driver := &stubDriver{
		inputs: []string{
			"กรมพัฒนาที่ดิน", "กองสำรวจดิน", "สมชาย ใจดี", "นักสำรวจ", "0812345678", "a@b.th",
			"DEM", "", "", "",
		},
		selects:   []int{0, 1, 2, 1, 0, 0, 0, 0, 0, 3, 5},
		confirms:  []bool{true, true},
		multis:    [][]int{{}, {}, {}, {}, {}},
		textAreas: []string{""},
	}
	remote := &fakeRemote{submitErr: errors.New("dial tcp: refused")}
	session, f := newSessionForm(driver, remote)

	if err := session.Run(context.Background(), f); err != nil {
		t.Fatalf("Run: %v\nprompts: %v", err, driver.prompts)
	}
	if diff := cmp.Diff([]string{form.AlertConnection}, session.Alerts()); diff != "" {
		t.Fatalf("alerts mismatch (-want +got):\n%s", diff)
	}
	if v := f.Items()[0].Control(form.DemName).Value(); v != "DEM" {
		t.Fatalf("form state should survive a failed submission, demName = %q", v)
	}
}

func TestSessionResetAndRemove(t *testing.T) {
	driver := &stubDriver{
		// add item (then abort editing it), remove the first, reset, exit
		selects: []int{2},
		inputs:  []string{},
	}
	session, f := newSessionForm(driver, &fakeRemote{})
	err := session.Run(context.Background(), f)
	if !errors.Is(err, errExhausted) {
		t.Fatalf("expected script exhaustion while editing the new item, got %v", err)
	}
	if len(f.Items()) != 2 {
		t.Fatalf("expected two items, got %d", len(f.Items()))
	}

	// remove the first of two items, then reset from the shorter menu
	driver.selects = []int{4, 0, 4, 5}
	driver.confirms = []bool{true}
	if err := session.Run(context.Background(), f); err != nil {
		t.Fatalf("Run: %v", err)
	}
	if len(f.Items()) != 1 {
		t.Fatalf("expected a single item after reset, got %d", len(f.Items()))
	}
	if f.Items()[0].Title() != form.TitlePrefix+"1" {
		t.Fatalf("title = %q", f.Items()[0].Title())
	}
}

func TestSessionRequiresForm(t *testing.T) {
	session := tui.NewSession(tui.WithPromptDriver(&stubDriver{}))
	if err := session.Run(context.Background(), nil); !errors.Is(err, tui.ErrNoForm) {
		t.Fatalf("expected ErrNoForm, got %v", err)
	}
}
