// Package tui drives the survey form from a terminal. A Session walks the
// agency section and each item with survey prompts, forwarding every answer
// to the form engine as the matching user gesture, and plays the part of the
// confirmation/success modals and the alert box.
package tui

import (
	"context"
	"fmt"
	"io"

	"go.uber.org/zap"

	"github.com/jateonwr/dem-survey/pkg/dom"
	"github.com/jateonwr/dem-survey/pkg/form"
	"github.com/jateonwr/dem-survey/pkg/tags"
)

// Menu and message texts.
const (
	MenuPrompt   = "เลือกรายการ"
	MenuAgency   = "ข้อมูลหน่วยงาน"
	MenuAdd      = "เพิ่มชุดข้อมูล"
	MenuRemove   = "ลบชุดข้อมูล"
	MenuSubmit   = "ส่งแบบฟอร์ม"
	MenuReset    = "ล้างแบบฟอร์ม"
	MenuExit     = "ออก"
	SuccessText  = "บันทึกข้อมูลเรียบร้อยแล้ว"
	editPrefix   = "แก้ไข "
	coverageMode = "ขอบเขตพื้นที่"
)

type confirmation struct {
	title   string
	message string
}

type action func(ctx context.Context, f *form.Form) (done bool, err error)

// Session is an interactive front end. It satisfies form.Modals and
// form.Alerter; pass it to form.New with form.WithModals and
// form.WithAlerter before calling Run.
type Session struct {
	driver  PromptDriver
	out     io.Writer
	theme   Theme
	logger  *zap.Logger
	confirm *confirmation
	alerts  []string
	success bool
}

var (
	_ form.Modals  = (*Session)(nil)
	_ form.Alerter = (*Session)(nil)
)

// NewSession builds a session. Without WithPromptDriver it prompts on the
// real terminal.
func NewSession(options ...Option) *Session {
	s := &Session{logger: zap.NewNop()}
	for _, opt := range options {
		if opt != nil {
			opt(s)
		}
	}
	if s.driver == nil {
		s.driver = NewSurveyDriver(s.out)
	}
	return s
}

// OpenConfirm records the confirmation the next prompt should ask.
func (s *Session) OpenConfirm(title, message string) {
	s.confirm = &confirmation{title: title, message: message}
}

// CloseConfirm drops any open confirmation.
func (s *Session) CloseConfirm() { s.confirm = nil }

// OpenSuccess prints the success notice.
func (s *Session) OpenSuccess() {
	s.success = true
	s.info(context.Background(), s.theme.SuccessPrefix+SuccessText)
}

// CloseSuccess dismisses the success notice.
func (s *Session) CloseSuccess() { s.success = false }

// Alert prints a blocking error message.
func (s *Session) Alert(message string) {
	s.alerts = append(s.alerts, message)
	s.info(context.Background(), s.theme.ErrorPrefix+message)
}

// Alerts returns every alert raised so far.
func (s *Session) Alerts() []string { return append([]string(nil), s.alerts...) }

// Succeeded reports whether the success notice is showing.
func (s *Session) Succeeded() bool { return s.success }

// Run loads reference data and loops over the main menu until the user
// exits or a prompt fails.
func (s *Session) Run(ctx context.Context, f *form.Form) error {
	if f == nil {
		return ErrNoForm
	}
	f.Init(ctx)
	for {
		labels, actions := s.menu(f)
		idx, err := s.driver.Select(ctx, SelectConfig{Message: MenuPrompt, Options: labels, PageSize: len(labels)})
		if err != nil {
			return err
		}
		if idx < 0 || idx >= len(actions) {
			continue
		}
		s.CloseSuccess()
		done, err := actions[idx](ctx, f)
		if err != nil {
			return err
		}
		if done {
			return nil
		}
	}
}

func (s *Session) menu(f *form.Form) ([]string, []action) {
	labels := []string{MenuAgency}
	actions := []action{s.editAgency}
	for _, it := range f.Items() {
		item := it
		labels = append(labels, editPrefix+item.Title())
		actions = append(actions, func(ctx context.Context, _ *form.Form) (bool, error) {
			return false, s.editItem(ctx, item)
		})
	}
	labels = append(labels, MenuAdd)
	actions = append(actions, func(ctx context.Context, f *form.Form) (bool, error) {
		return false, s.editItem(ctx, f.AddItem())
	})
	if len(f.Items()) > 1 {
		labels = append(labels, MenuRemove)
		actions = append(actions, s.removeItem)
	}
	labels = append(labels, MenuSubmit, MenuReset, MenuExit)
	actions = append(actions, s.submit, s.reset, func(context.Context, *form.Form) (bool, error) {
		return true, nil
	})
	return labels, actions
}

func (s *Session) editAgency(ctx context.Context, f *form.Form) (bool, error) {
	for _, c := range f.Agency().Controls() {
		if err := s.text(ctx, c); err != nil {
			return false, err
		}
	}
	return false, nil
}

func (s *Session) removeItem(ctx context.Context, f *form.Form) (bool, error) {
	items := f.Items()
	labels := make([]string, len(items))
	for i, it := range items {
		labels[i] = it.Title()
	}
	idx, err := s.driver.Select(ctx, SelectConfig{Message: MenuRemove, Options: labels})
	if err != nil {
		return false, err
	}
	if idx >= 0 && idx < len(items) {
		items[idx].Control(form.RemoveButton).Click()
	}
	return false, nil
}

func (s *Session) submit(ctx context.Context, f *form.Form) (bool, error) {
	result := f.Submit()
	if !result.Valid {
		for _, issue := range result.Issues {
			s.info(ctx, fmt.Sprintf("%s%s: %s", s.theme.ErrorPrefix, labelFor(issue.Field), issue.Message))
		}
		return false, nil
	}
	return false, s.resolveConfirm(ctx, f)
}

func (s *Session) reset(ctx context.Context, f *form.Form) (bool, error) {
	f.RequestReset()
	return false, s.resolveConfirm(ctx, f)
}

// resolveConfirm asks the open confirmation, if any, and forwards the answer.
func (s *Session) resolveConfirm(ctx context.Context, f *form.Form) error {
	pending := s.confirm
	if pending == nil {
		return nil
	}
	ok, err := s.driver.Confirm(ctx, ConfirmConfig{Message: pending.title, Help: pending.message})
	if err != nil {
		f.ConfirmCancel()
		return err
	}
	if !ok {
		f.ConfirmCancel()
		return nil
	}
	if err := f.ConfirmOK(ctx); err != nil {
		// already surfaced through Alert; the form keeps its state for a retry
		s.logger.Warn("confirmed action failed", zap.Error(err))
	}
	return nil
}

func (s *Session) editItem(ctx context.Context, it *form.Item) error {
	if it == nil {
		return nil
	}
	frag := it.Fragment()
	steps := []func() error{
		func() error { return s.text(ctx, it.Control(form.DemName)) },
		func() error { return s.choose(ctx, it.Control(form.SourceType)) },
		func() error { return s.text(ctx, it.Control(form.SourceOther)) },
		func() error { return s.choose(ctx, it.Control(form.Year)) },
		func() error { return s.coverage(ctx, it) },
		func() error { return s.choose(ctx, it.Control(form.Resolution)) },
		func() error { return s.text(ctx, it.Control(form.ResolutionOther)) },
		func() error { return s.text(ctx, it.Control(form.VerticalAccuracy)) },
		func() error { return s.text(ctx, it.Control(form.HorizontalAccuracy)) },
		func() error { return s.choose(ctx, it.Control(form.VerticalDatum)) },
		func() error { return s.text(ctx, it.Control(form.VerticalDatumOther)) },
		func() error { return s.choose(ctx, it.Control(form.CoordSys)) },
		func() error { return s.text(ctx, it.Control(form.CoordSysOther)) },
		func() error { return s.group(ctx, frag, form.DemMethodGroup) },
		func() error { return s.text(ctx, it.Control(form.DemMethodOther)) },
		func() error { return s.group(ctx, frag, form.FormatGroup) },
		func() error { return s.text(ctx, it.Control(form.FormatOther)) },
		func() error { return s.text(ctx, it.Control(form.FileSize)) },
		func() error { return s.choose(ctx, it.Control(form.FileSizeUnit)) },
		func() error { return s.choose(ctx, it.Control(form.License)) },
		func() error { return s.text(ctx, it.Control(form.LicenseOther)) },
		func() error { return s.group(ctx, frag, form.AccessGroup) },
		func() error { return s.text(ctx, it.Control(form.AccessOther)) },
		func() error { return s.group(ctx, frag, form.QcGroup) },
		func() error { return s.text(ctx, it.Control(form.QcOther)) },
		func() error { return s.group(ctx, frag, form.UseGroup) },
		func() error { return s.text(ctx, it.Control(form.UseOther)) },
		func() error { return s.textArea(ctx, it.Control(form.Remark)) },
	}
	s.info(ctx, s.theme.InfoPrefix+it.Title())
	for _, step := range steps {
		if err := step(); err != nil {
			return err
		}
	}
	return nil
}

func (s *Session) coverage(ctx context.Context, it *form.Item) error {
	country := it.Control(form.CoverageCountry)
	whole, err := s.driver.Confirm(ctx, ConfirmConfig{Message: labelFor(form.CoverageCountry), Default: country.Checked()})
	if err != nil {
		return err
	}
	if whole != country.Checked() {
		country.Check(whole)
	}
	if whole {
		return nil
	}

	toggles := []*dom.Control{it.Control(form.ToggleBasin), it.Control(form.ToggleProvince), it.Control(form.ToggleLocal)}
	labels := []string{labelFor(form.BasinSelect), labelFor(form.ProvinceSelect), labelFor(form.CoverageLocal)}
	var defaults []int
	for i, t := range toggles {
		if t.Checked() {
			defaults = append(defaults, i)
		}
	}
	picked, err := s.driver.MultiSelect(ctx, SelectConfig{Message: coverageMode, Options: labels, Defaults: defaults})
	if err != nil {
		return err
	}
	selected := indexSet(picked)
	for i, t := range toggles {
		if _, want := selected[i]; want != t.Checked() {
			t.Check(want)
		}
	}

	if toggles[0].Checked() {
		if err := s.tags(ctx, it.Control(form.BasinSelect), it.Basins()); err != nil {
			return err
		}
	}
	if toggles[1].Checked() {
		if err := s.tags(ctx, it.Control(form.ProvinceSelect), it.Provinces()); err != nil {
			return err
		}
	}
	return s.text(ctx, it.Control(form.CoverageLocal))
}

// text prompts for an enabled text-like control and replays the answer as
// focus, typing, and blur.
func (s *Session) text(ctx context.Context, c *dom.Control) error {
	if c == nil || c.Disabled() {
		return nil
	}
	value, err := s.driver.Input(ctx, InputConfig{Message: labelFor(c.ID()), Default: c.Value(), Help: c.ErrorMessage()})
	if err != nil {
		return err
	}
	c.Focus()
	c.Type(value)
	c.Blur()
	return nil
}

func (s *Session) textArea(ctx context.Context, c *dom.Control) error {
	if c == nil || c.Disabled() {
		return nil
	}
	value, err := s.driver.TextArea(ctx, TextAreaConfig{Message: labelFor(c.ID()), Default: c.Value()})
	if err != nil {
		return err
	}
	c.Type(value)
	return nil
}

// choose prompts over the visible options of a select control.
func (s *Session) choose(ctx context.Context, c *dom.Control) error {
	if c == nil || c.Disabled() {
		return nil
	}
	var (
		visible []dom.Option
		labels  []string
	)
	current := 0
	for _, opt := range c.Options() {
		if opt.Hidden {
			continue
		}
		if opt.Value == c.Value() {
			current = len(visible)
		}
		visible = append(visible, opt)
		labels = append(labels, opt.Text())
	}
	if len(visible) == 0 {
		s.info(ctx, s.theme.InfoPrefix+labelFor(c.ID())+": ไม่มีตัวเลือก")
		return nil
	}
	idx, err := s.driver.Select(ctx, SelectConfig{Message: labelFor(c.ID()), Options: labels, DefaultIndex: current})
	if err != nil {
		return err
	}
	if idx >= 0 && idx < len(visible) {
		c.Choose(visible[idx].Value)
	}
	return nil
}

// group prompts over a checkbox group and checks or unchecks each member to
// match the answer.
func (s *Session) group(ctx context.Context, frag *dom.Fragment, name string) error {
	members := frag.Group(name)
	if len(members) == 0 {
		return nil
	}
	labels := make([]string, len(members))
	var defaults []int
	for i, c := range members {
		labels[i] = c.Attr("label")
		if labels[i] == "" {
			labels[i] = c.Value()
		}
		if c.Checked() {
			defaults = append(defaults, i)
		}
	}
	picked, err := s.driver.MultiSelect(ctx, SelectConfig{Message: labelFor(name), Options: labels, Defaults: defaults})
	if err != nil {
		return err
	}
	selected := indexSet(picked)
	for i, c := range members {
		if _, want := selected[i]; want != c.Checked() {
			c.Check(want)
		}
	}
	return nil
}

// tags reconciles a tag widget with a multi-select answer: dropped values
// are removed, new ones are picked with the selector's double activation.
func (s *Session) tags(ctx context.Context, sel *dom.Control, widget *tags.Widget) error {
	if sel == nil || widget == nil {
		return nil
	}
	options := sel.Options()
	if len(options) == 0 {
		s.info(ctx, s.theme.InfoPrefix+labelFor(sel.ID())+": ไม่มีตัวเลือก")
		return nil
	}
	current := make(map[string]struct{})
	for _, v := range widget.Values() {
		current[v] = struct{}{}
	}
	labels := make([]string, len(options))
	var defaults []int
	for i, opt := range options {
		labels[i] = opt.Text()
		if _, ok := current[opt.Value]; ok {
			defaults = append(defaults, i)
		}
	}
	picked, err := s.driver.MultiSelect(ctx, SelectConfig{Message: labelFor(sel.ID()), Options: labels, Defaults: defaults, PageSize: 15})
	if err != nil {
		return err
	}
	selected := indexSet(picked)
	for i, opt := range options {
		_, want := selected[i]
		_, have := current[opt.Value]
		switch {
		case have && !want:
			widget.Remove(opt.Value)
		case want && !have:
			sel.Choose(opt.Value)
			sel.DoubleClick()
		}
	}
	return nil
}

func (s *Session) info(ctx context.Context, msg string) {
	if err := s.driver.Info(ctx, msg); err != nil {
		s.logger.Debug("info message dropped", zap.Error(err))
	}
}

func indexSet(indices []int) map[int]struct{} {
	out := make(map[int]struct{}, len(indices))
	for _, i := range indices {
		out[i] = struct{}{}
	}
	return out
}
