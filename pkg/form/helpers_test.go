package form_test

import (
	"context"
	"fmt"
	"testing"

	"github.com/jateonwr/dem-survey/pkg/form"
	"github.com/jateonwr/dem-survey/pkg/model"
)

type fakeRemote struct {
	ref       model.ReferenceData
	fetchErr  error
	fetches   int
	submitErr error
	submitted []model.Payload
}

func (r *fakeRemote) FetchReferenceData(context.Context) (model.ReferenceData, error) {
	r.fetches++
	return r.ref, r.fetchErr
}

func (r *fakeRemote) Submit(_ context.Context, payload model.Payload) error {
	r.submitted = append(r.submitted, payload)
	return r.submitErr
}

type recorder struct {
	calls  []string
	alerts []string
}

func (r *recorder) OpenConfirm(title, _ string) { r.calls = append(r.calls, "confirm:"+title) }
func (r *recorder) CloseConfirm()               { r.calls = append(r.calls, "close-confirm") }
func (r *recorder) OpenSuccess()                { r.calls = append(r.calls, "success") }
func (r *recorder) CloseSuccess()               { r.calls = append(r.calls, "close-success") }
func (r *recorder) Alert(message string)        { r.alerts = append(r.alerts, message) }

func (r *recorder) saw(call string) bool {
	for _, c := range r.calls {
		if c == call {
			return true
		}
	}
	return false
}

func sequentialIDs() form.Option {
	n := 0
	return form.WithIDGenerator(func() string {
		n++
		return fmt.Sprintf("item-%d", n)
	})
}

func newTestForm(t *testing.T, options ...form.Option) *form.Form {
	t.Helper()
	return form.New(append([]form.Option{sequentialIDs()}, options...)...)
}

func fillAgency(f *form.Form) {
	a := f.Agency()
	a.Control(form.AgencyName).Type("กรมพัฒนาที่ดิน")
	a.Control(form.SubUnit).Type("กองสำรวจดิน")
	a.Control(form.ContactName).Type("สมชาย ใจดี")
	a.Control(form.ContactPosition).Type("นักสำรวจ")
	a.Control(form.ContactPhone).Type("025791234")
	a.Control(form.ContactEmail).Type("somchai@example.go.th")
}

func fillItem(it *form.Item, name string) {
	it.Control(form.DemName).Type(name)
	it.Control(form.SourceType).Choose("lidar")
	it.Control(form.Year).Choose("2566")
}

func sampleRef() model.ReferenceData {
	return model.ReferenceData{
		Basins:    []string{"ลุ่มน้ำปิง", "ลุ่มน้ำวัง", "ลุ่มน้ำยม"},
		Provinces: []string{"เชียงใหม่", "ลำพูน", "Bangkok"},
	}
}
