package form

import (
	"context"
	"errors"
	"fmt"

	"go.uber.org/zap"

	"github.com/jateonwr/dem-survey/pkg/remote"
	"github.com/jateonwr/dem-survey/pkg/validation"
)

// Modal and alert texts.
const (
	SubmitTitle   = "ยืนยันการส่งแบบฟอร์ม"
	SubmitMessage = "โปรดตรวจสอบข้อมูลให้ถูกต้อง ก่อนยืนยันการส่งแบบฟอร์ม"
	ResetTitle    = "ยืนยันล้างข้อมูล"
	ResetMessage  = "คุณต้องการล้างค่าทั้งหมดในแบบฟอร์มหรือไม่?"

	AlertUnsuccessful = "บันทึกข้อมูลไม่สำเร็จ กรุณาลองใหม่อีกครั้ง"
	AlertConnection   = "เกิดข้อผิดพลาดในการเชื่อมต่อ"
)

// ErrNoRemote is returned by ConfirmOK when a submission is confirmed on a
// form without an endpoint client.
var ErrNoRemote = errors.New("form: no remote configured")

// Modals presents the confirmation and success dialogs.
type Modals interface {
	OpenConfirm(title, message string)
	CloseConfirm()
	OpenSuccess()
	CloseSuccess()
}

// Alerter shows a blocking message to the user.
type Alerter interface {
	Alert(message string)
}

// AlerterFunc adapts a function to Alerter.
type AlerterFunc func(message string)

// Alert calls fn(message).
func (fn AlerterFunc) Alert(message string) { fn(message) }

type nopModals struct{}

func (nopModals) OpenConfirm(string, string) {}
func (nopModals) CloseConfirm()              {}
func (nopModals) OpenSuccess()               {}
func (nopModals) CloseSuccess()              {}

type nopAlerter struct{}

func (nopAlerter) Alert(string) {}

// Submit validates the form and, when it passes, asks for confirmation. The
// payload is only posted once ConfirmOK runs.
func (f *Form) Submit() validation.Result {
	result := f.Validate()
	if !result.Valid {
		f.logger.Debug("submission blocked by validation", zap.Int("issues", len(result.Issues)))
		return result
	}
	f.confirm(SubmitTitle, SubmitMessage, f.send)
	return result
}

// RequestReset asks for confirmation before clearing the whole form.
func (f *Form) RequestReset() {
	f.confirm(ResetTitle, ResetMessage, func(context.Context) error {
		f.Reset()
		return nil
	})
}

// Pending reports whether a confirmation is waiting.
func (f *Form) Pending() bool { return f.pending != nil }

// ConfirmOK closes the confirmation and runs its pending action once.
func (f *Form) ConfirmOK(ctx context.Context) error {
	action := f.pending
	f.pending = nil
	f.modals.CloseConfirm()
	if action == nil {
		return nil
	}
	return action(ctx)
}

// ConfirmCancel closes the confirmation and drops its pending action.
func (f *Form) ConfirmCancel() {
	f.pending = nil
	f.modals.CloseConfirm()
}

func (f *Form) confirm(title, message string, action func(context.Context) error) {
	f.pending = action
	f.modals.OpenConfirm(title, message)
}

// send posts the collected payload. Failures leave the form untouched and
// raise an alert.
func (f *Form) send(ctx context.Context) error {
	payload := f.Collect()
	if f.checker != nil {
		if err := f.checker.ValidatePayload(payload); err != nil {
			f.logger.Error("payload rejected by contract", zap.Error(err))
			f.alerter.Alert(AlertUnsuccessful)
			return fmt.Errorf("form: %w", err)
		}
	}
	if f.remote == nil {
		f.alerter.Alert(AlertConnection)
		return ErrNoRemote
	}
	if err := f.remote.Submit(ctx, payload); err != nil {
		if errors.Is(err, remote.ErrUnsuccessful) {
			f.logger.Error("submission refused", zap.Error(err))
			f.alerter.Alert(AlertUnsuccessful)
		} else {
			f.logger.Error("submission failed", zap.Error(err))
			f.alerter.Alert(AlertConnection)
		}
		return err
	}
	f.logger.Info("submission accepted", zap.Int("items", len(payload.Items)))
	f.modals.OpenSuccess()
	f.Reset()
	return nil
}
