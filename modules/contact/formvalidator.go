package contact

import (
	"context"
	"sync"
	"time"
)

// FormValidator applies validation results and live-clearing to a Document.
// Its methods and the toast's scheduled hides are serialised.
type FormValidator struct {
	mu    sync.Mutex
	doc   Document
	toast *Toast
}

// Option configures a FormValidator.
type Option func(*options)

type options struct {
	scheduler     Scheduler
	toastDuration time.Duration
	toastContent  ToastContent
}

// WithScheduler sets the scheduler for toast hides. Defaults to TimerScheduler.
func WithScheduler(s Scheduler) Option {
	return func(o *options) {
		if s != nil {
			o.scheduler = s
		}
	}
}

// WithToastDuration overrides DefaultToastDuration.
func WithToastDuration(d time.Duration) Option {
	return func(o *options) {
		if d > 0 {
			o.toastDuration = d
		}
	}
}

// WithToastContent overrides DefaultToastContent.
func WithToastContent(c ToastContent) Option {
	return func(o *options) {
		o.toastContent = c
	}
}

// New creates a FormValidator bound to doc.
func New(doc Document, opts ...Option) *FormValidator {
	o := options{
		scheduler:     TimerScheduler{},
		toastDuration: DefaultToastDuration,
		toastContent:  DefaultToastContent,
	}
	for _, opt := range opts {
		opt(&o)
	}

	v := &FormValidator{doc: doc}
	v.toast = newToast(doc, lockedScheduler{next: o.scheduler, mu: &v.mu}, o.toastDuration, o.toastContent)
	return v
}

// Submit resets all error indicators, validates state and applies the result.
// On failure the first failing control is focused. On success the toast is
// shown and the message field is cleared. The error reports a toast that
// could not be shown; the message is kept in that case.
func (v *FormValidator) Submit(ctx context.Context, state FormState) (Result, error) {
	v.mu.Lock()
	defer v.mu.Unlock()

	for _, c := range documentOrder {
		v.doc.HideError(c)
	}
	for _, c := range TextControls() {
		v.doc.SetInvalid(c, false)
	}

	res := Validate(state)
	if !res.Valid() {
		for _, c := range res.Failed() {
			v.doc.ShowError(c, res.Errors[c])
			if c.IsText() {
				v.doc.SetInvalid(c, true)
			}
		}
		v.doc.Focus(res.First)
		return res, nil
	}

	if err := v.toast.Show(ctx); err != nil {
		return res, err
	}
	v.doc.ClearValue(Message)
	return res, nil
}

// Input clears the error of c after the user edits it. Text fields also get
// aria-invalid reset. Nothing is re-validated.
func (v *FormValidator) Input(c Control) error {
	if _, err := ParseControl(string(c)); err != nil {
		return err
	}

	v.mu.Lock()
	defer v.mu.Unlock()

	v.doc.HideError(c)
	if c.IsText() {
		v.doc.SetInvalid(c, false)
	}
	return nil
}

// SelectQueryType clears the radio group error on any option change.
func (v *FormValidator) SelectQueryType() {
	_ = v.Input(QueryType)
}

// ToggleConsent clears the checkbox error on check and uncheck alike.
func (v *FormValidator) ToggleConsent() {
	_ = v.Input(Consent)
}

// ToastShown reports whether the success toast is visible.
func (v *FormValidator) ToastShown() bool {
	return v.toast.Shown()
}

// lockedScheduler runs callbacks under the validator's mutex.
type lockedScheduler struct {
	next Scheduler
	mu   *sync.Mutex
}

func (s lockedScheduler) AfterFunc(d time.Duration, f func()) {
	s.next.AfterFunc(d, func() {
		s.mu.Lock()
		defer s.mu.Unlock()
		f()
	})
}
