package contact

import (
	"context"
	"errors"
	"time"

	"github.com/dmitrymomot/contactform/pkg/statemachine"
)

// DefaultToastDuration is how long the success toast stays visible.
const DefaultToastDuration = 8000 * time.Millisecond

// ToastContent is the text of the success toast.
type ToastContent struct {
	Title string
	Text  string
}

// DefaultToastContent is shown after a successful submission.
var DefaultToastContent = ToastContent{
	Title: "Message Sent!",
	Text:  "Thanks for completing the form. We’ll be in touch soon!",
}

var (
	ToastHidden = statemachine.StringState("hidden")
	ToastShown  = statemachine.StringState("shown")

	toastShow = statemachine.StringEvent("show")
	toastHide = statemachine.StringEvent("hide")
)

// Toast is the success notification. Every Show schedules its own Hide;
// earlier hides are not cancelled, so a hide due from an older Show may
// close a toast shown again later.
type Toast struct {
	sm        statemachine.StateMachine
	scheduler Scheduler
	duration  time.Duration
	content   ToastContent
}

func newToast(doc Document, scheduler Scheduler, duration time.Duration, content ToastContent) *Toast {
	show := func(context.Context, statemachine.State, statemachine.State, statemachine.Event, any) error {
		doc.ShowToast(content)
		return nil
	}
	hide := func(context.Context, statemachine.State, statemachine.State, statemachine.Event, any) error {
		doc.HideToast()
		return nil
	}
	// A request that has already ended has no page left to show the toast on.
	live := func(ctx context.Context, _ statemachine.State, _ statemachine.Event, _ any) bool {
		return ctx.Err() == nil
	}

	return &Toast{
		sm: statemachine.MustNew(ToastHidden,
			statemachine.WithTransition(ToastHidden, ToastShown, toastShow, statemachine.WithGuard(live), statemachine.WithAction(show)),
			statemachine.WithTransition(ToastShown, ToastShown, toastShow, statemachine.WithGuard(live), statemachine.WithAction(show)),
			statemachine.WithTransition(ToastShown, ToastHidden, toastHide, statemachine.WithAction(hide)),
			statemachine.WithTransition(ToastHidden, ToastHidden, toastHide),
		),
		scheduler: scheduler,
		duration:  duration,
		content:   content,
	}
}

// Show displays the toast and schedules a Hide after the toast duration.
// It fails with ErrToastNotShown once ctx is done.
func (t *Toast) Show(ctx context.Context) error {
	if err := t.sm.Fire(ctx, toastShow, nil); err != nil {
		return errors.Join(ErrToastNotShown, ctx.Err(), err)
	}
	t.scheduler.AfterFunc(t.duration, func() {
		_ = t.Hide(context.Background())
	})
	return nil
}

// Hide hides the toast. Hiding a hidden toast does nothing.
func (t *Toast) Hide(ctx context.Context) error {
	return t.sm.Fire(ctx, toastHide, nil)
}

// Shown reports whether the toast is visible.
func (t *Toast) Shown() bool {
	return t.sm.Current() == ToastShown
}
