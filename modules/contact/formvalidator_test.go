package contact_test

import (
	"context"
	"sync"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/dmitrymomot/contactform/modules/contact"
)

// manualScheduler records callbacks until the test fires them.
type manualScheduler struct {
	mu    sync.Mutex
	calls []scheduled
}

type scheduled struct {
	d time.Duration
	f func()
}

func (m *manualScheduler) AfterFunc(d time.Duration, f func()) {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.calls = append(m.calls, scheduled{d: d, f: f})
}

func (m *manualScheduler) durations() []time.Duration {
	m.mu.Lock()
	defer m.mu.Unlock()
	out := make([]time.Duration, len(m.calls))
	for i, c := range m.calls {
		out[i] = c.d
	}
	return out
}

// fire runs the i-th recorded callback.
func (m *manualScheduler) fire(i int) {
	m.mu.Lock()
	f := m.calls[i].f
	m.mu.Unlock()
	f()
}

func newValidator(page *contact.Page) (*contact.FormValidator, *manualScheduler) {
	sched := &manualScheduler{}
	return contact.New(page, contact.WithScheduler(sched)), sched
}

func TestSubmit_InvalidShowsErrorsAndFocusesFirst(t *testing.T) {
	t.Parallel()

	state := contact.FormState{FirstName: "Jane", Email: "abc", Message: "keep me"}
	page := contact.NewPage(state)
	v, sched := newValidator(page)

	res, err := v.Submit(context.Background(), state)
	require.NoError(t, err)
	require.False(t, res.Valid())

	snap := page.Snapshot()
	_, shown := snap.Visible(contact.FirstName)
	assert.False(t, shown)

	msg, shown := snap.Visible(contact.LastName)
	assert.True(t, shown)
	assert.Equal(t, contact.MsgRequired, msg)

	msg, _ = snap.Visible(contact.Email)
	assert.Equal(t, contact.MsgInvalidEmail, msg)
	msg, _ = snap.Visible(contact.QueryType)
	assert.Equal(t, contact.MsgSelectQuery, msg)
	msg, _ = snap.Visible(contact.Consent)
	assert.Equal(t, contact.MsgConsent, msg)

	assert.Equal(t, map[contact.Control]bool{
		contact.FirstName: false,
		contact.LastName:  true,
		contact.Email:     true,
		contact.Message:   false,
	}, snap.AriaInvalid)

	assert.Equal(t, contact.LastName, snap.Focused)
	assert.Equal(t, "keep me", snap.State.Message)
	assert.False(t, snap.ToastShown)
	assert.False(t, v.ToastShown())
	assert.Empty(t, sched.durations())
}

func TestSubmit_RadioGroupFocusTarget(t *testing.T) {
	t.Parallel()

	state := validState()
	state.QueryType = ""
	page := contact.NewPage(state)
	v, _ := newValidator(page)

	_, err := v.Submit(context.Background(), state)
	require.NoError(t, err)

	snap := page.Snapshot()
	assert.Equal(t, contact.QueryType, snap.Focused)
	assert.Equal(t, "query-general", snap.Focused.FocusID())
	_, set := snap.AriaInvalid[contact.QueryType]
	assert.False(t, set)
}

func TestSubmit_ValidShowsToastAndClearsMessage(t *testing.T) {
	t.Parallel()

	state := validState()
	page := contact.NewPage(state)
	v, sched := newValidator(page)

	res, err := v.Submit(context.Background(), state)
	require.NoError(t, err)
	require.True(t, res.Valid())

	snap := page.Snapshot()
	assert.True(t, snap.ToastShown)
	assert.Equal(t, contact.DefaultToastContent, snap.Toast)
	assert.Equal(t, "Message Sent!", snap.Toast.Title)
	assert.Empty(t, snap.State.Message)
	assert.Equal(t, state.FirstName, snap.State.FirstName)
	assert.Equal(t, state.Email, snap.State.Email)
	assert.Equal(t, state.QueryType, snap.State.QueryType)
	assert.True(t, snap.State.Consent)
	assert.Empty(t, snap.Focused)

	for _, c := range contact.Controls() {
		_, shown := snap.Visible(c)
		assert.False(t, shown, c)
	}

	assert.Equal(t, []time.Duration{8000 * time.Millisecond}, sched.durations())
	sched.fire(0)
	assert.False(t, page.Snapshot().ToastShown)
	assert.False(t, v.ToastShown())
}

func TestSubmit_ResubmitClearsFixedErrors(t *testing.T) {
	t.Parallel()

	state := validState()
	state.QueryType = ""
	state.Consent = false
	page := contact.NewPage(state)
	v, _ := newValidator(page)

	_, err := v.Submit(context.Background(), state)
	require.NoError(t, err)
	_, shown := page.Snapshot().Visible(contact.QueryType)
	require.True(t, shown)

	state.QueryType = string(contact.QuerySupport)
	state.Consent = true
	page.SetState(state)
	res, err := v.Submit(context.Background(), page.State())
	require.NoError(t, err)

	assert.True(t, res.Valid())
	snap := page.Snapshot()
	_, shown = snap.Visible(contact.QueryType)
	assert.False(t, shown)
	_, shown = snap.Visible(contact.Consent)
	assert.False(t, shown)
	assert.True(t, snap.ToastShown)
}

func TestSubmit_ToastHidesStack(t *testing.T) {
	t.Parallel()

	state := validState()
	page := contact.NewPage(state)
	v, sched := newValidator(page)

	_, err := v.Submit(context.Background(), state)
	require.NoError(t, err)
	_, err = v.Submit(context.Background(), validState())
	require.NoError(t, err)
	require.Len(t, sched.durations(), 2)

	// The first hide closes the toast even though it was shown again.
	sched.fire(0)
	assert.False(t, page.Snapshot().ToastShown)

	sched.fire(1)
	assert.False(t, page.Snapshot().ToastShown)
}

func TestSubmit_CustomToast(t *testing.T) {
	t.Parallel()

	content := contact.ToastContent{Title: "Thanks", Text: "Bye"}
	page := contact.NewPage(validState())
	sched := &manualScheduler{}
	v := contact.New(page,
		contact.WithScheduler(sched),
		contact.WithToastDuration(time.Second),
		contact.WithToastContent(content),
	)

	_, err := v.Submit(context.Background(), validState())
	require.NoError(t, err)

	assert.Equal(t, content, page.Snapshot().Toast)
	assert.Equal(t, []time.Duration{time.Second}, sched.durations())
}

func TestSubmit_EndedRequestReportsToast(t *testing.T) {
	t.Parallel()

	state := validState()
	page := contact.NewPage(state)
	v, sched := newValidator(page)

	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	res, err := v.Submit(ctx, state)
	assert.True(t, res.Valid())
	require.ErrorIs(t, err, contact.ErrToastNotShown)
	assert.ErrorIs(t, err, context.Canceled)

	snap := page.Snapshot()
	assert.False(t, snap.ToastShown)
	assert.Equal(t, state.Message, snap.State.Message)
	assert.Empty(t, sched.durations())
}

func TestInput_ClearsWithoutRevalidating(t *testing.T) {
	t.Parallel()

	page := contact.NewPage(contact.FormState{})
	v, _ := newValidator(page)
	_, err := v.Submit(context.Background(), contact.FormState{})
	require.NoError(t, err)

	// Still empty, yet the error goes away on input.
	require.NoError(t, v.Input(contact.Email))

	snap := page.Snapshot()
	_, shown := snap.Visible(contact.Email)
	assert.False(t, shown)
	assert.False(t, snap.AriaInvalid[contact.Email])

	_, shown = snap.Visible(contact.FirstName)
	assert.True(t, shown)
	assert.True(t, snap.AriaInvalid[contact.FirstName])
}

func TestSelectQueryTypeAndToggleConsent(t *testing.T) {
	t.Parallel()

	page := contact.NewPage(contact.FormState{})
	v, _ := newValidator(page)
	_, err := v.Submit(context.Background(), contact.FormState{})
	require.NoError(t, err)

	v.SelectQueryType()
	v.ToggleConsent()

	snap := page.Snapshot()
	_, shown := snap.Visible(contact.QueryType)
	assert.False(t, shown)
	_, shown = snap.Visible(contact.Consent)
	assert.False(t, shown)
	_, set := snap.AriaInvalid[contact.Consent]
	assert.False(t, set)
}

func TestInput_UnknownControl(t *testing.T) {
	t.Parallel()

	v, _ := newValidator(contact.NewPage(contact.FormState{}))
	assert.ErrorIs(t, v.Input(contact.Control("phone")), contact.ErrUnknownControl)
}

func TestSubmit_MissingErrorNodeIsTolerated(t *testing.T) {
	t.Parallel()

	page := contact.NewPage(contact.FormState{}, contact.WithoutErrorNode(contact.Email))
	v, _ := newValidator(page)

	res, err := v.Submit(context.Background(), contact.FormState{})
	require.NoError(t, err)
	assert.Equal(t, contact.FirstName, res.First)

	snap := page.Snapshot()
	_, ok := snap.Errors[contact.Email]
	assert.False(t, ok)
	assert.True(t, snap.AriaInvalid[contact.Email])
	assert.NoError(t, v.Input(contact.Email))
}

func TestTimerScheduler_HidesToast(t *testing.T) {
	t.Parallel()

	page := contact.NewPage(validState())
	v := contact.New(page, contact.WithToastDuration(10*time.Millisecond))

	_, err := v.Submit(context.Background(), validState())
	require.NoError(t, err)
	require.True(t, page.Snapshot().ToastShown)

	assert.Eventually(t, func() bool { return !page.Snapshot().ToastShown }, time.Second, 5*time.Millisecond)
	assert.False(t, v.ToastShown())
}
