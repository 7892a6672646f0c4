package contact_test

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/dmitrymomot/contactform/modules/contact"
)

// fakeClock advances instantly whenever the queue waits.
type fakeClock struct {
	now   time.Time
	waits []time.Duration
}

func (c *fakeClock) Now() time.Time { return c.now }

func (c *fakeClock) After(d time.Duration) <-chan time.Time {
	c.waits = append(c.waits, d)
	c.now = c.now.Add(d)
	ch := make(chan time.Time, 1)
	ch <- c.now
	return ch
}

func TestQueueScheduler_DrainRunsInDueOrder(t *testing.T) {
	t.Parallel()

	clock := &fakeClock{now: time.Unix(0, 0)}
	q := contact.NewQueueScheduler(contact.WithQueueClock(clock.Now, clock.After))

	var order []string
	q.AfterFunc(8*time.Second, func() { order = append(order, "late") })
	q.AfterFunc(2*time.Second, func() {
		order = append(order, "early")
		q.AfterFunc(time.Second, func() { order = append(order, "nested") })
	})
	assert.Equal(t, 2, q.Pending())

	require.NoError(t, q.Drain(context.Background()))

	assert.Equal(t, []string{"early", "nested", "late"}, order)
	assert.Equal(t, []time.Duration{2 * time.Second, time.Second, 5 * time.Second}, clock.waits)
	assert.Zero(t, q.Pending())
}

func TestQueueScheduler_DrainStopsOnCancel(t *testing.T) {
	t.Parallel()

	q := contact.NewQueueScheduler()
	ran := false
	q.AfterFunc(time.Hour, func() { ran = true })

	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	assert.ErrorIs(t, q.Drain(ctx), context.Canceled)
	assert.False(t, ran)
	assert.Equal(t, 1, q.Pending())
}

func TestQueueScheduler_DrivesToast(t *testing.T) {
	t.Parallel()

	clock := &fakeClock{now: time.Unix(0, 0)}
	q := contact.NewQueueScheduler(contact.WithQueueClock(clock.Now, clock.After))
	page := contact.NewPage(validState())
	v := contact.New(page, contact.WithScheduler(q))

	_, err := v.Submit(context.Background(), validState())
	require.NoError(t, err)
	require.True(t, page.Snapshot().ToastShown)

	require.NoError(t, q.Drain(context.Background()))
	assert.False(t, page.Snapshot().ToastShown)
	assert.Equal(t, []time.Duration{contact.DefaultToastDuration}, clock.waits)
}
