package statemachine_test

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/dmitrymomot/contactform/pkg/statemachine"
)

const (
	hidden = statemachine.StringState("hidden")
	shown  = statemachine.StringState("shown")
	show   = statemachine.StringEvent("show")
	hide   = statemachine.StringEvent("hide")
)

func TestStateMachine_Fire(t *testing.T) {
	t.Parallel()

	var calls []string
	record := func(name string) statemachine.Action {
		return func(_ context.Context, from, to statemachine.State, _ statemachine.Event, _ any) error {
			calls = append(calls, name+":"+from.Name()+"->"+to.Name())
			return nil
		}
	}

	sm := statemachine.MustNew(hidden,
		statemachine.WithTransition(hidden, shown, show, statemachine.WithAction(record("show"))),
		statemachine.WithTransition(shown, hidden, hide, statemachine.WithAction(record("hide"))),
	)

	ctx := context.Background()
	assert.Equal(t, hidden, sm.Current())

	require.NoError(t, sm.Fire(ctx, show, nil))
	assert.Equal(t, shown, sm.Current())

	require.NoError(t, sm.Fire(ctx, hide, nil))
	assert.Equal(t, hidden, sm.Current())

	assert.Equal(t, []string{"show:hidden->shown", "hide:shown->hidden"}, calls)

	err := sm.Fire(ctx, hide, nil)
	assert.True(t, statemachine.IsNoTransitionAvailableError(err))
	assert.False(t, sm.CanFire(ctx, hide, nil))
	assert.True(t, sm.CanFire(ctx, show, nil))
}

func TestStateMachine_Guards(t *testing.T) {
	t.Parallel()

	allow := func(_ context.Context, _ statemachine.State, _ statemachine.Event, data any) bool {
		v, _ := data.(bool)
		return v
	}

	sm := statemachine.MustNew(hidden,
		statemachine.WithTransition(hidden, shown, show, statemachine.WithGuard(allow)),
	)

	err := sm.Fire(context.Background(), show, false)
	assert.True(t, statemachine.IsTransitionRejectedError(err))
	assert.Equal(t, hidden, sm.Current())

	require.NoError(t, sm.Fire(context.Background(), show, true))
	assert.Equal(t, shown, sm.Current())

	sm.Reset()
	assert.Equal(t, hidden, sm.Current())
}

func TestStateMachine_ActionErrorAbortsTransition(t *testing.T) {
	t.Parallel()

	boom := errors.New("boom")
	sm := statemachine.MustNew(hidden,
		statemachine.WithTransition(hidden, shown, show,
			statemachine.WithAction(func(context.Context, statemachine.State, statemachine.State, statemachine.Event, any) error {
				return boom
			}),
		),
	)

	err := sm.Fire(context.Background(), show, nil)
	require.ErrorIs(t, err, boom)
	assert.Equal(t, hidden, sm.Current())
}

func TestNew_Errors(t *testing.T) {
	t.Parallel()

	_, err := statemachine.New(nil)
	assert.ErrorIs(t, err, statemachine.ErrNilInitialState)

	_, err = statemachine.New(hidden, statemachine.WithTransition(nil, shown, show))
	assert.ErrorIs(t, err, statemachine.ErrInvalidTransition)

	assert.ErrorIs(t, statemachine.MustNew(hidden).Fire(context.Background(), nil, nil), statemachine.ErrInvalidEvent)
}
