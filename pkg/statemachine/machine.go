package statemachine

import (
	"context"
	"fmt"
	"sync"
)

// machine is an in-memory StateMachine.
// Transitions are indexed as [fromState][event][]Transition.
type machine struct {
	mu           sync.RWMutex
	initialState State
	currentState State
	transitions  map[string]map[string][]Transition
}

func newMachine(initialState State) *machine {
	return &machine{
		initialState: initialState,
		currentState: initialState,
		transitions:  make(map[string]map[string][]Transition),
	}
}

func (sm *machine) add(t Transition) error {
	if t.From == nil || t.To == nil || t.Event == nil {
		return ErrInvalidTransition
	}

	sm.mu.Lock()
	defer sm.mu.Unlock()

	byEvent, ok := sm.transitions[t.From.Name()]
	if !ok {
		byEvent = make(map[string][]Transition)
		sm.transitions[t.From.Name()] = byEvent
	}
	// Several transitions per from/event pair allow guard-based branching.
	byEvent[t.Event.Name()] = append(byEvent[t.Event.Name()], t)
	return nil
}

func (sm *machine) Current() State {
	sm.mu.RLock()
	defer sm.mu.RUnlock()
	return sm.currentState
}

func (sm *machine) Fire(ctx context.Context, event Event, data any) error {
	if event == nil {
		return ErrInvalidEvent
	}

	sm.mu.Lock()
	defer sm.mu.Unlock()

	candidates := sm.transitions[sm.currentState.Name()][event.Name()]
	if len(candidates) == 0 {
		return &ErrNoTransitionAvailable{StateName: sm.currentState.Name(), EventName: event.Name()}
	}

	t, ok := sm.pick(ctx, candidates, event, data)
	if !ok {
		return &ErrTransitionRejected{StateName: sm.currentState.Name(), EventName: event.Name()}
	}

	for _, action := range t.Actions {
		if err := action(ctx, sm.currentState, t.To, event, data); err != nil {
			return fmt.Errorf("action failed: %w", err)
		}
	}

	sm.currentState = t.To
	return nil
}

func (sm *machine) CanFire(ctx context.Context, event Event, data any) bool {
	if event == nil {
		return false
	}

	sm.mu.RLock()
	defer sm.mu.RUnlock()

	_, ok := sm.pick(ctx, sm.transitions[sm.currentState.Name()][event.Name()], event, data)
	return ok
}

func (sm *machine) Reset() {
	sm.mu.Lock()
	defer sm.mu.Unlock()
	sm.currentState = sm.initialState
}

// pick returns the first candidate whose guards all pass.
func (sm *machine) pick(ctx context.Context, candidates []Transition, event Event, data any) (Transition, bool) {
	for _, t := range candidates {
		passed := true
		for _, guard := range t.Guards {
			if !guard(ctx, sm.currentState, event, data) {
				passed = false
				break
			}
		}
		if passed {
			return t, true
		}
	}
	return Transition{}, false
}
