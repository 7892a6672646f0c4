// Package statemachine provides a small, thread-safe finite state machine.
//
// Transitions are declared up front with New and WithTransition. Firing an
// event runs the guards of each candidate transition in declaration order;
// the first transition whose guards all pass runs its actions and moves the
// machine to the target state. An action error aborts the transition.
//
//	hidden := statemachine.StringState("hidden")
//	shown := statemachine.StringState("shown")
//	show := statemachine.StringEvent("show")
//
//	sm := statemachine.MustNew(hidden,
//		statemachine.WithTransition(hidden, shown, show,
//			statemachine.WithAction(render)),
//	)
//	err := sm.Fire(ctx, show, nil)
//
// Actions run while the machine lock is held and must not call back into
// the same machine.
package statemachine
