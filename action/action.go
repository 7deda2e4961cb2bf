// Package action provides ready-made fist actions for the common case where
// an action does not need the current state.
//
//	rt.Dispatch(action.Enter(Idle))
//	rt.Dispatch(action.Run(load, validate, publish))
package action

import "github.com/zoobzio/fist"

// Enter returns an action that always enters state.
func Enter[S any](state S) fist.Action[S] {
	return func(S, fist.Effects[S]) fist.Outcome[S] {
		return fist.Enter(state)
	}
}

// Reenter returns an action that always reenters the current state.
func Reenter[S any]() fist.Action[S] {
	return func(S, fist.Effects[S]) fist.Outcome[S] {
		return fist.Reenter[S]()
	}
}

// Run returns an action that runs each of actions in order as nested
// actions, folding their effects.
func Run[S any](actions ...fist.Action[S]) fist.Action[S] {
	cmds := make([]fist.Command[S], len(actions))
	for i, a := range actions {
		cmds[i] = fist.Run(a)
	}
	return func(S, fist.Effects[S]) fist.Outcome[S] {
		return fist.Fold(cmds...)
	}
}

// Raise returns an action that always raises err.
func Raise[S any](err error) fist.Action[S] {
	return func(S, fist.Effects[S]) fist.Outcome[S] {
		return fist.Raise[S](err)
	}
}

// Fold returns an action that executes already-built commands in order.
func Fold[S any](cmds ...fist.Command[S]) fist.Action[S] {
	return func(S, fist.Effects[S]) fist.Outcome[S] {
		return fist.Fold(cmds...)
	}
}

// Update returns an action that replaces the state with fn applied to it.
// Like any plain return it is ignored under fist.StrictReturn.
func Update[S any](fn func(S) S) fist.Action[S] {
	return func(state S, _ fist.Effects[S]) fist.Outcome[S] {
		return fist.Return(fn(state))
	}
}

// Do returns an action that calls fn for its side effects only.
func Do[S any](fn func(S)) fist.Action[S] {
	return func(state S, _ fist.Effects[S]) fist.Outcome[S] {
		fn(state)
		return nil
	}
}

// Later returns an action that runs the action f resolves to.
func Later[S any](f *fist.Future[fist.Action[S]]) fist.Action[S] {
	return func(S, fist.Effects[S]) fist.Outcome[S] {
		return fist.RunLater(f)
	}
}
