package fist

// Action is the unit of work submitted to a Runtime. It receives the current
// state and the Runtime's effects and yields an Outcome:
//
//   - nil: nothing further happens
//   - a Command: executed immediately against the Runtime
//   - Return(s): s becomes the new state, unless StrictReturn is set
//   - Await(f) or AwaitState(f): the Runtime suspends until f settles
//
// Actions that do not need the state may simply ignore their arguments;
// see package action for ready-made ones.
type Action[S any] func(state S, fx Effects[S]) Outcome[S]

// Outcome is the result of an Action. The set of implementations is closed.
type Outcome[S any] interface {
	isOutcome()
}

type value[S any] struct {
	state S
}

func (value[S]) isOutcome() {}

type deferred[S any] struct {
	future *Future[Outcome[S]]
}

func (deferred[S]) isOutcome() {}

// Return yields state as a plain value. The Runtime enters it as the new
// state unless the StrictReturn option is set.
func Return[S any](state S) Outcome[S] {
	return value[S]{state: state}
}

// Await yields a deferred outcome. When f resolves, its value is applied
// like a synchronous outcome; when it rejects, the error is raised.
func Await[S any](f *Future[Outcome[S]]) Outcome[S] {
	return deferred[S]{future: f}
}

// AwaitState yields a deferred plain value.
func AwaitState[S any](f *Future[S]) Outcome[S] {
	return Await(Then(f, Return[S]))
}
