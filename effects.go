package fist

// Dispatcher submits an action to the Runtime it was obtained from.
type Dispatcher[S any] func(action Action[S]) error

// Effects are the hooks a Runtime calls as it operates. All fields are
// optional.
type Effects[S any] struct {
	// OnEnter is called with the state each time it is entered or reentered.
	OnEnter func(state S)

	// OnError receives every raised error. When set, errors are considered
	// recovered and the Runtime keeps operating.
	OnError func(err error)

	// OnBind is called once during Bind with the Runtime's dispatcher.
	OnBind func(dispatch Dispatcher[S])

	handler func(state S)
}

// Handler returns effects consisting of a single enter hook. It takes
// precedence over OnEnter if both end up set.
func Handler[S any](fn func(state S)) Effects[S] {
	return Effects[S]{handler: fn}
}

// enterHook resolves which hook fires on enter.
func (fx Effects[S]) enterHook() func(S) {
	if fx.handler != nil {
		return fx.handler
	}
	return fx.OnEnter
}

// Reentrant is implemented by states that handle their own entry. When the
// current state is Reentrant, the Runtime calls it instead of any enter hook.
type Reentrant[S any] interface {
	Reenter(fx Effects[S])
}
