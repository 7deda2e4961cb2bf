package fist

// Io is the surface a Command executes against. The Runtime supplies the
// only implementation; commands never hold on to it beyond their call.
type Io[S any] interface {
	// Enter replaces the state and fires the enter hook.
	Enter(state S)

	// EnterLater suspends until state settles, then enters it. A rejection
	// is raised.
	EnterLater(state *Future[S])

	// Reenter fires the enter hook for the current state.
	Reenter()

	// Run dispatches a nested action.
	Run(action Action[S])

	// RunLater suspends until action settles, then runs it. A rejection
	// is raised.
	RunLater(action *Future[Action[S]])

	// Raise hands err to the error path.
	Raise(err error)
}

// Command is an operation on a Runtime, built as a value and executed only
// when a Runtime invokes it.
type Command[S any] func(io Io[S])

func (Command[S]) isOutcome() {}

// Enter builds a command that replaces the state with state and then
// reenters it.
func Enter[S any](state S) Command[S] {
	return func(io Io[S]) {
		io.Enter(state)
	}
}

// EnterLater builds a command that enters state once it resolves.
func EnterLater[S any](state *Future[S]) Command[S] {
	return func(io Io[S]) {
		io.EnterLater(state)
	}
}

// Reenter builds a command that fires the enter hook without changing state.
func Reenter[S any]() Command[S] {
	return func(io Io[S]) {
		io.Reenter()
	}
}

// Run builds a command that dispatches action as a nested action.
func Run[S any](action Action[S]) Command[S] {
	return func(io Io[S]) {
		io.Run(action)
	}
}

// RunLater builds a command that runs action once it resolves.
func RunLater[S any](action *Future[Action[S]]) Command[S] {
	return func(io Io[S]) {
		io.RunLater(action)
	}
}

// Raise builds a command that sends err down the error path.
func Raise[S any](err error) Command[S] {
	return func(io Io[S]) {
		io.Raise(err)
	}
}

// Fold builds a command that executes cmds left to right. Each command
// observes the state left behind by the ones before it. Nil commands are
// skipped.
func Fold[S any](cmds ...Command[S]) Command[S] {
	return func(io Io[S]) {
		for _, cmd := range cmds {
			if cmd != nil {
				cmd(io)
			}
		}
	}
}
