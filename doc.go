/*
Package fist provides a minimal state-machine runtime: a single mutable
state bound to a re-entrant dispatch loop.

Callers submit actions. An action reads the current state and yields an
outcome: nothing, a Command, a plain value that becomes the new state, or a
deferred outcome that resolves later. Every transition is observable through
the hooks in Effects.

fist is designed to be embedded as a building block, not run as a service.

# Basic Usage

Bind a state and dispatch actions against it:

	counter := fist.Bind(0, fist.Effects[int]{
	    OnEnter: func(n int) { log.Println("count:", n) },
	})

	counter.Dispatch(func(n int, _ fist.Effects[int]) fist.Outcome[int] {
	    return fist.Enter(n + 1)
	})

# Commands

Commands are values; they only take effect when a Runtime executes them:

	fist.Enter(s)         // replace the state, then reenter
	fist.Reenter()        // fire the enter hook again
	fist.Run(action)      // dispatch a nested action
	fist.Raise(err)       // send err down the error path
	fist.Fold(cmds...)    // execute commands left to right

Package action wraps each of these as an action that ignores the state:

	counter.Dispatch(action.Run(increment, increment, increment))

# Effects

OnEnter fires for the initial state (unless ManualStart is given) and every
time a state is entered or reentered. A state that implements Reentrant
handles its own entry instead. Handler builds effects from a single enter
function.

OnError receives every raised error: explicit raises, panics inside actions
and rejected futures. Without OnError, the error aborts the enclosing call
and is returned from Dispatch, Step, Settle or Run.

OnBind receives the dispatcher once, so effects can dispatch on their own.

# Deferred Values

A Future settles once from any goroutine. The runtime suspends on futures at
three points: EnterLater, RunLater and Await/AwaitState. Continuations are
queued in settle order and run on the runtime's own goroutine by Step,
Settle or Run:

	rt.Dispatch(func(id string, _ fist.Effects[string]) fist.Outcome[string] {
	    return fist.AwaitState(fist.Go(func() (string, error) {
	        return fetchNext(id)
	    }))
	})
	if err := rt.Settle(ctx); err != nil {
	    return err
	}

A Runtime is not safe for concurrent use. Settling futures is.

# Exhaustive Cases

Whenify completes a Selector over a fixed set of branch names, delegating
missing branches to an Otherwise handler or raising a MatchError when one is
reached.

# Observability

The runtime emits capitan signals (see signals.go), logs through zap when
given WithLogger, and reports to a MetricsProvider when given WithMetrics.
pkg/prometheus provides a Prometheus-backed MetricsProvider.
*/
package fist
