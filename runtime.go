package fist

import (
	"context"
	"errors"
	"fmt"
	"sync"
	"time"

	"github.com/zoobzio/capitan"
	"github.com/zoobzio/clockz"
	"go.uber.org/zap"
)

// Runtime owns a single state value and interprets the commands produced by
// the actions dispatched to it.
//
// A Runtime has single-goroutine affinity: Dispatch, Step, Settle, Run and
// State must be called from the goroutine that owns it. Re-entrant dispatch
// from inside actions and hooks is expected and needs no locking. Futures may
// be settled from any goroutine; their continuations are queued and only run
// when the owner calls Step, Settle or Run.
type Runtime[S any] struct {
	name    string
	state   S
	effects Effects[S]
	onEnter func(S)
	strict  bool
	clock   clockz.Clock
	logger  *zap.Logger
	metrics MetricsProvider
	ctx     context.Context
	errors  *errorLog
	io      Io[S]

	mu      sync.Mutex
	queue   []continuation
	pending int
	wake    chan struct{}
}

// continuation is queued when a deferred value the runtime suspended on settles.
type continuation struct {
	fn    func()
	since time.Time
}

// Bind creates a Runtime holding initial and returns it ready for dispatch.
//
// If fx.OnBind is set it is called with the dispatcher before the initial
// enter hook. Unless ManualStart is given, the enter hook then fires once for
// the initial state.
//
// Example:
//
//	counter := fist.Bind(0, fist.Effects[int]{
//	    OnEnter: func(n int) { fmt.Println("count:", n) },
//	})
//	_ = counter.Dispatch(func(n int, _ fist.Effects[int]) fist.Outcome[int] {
//	    return fist.Enter(n + 1)
//	})
func Bind[S any](initial S, fx Effects[S], opts ...Option) *Runtime[S] {
	cfg := defaultConfig()
	for _, opt := range opts {
		opt(cfg)
	}
	if cfg.clock == nil {
		cfg.clock = clockz.RealClock
	}
	if cfg.logger == nil {
		cfg.logger = zap.NewNop()
	}
	if cfg.metrics == nil {
		cfg.metrics = NoOpMetricsProvider{}
	}
	if cfg.ctx == nil {
		cfg.ctx = context.Background()
	}

	r := &Runtime[S]{
		name:    cfg.name,
		state:   initial,
		effects: fx,
		onEnter: fx.enterHook(),
		strict:  cfg.strictReturn,
		clock:   cfg.clock,
		logger:  cfg.logger,
		metrics: cfg.metrics,
		ctx:     cfg.ctx,
		errors:  newErrorLog(cfg.errorHistory),
		wake:    make(chan struct{}, 1),
	}
	r.io = interp[S]{r: r}

	capitan.Emit(r.ctx, RuntimeBound,
		KeyRuntime.Field(r.name),
		KeyState.Field(describe(initial)),
	)
	r.logger.Debug("runtime bound",
		zap.String("runtime", r.name),
		zap.Bool("strict_return", r.strict),
		zap.Bool("manual_start", cfg.manualStart),
	)

	if fx.OnBind != nil {
		fx.OnBind(r.Dispatch)
	}
	if !cfg.manualStart {
		r.reenter()
	}
	return r
}

// Name returns the name set with WithName.
func (r *Runtime[S]) Name() string {
	return r.name
}

// State returns the current state.
func (r *Runtime[S]) State() S {
	return r.state
}

// Dispatcher returns Dispatch as a standalone function value.
func (r *Runtime[S]) Dispatcher() Dispatcher[S] {
	return r.Dispatch
}

// Pending returns the number of suspensions whose continuation has not run yet.
func (r *Runtime[S]) Pending() int {
	r.mu.Lock()
	defer r.mu.Unlock()
	return r.pending
}

// LastError returns the most recently raised error, handled or not.
func (r *Runtime[S]) LastError() error {
	return r.errors.latest()
}

// ErrorHistory returns the recently raised errors, oldest first.
// Returns nil if error history is not enabled (see WithErrorHistory).
func (r *Runtime[S]) ErrorHistory() []error {
	return r.errors.all()
}

// ClearErrors resets LastError and ErrorHistory.
func (r *Runtime[S]) ClearErrors() {
	r.errors.clear()
}

// Dispatch runs action against the current state. A nil action reenters.
//
// Dispatch returns the error of any raise that found no OnError hook; such a
// raise aborts whatever remained of the dispatch. With OnError set, Dispatch
// always returns nil.
func (r *Runtime[S]) Dispatch(action Action[S]) (err error) {
	defer r.escalate(&err)

	capitan.Emit(r.ctx, ActionDispatched, KeyRuntime.Field(r.name))
	r.metrics.OnDispatch()
	r.run(action)
	return nil
}

// Step runs the next queued continuation, waiting for one if suspensions are
// outstanding. It returns ErrIdle when there is nothing to wait for, and
// ctx.Err() if ctx ends first. Errors escaping the continuation are returned
// as with Dispatch.
func (r *Runtime[S]) Step(ctx context.Context) (err error) {
	c, err := r.next(ctx)
	if err != nil {
		return err
	}

	defer r.escalate(&err)
	r.resume(ctx, c)
	return nil
}

// Settle runs continuations until no suspension is outstanding. Continuations
// that suspend again are waited for as well.
func (r *Runtime[S]) Settle(ctx context.Context) error {
	for {
		err := r.Step(ctx)
		if errors.Is(err, ErrIdle) {
			return nil
		}
		if err != nil {
			return err
		}
	}
}

// Run is an event loop on the calling goroutine. It dispatches actions
// received on actions and runs continuations as their deferred values settle.
//
// Run returns nil once actions is closed (or nil) and no suspension is
// outstanding, ctx.Err() when ctx ends, or the first unhandled error.
func (r *Runtime[S]) Run(ctx context.Context, actions <-chan Action[S]) error {
	defer func() {
		capitan.Emit(ctx, RuntimeStopped,
			KeyRuntime.Field(r.name),
			KeyPending.Field(r.Pending()),
		)
	}()

	for {
		if r.queued() {
			if err := r.Step(ctx); err != nil {
				return err
			}
			continue
		}
		if actions == nil && r.Pending() == 0 {
			return nil
		}

		select {
		case <-ctx.Done():
			return ctx.Err()
		case action, ok := <-actions:
			if !ok {
				actions = nil
				continue
			}
			if err := r.Dispatch(action); err != nil {
				return err
			}
		case <-r.wake:
		}
	}
}

// escalate converts an unhandled raise unwinding through a public entry
// point into its returned error. Any other panic continues.
func (r *Runtime[S]) escalate(err *error) {
	p := recover()
	if p == nil {
		return
	}
	if u, ok := p.(unhandled); ok {
		*err = u.err
		return
	}
	panic(p)
}

// guard routes a panic from action code to raise. An unhandled raise is
// already past the error path and keeps unwinding.
func (r *Runtime[S]) guard() {
	p := recover()
	if p == nil {
		return
	}
	if u, ok := p.(unhandled); ok {
		panic(u)
	}
	r.raise(panicError(p))
}

func (r *Runtime[S]) run(action Action[S]) {
	defer r.guard()
	if action == nil {
		r.reenter()
		return
	}
	r.apply(action(r.state, r.effects))
}

// apply interprets an action's outcome.
func (r *Runtime[S]) apply(out Outcome[S]) {
	switch o := out.(type) {
	case nil:
	case Command[S]:
		if o != nil {
			o(r.io)
		}
	case value[S]:
		r.commit(o.state)
	case deferred[S]:
		f := o.future
		r.suspend(f, func() {
			c, err := f.Result()
			if err != nil {
				r.raise(err)
				return
			}
			r.apply(c)
		})
	}
}

// commit enters a plain value returned by an action.
func (r *Runtime[S]) commit(state S) {
	if r.strict {
		r.logger.Debug("plain return ignored",
			zap.String("runtime", r.name),
			zap.String("state", describe(state)),
		)
		return
	}
	r.enter(state)
}

func (r *Runtime[S]) enter(state S) {
	r.state = state
	capitan.Emit(r.ctx, StateEntered,
		KeyRuntime.Field(r.name),
		KeyState.Field(describe(state)),
	)
	r.reenter()
}

func (r *Runtime[S]) enterLater(f *Future[S]) {
	r.suspend(f, func() {
		state, err := f.Result()
		if err != nil {
			r.raise(err)
			return
		}
		r.enter(state)
	})
}

func (r *Runtime[S]) runLater(f *Future[Action[S]]) {
	r.suspend(f, func() {
		action, err := f.Result()
		if err != nil {
			r.raise(err)
			return
		}
		r.run(action)
	})
}

// reenter resolves the enter hook: a Reentrant state handles itself,
// otherwise the handler or OnEnter effect is called.
func (r *Runtime[S]) reenter() {
	capitan.Emit(r.ctx, StateReentered, KeyRuntime.Field(r.name))
	r.metrics.OnEnter()

	if rs, ok := any(r.state).(Reentrant[S]); ok {
		rs.Reenter(r.effects)
		return
	}
	if r.onEnter != nil {
		r.onEnter(r.state)
	}
}

func (r *Runtime[S]) raise(err error) {
	if err == nil {
		err = ErrNilError
	}
	r.errors.push(err)

	handled := r.effects.OnError != nil
	r.metrics.OnRaise(handled)
	if !handled {
		capitan.Emit(r.ctx, ErrorUnhandled,
			KeyRuntime.Field(r.name),
			KeyError.Field(err.Error()),
		)
		r.logger.Debug("unhandled error", zap.String("runtime", r.name), zap.Error(err))
		panic(unhandled{err: err})
	}

	capitan.Emit(r.ctx, ErrorHandled,
		KeyRuntime.Field(r.name),
		KeyError.Field(err.Error()),
	)
	r.effects.OnError(err)
}

// suspend registers cont to be queued once f settles.
func (r *Runtime[S]) suspend(f settler, cont func()) {
	r.mu.Lock()
	r.pending++
	pending := r.pending
	r.mu.Unlock()

	since := r.clock.Now()
	capitan.Emit(r.ctx, ActionSuspended,
		KeyRuntime.Field(r.name),
		KeyPending.Field(pending),
	)
	r.metrics.OnSuspend()

	f.subscribe(func() {
		r.mu.Lock()
		r.queue = append(r.queue, continuation{fn: cont, since: since})
		r.mu.Unlock()

		select {
		case r.wake <- struct{}{}:
		default:
		}
	})
}

func (r *Runtime[S]) queued() bool {
	r.mu.Lock()
	defer r.mu.Unlock()
	return len(r.queue) > 0
}

// next pops the oldest queued continuation, waiting while suspensions are
// outstanding.
func (r *Runtime[S]) next(ctx context.Context) (continuation, error) {
	for {
		r.mu.Lock()
		if len(r.queue) > 0 {
			c := r.queue[0]
			r.queue[0] = continuation{}
			r.queue = r.queue[1:]
			r.pending--
			r.mu.Unlock()
			return c, nil
		}
		idle := r.pending == 0
		r.mu.Unlock()

		if idle {
			return continuation{}, ErrIdle
		}

		select {
		case <-ctx.Done():
			return continuation{}, ctx.Err()
		case <-r.wake:
		}
	}
}

func (r *Runtime[S]) resume(ctx context.Context, c continuation) {
	wait := r.clock.Since(c.since)
	capitan.Emit(ctx, ActionResumed,
		KeyRuntime.Field(r.name),
		KeyWait.Field(wait),
	)
	r.metrics.OnResume(wait)

	defer r.guard()
	c.fn()
}

// interp is the Io a Runtime hands to commands.
type interp[S any] struct {
	r *Runtime[S]
}

func (i interp[S]) Enter(state S)                      { i.r.enter(state) }
func (i interp[S]) EnterLater(state *Future[S])        { i.r.enterLater(state) }
func (i interp[S]) Reenter()                           { i.r.reenter() }
func (i interp[S]) Run(action Action[S])               { i.r.run(action) }
func (i interp[S]) RunLater(action *Future[Action[S]]) { i.r.runLater(action) }
func (i interp[S]) Raise(err error)                    { i.r.raise(err) }

// describe renders a state for signals and logs without assuming anything
// about its shape.
func describe(v any) string {
	if _, ok := v.(fmt.Stringer); ok {
		return fmt.Sprint(v)
	}
	return fmt.Sprintf("%T", v)
}
