package fist

import (
	"fmt"
	"maps"
	"slices"
)

// Otherwise is the selector key of the fallback branch.
const Otherwise = "otherwise"

// Branch handles one case of a union. Its arguments are whatever the caller
// passes to Cases.Select.
type Branch[S any] func(args ...any) Command[S]

// Selector maps case names to the branches a caller chose to handle. A
// branch stored under Otherwise handles every case left undeclared.
type Selector[S any] map[string]Branch[S]

// Label renders a branch's arguments for a MatchError.
type Label func(args ...any) string

// MatchError is raised when a case is selected that the selector did not
// handle and no fallback was given.
type MatchError[S any] struct {
	// State names the unhandled case, as rendered by its Label if any.
	State string

	// Selector is the selector that lacked the case.
	Selector Selector[S]
}

func (e *MatchError[S]) Error() string {
	return fmt.Sprintf("%v: %s", ErrNoMatch, e.State)
}

func (e *MatchError[S]) Unwrap() error {
	return ErrNoMatch
}

// Cases is the complete, read-only mapping produced by Whenify: every
// required branch resolves to a handler.
type Cases[S any] struct {
	branches map[string]Branch[S]
	fallback Branch[S]
	selector Selector[S]
	labels   map[string]Label
}

// Whenify returns a decorator that completes a selector over the required
// branch names.
//
// Each required branch missing from the selector delegates to the
// Otherwise branch if there is one. Without a fallback it produces a
// command raising a *MatchError when selected, so a missing case fails
// only once it is actually reached. labels optionally renders a branch's
// arguments into MatchError.State; the branch name is used otherwise.
//
// Handlers are copied out of the selector; adding to it later does not
// change the Cases.
//
// Example:
//
//	lights := fist.Whenify[Light]([]string{"red", "amber", "green"}, nil)
//	cases := lights(fist.Selector[Light]{
//	    "red":         func(...any) fist.Command[Light] { return fist.Enter(Green) },
//	    fist.Otherwise: func(...any) fist.Command[Light] { return fist.Enter(Red) },
//	})
func Whenify[S any](branches []string, labels map[string]Label) func(Selector[S]) Cases[S] {
	required := slices.Clone(branches)
	labels = maps.Clone(labels)

	return func(sel Selector[S]) Cases[S] {
		c := Cases[S]{
			branches: make(map[string]Branch[S], len(required)+len(sel)),
			fallback: sel[Otherwise],
			selector: sel,
			labels:   labels,
		}
		for name, b := range sel {
			if b != nil && name != Otherwise {
				c.branches[name] = b
			}
		}
		for _, name := range required {
			if _, ok := c.branches[name]; ok {
				continue
			}
			c.branches[name] = c.missing(name)
		}
		return c
	}
}

// missing builds the handler for an undeclared branch.
func (c Cases[S]) missing(name string) Branch[S] {
	if fallback := c.fallback; fallback != nil {
		return func(...any) Command[S] {
			return fallback()
		}
	}
	label := c.labels[name]
	sel := c.selector
	return func(args ...any) Command[S] {
		state := ""
		if label != nil {
			state = label(args...)
		}
		if state == "" {
			state = name
		}
		return Raise[S](&MatchError[S]{State: state, Selector: sel})
	}
}

// Select invokes the branch for name with args. Names outside the required
// set that the selector did not declare are treated as missing branches.
func (c Cases[S]) Select(name string, args ...any) Command[S] {
	if b, ok := c.branches[name]; ok {
		return b(args...)
	}
	return c.missing(name)(args...)
}

// Branch returns the resolved handler for name.
func (c Cases[S]) Branch(name string) (Branch[S], bool) {
	b, ok := c.branches[name]
	return b, ok
}

// Names returns the resolved branch names in sorted order.
func (c Cases[S]) Names() []string {
	return slices.Sorted(maps.Keys(c.branches))
}

// Selector returns the selector the Cases were built from.
func (c Cases[S]) Selector() Selector[S] {
	return c.selector
}
