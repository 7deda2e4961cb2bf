package action

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/zoobzio/fist"
)

func plus(n int) fist.Action[int] {
	return Update(func(m int) int { return n + m })
}

func TestShortcuts_IgnoreState(t *testing.T) {
	count := 0
	var got error
	num := fist.Bind(0, fist.Effects[int]{
		OnEnter: func(int) { count++ },
		OnError: func(err error) { got = err },
	})

	require.NoError(t, num.Dispatch(Enter(100)))
	assert.Equal(t, 100, num.State())
	assert.Equal(t, 2, count)

	require.NoError(t, num.Dispatch(Reenter[int]()))
	require.NoError(t, num.Dispatch(Reenter[int]()))
	require.NoError(t, num.Dispatch(Reenter[int]()))
	assert.Equal(t, 5, count)

	hello := errors.New("hello")
	require.NoError(t, num.Dispatch(Raise[int](hello)))
	assert.Same(t, hello, got)
}

func TestRun_Sequence(t *testing.T) {
	num := fist.Bind(0, fist.Effects[int]{})
	require.NoError(t, num.Dispatch(Run(plus(1), plus(-10), plus(300))))
	assert.Equal(t, 291, num.State())
}

func TestRun_Empty(t *testing.T) {
	num := fist.Bind(4, fist.Effects[int]{})
	require.NoError(t, num.Dispatch(Run[int]()))
	assert.Equal(t, 4, num.State())
}

func TestFold_Commands(t *testing.T) {
	var seen []string
	rt := fist.Bind("a", fist.Handler(func(s string) { seen = append(seen, s) }))

	require.NoError(t, rt.Dispatch(Fold(fist.Enter("b"), fist.Reenter[string](), fist.Enter("c"))))
	assert.Equal(t, []string{"a", "b", "b", "c"}, seen)
}

func TestRaise_WithoutHook(t *testing.T) {
	boom := errors.New("boom")
	rt := fist.Bind(0, fist.Effects[int]{})
	assert.ErrorIs(t, rt.Dispatch(Raise[int](boom)), boom)
}

func TestUpdate_StrictReturn(t *testing.T) {
	rt := fist.Bind(1, fist.Effects[int]{}, fist.StrictReturn())
	require.NoError(t, rt.Dispatch(plus(1)))
	assert.Equal(t, 1, rt.State())
}

func TestDo_SideEffectOnly(t *testing.T) {
	var seen int
	count := 0
	rt := fist.Bind(7, fist.Effects[int]{OnEnter: func(int) { count++ }})

	require.NoError(t, rt.Dispatch(Do(func(n int) { seen = n })))
	assert.Equal(t, 7, seen)
	assert.Equal(t, 1, count)
}

func TestLater_RunsResolvedAction(t *testing.T) {
	rt := fist.Bind(0, fist.Effects[int]{})
	f := fist.NewFuture[fist.Action[int]]()

	require.NoError(t, rt.Dispatch(Later(f)))
	f.Resolve(Enter(12))

	require.NoError(t, rt.Step(t.Context()))
	assert.Equal(t, 12, rt.State())
}
