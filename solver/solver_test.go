package solver_test

import (
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/robustrepair/automaton"
	"github.com/katalvlaran/robustrepair/solver"
)

func alphabetA(controllable bool) []automaton.Event {
	return []automaton.Event{{Label: "a", Controllable: controllable, Observable: true}}
}

func TestSupremalAllowedEventSucceeds(t *testing.T) {
	g := automaton.New(alphabetA(true))
	q1 := g.AddState(true)
	require.NoError(t, g.AddTransition(0, "a", q1))

	h := automaton.New(alphabetA(true))
	hq1 := h.AddState(true)
	require.NoError(t, h.AddTransition(0, "a", hq1))

	l, err := solver.Supremal(g, h, solver.ModePrefixClosed)
	require.NoError(t, err)
	require.Equal(t, 2, l.NumStates())
	require.Equal(t, []int{1}, l.Next(0, "a"))
}

func TestSupremalUncontrollableEventForbiddenIsNoController(t *testing.T) {
	// g allows uncontrollable "a"; h forbids it entirely -> unsafe at q0.
	g := automaton.New(alphabetA(false))
	q1 := g.AddState(true)
	require.NoError(t, g.AddTransition(0, "a", q1))

	h := automaton.New(alphabetA(false)) // no transitions: "a" undefined at h.q0

	_, err := solver.Supremal(g, h, solver.ModePrefixClosed)
	require.ErrorIs(t, err, solver.ErrNoController)
}

func TestSupremalControllableEventMayBeRestricted(t *testing.T) {
	// g allows controllable "a"; h forbids it -> supervisor may simply
	// disable "a", so the supremal language is just {epsilon}: no controller error.
	g := automaton.New(alphabetA(true))
	q1 := g.AddState(true)
	require.NoError(t, g.AddTransition(0, "a", q1))

	h := automaton.New(alphabetA(true))

	l, err := solver.Supremal(g, h, solver.ModePrefixClosed)
	require.NoError(t, err)
	require.Equal(t, 1, l.NumStates())
	require.Empty(t, l.Next(0, "a"))
}

func TestSupremalNonBlockingTrimsDeadEnds(t *testing.T) {
	// g: q0 (marked, the supervisor may simply stay put) --a--> q1
	// (unmarked dead end: no outgoing transitions, never marked).
	g := automaton.NewEmpty(alphabetA(true))
	g.AddState(true)  // q0: marked
	g.AddState(false) // q1: unmarked dead end
	require.NoError(t, g.AddTransition(0, "a", 1))

	h := automaton.NewEmpty(alphabetA(true))
	h.AddState(true)
	h.AddState(true)
	require.NoError(t, h.AddTransition(0, "a", 1))

	l, err := solver.Supremal(g, h, solver.ModeNonBlocking)
	require.NoError(t, err)
	// q1 cannot reach a marked state, so the non-blocking fixpoint must
	// disable "a" at q0 rather than offer a blocking trace.
	require.Empty(t, l.Next(0, "a"))
	require.True(t, l.Marked(0))
}
