package automaton_test

import (
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/robustrepair/automaton"
)

func TestEqualIdenticalAutomataAreEqual(t *testing.T) {
	a := twoStateLoop("x")
	b := twoStateLoop("x")

	eq, err := automaton.Equal(a, b)
	require.NoError(t, err)
	require.True(t, eq)
}

func TestEqualDifferentEnabledEventsIsNotEqual(t *testing.T) {
	a := automaton.New([]automaton.Event{{Label: "x", Controllable: true, Observable: true}})
	b := automaton.New([]automaton.Event{{Label: "x", Controllable: true, Observable: true}})
	b.AddState(true) // unreachable in b: no transition leads to it

	// a offers "x" at q0, b offers nothing at q0: the languages differ in
	// which events are defined, not in marking.
	q1 := a.AddState(true)
	_ = a.AddTransition(0, "x", q1)

	eq, err := automaton.Equal(a, b)
	require.NoError(t, err)
	require.False(t, eq)
}

func TestEqualAlphabetMismatch(t *testing.T) {
	a := automaton.New([]automaton.Event{{Label: "x", Controllable: true, Observable: true}})
	b := automaton.New([]automaton.Event{{Label: "y", Controllable: true, Observable: true}})

	_, err := automaton.Equal(a, b)
	require.ErrorIs(t, err, automaton.ErrAlphabetMismatch)
}

func TestEqualIgnoresAlphabetOrder(t *testing.T) {
	a := automaton.New([]automaton.Event{
		{Label: "x", Controllable: true, Observable: true},
		{Label: "y", Controllable: true, Observable: true},
	})
	qa := a.AddState(true)
	_ = a.AddTransition(0, "x", qa)

	b := automaton.New([]automaton.Event{
		{Label: "y", Controllable: true, Observable: true},
		{Label: "x", Controllable: true, Observable: true},
	})
	qb := b.AddState(true)
	_ = b.AddTransition(0, "x", qb)

	eq, err := automaton.Equal(a, b)
	require.NoError(t, err)
	require.True(t, eq, "alphabets that agree as sets but differ in index order must still compare equal")
}

func TestEqualNonDeterministic(t *testing.T) {
	a := automaton.New([]automaton.Event{{Label: "x", Controllable: true, Observable: true}})
	q1 := a.AddState(false)
	q2 := a.AddState(false)
	_ = a.AddTransition(0, "x", q1)
	_ = a.AddTransition(0, "x", q2) // two x-transitions from q0: nondeterministic

	b := automaton.New([]automaton.Event{{Label: "x", Controllable: true, Observable: true}})

	_, err := automaton.Equal(a, b)
	require.ErrorIs(t, err, automaton.ErrNotDeterministic)
}
