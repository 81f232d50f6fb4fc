package automaton_test

import (
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/robustrepair/automaton"
)

// chain builds q0 --hidden--> q1 --obs--> q2 (marked).
func chain() *automaton.Automaton {
	a := automaton.New([]automaton.Event{
		{Label: "hidden", Controllable: false, Observable: false},
		{Label: "obs", Controllable: true, Observable: true},
	})
	q1 := a.AddState(false)
	q2 := a.AddState(true)
	_ = a.AddTransition(0, "hidden", q1)
	_ = a.AddTransition(q1, "obs", q2)
	return a
}

func TestProjectHidesUnobservableAndIsDeterministic(t *testing.T) {
	a := chain()
	observable := map[string]bool{"obs": true}

	p := a.Project(observable)

	require.Equal(t, 1, len(p.Alphabet()))
	require.Equal(t, "obs", p.Alphabet()[0].Label)
	// q0's epsilon-closure already reaches the marked-on-obs successor
	dst := p.DeterministicNext(0, "obs")
	require.NotEqual(t, -1, dst)
	require.True(t, p.Marked(dst))
}

func TestProjectIsIdempotent(t *testing.T) {
	a := chain()
	observable := map[string]bool{"obs": true}

	once := a.Project(observable)
	// projecting an already-projected (fully observable) automaton changes nothing observable
	twice := once.Project(map[string]bool{"obs": true})

	eq, err := automaton.Equal(once, twice)
	require.NoError(t, err)
	require.True(t, eq)
}

func TestAbstractHidesGivenEvents(t *testing.T) {
	a := chain()
	abstracted := a.Abstract([]string{"hidden"})
	require.Equal(t, 1, len(abstracted.Alphabet()))
	require.Equal(t, "obs", abstracted.Alphabet()[0].Label)
}
