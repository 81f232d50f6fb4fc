package search_test

import (
	"context"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/robustrepair/automaton"
	"github.com/katalvlaran/robustrepair/cost"
	"github.com/katalvlaran/robustrepair/search"
	"github.com/katalvlaran/robustrepair/solver"
)

// twoEventPlant builds a plant q0 --a--> q1 --b--> q2(marked), a
// controllable+observable, b controllable+observable.
func twoEventPlant() *automaton.Automaton {
	evts := []automaton.Event{
		{Label: "a", Controllable: true, Observable: true},
		{Label: "b", Controllable: true, Observable: true},
	}
	g := automaton.New(evts)
	q1 := g.AddState(false)
	q2 := g.AddState(true)
	_ = g.AddTransition(0, "a", q1)
	_ = g.AddTransition(q1, "b", q2)
	return g
}

func permissiveProperty() *automaton.Automaton {
	evts := []automaton.Event{
		{Label: "a", Controllable: true, Observable: true},
		{Label: "b", Controllable: true, Observable: true},
	}
	h := automaton.New(evts)
	q1 := h.AddState(true)
	q2 := h.AddState(true)
	_ = h.AddTransition(0, "a", q1)
	_ = h.AddTransition(q1, "b", q2)
	_ = h.AddTransition(0, "a", 0)
	_ = h.AddTransition(q1, "b", q1)
	_ = h.AddTransition(q2, "a", q2)
	_ = h.AddTransition(q2, "b", q2)
	return h
}

// preferredFullRun matches the full a-then-b behavior, so it should be in
// D_max under the maximal authority assignment.
func preferredFullRun() *automaton.Automaton {
	evts := []automaton.Event{
		{Label: "a", Controllable: true, Observable: true},
		{Label: "b", Controllable: true, Observable: true},
	}
	p := automaton.New(evts)
	q1 := p.AddState(false)
	q2 := p.AddState(true)
	_ = p.AddTransition(0, "a", q1)
	_ = p.AddTransition(q1, "b", q2)
	return p
}

func baseProblem() search.Problem {
	weights := cost.Weights{
		Controllable: map[cost.Tier][]string{cost.TierP1: {"a", "b"}},
		Observable:   map[cost.Tier][]string{cost.TierP1: {"a", "b"}},
	}
	prefWeights := cost.Preferred{Tiers: map[cost.Tier][]string{
		cost.TierP1: {"full-run"},
	}}

	return search.Problem{
		Plant:       twoEventPlant(),
		Property:    permissiveProperty(),
		SolverMode:  solver.ModeNonBlocking,
		Weights:     weights,
		PrefWeights: prefWeights,
		Preferred: []search.PreferredItem{
			{Name: "full-run", Tier: cost.TierP1, Automaton: preferredFullRun()},
		},
		MaxControllable:          map[string]bool{"a": true, "b": true},
		MaxObservable:            map[string]bool{"a": true, "b": true},
		PriorityZeroControllable: map[string]bool{},
		PriorityZeroObservable:   map[string]bool{},
	}
}

func TestRunReturnsAtLeastOneSolution(t *testing.T) {
	sols, err := search.Run(context.Background(), baseProblem(), search.Options{N: 4, Mode: search.ModeFast})
	require.NoError(t, err)
	require.NotEmpty(t, sols)
	require.Contains(t, sols[0].DSat, "full-run", "the first, fewest-removed bracket must retain the one preferred behavior")
}

func TestRunParetoModeAlsoSucceeds(t *testing.T) {
	sols, err := search.Run(context.Background(), baseProblem(), search.Options{N: 4, Mode: search.ModePareto})
	require.NoError(t, err)
	require.NotEmpty(t, sols)
}

func TestRunNoPreferredReachableWhenDMaxEmpty(t *testing.T) {
	prob := baseProblem()
	// The plant only ever offers "a" before "b"; a preferred behavior
	// requiring the reverse order can never be enforced, so D_max is empty.
	evts := []automaton.Event{
		{Label: "a", Controllable: true, Observable: true},
		{Label: "b", Controllable: true, Observable: true},
	}
	reversed := automaton.New(evts)
	q1 := reversed.AddState(false)
	q2 := reversed.AddState(true)
	_ = reversed.AddTransition(0, "b", q1)
	_ = reversed.AddTransition(q1, "a", q2)
	prob.Preferred = []search.PreferredItem{{Name: "reversed-run", Tier: cost.TierP1, Automaton: reversed}}

	_, err := search.Run(context.Background(), prob, search.Options{N: 4, Mode: search.ModeFast})
	require.ErrorIs(t, err, search.ErrNoPreferredReachable)
}

func TestRunReturnsEmptyWhenNoControllerExists(t *testing.T) {
	prob := baseProblem()
	// A property that can never accept contradicts the plant under every
	// (C, O); the initial D_max solve must fail with "no controller",
	// which Run reports as an empty, error-free result (§8 scenario 4).
	evts := []automaton.Event{
		{Label: "a", Controllable: true, Observable: true},
		{Label: "b", Controllable: true, Observable: true},
	}
	impossible := automaton.New(evts) // single unmarked state, no transitions at all
	prob.Property = impossible

	sols, err := search.Run(context.Background(), prob, search.Options{N: 4, Mode: search.ModeFast})
	require.NoError(t, err)
	require.Empty(t, sols)
}

func TestSolutionsAreMonotonicallyImprovingInCost(t *testing.T) {
	sols, err := search.Run(context.Background(), baseProblem(), search.Options{N: 4, Mode: search.ModeFast})
	require.NoError(t, err)
	for i := 1; i < len(sols); i++ {
		require.Greater(t, sols[i].Cost, sols[i-1].Cost, "each emitted bracket must strictly improve cost over the last")
	}
}
