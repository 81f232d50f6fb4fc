package search

import (
	"context"
	"errors"
	"sort"

	"github.com/katalvlaran/robustrepair/automaton"
	"github.com/katalvlaran/robustrepair/cost"
	"github.com/katalvlaran/robustrepair/extractor"
	"github.com/katalvlaran/robustrepair/minimizer"
	"github.com/katalvlaran/robustrepair/preferred"
	"github.com/katalvlaran/robustrepair/solver"
)

// Mode selects the per-bracket minimization strategy.
type Mode int

const (
	// ModePareto keeps a branching frontier of every surviving assignment,
	// one removable event at a time.
	ModePareto Mode = iota
	// ModeFast is a single greedy descending pass, no branching.
	ModeFast
)

// PreferredItem is one user-declared preferred behavior: its name (for
// reporting in Solution.DSat), its priority tier, and the automaton it must
// be checked against.
type PreferredItem struct {
	Name      string
	Tier      cost.Tier
	Automaton *automaton.Automaton
}

// Problem bundles everything one search run needs: the plant and property
// to resynthesize against shrinking authority, the full candidate
// preferred set, and the maximal controllable/observable sets the search
// may only ever shrink from.
type Problem struct {
	Plant, Property          *automaton.Automaton
	SolverMode               solver.Mode
	Preferred                []PreferredItem
	Weights                  cost.Weights
	PrefWeights              cost.Preferred
	MaxControllable          map[string]bool
	MaxObservable            map[string]bool
	PriorityZeroControllable map[string]bool
	PriorityZeroObservable   map[string]bool
}

// Options configures one Run invocation.
type Options struct {
	N       int // bracket budget
	Mode    Mode
	Verbose bool
}

// Solution is one emitted, non-dominated trade-off.
type Solution struct {
	S, MPrime      *automaton.Automaton
	C, O           map[string]bool
	DSat           []string
	UtilPref, Cost int64
}

// assignment is one candidate (C, O) authority pair together with the
// supervisor and M' it produced, memoized so brackets never resolve the
// same pair twice.
type assignment struct {
	c, o   map[string]bool
	s      *automaton.Automaton
	mprime *automaton.Automaton
}

// engineState carries the caches and problem shared across one Run.
type engineState struct {
	prob       Problem
	prefCache  *preferred.Cache
	solveCache map[string]*assignment // keyed on canon(c)+"|"+canon(o)
}

// Run executes the search engine: computes D_max, enumerates brackets in
// priority order, and returns every emitted Pareto-optimal solution, most
// preferred-utility first — decreasing util_pref, increasing cost. This
// follows the bracket order itself ("weaken D from the best downward");
// callers that want the solutions sorted the other way (non-decreasing
// util_pref, non-increasing cost) should reverse the slice.
func Run(ctx context.Context, prob Problem, opts Options) ([]Solution, error) {
	es := &engineState{
		prob:       prob,
		prefCache:  preferred.NewCache(),
		solveCache: make(map[string]*assignment),
	}

	maxAssign, err := es.solve(prob.MaxControllable, prob.MaxObservable)
	if err != nil {
		if errors.Is(err, solver.ErrNoController) {
			// §8 scenario 4: "synthesize returns an empty sequence with a
			// logged warning", not a hard failure.
			return nil, nil
		}
		return nil, err
	}

	dMax, err := es.enforcedSubset(maxAssign, prob.Preferred)
	if err != nil {
		return nil, err
	}
	if len(dMax) == 0 && len(prob.Preferred) > 0 {
		return nil, ErrNoPreferredReachable
	}

	p3 := tierItems(dMax, cost.TierP3)
	p2 := tierItems(dMax, cost.TierP2)
	p1 := tierItems(dMax, cost.TierP1)

	var solutions []Solution
	minCost := int64(-1 << 62)
	brackets := 0

	for i := 0; i <= len(p3) && brackets < opts.N; i++ {
		for j := 0; j <= len(p2) && brackets < opts.N; j++ {
			for k := 0; k <= len(p1) && brackets < opts.N; k++ {
				select {
				case <-ctx.Done():
					return solutions, ctx.Err()
				default:
				}

				brackets++
				best, ok, err := es.bestInBracket(p3, p2, p1, i, j, k, opts.Mode)
				if err != nil {
					return nil, err
				}
				if !ok {
					continue
				}
				if best.Cost > minCost {
					minCost = best.Cost
					solutions = append(solutions, best)
				}
			}
		}
	}

	return solutions, nil
}

// bestInBracket tries every i/j/k-sized removal combination from the three
// tier lists, minimizes authority for each surviving D', and returns the
// single cheapest (highest-cost) result across the whole bracket. Results
// tied on cost are not accumulated: the first one found is kept.
func (es *engineState) bestInBracket(p3, p2, p1 []PreferredItem, i, j, k int, mode Mode) (Solution, bool, error) {
	var best Solution
	found := false

	for _, remP3 := range combinations(len(p3), i) {
		for _, remP2 := range combinations(len(p2), j) {
			for _, remP1 := range combinations(len(p1), k) {
				dPrime := subtract(p3, p2, p1, remP3, remP2, remP1)

				sol, ok, err := es.minimizeFor(dPrime, mode)
				if err != nil {
					return Solution{}, false, err
				}
				if !ok {
					continue
				}
				if !found || sol.Cost > best.Cost {
					best = sol
					found = true
				}
			}
		}
	}

	return best, found, nil
}

// minimizeFor finds the cheapest authority assignment that still enforces
// every item in dPrime, dispatching to the configured strategy.
func (es *engineState) minimizeFor(dPrime []PreferredItem, mode Mode) (Solution, bool, error) {
	start, err := es.solve(es.prob.MaxControllable, es.prob.MaxObservable)
	if err != nil {
		return Solution{}, false, err
	}
	ok, err := es.allEnforced(start, dPrime)
	if err != nil {
		return Solution{}, false, err
	}
	if !ok {
		return Solution{}, false, nil
	}

	var final *assignment
	if mode == ModeFast {
		final, err = es.fastMinimize(start, dPrime)
	} else {
		final, err = es.paretoMinimize(start, dPrime)
	}
	if err != nil {
		return Solution{}, false, err
	}

	cMin, oMin := minimizer.Minimize(final.s, final.c, final.o, es.prob.PriorityZeroControllable, es.prob.PriorityZeroObservable)

	return Solution{
		S:        final.s,
		MPrime:   final.mprime,
		C:        final.c,
		O:        final.o,
		DSat:     names(dPrime),
		UtilPref: es.prob.PrefWeights.UtilPref(names(dPrime)),
		Cost:     es.prob.Weights.Cost(cMin, oMin),
	}, true, nil
}

// fastMinimize implements the greedy single pass of §4.7: tentatively drop
// each removable event in descending-weight order, accept the drop iff
// dPrime still holds.
func (es *engineState) fastMinimize(cur *assignment, dPrime []PreferredItem) (*assignment, error) {
	for _, evt := range es.removalOrder() {
		for _, d := range candidateDrops(cur, evt) {
			candidate, err := es.solve(d.c, d.o)
			if err != nil {
				continue // no controller under this drop: keep the event
			}
			ok, err := es.allEnforced(candidate, dPrime)
			if err != nil {
				return nil, err
			}
			if ok {
				cur = candidate
				break
			}
		}
	}

	return cur, nil
}

// paretoMinimize implements the branching frontier of §4.7: walks the
// removable events from heaviest to lightest weight, dropping the current
// event from every frontier member and keeping all survivors; an event
// whose drop no member survives leaves the previous frontier in place.
func (es *engineState) paretoMinimize(start *assignment, dPrime []PreferredItem) (*assignment, error) {
	frontier := []*assignment{start}

	for _, evt := range es.removalOrder() {
		var next []*assignment
		seen := make(map[string]bool)

		for _, member := range frontier {
			for _, drop := range candidateDrops(member, evt) {
				key := canon(drop.c) + "|" + canon(drop.o)
				if seen[key] {
					continue
				}
				candidate, err := es.solve(drop.c, drop.o)
				if err != nil {
					continue
				}
				ok, err := es.allEnforced(candidate, dPrime)
				if err != nil {
					return nil, err
				}
				if ok {
					seen[key] = true
					next = append(next, candidate)
				}
			}
		}

		if len(next) > 0 {
			frontier = next
		}
		// else: tier exhausted with no survivors, frontier reinstated (no-op)
	}

	best := frontier[0]
	bestCost := es.prob.Weights.Cost(best.c, best.o)
	for _, f := range frontier[1:] {
		c := es.prob.Weights.Cost(f.c, f.o)
		if c > bestCost {
			best, bestCost = f, c
		}
	}
	return best, nil
}

type drop struct{ c, o map[string]bool }

// candidateDrops returns the one or two ways evt can be removed from
// member's authority: dropping observability requires evt already be
// non-controllable ("may not drop observability of a still-controllable
// event", §4.7).
func candidateDrops(member *assignment, evt string) []drop {
	var out []drop
	if member.c[evt] {
		out = append(out, drop{c: withoutKey(member.c, evt), o: member.o})
	}
	if member.o[evt] && !member.c[evt] {
		out = append(out, drop{c: member.c, o: withoutKey(member.o, evt)})
	}
	return out
}

// removalOrder lists every non-priority-0 controllable/observable event,
// sorted by descending weight so the heaviest-cost authority is attempted
// first (§4.7: "proceeds by cost tier from high to low").
func (es *engineState) removalOrder() []string {
	seen := make(map[string]bool)
	var evts []string
	for label := range es.prob.MaxControllable {
		if es.prob.PriorityZeroControllable[label] {
			continue
		}
		if !seen[label] {
			seen[label] = true
			evts = append(evts, label)
		}
	}
	for label := range es.prob.MaxObservable {
		if es.prob.PriorityZeroObservable[label] {
			continue
		}
		if !seen[label] {
			seen[label] = true
			evts = append(evts, label)
		}
	}

	weight := es.eventWeights()
	sort.Slice(evts, func(i, j int) bool {
		if weight[evts[i]] != weight[evts[j]] {
			return weight[evts[i]] > weight[evts[j]]
		}
		return evts[i] < evts[j]
	})
	return evts
}

func (es *engineState) eventWeights() map[string]int64 {
	w := make(map[string]int64)
	weights, _, _ := weightsTable(es.prob.Weights)
	for tier, evts := range es.prob.Weights.Controllable {
		for _, e := range evts {
			w[e] = weights[tier]
		}
	}
	for tier, evts := range es.prob.Weights.Observable {
		for _, e := range evts {
			if w[e] < weights[tier] {
				w[e] = weights[tier]
			}
		}
	}
	return w
}

// weightsTable is a small re-derivation of cost.Weights' internal tier
// table, needed here only to order removals (the authoritative cost
// figure always comes from cost.Weights.Cost).
func weightsTable(w cost.Weights) (map[cost.Tier]int64, map[string]cost.Tier, map[string]cost.Tier) {
	counts := make(map[cost.Tier]int)
	cTier := make(map[string]cost.Tier)
	for t, evts := range w.Controllable {
		counts[t] += len(evts)
		for _, e := range evts {
			cTier[e] = t
		}
	}
	oTier := make(map[string]cost.Tier)
	for t, evts := range w.Observable {
		counts[t] += len(evts)
		for _, e := range evts {
			oTier[e] = t
		}
	}
	return cost.TierWeights(counts), cTier, oTier
}

// solve resynthesizes the supervisor under (c, o), memoized.
func (es *engineState) solve(c, o map[string]bool) (*assignment, error) {
	key := canon(c) + "|" + canon(o)
	if a, ok := es.solveCache[key]; ok {
		return a, nil
	}

	g := es.prob.Plant.WithFlags(c, o)
	sp, err := solver.Supremal(g, es.prob.Property, es.prob.SolverMode)
	if err != nil {
		return nil, err
	}

	spProj := sp.Project(o)
	gpProj := g.Project(o)
	s, err := extractor.ConstructSupervisor(spProj, gpProj, c, o)
	if err != nil {
		return nil, err
	}

	mprime, err := automaton.Compose(s, g)
	if err != nil {
		return nil, err
	}

	a := &assignment{c: c, o: o, s: s, mprime: mprime}
	es.solveCache[key] = a
	return a, nil
}

// allEnforced checks every item in items against assignment a's M',
// memoized through the shared preferred.Cache.
func (es *engineState) allEnforced(a *assignment, items []PreferredItem) (bool, error) {
	for _, item := range items {
		ok, err := es.prefCache.EnforcedCached(a.mprime, item.Automaton, a.c, a.o)
		if err != nil {
			return false, err
		}
		if !ok {
			return false, nil
		}
	}
	return true, nil
}

// enforcedSubset filters items down to those actually enforced by a — the
// D_max computation of §4.7.
func (es *engineState) enforcedSubset(a *assignment, items []PreferredItem) ([]PreferredItem, error) {
	var out []PreferredItem
	for _, item := range items {
		ok, err := es.prefCache.EnforcedCached(a.mprime, item.Automaton, a.c, a.o)
		if err != nil {
			return nil, err
		}
		if ok {
			out = append(out, item)
		}
	}
	return out, nil
}

func tierItems(items []PreferredItem, tier cost.Tier) []PreferredItem {
	var out []PreferredItem
	for _, it := range items {
		if it.Tier == tier {
			out = append(out, it)
		}
	}
	return out
}

// subtract builds D' = (p3∪p2∪p1) minus the items at the given indices.
func subtract(p3, p2, p1 []PreferredItem, remP3, remP2, remP1 []int) []PreferredItem {
	var out []PreferredItem
	out = append(out, without(p3, remP3)...)
	out = append(out, without(p2, remP2)...)
	out = append(out, without(p1, remP1)...)
	return out
}

func without(items []PreferredItem, indices []int) []PreferredItem {
	excl := make(map[int]bool, len(indices))
	for _, i := range indices {
		excl[i] = true
	}
	var out []PreferredItem
	for i, it := range items {
		if !excl[i] {
			out = append(out, it)
		}
	}
	return out
}

// combinations returns every r-sized subset of {0,...,n-1} as index lists.
func combinations(n, r int) [][]int {
	if r == 0 {
		return [][]int{{}}
	}
	if r > n {
		return nil
	}
	var out [][]int
	idx := make([]int, r)
	for i := range idx {
		idx[i] = i
	}
	for {
		out = append(out, append([]int(nil), idx...))
		i := r - 1
		for i >= 0 && idx[i] == n-r+i {
			i--
		}
		if i < 0 {
			break
		}
		idx[i]++
		for j := i + 1; j < r; j++ {
			idx[j] = idx[j-1] + 1
		}
	}
	return out
}

func names(items []PreferredItem) []string {
	out := make([]string, len(items))
	for i, it := range items {
		out[i] = it.Name
	}
	return out
}

func copySet(m map[string]bool) map[string]bool {
	out := make(map[string]bool, len(m))
	for k, v := range m {
		out[k] = v
	}
	return out
}

func withoutKey(m map[string]bool, key string) map[string]bool {
	out := copySet(m)
	delete(out, key)
	return out
}

func canon(m map[string]bool) string {
	labels := make([]string, 0, len(m))
	for l, ok := range m {
		if ok {
			labels = append(labels, l)
		}
	}
	sort.Strings(labels)
	out := ""
	for i, l := range labels {
		if i > 0 {
			out += ","
		}
		out += l
	}
	return out
}
