package solver

import "github.com/katalvlaran/robustrepair/automaton"

// Mode selects which fixpoint variant Supremal runs.
type Mode int

const (
	// ModePrefixClosed computes the prefix-closed controllable-normal
	// sublanguage: marking is ignored, every surviving reachable state
	// counts as accepting.
	ModePrefixClosed Mode = iota
	// ModeNonBlocking additionally requires every surviving state to be
	// able to reach a genuinely marked state (both components marked).
	ModeNonBlocking
)

// pair identifies one product state by its underlying (g, h) component
// state indices.
type pair struct{ g, h int }

// Supremal computes the supremal sublanguage L ⊆ L(g) ∩ L(h) that is
// controllable and normal with respect to g's controllability/observability
// flags. See package doc for the two modes.
func Supremal(g, h *automaton.Automaton, mode Mode) (*automaton.Automaton, error) {
	prod, pairs, err := product(g, h)
	if err != nil {
		return nil, err
	}

	uncontrollable, unobservable := classify(g)
	uf := buildObservationalEquivalence(g, unobservable)

	safe := make([]bool, prod.NumStates())
	for i := range safe {
		safe[i] = true
	}

	for {
		changedControl := enforceControllability(g, prod, pairs, uncontrollable, safe)
		changedNormal := enforceNormality(prod, pairs, uf, safe)
		changedTrim := false
		if mode == ModeNonBlocking {
			changedTrim = trimToCoReachable(prod, pairs, g, h, safe)
		}
		if !changedControl && !changedNormal && !changedTrim {
			break
		}
	}

	if !safe[0] {
		return nil, ErrNoController
	}

	return rebuild(prod, pairs, g, h, safe, mode)
}

// product builds the full reachable product of g and h (like
// automaton.Compose) but additionally records, for every product state, the
// underlying (g, h) component pair — needed to check controllability and
// normality against g directly.
func product(g, h *automaton.Automaton) (*automaton.Automaton, []pair, error) {
	shared, alphabet := sharedAndUnion(g, h)

	out := automaton.NewEmpty(alphabet)
	out.AddState(g.Marked(0) && h.Marked(0))

	pairs := []pair{{0, 0}}
	seen := map[pair]int{{0, 0}: 0}
	queue := []pair{{0, 0}}

	for len(queue) > 0 {
		cur := queue[0]
		queue = queue[1:]
		curIdx := seen[cur]

		for _, ev := range alphabet {
			label := ev.Label
			_, inG := g.EventIndex(label)
			_, inH := h.EventIndex(label)

			var dsts []pair
			switch {
			case inG && inH && shared[label]:
				for _, dg := range g.Next(cur.g, label) {
					for _, dh := range h.Next(cur.h, label) {
						dsts = append(dsts, pair{dg, dh})
					}
				}
			case inG && !shared[label]:
				for _, dg := range g.Next(cur.g, label) {
					dsts = append(dsts, pair{dg, cur.h})
				}
			case inH && !shared[label]:
				for _, dh := range h.Next(cur.h, label) {
					dsts = append(dsts, pair{cur.g, dh})
				}
			default:
				continue
			}

			for _, dp := range dsts {
				idx, ok := seen[dp]
				if !ok {
					idx = out.AddState(g.Marked(dp.g) && h.Marked(dp.h))
					seen[dp] = idx
					pairs = append(pairs, dp)
					queue = append(queue, dp)
				}
				if err := out.AddTransition(curIdx, label, idx); err != nil {
					return nil, nil, err
				}
			}
		}
	}

	return out, pairs, nil
}

func sharedAndUnion(g, h *automaton.Automaton) (shared map[string]bool, union []automaton.Event) {
	shared = make(map[string]bool)
	seen := make(map[string]bool)
	for _, e := range g.Alphabet() {
		union = append(union, e)
		seen[e.Label] = true
	}
	for _, e := range h.Alphabet() {
		if seen[e.Label] {
			shared[e.Label] = true
			continue
		}
		union = append(union, e)
		seen[e.Label] = true
	}
	return shared, union
}

func classify(g *automaton.Automaton) (uncontrollable, unobservable map[string]bool) {
	uncontrollable = make(map[string]bool)
	unobservable = make(map[string]bool)
	for _, e := range g.Alphabet() {
		if !e.Controllable {
			uncontrollable[e.Label] = true
		}
		if !e.Observable {
			unobservable[e.Label] = true
		}
	}
	return uncontrollable, unobservable
}

// enforceControllability marks a product state unsafe whenever g allows an
// uncontrollable event that the product either forbids entirely or only
// leads to an already-unsafe state.
func enforceControllability(g, prod *automaton.Automaton, pairs []pair, uncontrollable map[string]bool, safe []bool) bool {
	changed := false
	for p := 0; p < prod.NumStates(); p++ {
		if !safe[p] {
			continue
		}
		gs := pairs[p].g
		for evt := range uncontrollable {
			if len(g.Next(gs, evt)) == 0 {
				continue
			}
			ok := false
			for _, d := range prod.Next(p, evt) {
				if safe[d] {
					ok = true
					break
				}
			}
			if !ok {
				safe[p] = false
				changed = true
				break
			}
		}
	}
	return changed
}

// enforceNormality marks a product state unsafe whenever its underlying
// g-state is observationally equivalent (via unobservable transitions) to a
// g-state paired into an unsafe product state — the supervisor cannot tell
// the two traces apart, so the safe one must be given up too.
func enforceNormality(prod *automaton.Automaton, pairs []pair, uf *unionFind, safe []bool) bool {
	// classStatus[root] = has this equivalence class been observed unsafe?
	classUnsafe := make(map[int]bool)
	for p, pr := range pairs {
		if !safe[p] {
			classUnsafe[uf.find(pr.g)] = true
		}
	}
	changed := false
	for p, pr := range pairs {
		if safe[p] && classUnsafe[uf.find(pr.g)] {
			safe[p] = false
			changed = true
		}
	}
	return changed
}

// trimToCoReachable additionally marks unsafe any state that cannot reach a
// state marked in both g and h (co-reachability), the non-blocking variant's
// "marked-state reachable" requirement.
func trimToCoReachable(prod *automaton.Automaton, pairs []pair, g, h *automaton.Automaton, safe []bool) bool {
	canReachMarked := make([]bool, prod.NumStates())
	for p, pr := range pairs {
		if safe[p] && g.Marked(pr.g) && h.Marked(pr.h) {
			canReachMarked[p] = true
		}
	}
	// reverse fixpoint: propagate canReachMarked backwards along safe transitions
	changed := true
	for changed {
		changed = false
		for p := 0; p < prod.NumStates(); p++ {
			if !safe[p] || canReachMarked[p] {
				continue
			}
			for _, ev := range prod.Alphabet() {
				for _, d := range prod.Next(p, ev.Label) {
					if safe[d] && canReachMarked[d] {
						canReachMarked[p] = true
						changed = true
						break
					}
				}
				if canReachMarked[p] {
					break
				}
			}
		}
	}

	trimmed := false
	for p := range safe {
		if safe[p] && !canReachMarked[p] {
			safe[p] = false
			trimmed = true
		}
	}
	return trimmed
}

// rebuild constructs the output automaton from the reachable-from-q0 subset
// of safe product states, canonicalizing via a fresh BFS (§4.2's
// tie-breaking: "canonicalize via reachable-only composition").
func rebuild(prod *automaton.Automaton, pairs []pair, g, h *automaton.Automaton, safe []bool, mode Mode) (*automaton.Automaton, error) {
	out := automaton.NewEmpty(prod.Alphabet())
	seen := map[int]int{0: out.AddState(markingFor(pairs[0], g, h, mode))}
	queue := []int{0}

	for len(queue) > 0 {
		p := queue[0]
		queue = queue[1:]
		curIdx := seen[p]

		for _, ev := range prod.Alphabet() {
			for _, d := range prod.Next(p, ev.Label) {
				if !safe[d] {
					continue
				}
				dstIdx, ok := seen[d]
				if !ok {
					dstIdx = out.AddState(markingFor(pairs[d], g, h, mode))
					seen[d] = dstIdx
					queue = append(queue, d)
				}
				if err := out.AddTransition(curIdx, ev.Label, dstIdx); err != nil {
					return nil, err
				}
			}
		}
	}

	return out, nil
}

func markingFor(p pair, g, h *automaton.Automaton, mode Mode) bool {
	if mode == ModePrefixClosed {
		return true
	}
	return g.Marked(p.g) && h.Marked(p.h)
}

// unionFind is a minimal disjoint-set structure over g's state indices,
// used to group g-states into observational-equivalence classes reachable
// from one another via purely unobservable transitions.
type unionFind struct{ parent []int }

func newUnionFind(n int) *unionFind {
	uf := &unionFind{parent: make([]int, n)}
	for i := range uf.parent {
		uf.parent[i] = i
	}
	return uf
}

func (uf *unionFind) find(x int) int {
	for uf.parent[x] != x {
		uf.parent[x] = uf.parent[uf.parent[x]]
		x = uf.parent[x]
	}
	return x
}

func (uf *unionFind) union(a, b int) {
	ra, rb := uf.find(a), uf.find(b)
	if ra != rb {
		uf.parent[ra] = rb
	}
}

// buildObservationalEquivalence unions g-states connected by an
// unobservable transition in either direction, so the resulting classes are
// exactly the sets of states indistinguishable by an observer.
func buildObservationalEquivalence(g *automaton.Automaton, unobservable map[string]bool) *unionFind {
	uf := newUnionFind(g.NumStates())
	for q := 0; q < g.NumStates(); q++ {
		for _, ev := range g.Alphabet() {
			if !unobservable[ev.Label] {
				continue
			}
			for _, d := range g.Next(q, ev.Label) {
				uf.union(q, d)
			}
		}
	}
	return uf
}
