package automaton

// Project computes the observer projection of a over the events for which
// observable[label] is true: a subset construction that replaces chains of
// unobservable events by ε-closures, renames the hidden events to τ
// internally, and discards τ from the result. The output is deterministic
// over the observable alphabet and τ-free (§3 invariant (iii)).
//
// A macro-state is marked iff it contains any marked component state.
func (a *Automaton) Project(observable map[string]bool) *Automaton {
	obsAlphabet := make([]Event, 0, len(a.alphabet))
	for _, e := range a.alphabet {
		if observable[e.Label] {
			obsAlphabet = append(obsAlphabet, e)
		}
	}

	out := New(obsAlphabet)
	start := a.epsilonClosure(setOf(0), observable)

	type macro = string // canonical key for a sorted state set
	key := func(s map[int]bool) macro { return macroKey(s) }

	seen := map[macro]int{key(start): 0}
	out.marked[0] = anyMarked(a, start)
	queue := []map[int]bool{start}
	order := []macro{key(start)}

	for len(queue) > 0 {
		cur := queue[0]
		queue = queue[1:]
		curKey := order[0]
		order = order[1:]
		curIdx := seen[curKey]

		for _, ev := range obsAlphabet {
			next := make(map[int]bool)
			for q := range cur {
				for _, d := range a.Next(q, ev.Label) {
					next[d] = true
				}
			}
			if len(next) == 0 {
				continue
			}
			closure := a.epsilonClosure(next, observable)
			k := key(closure)
			dstIdx, ok := seen[k]
			if !ok {
				dstIdx = out.AddState(anyMarked(a, closure))
				seen[k] = dstIdx
				queue = append(queue, closure)
				order = append(order, k)
			}
			_ = out.AddTransition(curIdx, ev.Label, dstIdx)
		}
	}

	return out
}

// Abstract hides the events in hide from a, projecting them away exactly
// like Project does for unobservable events, but driven by an explicit hide
// list rather than an observable/unobservable split. This supplements the
// Python original's Repair.abstract pre-processing step (used to explore a
// model variant with a subset of events hidden before synthesis).
func (a *Automaton) Abstract(hide []string) *Automaton {
	hidden := make(map[string]bool, len(hide))
	for _, h := range hide {
		hidden[h] = true
	}
	observable := make(map[string]bool, len(a.alphabet))
	for _, e := range a.alphabet {
		observable[e.Label] = !hidden[e.Label]
	}
	return a.Project(observable)
}

// ExtendAlphabet returns a copy of a extended to include evts, adding each
// genuinely new event as a self-loop on every existing state (the
// "stuttering extension" of §4.1: preserves the language exactly when the
// new events were previously unconstrained).
func (a *Automaton) ExtendAlphabet(evts []Event) *Automaton {
	newAlphabet := append([]Event(nil), a.alphabet...)
	var fresh []Event
	for _, e := range evts {
		if _, ok := a.index[e.Label]; !ok {
			newAlphabet = append(newAlphabet, e)
			fresh = append(fresh, e)
		}
	}

	out := New(newAlphabet)
	out.marked = append([]bool(nil), a.marked...)
	out.out = make([][]transition, len(a.out))
	for q, trs := range a.out {
		for _, t := range trs {
			_ = out.AddTransition(q, a.alphabet[t.event].Label, t.dst)
		}
	}
	for q := range out.out {
		for _, e := range fresh {
			_ = out.AddTransition(q, e.Label, q)
		}
	}
	return out
}

// WithFlags returns a copy of a whose alphabet has its Controllable and
// Observable bits overridden for every label present in controllable/
// observable, leaving states and transitions untouched. Used by the search
// engine to re-run synthesis against a weakened authority assignment
// without rebuilding the automaton from its source file (§4.7: the
// minimizer "re-runs the solver" against shrinking C/O each round).
func (a *Automaton) WithFlags(controllable, observable map[string]bool) *Automaton {
	newAlphabet := make([]Event, len(a.alphabet))
	for i, e := range a.alphabet {
		newAlphabet[i] = Event{
			Label:        e.Label,
			Controllable: controllable[e.Label],
			Observable:   observable[e.Label],
		}
	}

	out := NewEmpty(newAlphabet)
	out.marked = append([]bool(nil), a.marked...)
	out.out = make([][]transition, len(a.out))
	for q, trs := range a.out {
		for _, t := range trs {
			_ = out.AddTransition(q, a.alphabet[t.event].Label, t.dst)
		}
	}
	return out
}

// epsilonClosure returns the set of states reachable from states in s via
// zero or more unobservable transitions.
func (a *Automaton) epsilonClosure(s map[int]bool, observable map[string]bool) map[int]bool {
	closure := make(map[int]bool, len(s))
	for q := range s {
		closure[q] = true
	}
	stack := make([]int, 0, len(s))
	for q := range s {
		stack = append(stack, q)
	}
	for len(stack) > 0 {
		q := stack[len(stack)-1]
		stack = stack[:len(stack)-1]
		for _, t := range a.out[q] {
			ev := a.alphabet[t.event]
			if observable[ev.Label] {
				continue
			}
			if !closure[t.dst] {
				closure[t.dst] = true
				stack = append(stack, t.dst)
			}
		}
	}
	return closure
}

func setOf(q int) map[int]bool { return map[int]bool{q: true} }

func anyMarked(a *Automaton, s map[int]bool) bool {
	for q := range s {
		if a.Marked(q) {
			return true
		}
	}
	return false
}

// macroKey builds a deterministic string key for a state set so the subset
// construction's visited map does not depend on map iteration order.
func macroKey(s map[int]bool) string {
	ids := make([]int, 0, len(s))
	for q := range s {
		ids = append(ids, q)
	}
	// simple insertion sort: macro-states are small in practice.
	for i := 1; i < len(ids); i++ {
		for j := i; j > 0 && ids[j-1] > ids[j]; j-- {
			ids[j-1], ids[j] = ids[j], ids[j-1]
		}
	}
	b := make([]byte, 0, len(ids)*4)
	for i, id := range ids {
		if i > 0 {
			b = append(b, ',')
		}
		b = appendInt(b, id)
	}
	return string(b)
}

func appendInt(b []byte, n int) []byte {
	if n == 0 {
		return append(b, '0')
	}
	start := len(b)
	for n > 0 {
		b = append(b, byte('0'+n%10))
		n /= 10
	}
	for i, j := start, len(b)-1; i < j; i, j = i+1, j-1 {
		b[i], b[j] = b[j], b[i]
	}
	return b
}
