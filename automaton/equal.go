package automaton

// Equal decides L(a) = L(b) for two deterministic automata sharing the same
// alphabet (as a set of labels — index order need not agree, since every
// lookup below goes through the label, not the position). It is valid only
// once both sides have been projected (Project guarantees determinism and
// τ-freedom); §4.1 specifies a boolean outcome is sufficient, no
// three-valued result is needed.
//
// Algorithm: walk the product of a and b from (a.q0, b.q0); two reachable
// product states are equivalent (same bisimulation-quotient class) iff they
// agree on marking and, transitively, on every reachable successor. A
// mismatch in marking or in which events are defined is a language
// difference and short-circuits to false.
func Equal(a, b *Automaton) (bool, error) {
	if err := sameAlphabet(a, b); err != nil {
		return false, err
	}
	if err := requireDeterministic(a); err != nil {
		return false, err
	}
	if err := requireDeterministic(b); err != nil {
		return false, err
	}

	type pair struct{ sa, sb int }
	visited := map[pair]bool{}
	queue := []pair{{0, 0}}
	visited[pair{0, 0}] = true

	for len(queue) > 0 {
		cur := queue[0]
		queue = queue[1:]

		if a.Marked(cur.sa) != b.Marked(cur.sb) {
			return false, nil
		}

		for _, ev := range a.alphabet {
			da := a.DeterministicNext(cur.sa, ev.Label)
			db := b.DeterministicNext(cur.sb, ev.Label)
			if (da == -1) != (db == -1) {
				return false, nil
			}
			if da == -1 {
				continue
			}
			p := pair{da, db}
			if !visited[p] {
				visited[p] = true
				queue = append(queue, p)
			}
		}
	}

	return true, nil
}

// sameAlphabet compares the two alphabets as sets of labels, not as ordered
// sequences: callers assemble automata from independently-ordered source
// files (a preferred item keeps its own file's order; mprime inherits the
// plant's), so index position carries no meaning here.
func sameAlphabet(a, b *Automaton) error {
	if len(a.alphabet) != len(b.alphabet) {
		return ErrAlphabetMismatch
	}
	for _, e := range a.alphabet {
		if _, ok := b.index[e.Label]; !ok {
			return ErrAlphabetMismatch
		}
	}
	return nil
}

func requireDeterministic(a *Automaton) error {
	for q, trs := range a.out {
		seen := make(map[int]bool, len(trs))
		for _, t := range trs {
			if seen[t.event] {
				return ErrNotDeterministic
			}
			seen[t.event] = true
		}
		_ = q
	}
	return nil
}
