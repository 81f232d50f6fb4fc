package automaton

// Compose computes the parallel composition A ‖ B: synchronize on events
// shared between the two alphabets, interleave on private ones. The result
// contains only states reachable from (a.q0, b.q0); unreachable product
// states are discarded, which canonicalizes composition up to reachability
// (§4.2's tie-breaking rule for the solver's fixpoint output).
//
// A composite state is marked iff both components are marked there.
//
// Complexity: O(|Q_A|·|Q_B|·|Σ|) in the worst case, bounded by the number of
// reachable product states actually discovered.
func Compose(a, b *Automaton) (*Automaton, error) {
	shared, alphabet := mergeAlphabets(a, b)

	out := New(alphabet)
	out.marked[0] = a.Marked(0) && b.Marked(0)

	type pair struct{ sa, sb int }
	seen := map[pair]int{{0, 0}: 0}
	queue := []pair{{0, 0}}

	for len(queue) > 0 {
		cur := queue[0]
		queue = queue[1:]
		curIdx := seen[cur]

		for _, ev := range alphabet {
			label := ev.Label
			_, inA := a.EventIndex(label)
			_, inB := b.EventIndex(label)

			var dstPairs []pair
			switch {
			case inA && inB && shared[label]:
				for _, da := range a.Next(cur.sa, label) {
					for _, db := range b.Next(cur.sb, label) {
						dstPairs = append(dstPairs, pair{da, db})
					}
				}
			case inA && !shared[label]:
				for _, da := range a.Next(cur.sa, label) {
					dstPairs = append(dstPairs, pair{da, cur.sb})
				}
			case inB && !shared[label]:
				for _, db := range b.Next(cur.sb, label) {
					dstPairs = append(dstPairs, pair{cur.sa, db})
				}
			default:
				continue
			}

			for _, dp := range dstPairs {
				dstIdx, ok := seen[dp]
				if !ok {
					dstIdx = out.AddState(a.Marked(dp.sa) && b.Marked(dp.sb))
					seen[dp] = dstIdx
					queue = append(queue, dp)
				}
				if err := out.AddTransition(curIdx, label, dstIdx); err != nil {
					return nil, err
				}
			}
		}
	}

	return out, nil
}

// mergeAlphabets returns the union alphabet of a and b (a's attributes take
// precedence on overlap, matching controllability/observability as declared
// on the plant side), plus the set of labels shared between both.
func mergeAlphabets(a, b *Automaton) (shared map[string]bool, union []Event) {
	shared = make(map[string]bool)
	seen := make(map[string]bool)
	for _, e := range a.alphabet {
		union = append(union, e)
		seen[e.Label] = true
	}
	for _, e := range b.alphabet {
		if seen[e.Label] {
			shared[e.Label] = true
			continue
		}
		union = append(union, e)
		seen[e.Label] = true
	}
	return shared, union
}
