package extractor

import "github.com/katalvlaran/robustrepair/automaton"

// pairState pairs a supervisor-language state with a plant state, the BFS
// frontier unit (mirrors the teacher corpus's BFS walker over a single
// graph's vertex IDs, generalized to a pair of automaton state indices).
type pairState struct{ sp, gp int }

// ConstructSupervisor builds a supervisor automaton over Σ_o that, composed
// with Gp, preserves exactly L(Sp). controllable and observable classify
// events by label; events absent from observable are never visited (the
// supervisor only acts on Σ_o).
//
// Invariant: the result disables only controllable events actually
// reachable at some state, and has L(S ‖ G) = L(Sp ‖ Gp).
func ConstructSupervisor(sp, gp *automaton.Automaton, controllable, observable map[string]bool) (*automaton.Automaton, error) {
	obsAlphabet := make([]automaton.Event, 0)
	for _, e := range sp.Alphabet() {
		if observable[e.Label] {
			obsAlphabet = append(obsAlphabet, e)
		}
	}

	out := automaton.NewEmpty(obsAlphabet)
	out.AddState(sp.Marked(0))

	w := &walker{
		sp: sp, gp: gp, out: out,
		controllable: controllable, observable: observable,
		seen: map[pairState]int{{0, 0}: 0},
	}
	w.queue = append(w.queue, pairState{0, 0})

	for len(w.queue) > 0 {
		cur := w.dequeue()
		if err := w.visit(cur); err != nil {
			return nil, err
		}
	}

	return out, nil
}

type walker struct {
	sp, gp       *automaton.Automaton
	out          *automaton.Automaton
	controllable map[string]bool
	observable   map[string]bool
	seen         map[pairState]int
	queue        []pairState
}

func (w *walker) dequeue() pairState {
	item := w.queue[0]
	w.queue = w.queue[1:]
	return item
}

// visit applies the four-way rule of §4.3 to every observable event at cur.
func (w *walker) visit(cur pairState) error {
	curIdx := w.seen[cur]

	for label, isObs := range w.observable {
		if !isObs {
			continue
		}
		spDst := w.sp.DeterministicNext(cur.sp, label)
		gpDst := w.gp.DeterministicNext(cur.gp, label)

		switch {
		case spDst != -1:
			// (1) defined in Sp: follow both sides.
			next := pairState{spDst, gpDst}
			dstIdx, ok := w.seen[next]
			if !ok {
				dstIdx = w.out.AddState(w.sp.Marked(spDst))
				w.seen[next] = dstIdx
				w.queue = append(w.queue, next)
			}
			if err := w.out.AddTransition(curIdx, label, dstIdx); err != nil {
				return err
			}
		case !w.controllable[label]:
			// (2) uncontrollable and observable but undefined in Sp:
			// self-loop for admissibility.
			if err := w.out.AddTransition(curIdx, label, curIdx); err != nil {
				return err
			}
		case gpDst == -1:
			// (3) impossible in the plant: self-loop for redundancy.
			if err := w.out.AddTransition(curIdx, label, curIdx); err != nil {
				return err
			}
		default:
			// (4) legitimately disabled: do nothing.
		}
	}

	return nil
}
