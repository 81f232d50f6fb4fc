package automaton

// Tau is the reserved label for the silent event introduced by observer
// projection (§3 of the design: "A reserved label τ denotes the silent
// event introduced by observer projection").
const Tau = "_tau_"

// Event is a label drawn from the automaton's alphabet, carrying the two
// supervisor-relevant attributes. Unobservable events are implicitly
// uncontrollable; callers that build an Event directly are responsible for
// keeping that invariant (package engine's buildAlphabet rejects a
// configuration that breaks it).
type Event struct {
	Label        string
	Controllable bool
	Observable   bool
}

// transition is one outgoing edge, event referenced by its alphabet index
// so event identity stays stable across composition and projection.
type transition struct {
	event int
	dst   int
}

// Automaton is a finite labeled transition system A = (Q, Σ, δ, q0, F).
//
// States are dense indices in [0, len(marked)), q0 is always 0. Transitions
// are stored as an adjacency list out[src] = []transition, so δ need not be
// deterministic until after Project. The alphabet is a slice, not a set, so
// event indices are stable for the lifetime of the automaton.
type Automaton struct {
	alphabet []Event
	index    map[string]int // label -> index into alphabet
	marked   []bool
	out      [][]transition
}

// New creates a single-state automaton (just q0, unmarked) over alphabet.
// The alphabet order is preserved and used for all later event indexing.
func New(alphabet []Event) *Automaton {
	a := NewEmpty(alphabet)
	a.AddState(false)
	return a
}

// NewEmpty creates a zero-state automaton over alphabet. Callers that build
// up states incrementally from an external representation (model loaders,
// Load) start here and call AddState for each state, including q0.
func NewEmpty(alphabet []Event) *Automaton {
	a := &Automaton{
		alphabet: append([]Event(nil), alphabet...),
		index:    make(map[string]int, len(alphabet)),
	}
	for i, e := range a.alphabet {
		a.index[e.Label] = i
	}
	return a
}

// NumStates returns |Q|.
func (a *Automaton) NumStates() int { return len(a.marked) }

// Alphabet returns a copy of Σ in its stable order.
func (a *Automaton) Alphabet() []Event {
	return append([]Event(nil), a.alphabet...)
}

// EventIndex returns the stable index of label in Σ, and whether it exists.
func (a *Automaton) EventIndex(label string) (int, bool) {
	i, ok := a.index[label]
	return i, ok
}

// Marked reports whether state q is accepting. Panics if q is out of range,
// mirroring the kernel's "invalid state index is fatal" failure mode.
func (a *Automaton) Marked(q int) bool {
	return a.marked[q]
}

// AddState appends a new state and returns its index.
func (a *Automaton) AddState(marked bool) int {
	a.marked = append(a.marked, marked)
	a.out = append(a.out, nil)
	return len(a.marked) - 1
}

// AddTransition adds (src, evt, dst) to δ. evt must already be in Σ.
func (a *Automaton) AddTransition(src int, evt string, dst int) error {
	if src < 0 || src >= len(a.marked) || dst < 0 || dst >= len(a.marked) {
		return ErrInvalidState
	}
	ei, ok := a.index[evt]
	if !ok {
		return ErrUnknownEvent
	}
	a.out[src] = append(a.out[src], transition{event: ei, dst: dst})
	return nil
}

// Transitions returns the (event label, dst) pairs defined at state q.
func (a *Automaton) Transitions(q int) []struct {
	Event string
	Dst   int
} {
	out := a.out[q]
	res := make([]struct {
		Event string
		Dst   int
	}, len(out))
	for i, t := range out {
		res[i].Event = a.alphabet[t.event].Label
		res[i].Dst = t.dst
	}
	return res
}

// Next returns the set of destination states reachable from q on evt
// (non-deterministic until Project has been applied).
func (a *Automaton) Next(q int, evt string) []int {
	ei, ok := a.index[evt]
	if !ok {
		return nil
	}
	var dsts []int
	for _, t := range a.out[q] {
		if t.event == ei {
			dsts = append(dsts, t.dst)
		}
	}
	return dsts
}

// DeterministicNext returns the unique destination on evt from q, or -1 if
// undefined. Callers that need a determinism guarantee should run Equal's
// internal check or rely on Project having been applied first.
func (a *Automaton) DeterministicNext(q int, evt string) int {
	dsts := a.Next(q, evt)
	if len(dsts) == 0 {
		return -1
	}
	return dsts[0]
}
