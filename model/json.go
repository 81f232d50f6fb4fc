package model

import (
	"encoding/json"
	"io"

	"github.com/katalvlaran/robustrepair/automaton"
)

// jsonModel mirrors the explicit automaton JSON format of §6:
//
//	{"process": "NAME", "alphabet": ["a","b"], "transitions": [[0,1,2], ...]}
//
// Marking is implicit — every state referenced is marked, matching the
// Python original's StateMachine.from_json (m.accept = m.all_states()).
type jsonModel struct {
	Process     string   `json:"process"`
	Alphabet    []string `json:"alphabet"`
	Transitions [][3]int `json:"transitions"`
}

// ParseJSON reads the explicit automaton JSON format. controllable and
// observable classify each alphabet label; labels absent from either map
// default to uncontrollable/unobservable.
func ParseJSON(r io.Reader, controllable, observable map[string]bool) (*automaton.Automaton, error) {
	var m jsonModel
	if err := json.NewDecoder(r).Decode(&m); err != nil {
		return nil, ErrMalformedJSON
	}
	if len(m.Alphabet) == 0 && len(m.Transitions) > 0 {
		return nil, ErrMalformedJSON
	}

	alphabet := make([]automaton.Event, 0, len(m.Alphabet))
	for _, label := range m.Alphabet {
		alphabet = append(alphabet, automaton.Event{
			Label:        label,
			Controllable: controllable[label],
			Observable:   observable[label],
		})
	}

	states := allStates(m.Transitions)
	a := automaton.NewEmpty(alphabet)
	for i := 0; i <= states; i++ {
		a.AddState(true) // implicit: all states marked
	}
	for _, t := range m.Transitions {
		src, evtIdx, dst := t[0], t[1], t[2]
		if evtIdx < 0 || evtIdx >= len(m.Alphabet) {
			return nil, ErrMalformedJSON
		}
		if err := a.AddTransition(src, m.Alphabet[evtIdx], dst); err != nil {
			return nil, err
		}
	}

	return a, nil
}

// allStates returns the highest state index referenced by transitions
// (matching the Python original's StateMachine.all_states, which always
// includes state 0).
func allStates(transitions [][3]int) int {
	max := 0
	for _, t := range transitions {
		if t[0] > max {
			max = t[0]
		}
		if t[2] > max {
			max = t[2]
		}
	}
	return max
}
