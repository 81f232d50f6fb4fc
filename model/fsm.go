package model

import (
	"bufio"
	"io"
	"strconv"
	"strings"

	"github.com/katalvlaran/robustrepair/automaton"
)

// ParseFSM reads the FSM text format of §6: a state count, then per state a
// blank line, `<name>\t<marked 0|1>\t<out-degree>`, then each transition
// line `<label>\tState<dst>\t<c|uc>\t<o|uo>`. The reserved label "_tau_"
// occupies alphabet index 0, matching the Python original's
// StateMachine.from_fsm convention (alphabet = ["_tau_"] + given labels).
func ParseFSM(r io.Reader) (*automaton.Automaton, error) {
	sc := bufio.NewScanner(r)
	sc.Buffer(make([]byte, 0, 64*1024), 16*1024*1024)

	n, err := readCount(sc)
	if err != nil {
		return nil, err
	}

	type rawTransition struct {
		label  string
		dst    int
		ctrl   bool
		observ bool
	}
	type rawState struct {
		marked      bool
		transitions []rawTransition
	}

	states := make([]rawState, 0, n)
	eventAttrs := make(map[string]automaton.Event)
	var order []string

	for len(states) < n {
		if !sc.Scan() || strings.TrimSpace(sc.Text()) != "" {
			return nil, ErrMalformedFSM
		}
		if !sc.Scan() {
			return nil, ErrMalformedFSM
		}
		hdr := strings.Split(sc.Text(), "\t")
		if len(hdr) != 3 {
			return nil, ErrMalformedFSM
		}
		outDeg, err := strconv.Atoi(hdr[2])
		if err != nil {
			return nil, ErrMalformedFSM
		}

		st := rawState{marked: hdr[1] == "1"}
		for i := 0; i < outDeg; i++ {
			if !sc.Scan() {
				return nil, ErrMalformedFSM
			}
			tf := strings.Split(sc.Text(), "\t")
			if len(tf) != 4 {
				return nil, ErrMalformedFSM
			}
			if !strings.HasPrefix(tf[1], "State") {
				return nil, ErrMalformedFSM
			}
			dst, err := strconv.Atoi(strings.TrimPrefix(tf[1], "State"))
			if err != nil {
				return nil, ErrMalformedFSM
			}
			ctrl, err := parseTagC(tf[2])
			if err != nil {
				return nil, err
			}
			observ, err := parseTagO(tf[3])
			if err != nil {
				return nil, err
			}

			label := tf[0]
			if label != automaton.Tau {
				if _, ok := eventAttrs[label]; !ok {
					eventAttrs[label] = automaton.Event{Label: label, Controllable: ctrl, Observable: observ}
					order = append(order, label)
				}
			}
			st.transitions = append(st.transitions, rawTransition{label: label, dst: dst, ctrl: ctrl, observ: observ})
		}
		states = append(states, st)
	}

	alphabet := []automaton.Event{{Label: automaton.Tau, Controllable: false, Observable: false}}
	for _, l := range order {
		alphabet = append(alphabet, eventAttrs[l])
	}

	a := automaton.NewEmpty(alphabet)
	for _, st := range states {
		a.AddState(st.marked)
	}
	for q, st := range states {
		for _, t := range st.transitions {
			if err := a.AddTransition(q, t.label, t.dst); err != nil {
				return nil, err
			}
		}
	}

	return a, nil
}

func readCount(sc *bufio.Scanner) (int, error) {
	if !sc.Scan() {
		return 0, ErrMalformedFSM
	}
	n, err := strconv.Atoi(strings.TrimSpace(sc.Text()))
	if err != nil {
		return 0, ErrMalformedFSM
	}
	return n, nil
}

func parseTagC(s string) (bool, error) {
	switch s {
	case "c":
		return true, nil
	case "uc":
		return false, nil
	default:
		return false, ErrMalformedFSM
	}
}

func parseTagO(s string) (bool, error) {
	switch s {
	case "o":
		return true, nil
	case "uo":
		return false, nil
	default:
		return false, ErrMalformedFSM
	}
}
