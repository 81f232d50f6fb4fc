package automaton

import (
	"bufio"
	"fmt"
	"io"
	"strconv"
	"strings"
)

// Save writes the canonical on-disk form: an alphabet header (the event
// count, then one line per event: label, c/uc, o/uo, in alphabet order),
// then the state count, then per-state blocks of (state id, marked flag,
// out-degree) followed by each outgoing transition (event label, next
// state, controllable tag c/uc, observable tag o/uo). The alphabet header is
// what lets Load reconstruct the same alphabet order and attributes Save
// observed, including events that label no transition.
func (a *Automaton) Save(w io.Writer) error {
	bw := bufio.NewWriter(w)

	if _, err := fmt.Fprintf(bw, "%d\n", len(a.alphabet)); err != nil {
		return err
	}
	for _, e := range a.alphabet {
		if _, err := fmt.Fprintf(bw, "%s\t%s\t%s\n", e.Label, tagC(e.Controllable), tagO(e.Observable)); err != nil {
			return err
		}
	}

	if _, err := fmt.Fprintf(bw, "%d\n", len(a.marked)); err != nil {
		return err
	}
	for q, trs := range a.out {
		if _, err := fmt.Fprintf(bw, "%d\t%d\t%d\n", q, boolInt(a.marked[q]), len(trs)); err != nil {
			return err
		}
		for _, t := range trs {
			e := a.alphabet[t.event]
			if _, err := fmt.Fprintf(bw, "%s\t%d\t%s\t%s\n", e.Label, t.dst, tagC(e.Controllable), tagO(e.Observable)); err != nil {
				return err
			}
		}
	}

	return bw.Flush()
}

// Load reads the canonical form written by Save.
func Load(r io.Reader) (*Automaton, error) {
	sc := bufio.NewScanner(r)
	sc.Buffer(make([]byte, 0, 64*1024), 16*1024*1024)

	nEvt, err := readInt(sc)
	if err != nil {
		return nil, err
	}
	alphabet := make([]Event, 0, nEvt)
	for i := 0; i < nEvt; i++ {
		if !sc.Scan() {
			return nil, ErrMalformedPersistence
		}
		fields := strings.Split(sc.Text(), "\t")
		if len(fields) != 3 {
			return nil, ErrMalformedPersistence
		}
		c, err := parseTagC(fields[1])
		if err != nil {
			return nil, err
		}
		o, err := parseTagO(fields[2])
		if err != nil {
			return nil, err
		}
		alphabet = append(alphabet, Event{Label: fields[0], Controllable: c, Observable: o})
	}

	a := NewEmpty(alphabet)

	nStates, err := readInt(sc)
	if err != nil {
		return nil, err
	}
	for i := 0; i < nStates; i++ {
		if !sc.Scan() {
			return nil, ErrMalformedPersistence
		}
		fields := strings.Split(sc.Text(), "\t")
		if len(fields) != 3 {
			return nil, ErrMalformedPersistence
		}
		marked := fields[1] == "1"
		outDeg, err := strconv.Atoi(fields[2])
		if err != nil {
			return nil, ErrMalformedPersistence
		}
		q := a.AddState(marked)
		if q != i {
			return nil, ErrMalformedPersistence
		}
		for j := 0; j < outDeg; j++ {
			if !sc.Scan() {
				return nil, ErrMalformedPersistence
			}
			tf := strings.Split(sc.Text(), "\t")
			if len(tf) != 4 {
				return nil, ErrMalformedPersistence
			}
			dst, err := strconv.Atoi(tf[1])
			if err != nil {
				return nil, ErrMalformedPersistence
			}
			if err := a.AddTransition(q, tf[0], dst); err != nil {
				return nil, err
			}
		}
	}

	return a, nil
}

// CheckAlphabetDrift verifies that reloaded's alphabet matches original's
// exactly, label-for-label in the same order with the same controllability/
// observability attributes. Callers that round-trip an automaton through
// Save/Load use this to assert the §8 "loading/serialize/reload is a fixed
// point" property; a mismatch means Save or Load silently reordered or
// relabeled events.
func CheckAlphabetDrift(original, reloaded *Automaton) error {
	if len(original.alphabet) != len(reloaded.alphabet) {
		return ErrAlphabetDrift
	}
	for i, e := range original.alphabet {
		re := reloaded.alphabet[i]
		if e.Label != re.Label || e.Controllable != re.Controllable || e.Observable != re.Observable {
			return ErrAlphabetDrift
		}
	}
	return nil
}

// WriteFSP pretty-prints a in an FSP-like textual notation for debugging,
// exercised by cmd/repair's -dump-automaton path alongside DumpYAML.
func (a *Automaton) WriteFSP(w io.Writer) error {
	bw := bufio.NewWriter(w)
	for q, trs := range a.out {
		mark := ""
		if a.marked[q] {
			mark = " [marked]"
		}
		if _, err := fmt.Fprintf(bw, "State%d%s:\n", q, mark); err != nil {
			return err
		}
		for _, t := range trs {
			if _, err := fmt.Fprintf(bw, "\t%s -> State%d\n", a.alphabet[t.event].Label, t.dst); err != nil {
				return err
			}
		}
	}
	return bw.Flush()
}

func readInt(sc *bufio.Scanner) (int, error) {
	if !sc.Scan() {
		return 0, ErrMalformedPersistence
	}
	n, err := strconv.Atoi(strings.TrimSpace(sc.Text()))
	if err != nil {
		return 0, ErrMalformedPersistence
	}
	return n, nil
}

func tagC(c bool) string {
	if c {
		return "c"
	}
	return "uc"
}

func tagO(o bool) string {
	if o {
		return "o"
	}
	return "uo"
}

func parseTagC(s string) (bool, error) {
	switch s {
	case "c":
		return true, nil
	case "uc":
		return false, nil
	default:
		return false, ErrMalformedPersistence
	}
}

func parseTagO(s string) (bool, error) {
	switch s {
	case "o":
		return true, nil
	case "uo":
		return false, nil
	default:
		return false, ErrMalformedPersistence
	}
}

func boolInt(b bool) int {
	if b {
		return 1
	}
	return 0
}
