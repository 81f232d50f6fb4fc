package automaton

import "gopkg.in/yaml.v3"

// snapshot is the YAML-friendly shadow of an Automaton, used by
// cmd/repair's verbose/-dump-automaton path to emit a human-readable view
// of an intermediate automaton (plant, property, supervisor) without
// committing to the compact canonical form used by Save/Load.
type snapshot struct {
	Alphabet []Event         `yaml:"alphabet"`
	States   []snapshotState `yaml:"states"`
}

type snapshotState struct {
	ID          int                `yaml:"id"`
	Marked      bool               `yaml:"marked"`
	Transitions []snapshotTransition `yaml:"transitions,omitempty"`
}

type snapshotTransition struct {
	Event string `yaml:"event"`
	Dst   int    `yaml:"dst"`
}

// DumpYAML renders a as a YAML document for debug inspection.
func (a *Automaton) DumpYAML() ([]byte, error) {
	snap := snapshot{Alphabet: a.Alphabet()}
	for q, trs := range a.out {
		st := snapshotState{ID: q, Marked: a.marked[q]}
		for _, t := range trs {
			st.Transitions = append(st.Transitions, snapshotTransition{
				Event: a.alphabet[t.event].Label,
				Dst:   t.dst,
			})
		}
		snap.States = append(snap.States, st)
	}
	return yaml.Marshal(snap)
}
