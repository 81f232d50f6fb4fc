package preferred

import "github.com/katalvlaran/robustrepair/automaton"

// Enforced decides whether p is enforced by mprime: hides all events of
// mprime not in p's alphabet, projects, composes with p, and tests language
// equality against p.
func Enforced(mprime *automaton.Automaton, p *automaton.Automaton) (bool, error) {
	pEvents := make(map[string]bool, len(p.Alphabet()))
	for _, e := range p.Alphabet() {
		pEvents[e.Label] = true
	}

	projected := mprime.Project(pEvents)

	composed, err := automaton.Compose(projected, p)
	if err != nil {
		return false, err
	}

	return automaton.Equal(composed, p)
}
