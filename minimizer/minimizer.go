package minimizer

import "github.com/katalvlaran/robustrepair/automaton"

// Minimize computes (cMin, oMin) from the extracted supervisor s, its
// current controllable set c and observable set o, and the priority-0 sets
// that must always be retained.
func Minimize(s *automaton.Automaton, c, o, p0Controllable, p0Observable map[string]bool) (cMin, oMin map[string]bool) {
	reachable := reachableStates(s)

	canUC := make(map[string]bool)
	canUO := make(map[string]bool)

	for label := range o {
		if !o[label] {
			continue
		}
		if alwaysDefined(s, reachable, label) {
			canUC[label] = true
			if alwaysSelfLoop(s, reachable, label) {
				canUO[label] = true
			}
		}
	}

	cMin = make(map[string]bool)
	for label := range c {
		if c[label] && (!canUC[label] || p0Controllable[label]) {
			cMin[label] = true
		}
	}
	for label := range p0Controllable {
		if p0Controllable[label] {
			cMin[label] = true
		}
	}

	oMin = make(map[string]bool)
	for label := range o {
		if o[label] && (!canUO[label] || p0Observable[label]) {
			oMin[label] = true
		}
	}
	for label := range p0Observable {
		if p0Observable[label] {
			oMin[label] = true
		}
	}

	return cMin, oMin
}

func reachableStates(s *automaton.Automaton) []int {
	visited := make([]bool, s.NumStates())
	visited[0] = true
	queue := []int{0}
	var order []int
	for len(queue) > 0 {
		q := queue[0]
		queue = queue[1:]
		order = append(order, q)
		for _, t := range s.Transitions(q) {
			if !visited[t.Dst] {
				visited[t.Dst] = true
				queue = append(queue, t.Dst)
			}
		}
	}
	return order
}

// alwaysDefined reports whether label has a transition defined at every
// reachable state — i.e. the supervisor never disables it.
func alwaysDefined(s *automaton.Automaton, reachable []int, label string) bool {
	for _, q := range reachable {
		if s.DeterministicNext(q, label) == -1 {
			return false
		}
	}
	return true
}

// alwaysSelfLoop reports whether, at every reachable state, label's
// transition (if any) is a self-loop — i.e. the supervisor never uses it
// to move to a different state.
func alwaysSelfLoop(s *automaton.Automaton, reachable []int, label string) bool {
	for _, q := range reachable {
		for _, d := range s.Next(q, label) {
			if d != q {
				return false
			}
		}
	}
	return true
}
