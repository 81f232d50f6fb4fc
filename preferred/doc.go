// Package preferred implements the preferred-behavior checker (§4.5):
// deciding whether a candidate repaired design enforces a given preferred
// automaton p, i.e. whether every trace of M′ restricted to Σ_p is also a
// trace of p.
//
// The check hides every event of M′ outside Σ_p (treating them as
// unobservable), projects to an observer over Σ_p, composes with p, and
// tests language equality against p — exactly "L((M′‖E′)↓Σp) ⊆ L(p)"
// phrased as an equality test once the two automata share an alphabet.
//
// Results are memoized on (sorted C, sorted O, p's identity) because the
// search engine revisits the same (C, O) pair against many different
// subsets of D (§4.5, §5).
package preferred
