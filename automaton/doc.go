// Package automaton implements the finite labeled transition system that
// underlies the repair engine: states, events with controllability and
// observability flags, transitions, and marking.
//
// An Automaton is represented as a struct-of-arrays keyed by dense
// non-negative state indices (q0 = 0), never by pointer, so that parallel
// composition and observer projection can build fresh automata without
// aliasing the inputs. Inputs to Compose/Project/Equal are always treated as
// immutable; every operation returns a new *Automaton.
//
// Core operations:
//
//   - Compose: parallel composition, synchronizing on shared events and
//     interleaving on private ones, reachable-states-only.
//   - Project: observer projection (subset construction over unobservable
//     events), producing a deterministic, τ-free automaton over the
//     observable alphabet.
//   - Equal: language comparison between two deterministic automata over
//     the same alphabet, via reachable bisimulation-quotient classes.
//   - ExtendAlphabet: stuttering extension — adds new events as self-loops
//     on every existing state.
//   - Save/Load: the canonical on-disk form (an alphabet header, then the
//     state count, then per-state blocks of marking, out-degree, and
//     transitions tagged c/uc, o/uo).
//
// See also package model for the file-format loaders that produce an
// *Automaton from .lts/.json/.fsm inputs.
package automaton
