package automaton

import "errors"

// Sentinel errors returned by package automaton.
var (
	// ErrInvalidState indicates a transition or marking referenced a state
	// index outside [0, |Q|).
	ErrInvalidState = errors.New("automaton: state index out of range")

	// ErrUnknownEvent indicates a transition referenced a label not present
	// in the automaton's alphabet.
	ErrUnknownEvent = errors.New("automaton: event not in alphabet")

	// ErrAlphabetMismatch indicates Equal was asked to compare automata over
	// different alphabets.
	ErrAlphabetMismatch = errors.New("automaton: alphabets differ")

	// ErrNotDeterministic indicates Equal was asked to compare an automaton
	// with multiple transitions for the same (state, event) pair.
	ErrNotDeterministic = errors.New("automaton: automaton is not deterministic")

	// ErrAlphabetDrift indicates a round trip through Save/Load changed the
	// alphabet's event order or attributes.
	ErrAlphabetDrift = errors.New("automaton: alphabet drift on reload")

	// ErrMalformedPersistence indicates the canonical on-disk form could not
	// be parsed (truncated block, bad out-degree count, unknown tag).
	ErrMalformedPersistence = errors.New("automaton: malformed persisted automaton")
)
