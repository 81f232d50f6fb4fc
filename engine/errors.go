package engine

import "errors"

// Sentinel errors returned by package engine.
var (
	// ErrEmptyAlphabet indicates a Config declared no system alphabet at
	// all; there is nothing to synthesize a supervisor over.
	ErrEmptyAlphabet = errors.New("engine: config declares an empty alphabet")

	// ErrUnknownAlg indicates Config.Alg was neither "pareto" nor "fast".
	ErrUnknownAlg = errors.New("engine: alg must be \"pareto\" or \"fast\"")

	// ErrControllableNotObservable indicates an event was declared
	// controllable without also being declared observable, violating the
	// C ⊆ O invariant (§9 Open Question (b): "the spec requires
	// enforcement").
	ErrControllableNotObservable = errors.New("engine: an event is controllable but not observable")
)
