package model

import "errors"

// Sentinel errors returned by package model.
var (
	// ErrUnknownFormat indicates a path has no recognized extension
	// (.lts, .json, .fsm).
	ErrUnknownFormat = errors.New("model: unrecognized file extension")

	// ErrMalformedJSON indicates the JSON model object is missing a
	// required field or has an inconsistent transitions array.
	ErrMalformedJSON = errors.New("model: malformed automaton JSON")

	// ErrMalformedFSM indicates the FSM text format could not be parsed
	// (bad state count, bad out-degree, bad c/uc or o/uo tag).
	ErrMalformedFSM = errors.New("model: malformed FSM text")

	// ErrConverterFailed indicates the external .lts-to-JSON helper
	// subprocess exited non-zero; this is fatal for the current engine
	// (§7 error kind 5, "External tool failure").
	ErrConverterFailed = errors.New("model: external converter subprocess failed")
)
