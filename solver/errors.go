package solver

import "errors"

// ErrNoController is the sentinel returned when the supremal
// controllable-and-normal sublanguage of L(G) ∩ L(H) is empty — §4.2's "If L
// is empty, solver returns 'no controller'."
var ErrNoController = errors.New("solver: no controller exists for this plant and property")
