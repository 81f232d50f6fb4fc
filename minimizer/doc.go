// Package minimizer implements the authority minimizer (§4.4): from a
// supervisor S over observable events O and controllable events C, it
// computes the smaller event sets that still realize the same observable
// language.
//
//   - can_uc = events in O that, at every reachable state of S, are always
//     defined — never actually used to disable anything — and so may be
//     dropped from C.
//   - can_uo ⊆ can_uc = events in can_uc whose every transition, at every
//     reachable state, is a self-loop — never used to distinguish states —
//     and so may additionally be dropped from O.
//
// Priority-0 events are always retained regardless of can_uc/can_uo,
// because they are free (§4.4: "Priority-0 events are always retained as
// free").
package minimizer
