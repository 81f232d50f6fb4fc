// Package solver implements the supervisory-control kernel: given a plant G
// and a property H, it computes the supremal sublanguage L ⊆ L(G) ∩ L(H)
// that is controllable and normal with respect to G's controllability and
// observability flags (§4.2).
//
// Two modes are supported:
//
//   - ModePrefixClosed: an iterative fixpoint that removes states whose
//     removal is forced by an uncontrollable transition in G leaving the
//     current safe set, or by a normality violation under the observation
//     projection.
//   - ModeNonBlocking: first trims to states that can reach a marked state
//     (co-reachability), then re-runs the controllable-normal fixpoint,
//     alternating the two until neither changes anything — the Go rendering
//     of "compute a marked-state reachable variant... then re-run the
//     controllable-normal fixpoint with prefix_closed=false".
//
// If the supremal sublanguage is empty, Supremal returns ErrNoController.
package solver
