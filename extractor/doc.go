// Package extractor builds an executable supervisor from a projected
// supervisor language and a projected plant (§4.3, construct_supervisor).
//
// ConstructSupervisor walks the product of Sp (the projected supremal
// sublanguage) and Gp (the projected plant) breadth-first, starting at
// (0, 0). For each observable event a at a visited pair (s_sp, s_gp):
//
//  1. If Sp defines a on s_sp, follow both sides and enqueue the pair.
//  2. Else if a is uncontrollable-but-observable, add a self-loop to keep
//     the supervisor admissible (it may never disable an uncontrollable
//     event).
//  3. Else if a is undefined in Gp at s_gp (impossible in the plant), add a
//     self-loop so the supervisor stays redundantly-but-harmlessly defined.
//  4. Otherwise the event is legitimately disabled: do nothing.
package extractor
