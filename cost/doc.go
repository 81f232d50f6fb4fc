// Package cost implements the cost/utility model (§4.6): it turns the
// user-provided priority tiers into an integer weight scheme with a strict
// lexicographic ordering between tiers, then computes the two numbers the
// search engine optimizes — preferred-behavior utility and event cost.
//
// Let n_k be the absolute weight assigned to tier P_k: n0 = 0 and
// n_{k+1} = 1 + (total weight assigned across tiers P1..Pk). This strict
// escalation guarantees that any single P_{k+1} item outranks every
// combination of tier ≤ k items — a lexicographic priority, not merely a
// numeric sum (§9 design notes: "Weight overflow... for large tiers use
// arbitrary-precision integers" is noted as an Open Question; this package
// uses int64, sufficient for the tier counts realistic configurations carry).
package cost
