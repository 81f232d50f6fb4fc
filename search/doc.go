// Package search implements the two-level lexicographic search engine
// (§4.7): it enumerates weaker subsets of the preferred-behavior set D in
// canonical priority order and, for each, minimizes event authority,
// yielding a Pareto-optimal sequence of (preferred-utility, cost) trade-offs.
//
// D_max is computed once, from a single solve against the maximal
// controllable/observable sets: only preferred behaviors enforceable at all
// are ever considered in later brackets. The outer loop walks triples
// (i, j, k) — tier-3, tier-2, tier-1 items removed — in ascending order, so
// earlier brackets drop the fewest, lowest-priority items first; within a
// bracket every combination of removed items is tried and only the
// cheapest surviving assignment is kept. A bracket is emitted only if its
// best cost strictly improves on every earlier bracket's — the Pareto-front
// property (§4.6: "X dominates Y iff util_pref(X) ≥ util_pref(Y) and
// cost(X) ≥ cost(Y) with one strict").
//
// Two minimization strategies fill in the per-bracket "smallest authority
// that still enforces D'" search: pareto mode keeps a branching frontier of
// every surviving assignment as it drops the removable events one at a time,
// heaviest first, and picks the cheapest member at the end; fast mode is a
// single greedy descending pass,
// linear in |Σ|, with no optimality guarantee (§4.7).
package search
