package cost

// Weights holds the tier assignment of every event that may be made
// controllable and/or observable (§3: "Two maps Tier → set<Event>"). A
// single combined weight table is derived from both maps together, so that
// the lexicographic guarantee holds across the whole cost, not just within
// one side (a P3 observable event must still outrank every P1/P2
// controllable-and-observable event combined).
type Weights struct {
	Controllable map[Tier][]string
	Observable   map[Tier][]string
}

// tierTable computes n_k over the combined controllable+observable tier
// assignment, and the per-event tier lookups for each side.
func (w Weights) tierTable() (weights map[Tier]int64, cTier, oTier map[string]Tier) {
	counts := make(map[Tier]int)
	cTier = make(map[string]Tier)
	for t, evts := range w.Controllable {
		counts[t] += len(evts)
		for _, e := range evts {
			cTier[e] = t
		}
	}
	oTier = make(map[string]Tier)
	for t, evts := range w.Observable {
		counts[t] += len(evts)
		for _, e := range evts {
			oTier[e] = t
		}
	}
	return TierWeights(counts), cTier, oTier
}

// Cost computes Σ_{a∈cMin}(−weight_c(a)) + Σ_{a∈oMin}(−weight_o(a)) (§4.6).
// Events absent from the tier maps default to P0 (zero weight).
func (w Weights) Cost(cMin, oMin map[string]bool) int64 {
	weights, cTier, oTier := w.tierTable()

	var total int64
	for label, on := range cMin {
		if !on {
			continue
		}
		total -= weights[cTier[label]]
	}
	for label, on := range oMin {
		if !on {
			continue
		}
		total -= weights[oTier[label]]
	}
	return total
}

// PriorityZero returns the always-free controllable and observable event
// sets (§4.4: "Priority-0 events are always retained as free").
func (w Weights) PriorityZero() (controllable, observable map[string]bool) {
	controllable = toSet(w.Controllable[TierP0])
	observable = toSet(w.Observable[TierP0])
	return controllable, observable
}

// AllControllable/AllObservable flatten every non-P0 tier plus P0 into one
// membership set, the C_max/O_max of §8 scenario 1.
func (w Weights) AllControllable() map[string]bool { return flatten(w.Controllable) }
func (w Weights) AllObservable() map[string]bool   { return flatten(w.Observable) }

func flatten(m map[Tier][]string) map[string]bool {
	out := make(map[string]bool)
	for _, evts := range m {
		for _, e := range evts {
			out[e] = true
		}
	}
	return out
}

func toSet(evts []string) map[string]bool {
	out := make(map[string]bool, len(evts))
	for _, e := range evts {
		out[e] = true
	}
	return out
}

// Preferred holds the tier assignment of every preferred-behavior name
// (§3: "The user-declared map D: Tier → sequence<p> has a stable iteration
// order").
type Preferred struct {
	Tiers map[Tier][]string
}

// UtilPref computes Σ_{p ∈ dSat} weight(p) (§4.6).
func (p Preferred) UtilPref(dSat []string) int64 {
	counts := make(map[Tier]int)
	nameTier := make(map[string]Tier)
	for t, names := range p.Tiers {
		counts[t] += len(names)
		for _, n := range names {
			nameTier[n] = t
		}
	}
	weights := TierWeights(counts)

	var total int64
	for _, n := range dSat {
		total += weights[nameTier[n]]
	}
	return total
}

// All returns every preferred-behavior name across all tiers, in the
// priority-tier iteration order required by D_max (§4.7): P3 first, then
// P2, then P1 (P0 is reserved for free events and not part of D).
func (p Preferred) All() []string {
	var all []string
	for _, t := range []Tier{TierP3, TierP2, TierP1} {
		all = append(all, p.Tiers[t]...)
	}
	return all
}
