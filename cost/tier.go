package cost

// Tier is a priority level: P0 is free/always-available, P1..P3 carry
// strictly increasing cost (§3). The same Tier type classifies both
// preferred behaviors and controllable/observable events.
type Tier int

const (
	TierP0 Tier = iota
	TierP1
	TierP2
	TierP3
)

// String renders a Tier the way the Python original's constants
// (PRIORITY0..PRIORITY3, and the earlier HIGH/MEDIUM/LOW) name it.
func (t Tier) String() string {
	switch t {
	case TierP0:
		return "P0"
	case TierP1:
		return "P1"
	case TierP2:
		return "P2"
	case TierP3:
		return "P3"
	default:
		return "Punknown"
	}
}

// weightedTiers lists tiers in ascending-cost order, excluding P0 (always
// zero weight).
var weightedTiers = []Tier{TierP1, TierP2, TierP3}

// TierWeights computes n_k for k in {0,1,2,3} given, for each tier, how
// many items (preferred behaviors, or controllable+observable events
// combined, depending on which domain is being weighted) are assigned to
// it.
func TierWeights(counts map[Tier]int) map[Tier]int64 {
	w := map[Tier]int64{TierP0: 0}
	var total int64
	for _, t := range weightedTiers {
		w[t] = 1 + total
		total += int64(counts[t]) * w[t]
	}
	return w
}
