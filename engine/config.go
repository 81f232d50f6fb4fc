package engine

import "github.com/katalvlaran/robustrepair/cost"

// Config is the flat, JSON-serializable description of one repair run,
// mirroring the CLI surface of §6: `sys`, `env_p`, `safety` are sequences
// of model file paths; `preferred` ranks preferred-behavior files by tier;
// `progress` names the events that must recur on some infinite trace;
// `alphabet` plus the tiered `controllable`/`observable` maps classify
// every event the engine may reassign authority over.
type Config struct {
	Sys, EnvP, Safety []string
	Preferred         map[cost.Tier][]string
	Progress          []string
	Alphabet          []string
	Controllable      map[cost.Tier][]string
	Observable        map[cost.Tier][]string
	Alg               string // "pareto" or "fast"
	Verbose           bool
	StagingDir        string
	ConverterBin      string
}

// Options holds the construction-time knobs an Option can adjust, beyond
// what Config itself carries — room for engine-internal tuning (cache
// sizing, a custom context) without growing Config's JSON surface.
type Options struct {
	solverModeNonBlocking bool
}

// Option configures an Engine at construction time, in the teacher's
// functional-options idiom (dijkstra.Option, core.GraphOption).
type Option func(*Options)

// WithNonBlockingSolver selects the non-blocking variant of the supremal
// fixpoint (trims states that cannot reach a marked state). New already
// uses this variant by default, so the option changes nothing; the
// prefix-closed variant is not selectable through an Option.
func WithNonBlockingSolver() Option {
	return func(o *Options) { o.solverModeNonBlocking = true }
}
