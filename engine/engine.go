package engine

import (
	"context"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/katalvlaran/robustrepair/automaton"
	"github.com/katalvlaran/robustrepair/cost"
	"github.com/katalvlaran/robustrepair/model"
	"github.com/katalvlaran/robustrepair/search"
	"github.com/katalvlaran/robustrepair/solver"
)

// Engine holds the models built once at construction (§5: "Plant, safety,
// and progress automata are built once at engine construction and shared
// read-only across all searches") and the search.Problem derived from them.
type Engine struct {
	cfg        Config
	problem    search.Problem
	searchMode search.Mode
}

// New validates cfg, loads and composes the plant and property automata,
// builds the preferred-behavior set and weight tables, and returns a
// ready-to-run Engine.
func New(cfg Config, opts ...Option) (*Engine, error) {
	o := &Options{solverModeNonBlocking: true}
	for _, apply := range opts {
		apply(o)
	}

	if len(cfg.Alphabet) == 0 {
		return nil, ErrEmptyAlphabet
	}

	if cfg.StagingDir != "" {
		// §6: the staging directory is recreated empty at engine
		// construction, not just wiped at Close.
		if err := os.RemoveAll(cfg.StagingDir); err != nil {
			return nil, fmt.Errorf("engine: clearing staging dir: %w", err)
		}
		if err := os.MkdirAll(cfg.StagingDir, 0o755); err != nil {
			return nil, fmt.Errorf("engine: creating staging dir: %w", err)
		}
	}

	var mode search.Mode
	switch strings.ToLower(cfg.Alg) {
	case "pareto", "":
		mode = search.ModePareto
	case "fast":
		mode = search.ModeFast
	default:
		return nil, ErrUnknownAlg
	}

	weights := cost.Weights{Controllable: cfg.Controllable, Observable: cfg.Observable}
	alphabet, err := buildAlphabet(cfg.Alphabet, weights)
	if err != nil {
		return nil, err
	}

	ctx := context.Background()
	loadOpts := model.Options{
		ConverterBin: cfg.ConverterBin,
		Controllable: weights.AllControllable(),
		Observable:   weights.AllObservable(),
	}

	plant, err := model.LoadAll(ctx, append(append([]string{}, cfg.Sys...), cfg.EnvP...), true, alphabet, loadOpts)
	if err != nil {
		return nil, fmt.Errorf("engine: loading plant: %w", err)
	}

	safety, err := model.LoadAll(ctx, cfg.Safety, true, alphabet, loadOpts)
	if err != nil {
		return nil, fmt.Errorf("engine: loading safety property: %w", err)
	}

	property := safety
	for _, evt := range cfg.Progress {
		p := progressTemplate(alphabet, evt)
		property, err = automaton.Compose(property, p)
		if err != nil {
			return nil, fmt.Errorf("engine: composing progress property for %q: %w", evt, err)
		}
	}

	items, prefTiers, err := loadPreferred(ctx, cfg.Preferred, alphabet, loadOpts)
	if err != nil {
		return nil, fmt.Errorf("engine: loading preferred behaviors: %w", err)
	}

	p0c, p0o := weights.PriorityZero()
	solverMode := solver.ModePrefixClosed
	if o.solverModeNonBlocking {
		solverMode = solver.ModeNonBlocking
	}

	return &Engine{
		cfg: cfg,
		problem: search.Problem{
			Plant:                    plant,
			Property:                 property,
			SolverMode:               solverMode,
			Preferred:                items,
			Weights:                  weights,
			PrefWeights:              cost.Preferred{Tiers: prefTiers},
			MaxControllable:          weights.AllControllable(),
			MaxObservable:            weights.AllObservable(),
			PriorityZeroControllable: p0c,
			PriorityZeroObservable:   p0o,
		},
		searchMode: mode,
	}, nil
}

// Synthesize runs the search engine for up to n brackets, printing
// per-solution progress lines to stderr when Config.Verbose is set
// (§7: "User-visible output reports, per solution...").
func (e *Engine) Synthesize(ctx context.Context, n int) ([]search.Solution, error) {
	sols, err := search.Run(ctx, e.problem, search.Options{N: n, Mode: e.searchMode, Verbose: e.cfg.Verbose})
	if err != nil {
		if e.cfg.Verbose {
			fmt.Fprintf(os.Stderr, "engine: synthesis ended: %v\n", err)
		}
		return nil, err
	}

	if e.cfg.Verbose {
		for i, s := range sols {
			fmt.Fprintf(os.Stderr, "engine: solution %d: util_pref=%d cost=%d preserved=%v\n", i, s.UtilPref, s.Cost, s.DSat)
		}
	}
	return sols, nil
}

// Close removes the staging directory named by Config.StagingDir. The .lts
// converter's output is read from its stdout and is not written there.
func (e *Engine) Close() error {
	if e.cfg.StagingDir == "" {
		return nil
	}
	return os.RemoveAll(e.cfg.StagingDir)
}

// buildAlphabet assembles the full system alphabet's Event records from a
// flat label list plus the tiered controllable/observable maps, enforcing
// C ⊆ O (§9 Open Question (b)).
func buildAlphabet(labels []string, w cost.Weights) ([]automaton.Event, error) {
	controllable := w.AllControllable()
	observable := w.AllObservable()

	for label, on := range controllable {
		if on && !observable[label] {
			return nil, fmt.Errorf("%w: %q", ErrControllableNotObservable, label)
		}
	}

	evts := make([]automaton.Event, len(labels))
	for i, label := range labels {
		evts[i] = automaton.Event{
			Label:        label,
			Controllable: controllable[label],
			Observable:   observable[label],
		}
	}
	return evts, nil
}

// progressTemplate builds the two-state trap-then-recover automaton of
// §3.4: q0 is a trap state, q1 is the sole accepting state, reached only
// via evt; q1 loops unconditionally on evt to keep recurrence witnessed on
// every subsequent occurrence (§9 Open Question (c)). Every other alphabet
// event self-loops at both states (stuttering extension) so composition
// never restricts events progress doesn't care about.
func progressTemplate(alphabet []automaton.Event, evt string) *automaton.Automaton {
	a := automaton.New(alphabet)
	q1 := a.AddState(true)
	for _, e := range alphabet {
		if e.Label == evt {
			_ = a.AddTransition(0, e.Label, q1)
			_ = a.AddTransition(q1, e.Label, q1)
		} else {
			_ = a.AddTransition(0, e.Label, 0)
			_ = a.AddTransition(q1, e.Label, q1)
		}
	}
	return a
}

// loadPreferred loads every preferred-behavior file, tier by tier, and
// returns both the search.PreferredItem list and the name-keyed tier map
// cost.Preferred needs for UtilPref.
func loadPreferred(ctx context.Context, byTier map[cost.Tier][]string, alphabet []automaton.Event, opts model.Options) ([]search.PreferredItem, map[cost.Tier][]string, error) {
	var items []search.PreferredItem
	names := make(map[cost.Tier][]string)

	for tier, paths := range byTier {
		for _, path := range paths {
			a, err := model.LoadAndExtend(ctx, path, alphabet, true, opts)
			if err != nil {
				return nil, nil, err
			}
			name := strings.TrimSuffix(filepath.Base(path), filepath.Ext(path))
			items = append(items, search.PreferredItem{Name: name, Tier: tier, Automaton: a})
			names[tier] = append(names[tier], name)
		}
	}
	return items, names, nil
}
