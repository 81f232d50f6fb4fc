// Command repair drives the supervisory-control repair engine from a flat
// JSON config file, the CLI surface of §6: it loads the config, runs
// Engine.Synthesize, and prints one line per emitted solution.
package main

import (
	"context"
	"encoding/json"
	"flag"
	"fmt"
	"os"

	"github.com/katalvlaran/robustrepair/automaton"
	"github.com/katalvlaran/robustrepair/cost"
	"github.com/katalvlaran/robustrepair/engine"
)

// configFile is the on-disk shape of engine.Config: identical fields, but
// with Preferred/Controllable/Observable keyed by the tier's string name
// ("P0".."P3") since JSON object keys must be strings.
type configFile struct {
	Sys          []string            `json:"sys"`
	EnvP         []string            `json:"env_p"`
	Safety       []string            `json:"safety"`
	Preferred    map[string][]string `json:"preferred"`
	Progress     []string            `json:"progress"`
	Alphabet     []string            `json:"alphabet"`
	Controllable map[string][]string `json:"controllable"`
	Observable   map[string][]string `json:"observable"`
	Alg          string              `json:"alg"`
	Verbose      bool                `json:"verbose"`
	StagingDir   string              `json:"staging_dir"`
	ConverterBin string              `json:"converter_bin"`
}

var tierNames = map[string]cost.Tier{"P0": cost.TierP0, "P1": cost.TierP1, "P2": cost.TierP2, "P3": cost.TierP3}

func toTierMap(m map[string][]string) (map[cost.Tier][]string, error) {
	out := make(map[cost.Tier][]string, len(m))
	for name, evts := range m {
		tier, ok := tierNames[name]
		if !ok {
			return nil, fmt.Errorf("unknown priority tier %q", name)
		}
		out[tier] = evts
	}
	return out, nil
}

func (c configFile) toConfig() (engine.Config, error) {
	preferred, err := toTierMap(c.Preferred)
	if err != nil {
		return engine.Config{}, fmt.Errorf("preferred: %w", err)
	}
	controllable, err := toTierMap(c.Controllable)
	if err != nil {
		return engine.Config{}, fmt.Errorf("controllable: %w", err)
	}
	observable, err := toTierMap(c.Observable)
	if err != nil {
		return engine.Config{}, fmt.Errorf("observable: %w", err)
	}

	return engine.Config{
		Sys:          c.Sys,
		EnvP:         c.EnvP,
		Safety:       c.Safety,
		Preferred:    preferred,
		Progress:     c.Progress,
		Alphabet:     c.Alphabet,
		Controllable: controllable,
		Observable:   observable,
		Alg:          c.Alg,
		Verbose:      c.Verbose,
		StagingDir:   c.StagingDir,
		ConverterBin: c.ConverterBin,
	}, nil
}

func main() {
	configPath := flag.String("config", "", "path to the JSON config file")
	budget := flag.Int("n", 10, "search bracket budget")
	dumpAutomaton := flag.String("dump-automaton", "", "write a YAML and FSP snapshot of every emitted solution's M' to this directory")
	flag.Parse()

	if err := run(*configPath, *budget, *dumpAutomaton); err != nil {
		fmt.Fprintln(os.Stderr, "repair:", err)
		os.Exit(1)
	}
}

func run(configPath string, budget int, dumpDir string) error {
	if configPath == "" {
		return fmt.Errorf("-config is required")
	}

	f, err := os.Open(configPath)
	if err != nil {
		return err
	}
	defer f.Close()

	var cf configFile
	if err := json.NewDecoder(f).Decode(&cf); err != nil {
		return fmt.Errorf("parsing config: %w", err)
	}

	cfg, err := cf.toConfig()
	if err != nil {
		return fmt.Errorf("config: %w", err)
	}

	eng, err := engine.New(cfg)
	if err != nil {
		return fmt.Errorf("constructing engine: %w", err)
	}
	defer eng.Close()

	sols, err := eng.Synthesize(context.Background(), budget)
	if err != nil {
		fmt.Fprintln(os.Stderr, "repair: no controller found:", err)
		return nil
	}

	for i, s := range sols {
		fmt.Printf("solution %d: util_pref=%d cost=%d preserved=%v controllable=%d observable=%d\n",
			i, s.UtilPref, s.Cost, s.DSat, len(s.C), len(s.O))

		if dumpDir != "" {
			if err := dumpSolution(dumpDir, i, s.MPrime); err != nil {
				return fmt.Errorf("dumping solution %d: %w", i, err)
			}
		}
	}
	return nil
}

func dumpSolution(dir string, i int, mprime *automaton.Automaton) error {
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return err
	}
	data, err := mprime.DumpYAML()
	if err != nil {
		return err
	}
	if err := os.WriteFile(fmt.Sprintf("%s/solution-%d.yaml", dir, i), data, 0o644); err != nil {
		return err
	}

	fspPath := fmt.Sprintf("%s/solution-%d.fsp", dir, i)
	f, err := os.Create(fspPath)
	if err != nil {
		return err
	}
	defer f.Close()
	return mprime.WriteFSP(f)
}
