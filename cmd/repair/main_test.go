package main

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/robustrepair/automaton"
)

func TestDumpSolutionWritesYAMLAndFSP(t *testing.T) {
	dir := t.TempDir()

	a := automaton.New([]automaton.Event{{Label: "send", Controllable: true, Observable: true}})
	q1 := a.AddState(true)
	require.NoError(t, a.AddTransition(0, "send", q1))

	require.NoError(t, dumpSolution(dir, 0, a))

	yamlData, err := os.ReadFile(filepath.Join(dir, "solution-0.yaml"))
	require.NoError(t, err)
	require.Contains(t, string(yamlData), "send")

	fspData, err := os.ReadFile(filepath.Join(dir, "solution-0.fsp"))
	require.NoError(t, err)
	require.Contains(t, string(fspData), "send")
}

func TestToTierMapRejectsUnknownTier(t *testing.T) {
	_, err := toTierMap(map[string][]string{"P9": {"a"}})
	require.Error(t, err)
}
