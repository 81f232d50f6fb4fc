package engine_test

import (
	"context"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/robustrepair/cost"
	"github.com/katalvlaran/robustrepair/engine"
)

func writeJSON(t *testing.T, dir, name, content string) string {
	t.Helper()
	path := filepath.Join(dir, name)
	require.NoError(t, os.WriteFile(path, []byte(content), 0o644))
	return path
}

func baseConfig(t *testing.T) engine.Config {
	dir := t.TempDir()

	plant := writeJSON(t, dir, "plant.json", `{"process":"plant","alphabet":["a","b"],"transitions":[[0,0,1],[1,1,2]]}`)
	safety := writeJSON(t, dir, "safety.json", `{"process":"safety","alphabet":["a","b"],"transitions":[[0,0,0],[0,1,0]]}`)
	preferred := writeJSON(t, dir, "full-run.json", `{"process":"full-run","alphabet":["a","b"],"transitions":[[0,0,1],[1,1,2]]}`)

	return engine.Config{
		Sys:      []string{plant},
		Safety:   []string{safety},
		Alphabet: []string{"a", "b"},
		Controllable: map[cost.Tier][]string{
			cost.TierP1: {"a", "b"},
		},
		Observable: map[cost.Tier][]string{
			cost.TierP1: {"a", "b"},
		},
		Preferred: map[cost.Tier][]string{
			cost.TierP1: {preferred},
		},
		Alg: "fast",
	}
}

func TestNewRejectsEmptyAlphabet(t *testing.T) {
	cfg := baseConfig(t)
	cfg.Alphabet = nil
	_, err := engine.New(cfg)
	require.ErrorIs(t, err, engine.ErrEmptyAlphabet)
}

func TestNewRejectsUnknownAlg(t *testing.T) {
	cfg := baseConfig(t)
	cfg.Alg = "greedy"
	_, err := engine.New(cfg)
	require.ErrorIs(t, err, engine.ErrUnknownAlg)
}

func TestNewRejectsControllableNotObservable(t *testing.T) {
	cfg := baseConfig(t)
	cfg.Observable = map[cost.Tier][]string{cost.TierP1: {"a"}} // "b" still controllable but no longer observable
	_, err := engine.New(cfg)
	require.ErrorIs(t, err, engine.ErrControllableNotObservable)
}

func TestEngineSynthesizeProducesSolutions(t *testing.T) {
	eng, err := engine.New(baseConfig(t))
	require.NoError(t, err)
	defer eng.Close()

	sols, err := eng.Synthesize(context.Background(), 4)
	require.NoError(t, err)
	require.NotEmpty(t, sols)
}

func TestNewRecreatesStagingDirEmpty(t *testing.T) {
	cfg := baseConfig(t)
	staging := t.TempDir()
	stale := filepath.Join(staging, "stale")
	require.NoError(t, os.WriteFile(stale, []byte("leftover"), 0o644))
	cfg.StagingDir = staging

	eng, err := engine.New(cfg)
	require.NoError(t, err)
	defer eng.Close()

	_, statErr := os.Stat(stale)
	require.True(t, os.IsNotExist(statErr), "New must recreate the staging dir empty, wiping any leftover content")

	info, err := os.Stat(staging)
	require.NoError(t, err)
	require.True(t, info.IsDir())
}

func TestEngineCloseWipesStagingDir(t *testing.T) {
	cfg := baseConfig(t)
	staging := t.TempDir()
	require.NoError(t, os.WriteFile(filepath.Join(staging, "scratch"), []byte("x"), 0o644))
	cfg.StagingDir = staging

	eng, err := engine.New(cfg)
	require.NoError(t, err)
	require.NoError(t, eng.Close())

	_, statErr := os.Stat(staging)
	require.True(t, os.IsNotExist(statErr))
}
