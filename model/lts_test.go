package model_test

import (
	"context"
	"os"
	"path/filepath"
	"runtime"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/robustrepair/model"
)

// stubConverter writes a shell script that ignores its arguments and
// prints a fixed automaton JSON document to stdout, standing in for the
// external "robustness-calculator" binary.
func stubConverter(t *testing.T, dir, body string) string {
	t.Helper()
	if runtime.GOOS == "windows" {
		t.Skip("stub shell converter requires a POSIX shell")
	}
	path := filepath.Join(dir, "stub-converter.sh")
	require.NoError(t, os.WriteFile(path, []byte("#!/bin/sh\n"+body+"\n"), 0o755))
	return path
}

func TestConvertLTSParsesConverterStdout(t *testing.T) {
	dir := t.TempDir()
	bin := stubConverter(t, dir, `echo '{"process":"p","alphabet":["a"],"transitions":[[0,0,1]]}'`)

	a, err := model.ConvertLTS(context.Background(), bin, "whatever.lts", map[string]bool{"a": true}, map[string]bool{"a": true})
	require.NoError(t, err)
	require.Equal(t, 2, a.NumStates())
	require.Equal(t, []int{1}, a.Next(0, "a"))
}

func TestConvertLTSWrapsSubprocessFailure(t *testing.T) {
	dir := t.TempDir()
	bin := stubConverter(t, dir, `echo "boom" >&2; exit 1`)

	_, err := model.ConvertLTS(context.Background(), bin, "whatever.lts", nil, nil)
	require.ErrorIs(t, err, model.ErrConverterFailed)
}

func TestConvertLTSDefaultsBinaryName(t *testing.T) {
	// An empty converterBin falls back to "robustness-calculator", which
	// is not on PATH in the test environment, so this must fail as a
	// subprocess-launch error rather than panicking.
	_, err := model.ConvertLTS(context.Background(), "", "whatever.lts", nil, nil)
	require.Error(t, err)
}
