package model

import (
	"bytes"
	"context"
	"fmt"
	"os/exec"

	"github.com/katalvlaran/robustrepair/automaton"
)

// ConvertLTS shells out to an external process-algebra-to-JSON converter,
// mirroring the Python original's subprocess.run([..., "convert", "--lts",
// file], stdout=f): the engine treats the tool as an opaque subprocess that
// emits automaton JSON on stdout. This is the one point where the engine
// performs external I/O (§5); the .lts grammar and compiler are out of
// scope for the core (§1).
//
// converterBin is the path or name of the helper binary; bin defaults to
// "robustness-calculator" when empty.
func ConvertLTS(ctx context.Context, converterBin, ltsPath string, controllable, observable map[string]bool) (*automaton.Automaton, error) {
	if converterBin == "" {
		converterBin = "robustness-calculator"
	}

	cmd := exec.CommandContext(ctx, converterBin, "convert", "--lts", ltsPath)
	var stdout, stderr bytes.Buffer
	cmd.Stdout = &stdout
	cmd.Stderr = &stderr

	if err := cmd.Run(); err != nil {
		return nil, fmt.Errorf("%w: %s: %s", ErrConverterFailed, ltsPath, stderr.String())
	}

	return ParseJSON(&stdout, controllable, observable)
}
