package automaton_test

import (
	"bytes"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/robustrepair/automaton"
)

func TestSaveLoadRoundTrip(t *testing.T) {
	a := twoStateLoop("send")

	var buf bytes.Buffer
	require.NoError(t, a.Save(&buf))

	reloaded, err := automaton.Load(&buf)
	require.NoError(t, err)

	eq, err := automaton.Equal(a, reloaded)
	require.NoError(t, err)
	require.True(t, eq, "reload must be a fixed point on observable language")
	require.NoError(t, automaton.CheckAlphabetDrift(a, reloaded))
}

func TestCheckAlphabetDriftCatchesReorder(t *testing.T) {
	a := automaton.New([]automaton.Event{
		{Label: "x", Controllable: true, Observable: true},
		{Label: "y", Controllable: false, Observable: true},
	})
	reordered := automaton.New([]automaton.Event{
		{Label: "y", Controllable: false, Observable: true},
		{Label: "x", Controllable: true, Observable: true},
	})

	err := automaton.CheckAlphabetDrift(a, reordered)
	require.ErrorIs(t, err, automaton.ErrAlphabetDrift)
}

func TestCheckAlphabetDriftCatchesAttributeChange(t *testing.T) {
	a := automaton.New([]automaton.Event{{Label: "x", Controllable: true, Observable: true}})
	drifted := automaton.New([]automaton.Event{{Label: "x", Controllable: false, Observable: true}})

	err := automaton.CheckAlphabetDrift(a, drifted)
	require.ErrorIs(t, err, automaton.ErrAlphabetDrift)
}

func TestLoadMalformedInput(t *testing.T) {
	_, err := automaton.Load(bytes.NewBufferString("not-a-number\n"))
	require.ErrorIs(t, err, automaton.ErrMalformedPersistence)
}

func TestDumpYAMLIncludesEventLabels(t *testing.T) {
	a := twoStateLoop("send")
	out, err := a.DumpYAML()
	require.NoError(t, err)
	require.Contains(t, string(out), "send")
}
