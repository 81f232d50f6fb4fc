package model_test

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/robustrepair/model"
)

const sampleFSM = "2\n" +
	"\n" +
	"State0\t0\t1\n" +
	"a\tState1\tc\to\n" +
	"\n" +
	"State1\t1\t0\n"

func TestParseFSMBasic(t *testing.T) {
	a, err := model.ParseFSM(strings.NewReader(sampleFSM))
	require.NoError(t, err)

	require.Equal(t, 2, a.NumStates())
	require.False(t, a.Marked(0))
	require.True(t, a.Marked(1))
	require.Equal(t, []int{1}, a.Next(0, "a"))

	// _tau_ reserved at alphabet index 0
	alphabet := a.Alphabet()
	require.Equal(t, "_tau_", alphabet[0].Label)
	require.Equal(t, "a", alphabet[1].Label)
	require.True(t, alphabet[1].Controllable)
	require.True(t, alphabet[1].Observable)
}

func TestParseFSMMalformedCount(t *testing.T) {
	_, err := model.ParseFSM(strings.NewReader("not-a-count\n"))
	require.ErrorIs(t, err, model.ErrMalformedFSM)
}

func TestParseFSMMissingBlankLine(t *testing.T) {
	bad := "1\nState0\t0\t0\n"
	_, err := model.ParseFSM(strings.NewReader(bad))
	require.ErrorIs(t, err, model.ErrMalformedFSM)
}
