package model_test

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/robustrepair/model"
)

func TestParseJSONSimpleChain(t *testing.T) {
	doc := `{"process":"P","alphabet":["a","b"],"transitions":[[0,0,1],[1,1,2]]}`
	a, err := model.ParseJSON(strings.NewReader(doc), map[string]bool{"a": true}, map[string]bool{"a": true, "b": true})
	require.NoError(t, err)

	require.Equal(t, 3, a.NumStates())
	require.True(t, a.Marked(0)) // marking is implicit: all states marked
	require.Equal(t, []int{1}, a.Next(0, "a"))
	require.Equal(t, []int{2}, a.Next(1, "b"))
}

func TestParseJSONUnknownEventIndex(t *testing.T) {
	doc := `{"process":"P","alphabet":["a"],"transitions":[[0,5,1]]}`
	_, err := model.ParseJSON(strings.NewReader(doc), nil, nil)
	require.ErrorIs(t, err, model.ErrMalformedJSON)
}

func TestParseJSONMalformed(t *testing.T) {
	_, err := model.ParseJSON(strings.NewReader("not json"), nil, nil)
	require.ErrorIs(t, err, model.ErrMalformedJSON)
}
