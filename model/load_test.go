package model_test

import (
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/robustrepair/model"
)

func TestDetectByExtension(t *testing.T) {
	k, err := model.Detect("plant.lts")
	require.NoError(t, err)
	require.Equal(t, model.KindLTS, k)

	k, err = model.Detect("plant.json")
	require.NoError(t, err)
	require.Equal(t, model.KindJSON, k)

	k, err = model.Detect("plant.fsm")
	require.NoError(t, err)
	require.Equal(t, model.KindFSM, k)

	_, err = model.Detect("plant.txt")
	require.ErrorIs(t, err, model.ErrUnknownFormat)
}
