package script

import (
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/zeusync/vecmath/pkg/vector"
)

func TestLoadValues(t *testing.T) {
	doc := `
start: [1, 2]
steps:
  - op: add
    args: [[0, 0, 3]]
  - op: scale
    args: [2, 0.5, .inf]
  - op: min
    args: [one]
`
	scripts, err := Load(strings.NewReader(doc))
	require.NoError(t, err)
	require.Len(t, scripts, 1)

	s := scripts[0]
	assert.Equal(t, vector.Vector3{X: 1, Y: 2}, s.Start.Arg().Vector())
	require.Len(t, s.Steps, 3)

	add := s.Steps[0].Args
	require.Len(t, add, 1)
	assert.True(t, add[0].IsVector())
	assert.Equal(t, vector.Vector3{Z: 3}, add[0].Arg().Vector())

	scale := s.Steps[1].Args
	require.Len(t, scale, 3)
	assert.False(t, scale[0].IsVector())
	assert.Equal(t, 0.5, scale[1].Arg().Scalar())

	assert.Equal(t, vector.One(), s.Steps[2].Args[0].Arg().Vector())
}

func TestLoadRejects(t *testing.T) {
	tests := []struct {
		name string
		doc  string
		err  error
	}{
		{"missing start", "steps: []\n", ErrMissingStart},
		{"scalar start", "start: 4\n", ErrStartNotVector},
		{"unknown op", "start: zero\nsteps:\n  - op: rotate\n", ErrUnknownOp},
		{"unknown constant", "start: unit_w\n", ErrUnknownConstant},
		{"too many components", "start: [1, 2, 3, 4]\n", ErrTooManyComponents},
		{"cross needs vector", "start: one\nsteps:\n  - op: cross\n    args: [1, 2, 3]\n", ErrVectorArgRequired},
		{"scalar expect", "start: one\nexpect:\n  value: 3\n", ErrExpectNotVector},
		{"negative epsilon", "start: one\nexpect:\n  epsilon: -1\n", ErrNegativeEpsilon},
		{"scalar without query", "start: one\nexpect:\n  scalar: 1\n", ErrNoQueryForExpected},
		{"map value", "start: {x: 1}\n", ErrInvalidValue},
		{"step without world", "start: one\nsteps:\n  - op: step\n    args: [0.1]\n", ErrWorldRequired},
		{"step without dt", "start: one\nworld: {}\nsteps:\n  - op: step\n", ErrInvalidStep},
		{"step zero dt", "start: one\nworld: {}\nsteps:\n  - op: step\n    args: [0]\n", ErrInvalidStep},
		{"step fractional count", "start: one\nworld: {}\nsteps:\n  - op: step\n    args: [0.1, 1.5]\n", ErrInvalidStep},
		{"scalar gravity", "start: one\nworld:\n  gravity: 9.81\n", ErrWorldNotVector},
		{"negative restitution", "start: one\nworld:\n  restitution: -1\n", ErrInvalidRestitution},
		{"bounce needs normal", "start: one\nsteps:\n  - op: bounce\n", ErrVectorArgRequired},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := Load(strings.NewReader(tt.doc))
			assert.ErrorIs(t, err, tt.err)
		})
	}
}

func TestLoadUnknownField(t *testing.T) {
	_, err := Load(strings.NewReader("start: one\nstart_at: two\n"))
	assert.Error(t, err)
}

func TestLoadFileNamesScripts(t *testing.T) {
	scripts, err := LoadFile(filepath.Join("testdata", "properties.yaml"))
	require.NoError(t, err)
	require.Len(t, scripts, 5)
	assert.Equal(t, "chained", scripts[0].Name)
	assert.Equal(t, "properties#4", scripts[4].Name)
}

func TestOperationsSorted(t *testing.T) {
	ops := Operations()
	assert.Contains(t, ops, "clamp")
	assert.Contains(t, ops, "sqr_distance")
	assert.IsIncreasing(t, ops)
}
