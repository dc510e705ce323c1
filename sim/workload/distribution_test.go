package workload

import (
	"math/rand"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestUniformSampler_StaysInHalfOpenRange(t *testing.T) {
	s, err := NewTickSampler(*Uniform(3, 11))
	require.NoError(t, err)
	rng := rand.New(rand.NewSource(1))

	seen := map[int64]bool{}
	for i := 0; i < 2000; i++ {
		v := s.Sample(rng)
		require.GreaterOrEqual(t, v, int64(3))
		require.Less(t, v, int64(11))
		seen[v] = true
	}
	// all eight values appear
	assert.Len(t, seen, 8)
}

func TestGaussianSampler_Clamped(t *testing.T) {
	s, err := NewTickSampler(DistSpec{Type: "gaussian", Params: map[string]float64{"mean": 5, "std_dev": 100, "min": 2, "max": 8}})
	require.NoError(t, err)
	rng := rand.New(rand.NewSource(2))
	for i := 0; i < 500; i++ {
		v := s.Sample(rng)
		assert.GreaterOrEqual(t, v, int64(2))
		assert.LessOrEqual(t, v, int64(8))
	}
}

func TestConstantSampler(t *testing.T) {
	s, err := NewTickSampler(*Constant(7))
	require.NoError(t, err)
	assert.Equal(t, int64(7), s.Sample(nil))
}

func TestNewTickSampler_Errors(t *testing.T) {
	tests := []struct {
		name string
		spec DistSpec
	}{
		{"unknown type", DistSpec{Type: "zipf"}},
		{"uniform missing max", DistSpec{Type: "uniform", Params: map[string]float64{"min": 1}}},
		{"uniform inverted", DistSpec{Type: "uniform", Params: map[string]float64{"min": 4, "max": 2}}},
		{"gaussian missing std_dev", DistSpec{Type: "gaussian", Params: map[string]float64{"mean": 1, "min": 0, "max": 2}}},
		{"constant missing value", DistSpec{Type: "constant"}},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := NewTickSampler(tt.spec)
			assert.Error(t, err)
		})
	}
}
