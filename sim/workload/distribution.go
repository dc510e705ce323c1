package workload

import (
	"fmt"
	"math"
	"math/rand"
)

// TickSampler generates integer tick samples.
type TickSampler interface {
	Sample(rng *rand.Rand) int64
}

// UniformSampler draws uniformly from [min, max).
type UniformSampler struct {
	min, max int64
}

func (s *UniformSampler) Sample(rng *rand.Rand) int64 {
	if s.max-s.min <= 1 {
		return s.min
	}
	return s.min + rng.Int63n(s.max-s.min)
}

// GaussianSampler produces clamped, rounded Gaussian tick values.
type GaussianSampler struct {
	mean, stdDev float64
	min, max     int64
}

func (s *GaussianSampler) Sample(rng *rand.Rand) int64 {
	if s.min == s.max {
		return s.min
	}
	val := rng.NormFloat64()*s.stdDev + s.mean
	clamped := math.Min(float64(s.max), math.Max(float64(s.min), val))
	return int64(math.Round(clamped))
}

// ConstantSampler always returns the same fixed value.
type ConstantSampler struct {
	value int64
}

func (s *ConstantSampler) Sample(_ *rand.Rand) int64 {
	return s.value
}

// requireParam checks that all required keys exist in a params map.
func requireParam(params map[string]float64, keys ...string) error {
	for _, k := range keys {
		if _, ok := params[k]; !ok {
			return fmt.Errorf("distribution requires parameter %q", k)
		}
	}
	return nil
}

// NewTickSampler creates a TickSampler from a DistSpec.
func NewTickSampler(spec DistSpec) (TickSampler, error) {
	switch spec.Type {
	case "uniform":
		if err := requireParam(spec.Params, "min", "max"); err != nil {
			return nil, err
		}
		lo, hi := int64(spec.Params["min"]), int64(spec.Params["max"])
		if hi <= lo {
			return nil, fmt.Errorf("uniform distribution requires max > min, got [%d, %d)", lo, hi)
		}
		return &UniformSampler{min: lo, max: hi}, nil

	case "gaussian":
		if err := requireParam(spec.Params, "mean", "std_dev", "min", "max"); err != nil {
			return nil, err
		}
		lo, hi := int64(spec.Params["min"]), int64(spec.Params["max"])
		if hi < lo {
			return nil, fmt.Errorf("gaussian distribution requires max >= min, got [%d, %d]", lo, hi)
		}
		return &GaussianSampler{
			mean:   spec.Params["mean"],
			stdDev: spec.Params["std_dev"],
			min:    lo,
			max:    hi,
		}, nil

	case "constant":
		if err := requireParam(spec.Params, "value"); err != nil {
			return nil, err
		}
		return &ConstantSampler{value: int64(spec.Params["value"])}, nil

	default:
		return nil, fmt.Errorf("unknown distribution type %q", spec.Type)
	}
}

// Uniform is shorthand for a uniform DistSpec over [lo, hi).
func Uniform(lo, hi int64) *DistSpec {
	return &DistSpec{Type: "uniform", Params: map[string]float64{"min": float64(lo), "max": float64(hi)}}
}

// Constant is shorthand for a constant DistSpec.
func Constant(v int64) *DistSpec {
	return &DistSpec{Type: "constant", Params: map[string]float64{"value": float64(v)}}
}
