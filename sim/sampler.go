// Bounded stochastic samplers for arrival timing and station service durations.

package sim

import (
	"fmt"
	"math/rand"

	"gonum.org/v1/gonum/stat/distuv"
)

// randSource adapts *math/rand.Rand to the rand.Source interface distuv
// expects for its Src field. All draws still flow through the wrapped rng.
type randSource struct{ *rand.Rand }

func (s randSource) Seed(seed uint64) { s.Rand.Seed(int64(seed)) }

// TruncatedT samples a location-scale Student's t distribution restricted to
// [Lower, Upper] via rejection: draw a batch from the unrestricted
// distribution, keep in-range values, repeat until enough samples exist or
// the attempt budget (100 x requested count) is exhausted. Any shortfall is
// filled with uniform draws over the bounds -- a documented fallback, not an
// error, and still deterministic for a fixed seed.
type TruncatedT struct {
	DF    float64 // degrees of freedom
	Loc   float64 // location (mean minutes before departure)
	Scale float64
	Lower float64
	Upper float64

	src distuv.StudentsT
	rng *rand.Rand
}

// NewTruncatedT validates the parameters and binds the sampler to rng.
// All randomness (source draws and the uniform fallback) flows through rng.
func NewTruncatedT(df, loc, scale, lower, upper float64, rng *rand.Rand) (*TruncatedT, error) {
	if df <= 0 {
		return nil, fmt.Errorf("truncated t: df must be > 0, got %v", df)
	}
	if scale <= 0 {
		return nil, fmt.Errorf("truncated t: scale must be > 0, got %v", scale)
	}
	if lower >= upper {
		return nil, fmt.Errorf("truncated t: lower bound %v must be below upper bound %v", lower, upper)
	}
	if rng == nil {
		return nil, fmt.Errorf("truncated t: rng must not be nil")
	}
	return &TruncatedT{
		DF:    df,
		Loc:   loc,
		Scale: scale,
		Lower: lower,
		Upper: upper,
		src:   distuv.StudentsT{Mu: loc, Sigma: scale, Nu: df, Src: randSource{rng}},
		rng:   rng,
	}, nil
}

// Sample returns n values, all within [Lower, Upper].
func (d *TruncatedT) Sample(n int) []float64 {
	if n <= 0 {
		return nil
	}

	samples := make([]float64, 0, n)
	budget := n * 100
	attempts := 0

	for len(samples) < n && attempts < budget {
		// Oversample: rejection discards the tails outside the bounds.
		batch := (n - len(samples)) * 2
		for i := 0; i < batch; i++ {
			v := d.src.Rand()
			if v >= d.Lower && v <= d.Upper {
				samples = append(samples, v)
			}
		}
		attempts += batch
	}

	for len(samples) < n {
		samples = append(samples, d.Lower+d.rng.Float64()*(d.Upper-d.Lower))
	}

	return samples[:n]
}

// SampleOne returns a single value within [Lower, Upper].
func (d *TruncatedT) SampleOne() float64 {
	return d.Sample(1)[0]
}

// ServiceSampler draws normally-distributed service durations floored at
// Floor seconds. No upper truncation and no rejection: values below the
// floor are clamped up to it.
type ServiceSampler struct {
	Mean  float64 // mean service time in seconds
	Std   float64 // standard deviation in seconds
	Floor float64 // minimum service time in seconds
}

// SampleOne returns a single service duration in seconds.
func (s *ServiceSampler) SampleOne(rng *rand.Rand) float64 {
	v := rng.NormFloat64()*s.Std + s.Mean
	if v < s.Floor {
		return s.Floor
	}
	return v
}

// Sample returns n service durations in seconds.
func (s *ServiceSampler) Sample(rng *rand.Rand, n int) []float64 {
	out := make([]float64, n)
	for i := range out {
		out[i] = s.SampleOne(rng)
	}
	return out
}
