package monitoring

import (
	"math/rand/v2"
	"sync"
)

// Range closed interval a metric is sampled from
type Range struct {
	Min float64
	Max float64
}

// Sampling ranges of the synthetic system metrics
var (
	CPUUsageRange    = Range{Min: 0.3, Max: 0.8}
	MemoryUsageRange = Range{Min: 0.4, Max: 0.9}
	GPUUsageRange    = Range{Min: 0.2, Max: 0.7}
	NetworkIORange   = Range{Min: 100, Max: 1000}
	DiskIORange      = Range{Min: 50, Max: 500}
)

// Sampler draws a value within r
type Sampler interface {
	Sample(r Range) float64
}

// UniformSampler samples uniformly from the range
type UniformSampler struct {
	mu  sync.Mutex
	rng *rand.Rand
}

// NewUniformSampler creates a sampler; seed 0 picks a random seed
func NewUniformSampler(seed uint64) *UniformSampler {
	if seed == 0 {
		seed = rand.Uint64()
	}
	return &UniformSampler{rng: rand.New(rand.NewPCG(seed, seed^0x9e3779b97f4a7c15))}
}

// Sample returns a value in [r.Min, r.Max]
func (s *UniformSampler) Sample(r Range) float64 {
	s.mu.Lock()
	f := s.rng.Float64()
	s.mu.Unlock()
	return r.Min + f*(r.Max-r.Min)
}

// FixedSampler returns the same fraction of every range, for tests
type FixedSampler float64

// Sample returns Min + f*(Max-Min)
func (f FixedSampler) Sample(r Range) float64 {
	return r.Min + float64(f)*(r.Max-r.Min)
}
