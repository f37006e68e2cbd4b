package pt

import "math"

// Distribution selects how a Sampler's 2-D sample sets are generated.
type Distribution int

const (
	Random Distribution = iota
	Jittered
)

// Sampler pre-generates num_sets*num_samples 2-D points in [0,1)^2 plus a
// same-length table of shuffle indices, up front, so that SampleAt only
// ever indexes into already-computed data and needs no RNG of its own
// at lookup time. The shuffle indices are drawn uniformly and may
// repeat: this is not a strict permutation. That mirrors a bug in the
// system this was ported from and is preserved rather than fixed.
type Sampler struct {
	numSamples int
	numSets    int
	samples    []samplePoint
	shuffle    []int
}

type samplePoint struct {
	X, Y float64
}

// NewSampler builds a Sampler with numSets sample sets of numSamples
// points each, drawn according to dist using rng.
func NewSampler(numSamples, numSets int, dist Distribution, rng RNG) *Sampler {
	total := numSets * numSamples
	s := &Sampler{
		numSamples: numSamples,
		numSets:    numSets,
		samples:    make([]samplePoint, total),
		shuffle:    make([]int, total),
	}

	switch dist {
	case Jittered:
		s.generateJittered(rng)
	default:
		s.generateRandom(rng)
	}

	for i := range s.shuffle {
		s.shuffle[i] = rng.Intn(total)
	}

	return s
}

func (s *Sampler) generateRandom(rng RNG) {
	for i := range s.samples {
		s.samples[i] = samplePoint{X: RandomDouble(rng), Y: RandomDouble(rng)}
	}
}

// generateJittered fills each set with an n x n stratified grid, n =
// floor(sqrt(numSamples)). Cell (j,k) receives ((k+xi1)/n, (j+xi2)/n).
// When numSamples is not a perfect square, the grid covers n*n < numSamples
// cells and the remainder is filled with plain uniform samples.
func (s *Sampler) generateJittered(rng RNG) {
	n := int(math.Sqrt(float64(s.numSamples)))
	if n < 1 {
		n = 1
	}

	for set := 0; set < s.numSets; set++ {
		base := set * s.numSamples
		idx := 0
		for j := 0; j < n; j++ {
			for k := 0; k < n; k++ {
				if idx >= s.numSamples {
					break
				}
				s.samples[base+idx] = samplePoint{
					X: (float64(k) + RandomDouble(rng)) / float64(n),
					Y: (float64(j) + RandomDouble(rng)) / float64(n),
				}
				idx++
			}
		}
		for ; idx < s.numSamples; idx++ {
			s.samples[base+idx] = samplePoint{X: RandomDouble(rng), Y: RandomDouble(rng)}
		}
	}
}

// SampleAt returns the 2-D sample a physical pixel draws on a given
// sample iteration. The pixel's sample set is chosen by hashing its
// coordinates rather than by which worker's bucket queue happens to
// claim it that iteration, so the value returned is a pure function of
// (pixelX, pixelY, sampleIndex): it does not depend on goroutine
// scheduling, and is therefore safe to call concurrently from any
// number of workers without coordination. sampleIndex is 1-based, as
// produced by the render loop's sample-iteration counter.
func (s *Sampler) SampleAt(pixelX, pixelY uint32, sampleIndex int) (x, y float64) {
	set := int(mixSeed(uint64(pixelX), uint64(pixelY)) % uint64(s.numSets))
	offset := (sampleIndex - 1) % s.numSamples
	idx := s.shuffle[set*s.numSamples+offset]
	p := s.samples[idx]
	return p.X, p.Y
}
