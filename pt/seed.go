package pt

// splitmix64 is the standard SplitMix64 finalizer: a fast, well-mixed
// integer hash with no external state.
func splitmix64(x uint64) uint64 {
	x = (x ^ (x >> 30)) * 0xBF58476D1CE4E5B9
	x = (x ^ (x >> 27)) * 0x94D049BB133111EB
	return x ^ (x >> 31)
}

// mixSeed folds an arbitrary number of integer parts into a single
// deterministic hash. Used to derive per-pixel RNG seeds and sample-set
// indices from (seed, pixel, sample index) tuples, so those values never
// depend on which goroutine happens to process a given pixel.
func mixSeed(parts ...uint64) uint64 {
	var state uint64
	for _, p := range parts {
		state = splitmix64(state + p + 0x9E3779B97F4A7C15)
	}
	return state
}
