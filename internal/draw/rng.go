package draw

// RNG is a deterministic linear congruential generator. The same seed
// always yields the same sequence, which is what makes a reading
// reproducible and auditable.
type RNG struct {
	state uint64
}

// NewRNG seeds a generator.
func NewRNG(seed uint64) *RNG {
	return &RNG{state: seed}
}

// Next returns a value in [0, max). max must be positive.
func (r *RNG) Next(max int) int {
	r.state = (r.state*1103515245 + 12345) & 0x7fffffff
	return int(r.state % uint64(max))
}

// Shuffle permutes n elements with the Fisher-Yates algorithm, calling
// swap for each exchange.
func (r *RNG) Shuffle(n int, swap func(i, j int)) {
	for i := n - 1; i > 0; i-- {
		j := r.Next(i + 1)
		swap(i, j)
	}
}
