package ports

// Rand abstracts the random source used for entity spawning so tests can
// inject a deterministic sequence. Implementations need not be safe for
// concurrent use; each renderer owns its own source.
type Rand interface {
	// Float64 returns a value in [0, 1).
	Float64() float64

	// IntN returns a value in [0, n). n must be positive.
	IntN(n int) int
}
