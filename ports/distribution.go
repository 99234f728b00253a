package ports

// Distribution is the reference-distribution surface the statistic engine
// evaluates against. Implementations must be pure and deterministic:
// every method is a side-effect-free function of its numeric argument,
// safe to call from any goroutine without synchronization.
type Distribution interface {
	// Quantile returns the inverse CDF at probability p.
	Quantile(p float64) float64
	// CDF returns P(X <= x).
	CDF(x float64) float64
	// Survival returns P(X > x) = 1 - CDF(x).
	Survival(x float64) float64
}
