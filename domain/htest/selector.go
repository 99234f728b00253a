package htest

// ZThreshold is the fixed sample-size cutoff for using the normal
// approximation. It is a pedagogical simplification, intentionally not
// configurable and not adaptive to variance.
const ZThreshold = 40

// SelectOneSample picks the reference distribution for a one-sample test:
// Z when n > 40, otherwise T with n-1 degrees of freedom.
func SelectOneSample(n int) DistChoice {
	if n > ZThreshold {
		return DistChoice{Kind: DistZ}
	}
	return DistChoice{Kind: DistT, DF: float64(n - 1)}
}

// SelectTwoSample picks the reference distribution for a two-sample test:
// Z only when BOTH sample sizes exceed 40, otherwise T with
// Welch-Satterthwaite approximate degrees of freedom.
func SelectTwoSample(n1, n2 int, sd1, sd2 float64) DistChoice {
	if n1 > ZThreshold && n2 > ZThreshold {
		return DistChoice{Kind: DistZ}
	}
	return DistChoice{Kind: DistT, DF: WelchDF(n1, n2, sd1, sd2)}
}

// WelchDF computes the Welch-Satterthwaite approximate degrees of freedom:
//
//	df = (s1²/n1 + s2²/n2)² / [ (s1²/n1)²/(n1-1) + (s2²/n2)²/(n2-1) ]
func WelchDF(n1, n2 int, sd1, sd2 float64) float64 {
	v1 := sd1 * sd1 / float64(n1)
	v2 := sd2 * sd2 / float64(n2)
	num := (v1 + v2) * (v1 + v2)
	den := v1*v1/float64(n1-1) + v2*v2/float64(n2-1)
	return num / den
}
