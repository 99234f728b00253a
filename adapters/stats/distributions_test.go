package stats

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestNormalQuantiles(t *testing.T) {
	dist := Normal()

	tests := []struct {
		p    float64
		want float64
	}{
		{0.5, 0},
		{0.975, 1.959964},
		{0.025, -1.959964},
		{0.95, 1.644854},
		{0.05, -1.644854},
	}

	for _, tt := range tests {
		assert.InDelta(t, tt.want, dist.Quantile(tt.p), 1e-5, "quantile(%g)", tt.p)
	}
}

func TestStudentsTQuantiles(t *testing.T) {
	tests := []struct {
		df   float64
		p    float64
		want float64
	}{
		{5, 0.975, 2.570582},
		{5, 0.95, 2.015048},
		{10, 0.975, 2.228139},
		{1, 0.975, 12.706205},
	}

	for _, tt := range tests {
		dist := StudentsT(tt.df)
		assert.InDelta(t, tt.want, dist.Quantile(tt.p), 1e-4, "t(df=%g).quantile(%g)", tt.df, tt.p)
	}
}

func TestSurvivalComplementsCDF(t *testing.T) {
	for _, dist := range []struct {
		name string
		d    interface {
			CDF(float64) float64
			Survival(float64) float64
		}
	}{
		{"normal", Normal()},
		{"t df=5", StudentsT(5)},
		{"t df=8.47", StudentsT(8.4715)},
	} {
		for _, x := range []float64{-3, -1.5, 0, 0.5, 2, 4} {
			sum := dist.d.CDF(x) + dist.d.Survival(x)
			assert.InDelta(t, 1.0, sum, 1e-12, "%s at x=%g", dist.name, x)
		}
	}
}

func TestSymmetry(t *testing.T) {
	norm := Normal()
	tdist := StudentsT(7)

	for _, x := range []float64{0.5, 1.3, 2.7} {
		assert.InDelta(t, norm.Survival(x), norm.CDF(-x), 1e-12)
		assert.InDelta(t, tdist.Survival(x), tdist.CDF(-x), 1e-12)
	}

	assert.InDelta(t, 0.5, norm.CDF(0), 1e-12)
	assert.InDelta(t, 0.5, tdist.CDF(0), 1e-12)
}

func TestFractionalDegreesOfFreedom(t *testing.T) {
	// Welch produces fractional df; the quantile must interpolate sensibly
	// between the neighboring integer-df distributions.
	q8 := StudentsT(8).Quantile(0.975)
	q9 := StudentsT(9).Quantile(0.975)
	qf := StudentsT(8.4715).Quantile(0.975)

	assert.Greater(t, qf, q9)
	assert.Less(t, qf, q8)
}
