package htest

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestSelectOneSample(t *testing.T) {
	tests := []struct {
		name     string
		n        int
		wantKind DistKind
		wantDF   float64
	}{
		{"Small sample", 6, DistT, 5},
		{"At threshold", 40, DistT, 39},
		{"Just above threshold", 41, DistZ, 0},
		{"Large sample", 200, DistZ, 0},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			choice := SelectOneSample(tt.n)
			assert.Equal(t, tt.wantKind, choice.Kind)
			assert.Equal(t, tt.wantDF, choice.DF)
		})
	}
}

func TestSelectTwoSample(t *testing.T) {
	tests := []struct {
		name     string
		n1, n2   int
		wantKind DistKind
	}{
		{"Both small", 6, 6, DistT},
		{"Only first large", 50, 30, DistT},
		{"Only second large", 30, 50, DistT},
		{"Both at threshold", 40, 40, DistT},
		{"Both above threshold", 41, 41, DistZ},
		{"Both large", 100, 80, DistZ},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			choice := SelectTwoSample(tt.n1, tt.n2, 2.0, 3.0)
			assert.Equal(t, tt.wantKind, choice.Kind)
		})
	}
}

func TestWelchDF(t *testing.T) {
	// Equal variances and sizes collapse to the pooled df n1+n2-2.
	df := WelchDF(10, 10, 2.0, 2.0)
	assert.InDelta(t, 18.0, df, 1e-9)

	// Worked example from the independent-samples test.
	df = WelchDF(6, 6, 2.3166067, 1.4719601)
	assert.InDelta(t, 8.4715, df, 1e-3)
}

func TestWelchDFBounds(t *testing.T) {
	tests := []struct {
		name     string
		n1, n2   int
		sd1, sd2 float64
	}{
		{"Equal sizes unequal variances", 6, 6, 2.3166, 1.4720},
		{"Unequal sizes", 5, 12, 1.0, 4.0},
		{"Extreme variance ratio", 8, 30, 0.1, 9.0},
		{"Minimal sizes", 2, 2, 1.0, 2.0},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			df := WelchDF(tt.n1, tt.n2, tt.sd1, tt.sd2)

			min := float64(tt.n1 - 1)
			if tt.n2 < tt.n1 {
				min = float64(tt.n2 - 1)
			}
			max := float64(tt.n1 + tt.n2 - 2)

			assert.GreaterOrEqual(t, df, min, "df below min(n1,n2)-1")
			assert.LessOrEqual(t, df, max, "df above n1+n2-2")
		})
	}
}
