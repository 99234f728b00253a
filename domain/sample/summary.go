package sample

import (
	"math"

	"github.com/montanaflynn/stats"

	"statcheck/domain/core"
)

// Summary holds descriptive statistics for a single sample.
type Summary struct {
	N      int     `json:"n"`
	Mean   float64 `json:"mean"`
	StdDev float64 `json:"std_dev"` // sample SD (n-1 divisor), NaN when N < 2
	Min    float64 `json:"min"`
	Max    float64 `json:"max"`
}

// Describe computes descriptive statistics for the sample. The standard
// deviation uses the n-1 divisor and is NaN for a single observation.
func (s Sample) Describe() (Summary, error) {
	if len(s) == 0 {
		return Summary{}, core.ErrNoNumericTokens
	}

	data := stats.Float64Data(s)
	mean, err := stats.Mean(data)
	if err != nil {
		return Summary{}, err
	}
	min, _ := stats.Min(data)
	max, _ := stats.Max(data)

	sd := math.NaN()
	if len(s) >= 2 {
		sd, err = stats.StandardDeviationSample(data)
		if err != nil {
			return Summary{}, err
		}
	}

	return Summary{
		N:      len(s),
		Mean:   mean,
		StdDev: sd,
		Min:    min,
		Max:    max,
	}, nil
}

// DescribeStrict is Describe with the additional requirement that a
// standard deviation exists, i.e. the sample holds at least 2 observations.
func (s Sample) DescribeStrict() (Summary, error) {
	summary, err := s.Describe()
	if err != nil {
		return Summary{}, err
	}
	if summary.N < 2 {
		return Summary{}, core.NewInsufficientDataError(summary.N)
	}
	return summary, nil
}
