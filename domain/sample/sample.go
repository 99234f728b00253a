package sample

import (
	"regexp"
	"strconv"
	"strings"

	"statcheck/domain/core"
)

// Sample is an ordered sequence of observed values.
type Sample []float64

var delimiters = regexp.MustCompile(`[,\s]+`)

// Parse converts free-form text into a Sample. Tokens may be separated by
// any run of commas, spaces, tabs, or newlines. Order is preserved.
func Parse(text string) (Sample, error) {
	trimmed := strings.TrimSpace(text)
	if trimmed == "" {
		return nil, core.ErrEmptyInput
	}

	tokens := delimiters.Split(trimmed, -1)
	values := make(Sample, 0, len(tokens))
	for _, token := range tokens {
		if token == "" {
			continue
		}
		v, err := strconv.ParseFloat(token, 64)
		if err != nil {
			return nil, core.NewParseError(token)
		}
		values = append(values, v)
	}

	if len(values) == 0 {
		return nil, core.ErrNoNumericTokens
	}
	return values, nil
}

// Size returns the number of observations.
func (s Sample) Size() int {
	return len(s)
}

// Values returns the underlying float slice.
func (s Sample) Values() []float64 {
	return []float64(s)
}
