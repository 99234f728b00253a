package htest

import (
	"fmt"
	"strings"

	"statcheck/domain/core"
	"statcheck/domain/sample"
)

// Alternative identifies the alternative-hypothesis variant.
type Alternative string

const (
	AltTwoSided Alternative = "two-sided"
	AltGreater  Alternative = "greater"
	AltLess     Alternative = "less"
)

// ParseAlternative parses a string into an Alternative
func ParseAlternative(s string) (Alternative, error) {
	switch Alternative(strings.TrimSpace(strings.ToLower(s))) {
	case AltTwoSided:
		return AltTwoSided, nil
	case AltGreater:
		return AltGreater, nil
	case AltLess:
		return AltLess, nil
	}
	return "", core.NewConfigError("alternative", fmt.Sprintf("must be one of two-sided, greater, less; got %q", s))
}

// Symbol returns the comparison symbol used in the alternative hypothesis
func (a Alternative) Symbol() string {
	switch a {
	case AltGreater:
		return ">"
	case AltLess:
		return "<"
	default:
		return "≠"
	}
}

// Label returns a human-readable name for the alternative
func (a Alternative) Label() string {
	switch a {
	case AltGreater:
		return "Right-tailed (>)"
	case AltLess:
		return "Left-tailed (<)"
	default:
		return "Two-sided (≠)"
	}
}

// Significance level bounds accepted on the input surface.
const (
	MinAlpha = 0.0001
	MaxAlpha = 0.5
)

// DefaultAlpha is used when no significance level is supplied.
const DefaultAlpha = 0.05

// Config holds the per-invocation test configuration.
type Config struct {
	Alpha       float64     `json:"alpha"`
	Alternative Alternative `json:"alternative"`
}

// Validate checks the configuration against the input-surface contract.
func (c Config) Validate() error {
	if c.Alpha < MinAlpha || c.Alpha > MaxAlpha {
		return core.NewConfigError("alpha", fmt.Sprintf("must be in [%g, %g]; got %g", MinAlpha, MaxAlpha, c.Alpha))
	}
	if _, err := ParseAlternative(string(c.Alternative)); err != nil {
		return err
	}
	return nil
}

// TestKind distinguishes one-sample from two-sample tests.
type TestKind string

const (
	OneSample TestKind = "one_sample"
	TwoSample TestKind = "two_sample"
)

// DistKind identifies the reference distribution family.
type DistKind string

const (
	DistZ DistKind = "Z"
	DistT DistKind = "T"
)

// DistChoice is the selected reference distribution: Z, or T with degrees
// of freedom (fractional for Welch).
type DistChoice struct {
	Kind DistKind `json:"kind"`
	DF   float64  `json:"df,omitempty"`
}

// StatSymbol returns the statistic letter for the chosen distribution
func (d DistChoice) StatSymbol() string {
	if d.Kind == DistZ {
		return "z"
	}
	return "t"
}

// String describes the distribution for display
func (d DistChoice) String() string {
	if d.Kind == DistZ {
		return "standard normal (Z)"
	}
	return fmt.Sprintf("Student's t, df = %.4g", d.DF)
}

// OneSampleRequest is an immutable request to test a single sample mean
// against a hypothesized value.
type OneSampleRequest struct {
	Config
	Mu0  float64       `json:"mu0"`
	Data sample.Sample `json:"data"`
}

// Fingerprint derives the deterministic identity of the request.
func (r OneSampleRequest) Fingerprint() core.Fingerprint {
	return core.ComputeFingerprint(string(OneSample)+"|"+string(r.Alternative),
		map[string]float64{"alpha": r.Alpha, "mu0": r.Mu0},
		[]string{"alpha", "mu0"},
		r.Data.Values())
}

// TwoSampleRequest is an immutable request to test the difference of two
// independent sample means against a hypothesized difference.
type TwoSampleRequest struct {
	Config
	Delta0 float64       `json:"delta0"`
	Data1  sample.Sample `json:"data1"`
	Data2  sample.Sample `json:"data2"`
}

// Fingerprint derives the deterministic identity of the request.
func (r TwoSampleRequest) Fingerprint() core.Fingerprint {
	return core.ComputeFingerprint(string(TwoSample)+"|"+string(r.Alternative),
		map[string]float64{"alpha": r.Alpha, "delta0": r.Delta0},
		[]string{"alpha", "delta0"},
		r.Data1.Values(), r.Data2.Values())
}

// CriticalRegion describes the rejection region for a test.
type CriticalRegion struct {
	Alternative Alternative `json:"alternative"`
	Lower       float64     `json:"lower,omitempty"` // two-sided and left-tailed
	Upper       float64     `json:"upper,omitempty"` // two-sided and right-tailed
}

// Contains reports whether the statistic falls in the rejection region.
func (r CriticalRegion) Contains(stat float64) bool {
	switch r.Alternative {
	case AltGreater:
		return stat >= r.Upper
	case AltLess:
		return stat <= r.Lower
	default:
		return stat <= r.Lower || stat >= r.Upper
	}
}

// Result is the immutable outcome of a single evaluation.
type Result struct {
	ID          core.EvaluationID `json:"id"`
	Fingerprint core.Fingerprint  `json:"fingerprint"`
	Kind        TestKind          `json:"kind"`
	Config      Config            `json:"config"`
	Mu0         float64           `json:"mu0,omitempty"`
	Delta0      float64           `json:"delta0,omitempty"`
	Summary1    sample.Summary    `json:"summary_1"`
	Summary2    *sample.Summary   `json:"summary_2,omitempty"`
	Dist        DistChoice        `json:"dist"`
	StdErr      float64           `json:"std_err"`
	Statistic   float64           `json:"statistic"`
	Region      CriticalRegion    `json:"region"`
	PValue      float64           `json:"p_value"`
	Reject      bool              `json:"reject"`
	ComputedAt  core.Timestamp    `json:"computed_at"`
}
