package htest

import (
	"math"

	"statcheck/domain/core"
	"statcheck/ports"
)

// DistFactory builds reference distributions for the engine.
type DistFactory struct {
	Normal    func() ports.Distribution
	StudentsT func(df float64) ports.Distribution
}

// Engine evaluates hypothesis tests against reference distributions
// supplied through the distribution port. The engine is stateless: every
// evaluation is a pure function of its request.
type Engine struct {
	dists DistFactory
}

// NewEngine creates an engine backed by the given distribution factory.
func NewEngine(dists DistFactory) *Engine {
	return &Engine{dists: dists}
}

// EvaluateOneSample runs a one-sample mean test.
//
// statistic = (x̄ - μ₀) / (s/√n)
func (e *Engine) EvaluateOneSample(req OneSampleRequest) (*Result, error) {
	if err := req.Config.Validate(); err != nil {
		return nil, err
	}

	summary, err := req.Data.DescribeStrict()
	if err != nil {
		return nil, err
	}

	se := summary.StdDev / math.Sqrt(float64(summary.N))
	if se == 0 {
		return nil, core.ErrDegenerateInput
	}

	choice := SelectOneSample(summary.N)
	stat := (summary.Mean - req.Mu0) / se

	result := &Result{
		ID:          core.NewEvaluationID(),
		Fingerprint: req.Fingerprint(),
		Kind:        OneSample,
		Config:      req.Config,
		Mu0:         req.Mu0,
		Summary1:    summary,
		Dist:        choice,
		StdErr:      se,
		Statistic:   stat,
		ComputedAt:  core.Now(),
	}
	e.finish(result)
	return result, nil
}

// EvaluateTwoSample runs an independent two-sample mean test using Welch's
// standard error (no pooled-variance option).
//
// statistic = ((x̄1 - x̄2) - Δ₀) / √(s1²/n1 + s2²/n2)
func (e *Engine) EvaluateTwoSample(req TwoSampleRequest) (*Result, error) {
	if err := req.Config.Validate(); err != nil {
		return nil, err
	}

	summary1, err := req.Data1.DescribeStrict()
	if err != nil {
		return nil, err
	}
	summary2, err := req.Data2.DescribeStrict()
	if err != nil {
		return nil, err
	}

	v1 := summary1.StdDev * summary1.StdDev / float64(summary1.N)
	v2 := summary2.StdDev * summary2.StdDev / float64(summary2.N)
	se := math.Sqrt(v1 + v2)
	if se == 0 {
		return nil, core.ErrDegenerateInput
	}

	choice := SelectTwoSample(summary1.N, summary2.N, summary1.StdDev, summary2.StdDev)
	stat := ((summary1.Mean - summary2.Mean) - req.Delta0) / se

	result := &Result{
		ID:          core.NewEvaluationID(),
		Fingerprint: req.Fingerprint(),
		Kind:        TwoSample,
		Config:      req.Config,
		Delta0:      req.Delta0,
		Summary1:    summary1,
		Summary2:    &summary2,
		Dist:        choice,
		StdErr:      se,
		Statistic:   stat,
		ComputedAt:  core.Now(),
	}
	e.finish(result)
	return result, nil
}

// finish fills the distribution-derived fields: critical region, rejection
// decision, and p-value.
func (e *Engine) finish(result *Result) {
	dist := e.distribution(result.Dist)
	result.Region = criticalRegion(dist, result.Config.Alpha, result.Config.Alternative)
	result.Reject = result.Region.Contains(result.Statistic)
	result.PValue = pValue(dist, result.Statistic, result.Config.Alternative)
}

func (e *Engine) distribution(choice DistChoice) ports.Distribution {
	if choice.Kind == DistZ {
		return e.dists.Normal()
	}
	return e.dists.StudentsT(choice.DF)
}

// criticalRegion derives the rejection region from distribution quantiles.
func criticalRegion(dist ports.Distribution, alpha float64, alt Alternative) CriticalRegion {
	region := CriticalRegion{Alternative: alt}
	switch alt {
	case AltGreater:
		region.Upper = dist.Quantile(1 - alpha)
	case AltLess:
		region.Lower = dist.Quantile(alpha)
	default:
		region.Lower = dist.Quantile(alpha / 2)
		region.Upper = dist.Quantile(1 - alpha/2)
	}
	return region
}

// pValue computes the p-value for the observed statistic. The two-sided
// value doubles the upper-tail probability of |stat| and is deliberately
// not clamped; symmetry of Z and T makes this exact.
func pValue(dist ports.Distribution, stat float64, alt Alternative) float64 {
	switch alt {
	case AltGreater:
		return dist.Survival(stat)
	case AltLess:
		return dist.CDF(stat)
	default:
		return 2 * dist.Survival(math.Abs(stat))
	}
}
