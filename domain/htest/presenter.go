package htest

import (
	"fmt"
	"strings"

	"statcheck/domain/sample"
)

// Report is the human-readable rendering of a Result. Building a report is
// pure formatting; no statistics are computed here.
type Report struct {
	SampleLines     []string `json:"sample_lines"`
	Distribution    string   `json:"distribution"`
	NullHypothesis  string   `json:"null_hypothesis"`
	AltHypothesis   string   `json:"alt_hypothesis"`
	RejectionRegion string   `json:"rejection_region"`
	StatisticLine   string   `json:"statistic_line"`
	PValueLine      string   `json:"p_value_line"`
	Decision        string   `json:"decision"`
	Conclusion      string   `json:"conclusion"`
}

// BuildReport formats a Result for display.
func BuildReport(result *Result) Report {
	symbol := result.Dist.StatSymbol()

	report := Report{
		Distribution:    fmt.Sprintf("Reference distribution: %s", result.Dist),
		RejectionRegion: rejectionRegionText(result.Region, symbol),
		StatisticLine:   fmt.Sprintf("%s = %.4f", symbol, result.Statistic),
		PValueLine:      fmt.Sprintf("p-value = %.6g", result.PValue),
		Decision:        decisionText(result.Reject, result.Config.Alpha),
	}

	switch result.Kind {
	case TwoSample:
		report.SampleLines = []string{
			summaryLine("Sample 1", result.Summary1),
			summaryLine("Sample 2", *result.Summary2),
		}
		report.NullHypothesis = fmt.Sprintf("H₀: μ₁ − μ₂ = %g", result.Delta0)
		report.AltHypothesis = fmt.Sprintf("Hₐ: μ₁ − μ₂ %s %g", result.Config.Alternative.Symbol(), result.Delta0)
		report.Conclusion = twoSampleConclusion(result.Reject, result.Config.Alternative)
	default:
		report.SampleLines = []string{summaryLine("Sample", result.Summary1)}
		report.NullHypothesis = fmt.Sprintf("H₀: μ = %g", result.Mu0)
		report.AltHypothesis = fmt.Sprintf("Hₐ: μ %s %g", result.Config.Alternative.Symbol(), result.Mu0)
		report.Conclusion = oneSampleConclusion(result.Reject, result.Config.Alternative)
	}

	return report
}

// Render returns the report as a plain-text block.
func (r Report) Render() string {
	var b strings.Builder
	for _, line := range r.SampleLines {
		b.WriteString(line)
		b.WriteByte('\n')
	}
	b.WriteString(r.Distribution)
	b.WriteByte('\n')
	b.WriteString(r.NullHypothesis)
	b.WriteByte('\n')
	b.WriteString(r.AltHypothesis)
	b.WriteByte('\n')
	b.WriteString(r.RejectionRegion)
	b.WriteByte('\n')
	b.WriteString(r.StatisticLine)
	b.WriteByte('\n')
	b.WriteString(r.PValueLine)
	b.WriteByte('\n')
	b.WriteString(r.Decision)
	b.WriteByte('\n')
	b.WriteString(r.Conclusion)
	b.WriteByte('\n')
	return b.String()
}

func summaryLine(label string, s sample.Summary) string {
	return fmt.Sprintf("%s: n = %d, mean = %.6g, SD = %.6g", label, s.N, s.Mean, s.StdDev)
}

func rejectionRegionText(region CriticalRegion, symbol string) string {
	switch region.Alternative {
	case AltGreater:
		return fmt.Sprintf("Reject H₀ if %s ≥ %.4f", symbol, region.Upper)
	case AltLess:
		return fmt.Sprintf("Reject H₀ if %s ≤ %.4f", symbol, region.Lower)
	default:
		return fmt.Sprintf("Reject H₀ if %s ≤ %.4f or %s ≥ %.4f", symbol, region.Lower, symbol, region.Upper)
	}
}

func decisionText(reject bool, alpha float64) string {
	if reject {
		return fmt.Sprintf("Reject H₀ (α = %g)", alpha)
	}
	return fmt.Sprintf("Fail to reject H₀ (α = %g)", alpha)
}

func evidence(reject bool) string {
	if reject {
		return "strong"
	}
	return "insufficient"
}

func oneSampleConclusion(reject bool, alt Alternative) string {
	switch alt {
	case AltGreater:
		return fmt.Sprintf("There is %s statistical evidence that the true mean is greater than μ₀.", evidence(reject))
	case AltLess:
		return fmt.Sprintf("There is %s statistical evidence that the true mean is less than μ₀.", evidence(reject))
	default:
		return fmt.Sprintf("There is %s statistical evidence that the true mean differs from μ₀.", evidence(reject))
	}
}

func twoSampleConclusion(reject bool, alt Alternative) string {
	switch alt {
	case AltGreater:
		return fmt.Sprintf("There is %s statistical evidence that μ₁ − μ₂ is greater than Δ₀.", evidence(reject))
	case AltLess:
		return fmt.Sprintf("There is %s statistical evidence that μ₁ − μ₂ is less than Δ₀.", evidence(reject))
	default:
		return fmt.Sprintf("There is %s statistical evidence that the two true means are different.", evidence(reject))
	}
}
