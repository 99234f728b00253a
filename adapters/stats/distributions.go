package stats

import (
	"gonum.org/v1/gonum/stat/distuv"

	"statcheck/ports"
)

// normalDist wraps the standard normal distribution.
type normalDist struct {
	dist distuv.Normal
}

// Normal returns the standard normal reference distribution.
func Normal() ports.Distribution {
	return normalDist{dist: distuv.UnitNormal}
}

func (d normalDist) Quantile(p float64) float64 { return d.dist.Quantile(p) }
func (d normalDist) CDF(x float64) float64      { return d.dist.CDF(x) }
func (d normalDist) Survival(x float64) float64 { return d.dist.Survival(x) }

// studentsTDist wraps Student's t-distribution with a given degrees of freedom.
type studentsTDist struct {
	dist distuv.StudentsT
}

// StudentsT returns Student's t reference distribution with df degrees of
// freedom. Fractional df is valid (Welch-Satterthwaite produces one).
func StudentsT(df float64) ports.Distribution {
	return studentsTDist{dist: distuv.StudentsT{Mu: 0, Sigma: 1, Nu: df}}
}

func (d studentsTDist) Quantile(p float64) float64 { return d.dist.Quantile(p) }
func (d studentsTDist) CDF(x float64) float64      { return d.dist.CDF(x) }
func (d studentsTDist) Survival(x float64) float64 { return d.dist.Survival(x) }
