package domain

import (
	"math"
	"strings"
)

// Frequency is the compounding frequency of a simulation
type Frequency int

const (
	// Monthly is the zero value so an unset frequency compounds monthly.
	Monthly Frequency = iota
	Daily
	Quarterly
	SemiAnnual
	Annual
)

var frequencyKeys = map[Frequency]string{
	Daily:      "daily",
	Monthly:    "monthly",
	Quarterly:  "quarterly",
	SemiAnnual: "semiannual",
	Annual:     "annual",
}

var frequencyPeriods = map[Frequency]int{
	Daily:      365,
	Monthly:    12,
	Quarterly:  4,
	SemiAnnual: 2,
	Annual:     1,
}

// ParseFrequency maps a frequency key to its Frequency. Unknown keys fall back to Monthly.
func ParseFrequency(key string) Frequency {
	k := strings.ToLower(strings.TrimSpace(key))
	for f, name := range frequencyKeys {
		if name == k {
			return f
		}
	}
	return Monthly
}

// PeriodsPerYear returns the number of compounding periods in one year
func (f Frequency) PeriodsPerYear() int {
	if n, ok := frequencyPeriods[f]; ok {
		return n
	}
	return frequencyPeriods[Monthly]
}

// String returns the frequency key
func (f Frequency) String() string {
	if k, ok := frequencyKeys[f]; ok {
		return k
	}
	return frequencyKeys[Monthly]
}

// FrequencyKeys lists the recognised frequency keys in ascending period order.
func FrequencyKeys() []string {
	return []string{"annual", "semiannual", "quarterly", "monthly", "daily"}
}

// MaxYears bounds the projection horizon.
const MaxYears = 1000

// InvestmentParameters holds the inputs of one simulation request
type InvestmentParameters struct {
	Initial             float64   `json:"initial" yaml:"initial"`
	MonthlyContribution float64   `json:"monthly_contribution" yaml:"monthly_contribution"`
	AnnualRatePercent   float64   `json:"annual_rate_percent" yaml:"annual_rate"`
	VariancePercent     float64   `json:"variance_percent" yaml:"variance"`
	Years               float64   `json:"years" yaml:"years"`
	Frequency           Frequency `json:"-" yaml:"-"`
}

// Normalize coerces non-finite values to zero and clamps Years to [1, MaxYears].
func (p InvestmentParameters) Normalize() InvestmentParameters {
	p.Initial = FiniteOrZero(p.Initial)
	p.MonthlyContribution = FiniteOrZero(p.MonthlyContribution)
	p.AnnualRatePercent = FiniteOrZero(p.AnnualRatePercent)
	p.VariancePercent = FiniteOrZero(p.VariancePercent)
	p.Years = math.Min(MaxYears, math.Max(1, FiniteOrZero(p.Years)))
	return p
}

// FiniteOrZero returns v, or 0 when v is NaN or infinite.
func FiniteOrZero(v float64) float64 {
	if math.IsNaN(v) || math.IsInf(v, 0) {
		return 0
	}
	return v
}
