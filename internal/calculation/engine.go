package calculation

import (
	"math"
	"time"

	"github.com/harvestam/compound/internal/domain"
	"github.com/harvestam/compound/pkg/decimal"
	"github.com/oklog/ulid/v2"
)

// CalculationEngine runs compound-interest simulations
type CalculationEngine struct {
	Logger Logger
	// Now stamps generated comparisons; defaults to time.Now.
	Now func() time.Time
}

// NewCalculationEngine creates a new calculation engine
func NewCalculationEngine() *CalculationEngine {
	return &CalculationEngine{
		Logger: NopLogger{},
		Now:    time.Now,
	}
}

// SetLogger sets the logger for the calculation engine. If nil is provided, a no-op logger is used.
func (ce *CalculationEngine) SetLogger(l Logger) {
	if l == nil {
		ce.Logger = NopLogger{}
		return
	}
	ce.Logger = l
}

// Simulate projects a balance compounded at the given frequency and returns one
// snapshot per whole year reached.
//
// The monthly contribution is annualised and spread evenly over the periods of
// a year, and is added before each period's growth. Cumulative contributions in
// a snapshot use the closed form initial + monthly*12*year rather than the
// running per-period sum. Years beyond domain.MaxYears are truncated to it.
func Simulate(initial, monthlyContribution, annualRatePercent, years float64, freq domain.Frequency) domain.SimulationResult {
	initial = domain.FiniteOrZero(initial)
	monthlyContribution = domain.FiniteOrZero(monthlyContribution)
	annualRatePercent = domain.FiniteOrZero(annualRatePercent)
	years = math.Min(domain.FiniteOrZero(years), domain.MaxYears)

	n := freq.PeriodsPerYear()
	totalPeriods := int(math.Round(years * float64(n)))
	rPeriod := (annualRatePercent / 100) / float64(n)
	contribPerPeriod := monthlyContribution * 12 / float64(n)

	var snapshots domain.SimulationResult
	balance := initial
	for p := 1; p <= totalPeriods; p++ {
		balance += contribPerPeriod
		balance *= 1 + rPeriod
		if p%n != 0 {
			continue
		}
		year := p / n
		totalContrib := initial + monthlyContribution*12*float64(year)
		snapshots = append(snapshots, domain.YearlySnapshot{
			Year:          year,
			Total:         decimal.RoundCents(balance),
			Contributions: decimal.RoundCents(totalContrib),
			Interest:      decimal.RoundCents(balance - totalContrib),
		})
	}
	return snapshots
}

// BracketRates derives the low and high scenario rates from a central rate and a
// symmetric variance. The low rate never drops below zero.
func BracketRates(rate, variance float64) domain.ScenarioRates {
	return domain.ScenarioRates{
		Base: rate,
		Low:  math.Max(0, rate-variance),
		High: rate + variance,
	}
}

// RunScenarios simulates the base, low and high scenarios for the given
// parameters and derives the summary from the base scenario.
func (ce *CalculationEngine) RunScenarios(params domain.InvestmentParameters) *domain.ScenarioComparison {
	p := params.Normalize()
	rates := BracketRates(p.AnnualRatePercent, p.VariancePercent)

	ce.Logger.Debugf("simulating %s compounding over %.2f years: initial=%.2f monthly=%.2f rates=%.2f/%.2f/%.2f",
		p.Frequency, p.Years, p.Initial, p.MonthlyContribution, rates.Low, rates.Base, rates.High)

	base := Simulate(p.Initial, p.MonthlyContribution, rates.Base, p.Years, p.Frequency)
	low := Simulate(p.Initial, p.MonthlyContribution, rates.Low, p.Years, p.Frequency)
	high := Simulate(p.Initial, p.MonthlyContribution, rates.High, p.Years, p.Frequency)

	if len(base) == 0 {
		ce.Logger.Warnf("simulation produced no whole-year snapshots")
	}

	now := ce.now()
	summary := Summarize(base)
	ce.Logger.Infof("future value %s after %d years (return %s%%)",
		summary.FutureValue.StringFixed(2), len(base), summary.ReturnPercent.StringFixed(2))

	return &domain.ScenarioComparison{
		RunID:       ulid.MustNew(ulid.Timestamp(now), ulid.DefaultEntropy()).String(),
		GeneratedAt: now,
		Parameters:  p,
		Frequency:   p.Frequency.String(),
		Rates:       rates,
		Base:        base,
		Low:         low,
		High:        high,
		Summary:     summary,
	}
}

func (ce *CalculationEngine) now() time.Time {
	if ce.Now == nil {
		return time.Now()
	}
	return ce.Now()
}
