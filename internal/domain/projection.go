package domain

import (
	"time"

	"github.com/shopspring/decimal"
)

// YearlySnapshot is the balance, contributions and interest at the end of a whole year
type YearlySnapshot struct {
	Year          int             `json:"year"`
	Total         decimal.Decimal `json:"total"`
	Contributions decimal.Decimal `json:"contributions"`
	Interest      decimal.Decimal `json:"interest"`
}

// SimulationResult is the ordered sequence of yearly snapshots of one scenario
type SimulationResult []YearlySnapshot

// Len returns the number of snapshots
func (r SimulationResult) Len() int { return len(r) }

// Last returns the final snapshot, or a zeroed placeholder when the result is empty.
func (r SimulationResult) Last() YearlySnapshot {
	if len(r) == 0 {
		return YearlySnapshot{Total: decimal.Zero, Contributions: decimal.Zero, Interest: decimal.Zero}
	}
	return r[len(r)-1]
}

// Totals returns the total balance series
func (r SimulationResult) Totals() []decimal.Decimal {
	out := make([]decimal.Decimal, len(r))
	for i, s := range r {
		out[i] = s.Total
	}
	return out
}

// ContributionSeries returns the cumulative contributions series
func (r SimulationResult) ContributionSeries() []decimal.Decimal {
	out := make([]decimal.Decimal, len(r))
	for i, s := range r {
		out[i] = s.Contributions
	}
	return out
}

// InterestSeries returns the interest series
func (r SimulationResult) InterestSeries() []decimal.Decimal {
	out := make([]decimal.Decimal, len(r))
	for i, s := range r {
		out[i] = s.Interest
	}
	return out
}

// Summary holds the headline metrics derived from the base scenario
type Summary struct {
	FutureValue        decimal.Decimal `json:"future_value"`
	TotalContributions decimal.Decimal `json:"total_contributions"`
	InterestEarned     decimal.Decimal `json:"interest_earned"`
	ReturnPercent      decimal.Decimal `json:"return_percent"`
}

// ScenarioRates are the annual rate percentages applied to each scenario
type ScenarioRates struct {
	Base float64 `json:"base"`
	Low  float64 `json:"low"`
	High float64 `json:"high"`
}

// ScenarioComparison is the complete output of one calculation run.
// Formatters receive it explicitly; nothing else retains it.
type ScenarioComparison struct {
	RunID       string               `json:"run_id"`
	GeneratedAt time.Time            `json:"generated_at"`
	Parameters  InvestmentParameters `json:"parameters"`
	Frequency   string               `json:"frequency"`
	Rates       ScenarioRates        `json:"rates"`
	Base        SimulationResult     `json:"base"`
	Low         SimulationResult     `json:"low"`
	High        SimulationResult     `json:"high"`
	Summary     Summary              `json:"summary"`
}

// HasResults reports whether the comparison holds a base scenario with at least one snapshot.
func (sc *ScenarioComparison) HasResults() bool {
	return sc != nil && len(sc.Base) > 0
}
