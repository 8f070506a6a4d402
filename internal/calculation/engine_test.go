package calculation

import (
	"math"
	"testing"
	"time"

	"github.com/harvestam/compound/internal/domain"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestSimulateMonthlyExample(t *testing.T) {
	result := Simulate(100000, 10000, 5, 1, domain.Monthly)

	require.Len(t, result, 1)
	snap := result[0]
	assert.Equal(t, 1, snap.Year)
	assert.Equal(t, "220000.00", snap.Contributions.StringFixed(2))
	assert.Equal(t, "228416.36", snap.Total.StringFixed(2))
	assert.Equal(t, "8416.36", snap.Interest.StringFixed(2))
}

func TestSimulateMatchesClosedForm(t *testing.T) {
	// balance_n = P(1+r)^n + c(1+r)((1+r)^n - 1)/r for contribute-then-grow
	initial, monthly, rate, years := 5000.0, 250.0, 6.0, 10.0
	for _, key := range domain.FrequencyKeys() {
		t.Run(key, func(t *testing.T) {
			f := domain.ParseFrequency(key)
			n := float64(f.PeriodsPerYear())
			r := rate / 100 / n
			c := monthly * 12 / n
			growth := math.Pow(1+r, n*years)
			want := initial*growth + c*(1+r)*(growth-1)/r

			result := Simulate(initial, monthly, rate, years, f)
			require.Len(t, result, int(years))
			assert.InDelta(t, want, result.Last().Total.InexactFloat64(), 0.02)
		})
	}
}

func TestSimulateZeroInputs(t *testing.T) {
	result := Simulate(0, 0, 10, 5, domain.Annual)
	require.Len(t, result, 5)
	for _, s := range result {
		assert.True(t, s.Total.IsZero(), "year %d total %s", s.Year, s.Total)
		assert.True(t, s.Contributions.IsZero())
		assert.True(t, s.Interest.IsZero())
	}
}

func TestSimulateZeroRateIdentity(t *testing.T) {
	tests := []struct {
		name    string
		initial float64
		monthly float64
		years   float64
		freq    domain.Frequency
	}{
		{"monthly", 1000, 100, 10, domain.Monthly},
		{"annual", 2500, 50, 7, domain.Annual},
		{"quarterly", 0, 300, 3, domain.Quarterly},
		{"daily", 100, 100, 2, domain.Daily},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			result := Simulate(tt.initial, tt.monthly, 0, tt.years, tt.freq)
			want := tt.initial + tt.monthly*12*tt.years
			last := result.Last()
			assert.InDelta(t, want, last.Total.InexactFloat64(), 0.01)
			assert.InDelta(t, 0, last.Interest.InexactFloat64(), 0.01)
		})
	}
}

func TestSimulateSnapshotCount(t *testing.T) {
	tests := []struct {
		years float64
		freq  domain.Frequency
		want  int
	}{
		{1, domain.Monthly, 1},
		{30, domain.Daily, 30},
		{7, domain.SemiAnnual, 7},
		{2.4, domain.Monthly, 2},    // 29 periods, the last 5 emit nothing
		{0.25, domain.Quarterly, 0}, // a single period never reaches a year boundary
		{2.5, domain.Annual, 3},     // round(2.5) periods = 3 whole years
	}

	for _, tt := range tests {
		result := Simulate(1000, 10, 5, tt.years, tt.freq)
		assert.Len(t, result, tt.want, "years=%v freq=%s", tt.years, tt.freq)
		for i, s := range result {
			assert.Equal(t, i+1, s.Year)
		}
	}
}

func TestSimulatePartialYearEmitsNoSnapshot(t *testing.T) {
	whole := Simulate(1000, 100, 12, 2, domain.Monthly)
	partial := Simulate(1000, 100, 12, 2.4, domain.Monthly)

	require.Len(t, whole, 2)
	require.Len(t, partial, 2)
	assert.Equal(t, whole, partial)
}

func TestSimulateMonotonic(t *testing.T) {
	for _, key := range domain.FrequencyKeys() {
		result := Simulate(1000, 50, 4, 15, domain.ParseFrequency(key))
		for i := 1; i < len(result); i++ {
			assert.True(t, result[i].Total.GreaterThanOrEqual(result[i-1].Total),
				"%s year %d: %s < %s", key, result[i].Year, result[i].Total, result[i-1].Total)
		}
	}
}

func TestSimulateNegativeRate(t *testing.T) {
	result := Simulate(10000, 0, -10, 3, domain.Annual)
	require.Len(t, result, 3)
	assert.Equal(t, "9000.00", result[0].Total.StringFixed(2))
	assert.Equal(t, "8100.00", result[1].Total.StringFixed(2))
	assert.Equal(t, "-2710.00", result[2].Interest.StringFixed(2))
}

func TestSimulateNonFiniteInputsTreatedAsZero(t *testing.T) {
	result := Simulate(math.NaN(), math.Inf(1), 5, 2, domain.Monthly)
	require.Len(t, result, 2)
	for _, s := range result {
		assert.True(t, s.Total.IsZero())
		assert.True(t, s.Contributions.IsZero())
	}

	assert.Empty(t, Simulate(100, 10, 5, math.NaN(), domain.Monthly))
}

func TestSimulateHugeYearsTruncated(t *testing.T) {
	for _, years := range []float64{1e13, 1e300, math.MaxFloat64} {
		var result domain.SimulationResult
		require.NotPanics(t, func() { result = Simulate(0, 0, 5, years, domain.Annual) })
		require.Len(t, result, domain.MaxYears, "years=%g", years)
		assert.Equal(t, domain.MaxYears, result.Last().Year)
		assert.True(t, result.Last().Total.IsZero())
	}
}

func TestSimulateContributionsUseClosedForm(t *testing.T) {
	result := Simulate(1000, 100, 3, 4, domain.Daily)
	for _, s := range result {
		want := decimal.NewFromFloat(1000 + 100*12*float64(s.Year))
		assert.True(t, s.Contributions.Equal(want), "year %d: %s", s.Year, s.Contributions)
		assert.True(t, s.Interest.Sub(s.Total.Sub(s.Contributions)).Abs().LessThanOrEqual(decimal.NewFromFloat(0.01)))
	}
}

func TestBracketRates(t *testing.T) {
	tests := []struct {
		name     string
		rate     float64
		variance float64
		low      float64
		high     float64
	}{
		{"symmetric", 7, 1, 6, 8},
		{"zero variance", 5, 0, 5, 5},
		{"floored", 2, 5, 0, 7},
		{"negative base", -3, 1, 0, -2},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			r := BracketRates(tt.rate, tt.variance)
			assert.Equal(t, tt.rate, r.Base)
			assert.Equal(t, tt.low, r.Low)
			assert.Equal(t, tt.high, r.High)
			assert.GreaterOrEqual(t, r.Low, 0.0)
		})
	}
}

func TestRunScenarios(t *testing.T) {
	engine := NewCalculationEngine()
	fixed := time.Date(2025, 3, 1, 12, 0, 0, 0, time.UTC)
	engine.Now = func() time.Time { return fixed }

	params := domain.InvestmentParameters{
		Initial:             100000,
		MonthlyContribution: 10000,
		AnnualRatePercent:   5,
		VariancePercent:     2,
		Years:               3,
		Frequency:           domain.Quarterly,
	}
	results := engine.RunScenarios(params)

	require.NotNil(t, results)
	assert.NotEmpty(t, results.RunID)
	assert.Equal(t, fixed, results.GeneratedAt)
	assert.Equal(t, "quarterly", results.Frequency)
	assert.Equal(t, domain.ScenarioRates{Base: 5, Low: 3, High: 7}, results.Rates)
	require.Len(t, results.Base, 3)
	require.Len(t, results.Low, 3)
	require.Len(t, results.High, 3)

	for i := range results.Base {
		assert.Equal(t, results.Base[i].Year, results.Low[i].Year)
		assert.Equal(t, results.Base[i].Year, results.High[i].Year)
		assert.True(t, results.Low[i].Total.LessThan(results.Base[i].Total))
		assert.True(t, results.High[i].Total.GreaterThan(results.Base[i].Total))
	}
	assert.True(t, results.Summary.FutureValue.Equal(results.Base.Last().Total))
}

func TestRunScenariosClampsYears(t *testing.T) {
	engine := NewCalculationEngine()
	results := engine.RunScenarios(domain.InvestmentParameters{Initial: 100, Years: 0})
	assert.Len(t, results.Base, 1)
	assert.Equal(t, 1.0, results.Parameters.Years)
}

func TestRunScenariosCapsYears(t *testing.T) {
	engine := NewCalculationEngine()
	results := engine.RunScenarios(domain.InvestmentParameters{Initial: 100, Years: 1e13, Frequency: domain.Annual})
	assert.Equal(t, float64(domain.MaxYears), results.Parameters.Years)
	assert.Len(t, results.Base, domain.MaxYears)
	assert.Len(t, results.Low, domain.MaxYears)
	assert.Len(t, results.High, domain.MaxYears)
}

func TestSetLoggerNil(t *testing.T) {
	engine := NewCalculationEngine()
	engine.SetLogger(nil)
	assert.IsType(t, NopLogger{}, engine.Logger)
}
