package output

import (
	"github.com/harvestam/compound/internal/domain"
	"github.com/harvestam/compound/internal/i18n"
	"github.com/shopspring/decimal"
)

// Dataset is one chart series
type Dataset struct {
	Key    string    `json:"key"`
	Label  string    `json:"label"`
	Data   []float64 `json:"data"`
	Color  string    `json:"color"`
	Fill   bool      `json:"fill"`
	Dashed bool      `json:"dashed"`
}

// Chart is the renderer-facing view of a comparison
type Chart struct {
	Labels   []string  `json:"labels"`
	Datasets []Dataset `json:"datasets"`
}

// BuildChart maps a comparison onto five series sharing the base year axis:
// base contributions, base interest, base total, low total and high total.
func BuildChart(results *domain.ScenarioComparison, lang i18n.Language) Chart {
	t := i18n.T(lang)
	if results == nil {
		return Chart{Labels: []string{}, Datasets: []Dataset{}}
	}
	labels := make([]string, len(results.Base))
	for i, s := range results.Base {
		labels[i] = t.Year(s.Year)
	}
	return Chart{
		Labels: labels,
		Datasets: []Dataset{
			{Key: "contributions", Label: t.SeriesContributions, Data: floats(results.Base.ContributionSeries()), Color: "#10b981", Fill: true},
			{Key: "interest", Label: t.SeriesInterest, Data: floats(results.Base.InterestSeries()), Color: "#8b5cf6", Fill: true},
			{Key: "total", Label: t.SeriesTotal, Data: floats(results.Base.Totals()), Color: "#3b82f6"},
			{Key: "low", Label: t.SeriesLow, Data: floats(results.Low.Totals()), Color: "#ff6b6b", Dashed: true},
			{Key: "high", Label: t.SeriesHigh, Data: floats(results.High.Totals()), Color: "#ffd166", Dashed: true},
		},
	}
}

func floats(ds []decimal.Decimal) []float64 {
	out := make([]float64, len(ds))
	for i, d := range ds {
		out[i] = d.InexactFloat64()
	}
	return out
}
