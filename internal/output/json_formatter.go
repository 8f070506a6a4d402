package output

import (
	"encoding/json"

	"github.com/harvestam/compound/internal/domain"
	"github.com/harvestam/compound/internal/i18n"
)

// JSONFormatter serializes the chart series and summary as pretty-printed JSON.
type JSONFormatter struct {
	Lang i18n.Language
}

func (j JSONFormatter) Name() string      { return "json" }
func (j JSONFormatter) Extension() string { return "json" }

type jsonReport struct {
	RunID      string                      `json:"run_id"`
	Parameters domain.InvestmentParameters `json:"parameters"`
	Frequency  string                      `json:"frequency"`
	Rates      domain.ScenarioRates        `json:"rates"`
	Summary    domain.Summary              `json:"summary"`
	Chart      Chart                       `json:"chart"`
}

func (j JSONFormatter) Format(results *domain.ScenarioComparison) ([]byte, error) {
	if results == nil {
		return nil, ErrNoSimulation
	}
	return json.MarshalIndent(jsonReport{
		RunID:      results.RunID,
		Parameters: results.Parameters,
		Frequency:  results.Frequency,
		Rates:      results.Rates,
		Summary:    results.Summary,
		Chart:      BuildChart(results, j.Lang),
	}, "", "  ")
}
