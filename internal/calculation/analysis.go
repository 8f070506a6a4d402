package calculation

import (
	"github.com/harvestam/compound/internal/domain"
	"github.com/shopspring/decimal"
)

var decimalHundred = decimal.NewFromInt(100)

// Summarize derives the headline metrics from the last snapshot of a result.
// An empty result yields zero metrics.
func Summarize(result domain.SimulationResult) domain.Summary {
	last := result.Last()
	return domain.Summary{
		FutureValue:        last.Total,
		TotalContributions: last.Contributions,
		InterestEarned:     last.Interest,
		ReturnPercent:      ReturnPercent(last.Total, last.Contributions),
	}
}

// ReturnPercent is the gain over contributions as a percentage, or zero when
// nothing was contributed.
func ReturnPercent(total, contributions decimal.Decimal) decimal.Decimal {
	if contributions.IsZero() {
		return decimal.Zero
	}
	return total.Sub(contributions).Div(contributions).Mul(decimalHundred)
}
