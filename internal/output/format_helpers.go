package output

import (
	"github.com/harvestam/compound/pkg/decimal"
	stddec "github.com/shopspring/decimal"
)

// FormatCurrency formats an amount as "1 234,56 FCFA".
func FormatCurrency(amount stddec.Decimal) string {
	return decimal.NewMoneyFromDecimal(amount).Format()
}

// FormatPercentage formats a decimal as a percentage with 2 decimals.
func FormatPercentage(amount stddec.Decimal) string { return amount.StringFixed(2) + "%" }

// FormatRate formats a rate percentage given as float64.
func FormatRate(rate float64) string { return FormatPercentage(stddec.NewFromFloat(rate)) }

// FormatAmount formats a raw float amount with French grouping and no currency suffix.
func FormatAmount(v float64) string { return decimal.Group(stddec.NewFromFloat(v), " ", ",") }

func groupAmount(d stddec.Decimal) string { return decimal.Group(d, " ", ",") }
