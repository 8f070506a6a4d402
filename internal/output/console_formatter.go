package output

import (
	"bytes"
	"fmt"
	"strings"
	"text/tabwriter"

	"github.com/harvestam/compound/internal/domain"
	"github.com/harvestam/compound/internal/i18n"
)

// ConsoleFormatter renders the parameters, summary and yearly table as plain text.
type ConsoleFormatter struct {
	Lang i18n.Language
}

func (c ConsoleFormatter) Name() string      { return "console" }
func (c ConsoleFormatter) Extension() string { return "txt" }

func (c ConsoleFormatter) Format(results *domain.ScenarioComparison) ([]byte, error) {
	if results == nil {
		return nil, ErrNoSimulation
	}
	t := i18n.T(c.Lang)
	p := results.Parameters

	var buf bytes.Buffer
	title := strings.ToUpper(t.MainTitle)
	fmt.Fprintln(&buf, title)
	fmt.Fprintln(&buf, strings.Repeat("=", len([]rune(title))))
	fmt.Fprintln(&buf)

	tw := tabwriter.NewWriter(&buf, 0, 0, 2, ' ', 0)
	fmt.Fprintf(tw, "%s:\t%s\n", t.LabelInitial, FormatAmount(p.Initial))
	fmt.Fprintf(tw, "%s:\t%s\n", t.LabelMonthly, FormatAmount(p.MonthlyContribution))
	fmt.Fprintf(tw, "%s:\t%.2f\n", t.LabelRate, p.AnnualRatePercent)
	fmt.Fprintf(tw, "%s:\t%.2f\n", t.LabelVariance, p.VariancePercent)
	fmt.Fprintf(tw, "%s:\t%s\n", t.LabelYears, formatYears(p.Years))
	fmt.Fprintf(tw, "%s:\t%s\n", t.LabelFreq, t.Frequency(results.Frequency))
	tw.Flush()
	fmt.Fprintln(&buf)

	tw = tabwriter.NewWriter(&buf, 0, 0, 2, ' ', 0)
	fmt.Fprintf(tw, "%s:\t%s\n", t.FutureValue, FormatCurrency(results.Summary.FutureValue))
	fmt.Fprintf(tw, "%s:\t%s\n", t.TotalContributions, FormatCurrency(results.Summary.TotalContributions))
	fmt.Fprintf(tw, "%s:\t%s\n", t.InterestEarned, FormatCurrency(results.Summary.InterestEarned))
	fmt.Fprintf(tw, "%s:\t%s\n", t.ReturnPercent, FormatPercentage(results.Summary.ReturnPercent))
	tw.Flush()

	if len(results.Base) == 0 {
		return buf.Bytes(), nil
	}
	fmt.Fprintln(&buf)

	tw = tabwriter.NewWriter(&buf, 0, 0, 2, ' ', tabwriter.AlignRight)
	fmt.Fprintf(tw, "%s\t%s\t%s\t%s\t%s\t%s\t\n", t.CSVYear, t.SeriesContributions, t.SeriesInterest, t.SeriesTotal,
		fmt.Sprintf("%s %s", t.SeriesLow, FormatRate(results.Rates.Low)),
		fmt.Sprintf("%s %s", t.SeriesHigh, FormatRate(results.Rates.High)))
	for i, s := range results.Base {
		fmt.Fprintf(tw, "%d\t%s\t%s\t%s\t%s\t%s\t\n", s.Year,
			groupAmount(s.Contributions),
			groupAmount(s.Interest),
			groupAmount(s.Total),
			totalAt(results.Low, i),
			totalAt(results.High, i))
	}
	tw.Flush()
	return buf.Bytes(), nil
}

func totalAt(r domain.SimulationResult, i int) string {
	if i >= len(r) {
		return "-"
	}
	return groupAmount(r[i].Total)
}

func formatYears(y float64) string {
	if y == float64(int64(y)) {
		return fmt.Sprintf("%d", int64(y))
	}
	return fmt.Sprintf("%.2f", y)
}
