package output

import (
	"bytes"
	"fmt"
	"math"
	"strconv"
	"strings"

	"github.com/go-pdf/fpdf"
	"github.com/harvestam/compound/internal/domain"
	"github.com/harvestam/compound/internal/i18n"
)

// PDFFormatter renders an A4 report: parameters, summary, a chart of the five
// scenario series, the yearly table and the disclaimer.
type PDFFormatter struct {
	Lang i18n.Language
}

func (p PDFFormatter) Name() string      { return "pdf" }
func (p PDFFormatter) Extension() string { return "pdf" }

const (
	pdfMargin       = 15.0
	pdfChartHeight  = 80.0
	pdfRowHeight    = 6.0
	pdfHeaderHeight = 7.0
)

type pdfReport struct {
	pdf     *fpdf.Fpdf
	tr      func(string) string
	t       i18n.Strings
	results *domain.ScenarioComparison
	chart   Chart
	width   float64
}

func (p PDFFormatter) Format(results *domain.ScenarioComparison) ([]byte, error) {
	if !results.HasResults() {
		return nil, fmt.Errorf("%w: %s", ErrNoSimulation, i18n.T(p.Lang).RunFirst)
	}

	doc := fpdf.New("P", "mm", "A4", "")
	doc.SetMargins(pdfMargin, pdfMargin, pdfMargin)
	doc.SetAutoPageBreak(true, pdfMargin)
	doc.SetTitle(i18n.T(p.Lang).MainTitle, true)
	pageW, _ := doc.GetPageSize()

	r := &pdfReport{
		pdf:     doc,
		tr:      doc.UnicodeTranslatorFromDescriptor(""),
		t:       i18n.T(p.Lang),
		results: results,
		chart:   BuildChart(results, p.Lang),
		width:   pageW - 2*pdfMargin,
	}

	doc.AddPage()
	r.header()
	r.parameters()
	r.summary()
	r.drawChart()
	r.legend()
	r.yearlyTable()
	r.disclaimer()

	if err := doc.Error(); err != nil {
		return nil, fmt.Errorf("failed to build PDF: %w", err)
	}
	var buf bytes.Buffer
	if err := doc.Output(&buf); err != nil {
		return nil, fmt.Errorf("failed to write PDF: %w", err)
	}
	return buf.Bytes(), nil
}

func (r *pdfReport) header() {
	r.pdf.SetFont("Arial", "B", 20)
	r.pdf.SetTextColor(0, 51, 102)
	r.pdf.CellFormat(r.width, 10, r.tr(r.t.MainTitle), "", 1, "C", false, 0, "")

	r.pdf.SetFont("Arial", "I", 11)
	r.pdf.SetTextColor(80, 80, 80)
	r.pdf.CellFormat(r.width, 6, r.tr(r.t.Slogan), "", 1, "C", false, 0, "")

	r.pdf.SetFont("Arial", "", 8)
	r.pdf.SetTextColor(120, 120, 120)
	stamp := fmt.Sprintf("%s  |  %s", r.results.GeneratedAt.Format("2006-01-02 15:04"), r.results.RunID)
	r.pdf.CellFormat(r.width, 5, stamp, "", 1, "C", false, 0, "")
	r.pdf.Ln(4)
}

func (r *pdfReport) sectionTitle(title string) {
	r.pdf.SetFont("Arial", "B", 12)
	r.pdf.SetTextColor(0, 51, 102)
	r.pdf.SetFillColor(245, 247, 250)
	r.pdf.SetDrawColor(200, 200, 200)
	r.pdf.CellFormat(r.width, 8, r.tr(title), "1", 1, "L", true, 0, "")
}

func (r *pdfReport) keyValue(label, value string) {
	r.pdf.SetFont("Arial", "", 10)
	r.pdf.SetTextColor(50, 50, 50)
	r.pdf.CellFormat(r.width*0.6, pdfRowHeight, r.tr(label), "LB", 0, "L", false, 0, "")
	r.pdf.SetFont("Arial", "B", 10)
	r.pdf.CellFormat(r.width*0.4, pdfRowHeight, r.tr(value), "RB", 1, "R", false, 0, "")
}

func (r *pdfReport) parameters() {
	p := r.results.Parameters
	r.sectionTitle(r.t.FormTitle)
	r.keyValue(r.t.LabelInitial, FormatAmount(p.Initial))
	r.keyValue(r.t.LabelMonthly, FormatAmount(p.MonthlyContribution))
	r.keyValue(r.t.LabelRate, strconv.FormatFloat(p.AnnualRatePercent, 'f', 2, 64))
	r.keyValue(r.t.LabelVariance, strconv.FormatFloat(p.VariancePercent, 'f', 2, 64))
	r.keyValue(r.t.LabelYears, formatYears(p.Years))
	r.keyValue(r.t.LabelFreq, r.t.Frequency(r.results.Frequency))
	r.pdf.Ln(4)
}

func (r *pdfReport) summary() {
	s := r.results.Summary
	cells := []struct{ label, value string }{
		{r.t.FutureValue, FormatCurrency(s.FutureValue)},
		{r.t.TotalContributions, FormatCurrency(s.TotalContributions)},
		{r.t.InterestEarned, FormatCurrency(s.InterestEarned)},
		{r.t.ReturnPercent, FormatPercentage(s.ReturnPercent)},
	}
	w := r.width / float64(len(cells))

	r.pdf.SetFillColor(235, 242, 255)
	r.pdf.SetDrawColor(200, 200, 200)
	r.pdf.SetFont("Arial", "", 9)
	r.pdf.SetTextColor(80, 80, 80)
	for _, c := range cells {
		r.pdf.CellFormat(w, 6, r.tr(c.label), "LTR", 0, "C", true, 0, "")
	}
	r.pdf.Ln(-1)
	r.pdf.SetFont("Arial", "B", 11)
	r.pdf.SetTextColor(0, 51, 102)
	for _, c := range cells {
		r.pdf.CellFormat(w, 8, r.tr(c.value), "LBR", 0, "C", true, 0, "")
	}
	r.pdf.Ln(-1)
	r.pdf.Ln(6)
}

// drawChart plots every dataset against a shared value axis starting at zero.
func (r *pdfReport) drawChart() {
	x0 := pdfMargin + 18
	y0 := r.pdf.GetY()
	w := r.width - 18
	h := pdfChartHeight

	lo, hi := chartRange(r.chart)
	span := hi - lo
	if span == 0 {
		span = 1
	}
	yOf := func(v float64) float64 { return y0 + h - (v-lo)/span*h }

	r.pdf.SetDrawColor(203, 213, 225)
	r.pdf.SetLineWidth(0.1)
	r.pdf.SetFont("Arial", "", 7)
	r.pdf.SetTextColor(100, 116, 139)
	const gridLines = 4
	for i := 0; i <= gridLines; i++ {
		v := lo + span*float64(i)/gridLines
		y := yOf(v)
		r.pdf.Line(x0, y, x0+w, y)
		r.pdf.Text(pdfMargin, y+1, compactAmount(v))
	}

	n := len(r.chart.Labels)
	xOf := func(i int) float64 {
		if n <= 1 {
			return x0 + w/2
		}
		return x0 + w*float64(i)/float64(n-1)
	}
	step := int(math.Ceil(float64(n) / 10))
	for i, label := range r.chart.Labels {
		if i%step != 0 && i != n-1 {
			continue
		}
		r.pdf.Text(xOf(i)-3, y0+h+4, r.tr(label))
	}

	r.pdf.SetLineWidth(0.5)
	for _, ds := range r.chart.Datasets {
		cr, cg, cb := hexRGB(ds.Color)
		r.pdf.SetDrawColor(cr, cg, cb)
		if ds.Dashed {
			r.pdf.SetDashPattern([]float64{2, 1.5}, 0)
		}
		for i := 1; i < len(ds.Data); i++ {
			r.pdf.Line(xOf(i-1), yOf(ds.Data[i-1]), xOf(i), yOf(ds.Data[i]))
		}
		if len(ds.Data) == 1 {
			r.pdf.Circle(xOf(0), yOf(ds.Data[0]), 0.8, "D")
		}
		r.pdf.SetDashPattern([]float64{}, 0)
	}
	r.pdf.SetLineWidth(0.2)
	r.pdf.SetY(y0 + h + 7)
}

func (r *pdfReport) legend() {
	r.pdf.SetFont("Arial", "", 8)
	r.pdf.SetTextColor(50, 50, 50)
	colW := r.width / float64(len(r.chart.Datasets))
	y := r.pdf.GetY()
	for i, ds := range r.chart.Datasets {
		x := pdfMargin + colW*float64(i)
		cr, cg, cb := hexRGB(ds.Color)
		r.pdf.SetFillColor(cr, cg, cb)
		r.pdf.Rect(x, y+1, 3, 3, "F")
		r.pdf.SetXY(x+4, y)
		r.pdf.CellFormat(colW-4, 5, r.tr(ds.Label), "", 0, "L", false, 0, "")
	}
	r.pdf.Ln(10)
}

func (r *pdfReport) yearlyTable() {
	headers := []string{
		r.t.CSVYear,
		r.t.SeriesContributions,
		r.t.SeriesInterest,
		r.t.SeriesTotal,
		r.t.SeriesLow,
		r.t.SeriesHigh,
	}
	widths := []float64{0.1, 0.18, 0.18, 0.18, 0.18, 0.18}

	printHeader := func() {
		r.pdf.SetFont("Arial", "B", 8)
		r.pdf.SetTextColor(255, 255, 255)
		r.pdf.SetFillColor(0, 51, 102)
		for i, hd := range headers {
			r.pdf.CellFormat(r.width*widths[i], pdfHeaderHeight, r.tr(hd), "1", 0, "C", true, 0, "")
		}
		r.pdf.Ln(-1)
	}

	_, pageH := r.pdf.GetPageSize()
	printHeader()
	r.pdf.SetFont("Arial", "", 8)
	r.pdf.SetTextColor(50, 50, 50)
	for i, s := range r.results.Base {
		if r.pdf.GetY()+pdfRowHeight > pageH-pdfMargin {
			r.pdf.AddPage()
			printHeader()
			r.pdf.SetFont("Arial", "", 8)
			r.pdf.SetTextColor(50, 50, 50)
		}
		fill := i%2 == 1
		r.pdf.SetFillColor(245, 247, 250)
		row := []string{
			strconv.Itoa(s.Year),
			groupAmount(s.Contributions),
			groupAmount(s.Interest),
			groupAmount(s.Total),
			totalAt(r.results.Low, i),
			totalAt(r.results.High, i),
		}
		for j, cell := range row {
			align := "R"
			if j == 0 {
				align = "C"
			}
			r.pdf.CellFormat(r.width*widths[j], pdfRowHeight, cell, "LR", 0, align, fill, 0, "")
		}
		r.pdf.Ln(-1)
	}
	r.pdf.CellFormat(r.width, 0, "", "T", 1, "", false, 0, "")
	r.pdf.Ln(6)
}

func (r *pdfReport) disclaimer() {
	r.pdf.SetFont("Arial", "I", 8)
	r.pdf.SetTextColor(120, 120, 120)
	r.pdf.MultiCell(r.width, 4, r.tr(r.t.Legal), "", "J", false)
}

// chartRange returns the value axis bounds: zero up to the largest point, or
// down to the smallest point when a series goes negative.
func chartRange(c Chart) (float64, float64) {
	lo, hi := 0.0, 0.0
	for _, ds := range c.Datasets {
		for _, v := range ds.Data {
			lo = math.Min(lo, v)
			hi = math.Max(hi, v)
		}
	}
	return lo, hi
}

// compactAmount shortens axis labels, e.g. 1250000 -> "1.25M".
func compactAmount(v float64) string {
	abs := math.Abs(v)
	switch {
	case abs >= 1e9:
		return strconv.FormatFloat(v/1e9, 'f', 2, 64) + "G"
	case abs >= 1e6:
		return strconv.FormatFloat(v/1e6, 'f', 2, 64) + "M"
	case abs >= 1e3:
		return strconv.FormatFloat(v/1e3, 'f', 1, 64) + "k"
	default:
		return strconv.FormatFloat(v, 'f', 0, 64)
	}
}

func hexRGB(hex string) (int, int, int) {
	h := strings.TrimPrefix(hex, "#")
	if len(h) != 6 {
		return 0, 0, 0
	}
	v, err := strconv.ParseUint(h, 16, 32)
	if err != nil {
		return 0, 0, 0
	}
	return int(v >> 16 & 0xff), int(v >> 8 & 0xff), int(v & 0xff)
}
