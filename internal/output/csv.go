package output

import (
	"bytes"
	"encoding/csv"
	"errors"
	"fmt"
	"io"
	"strconv"
	"strings"

	"github.com/harvestam/compound/internal/domain"
	"github.com/harvestam/compound/internal/i18n"
	"github.com/shopspring/decimal"
)

// CSVFormatter exports the base scenario as an annual breakdown:
// one header row, then year,total,contributions,interest per snapshot.
type CSVFormatter struct {
	Lang i18n.Language
}

func (c CSVFormatter) Name() string      { return "csv" }
func (c CSVFormatter) Extension() string { return "csv" }

func (c CSVFormatter) Format(results *domain.ScenarioComparison) ([]byte, error) {
	if !results.HasResults() {
		return nil, fmt.Errorf("%w: %s", ErrNoSimulation, i18n.T(c.Lang).RunFirst)
	}
	buf := &bytes.Buffer{}
	if err := WriteCSV(buf, results.Base, i18n.T(c.Lang).CSVHeader()); err != nil {
		return nil, err
	}
	return buf.Bytes(), nil
}

// WriteCSV writes a header row followed by one row per snapshot.
func WriteCSV(w io.Writer, result domain.SimulationResult, header []string) error {
	cw := csv.NewWriter(w)
	if err := cw.Write(header); err != nil {
		return err
	}
	for _, s := range result {
		row := []string{
			strconv.Itoa(s.Year),
			s.Total.StringFixed(2),
			s.Contributions.StringFixed(2),
			s.Interest.StringFixed(2),
		}
		if err := cw.Write(row); err != nil {
			return err
		}
	}
	cw.Flush()
	return cw.Error()
}

// ParseCSV reads an annual breakdown written by WriteCSV. The first row is
// treated as the header and skipped.
func ParseCSV(r io.Reader) (domain.SimulationResult, error) {
	cr := csv.NewReader(r)
	cr.FieldsPerRecord = 4

	if _, err := cr.Read(); err != nil {
		if errors.Is(err, io.EOF) {
			return nil, fmt.Errorf("empty CSV: %w", err)
		}
		return nil, fmt.Errorf("failed to read CSV header: %w", err)
	}

	var result domain.SimulationResult
	for line := 2; ; line++ {
		rec, err := cr.Read()
		if errors.Is(err, io.EOF) {
			break
		}
		if err != nil {
			return nil, fmt.Errorf("line %d: %w", line, err)
		}
		snap, err := parseRow(rec)
		if err != nil {
			return nil, fmt.Errorf("line %d: %w", line, err)
		}
		result = append(result, snap)
	}
	return result, nil
}

func parseRow(rec []string) (domain.YearlySnapshot, error) {
	year, err := strconv.Atoi(strings.TrimSpace(rec[0]))
	if err != nil {
		return domain.YearlySnapshot{}, fmt.Errorf("invalid year %q: %w", rec[0], err)
	}
	vals := make([]decimal.Decimal, 3)
	for i, field := range rec[1:] {
		d, err := decimal.NewFromString(strings.TrimSpace(field))
		if err != nil {
			return domain.YearlySnapshot{}, fmt.Errorf("invalid amount %q: %w", field, err)
		}
		vals[i] = d
	}
	return domain.YearlySnapshot{Year: year, Total: vals[0], Contributions: vals[1], Interest: vals[2]}, nil
}
