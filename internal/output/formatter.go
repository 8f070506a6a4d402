package output

import (
	"fmt"
	"os"
	"path/filepath"
	"sort"
	"strings"

	"github.com/harvestam/compound/internal/domain"
	"github.com/harvestam/compound/internal/i18n"
)

// Formatter defines a pluggable output formatter that returns a byte slice.
// Implementations should be pure (no side effects besides deterministic formatting).
type Formatter interface {
	Format(results *domain.ScenarioComparison) ([]byte, error)
	// Name returns a short identifier for logging / debugging.
	Name() string
	// Extension is the file extension used when the output is written to disk.
	Extension() string
}

// FormatterFunc adapter to allow ordinary functions to act as a Formatter.
type FormatterFunc struct {
	ID  string
	Ext string
	F   func(*domain.ScenarioComparison) ([]byte, error)
}

func (ff FormatterFunc) Format(r *domain.ScenarioComparison) ([]byte, error) { return ff.F(r) }
func (ff FormatterFunc) Name() string                                        { return ff.ID }
func (ff FormatterFunc) Extension() string                                   { return ff.Ext }

// WriteFormatted runs a formatter and writes its output to dir as
// simulation_<run id>.<ext>, returning the file path.
func WriteFormatted(f Formatter, results *domain.ScenarioComparison, dir string) (string, error) {
	data, err := f.Format(results)
	if err != nil {
		return "", err
	}
	if dir == "" {
		dir = "."
	}
	if err := os.MkdirAll(dir, 0755); err != nil {
		return "", fmt.Errorf("failed to create output directory %s: %w", dir, err)
	}
	id := "unsaved"
	if results != nil && results.RunID != "" {
		id = strings.ToLower(results.RunID)
	}
	filename := filepath.Join(dir, fmt.Sprintf("simulation_%s.%s", id, f.Extension()))
	if err := os.WriteFile(filename, data, 0644); err != nil {
		return "", fmt.Errorf("failed to write %s: %w", filename, err)
	}
	return filename, nil
}

// builtInFormatters builds each registered formatter for a language.
var builtInFormatters = map[string]func(i18n.Language) Formatter{
	"console": func(l i18n.Language) Formatter { return ConsoleFormatter{Lang: l} },
	"csv":     func(l i18n.Language) Formatter { return CSVFormatter{Lang: l} },
	"json":    func(l i18n.Language) Formatter { return JSONFormatter{Lang: l} },
	"pdf":     func(l i18n.Language) Formatter { return PDFFormatter{Lang: l} },
}

// NewFormatter fetches a registered formatter rendering in lang, or nil.
func NewFormatter(name string, lang i18n.Language) Formatter {
	if build, ok := builtInFormatters[NormalizeFormatName(name)]; ok {
		return build(lang)
	}
	return nil
}

// GetFormatterByName fetches a registered formatter in the default language.
func GetFormatterByName(name string) Formatter {
	return NewFormatter(name, i18n.Default)
}

// aliasMap provides user-friendly synonyms for format names.
var aliasMap = map[string]string{
	"text":       "console",
	"txt":        "console",
	"csv-annual": "csv",
	"chart":      "json",
	"chart-json": "json",
	"report":     "pdf",
}

// NormalizeFormatName lowers and resolves aliases.
func NormalizeFormatName(name string) string {
	n := strings.ToLower(strings.TrimSpace(name))
	if mapped, ok := aliasMap[n]; ok {
		return mapped
	}
	return n
}

// AvailableFormatterNames returns the canonical formatter names.
func AvailableFormatterNames() []string {
	names := make([]string, 0, len(builtInFormatters))
	for name := range builtInFormatters {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}

// AvailableFormatAliases returns the supported alias keys.
func AvailableFormatAliases() []string {
	keys := make([]string, 0, len(aliasMap))
	for k := range aliasMap {
		keys = append(keys, k)
	}
	sort.Strings(keys)
	return keys
}
