package output

import (
	"fmt"
	"strings"

	"github.com/harvestam/compound/internal/domain"
	"github.com/harvestam/compound/internal/i18n"
)

// GenerateReport renders results in the named format and writes the file into dir.
func GenerateReport(results *domain.ScenarioComparison, format string, lang i18n.Language, dir string) (string, error) {
	f := NewFormatter(format, lang)
	if f == nil {
		return "", fmt.Errorf("%w: %q. Try one of: %s (aliases: %s)", ErrUnsupportedFormat, format,
			strings.Join(AvailableFormatterNames(), ", "), strings.Join(AvailableFormatAliases(), ", "))
	}
	return WriteFormatted(f, results, dir)
}
