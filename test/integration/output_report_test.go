package integration

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/harvestam/compound/internal/calculation"
	"github.com/harvestam/compound/internal/config"
	"github.com/harvestam/compound/internal/i18n"
	"github.com/harvestam/compound/internal/output"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestOutputGeneration(t *testing.T) {
	cfg, err := config.NewInputParser().LoadFromFile("../testdata/example_config.yaml")
	require.NoError(t, err)

	results := calculation.NewCalculationEngine().RunScenarios(cfg.Investment.Parameters())
	dir := t.TempDir()
	lang := i18n.Parse(cfg.Language)

	for _, format := range cfg.Output.Formats {
		path, err := output.GenerateReport(results, format, lang, dir)
		require.NoError(t, err, format)
		fi, err := os.Stat(path)
		require.NoError(t, err)
		assert.NotZero(t, fi.Size(), format)
	}
}

func TestCSVExportParsesBack(t *testing.T) {
	cfg, err := config.NewInputParser().LoadFromFile("../testdata/example_config.yaml")
	require.NoError(t, err)

	results := calculation.NewCalculationEngine().RunScenarios(cfg.Investment.Parameters())
	path, err := output.GenerateReport(results, "csv", i18n.FR, t.TempDir())
	require.NoError(t, err)

	f, err := os.Open(path)
	require.NoError(t, err)
	defer f.Close()

	parsed, err := output.ParseCSV(f)
	require.NoError(t, err)
	require.Len(t, parsed, len(results.Base))
	for i, snap := range parsed {
		assert.Equal(t, results.Base[i].Year, snap.Year)
		assert.True(t, results.Base[i].Total.Equal(snap.Total))
		assert.True(t, results.Base[i].Contributions.Equal(snap.Contributions))
		assert.True(t, results.Base[i].Interest.Equal(snap.Interest))
	}
	assert.Equal(t, ".csv", filepath.Ext(path))
}
