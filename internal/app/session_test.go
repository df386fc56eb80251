package app

import (
	"bytes"
	"context"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"datacli/internal/config"
	"datacli/internal/dataset"
)

// testConfig builds a config and paths rooted at a temp dir with a dataset
// file already in place.
func testConfig(t *testing.T, csvContent string) (*config.Config, *config.Paths) {
	t.Helper()
	base := t.TempDir()

	cfg := &config.Config{
		Analyze: config.AnalyzeConfig{IQRMultiplier: 1.5, HistogramBins: 8, PreviewRows: 5},
	}
	paths, err := config.GetPaths(config.PathsConfig{BaseDir: base})
	require.NoError(t, err)
	require.NoError(t, paths.EnsureDirectories())

	require.NoError(t, os.WriteFile(paths.DatasetPath("people.csv"), []byte(csvContent), 0644))
	return cfg, paths
}

const peopleCSV = `name,age,score
 Alice! ,25,10
Bob,30,-4
CAROL,35,12
Dave,28,11
Erin,27,500
Frank,29,9
Grace,31,10
Heidi,26,13
`

func TestSession_FullRun(t *testing.T) {
	cfg, paths := testConfig(t, peopleCSV)

	// load -> clamp negatives -> drop the score column -> finish (csv) ->
	// one histogram over age -> done
	input := strings.Join([]string{
		"people.csv",
		"1",     // clamp negatives
		"2",     // remove a column
		"score", // the column to remove
		"0",     // finish cleaning
		"csv",   // export format
		"histogram",
		"age",
		"", // finish visualization
	}, "\n") + "\n"

	var out bytes.Buffer
	s := NewSession(cfg, paths, strings.NewReader(input), &out, nil)
	require.NoError(t, s.Run(context.Background()))

	got := out.String()
	assert.Contains(t, got, "Dataset was successfully loaded.")
	assert.Contains(t, got, "Negative values converted to 0")
	assert.Contains(t, got, `Column "score" removed.`)
	assert.Contains(t, got, "Statistical summaries")
	assert.Contains(t, got, "Chart saved to")

	// exported cleaned dataset exists and has no score column
	cleaned, err := dataset.LoadCSV(paths.CleanedPath("people.csv", ".csv"))
	require.NoError(t, err)
	assert.Equal(t, []string{"name", "age"}, cleaned.Columns())

	// outlier row (500) was filtered during preprocessing, before the drop
	assert.Less(t, cleaned.Len(), 8)

	// strings were normalized
	col, err := cleaned.Column("name")
	require.NoError(t, err)
	for _, v := range col.Strings {
		assert.Equal(t, strings.ToLower(v), v)
		assert.Equal(t, strings.TrimSpace(v), v)
	}

	// chart was rendered
	_, err = os.Stat(filepath.Join(paths.ChartsDir, "histogram_age.png"))
	assert.NoError(t, err)

	// summary CSV was written
	_, err = os.Stat(paths.CleanedPath("people.csv", "_summary.csv"))
	assert.NoError(t, err)
}

func TestSession_RepromptsOnBadFile(t *testing.T) {
	cfg, paths := testConfig(t, peopleCSV)

	input := strings.Join([]string{
		"missing.csv", // not there
		"notes.txt",   // unsupported
		"people.csv",  // works
		"0", "csv",    // finish immediately
		"", // no charts
	}, "\n") + "\n"

	var out bytes.Buffer
	s := NewSession(cfg, paths, strings.NewReader(input), &out, nil)
	require.NoError(t, s.Run(context.Background()))

	got := out.String()
	assert.Contains(t, got, "not found")
	assert.Contains(t, got, "unsupported file format")
	assert.Contains(t, got, "Dataset was successfully loaded.")
}

func TestSession_BadColumnAndPlotChoices(t *testing.T) {
	cfg, paths := testConfig(t, peopleCSV)

	input := strings.Join([]string{
		"people.csv",
		"2", "bogus", // unknown column -> re-prompt
		"0", "excel", // finish, export xlsx
		"piechart",          // invalid plot type
		"scatter", "x", "y", // unknown columns
		"histogram", "name", // type mismatch
		"boxplot", "age", // works
		"",
	}, "\n") + "\n"

	var out bytes.Buffer
	s := NewSession(cfg, paths, strings.NewReader(input), &out, nil)
	require.NoError(t, s.Run(context.Background()))

	got := out.String()
	assert.Contains(t, got, `column "bogus" not found`)
	assert.Contains(t, got, "Invalid plot type!")
	assert.Contains(t, got, `column "x" not found`)
	assert.Contains(t, got, `column "name" is not numeric`)
	assert.Contains(t, got, "Chart saved to")

	// excel export round-trips
	cleaned, err := dataset.LoadExcel(paths.CleanedPath("people.csv", ".xlsx"), "")
	require.NoError(t, err)
	assert.Equal(t, []string{"name", "age", "score"}, cleaned.Columns())
}

func TestSession_EOFEndsRunCleanly(t *testing.T) {
	cfg, paths := testConfig(t, peopleCSV)

	// input ends right after loading; Run should not error out
	var out bytes.Buffer
	s := NewSession(cfg, paths, strings.NewReader("people.csv\n"), &out, nil)
	err := s.Run(context.Background())
	assert.NoError(t, err)
}
