package config

import (
	"errors"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/ukaji3/xlsxsplit-go/pkg/xlsxsplit/layout"
	"github.com/ukaji3/xlsxsplit-go/pkg/xlsxsplit/models"
)

const validJSON = `{
  "input_xlsx_name": "Statement",
  "model_xlsx_name": "Statement_model",
  "source_csv_path": "work/statement.csv",
  "num_target_file": 10,
  "table_start_row": 13,
  "header_rows": 12,
  "row_ref_odd": 13,
  "row_ref_even": 14
}`

func writeConfig(t *testing.T, name, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), name)
	require.NoError(t, os.WriteFile(path, []byte(content), 0644))
	return path
}

func TestLoad(t *testing.T) {
	cfg, err := Load(writeConfig(t, "config.json", validJSON))
	require.NoError(t, err)

	assert.Equal(t, "Statement", cfg.InputXlsxName)
	assert.Equal(t, 10, cfg.NumTargetFile)
	assert.Equal(t, ";", cfg.Delimiter)
	assert.Equal(t, "utf-8", cfg.FlatEncoding)
	assert.Equal(t, "input", cfg.InputDir)
	assert.Equal(t, "output", cfg.OutputDir)
	assert.Equal(t, "last_wins", cfg.MergePolicy)
}

func TestLoadYAML(t *testing.T) {
	content := `
input_xlsx_name: Statement
model_xlsx_name: Statement_model
source_csv_path: work/statement.txt
num_target_file: 3
table_start_row: 5
header_rows: 4
row_ref_odd: 5
row_ref_even: 6
row_ref_tail: 9
delimiter: "|"
flat_encoding: windows-1252
merge_policy: reject
continue_on_error: true
`
	cfg, err := Load(writeConfig(t, "config.yaml", content))
	require.NoError(t, err)

	opts := cfg.SplitOptions()
	assert.Equal(t, 5, opts.TableStartRow)
	assert.Equal(t, 4, opts.HeaderRows)
	assert.Equal(t, models.StyleTemplate{OddRow: 5, EvenRow: 6, TailRow: 9}, opts.Styles)
	assert.Equal(t, '|', opts.Delimiter)
	assert.Equal(t, "windows-1252", opts.Encoding)
	assert.Equal(t, layout.MergeReject, opts.MergePolicy)
	assert.True(t, opts.ContinueOnError)
	assert.NoError(t, opts.Validate())
}

func TestLoadMissingKeys(t *testing.T) {
	_, err := Load(writeConfig(t, "config.json", `{"input_xlsx_name": "Statement", "num_target_file": 2}`))
	require.Error(t, err)
	assert.True(t, errors.Is(err, ErrMissingKey))

	var verr *ValidationError
	require.True(t, errors.As(err, &verr))
	assert.ElementsMatch(t, []string{
		"model_xlsx_name", "source_csv_path", "table_start_row",
		"header_rows", "row_ref_odd", "row_ref_even",
	}, verr.Missing)
	assert.Contains(t, err.Error(), "missing")
}

func TestLoadInvalidValues(t *testing.T) {
	content := `{
  "input_xlsx_name": "Statement",
  "model_xlsx_name": "Statement_model",
  "source_csv_path": "work/statement.csv",
  "num_target_file": -1,
  "table_start_row": 13,
  "header_rows": 12,
  "row_ref_odd": 13,
  "row_ref_even": 14,
  "delimiter": ";;",
  "flat_encoding": "ebcdic",
  "merge_policy": "first_wins"
}`
	_, err := Load(writeConfig(t, "config.json", content))
	require.Error(t, err)
	assert.False(t, errors.Is(err, ErrMissingKey))

	var verr *ValidationError
	require.True(t, errors.As(err, &verr))
	assert.ElementsMatch(t, []string{"num_target_file", "merge_policy", "delimiter", "flat_encoding"}, verr.Invalid)
}

func TestLoadMalformed(t *testing.T) {
	_, err := Load(writeConfig(t, "config.json", `{"input_xlsx_name": `))
	assert.Error(t, err)

	_, err = Load(filepath.Join(t.TempDir(), "missing.json"))
	assert.True(t, errors.Is(err, os.ErrNotExist))
}

func TestLoadEnvOverride(t *testing.T) {
	t.Setenv("XLSXSPLIT_NUM_TARGET_FILE", "4")
	t.Setenv("XLSXSPLIT_OUTPUT_DIR", "dist")
	t.Setenv("XLSXSPLIT_CONTINUE_ON_ERROR", "true")

	cfg, err := Load(writeConfig(t, "config.json", validJSON))
	require.NoError(t, err)
	assert.Equal(t, 4, cfg.NumTargetFile)
	assert.Equal(t, "dist", cfg.OutputDir)
	assert.True(t, cfg.ContinueOnError)
}

func TestApplyEnvInvalidNumber(t *testing.T) {
	var cfg Config
	err := cfg.ApplyEnv(func(key string) (string, bool) {
		if key == "XLSXSPLIT_HEADER_ROWS" {
			return "twelve", true
		}
		return "", false
	})
	var verr *ValidationError
	require.True(t, errors.As(err, &verr))
	assert.Equal(t, []string{"header_rows"}, verr.Invalid)
}

func TestLoadDotEnv(t *testing.T) {
	assert.NoError(t, LoadDotEnv(filepath.Join(t.TempDir(), ".env")))

	const key = "XLSXSPLIT_DOTENV_PROBE"
	path := writeConfig(t, ".env", key+"=loaded\n")
	t.Cleanup(func() { os.Unsetenv(key) })

	require.NoError(t, LoadDotEnv(path))
	assert.Equal(t, "loaded", os.Getenv(key))
}

func TestPaths(t *testing.T) {
	cfg := Config{
		InputXlsxName: "Statement",
		ModelXlsxName: "Statement_model",
		SourceCSVPath: filepath.Join("work", "statement.csv"),
	}
	cfg.ApplyDefaults()

	p := cfg.Paths()
	assert.Equal(t, filepath.Join("input", "Statement.xlsx"), p.InputXLSX)
	assert.Equal(t, filepath.Join("input", "Statement_model.xlsx"), p.ModelXLSX)
	assert.Equal(t, filepath.Join("work", "statement.csv"), p.SourceCSV)
	assert.Equal(t, filepath.Join("input", "Statement_proc.csv"), p.ProcessedCSV)
	assert.Equal(t, filepath.Join("output", "Statement"), p.OutputDir)
}
