// Package config loads the splitter configuration file.
package config

import (
	"encoding/json"
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"
	"reflect"
	"strconv"
	"strings"
	"unicode/utf8"

	"github.com/go-playground/validator/v10"
	"github.com/joho/godotenv"
	"github.com/ukaji3/xlsxsplit-go/pkg/xlsxsplit"
	"github.com/ukaji3/xlsxsplit-go/pkg/xlsxsplit/flatfile"
	"github.com/ukaji3/xlsxsplit-go/pkg/xlsxsplit/layout"
	"github.com/ukaji3/xlsxsplit-go/pkg/xlsxsplit/models"
	"gopkg.in/yaml.v3"
)

// EnvPrefix prefixes the environment variables overriding configuration keys,
// e.g. XLSXSPLIT_NUM_TARGET_FILE.
const EnvPrefix = "XLSXSPLIT_"

// Config mirrors the configuration file. Keys follow the json tags.
type Config struct {
	InputXlsxName string `json:"input_xlsx_name" yaml:"input_xlsx_name" validate:"required"`
	ModelXlsxName string `json:"model_xlsx_name" yaml:"model_xlsx_name" validate:"required"`
	SourceCSVPath string `json:"source_csv_path" yaml:"source_csv_path" validate:"required"`
	NumTargetFile int    `json:"num_target_file" yaml:"num_target_file" validate:"required,min=1"`
	TableStartRow int    `json:"table_start_row" yaml:"table_start_row" validate:"required,min=1"`
	HeaderRows    int    `json:"header_rows" yaml:"header_rows" validate:"required,min=1"`
	RowRefOdd     int    `json:"row_ref_odd" yaml:"row_ref_odd" validate:"required,min=1"`
	RowRefEven    int    `json:"row_ref_even" yaml:"row_ref_even" validate:"required,min=1"`

	RowRefTail      int    `json:"row_ref_tail,omitempty" yaml:"row_ref_tail,omitempty" validate:"min=0"`
	Delimiter       string `json:"delimiter,omitempty" yaml:"delimiter,omitempty"`
	FlatEncoding    string `json:"flat_encoding,omitempty" yaml:"flat_encoding,omitempty"`
	InputDir        string `json:"input_dir,omitempty" yaml:"input_dir,omitempty"`
	OutputDir       string `json:"output_dir,omitempty" yaml:"output_dir,omitempty"`
	MergePolicy     string `json:"merge_policy,omitempty" yaml:"merge_policy,omitempty" validate:"omitempty,oneof=last_wins reject"`
	ContinueOnError bool   `json:"continue_on_error,omitempty" yaml:"continue_on_error,omitempty"`
}

// ErrMissingKey matches a ValidationError reporting at least one missing key.
var ErrMissingKey = errors.New("configuration key missing")

// ValidationError lists the keys that are missing or hold invalid values.
type ValidationError struct {
	Missing []string
	Invalid []string
}

func (e *ValidationError) Error() string {
	var parts []string
	if len(e.Missing) > 0 {
		parts = append(parts, "missing "+strings.Join(e.Missing, ", "))
	}
	if len(e.Invalid) > 0 {
		parts = append(parts, "invalid "+strings.Join(e.Invalid, ", "))
	}
	return "input configuration: " + strings.Join(parts, "; ")
}

// Is reports whether target is ErrMissingKey and keys are missing.
func (e *ValidationError) Is(target error) bool {
	return target == ErrMissingKey && len(e.Missing) > 0
}

// Load reads the configuration at path (JSON, or YAML for .yaml/.yml files),
// applies environment overrides and defaults, and validates the result.
func Load(path string) (Config, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return Config{}, err
	}

	var cfg Config
	switch strings.ToLower(filepath.Ext(path)) {
	case ".yaml", ".yml":
		err = yaml.Unmarshal(data, &cfg)
	default:
		err = json.Unmarshal(data, &cfg)
	}
	if err != nil {
		return Config{}, fmt.Errorf("parse %s: %w", path, err)
	}

	if err := cfg.ApplyEnv(os.LookupEnv); err != nil {
		return Config{}, err
	}
	cfg.ApplyDefaults()
	if err := cfg.Validate(); err != nil {
		return Config{}, err
	}
	return cfg, nil
}

// LoadDotEnv loads environment variables from a .env file. A missing file is not an error.
func LoadDotEnv(path string) error {
	if err := godotenv.Load(path); err != nil && !errors.Is(err, fs.ErrNotExist) {
		return fmt.Errorf("load %s: %w", path, err)
	}
	return nil
}

// ApplyEnv overrides keys from XLSXSPLIT_<KEY> variables returned by lookup.
func (c *Config) ApplyEnv(lookup func(string) (string, bool)) error {
	v := reflect.ValueOf(c).Elem()
	t := v.Type()
	for i := 0; i < t.NumField(); i++ {
		key := jsonKey(t.Field(i))
		raw, ok := lookup(EnvPrefix + strings.ToUpper(key))
		if !ok {
			continue
		}
		field := v.Field(i)
		switch field.Kind() {
		case reflect.String:
			field.SetString(raw)
		case reflect.Int:
			n, err := strconv.Atoi(strings.TrimSpace(raw))
			if err != nil {
				return &ValidationError{Invalid: []string{key}}
			}
			field.SetInt(int64(n))
		case reflect.Bool:
			b, err := strconv.ParseBool(strings.TrimSpace(raw))
			if err != nil {
				return &ValidationError{Invalid: []string{key}}
			}
			field.SetBool(b)
		}
	}
	return nil
}

// ApplyDefaults fills the optional keys left empty.
func (c *Config) ApplyDefaults() {
	if c.Delimiter == "" {
		c.Delimiter = string(xlsxsplit.DefaultDelimiter)
	}
	if c.FlatEncoding == "" {
		c.FlatEncoding = flatfile.UTF8
	}
	if c.InputDir == "" {
		c.InputDir = "input"
	}
	if c.OutputDir == "" {
		c.OutputDir = "output"
	}
	if c.MergePolicy == "" {
		c.MergePolicy = string(layout.MergeLastWins)
	}
}

var validate = newValidator()

func newValidator() *validator.Validate {
	v := validator.New()
	v.RegisterTagNameFunc(jsonKey)
	return v
}

// Validate checks mandatory keys and value ranges.
func (c Config) Validate() error {
	verr := &ValidationError{}
	if err := validate.Struct(c); err != nil {
		var fieldErrs validator.ValidationErrors
		if !errors.As(err, &fieldErrs) {
			return err
		}
		for _, fe := range fieldErrs {
			if fe.Tag() == "required" {
				verr.Missing = append(verr.Missing, fe.Field())
			} else {
				verr.Invalid = append(verr.Invalid, fe.Field())
			}
		}
	}
	if c.Delimiter != "" && utf8.RuneCountInString(c.Delimiter) != 1 {
		verr.Invalid = append(verr.Invalid, "delimiter")
	}
	if _, err := flatfile.Encoding(c.FlatEncoding); err != nil {
		verr.Invalid = append(verr.Invalid, "flat_encoding")
	}
	if len(verr.Missing) > 0 || len(verr.Invalid) > 0 {
		return verr
	}
	return nil
}

// Paths holds the file locations derived from a configuration.
type Paths struct {
	InputXLSX    string
	ModelXLSX    string
	SourceCSV    string
	ProcessedCSV string
	OutputDir    string
}

// Paths derives the input, model, flat and output locations.
func (c Config) Paths() Paths {
	return Paths{
		InputXLSX:    filepath.Join(c.InputDir, c.InputXlsxName+".xlsx"),
		ModelXLSX:    filepath.Join(c.InputDir, c.ModelXlsxName+".xlsx"),
		SourceCSV:    c.SourceCSVPath,
		ProcessedCSV: filepath.Join(c.InputDir, c.InputXlsxName+"_proc.csv"),
		OutputDir:    filepath.Join(c.OutputDir, c.InputXlsxName),
	}
}

// SplitOptions converts the configuration into partitioning options.
func (c Config) SplitOptions() xlsxsplit.Options {
	opts := xlsxsplit.DefaultOptions()
	opts.TableStartRow = c.TableStartRow
	opts.HeaderRows = c.HeaderRows
	opts.Styles = models.StyleTemplate{OddRow: c.RowRefOdd, EvenRow: c.RowRefEven, TailRow: c.RowRefTail}
	if r, _ := utf8.DecodeRuneInString(c.Delimiter); r != utf8.RuneError {
		opts.Delimiter = r
	}
	opts.Encoding = c.FlatEncoding
	opts.MergePolicy = layout.MergePolicy(c.MergePolicy)
	opts.ContinueOnError = c.ContinueOnError
	return opts
}

func jsonKey(f reflect.StructField) string {
	name := strings.SplitN(f.Tag.Get("json"), ",", 2)[0]
	if name == "" || name == "-" {
		return f.Name
	}
	return name
}
