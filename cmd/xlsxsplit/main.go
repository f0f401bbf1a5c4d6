// Package main provides the CLI entry point for xlsxsplit.
package main

import (
	"fmt"
	"io"
	"os"

	"github.com/fatih/color"
	"github.com/rs/zerolog"
	"github.com/spf13/cobra"
	"github.com/spf13/pflag"
	"github.com/ukaji3/xlsxsplit-go/pkg/xlsxsplit"
	"github.com/ukaji3/xlsxsplit-go/pkg/xlsxsplit/config"
	"github.com/ukaji3/xlsxsplit-go/pkg/xlsxsplit/flatfile"
	"github.com/ukaji3/xlsxsplit-go/pkg/xlsxsplit/logging"
)

type flags struct {
	configPath      string
	envFile         string
	reuseCSV        bool
	processCSV      bool
	continueOnError bool
	logLevel        string
	logFile         string
	noColor         bool
}

func main() {
	if err := newRootCmd(os.Stdout).Execute(); err != nil {
		os.Exit(1)
	}
}

func newRootCmd(stdout io.Writer) *cobra.Command {
	var f flags
	rootCmd := &cobra.Command{
		Use:   "xlsxsplit",
		Short: "Split a large Excel report into N styled workbooks",
		Long: `xlsxsplit converts a large single-sheet Excel report to a delimited flat file,
then splits its data rows into N workbooks that each reproduce the header block,
column widths, merged cells and alternating row styles of a model workbook.`,
		Args:         cobra.NoArgs,
		SilenceUsage: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			return run(f, stdout)
		},
	}
	bindFlags(rootCmd.Flags(), &f)
	return rootCmd
}

func bindFlags(fs *pflag.FlagSet, f *flags) {
	fs.StringVarP(&f.configPath, "config", "c", "config.json", "Configuration file (JSON or YAML)")
	fs.StringVar(&f.envFile, "env-file", ".env", "Environment file with XLSXSPLIT_* overrides")
	fs.BoolVar(&f.reuseCSV, "reuse-csv", false, "Use the existing flat file instead of extracting it from the input workbook")
	fs.BoolVar(&f.processCSV, "process-csv", false, "Clean the flat file before splitting")
	fs.BoolVar(&f.continueOnError, "continue-on-error", false, "Keep building the remaining files when one fails")
	fs.StringVar(&f.logLevel, "log-level", "info", "Log level: debug, info, warn, error")
	fs.StringVar(&f.logFile, "log-file", "", "Also write JSON logs to this file")
	fs.BoolVar(&f.noColor, "no-color", false, "Disable colored output")
}

func run(f flags, stdout io.Writer) error {
	logger, closer, err := logging.New(logging.Options{
		Level:   f.logLevel,
		File:    f.logFile,
		NoColor: f.noColor,
		Console: stdout,
	})
	if err != nil {
		return fmt.Errorf("init logging: %w", err)
	}
	defer closer.Close()
	color.NoColor = color.NoColor || f.noColor

	if err := config.LoadDotEnv(f.envFile); err != nil {
		logger.Error().Err(err).Msg("Environment file could not be loaded.")
		return err
	}
	cfg, err := config.Load(f.configPath)
	if err != nil {
		logger.Error().Err(err).Str("path", f.configPath).Msg("Input configuration missing or invalid.")
		return err
	}
	paths := cfg.Paths()
	opts := cfg.SplitOptions()
	opts.ContinueOnError = opts.ContinueOnError || f.continueOnError
	opts.Progress = func(done, total int) {
		logger.Debug().Int("done", done).Int("total", total).Msg("splitting files")
	}

	if err := prepareFlatFile(cfg, paths, f, logger); err != nil {
		return err
	}

	source := paths.SourceCSV
	if f.processCSV {
		source = paths.ProcessedCSV
	}

	splitter := xlsxsplit.NewSplitter(opts, logger)
	result, err := splitter.Partition(xlsxsplit.PartitionRequest{
		ModelPath:  paths.ModelXLSX,
		SourcePath: source,
		OutputDir:  paths.OutputDir,
		BaseName:   cfg.InputXlsxName,
		Files:      cfg.NumTargetFile,
	})
	if result != nil {
		printSummary(stdout, result, cfg.NumTargetFile)
	}
	if err != nil {
		logger.Error().Err(err).Msg("An error occurred while splitting the flat file.")
		return err
	}

	logger.Info().Str("path", paths.OutputDir).Msg("Files successfully created")
	return nil
}

// prepareFlatFile extracts the flat file from the input workbook unless it is reused,
// then runs the cleaning pass when requested.
func prepareFlatFile(cfg config.Config, paths config.Paths, f flags, logger zerolog.Logger) error {
	flatOpts := xlsxsplit.FlatOptions{Delimiter: cfg.SplitOptions().Delimiter, Encoding: cfg.FlatEncoding}

	if f.reuseCSV {
		logger.Info().Str("path", paths.SourceCSV).Msg("Using existing CSV file")
	} else {
		logger.Info().Str("path", paths.InputXLSX).Msg("Generating CSV file")
		if _, err := xlsxsplit.ExtractFlat(paths.InputXLSX, paths.SourceCSV, flatOpts, logger); err != nil {
			logger.Error().Err(err).Msg("An error occurred while exporting the excel to csv.")
			return err
		}
	}

	if f.processCSV {
		logger.Info().Str("path", paths.SourceCSV).Msg("Processing CSV file before splitting")
		stats, err := flatfile.Clean(paths.SourceCSV, paths.ProcessedCSV, flatfile.CleanOptions{
			Delimiter:  flatOpts.Delimiter,
			Encoding:   flatOpts.Encoding,
			HeaderRows: cfg.HeaderRows,
		})
		if err != nil {
			logger.Error().Err(err).Msg("An error occurred while processing the csv file.")
			return err
		}
		logger.Info().
			Int("read", stats.Read).
			Int("written", stats.Written).
			Int("dropped", stats.Dropped).
			Str("path", paths.ProcessedCSV).
			Msg("CSV file processed")
	}
	return nil
}

func printSummary(w io.Writer, result *xlsxsplit.Result, total int) {
	for _, file := range result.Files {
		rows := color.HiYellowString("%d rows", file.Rows)
		if file.Rows == 0 {
			rows = color.HiBlackString("header only")
		}
		fmt.Fprintf(w, "%s %s (%s)\n", color.GreenString("✓"), file.Path, rows)
	}
	fmt.Fprintf(w, "%s of %s files written\n",
		color.HiYellowString("%d", len(result.Files)), color.HiYellowString("%d", total))
}
