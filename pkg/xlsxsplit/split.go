package xlsxsplit

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"

	"github.com/rs/zerolog"
	"github.com/ukaji3/xlsxsplit-go/pkg/xlsxsplit/flatfile"
	"github.com/ukaji3/xlsxsplit-go/pkg/xlsxsplit/layout"
	"github.com/ukaji3/xlsxsplit-go/pkg/xlsxsplit/models"
	"github.com/ukaji3/xlsxsplit-go/pkg/xlsxsplit/parser"
)

// PartitionRequest names the files of one partition run.
type PartitionRequest struct {
	// ModelPath is the workbook supplying header, styles and layout.
	ModelPath string
	// SourcePath is the flat file holding the header and data records.
	SourcePath string
	// OutputDir receives the output files; it is created when missing.
	OutputDir string
	// BaseName prefixes the output files: BaseName_1.xlsx ... BaseName_N.xlsx.
	BaseName string
	// Files is the number of output files N.
	Files int
}

// FileResult describes one persisted output file.
type FileResult struct {
	Index int    `json:"index"`
	Path  string `json:"path"`
	Rows  int    `json:"rows"`
	// FirstRow and LastRow are the output rows holding data, both 0 for a header-only file.
	FirstRow int `json:"first_row"`
	LastRow  int `json:"last_row"`
}

// Result lists the files written by a partition run in index order.
type Result struct {
	Files []FileResult `json:"files"`
}

// OutputPath returns the path of the output file with 0-based index i.
func (r PartitionRequest) OutputPath(i int) string {
	return filepath.Join(r.OutputDir, fmt.Sprintf("%s_%d.xlsx", r.BaseName, i+1))
}

func (r PartitionRequest) validate() error {
	switch {
	case r.ModelPath == "":
		return fmt.Errorf("%w: model path is required", ErrInvalidOptions)
	case r.SourcePath == "":
		return fmt.Errorf("%w: source path is required", ErrInvalidOptions)
	case r.OutputDir == "":
		return fmt.Errorf("%w: output directory is required", ErrInvalidOptions)
	case r.BaseName == "":
		return fmt.Errorf("%w: base name is required", ErrInvalidOptions)
	case r.Files < 1:
		return fmt.Errorf("%w: number of files must be >= 1, got %d", ErrInvalidOptions, r.Files)
	}
	return nil
}

// Splitter builds the output files of partition runs.
type Splitter struct {
	opts Options
	log  zerolog.Logger
}

// NewSplitter returns a Splitter logging to logger.
func NewSplitter(opts Options, logger zerolog.Logger) *Splitter {
	return &Splitter{opts: opts, log: logger}
}

// Partition reads the flat file, divides its data records into req.Files chunks and
// writes one styled workbook per chunk, header-only files included.
//
// Files are built one after another. With ContinueOnError unset the first failing
// file aborts the run; otherwise every file is attempted and the failures are
// returned joined. The returned Result lists the files written either way.
func (s *Splitter) Partition(req PartitionRequest) (*Result, error) {
	if err := s.opts.Validate(); err != nil {
		return nil, err
	}
	if err := req.validate(); err != nil {
		return nil, err
	}

	rows, err := flatfile.ReadAll(req.SourcePath, s.opts.Delimiter, s.opts.Encoding)
	if err != nil {
		return nil, NewSourceError("read", req.SourcePath, err)
	}
	s.log.Info().Str("path", req.SourcePath).Int("rows", len(rows)).Msg("flat file loaded")

	model, err := layout.OpenModel(req.ModelPath)
	if err != nil {
		return nil, NewSourceError("open", req.ModelPath, err)
	}
	defer model.Close()
	s.log.Debug().
		Str("path", req.ModelPath).
		Str("sheet", model.Sheet).
		Int("max_row", model.MaxRow).
		Int("max_col", model.MaxCol).
		Int("merges", len(model.Merges)).
		Msg("model loaded")

	if err := os.MkdirAll(req.OutputDir, 0755); err != nil {
		return nil, NewSourceError("create", req.OutputDir, err)
	}

	chunks := PlanChunks(len(rows), s.opts.HeaderRows, req.Files)
	result := &Result{}
	var errs []error
	for _, chunk := range chunks {
		path := req.OutputPath(chunk.Index)
		file, err := s.buildFile(model, rows, chunk, req.Files, path)
		if err != nil {
			chunkErr := &ChunkError{Index: chunk.Index, Path: path, Err: err}
			if !s.opts.ContinueOnError {
				return result, chunkErr
			}
			s.log.Error().Err(err).Int("index", chunk.Index+1).Str("file", path).Msg("output file failed")
			errs = append(errs, chunkErr)
		} else {
			result.Files = append(result.Files, file)
			s.log.Info().
				Str("file", path).
				Int("index", chunk.Index+1).
				Int("rows", file.Rows).
				Msg("excel file created")
		}
		if s.opts.Progress != nil {
			s.opts.Progress(chunk.Index+1, len(chunks))
		}
	}
	return result, errors.Join(errs...)
}

// buildFile writes the output file of one chunk.
func (s *Splitter) buildFile(model *layout.Model, rows [][]string, chunk models.RowChunk, n int, path string) (FileResult, error) {
	g, err := layout.NewGrid(model, model.Sheet, s.opts.MergePolicy)
	if err != nil {
		return FileResult{}, err
	}
	defer g.Close()

	if err := layout.CopyHeader(model, g, s.opts.HeaderRows); err != nil {
		return FileResult{}, fmt.Errorf("copy header: %w", err)
	}

	for i, record := range rows[chunk.Start:chunk.End] {
		row := s.opts.TableStartRow + i
		for j, token := range record {
			if err := g.SetNormalized(row, j+1, parser.Normalize(token)); err != nil {
				return FileResult{}, fmt.Errorf("write row %d: %w", row, err)
			}
		}
	}

	if err := layout.ApplyBanding(model, g, s.opts.TableStartRow, s.opts.Styles); err != nil {
		return FileResult{}, fmt.Errorf("apply banding: %w", err)
	}
	if chunk.Index == n-1 && !chunk.Empty() {
		if err := layout.ApplyTail(model, g, s.opts.Styles.TailRow); err != nil {
			return FileResult{}, fmt.Errorf("apply tail style: %w", err)
		}
	}
	if err := layout.ApplyPrintArea(model, g); err != nil {
		return FileResult{}, fmt.Errorf("set print area: %w", err)
	}

	if err := g.SaveAs(path); err != nil {
		return FileResult{}, err
	}

	file := FileResult{Index: chunk.Index, Path: path, Rows: chunk.Len()}
	if !chunk.Empty() {
		file.FirstRow = s.opts.TableStartRow
		file.LastRow = s.opts.TableStartRow + chunk.Len() - 1
	}
	return file, nil
}
