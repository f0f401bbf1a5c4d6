// Package xlsxsplit re-partitions a large styled worksheet into N smaller workbooks
// that reproduce the header block, column widths, merged cells and row banding of a
// model workbook.
package xlsxsplit

import (
	"fmt"

	"github.com/ukaji3/xlsxsplit-go/pkg/xlsxsplit/layout"
	"github.com/ukaji3/xlsxsplit-go/pkg/xlsxsplit/models"
)

// DefaultDelimiter separates fields in the intermediate flat file.
const DefaultDelimiter = ';'

// Options configures partitioning behavior.
type Options struct {
	// TableStartRow is the first output row receiving data (1-based).
	TableStartRow int
	// HeaderRows is the number of rows at the top of the model and of the flat file
	// forming the header block.
	HeaderRows int
	// Styles names the model rows used for odd, even and tail row styling.
	Styles models.StyleTemplate
	// Delimiter separates fields in the flat file.
	Delimiter rune
	// Encoding is the text encoding of the flat file (see flatfile.Encoding).
	Encoding string
	// MergePolicy resolves overlapping merged regions in an output grid.
	MergePolicy layout.MergePolicy
	// ContinueOnError keeps building the remaining files when one fails.
	ContinueOnError bool
	// Progress, if set, is called after each output file is handled.
	Progress func(done, total int)
}

// DefaultOptions returns the layout of the reference report: a 12-row header,
// data from row 13, banding taken from rows 13 and 14.
func DefaultOptions() Options {
	return Options{
		TableStartRow: 13,
		HeaderRows:    12,
		Styles:        models.StyleTemplate{OddRow: 13, EvenRow: 14},
		Delimiter:     DefaultDelimiter,
		Encoding:      "utf-8",
		MergePolicy:   layout.MergeLastWins,
	}
}

// Validate checks that the options describe a usable layout.
func (o Options) Validate() error {
	switch {
	case o.TableStartRow < 1:
		return fmt.Errorf("%w: table start row must be >= 1, got %d", ErrInvalidOptions, o.TableStartRow)
	case o.HeaderRows < 0:
		return fmt.Errorf("%w: header rows must be >= 0, got %d", ErrInvalidOptions, o.HeaderRows)
	case o.Styles.OddRow < 1 || o.Styles.EvenRow < 1:
		return fmt.Errorf("%w: reference rows must be >= 1, got odd=%d even=%d", ErrInvalidOptions, o.Styles.OddRow, o.Styles.EvenRow)
	case o.Styles.TailRow < 0:
		return fmt.Errorf("%w: tail row must be >= 0, got %d", ErrInvalidOptions, o.Styles.TailRow)
	case o.Delimiter == 0 || o.Delimiter == '\n' || o.Delimiter == '\r':
		return fmt.Errorf("%w: invalid delimiter %q", ErrInvalidOptions, o.Delimiter)
	}
	if _, err := layout.ParseMergePolicy(string(o.MergePolicy)); err != nil {
		return fmt.Errorf("%w: %v", ErrInvalidOptions, err)
	}
	return nil
}
