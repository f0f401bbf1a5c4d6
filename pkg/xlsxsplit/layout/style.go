package layout

import "github.com/xuri/excelize/v2"

// StyleCopier registers model cell styles in a destination workbook.
// Style ids are local to a workbook, so one copier serves exactly one destination.
type StyleCopier struct {
	model *Model
	dst   *excelize.File
	ids   map[cellKey]int
}

// NewStyleCopier returns a copier from model into dst.
func NewStyleCopier(model *Model, dst *excelize.File) *StyleCopier {
	return &StyleCopier{model: model, dst: dst, ids: make(map[cellKey]int)}
}

// Copy returns the destination style id matching model cell (row, col), registering it on first use.
// Zero means the model cell has no explicit style.
func (c *StyleCopier) Copy(row, col int) (int, error) {
	key := cellKey{row, col}
	if id, ok := c.ids[key]; ok {
		return id, nil
	}
	style, err := c.model.StyleAt(row, col)
	if err != nil {
		return 0, err
	}
	id := 0
	if style != nil {
		if id, err = c.dst.NewStyle(style); err != nil {
			return 0, err
		}
	}
	c.ids[key] = id
	return id, nil
}
