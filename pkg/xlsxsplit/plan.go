package xlsxsplit

import "github.com/ukaji3/xlsxsplit-go/pkg/xlsxsplit/models"

// PlanChunks assigns the rows after the header block of a rowCount-row flat file to n files.
// Every file but possibly the trailing ones receives ceil(data rows / n) rows; files left
// without rows get an empty chunk so that exactly n chunks are always returned.
func PlanChunks(rowCount, headerRows, n int) []models.RowChunk {
	if n < 1 {
		return nil
	}
	total := rowCount - headerRows
	if total < 0 {
		total = 0
	}
	size := total / n
	if total%n > 0 {
		size++
	}

	chunks := make([]models.RowChunk, n)
	for i := range chunks {
		start := clamp(headerRows+i*size, rowCount)
		end := clamp(headerRows+(i+1)*size, rowCount)
		if end < start {
			end = start
		}
		chunks[i] = models.RowChunk{Index: i, Start: start, End: end}
	}
	return chunks
}

func clamp(v, limit int) int {
	if v > limit {
		return limit
	}
	return v
}
