package dataprocessing

import (
	"fmt"

	"github.com/xuri/excelize/v2"
)

// MeasurementTable is one workbook's first worksheet read as a table: a
// header row naming the columns and the data rows below it. Cells are kept
// as raw text; numeric coercion happens later, per feature. Rows may be
// ragged since the reader trims trailing empty cells.
type MeasurementTable struct {
	Headers []string
	Rows    [][]string
}

// LoadMeasurementTable opens a spreadsheet file and reads its first
// worksheet into a MeasurementTable.
func LoadMeasurementTable(filePath string) (*MeasurementTable, error) {
	f, err := excelize.OpenFile(filePath)
	if err != nil {
		return nil, fmt.Errorf("failed to open file %s: %w", filePath, err)
	}
	defer f.Close()

	sheets := f.GetSheetList()
	if len(sheets) == 0 {
		return nil, fmt.Errorf("no worksheets in file %s", filePath)
	}

	rows, err := f.GetRows(sheets[0])
	if err != nil {
		return nil, fmt.Errorf("failed to read worksheet %s: %w", sheets[0], err)
	}

	table := &MeasurementTable{}
	if len(rows) > 0 {
		table.Headers = rows[0]
		table.Rows = rows[1:]
	}
	return table, nil
}

// ColumnIndex returns the index of the header whose text equals name
// exactly, or -1 if the table has no such column.
func (t *MeasurementTable) ColumnIndex(name string) int {
	for i, header := range t.Headers {
		if header == name {
			return i
		}
	}
	return -1
}
