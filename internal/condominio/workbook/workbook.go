package workbook

import (
	"errors"
	"fmt"
	"os"

	"github.com/go-gota/gota/dataframe"
	"github.com/go-gota/gota/series"
	"github.com/torre9/condominio/internal/condominio/types"
	"github.com/xuri/excelize/v2"
)

var (
	ErrSourceNotFound = errors.New("source workbook not found")
	ErrSheetNotFound  = errors.New("sheet not found")
)

// Workbook wraps an open xlsx file and exposes its sheets as dataframes.
type Workbook struct {
	path string
	file *excelize.File
}

func Open(path string) (*Workbook, error) {
	if _, err := os.Stat(path); os.IsNotExist(err) {
		return nil, fmt.Errorf("%w: %s", ErrSourceNotFound, path)
	}

	f, err := excelize.OpenFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to open workbook %s: %w", path, err)
	}

	return &Workbook{path: path, file: f}, nil
}

func (w *Workbook) Close() error {
	return w.file.Close()
}

// Sheet returns the named sheet as a dataframe, discarding spec.HeaderSkip
// leading rows and using the first surviving row as column names. Every cell
// is kept as a raw string; coercion belongs to the normalizer.
func (w *Workbook) Sheet(spec types.SheetSpec) (dataframe.DataFrame, error) {
	rows, err := w.file.GetRows(spec.Name)
	if err != nil {
		return dataframe.DataFrame{}, fmt.Errorf("%w: %q in %s", ErrSheetNotFound, spec.Name, w.path)
	}

	if len(rows) <= spec.HeaderSkip {
		return dataframe.DataFrame{}, fmt.Errorf("sheet %q has no header row after skipping %d rows", spec.Name, spec.HeaderSkip)
	}
	rows = rows[spec.HeaderSkip:]

	// A header with no data rows is a valid, empty sheet.
	if len(rows) == 1 {
		return dataframe.DataFrame{}, nil
	}

	// GetRows trims trailing empty cells, so pad every record to the header
	// width before handing them to gota.
	width := len(rows[0])
	records := make([][]string, 0, len(rows))
	for _, row := range rows {
		record := make([]string, width)
		copy(record, row)
		records = append(records, record)
	}

	df := dataframe.LoadRecords(records,
		dataframe.DetectTypes(false),
		dataframe.DefaultType(series.String),
	)
	if df.Error() != nil {
		return dataframe.DataFrame{}, fmt.Errorf("failed to load sheet %q: %w", spec.Name, df.Error())
	}

	return df, nil
}
