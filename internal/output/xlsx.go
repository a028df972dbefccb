package output

import (
	"errors"
	"fmt"
	"io/fs"
	"os"

	"github.com/xuri/excelize/v2"

	"apigee-inventory/internal/model"
)

// DefaultWorkbookName is written at the workspace root unless overridden.
const DefaultWorkbookName = "apigee_full_report_with_artifacts_detailed.xlsx"

// WriteWorkbook writes the report's sheets to path, replacing any existing
// file, and returns the names of the sheets written.
func WriteWorkbook(path string, r *model.Report) ([]string, error) {
	if err := os.Remove(path); err != nil && !errors.Is(err, fs.ErrNotExist) {
		return nil, fmt.Errorf("workbook: remove previous: %w", err)
	}

	f := excelize.NewFile()
	defer f.Close()

	bold, err := f.NewStyle(&excelize.Style{Font: &excelize.Font{Bold: true}})
	if err != nil {
		return nil, fmt.Errorf("workbook: style: %w", err)
	}

	var written []string
	for i, t := range Tables(r) {
		if i == 0 {
			err = f.SetSheetName(f.GetSheetName(0), t.Name)
		} else {
			_, err = f.NewSheet(t.Name)
		}
		if err != nil {
			return nil, fmt.Errorf("workbook: sheet %q: %w", t.Name, err)
		}
		if err := writeSheet(f, t, bold); err != nil {
			return nil, fmt.Errorf("workbook: sheet %q: %w", t.Name, err)
		}
		written = append(written, t.Name)
	}
	f.SetActiveSheet(0)

	if err := f.SaveAs(path); err != nil {
		return nil, fmt.Errorf("workbook: save %s: %w", path, err)
	}
	return written, nil
}

func writeSheet(f *excelize.File, t Table, headerStyle int) error {
	header := make([]any, len(t.Header))
	for i, h := range t.Header {
		header[i] = h
	}
	if err := f.SetSheetRow(t.Name, "A1", &header); err != nil {
		return err
	}
	if err := f.SetRowStyle(t.Name, 1, 1, headerStyle); err != nil {
		return err
	}
	for i, row := range t.Rows {
		cell, err := excelize.CoordinatesToCellName(1, i+2)
		if err != nil {
			return err
		}
		if err := f.SetSheetRow(t.Name, cell, &row); err != nil {
			return err
		}
	}
	last, err := excelize.ColumnNumberToName(len(t.Header))
	if err != nil {
		return err
	}
	return f.SetColWidth(t.Name, "A", last, 24)
}
