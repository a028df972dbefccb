package output

import (
	"encoding/csv"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"

	"apigee-inventory/internal/model"
)

// WriteCSV writes one CSV file per sheet to dir and returns the paths written.
// Files are UTF-8 with BOM for clean Excel opening on Windows.
func WriteCSV(dir string, r *model.Report) ([]string, error) {
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return nil, fmt.Errorf("csv: mkdir: %w", err)
	}
	var paths []string
	for _, t := range Tables(r) {
		path := filepath.Join(dir, csvName(t.Name))
		if err := writeTableCSV(path, t); err != nil {
			return nil, fmt.Errorf("csv: %s: %w", t.Name, err)
		}
		paths = append(paths, path)
	}
	return paths, nil
}

// csvName maps "Other Org Details" to "other_org_details.csv".
func csvName(sheet string) string {
	return strings.ReplaceAll(strings.ToLower(sheet), " ", "_") + ".csv"
}

func writeTableCSV(path string, t Table) (err error) {
	f, err := os.Create(path)
	if err != nil {
		return err
	}
	defer func() {
		if cerr := f.Close(); err == nil {
			err = cerr
		}
	}()
	return encodeCSV(f, t)
}

// encodeCSV writes t to out and stops at the first failed write.
func encodeCSV(out io.Writer, t Table) error {
	// UTF-8 BOM for Excel
	if _, err := out.Write([]byte{0xEF, 0xBB, 0xBF}); err != nil {
		return err
	}
	w := csv.NewWriter(out)
	if err := w.Write(t.Header); err != nil {
		return err
	}
	for _, row := range t.Rows {
		if err := w.Write(stringRow(row)); err != nil {
			return err
		}
	}
	w.Flush()
	return w.Error()
}
