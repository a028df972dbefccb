package output

import (
	"encoding/json"
	"errors"
	"fmt"
	"os"
	"strings"

	"apigee-inventory/internal/model"
)

// ErrSchemaVersion is returned by ReadJSON for a report written with an
// incompatible major schema version.
var ErrSchemaVersion = errors.New("unsupported schema version")

// WriteJSON writes the whole report as indented JSON.
func WriteJSON(path string, r *model.Report) (err error) {
	f, err := os.Create(path)
	if err != nil {
		return err
	}
	defer func() {
		if cerr := f.Close(); err == nil {
			err = cerr
		}
	}()

	enc := json.NewEncoder(f)
	enc.SetIndent("", "  ")
	return enc.Encode(r)
}

// ReadJSON loads a report previously written with WriteJSON. Unknown fields
// are ignored so older minor versions still load.
func ReadJSON(path string) (*model.Report, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, err
	}
	defer f.Close()

	var r model.Report
	if err := json.NewDecoder(f).Decode(&r); err != nil {
		return nil, fmt.Errorf("decode %s: %w", path, err)
	}
	if majorVersion(r.SchemaVersion) != majorVersion(model.SchemaVersion) {
		return nil, fmt.Errorf("%s: %w %q (want %s)", path, ErrSchemaVersion, r.SchemaVersion, model.SchemaVersion)
	}
	return &r, nil
}

func majorVersion(v string) string {
	major, _, _ := strings.Cut(v, ".")
	return major
}
