package collect

import (
	"errors"
	"os"
	"path/filepath"
	"strings"

	utilerrors "k8s.io/apimachinery/pkg/util/errors"
	"k8s.io/klog/v2"

	"apigee-inventory/internal/bundle"
	"apigee-inventory/internal/model"
)

// listFiles returns the names of the non-directory entries of dir ending in
// suffix, in lexicographic order. A missing or unreadable dir yields nil.
func listFiles(dir, suffix string) []string {
	entries, err := os.ReadDir(dir)
	if err != nil {
		return nil
	}
	var out []string
	for _, e := range entries {
		if !strings.HasSuffix(e.Name(), suffix) || isDir(filepath.Join(dir, e.Name())) {
			continue
		}
		out = append(out, e.Name())
	}
	return out
}

// listDirs returns the names of the immediate subdirectories of dir, in
// lexicographic order. Symlinks to directories count.
func listDirs(dir string) []string {
	entries, err := os.ReadDir(dir)
	if err != nil {
		return nil
	}
	var out []string
	for _, e := range entries {
		if isDir(filepath.Join(dir, e.Name())) {
			out = append(out, e.Name())
		}
	}
	return out
}

func isDir(path string) bool {
	fi, err := os.Stat(path)
	return err == nil && fi.IsDir()
}

// recordDiagnostics unpacks an extractor's aggregated error into the report.
func recordDiagnostics(r *model.Report, err error) {
	if err == nil {
		return
	}
	errs := []error{err}
	var agg utilerrors.Aggregate
	if errors.As(err, &agg) {
		errs = utilerrors.Flatten(agg).Errors()
	}
	for _, e := range errs {
		path, cause := "", e
		var pe *bundle.ParseError
		if errors.As(e, &pe) {
			path, cause = pe.Path, pe.Err
		}
		klog.V(1).InfoS("Degraded to default value", "path", path, "err", cause)
		r.AddDiagnostic(path, cause)
	}
}
