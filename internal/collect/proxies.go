package collect

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"

	utilerrors "k8s.io/apimachinery/pkg/util/errors"
	"k8s.io/klog/v2"

	"apigee-inventory/internal/bundle"
	"apigee-inventory/internal/model"
)

// ProxyBundleDir is the folder inside each proxy export that holds the bundle.
const ProxyBundleDir = "apiproxy"

// Proxies adds one record per folder under {root}/proxies that carries an
// apiproxy bundle. Failing to list {root}/proxies is the only fatal error of a
// run.
func Proxies(root string, r *model.Report) error {
	dir := filepath.Join(root, "proxies")
	entries, err := os.ReadDir(dir)
	if err != nil {
		return fmt.Errorf("list proxies: %w", err)
	}
	for _, e := range entries {
		bundleDir := filepath.Join(dir, e.Name(), ProxyBundleDir)
		if !isDir(bundleDir) {
			klog.V(2).InfoS("Skipping proxy folder without bundle", "path", filepath.Join(dir, e.Name()))
			continue
		}
		rec, err := ExtractProxy(bundleDir, e.Name())
		recordDiagnostics(r, err)
		r.Inventory.Proxies = append(r.Inventory.Proxies, rec)
	}
	return nil
}

// ExtractProxy builds the record for one apiproxy bundle. The record is always
// complete; the returned error aggregates the files that fell back to defaults.
func ExtractProxy(bundleDir, folderName string) (model.ProxyRecord, error) {
	rec := model.ProxyRecord{
		Name:        strings.TrimSuffix(folderName, ".xml"),
		PolicyNames: []string{},
		PolicyTypes: []string{},
		BasePath:    model.Unknown,
		TargetNames: []string{},
		TargetInfos: []string{},
	}
	var errs []error

	policiesDir := filepath.Join(bundleDir, "policies")
	for _, name := range listFiles(policiesDir, ".xml") {
		typ, err := bundle.PolicyType(filepath.Join(policiesDir, name))
		if err != nil {
			errs = append(errs, err)
		}
		rec.PolicyNames = append(rec.PolicyNames, strings.TrimSuffix(name, ".xml"))
		rec.PolicyTypes = append(rec.PolicyTypes, typ)
	}
	rec.PolicyCount = len(rec.PolicyNames)

	basePath, ok, err := bundle.BasePath(filepath.Join(bundleDir, "proxies", "default.xml"))
	if err != nil {
		errs = append(errs, err)
	}
	if ok {
		rec.BasePath = basePath
	}

	targetsDir := filepath.Join(bundleDir, "targets")
	for _, name := range listFiles(targetsDir, ".xml") {
		tname, info, err := bundle.Target(filepath.Join(targetsDir, name))
		if err != nil {
			errs = append(errs, err)
		}
		rec.TargetNames = append(rec.TargetNames, tname)
		rec.TargetInfos = append(rec.TargetInfos, info)
	}

	return rec, utilerrors.NewAggregate(errs)
}
