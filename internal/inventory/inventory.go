// Package inventory runs one extract-transform pass over an exported workspace.
package inventory

import (
	"fmt"
	"time"

	"k8s.io/klog/v2"

	"apigee-inventory/internal/analyze"
	"apigee-inventory/internal/collect"
	"apigee-inventory/internal/compare"
	"apigee-inventory/internal/model"
	"apigee-inventory/internal/output"
)

type Options struct {
	// Root is the exported workspace holding proxies/, sharedflows/ and temp/.
	Root string
	// ComparePath optionally names a previous JSON export to diff against.
	ComparePath string
	// Now is the clock; nil means time.Now.
	Now func() time.Time
}

// Build collects and evaluates the whole workspace. Only a missing or
// unreadable proxies folder is an error; every other problem is recorded as a
// diagnostic on the report.
func Build(opts Options) (*model.Report, error) {
	now := opts.Now
	if now == nil {
		now = time.Now
	}
	r := model.NewReport(opts.Root, now())

	if err := collect.Proxies(opts.Root, &r); err != nil {
		return nil, fmt.Errorf("inventory %s: %w", opts.Root, err)
	}
	collect.SharedFlows(opts.Root, &r)
	collect.Artifacts(opts.Root, &r)

	analyze.Evaluate(&r)
	applyComparison(&r, opts.ComparePath)

	r.Finish(now())
	klog.V(1).InfoS("Inventory built",
		"root", opts.Root,
		"proxies", len(r.Inventory.Proxies),
		"artifacts", len(r.Inventory.Artifacts),
		"diagnostics", len(r.Diagnostics))
	return &r, nil
}

// applyComparison loads a previous report and attaches the diff. A previous
// report that can't be read is logged and skipped.
func applyComparison(r *model.Report, path string) {
	if path == "" {
		return
	}
	prev, err := output.ReadJSON(path)
	if err != nil {
		klog.ErrorS(err, "Skipping comparison", "path", path)
		return
	}
	diff := compare.Diff(prev, r)
	r.Comparison = &diff
}
