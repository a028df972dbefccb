package compare

import (
	"fmt"

	"k8s.io/apimachinery/pkg/util/sets"

	"apigee-inventory/internal/analyze"
	"apigee-inventory/internal/model"
)

// Diff compares prev against curr. Both reports must already be evaluated.
func Diff(prev, curr *model.Report) model.ComparisonSummary {
	r := model.ComparisonSummary{
		PreviousScanID:    prev.Scan.ScanID,
		PreviousScannedAt: prev.Metadata.GeneratedAt,
	}

	r.ProxiesAdded, r.ProxiesRemoved = delta(
		keys(prev.Inventory.Proxies, func(p model.ProxyRecord) string { return p.Name }),
		keys(curr.Inventory.Proxies, func(p model.ProxyRecord) string { return p.Name }),
	)

	r.SharedFlowsAdded, r.SharedFlowsRemoved = delta(
		keys(prev.Inventory.SharedFlows, func(s model.SharedFlowRecord) string { return s.Name }),
		keys(curr.Inventory.SharedFlows, func(s model.SharedFlowRecord) string { return s.Name }),
	)

	r.ArtifactsAdded, r.ArtifactsRemoved = delta(
		keys(prev.Inventory.Artifacts, artifactKey),
		keys(curr.Inventory.Artifacts, artifactKey),
	)

	r.PreviousPolicies = analyze.SummaryCount(prev.Summary, model.MetricTotalPolicies)
	r.PolicyDelta = analyze.SummaryCount(curr.Summary, model.MetricTotalPolicies) - r.PreviousPolicies
	return r
}

// ── helpers ──────────────────────────────────────────────────────────────────

func keys[T any](items []T, key func(T) string) sets.Set[string] {
	s := sets.New[string]()
	for _, item := range items {
		s.Insert(key(item))
	}
	return s
}

// delta returns the sorted keys only in curr and only in prev.
func delta(prev, curr sets.Set[string]) (added, removed []string) {
	if a := curr.Difference(prev); a.Len() > 0 {
		added = sets.List(a)
	}
	if r := prev.Difference(curr); r.Len() > 0 {
		removed = sets.List(r)
	}
	return added, removed
}

func artifactKey(a model.ArtifactRecord) string {
	return fmt.Sprintf("%s/%s", a.Type, a.Name)
}
