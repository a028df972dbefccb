package analyze

import (
	"sort"

	"apigee-inventory/internal/model"
)

// BuildSummary returns the "Summary" sheet rows: the three totals followed by
// one row per artifact type, ascending by type.
func BuildSummary(r *model.Report) []model.SummaryRow {
	policies := 0
	for _, p := range r.Inventory.Proxies {
		policies += p.PolicyCount
	}
	sharedFlows := 0
	for _, a := range r.Inventory.Artifacts {
		if a.Type == model.TypeSharedFlow {
			sharedFlows++
		}
	}

	rows := []model.SummaryRow{
		{Metric: model.MetricTotalProxies, Count: len(r.Inventory.Proxies)},
		{Metric: model.MetricTotalPolicies, Count: policies},
		{Metric: model.MetricTotalSharedFlows, Count: sharedFlows},
	}
	return append(rows, CountByType(r.Inventory.Artifacts)...)
}

// CountByType counts artifacts per type, ordered by type name.
func CountByType(artifacts []model.ArtifactRecord) []model.SummaryRow {
	counts := map[string]int{}
	for _, a := range artifacts {
		counts[a.Type]++
	}
	types := make([]string, 0, len(counts))
	for t := range counts {
		types = append(types, t)
	}
	sort.Strings(types)

	rows := make([]model.SummaryRow, 0, len(types))
	for _, t := range types {
		rows = append(rows, model.SummaryRow{Metric: t, Count: counts[t]})
	}
	return rows
}

// SummaryCount returns the count of metric, or 0 when absent.
func SummaryCount(rows []model.SummaryRow, metric string) int {
	for _, row := range rows {
		if row.Metric == metric {
			return row.Count
		}
	}
	return 0
}
