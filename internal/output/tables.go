package output

import (
	"fmt"

	"apigee-inventory/internal/model"
)

const (
	SheetProxies   = "Proxy Details"
	SheetArtifacts = "Other Org Details"
	SheetSummary   = "Summary"
)

var (
	proxyHeader    = []string{"Proxy Name", "Policies", "Policy Types", "Policy Count", "Proxy Path", "Target Server Name", "Target Server Info"}
	artifactHeader = []string{"Artifact Type", "Artifact Name", "Artifact Count"}
	summaryHeader  = []string{"Metric", "Count"}
)

// Table is one sheet of the report: a header row plus uniformly shaped rows.
type Table struct {
	Name   string
	Header []string
	Rows   [][]any
}

// Tables projects an evaluated report onto its sheets. The artifact sheet is
// left out when no artifacts remain.
func Tables(r *model.Report) []Table {
	proxies := Table{Name: SheetProxies, Header: proxyHeader}
	for _, p := range r.Inventory.Proxies {
		proxies.Rows = append(proxies.Rows, []any{
			p.Name,
			p.Policies(),
			p.PolicyTypesDisplay(),
			p.PolicyCount,
			p.BasePath,
			p.Targets(),
			p.TargetInfosDisplay(),
		})
	}

	summary := Table{Name: SheetSummary, Header: summaryHeader}
	for _, s := range r.Summary {
		summary.Rows = append(summary.Rows, []any{s.Metric, s.Count})
	}

	if len(r.Inventory.Artifacts) == 0 {
		return []Table{proxies, summary}
	}
	artifacts := Table{Name: SheetArtifacts, Header: artifactHeader}
	for _, a := range r.Inventory.Artifacts {
		artifacts.Rows = append(artifacts.Rows, []any{a.Type, a.Name, a.Count})
	}
	return []Table{proxies, artifacts, summary}
}

func stringRow(row []any) []string {
	out := make([]string, len(row))
	for i, v := range row {
		out[i] = fmt.Sprint(v)
	}
	return out
}
