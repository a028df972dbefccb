package output

import (
	"fmt"
	"io"
	"os"
	"sort"
	"strings"

	"apigee-inventory/internal/model"
)

func WriteMarkdown(path string, r *model.Report) error {
	f, err := os.Create(path)
	if err != nil {
		return err
	}
	defer f.Close()

	fmt.Fprintf(f, "# Apigee Inventory Report\n\n")
	fmt.Fprintf(f, "- Workspace: `%s`\n", r.Root)
	fmt.Fprintf(f, "- Scan: %s (%s)\n\n", r.Scan.ScanID, r.Metadata.GeneratedAt)

	for _, t := range Tables(r) {
		fmt.Fprintf(f, "## %s\n\n", t.Name)
		writeMarkdownTable(f, t.Header, t.Rows)
	}

	if len(r.Inventory.SharedFlows) > 0 {
		fmt.Fprintf(f, "## Shared Flow Policies\n\n")
		rows := make([][]any, 0, len(r.Inventory.SharedFlows))
		for _, s := range r.Inventory.SharedFlows {
			rows = append(rows, []any{s.Name, s.PolicyCount, s.PoliciesDisplay()})
		}
		writeMarkdownTable(f, []string{"Shared Flow Name", "Number of Policies", "Policies"}, rows)
	}

	if len(r.Inventory.ArtifactFileCounts) > 0 {
		fmt.Fprintf(f, "## Export File Counts\n\n")
		keys := make([]string, 0, len(r.Inventory.ArtifactFileCounts))
		for k := range r.Inventory.ArtifactFileCounts {
			keys = append(keys, k)
		}
		sort.Strings(keys)
		rows := make([][]any, 0, len(keys))
		for _, k := range keys {
			rows = append(rows, []any{k, r.Inventory.ArtifactFileCounts[k]})
		}
		writeMarkdownTable(f, []string{"Category", "JSON Files"}, rows)
	}

	if c := r.Comparison; c != nil {
		fmt.Fprintf(f, "## Changes Since %s\n\n", c.PreviousScannedAt)
		fmt.Fprintf(f, "- Policies: %d (%+d)\n", c.PreviousPolicies+c.PolicyDelta, c.PolicyDelta)
		writeChangeList(f, "Proxies added", c.ProxiesAdded)
		writeChangeList(f, "Proxies removed", c.ProxiesRemoved)
		writeChangeList(f, "Shared flows added", c.SharedFlowsAdded)
		writeChangeList(f, "Shared flows removed", c.SharedFlowsRemoved)
		writeChangeList(f, "Artifacts added", c.ArtifactsAdded)
		writeChangeList(f, "Artifacts removed", c.ArtifactsRemoved)
		fmt.Fprintln(f)
	}

	if len(r.Diagnostics) > 0 {
		fmt.Fprintf(f, "## Diagnostics\n\n")
		for _, d := range r.Diagnostics {
			fmt.Fprintf(f, "- `%s`: %s\n", d.Path, d.Message)
		}
	}
	return nil
}

func writeMarkdownTable(w io.Writer, header []string, rows [][]any) {
	fmt.Fprintf(w, "| %s |\n", strings.Join(header, " | "))
	fmt.Fprintf(w, "|%s\n", strings.Repeat(" --- |", len(header)))
	for _, row := range rows {
		cells := stringRow(row)
		for i, c := range cells {
			cells[i] = strings.ReplaceAll(c, "|", `\|`)
		}
		fmt.Fprintf(w, "| %s |\n", strings.Join(cells, " | "))
	}
	fmt.Fprintln(w)
}

func writeChangeList(w io.Writer, label string, items []string) {
	if len(items) == 0 {
		return
	}
	fmt.Fprintf(w, "- %s: %s\n", label, strings.Join(items, ", "))
}
