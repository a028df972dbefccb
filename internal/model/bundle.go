package model

import (
	"time"

	"github.com/google/uuid"
)

const (
	SchemaVersion = "1.0.0"
	ToolName      = "apigee-inventory"
	ToolVersion   = "0.3.0"
)

// Report is everything one inventory run produces. It lives for the duration
// of a single run and is only persisted through the output writers.
type Report struct {
	SchemaVersion string       `json:"schemaVersion"`
	Metadata      Metadata     `json:"metadata"`
	Tool          Tool         `json:"tool"`
	Scan          Scan         `json:"scan"`
	Root          string       `json:"root"`
	Inventory     Inventory    `json:"inventory"`
	Summary       []SummaryRow `json:"summary"`
	// Diagnostics records files that could not be parsed and fell back to defaults.
	Diagnostics []Diagnostic `json:"diagnostics,omitempty"`
	// Comparison holds the diff against a previous run when --compare is used.
	Comparison *ComparisonSummary `json:"comparison,omitempty"`
}

type Metadata struct {
	ToolVersion string `json:"toolVersion"`
	GeneratedAt string `json:"generatedAt"`
}

type Tool struct {
	Name      string `json:"name"`
	Version   string `json:"version"`
	BuildDate string `json:"buildDate"`
}

type Scan struct {
	ScanID          string    `json:"scanId"`
	StartedAt       time.Time `json:"startedAt"`
	EndedAt         time.Time `json:"endedAt"`
	DurationSeconds int       `json:"durationSeconds"`
}

type Inventory struct {
	Proxies     []ProxyRecord      `json:"proxies"`
	SharedFlows []SharedFlowRecord `json:"sharedFlows,omitempty"`
	// Artifacts is the "Other Org Details" table: shared flows first, then
	// temp export artifacts in category order.
	Artifacts []ArtifactRecord `json:"artifacts"`
	// ArtifactFileCounts is the raw recursive .json count per category,
	// before any filtering.
	ArtifactFileCounts map[string]int `json:"artifactFileCounts,omitempty"`
}

// Diagnostic is a contained, non-fatal failure to read one input file.
type Diagnostic struct {
	Path    string `json:"path"`
	Message string `json:"message"`
}

// ComparisonSummary is the delta between a previous run's JSON export and
// the current report.
type ComparisonSummary struct {
	PreviousScanID    string `json:"previousScanId"`
	PreviousScannedAt string `json:"previousScannedAt"`

	ProxiesAdded       []string `json:"proxiesAdded,omitempty"`
	ProxiesRemoved     []string `json:"proxiesRemoved,omitempty"`
	SharedFlowsAdded   []string `json:"sharedFlowsAdded,omitempty"`
	SharedFlowsRemoved []string `json:"sharedFlowsRemoved,omitempty"`
	ArtifactsAdded     []string `json:"artifactsAdded,omitempty"`
	ArtifactsRemoved   []string `json:"artifactsRemoved,omitempty"`

	PreviousPolicies int `json:"previousPolicies"`
	PolicyDelta      int `json:"policyDelta"`
}

func NewReport(root string, started time.Time) Report {
	return Report{
		SchemaVersion: SchemaVersion,
		Metadata: Metadata{
			ToolVersion: ToolVersion,
			GeneratedAt: started.UTC().Format(time.RFC3339),
		},
		Tool: Tool{
			Name:      ToolName,
			Version:   ToolVersion,
			BuildDate: started.UTC().Format("2006-01-02"),
		},
		Scan: Scan{
			ScanID:    uuid.NewString(),
			StartedAt: started.UTC(),
		},
		Root: root,
		Inventory: Inventory{
			Proxies:   []ProxyRecord{},
			Artifacts: []ArtifactRecord{},
		},
		Summary: []SummaryRow{},
	}
}

// Finish stamps the end of the scan.
func (r *Report) Finish(ended time.Time) {
	r.Scan.EndedAt = ended.UTC()
	r.Scan.DurationSeconds = int(r.Scan.EndedAt.Sub(r.Scan.StartedAt).Seconds())
}

// AddDiagnostic records a degraded input file.
func (r *Report) AddDiagnostic(path string, err error) {
	if err == nil {
		return
	}
	r.Diagnostics = append(r.Diagnostics, Diagnostic{Path: path, Message: err.Error()})
}
