package model

// ArtifactRecord is one row of the "Other Org Details" sheet.
type ArtifactRecord struct {
	Type  string `json:"artifactType"`
	Name  string `json:"artifactName"`
	Count int    `json:"artifactCount"`
}

func NewArtifact(typ, name string) ArtifactRecord {
	return ArtifactRecord{Type: typ, Name: name, Count: 1}
}

// SummaryRow is one row of the "Summary" sheet.
type SummaryRow struct {
	Metric string `json:"metric"`
	Count  int    `json:"count"`
}

const (
	MetricTotalProxies     = "Total Proxies"
	MetricTotalPolicies    = "Total Policies"
	MetricTotalSharedFlows = "Total Shared Flows"
)
