package analyze

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"apigee-inventory/internal/model"
)

func artifacts(pairs ...string) []model.ArtifactRecord {
	var out []model.ArtifactRecord
	for i := 0; i+1 < len(pairs); i += 2 {
		out = append(out, model.NewArtifact(pairs[i], pairs[i+1]))
	}
	return out
}

func TestFilterArtifacts(t *testing.T) {
	in := artifacts(
		"sharedflow", "sf1",
		"apps", "a1",
		"apiproducts", "gold",
		"eval/flowhooks", "PreProxy",
		"developers", "jane",
	)
	got := FilterArtifacts(in)
	assert.Equal(t, artifacts("sharedflow", "sf1", "apiproducts", "gold", "developers", "jane"), got)
	for _, a := range got {
		assert.NotEqual(t, model.TypeApps, a.Type)
		assert.NotEqual(t, model.TypeFlowHooks, a.Type)
	}
}

func TestRelabelArtifacts(t *testing.T) {
	in := artifacts("importKeys", "key-2024", "importKeys", "other", "developers", "jane")
	got := RelabelArtifacts(in)
	assert.Equal(t, artifacts("importKeys", "N/A", "importKeys", "N/A", "developers", "jane"), got)
	// input left untouched
	assert.Equal(t, "key-2024", in[0].Name)
}

func TestBuildSummaryEmpty(t *testing.T) {
	r := model.NewReport("/ws", time.Now())
	Evaluate(&r)
	assert.Equal(t, []model.SummaryRow{
		{Metric: "Total Proxies", Count: 0},
		{Metric: "Total Policies", Count: 0},
		{Metric: "Total Shared Flows", Count: 0},
	}, r.Summary)
}

func TestEvaluate(t *testing.T) {
	r := model.NewReport("/ws", time.Now())
	r.Inventory.Proxies = []model.ProxyRecord{
		{Name: "a", PolicyCount: 3},
		{Name: "b", PolicyCount: 0},
		{Name: "c", PolicyCount: 4},
	}
	r.Inventory.Artifacts = artifacts(
		"sharedflow", "sf1",
		"sharedflow", "sf2",
		"apiproducts", "gold",
		"apps", "a1",
		"developerApps", "d1",
		"importKeys", "k1",
		"eval/flowhooks", "PostProxy",
		"eval/aliases", "alias",
	)

	Evaluate(&r)

	require.Len(t, r.Inventory.Artifacts, 6)
	assert.Equal(t, []model.SummaryRow{
		{Metric: "Total Proxies", Count: 3},
		{Metric: "Total Policies", Count: 7},
		{Metric: "Total Shared Flows", Count: 2},
		{Metric: "apiproducts", Count: 1},
		{Metric: "developerApps", Count: 1},
		{Metric: "eval/aliases", Count: 1},
		{Metric: "importKeys", Count: 1},
		{Metric: "sharedflow", Count: 2},
	}, r.Summary)

	total := 0
	for _, p := range r.Inventory.Proxies {
		total += p.PolicyCount
	}
	assert.Equal(t, total, SummaryCount(r.Summary, model.MetricTotalPolicies))
}

func TestSummaryCount(t *testing.T) {
	rows := []model.SummaryRow{{Metric: "x", Count: 4}}
	assert.Equal(t, 4, SummaryCount(rows, "x"))
	assert.Zero(t, SummaryCount(rows, "y"))
}
