package analyze

import (
	"k8s.io/apimachinery/pkg/util/sets"

	"apigee-inventory/internal/model"
)

// NotApplicable replaces artifact names that carry no meaning for their type.
const NotApplicable = "N/A"

// droppedTypes never reach the "Other Org Details" sheet.
var droppedTypes = sets.New(model.TypeApps, model.TypeFlowHooks)

// relabeledTypes have every artifact name replaced with NotApplicable.
var relabeledTypes = sets.New(model.TypeImportKeys)

// Evaluate applies the artifact rules to a collected report and derives its
// summary rows.
func Evaluate(r *model.Report) {
	r.Inventory.Artifacts = RelabelArtifacts(FilterArtifacts(r.Inventory.Artifacts))
	r.Summary = BuildSummary(r)
}

// FilterArtifacts drops the artifact types excluded from the report, keeping
// the order of the rest.
func FilterArtifacts(in []model.ArtifactRecord) []model.ArtifactRecord {
	out := make([]model.ArtifactRecord, 0, len(in))
	for _, a := range in {
		if droppedTypes.Has(a.Type) {
			continue
		}
		out = append(out, a)
	}
	return out
}

// RelabelArtifacts returns a copy of in with per-file names of relabeled
// types replaced.
func RelabelArtifacts(in []model.ArtifactRecord) []model.ArtifactRecord {
	out := make([]model.ArtifactRecord, len(in))
	for i, a := range in {
		if relabeledTypes.Has(a.Type) {
			a.Name = NotApplicable
		}
		out[i] = a
	}
	return out
}
