package collect

import (
	"path/filepath"
	"strings"

	"k8s.io/klog/v2"

	"apigee-inventory/internal/model"
)

// SharedFlowBundleDir marks a folder under {root}/sharedflows as a shared flow.
const SharedFlowBundleDir = "sharedflowbundle"

// SharedFlows adds a SharedFlowRecord and a "sharedflow" artifact for every
// folder under {root}/sharedflows that carries a sharedflowbundle. A missing
// sharedflows folder contributes nothing.
func SharedFlows(root string, r *model.Report) {
	dir := filepath.Join(root, "sharedflows")
	for _, name := range listDirs(dir) {
		flowDir := filepath.Join(dir, name)
		if !isDir(filepath.Join(flowDir, SharedFlowBundleDir)) {
			klog.V(2).InfoS("Skipping shared flow folder without bundle", "path", flowDir)
			continue
		}
		r.Inventory.SharedFlows = append(r.Inventory.SharedFlows, ExtractSharedFlow(flowDir))
		r.Inventory.Artifacts = append(r.Inventory.Artifacts, model.NewArtifact(model.TypeSharedFlow, name))
	}
}

// ExtractSharedFlow lists the policies of one shared flow. flowDir may be the
// exported folder or the sharedflowbundle inside it.
func ExtractSharedFlow(flowDir string) model.SharedFlowRecord {
	policiesDir := filepath.Join(flowDir, SharedFlowBundleDir, "policies")
	if !isDir(policiesDir) {
		policiesDir = filepath.Join(flowDir, "policies")
	}
	rec := model.SharedFlowRecord{
		Name:     filepath.Base(flowDir),
		Policies: []string{},
	}
	for _, name := range listFiles(policiesDir, ".xml") {
		rec.Policies = append(rec.Policies, strings.TrimSuffix(name, ".xml"))
	}
	rec.PolicyCount = len(rec.Policies)
	return rec
}
