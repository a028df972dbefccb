package collect

import (
	"io/fs"
	"path/filepath"
	"strings"

	"apigee-inventory/internal/model"
)

// Artifacts appends the artifacts found under {root}/temp.
func Artifacts(root string, r *model.Report) {
	tempDir := filepath.Join(root, "temp")
	r.Inventory.Artifacts = append(r.Inventory.Artifacts, ScanArtifacts(tempDir)...)
	r.Inventory.ArtifactFileCounts = CountArtifacts(tempDir)
}

// ScanArtifacts returns one record per .json file of every category in
// model.Categories, in category order. Missing folders contribute nothing.
func ScanArtifacts(tempDir string) []model.ArtifactRecord {
	var out []model.ArtifactRecord
	for _, c := range model.Categories {
		for _, dir := range categoryDirs(filepath.Join(tempDir, filepath.FromSlash(c.Key)), c.Depth) {
			for _, name := range listFiles(dir, ".json") {
				out = append(out, model.NewArtifact(c.Key, strings.TrimSuffix(name, ".json")))
			}
		}
	}
	return out
}

// categoryDirs returns the folders that directly hold a category's files:
// dir itself at depth 1, each level of subfolders below it for deeper layouts.
func categoryDirs(dir string, depth int) []string {
	dirs := []string{dir}
	for level := 1; level < depth; level++ {
		var next []string
		for _, d := range dirs {
			for _, sub := range listDirs(d) {
				next = append(next, filepath.Join(d, sub))
			}
		}
		dirs = next
	}
	return dirs
}

// CountArtifacts counts .json files per category at any depth. It returns nil
// when tempDir does not exist.
func CountArtifacts(tempDir string) map[string]int {
	if !isDir(tempDir) {
		return nil
	}
	counts := make(map[string]int, len(model.Categories))
	for _, c := range model.Categories {
		n := 0
		_ = filepath.WalkDir(filepath.Join(tempDir, filepath.FromSlash(c.Key)), func(_ string, d fs.DirEntry, err error) error {
			if err != nil || d == nil {
				return nil
			}
			if !d.IsDir() && strings.HasSuffix(d.Name(), ".json") {
				n++
			}
			return nil
		})
		counts[c.Key] = n
	}
	return counts
}
