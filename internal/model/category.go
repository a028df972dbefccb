package model

// Category is one folder of the temp export tree. Depth 1 holds .json files
// directly; depth 2 holds them one subfolder further down.
type Category struct {
	Key   string
	Depth int
}

const (
	TypeSharedFlow    = "sharedflow"
	TypeApps          = "apps"
	TypeDeveloperApps = "developerApps"
	TypeImportKeys    = "importKeys"
	TypeFlowHooks     = "eval/flowhooks"
)

// Categories is scanned in this order; artifact rows follow it.
var Categories = []Category{
	{Key: "apiproducts", Depth: 1},
	{Key: TypeApps, Depth: 1},
	{Key: TypeDeveloperApps, Depth: 2},
	{Key: "developers", Depth: 1},
	{Key: TypeImportKeys, Depth: 1},
	{Key: "keyvaluemaps", Depth: 1},
	{Key: "eval/aliases", Depth: 1},
	{Key: TypeFlowHooks, Depth: 1},
	{Key: "eval/keystores", Depth: 1},
	{Key: "eval/keyvaluemaps", Depth: 1},
	{Key: "eval/targetservers", Depth: 1},
}
