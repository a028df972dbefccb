package bundle

import "apigee-inventory/internal/model"

// PolicyType returns the root tag of a policy definition, e.g. "AssignMessage".
func PolicyType(path string) (string, error) {
	root, err := readTree(path)
	if err != nil {
		return model.Unknown, err
	}
	return root.Tag, nil
}
