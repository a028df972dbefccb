package bundle

import "strings"

// BasePath returns the trimmed text of the first BasePath element of a proxy
// endpoint definition. ok is false when the file is missing, malformed, or
// has no non-empty BasePath. err is set only for malformed files.
func BasePath(path string) (basePath string, ok bool, err error) {
	if !exists(path) {
		return "", false, nil
	}
	root, err := readTree(path)
	if err != nil {
		return "", false, err
	}
	el := descendant(root, "BasePath")
	if el == nil {
		return "", false, nil
	}
	basePath = strings.TrimSpace(el.Text())
	return basePath, basePath != "", nil
}
