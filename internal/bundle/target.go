package bundle

import (
	"path/filepath"
	"strings"

	"apigee-inventory/internal/model"
)

// TargetName is the target endpoint's file name without its .xml extension.
func TargetName(path string) string {
	return strings.TrimSuffix(filepath.Base(path), ".xml")
}

// Target reads a target endpoint definition and returns its name and the
// backend it points at. A URL child of HTTPTargetConnection wins; otherwise
// the backend is assembled from Host, Port and Path. Anything unresolvable
// yields model.Unknown.
func Target(path string) (name, info string, err error) {
	name = TargetName(path)
	info = model.Unknown
	if !exists(path) {
		return name, info, nil
	}
	root, err := readTree(path)
	if err != nil {
		return name, info, err
	}
	conn := descendant(root, "HTTPTargetConnection")
	if conn == nil {
		return name, info, nil
	}
	if url := childText(conn, "URL"); url != "" {
		return name, url, nil
	}
	host := childText(conn, "Host")
	if host == "" {
		return name, info, nil
	}
	var b strings.Builder
	b.WriteString("http://")
	b.WriteString(host)
	if port := childText(conn, "Port"); port != "" {
		b.WriteString(":")
		b.WriteString(port)
	}
	b.WriteString(childText(conn, "Path"))
	return name, b.String(), nil
}
