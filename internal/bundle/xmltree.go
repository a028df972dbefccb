// Package bundle reads the individual XML definition files of an exported
// proxy or shared-flow bundle. Every reader degrades to a default value and
// reports the failure as a *ParseError instead of aborting.
package bundle

import (
	"errors"
	"fmt"
	"os"
	"strings"

	"github.com/beevik/etree"
	"golang.org/x/net/html/charset"
)

// ParseError is a read or parse failure of one definition file.
type ParseError struct {
	Path string
	Err  error
}

func (e *ParseError) Error() string {
	return fmt.Sprintf("parse %s: %v", e.Path, e.Err)
}

func (e *ParseError) Unwrap() error { return e.Err }

var (
	errNoRoot       = errors.New("no element found")
	errTrailingRoot = errors.New("junk after document element")
	errOutsideText  = errors.New("text outside document element")
)

// readTree parses path and returns its single root element. Files declaring
// a non-UTF-8 encoding are transcoded.
func readTree(path string) (*etree.Element, error) {
	doc := etree.NewDocument()
	doc.ReadSettings.CharsetReader = charset.NewReaderLabel
	doc.ReadSettings.ValidateInput = true
	if err := doc.ReadFromFile(path); err != nil {
		return nil, &ParseError{Path: path, Err: err}
	}
	root, err := documentRoot(doc)
	if err != nil {
		return nil, &ParseError{Path: path, Err: err}
	}
	return root, nil
}

func documentRoot(doc *etree.Document) (*etree.Element, error) {
	for _, tok := range doc.Child {
		if cd, ok := tok.(*etree.CharData); ok && strings.TrimSpace(cd.Data) != "" {
			return nil, errOutsideText
		}
	}
	switch roots := doc.ChildElements(); len(roots) {
	case 0:
		return nil, errNoRoot
	case 1:
		return roots[0], nil
	default:
		return nil, errTrailingRoot
	}
}

// descendant returns the first element tagged tag below e in document order.
// e itself is not considered. FindElement(".//tag") walks breadth-first and
// can pick a shallower match that appears later in the file.
func descendant(e *etree.Element, tag string) *etree.Element {
	for _, c := range e.ChildElements() {
		if c.Tag == tag {
			return c
		}
		if d := descendant(c, tag); d != nil {
			return d
		}
	}
	return nil
}

// childText returns the trimmed text of the first direct child tagged tag.
func childText(e *etree.Element, tag string) string {
	c := e.SelectElement(tag)
	if c == nil {
		return ""
	}
	return strings.TrimSpace(c.Text())
}

func exists(path string) bool {
	_, err := os.Stat(path)
	return err == nil
}
