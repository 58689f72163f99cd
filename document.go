package htmlcheck

import (
	"bytes"
	"fmt"

	"github.com/PuerkitoBio/goquery"
	"github.com/andybalholm/cascadia"
	"golang.org/x/net/html"
)

// Document can be queried with css selectors
type Document interface {
	// Query returns the number of nodes matching selector
	Query(selector string) (count int, err error)
}

// HTMLDocument is a Document backed by goquery
type HTMLDocument struct {
	doc *goquery.Document
}

// NewDocument parses htmlBytes, broken markup is repaired the way browsers do it
func NewDocument(htmlBytes []byte) (*HTMLDocument, error) {
	root, errParse := html.Parse(bytes.NewReader(htmlBytes))
	if errParse != nil {
		return nil, errParse
	}
	return &HTMLDocument{
		doc: goquery.NewDocumentFromNode(root),
	}, nil
}

// Query compiles the selector first, goquery would silently match nothing for
// an invalid one
func (d *HTMLDocument) Query(selector string) (count int, err error) {
	matcher, errCompile := cascadia.Compile(selector)
	if errCompile != nil {
		return 0, fmt.Errorf("%w %q: %s", ErrInvalidSelector, selector, errCompile.Error())
	}
	return d.doc.FindMatcher(matcher).Length(), nil
}
