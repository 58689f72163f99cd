package htmlcheck

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const testDocHTML = `<html><head></head><body><div id="x"></div></body></html>`

func getDoc(t *testing.T, html string) *HTMLDocument {
	doc, errDoc := NewDocument([]byte(html))
	require.NoError(t, errDoc)
	return doc
}

func TestDocumentQuery(t *testing.T) {
	doc := getDoc(t, `<ul><li class="a">1</li><li class="b">2</li><li class="a">3</li></ul>`)
	for selector, expected := range map[string]int{
		"li":        3,
		"li.a":      2,
		"ul > li.b": 1,
		"ol":        0,
		"h1, li.b":  1,
	} {
		count, errQuery := doc.Query(selector)
		assert.NoError(t, errQuery, selector)
		assert.Equal(t, expected, count, selector)
	}
}

func TestDocumentQueryInvalidSelector(t *testing.T) {
	doc := getDoc(t, testDocHTML)
	_, errQuery := doc.Query("div[")
	assert.ErrorIs(t, errQuery, ErrInvalidSelector)
}

func TestDocumentEmpty(t *testing.T) {
	doc := getDoc(t, ``)
	count, errQuery := doc.Query("html")
	assert.NoError(t, errQuery)
	assert.Equal(t, 1, count)
}
