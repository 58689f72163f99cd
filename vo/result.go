package vo

import (
	"bytes"
	"encoding/json"
	"strconv"

	"gopkg.in/yaml.v3"
)

// Check a selector and whether it was found in a document
type Check struct {
	Selector string
	Present  bool
}

// Result of checking a document, ordered like the check list it was built from
type Result []Check

// Add appends a check, a selector that is already in the result is updated in place
func (r *Result) Add(selector string, present bool) {
	for i := range *r {
		if (*r)[i].Selector == selector {
			(*r)[i].Present = present
			return
		}
	}
	*r = append(*r, Check{Selector: selector, Present: present})
}

// Map returns the result as a plain map
func (r Result) Map() map[string]bool {
	m := make(map[string]bool, len(r))
	for _, c := range r {
		m[c.Selector] = c.Present
	}
	return m
}

// MarshalJSON writes an object, keys keep the order of the result
func (r Result) MarshalJSON() ([]byte, error) {
	buf := &bytes.Buffer{}
	buf.WriteByte('{')
	for i, c := range r {
		if i > 0 {
			buf.WriteByte(',')
		}
		errKey := writeKey(buf, c.Selector)
		if errKey != nil {
			return nil, errKey
		}
		buf.WriteByte(':')
		buf.WriteString(strconv.FormatBool(c.Present))
	}
	buf.WriteByte('}')
	return buf.Bytes(), nil
}

// selectors are full of > and &, they stay readable
func writeKey(buf *bytes.Buffer, key string) error {
	keyBuf := &bytes.Buffer{}
	enc := json.NewEncoder(keyBuf)
	enc.SetEscapeHTML(false)
	if errEncode := enc.Encode(key); errEncode != nil {
		return errEncode
	}
	buf.Write(bytes.TrimSuffix(keyBuf.Bytes(), []byte("\n")))
	return nil
}

// MarshalYAML writes a mapping node, keys keep the order of the result
func (r Result) MarshalYAML() (interface{}, error) {
	node := &yaml.Node{
		Kind: yaml.MappingNode,
		Tag:  "!!map",
	}
	for _, c := range r {
		node.Content = append(node.Content,
			&yaml.Node{Kind: yaml.ScalarNode, Tag: "!!str", Value: c.Selector},
			&yaml.Node{Kind: yaml.ScalarNode, Tag: "!!bool", Value: strconv.FormatBool(c.Present)},
		)
	}
	return node, nil
}
