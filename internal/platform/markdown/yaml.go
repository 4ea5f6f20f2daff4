package markdown

import (
	"bytes"
	"fmt"

	"gopkg.in/yaml.v3"
)

// FromJSON re-renders a JSON document as block-style YAML, keeping key order.
func FromJSON(payload []byte) ([]byte, error) {
	var doc yaml.Node
	if err := yaml.Unmarshal(payload, &doc); err != nil {
		return nil, fmt.Errorf("parse json: %w", err)
	}
	blockStyle(&doc)
	buf := bytes.Buffer{}
	enc := yaml.NewEncoder(&buf)
	enc.SetIndent(2)
	if err := enc.Encode(&doc); err != nil {
		return nil, fmt.Errorf("marshal yaml: %w", err)
	}
	if err := enc.Close(); err != nil {
		return nil, fmt.Errorf("flush yaml: %w", err)
	}
	return buf.Bytes(), nil
}

func blockStyle(node *yaml.Node) {
	if node.Kind == yaml.MappingNode || node.Kind == yaml.SequenceNode {
		node.Style = 0
	}
	if node.Kind == yaml.ScalarNode && node.Style == yaml.DoubleQuotedStyle && plainString(node.Value) {
		node.Style = 0
	}
	for _, child := range node.Content {
		blockStyle(child)
	}
}

// plainString reports whether v reads back as the same string when unquoted.
func plainString(v string) bool {
	if v == "" {
		return false
	}
	var doc yaml.Node
	if err := yaml.Unmarshal([]byte(v), &doc); err != nil || len(doc.Content) != 1 {
		return false
	}
	n := doc.Content[0]
	return n.Kind == yaml.ScalarNode && n.Tag == "!!str" && n.Value == v
}
