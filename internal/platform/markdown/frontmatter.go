package markdown

import (
	"bytes"
	"fmt"
	"strings"

	"gopkg.in/yaml.v3"
)

const separator = "---\n"

// Note renders body under a YAML frontmatter block built from meta.
// meta is a yaml.Node mapping so key order is preserved.
func Note(meta *yaml.Node, body string) (string, error) {
	buf := bytes.Buffer{}
	buf.WriteString(separator)
	enc := yaml.NewEncoder(&buf)
	enc.SetIndent(2)
	if err := enc.Encode(meta); err != nil {
		return "", fmt.Errorf("marshal frontmatter: %w", err)
	}
	if err := enc.Close(); err != nil {
		return "", fmt.Errorf("flush frontmatter: %w", err)
	}
	buf.WriteString(separator)
	if !strings.HasPrefix(body, "\n") {
		buf.WriteString("\n")
	}
	buf.WriteString(body)
	return buf.String(), nil
}

// Mapping builds an ordered mapping node from alternating key/value pairs.
func Mapping(pairs ...any) (*yaml.Node, error) {
	if len(pairs)%2 != 0 {
		return nil, fmt.Errorf("mapping needs key/value pairs, got %d items", len(pairs))
	}
	node := &yaml.Node{Kind: yaml.MappingNode}
	for i := 0; i < len(pairs); i += 2 {
		key, ok := pairs[i].(string)
		if !ok {
			return nil, fmt.Errorf("mapping key at %d is %T, want string", i, pairs[i])
		}
		value := &yaml.Node{}
		if err := value.Encode(pairs[i+1]); err != nil {
			return nil, fmt.Errorf("encode %s: %w", key, err)
		}
		node.Content = append(node.Content, &yaml.Node{Kind: yaml.ScalarNode, Value: key}, value)
	}
	return node, nil
}
