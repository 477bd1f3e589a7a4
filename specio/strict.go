package specio

import (
	"fmt"

	"gopkg.in/yaml.v3"
)

// DuplicateKeyError reports a duplicate key found in a YAML mapping with both
// the first occurrence position and the duplicate occurrence position.
type DuplicateKeyError struct {
	Key       string
	FirstLine int
	FirstCol  int
	Line      int
	Col       int
}

func (e *DuplicateKeyError) Error() string {
	return fmt.Sprintf("duplicate YAML key %q at %d:%d (first at %d:%d)", e.Key, e.Line, e.Col, e.FirstLine, e.FirstCol)
}

// checkDuplicateKeys decodes data into a yaml.Node tree and fails on the
// first mapping that repeats a scalar key.
func checkDuplicateKeys(data []byte) error {
	var root yaml.Node
	if err := yaml.Unmarshal(data, &root); err != nil {
		return err
	}
	return checkNode(&root)
}

func checkNode(n *yaml.Node) error {
	if n == nil {
		return nil
	}
	switch n.Kind {
	case yaml.DocumentNode, yaml.SequenceNode:
		for _, c := range n.Content {
			if err := checkNode(c); err != nil {
				return err
			}
		}
	case yaml.MappingNode:
		type pos struct{ line, col int }
		seen := make(map[string]pos, len(n.Content)/2)
		for i := 0; i+1 < len(n.Content); i += 2 {
			k, v := n.Content[i], n.Content[i+1]
			if k.Kind == yaml.ScalarNode {
				if first, dup := seen[k.Value]; dup {
					return &DuplicateKeyError{
						Key:       k.Value,
						FirstLine: first.line,
						FirstCol:  first.col,
						Line:      k.Line,
						Col:       k.Column,
					}
				}
				seen[k.Value] = pos{k.Line, k.Column}
			}
			if err := checkNode(v); err != nil {
				return err
			}
		}
	}
	return nil
}
