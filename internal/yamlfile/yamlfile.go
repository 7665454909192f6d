// Package yamlfile reads and writes the YAML files confsync keeps on disk.
// Output is deterministic: mapping keys are sorted and null values are
// written as ~, so regenerating an unchanged file yields the same bytes.
package yamlfile

import (
	"bytes"
	"os"
	"sort"

	"github.com/pkg/errors"
	"gopkg.in/yaml.v3"
)

const nullTag = "!!null"

// Marshal encodes v with sorted keys and canonical nulls.
func Marshal(v any) ([]byte, error) {
	var node yaml.Node
	if err := node.Encode(v); err != nil {
		return nil, errors.Wrap(err, "encoding yaml node")
	}
	canonicalize(&node)

	var buf bytes.Buffer
	enc := yaml.NewEncoder(&buf)
	enc.SetIndent(2)
	if err := enc.Encode(&node); err != nil {
		return nil, errors.Wrap(err, "marshalling yaml")
	}
	if err := enc.Close(); err != nil {
		return nil, errors.Wrap(err, "marshalling yaml")
	}
	return buf.Bytes(), nil
}

// Write marshals v and replaces the file at path.
func Write(path string, v any) error {
	content, err := Marshal(v)
	if err != nil {
		return err
	}
	if err := os.WriteFile(path, content, 0644); err != nil {
		return errors.Wrapf(err, "writing %s", path)
	}
	return nil
}

// Read decodes the file at path into out. An empty file leaves out untouched.
func Read(path string, out any) error {
	content, err := os.ReadFile(path)
	if err != nil {
		return errors.Wrapf(err, "reading %s", path)
	}
	if err := yaml.Unmarshal(content, out); err != nil {
		return errors.Wrapf(err, "decoding %s", path)
	}
	return nil
}

func canonicalize(n *yaml.Node) {
	switch n.Kind {
	case yaml.DocumentNode, yaml.SequenceNode:
		for _, c := range n.Content {
			canonicalize(c)
		}
	case yaml.MappingNode:
		type pair struct{ key, value *yaml.Node }
		pairs := make([]pair, 0, len(n.Content)/2)
		for i := 0; i+1 < len(n.Content); i += 2 {
			pairs = append(pairs, pair{n.Content[i], n.Content[i+1]})
		}
		sort.SliceStable(pairs, func(i, j int) bool {
			return pairs[i].key.Value < pairs[j].key.Value
		})

		content := make([]*yaml.Node, 0, len(n.Content))
		for _, p := range pairs {
			canonicalize(p.value)
			content = append(content, p.key, p.value)
		}
		n.Content = content
	case yaml.ScalarNode:
		if n.ShortTag() == nullTag {
			n.Value = "~"
		}
	}
}
