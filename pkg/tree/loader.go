package tree

import (
	"bytes"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"
	"strings"

	"gopkg.in/yaml.v3"
)

// Parse decodes a YAML or JSON node description. Unknown keys are rejected so
// typos surface instead of silently dropping configuration.
func Parse(data []byte) (Node, error) {
	var node Node
	if len(bytes.TrimSpace(data)) == 0 {
		return node, fmt.Errorf("tree: empty document")
	}
	dec := yaml.NewDecoder(bytes.NewReader(data))
	dec.KnownFields(true)
	if err := dec.Decode(&node); err != nil {
		return Node{}, fmt.Errorf("tree: decode: %w", err)
	}
	normalise(&node)
	return node, nil
}

// LoadFS reads and parses path from fsys.
func LoadFS(fsys fs.FS, path string) (Node, error) {
	if fsys == nil {
		return Node{}, fmt.Errorf("tree: filesystem is nil")
	}
	if !isTreeFile(path) {
		return Node{}, fmt.Errorf("tree: unsupported file %s", path)
	}
	data, err := fs.ReadFile(fsys, path)
	if err != nil {
		return Node{}, fmt.Errorf("tree: read %s: %w", path, err)
	}
	node, err := Parse(data)
	if err != nil {
		return Node{}, fmt.Errorf("%w (file %s)", err, path)
	}
	return node, nil
}

// LoadFile reads and parses a file from disk.
func LoadFile(path string) (Node, error) {
	clean := filepath.Clean(path)
	return LoadFS(os.DirFS(filepath.Dir(clean)), filepath.Base(clean))
}

func isTreeFile(path string) bool {
	switch strings.ToLower(filepath.Ext(path)) {
	case ".json", ".yaml", ".yml":
		return true
	default:
		return false
	}
}

func normalise(node *Node) {
	node.Kind = strings.ToLower(strings.TrimSpace(node.Kind))
	node.Name = strings.TrimSpace(node.Name)
	node.Type = strings.TrimSpace(node.Type)
	for i := range node.Children {
		normalise(&node.Children[i])
	}
}
