// Package contenttest builds throwaway content trees for loader tests.
package contenttest

import (
	"os"
	"path/filepath"
	"testing"

	"scdb-loader/core/content"
)

// NewTree creates an empty content root with the default layout.
func NewTree(t *testing.T) *content.Tree {
	t.Helper()
	return content.NewTree(content.DefaultConfig(t.TempDir()))
}

// Write creates the file rel (slash separated, relative to the tree root)
// with the given body, creating parent folders as needed.
func Write(t *testing.T, tree *content.Tree, rel, body string) string {
	t.Helper()
	path := tree.Path(rel)
	if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		t.Fatalf("failed to create folder for %s: %v", rel, err)
	}
	if err := os.WriteFile(path, []byte(body), 0o644); err != nil {
		t.Fatalf("failed to write %s: %v", rel, err)
	}
	return path
}

// Mkdir creates the layout folder rel.
func Mkdir(t *testing.T, tree *content.Tree, rel string) {
	t.Helper()
	if err := os.MkdirAll(tree.Path(rel), 0o755); err != nil {
		t.Fatalf("failed to create %s: %v", rel, err)
	}
}
