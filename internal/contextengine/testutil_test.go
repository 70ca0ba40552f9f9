package contextengine

import (
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/nguoividai/mcp-server/internal/logging"
)

// newTestAssembler builds an assembler with a fresh cache and a buffered
// test logger.
func newTestAssembler(t *testing.T, root string) *Assembler {
	t.Helper()
	logger, _ := logging.NewTestLogger()
	return NewAssembler(root, NewContentCache(), logger)
}

// createTempDirStructure creates a temporary directory with the specified
// structure. Keys ending in "/" become directories; everything else becomes
// a file with the value as content.
func createTempDirStructure(t *testing.T, structure map[string]string) string {
	t.Helper()

	tempDir := t.TempDir()

	for path, content := range structure {
		fullPath := filepath.Join(tempDir, filepath.FromSlash(path))

		if strings.HasSuffix(path, "/") {
			if err := os.MkdirAll(fullPath, 0755); err != nil {
				t.Fatalf("Failed to create directory %s: %v", path, err)
			}
			continue
		}

		if err := os.MkdirAll(filepath.Dir(fullPath), 0755); err != nil {
			t.Fatalf("Failed to create parent dirs for %s: %v", path, err)
		}
		if err := os.WriteFile(fullPath, []byte(content), 0644); err != nil {
			t.Fatalf("Failed to create file %s: %v", path, err)
		}
	}

	return tempDir
}

// collectPaths returns the RelPath of every node in the tree, pre-order.
func collectPaths(t *testing.T, tree *TreeNode) []string {
	t.Helper()

	var paths []string
	var walk func(n *TreeNode)
	walk = func(n *TreeNode) {
		paths = append(paths, n.RelPath)
		for _, child := range n.Children {
			walk(child)
		}
	}
	walk(tree)
	return paths
}

// selectedPaths runs a full scan+assemble against root and returns the
// relative paths of the files in the result.
func selectedPaths(t *testing.T, root string, policy SelectionPolicy) []string {
	t.Helper()

	tree, err := Scan(root)
	if err != nil {
		t.Fatalf("Scan failed: %v", err)
	}

	asm := newTestAssembler(t, root)
	ctx, err := asm.Assemble(tree, policy)
	if err != nil {
		t.Fatalf("Assemble failed: %v", err)
	}

	paths := make([]string, 0, len(ctx.Files))
	for _, f := range ctx.Files {
		paths = append(paths, f.Path)
	}
	return paths
}
