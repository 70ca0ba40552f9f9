package contextengine

import (
	"os"
	"path/filepath"
	"slices"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestScan_PrunesIgnoredDirectories(t *testing.T) {
	root := createTempDirStructure(t, map[string]string{
		"src/index.ts":            "export {}",
		"node_modules/pkg/a.js":   "module.exports = {}",
		".git/config":             "[core]",
		"dist/bundle.js":          "var x",
		"build/out.js":            "var y",
		".hidden/secret.json":     "{}",
		"docs/guide.html":         "<html></html>",
	})

	tree, err := Scan(root)
	require.NoError(t, err)

	paths := collectPaths(t, tree)
	for _, banned := range []string{"node_modules", ".git", "dist", "build", ".hidden"} {
		for _, p := range paths {
			assert.NotContains(t, p, banned, "pruned directory leaked into tree")
		}
	}
	assert.Contains(t, paths, "src/index.ts")
	assert.Contains(t, paths, "docs/guide.html")
}

func TestScan_ExtensionAllowList(t *testing.T) {
	root := createTempDirStructure(t, map[string]string{
		"a.js":       "x",
		"b.jsx":      "x",
		"c.ts":       "x",
		"d.tsx":      "x",
		"e.json":     "{}",
		"f.html":     "<p>",
		"g.css":      "body{}",
		"h.txt":      "drop",
		"i.go":       "drop",
		"j.md":       "drop",
		"k.JS":       "kept, case-insensitive",
		"noext":      "drop",
		"sub/l.TSX":  "kept",
		"sub/m.exe":  "drop",
	})

	tree, err := Scan(root)
	require.NoError(t, err)

	paths := collectPaths(t, tree)
	kept := []string{"a.js", "b.jsx", "c.ts", "d.tsx", "e.json", "f.html", "g.css", "k.JS", "sub/l.TSX"}
	for _, want := range kept {
		assert.Contains(t, paths, want)
	}
	dropped := []string{"h.txt", "i.go", "j.md", "noext", "sub/m.exe"}
	for _, nope := range dropped {
		assert.NotContains(t, paths, nope)
	}
}

func TestScan_FileExtensionsNormalized(t *testing.T) {
	root := createTempDirStructure(t, map[string]string{
		"App.TSX": "component",
	})

	tree, err := Scan(root)
	require.NoError(t, err)
	require.Len(t, tree.Children, 1)

	leaf := tree.Children[0]
	assert.Equal(t, NodeFile, leaf.Kind)
	assert.Equal(t, ".tsx", leaf.Ext)
	assert.Equal(t, "App.TSX", leaf.Name)
}

func TestScan_RelativePathsUseForwardSlashes(t *testing.T) {
	root := createTempDirStructure(t, map[string]string{
		"src/components/Button.tsx": "x",
	})

	tree, err := Scan(root)
	require.NoError(t, err)

	paths := collectPaths(t, tree)
	assert.Contains(t, paths, "src/components/Button.tsx")
	assert.Contains(t, paths, "src/components")
}

func TestScan_RootNode(t *testing.T) {
	root := createTempDirStructure(t, map[string]string{
		"index.js": "x",
	})

	tree, err := Scan(root)
	require.NoError(t, err)

	assert.Equal(t, filepath.Base(root), tree.Name)
	assert.Equal(t, "", tree.RelPath)
	assert.True(t, tree.IsDir())
}

func TestScan_EmptyDirectoriesKept(t *testing.T) {
	root := createTempDirStructure(t, map[string]string{
		"empty/":   "",
		"index.ts": "x",
	})

	tree, err := Scan(root)
	require.NoError(t, err)

	paths := collectPaths(t, tree)
	assert.Contains(t, paths, "empty")
}

func TestScan_MissingRoot(t *testing.T) {
	_, err := Scan(filepath.Join(t.TempDir(), "does-not-exist"))
	require.Error(t, err)

	var notFound *NotFoundError
	assert.ErrorAs(t, err, &notFound)
	assert.NotEmpty(t, notFound.Path)
}

func TestScan_RootIsFile(t *testing.T) {
	root := createTempDirStructure(t, map[string]string{
		"file.ts": "x",
	})

	_, err := Scan(filepath.Join(root, "file.ts"))
	require.Error(t, err)

	var notFound *NotFoundError
	assert.ErrorAs(t, err, &notFound)
}

func TestScan_UnlistableDirectory(t *testing.T) {
	if os.Geteuid() == 0 {
		t.Skip("permission checks do not apply to root")
	}

	root := createTempDirStructure(t, map[string]string{
		"locked/inner.ts": "x",
	})
	locked := filepath.Join(root, "locked")
	require.NoError(t, os.Chmod(locked, 0000))
	t.Cleanup(func() { os.Chmod(locked, 0755) })

	_, err := Scan(root)
	require.Error(t, err)

	var permErr *PermissionError
	assert.ErrorAs(t, err, &permErr)
}

func TestScan_Idempotent(t *testing.T) {
	root := createTempDirStructure(t, map[string]string{
		"src/a.ts": "x",
		"src/b.ts": "y",
	})

	first, err := Scan(root)
	require.NoError(t, err)
	second, err := Scan(root)
	require.NoError(t, err)

	assert.True(t, slices.Equal(collectPaths(t, first), collectPaths(t, second)))
}

func TestCountFiles(t *testing.T) {
	root := createTempDirStructure(t, map[string]string{
		"a.ts":       "x",
		"src/b.ts":   "x",
		"src/c.json": "x",
		"notes.txt":  "dropped",
	})

	tree, err := Scan(root)
	require.NoError(t, err)
	assert.Equal(t, 3, tree.CountFiles())
}
