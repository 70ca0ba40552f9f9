package contextengine

import (
	"os"
	"path"
	"path/filepath"
	"strings"
)

// prunedNames are entry names skipped entirely during a scan: the entry is
// neither visited nor represented in the tree. Dot-prefixed names are pruned
// by the same rule.
var prunedNames = map[string]struct{}{
	"node_modules": {},
	".git":         {},
	"dist":         {},
	"build":        {},
}

// codeExtensions is the allow-list of file extensions retained as leaves.
// Matching is case-insensitive; everything else is dropped silently.
var codeExtensions = map[string]struct{}{
	".js":   {},
	".jsx":  {},
	".ts":   {},
	".tsx":  {},
	".json": {},
	".html": {},
	".css":  {},
}

// Scan walks rootPath and returns the project structure tree. The walk is
// read-only and stateless; repeating it is safe. Children keep the order the
// filesystem enumeration returned them in; callers must not assume any
// particular ordering.
//
// Returns *NotFoundError when rootPath is missing or not a directory, and
// *PermissionError when a traversed directory cannot be listed.
func Scan(rootPath string) (*TreeNode, error) {
	absRoot, err := filepath.Abs(rootPath)
	if err != nil {
		return nil, &NotFoundError{Path: rootPath, Err: err}
	}

	info, err := os.Stat(absRoot)
	if err != nil {
		if os.IsPermission(err) {
			return nil, &PermissionError{Path: absRoot, Err: err}
		}
		return nil, &NotFoundError{Path: absRoot, Err: err}
	}
	if !info.IsDir() {
		return nil, &NotFoundError{Path: absRoot}
	}

	root := &TreeNode{
		Name: filepath.Base(absRoot),
		Kind: NodeDir,
	}
	if err := scanInto(absRoot, root); err != nil {
		return nil, err
	}
	return root, nil
}

// scanInto enumerates one directory and fills node.Children, recursing into
// subdirectories. Pruning happens before descent: a pruned entry contributes
// no node at all.
func scanInto(absDir string, node *TreeNode) error {
	entries, err := os.ReadDir(absDir)
	if err != nil {
		return &PermissionError{Path: absDir, Err: err}
	}

	for _, entry := range entries {
		name := entry.Name()
		if isPruned(name) {
			continue
		}

		relPath := name
		if node.RelPath != "" {
			relPath = path.Join(node.RelPath, name)
		}

		if entry.IsDir() {
			child := &TreeNode{
				Name:    name,
				RelPath: relPath,
				Kind:    NodeDir,
			}
			if err := scanInto(filepath.Join(absDir, name), child); err != nil {
				return err
			}
			node.Children = append(node.Children, child)
			continue
		}

		ext := strings.ToLower(filepath.Ext(name))
		if _, ok := codeExtensions[ext]; !ok {
			continue
		}
		node.Children = append(node.Children, &TreeNode{
			Name:    name,
			RelPath: relPath,
			Kind:    NodeFile,
			Ext:     ext,
		})
	}

	return nil
}

// isPruned applies the skip rule uniformly to directory and file names.
func isPruned(name string) bool {
	if strings.HasPrefix(name, ".") {
		return true
	}
	_, ok := prunedNames[name]
	return ok
}
