package contextengine

import (
	"path/filepath"
	"sync"
	"time"

	"github.com/nguoividai/mcp-server/internal/logging"
)

// ContextFile is one selected file with its content snapshot.
type ContextFile struct {
	Path         string // relative to the scan root, "/" separators
	Ext          string
	LastModified time.Time
	Content      string
}

// ProjectContext is the result of one Assemble call: the structure tree plus
// the selected file contents in selection order. It is built fresh per call
// and never mutated afterwards.
type ProjectContext struct {
	Structure *TreeNode
	Files     []ContextFile
}

// Assembler selects files from a scanned tree under a policy and retrieves
// their contents through a shared ContentCache. One assembler serves one
// scan root; concurrent Assemble calls are safe.
type Assembler struct {
	root   string
	cache  *ContentCache
	logger *logging.AppLogger
}

// NewAssembler returns an assembler for the given absolute scan root.
func NewAssembler(root string, cache *ContentCache, logger *logging.AppLogger) *Assembler {
	return &Assembler{root: root, cache: cache, logger: logger}
}

// Assemble walks tree depth-first in pre-order, selects up to
// policy.MaxFiles file leaves that pass the pattern tests within
// policy.MaxDepth, and reads their contents. File reads run concurrently;
// the result sequence preserves selection order regardless of read
// completion order. A file that cannot be read is logged and dropped; the
// rest of the assembly proceeds.
//
// Returns *NotScannedError when tree is nil.
func (a *Assembler) Assemble(tree *TreeNode, policy SelectionPolicy) (*ProjectContext, error) {
	if tree == nil {
		return nil, &NotScannedError{}
	}

	selected := selectFiles(tree, policy)

	type slot struct {
		file ContextFile
		ok   bool
	}
	slots := make([]slot, len(selected))

	var wg sync.WaitGroup
	for i, node := range selected {
		wg.Add(1)
		go func(i int, node *TreeNode) {
			defer wg.Done()
			absPath := filepath.Join(a.root, filepath.FromSlash(node.RelPath))
			content, modTime, err := a.cache.Get(absPath)
			if err != nil {
				readErr := &FileReadError{Path: node.RelPath, Err: err}
				a.logger.Warn("Dropping unreadable file from context", "error", readErr)
				return
			}
			slots[i] = slot{
				file: ContextFile{
					Path:         node.RelPath,
					Ext:          node.Ext,
					LastModified: modTime,
					Content:      content,
				},
				ok: true,
			}
		}(i, node)
	}
	wg.Wait()

	files := make([]ContextFile, 0, len(selected))
	for _, s := range slots {
		if s.ok {
			files = append(files, s.file)
		}
	}

	return &ProjectContext{Structure: tree, Files: files}, nil
}

// selectFiles runs the pre-order selection walk. Descent stops below
// policy.MaxDepth (a directory at MaxDepth is visited, its children are
// not), and the walk halts outright once MaxFiles leaves are selected:
// a hard short-circuit in traversal order, not a ranked top-K.
func selectFiles(tree *TreeNode, policy SelectionPolicy) []*TreeNode {
	var selected []*TreeNode

	var walk func(dir *TreeNode, depth int) bool
	walk = func(dir *TreeNode, depth int) bool {
		if depth > policy.MaxDepth {
			return true
		}
		for _, child := range dir.Children {
			if len(selected) >= policy.MaxFiles {
				return false
			}
			if child.IsDir() {
				if !walk(child, depth+1) {
					return false
				}
				continue
			}
			if policy.admits(child.RelPath) {
				selected = append(selected, child)
				if len(selected) >= policy.MaxFiles {
					return false
				}
			}
		}
		return true
	}

	if policy.MaxFiles > 0 {
		walk(tree, 0)
	}
	return selected
}
