package contextengine

// NodeKind distinguishes the two tree node variants.
type NodeKind int

const (
	NodeDir NodeKind = iota
	NodeFile
)

// TreeNode is one node of the scanned project structure. Directories carry
// children in filesystem enumeration order; files carry their extension.
// RelPath is always relative to the scan root with "/" separators and is
// unique within one tree. The root node has an empty RelPath.
type TreeNode struct {
	Name     string
	RelPath  string
	Kind     NodeKind
	Ext      string      // lowercase, with leading dot; files only
	Children []*TreeNode // directories only
}

// IsDir reports whether the node is a directory.
func (n *TreeNode) IsDir() bool { return n.Kind == NodeDir }

// CountFiles returns the number of file leaves in the subtree.
func (n *TreeNode) CountFiles() int {
	if n.Kind == NodeFile {
		return 1
	}
	total := 0
	for _, child := range n.Children {
		total += child.CountFiles()
	}
	return total
}
