package contextengine

import (
	"fmt"
	"strings"
)

// Glyphs used in the structure diagram, one per node line.
const (
	dirGlyph  = "📁"
	fileGlyph = "📄"
)

// Render turns a ProjectContext into a single text block: the depth-indented
// structure diagram, a blank line, then every selected file as a header line
// with its relative path followed by the full content and a blank-line
// separator. Pure function; callers prepend their own query section when
// building a final prompt.
func Render(ctx *ProjectContext) string {
	var b strings.Builder

	renderNode(&b, ctx.Structure, 0)

	b.WriteString("\n")
	for _, f := range ctx.Files {
		fmt.Fprintf(&b, "**File: %s**\n%s\n\n", f.Path, f.Content)
	}

	return b.String()
}

// renderNode writes one line per node, two spaces of indent per depth,
// preserving the tree's own child order.
func renderNode(b *strings.Builder, n *TreeNode, depth int) {
	indent := strings.Repeat("  ", depth)
	glyph := fileGlyph
	if n.IsDir() {
		glyph = dirGlyph
	}
	fmt.Fprintf(b, "%s%s %s\n", indent, glyph, n.Name)

	for _, child := range n.Children {
		renderNode(b, child, depth+1)
	}
}
