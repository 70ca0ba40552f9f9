// Package contextengine builds bounded project context for AI prompts.
//
// The engine has two halves. The scanner walks a project root and produces an
// immutable tree of directories and code files, pruning dependency and VCS
// directories before descending into them. The assembler takes a scanned tree
// and a selection policy (file cap, depth cap, include/exclude patterns),
// picks a bounded set of file leaves in traversal order, reads their contents
// through a shared mod-time-validated cache, and renders everything into a
// single text block: a tree diagram followed by the selected file contents.
//
// Scan is stateless and safe to repeat; callers retain the returned tree and
// pass it to Assemble any number of times with different policies. The
// content cache is the only shared mutable state and is safe for concurrent
// assembles.
package contextengine
