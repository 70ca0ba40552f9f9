package tools

import (
	"bytes"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/nguoividai/mcp-server/internal/logging"
	"github.com/nguoividai/mcp-server/pkg/fileops"

	"github.com/adrg/frontmatter"
)

// MarkdownFrontmatter represents the YAML frontmatter fields surfaced from
// markdown documents. All fields are optional; documents without frontmatter
// are still readable.
type MarkdownFrontmatter struct {
	Title       string   `yaml:"title,omitempty"`
	Description string   `yaml:"description,omitempty"`
	Tags        []string `yaml:"tags,omitempty"`
}

// MarkdownDocument is a parsed markdown file: its location, any frontmatter
// metadata, and the body with frontmatter stripped.
type MarkdownDocument struct {
	FileName string
	FilePath string

	Title       string
	Description string
	Tags        []string

	// Body content without the frontmatter block
	Content string
}

// MarkdownReader reads and parses markdown files contained in a project root.
type MarkdownReader struct {
	logger      *logging.AppLogger
	projectRoot string
	maxFileSize int64
}

// NewMarkdownReader creates a MarkdownReader scoped to projectRoot. Files
// larger than maxFileSize bytes are rejected before reading.
func NewMarkdownReader(logger *logging.AppLogger, projectRoot string, maxFileSize int64) *MarkdownReader {
	return &MarkdownReader{
		logger:      logger,
		projectRoot: projectRoot,
		maxFileSize: maxFileSize,
	}
}

// Read loads the markdown file at relPath (relative to the project root),
// validates it, and parses any YAML frontmatter. Documents with no
// frontmatter are returned with empty metadata and the full file as Content.
func (r *MarkdownReader) Read(relPath string) (*MarkdownDocument, error) {
	absPath, err := r.validate(relPath)
	if err != nil {
		return nil, err
	}

	ext := strings.ToLower(filepath.Ext(absPath))
	if ext != ".md" && ext != ".markdown" {
		return nil, fmt.Errorf("not a markdown file: %s", relPath)
	}

	content, err := os.ReadFile(absPath)
	if err != nil {
		return nil, fmt.Errorf("failed to read file: %w", err)
	}

	var matter MarkdownFrontmatter
	body, err := frontmatter.Parse(bytes.NewReader(content), &matter)
	if err != nil {
		// Malformed frontmatter block. Serve the raw document rather than
		// failing the whole read.
		r.logger.Debug("Frontmatter parse failed, serving raw content", "path", relPath, "error", err)
		matter = MarkdownFrontmatter{}
		body = content
	}

	doc := &MarkdownDocument{
		FileName:    filepath.Base(absPath),
		FilePath:    relPath,
		Title:       matter.Title,
		Description: matter.Description,
		Tags:        matter.Tags,
		Content:     string(body),
	}

	r.logger.Debug("Markdown document read",
		"path", relPath,
		"title", doc.Title,
		"bytes", len(doc.Content))

	return doc, nil
}

// validate runs the path security, containment, access, and size checks
// shared by the file reading tools, returning the absolute path on success.
func (r *MarkdownReader) validate(relPath string) (string, error) {
	if err := fileops.ValidatePathSecurity(relPath); err != nil {
		return "", fmt.Errorf("path security check failed: %w", err)
	}

	absPath := filepath.Join(r.projectRoot, relPath)

	if err := fileops.ValidateFileInDirectory(absPath, r.projectRoot); err != nil {
		return "", fmt.Errorf("file containment check failed: %w", err)
	}
	if err := fileops.ValidateFileAccess(absPath); err != nil {
		return "", fmt.Errorf("file access check failed: %w", err)
	}
	if err := fileops.ValidateFileSizeLimit(absPath, r.maxFileSize); err != nil {
		return "", fmt.Errorf("file size check failed: %w", err)
	}

	return absPath, nil
}
