package tools

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/nguoividai/mcp-server/internal/logging"
	"github.com/nguoividai/mcp-server/pkg/fileops"
)

// FileReader reads arbitrary files contained in a project root after path
// security validation. Unlike the context engine it has no extension
// allow-list, so clients can pull in lockfiles, configs, or docs the
// aggregated context skips.
type FileReader struct {
	logger      *logging.AppLogger
	projectRoot string
	maxFileSize int64
}

// NewFileReader creates a FileReader scoped to projectRoot. Files larger
// than maxFileSize bytes are rejected before reading.
func NewFileReader(logger *logging.AppLogger, projectRoot string, maxFileSize int64) *FileReader {
	return &FileReader{
		logger:      logger,
		projectRoot: projectRoot,
		maxFileSize: maxFileSize,
	}
}

// Read returns the content of the file at relPath, relative to the project
// root. The path must stay inside the root after cleaning and symlink
// resolution.
func (r *FileReader) Read(relPath string) (string, error) {
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

	content, err := os.ReadFile(absPath)
	if err != nil {
		return "", fmt.Errorf("failed to read file: %w", err)
	}

	r.logger.Debug("File read", "path", relPath, "bytes", len(content))

	return string(content), nil
}
