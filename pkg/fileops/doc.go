// Package fileops provides filesystem path validation for read-only serving.
//
// The MCP server hands file contents from a user-selected project root to an
// AI client. Every path that crosses the tool boundary is validated here
// before any read happens:
//
// 1. **Path Security**: ValidatePathSecurity() - Rejects path traversal attempts
// 2. **Directory Containment**: ValidateFileInDirectory() - Keeps reads inside the project root
// 3. **File Access**: ValidateFileAccess() - Ensures the target is a readable regular file
// 4. **File Size**: ValidateFileSizeLimit() - Prevents resource exhaustion on large files
// 5. **Symlink Handling**: IsSymlink() - Lets callers detect links before following them
//
// # Example: validating a tool-supplied path
//
//	if err := fileops.ValidatePathSecurity(relPath); err != nil {
//	    return err
//	}
//	abs := filepath.Join(projectRoot, relPath)
//	if err := fileops.ValidateFileInDirectory(abs, projectRoot); err != nil {
//	    return err
//	}
//
// The package performs no writes and creates nothing on disk.
package fileops
