package fileops

import (
	"os"
	"path/filepath"
	"runtime"
	"strings"
	"testing"
)

func TestValidatePathSecurity(t *testing.T) {
	tests := []struct {
		name    string
		path    string
		wantErr bool
	}{
		{"empty path", "", true},
		{"whitespace only", "   ", true},
		{"simple relative path", "src/index.ts", false},
		{"traversal in path", "../etc/passwd", true},
		{"traversal in middle", "src/../../etc", true},
		{"clean absolute path", "/tmp/project/file.ts", false},
		{"hidden traversal after clean", "src/./../..", true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := ValidatePathSecurity(tt.path)
			if (err != nil) != tt.wantErr {
				t.Errorf("ValidatePathSecurity(%q) error = %v, wantErr %v", tt.path, err, tt.wantErr)
			}
		})
	}
}

func TestValidatePathSecurity_ReservedAbsolute(t *testing.T) {
	if runtime.GOOS == "windows" {
		t.Skip("unix reserved directories")
	}
	if err := ValidatePathSecurity("/etc/passwd"); err == nil {
		t.Error("Expected error for reserved system path")
	}
}

func TestValidateScanRoot(t *testing.T) {
	tempDir := t.TempDir()

	abs, err := ValidateScanRoot(tempDir)
	if err != nil {
		t.Fatalf("ValidateScanRoot(%q) failed: %v", tempDir, err)
	}
	if !filepath.IsAbs(abs) {
		t.Errorf("Expected absolute path, got %q", abs)
	}

	if _, err := ValidateScanRoot(""); err == nil {
		t.Error("Expected error for empty scan root")
	}
	if _, err := ValidateScanRoot("/"); err == nil {
		t.Error("Expected error for filesystem root")
	}
}

func TestValidateFileInDirectory(t *testing.T) {
	tempDir := t.TempDir()

	filePath := filepath.Join(tempDir, "inside.txt")
	if err := os.WriteFile(filePath, []byte("content"), 0644); err != nil {
		t.Fatalf("Failed to create test file: %v", err)
	}

	subDir := filepath.Join(tempDir, "sub")
	if err := os.MkdirAll(subDir, 0755); err != nil {
		t.Fatalf("Failed to create subdir: %v", err)
	}

	t.Run("file inside directory", func(t *testing.T) {
		if err := ValidateFileInDirectory(filePath, tempDir); err != nil {
			t.Errorf("Expected no error, got: %v", err)
		}
	})

	t.Run("file outside directory", func(t *testing.T) {
		otherDir := t.TempDir()
		outside := filepath.Join(otherDir, "outside.txt")
		if err := os.WriteFile(outside, []byte("x"), 0644); err != nil {
			t.Fatalf("Failed to create file: %v", err)
		}
		if err := ValidateFileInDirectory(outside, tempDir); err == nil {
			t.Error("Expected containment error, got nil")
		}
	})

	t.Run("missing file", func(t *testing.T) {
		if err := ValidateFileInDirectory(filepath.Join(tempDir, "missing.txt"), tempDir); err == nil {
			t.Error("Expected error for missing file, got nil")
		}
	})

	t.Run("directory instead of file", func(t *testing.T) {
		if err := ValidateFileInDirectory(subDir, tempDir); err == nil {
			t.Error("Expected error for directory path, got nil")
		}
	})
}

func TestValidateFileInDirectory_SymlinkEscape(t *testing.T) {
	if runtime.GOOS == "windows" {
		t.Skip("symlink creation requires privileges on windows")
	}

	baseDir := t.TempDir()
	outsideDir := t.TempDir()

	target := filepath.Join(outsideDir, "secret.txt")
	if err := os.WriteFile(target, []byte("secret"), 0644); err != nil {
		t.Fatalf("Failed to create target: %v", err)
	}

	link := filepath.Join(baseDir, "link.txt")
	if err := os.Symlink(target, link); err != nil {
		t.Fatalf("Failed to create symlink: %v", err)
	}

	if err := ValidateFileInDirectory(link, baseDir); err == nil {
		t.Error("Expected error for symlink escaping base directory")
	}
}

func TestValidateFileAccess(t *testing.T) {
	tempDir := t.TempDir()

	readable := filepath.Join(tempDir, "readable.txt")
	if err := os.WriteFile(readable, []byte("ok"), 0644); err != nil {
		t.Fatalf("Failed to create file: %v", err)
	}

	if err := ValidateFileAccess(readable); err != nil {
		t.Errorf("Expected readable file to pass, got: %v", err)
	}
	if err := ValidateFileAccess(filepath.Join(tempDir, "nope.txt")); err == nil {
		t.Error("Expected error for missing file")
	}
	if err := ValidateFileAccess(tempDir); err == nil {
		t.Error("Expected error for directory path")
	}
}

func TestValidateFileSizeLimit(t *testing.T) {
	tempDir := t.TempDir()

	small := filepath.Join(tempDir, "small.txt")
	if err := os.WriteFile(small, []byte(strings.Repeat("a", 100)), 0644); err != nil {
		t.Fatalf("Failed to create file: %v", err)
	}

	if err := ValidateFileSizeLimit(small, 1024); err != nil {
		t.Errorf("Expected file within limit to pass, got: %v", err)
	}
	if err := ValidateFileSizeLimit(small, 50); err == nil {
		t.Error("Expected error for file over limit")
	}
	if err := ValidateFileSizeLimit(small, 0); err == nil {
		t.Error("Expected error for invalid limit")
	}
}

func TestIsSymlink(t *testing.T) {
	if runtime.GOOS == "windows" {
		t.Skip("symlink creation requires privileges on windows")
	}

	tempDir := t.TempDir()

	regular := filepath.Join(tempDir, "regular.txt")
	if err := os.WriteFile(regular, []byte("x"), 0644); err != nil {
		t.Fatalf("Failed to create file: %v", err)
	}

	link := filepath.Join(tempDir, "link.txt")
	if err := os.Symlink(regular, link); err != nil {
		t.Fatalf("Failed to create symlink: %v", err)
	}

	isLink, err := IsSymlink(regular)
	if err != nil || isLink {
		t.Errorf("Expected regular file: isLink=%v, err=%v", isLink, err)
	}

	isLink, err = IsSymlink(link)
	if err != nil || !isLink {
		t.Errorf("Expected symlink: isLink=%v, err=%v", isLink, err)
	}
}

func TestExpandPath(t *testing.T) {
	home, err := os.UserHomeDir()
	if err != nil {
		t.Skip("no home directory available")
	}

	expanded := ExpandPath("~/projects/app")
	if expanded != filepath.Join(home, "projects/app") {
		t.Errorf("Expected home-relative expansion, got %q", expanded)
	}

	plain := ExpandPath("/absolute/path")
	if plain != "/absolute/path" {
		t.Errorf("Expected unchanged path, got %q", plain)
	}
}

func TestIsReservedDirectory(t *testing.T) {
	if runtime.GOOS == "windows" {
		t.Skip("unix reserved directories")
	}

	reserved := []string{"/", "/etc", "/bin", "/proc"}
	for _, p := range reserved {
		if !IsReservedDirectory(p) {
			t.Errorf("Expected %q to be reserved", p)
		}
	}

	if IsReservedDirectory(t.TempDir()) {
		t.Error("Expected temp directory to not be reserved")
	}
}
