package tools

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/nguoividai/mcp-server/internal/logging"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const testMaxFileSize = 1024 * 1024

// writeProjectFile creates a file under root, creating parent directories
// as needed.
func writeProjectFile(t *testing.T, root, relPath, content string) {
	t.Helper()

	fullPath := filepath.Join(root, filepath.FromSlash(relPath))
	if err := os.MkdirAll(filepath.Dir(fullPath), 0755); err != nil {
		t.Fatalf("Failed to create parent dirs for %s: %v", relPath, err)
	}
	if err := os.WriteFile(fullPath, []byte(content), 0644); err != nil {
		t.Fatalf("Failed to create file %s: %v", relPath, err)
	}
}

func newTestMarkdownReader(t *testing.T, root string) *MarkdownReader {
	t.Helper()
	logger, _ := logging.NewTestLogger()
	return NewMarkdownReader(logger, root, testMaxFileSize)
}

func TestMarkdownReader_WithFrontmatter(t *testing.T) {
	root := t.TempDir()
	writeProjectFile(t, root, "docs/guide.md", `---
title: Setup Guide
description: How to set up the project
tags:
  - setup
  - onboarding
---
# Setup

Run the install script.
`)

	reader := newTestMarkdownReader(t, root)
	doc, err := reader.Read("docs/guide.md")
	require.NoError(t, err)

	assert.Equal(t, "guide.md", doc.FileName)
	assert.Equal(t, "docs/guide.md", doc.FilePath)
	assert.Equal(t, "Setup Guide", doc.Title)
	assert.Equal(t, "How to set up the project", doc.Description)
	assert.Equal(t, []string{"setup", "onboarding"}, doc.Tags)
	assert.Contains(t, doc.Content, "# Setup")
	assert.NotContains(t, doc.Content, "title: Setup Guide")
}

func TestMarkdownReader_WithoutFrontmatter(t *testing.T) {
	root := t.TempDir()
	writeProjectFile(t, root, "README.md", "# Plain document\n\nNo metadata here.\n")

	reader := newTestMarkdownReader(t, root)
	doc, err := reader.Read("README.md")
	require.NoError(t, err)

	assert.Empty(t, doc.Title)
	assert.Empty(t, doc.Description)
	assert.Empty(t, doc.Tags)
	assert.Contains(t, doc.Content, "# Plain document")
}

func TestMarkdownReader_RejectsNonMarkdown(t *testing.T) {
	root := t.TempDir()
	writeProjectFile(t, root, "config.yaml", "key: value\n")

	reader := newTestMarkdownReader(t, root)
	_, err := reader.Read("config.yaml")
	require.Error(t, err)
	assert.Contains(t, err.Error(), "not a markdown file")
}

func TestMarkdownReader_RejectsTraversal(t *testing.T) {
	root := t.TempDir()

	reader := newTestMarkdownReader(t, root)
	_, err := reader.Read("../outside.md")
	require.Error(t, err)
	assert.Contains(t, err.Error(), "path security")
}

func TestMarkdownReader_MissingFile(t *testing.T) {
	root := t.TempDir()

	reader := newTestMarkdownReader(t, root)
	_, err := reader.Read("docs/missing.md")
	require.Error(t, err)
}

func TestMarkdownReader_SizeLimit(t *testing.T) {
	root := t.TempDir()
	writeProjectFile(t, root, "big.md", "# Big\n\n"+string(make([]byte, 256)))

	logger, _ := logging.NewTestLogger()
	reader := NewMarkdownReader(logger, root, 16)

	_, err := reader.Read("big.md")
	require.Error(t, err)
	assert.Contains(t, err.Error(), "size")
}
