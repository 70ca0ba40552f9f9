package mcp

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"github.com/nguoividai/mcp-server/internal/contextengine"
	"github.com/nguoividai/mcp-server/internal/tools"
	"github.com/nguoividai/mcp-server/pkg/fileops"

	"github.com/mark3labs/mcp-go/mcp"
)

// newProjectContextTool defines the get_project_context tool schema.
func newProjectContextTool() mcp.Tool {
	return mcp.NewTool("get_project_context",
		mcp.WithDescription("Scan a project directory and return its structure diagram plus the content of selected source files. Selection honors maxFiles, maxDepth, and include/exclude patterns."),
		mcp.WithString("projectRoot",
			mcp.Description("Directory to scan. Defaults to the configured project root, or the server working directory."),
		),
		mcp.WithNumber("maxFiles",
			mcp.Description("Maximum number of files to include. Traversal stops as soon as the limit is reached."),
		),
		mcp.WithNumber("maxDepth",
			mcp.Description("Maximum directory depth to descend, with the root at depth 0."),
		),
		mcp.WithArray("includePatterns",
			mcp.Description("Only file paths matching at least one pattern are included. Plain strings match as substrings; prefix a pattern with 're:' for a regular expression. Empty means include everything."),
			mcp.Items(map[string]any{"type": "string"}),
		),
		mcp.WithArray("excludePatterns",
			mcp.Description("File paths matching any pattern are excluded, even when an include pattern also matches. Same 're:' convention as includePatterns."),
			mcp.Items(map[string]any{"type": "string"}),
		),
		mcp.WithString("query",
			mcp.Description("Optional question or task to prepend to the returned context."),
		),
		mcp.WithBoolean("rescan",
			mcp.Description("Force a fresh directory scan instead of reusing the memoized tree."),
		),
	)
}

// handleGetProjectContext runs scan, assemble, and render for one tool call.
func (s *Server) handleGetProjectContext(ctx context.Context, req mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	rootArg := req.GetString("projectRoot", "")
	if rootArg == "" {
		var err error
		rootArg, err = s.config.ResolveProjectRoot()
		if err != nil {
			return s.toolError("resolving project root", err), nil
		}
	}

	root, err := fileops.ValidateScanRoot(rootArg)
	if err != nil {
		return s.toolError("validating project root", err), nil
	}

	include, err := contextengine.ParsePatterns(req.GetStringSlice("includePatterns", s.config.IncludePatterns))
	if err != nil {
		return s.toolError("parsing include patterns", err), nil
	}
	exclude, err := contextengine.ParsePatterns(req.GetStringSlice("excludePatterns", s.config.ExcludePatterns))
	if err != nil {
		return s.toolError("parsing exclude patterns", err), nil
	}

	policy := contextengine.SelectionPolicy{
		MaxFiles: req.GetInt("maxFiles", s.config.MaxFiles),
		MaxDepth: req.GetInt("maxDepth", s.config.MaxDepth),
		Include:  include,
		Exclude:  exclude,
	}

	tree, err := s.scanRoot(root, req.GetBool("rescan", false))
	if err != nil {
		return s.toolError("scanning project", err), nil
	}

	assembler := contextengine.NewAssembler(root, s.cache, s.logger)
	projectCtx, err := assembler.Assemble(tree, policy)
	if err != nil {
		return s.toolError("assembling context", err), nil
	}

	out := contextengine.Render(projectCtx)
	if query := strings.TrimSpace(req.GetString("query", "")); query != "" {
		out = fmt.Sprintf("**Query:** %s\n\n%s", query, out)
	}

	s.logger.Info("Project context assembled",
		"root", root,
		"selectedFiles", len(projectCtx.Files),
		"maxFiles", policy.MaxFiles,
		"maxDepth", policy.MaxDepth)

	return mcp.NewToolResultText(out), nil
}

// newReadMarkdownTool defines the read_markdown tool schema.
func newReadMarkdownTool() mcp.Tool {
	return mcp.NewTool("read_markdown",
		mcp.WithDescription("Read a markdown file from the project root and return its frontmatter metadata and body."),
		mcp.WithString("path",
			mcp.Required(),
			mcp.Description("Path of the markdown file, relative to the project root."),
		),
	)
}

func (s *Server) handleReadMarkdown(ctx context.Context, req mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	relPath, err := req.RequireString("path")
	if err != nil {
		return mcp.NewToolResultError(err.Error()), nil
	}

	root, err := s.resolveRoot()
	if err != nil {
		return s.toolError("resolving project root", err), nil
	}

	doc, err := s.newMarkdownReader(root).Read(relPath)
	if err != nil {
		return s.toolError("reading markdown", err), nil
	}

	var b strings.Builder
	if doc.Title != "" {
		fmt.Fprintf(&b, "Title: %s\n", doc.Title)
	}
	if doc.Description != "" {
		fmt.Fprintf(&b, "Description: %s\n", doc.Description)
	}
	if len(doc.Tags) > 0 {
		fmt.Fprintf(&b, "Tags: %s\n", strings.Join(doc.Tags, ", "))
	}
	if b.Len() > 0 {
		b.WriteString("\n")
	}
	b.WriteString(doc.Content)

	return mcp.NewToolResultText(b.String()), nil
}

// newReadFileTool defines the read_file tool schema.
func newReadFileTool() mcp.Tool {
	return mcp.NewTool("read_file",
		mcp.WithDescription("Read a single file from the project root. Not limited to source extensions, but capped in size."),
		mcp.WithString("path",
			mcp.Required(),
			mcp.Description("Path of the file, relative to the project root."),
		),
	)
}

func (s *Server) handleReadFile(ctx context.Context, req mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	relPath, err := req.RequireString("path")
	if err != nil {
		return mcp.NewToolResultError(err.Error()), nil
	}

	root, err := s.resolveRoot()
	if err != nil {
		return s.toolError("resolving project root", err), nil
	}

	content, err := s.newFileReader(root).Read(relPath)
	if err != nil {
		return s.toolError("reading file", err), nil
	}

	return mcp.NewToolResultText(content), nil
}

// newSwaggerEndpointsTool defines the swagger_endpoints tool schema.
func newSwaggerEndpointsTool() mcp.Tool {
	return mcp.NewTool("swagger_endpoints",
		mcp.WithDescription("List the endpoints of a local OpenAPI/Swagger document (YAML or JSON): method, path, and summary per operation."),
		mcp.WithString("specPath",
			mcp.Description("Path to the OpenAPI document. Defaults to the configured swagger_path."),
		),
	)
}

func (s *Server) handleSwaggerEndpoints(ctx context.Context, req mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	specPath := req.GetString("specPath", s.config.SwaggerPath)
	if strings.TrimSpace(specPath) == "" {
		return mcp.NewToolResultError("no OpenAPI document configured: pass specPath or set swagger_path in the config"), nil
	}

	inspector := tools.NewSwaggerInspector(s.logger, s.config.MaxFileSize)
	endpoints, err := inspector.Endpoints(specPath)
	if err != nil {
		return s.toolError("inspecting OpenAPI document", err), nil
	}

	return mcp.NewToolResultText(tools.FormatEndpoints(endpoints)), nil
}

// newCryptoPriceTool defines the crypto_price tool schema.
func newCryptoPriceTool() mcp.Tool {
	return mcp.NewTool("crypto_price",
		mcp.WithDescription("Return a reference USD price for a crypto asset from a static table. Known symbols: "+strings.Join(tools.QuoteSymbols(), ", ")+"."),
		mcp.WithString("symbol",
			mcp.Required(),
			mcp.Description("Asset symbol, e.g. BTC. Case-insensitive."),
		),
	)
}

func (s *Server) handleCryptoPrice(ctx context.Context, req mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	symbol, err := req.RequireString("symbol")
	if err != nil {
		return mcp.NewToolResultError(err.Error()), nil
	}

	quote, err := tools.LookupQuote(symbol)
	if err != nil {
		return mcp.NewToolResultError(err.Error()), nil
	}

	return mcp.NewToolResultText(tools.FormatQuote(quote)), nil
}

// resolveRoot resolves and validates the configured project root for the
// reader tools.
func (s *Server) resolveRoot() (string, error) {
	rootArg, err := s.config.ResolveProjectRoot()
	if err != nil {
		return "", err
	}
	return fileops.ValidateScanRoot(rootArg)
}

// toolError logs a failed tool call and maps engine errors to a client-facing
// error result. Typed engine errors keep their message; everything else is
// wrapped with the failing action for context.
func (s *Server) toolError(action string, err error) *mcp.CallToolResult {
	s.logger.Error("Tool call failed", "action", action, "error", err)

	var notFound *contextengine.NotFoundError
	var permission *contextengine.PermissionError
	var notScanned *contextengine.NotScannedError
	switch {
	case errors.As(err, &notFound):
		return mcp.NewToolResultError(notFound.Error())
	case errors.As(err, &permission):
		return mcp.NewToolResultError(permission.Error())
	case errors.As(err, &notScanned):
		return mcp.NewToolResultError(notScanned.Error())
	}

	return mcp.NewToolResultError(fmt.Sprintf("%s: %v", action, err))
}
