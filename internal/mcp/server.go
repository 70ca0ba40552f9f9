package mcp

import (
	"fmt"
	"sync"

	"github.com/nguoividai/mcp-server/internal/config"
	"github.com/nguoividai/mcp-server/internal/contextengine"
	"github.com/nguoividai/mcp-server/internal/logging"
	"github.com/nguoividai/mcp-server/internal/tools"

	"github.com/mark3labs/mcp-go/server"
)

// Server identity reported during the MCP initialize handshake.
const (
	serverName    = "mcp-server"
	serverVersion = "1.0.0"
)

// Server represents an MCP server instance using mcp-go.
//
// It owns the shared content cache and a per-root scan memo: scanning a
// project tree is the expensive part of get_project_context, so the scanned
// tree is kept for the process lifetime and refreshed only when a caller
// passes rescan=true.
type Server struct {
	config *config.Config
	logger *logging.AppLogger

	cache *contextengine.ContentCache

	mu    sync.Mutex
	trees map[string]*contextengine.TreeNode

	mcpServer *server.MCPServer
}

// NewServer creates a new MCP server instance.
func NewServer(cfg *config.Config, logger *logging.AppLogger) *Server {
	return &Server{
		config: cfg,
		logger: logger,
		cache:  contextengine.NewContentCache(),
		trees:  make(map[string]*contextengine.TreeNode),
	}
}

// Start initializes the MCP server, registers the tool set, and serves the
// stdio transport until the client disconnects.
func (s *Server) Start() error {
	s.logger.Info("Initializing MCP server", "name", serverName, "version", serverVersion)

	s.mcpServer = server.NewMCPServer(
		serverName,
		serverVersion,
		server.WithToolCapabilities(true),
		server.WithRecovery(),
	)

	s.registerTools()

	s.logger.Info("MCP server created, starting stdio communication")

	if err := server.ServeStdio(s.mcpServer); err != nil {
		return fmt.Errorf("MCP server failed: %w", err)
	}

	return nil
}

// Stop gracefully shuts down the MCP server.
func (s *Server) Stop() error {
	s.logger.Info("Stopping MCP server")
	// The mcp-go server handles cleanup when the stdio transport closes.
	return nil
}

// registerTools wires every tool surface onto the mcp-go server.
func (s *Server) registerTools() {
	s.mcpServer.AddTool(newProjectContextTool(), s.handleGetProjectContext)
	s.mcpServer.AddTool(newReadMarkdownTool(), s.handleReadMarkdown)
	s.mcpServer.AddTool(newReadFileTool(), s.handleReadFile)
	s.mcpServer.AddTool(newSwaggerEndpointsTool(), s.handleSwaggerEndpoints)
	s.mcpServer.AddTool(newCryptoPriceTool(), s.handleCryptoPrice)

	s.logger.Info("Tools registered", "count", 5)
}

// scanRoot returns the scanned tree for root, reusing the memoized result
// unless rescan forces a fresh walk.
func (s *Server) scanRoot(root string, rescan bool) (*contextengine.TreeNode, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	if !rescan {
		if tree, ok := s.trees[root]; ok {
			s.logger.Debug("Reusing memoized scan", "root", root)
			return tree, nil
		}
	}

	s.logger.Debug("Scanning project tree", "root", root, "rescan", rescan)
	tree, err := contextengine.Scan(root)
	if err != nil {
		return nil, err
	}

	s.trees[root] = tree
	s.logger.Info("Project tree scanned", "root", root, "files", tree.CountFiles())
	return tree, nil
}

// newMarkdownReader builds a markdown reader scoped to the given root.
func (s *Server) newMarkdownReader(root string) *tools.MarkdownReader {
	return tools.NewMarkdownReader(s.logger, root, s.config.MaxFileSize)
}

// newFileReader builds a plain file reader scoped to the given root.
func (s *Server) newFileReader(root string) *tools.FileReader {
	return tools.NewFileReader(s.logger, root, s.config.MaxFileSize)
}
