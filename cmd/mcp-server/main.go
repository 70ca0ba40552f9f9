// Package main is the entry point for the mcp-server binary.
//
// The application loads user configuration, applies any command-line
// overrides, and serves the Model Context Protocol over stdio. Startup
// sequence:
//
// 1. Initialize logging (stderr, or a debug file when DEBUG is set)
// 2. Load configuration from the XDG config directory, defaults if absent
// 3. Apply flag overrides for project root and selection policy
// 4. Start the MCP server on the stdio transport
//
// MCP clients typically launch the binary with no arguments, so `serve` is
// the default command.
package main

import (
	"fmt"
	"os"

	"github.com/nguoividai/mcp-server/internal/config"
	"github.com/nguoividai/mcp-server/internal/logging"
	"github.com/nguoividai/mcp-server/internal/mcp"

	"github.com/spf13/cobra"
)

const version = "1.0.0"

var (
	flagProjectRoot string
	flagMaxFiles    int
	flagMaxDepth    int
	flagInclude     []string
	flagExclude     []string
	flagSwaggerPath string
)

func main() {
	logger := logging.NewAppLogger()

	rootCmd := &cobra.Command{
		Use:   "mcp-server",
		Short: "MCP server that exposes project context to AI assistants",
		Long: `mcp-server speaks the Model Context Protocol over stdin/stdout.

Its main tool, get_project_context, scans a project directory and returns a
structure diagram plus the content of selected source files, bounded by
file-count, depth, and pattern filters. Supplemental tools read markdown and
plain files from the project, list OpenAPI endpoints from a local document,
and serve a static crypto price table.`,
		// MCP clients launch the binary bare, so default to serving.
		RunE: func(cmd *cobra.Command, args []string) error {
			return runServe(logger)
		},
	}

	serveCmd := &cobra.Command{
		Use:   "serve",
		Short: "Serve the Model Context Protocol on stdio",
		RunE: func(cmd *cobra.Command, args []string) error {
			return runServe(logger)
		},
	}

	versionCmd := &cobra.Command{
		Use:   "version",
		Short: "Print the server version",
		Run: func(cmd *cobra.Command, args []string) {
			fmt.Fprintf(cmd.OutOrStdout(), "mcp-server %s\n", version)
		},
	}

	initCmd := &cobra.Command{
		Use:   "init",
		Short: "Write a default configuration file",
		RunE: func(cmd *cobra.Command, args []string) error {
			return runInit(cmd, logger)
		},
	}

	for _, cmd := range []*cobra.Command{rootCmd, serveCmd} {
		cmd.Flags().StringVar(&flagProjectRoot, "project-root", "", "directory to serve as project context (default: cwd)")
		cmd.Flags().IntVar(&flagMaxFiles, "max-files", 0, "default maximum number of files per context call")
		cmd.Flags().IntVar(&flagMaxDepth, "max-depth", 0, "default maximum directory depth per context call")
		cmd.Flags().StringSliceVar(&flagInclude, "include", nil, "default include patterns (prefix with 're:' for regex)")
		cmd.Flags().StringSliceVar(&flagExclude, "exclude", nil, "default exclude patterns (prefix with 're:' for regex)")
		cmd.Flags().StringVar(&flagSwaggerPath, "swagger", "", "path to a local OpenAPI document for the swagger_endpoints tool")
	}

	rootCmd.AddCommand(serveCmd, versionCmd, initCmd)

	if err := rootCmd.Execute(); err != nil {
		logger.Error("Command failed", "error", err)
		os.Exit(1)
	}
}

// runServe loads configuration, applies flag overrides, and blocks serving
// the stdio transport until the client disconnects.
func runServe(logger *logging.AppLogger) error {
	cfg, err := config.Load()
	if err != nil {
		return fmt.Errorf("failed to load config: %w", err)
	}

	applyOverrides(cfg)

	root, err := cfg.ResolveProjectRoot()
	if err != nil {
		return err
	}
	logger.Info("Configuration loaded", "projectRoot", root, "maxFiles", cfg.MaxFiles, "maxDepth", cfg.MaxDepth)

	server := mcp.NewServer(cfg, logger)
	defer server.Stop()

	return server.Start()
}

// runInit writes a default config file at the standard location so users
// have something to edit.
func runInit(cmd *cobra.Command, logger *logging.AppLogger) error {
	cfg := config.DefaultConfig()
	applyOverrides(&cfg)

	if err := cfg.Save(); err != nil {
		return fmt.Errorf("failed to write config: %w", err)
	}

	path, _ := config.ConfigPath()
	logger.Info("Configuration written", "path", path)
	fmt.Fprintf(cmd.OutOrStdout(), "Wrote config to %s\n", path)
	return nil
}

// applyOverrides copies non-zero flag values onto the loaded config.
func applyOverrides(cfg *config.Config) {
	if flagProjectRoot != "" {
		cfg.ProjectRoot = flagProjectRoot
	}
	if flagMaxFiles > 0 {
		cfg.MaxFiles = flagMaxFiles
	}
	if flagMaxDepth > 0 {
		cfg.MaxDepth = flagMaxDepth
	}
	if len(flagInclude) > 0 {
		cfg.IncludePatterns = flagInclude
	}
	if len(flagExclude) > 0 {
		cfg.ExcludePatterns = flagExclude
	}
	if flagSwaggerPath != "" {
		cfg.SwaggerPath = flagSwaggerPath
	}
}
