// Package mcp implements the Model Context Protocol (MCP) server using the
// mcp-go library.
//
// The server communicates over stdin/stdout using JSON-RPC 2.0 as specified
// by the MCP standard, which is why nothing in this process may write to
// stdout except the protocol itself. All logging goes to stderr or a debug
// file.
//
// The flagship tool is get_project_context, backed by the contextengine
// package: it scans a project tree, selects source files under a selection
// policy, and returns a rendered structure diagram plus file contents.
// Supplemental tools expose markdown/file readers, local OpenAPI endpoint
// listings, and a static crypto price table.
package mcp
