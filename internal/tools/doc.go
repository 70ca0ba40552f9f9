// Package tools implements the supplemental tool surfaces exposed over MCP
// next to the project-context engine: markdown and plain-file readers scoped
// to the project root, local Swagger/OpenAPI endpoint introspection, and a
// deterministic crypto price quote table.
//
// Everything in this package is local and side-effect free. File readers
// validate paths against the project root before touching the filesystem,
// the OpenAPI inspector only reads documents from disk, and the price table
// is a fixed in-memory stub with no network client behind it.
package tools
