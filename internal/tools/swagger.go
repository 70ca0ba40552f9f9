package tools

import (
	"fmt"
	"os"
	"sort"
	"strings"

	"github.com/nguoividai/mcp-server/internal/logging"
	"github.com/nguoividai/mcp-server/pkg/fileops"

	"gopkg.in/yaml.v3"
)

// Endpoint is one operation from an OpenAPI document: an HTTP method, its
// path template, and the human-readable summary if the document has one.
type Endpoint struct {
	Method      string
	Path        string
	Summary     string
	OperationID string
}

// openAPIOperation holds the operation fields we surface. Everything else
// in the document (parameters, responses, schemas) is ignored.
type openAPIOperation struct {
	Summary     string `yaml:"summary"`
	Description string `yaml:"description"`
	OperationID string `yaml:"operationId"`
}

// openAPIPathItem lists the HTTP methods an OpenAPI path item may carry.
// Non-method keys like "parameters" fall outside these fields and are
// skipped by the decoder.
type openAPIPathItem struct {
	Get     *openAPIOperation `yaml:"get"`
	Put     *openAPIOperation `yaml:"put"`
	Post    *openAPIOperation `yaml:"post"`
	Delete  *openAPIOperation `yaml:"delete"`
	Options *openAPIOperation `yaml:"options"`
	Head    *openAPIOperation `yaml:"head"`
	Patch   *openAPIOperation `yaml:"patch"`
}

// openAPIDocument is the subset of an OpenAPI/Swagger document needed to
// enumerate endpoints. YAML is a superset of JSON, so the same decoder
// handles both serializations.
type openAPIDocument struct {
	OpenAPI string `yaml:"openapi"`
	Swagger string `yaml:"swagger"`
	Info    struct {
		Title   string `yaml:"title"`
		Version string `yaml:"version"`
	} `yaml:"info"`
	Paths map[string]openAPIPathItem `yaml:"paths"`
}

// SwaggerInspector loads local OpenAPI documents and lists their endpoints.
// It never fetches specs over the network.
type SwaggerInspector struct {
	logger      *logging.AppLogger
	maxFileSize int64
}

// NewSwaggerInspector creates a SwaggerInspector. Documents larger than
// maxFileSize bytes are rejected before parsing.
func NewSwaggerInspector(logger *logging.AppLogger, maxFileSize int64) *SwaggerInspector {
	return &SwaggerInspector{
		logger:      logger,
		maxFileSize: maxFileSize,
	}
}

// Endpoints parses the OpenAPI document at specPath and returns its
// operations, sorted by path and then by a fixed method order. Works for
// both YAML and JSON documents.
func (s *SwaggerInspector) Endpoints(specPath string) ([]Endpoint, error) {
	expanded := fileops.ExpandPath(specPath)

	if err := fileops.ValidateFileAccess(expanded); err != nil {
		return nil, fmt.Errorf("cannot access spec: %w", err)
	}
	if err := fileops.ValidateFileSizeLimit(expanded, s.maxFileSize); err != nil {
		return nil, fmt.Errorf("spec size check failed: %w", err)
	}

	raw, err := os.ReadFile(expanded)
	if err != nil {
		return nil, fmt.Errorf("failed to read spec: %w", err)
	}

	var doc openAPIDocument
	if err := yaml.Unmarshal(raw, &doc); err != nil {
		return nil, fmt.Errorf("failed to parse OpenAPI document: %w", err)
	}

	if doc.OpenAPI == "" && doc.Swagger == "" {
		return nil, fmt.Errorf("not an OpenAPI document: missing openapi/swagger version field")
	}
	if len(doc.Paths) == 0 {
		return nil, fmt.Errorf("OpenAPI document has no paths")
	}

	endpoints := collectEndpoints(doc.Paths)

	s.logger.Info("OpenAPI document inspected",
		"spec", specPath,
		"title", doc.Info.Title,
		"endpoints", len(endpoints))

	return endpoints, nil
}

// methodOrder fixes the per-path ordering of operations in output.
var methodOrder = []string{"GET", "POST", "PUT", "PATCH", "DELETE", "HEAD", "OPTIONS"}

func collectEndpoints(paths map[string]openAPIPathItem) []Endpoint {
	sortedPaths := make([]string, 0, len(paths))
	for p := range paths {
		sortedPaths = append(sortedPaths, p)
	}
	sort.Strings(sortedPaths)

	var endpoints []Endpoint
	for _, p := range sortedPaths {
		item := paths[p]
		ops := map[string]*openAPIOperation{
			"GET":     item.Get,
			"POST":    item.Post,
			"PUT":     item.Put,
			"PATCH":   item.Patch,
			"DELETE":  item.Delete,
			"HEAD":    item.Head,
			"OPTIONS": item.Options,
		}

		for _, method := range methodOrder {
			op := ops[method]
			if op == nil {
				continue
			}

			summary := op.Summary
			if summary == "" {
				summary = op.Description
			}

			endpoints = append(endpoints, Endpoint{
				Method:      method,
				Path:        p,
				Summary:     summary,
				OperationID: op.OperationID,
			})
		}
	}

	return endpoints
}

// FormatEndpoints renders an endpoint list as one line per operation,
// suitable for a plain-text tool response.
func FormatEndpoints(endpoints []Endpoint) string {
	var b strings.Builder
	for _, e := range endpoints {
		if e.Summary != "" {
			fmt.Fprintf(&b, "%s %s - %s\n", e.Method, e.Path, e.Summary)
		} else {
			fmt.Fprintf(&b, "%s %s\n", e.Method, e.Path)
		}
	}
	return b.String()
}
