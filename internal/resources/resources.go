// Package resources implements MCP resource handlers for the writing
// workspace.
//
// Resources provide read-only data that the host can consume for
// context. They use URI-based addressing (inkwell://...) following MCP
// conventions.
package resources

import (
	"context"
	"encoding/json"
	"fmt"
	"time"

	"github.com/mark3labs/mcp-go/mcp"

	"inkwell/internal/project"
)

// Handler manages the workspace resource endpoints.
type Handler struct {
	manager *project.Manager
}

// NewHandler creates a resource Handler with its dependencies.
func NewHandler(manager *project.Manager) *Handler {
	return &Handler{manager: manager}
}

// StatusResource returns the MCP resource definition for project status.
func (h *Handler) StatusResource() mcp.Resource {
	return mcp.NewResource(
		"inkwell://project/status",
		"Writing Project Status",
		mcp.WithResourceDescription("Active project name, location, creation time, and file count"),
		mcp.WithMIMEType("application/json"),
	)
}

// status is the JSON shape served by HandleStatus.
type status struct {
	Name      string    `json:"name"`
	RootPath  string    `json:"root_path"`
	CreatedAt time.Time `json:"created_at"`
	FileCount int       `json:"file_count"`
}

// HandleStatus returns the active project status as JSON, or an error
// resource when no project has been created yet.
func (h *Handler) HandleStatus(ctx context.Context, req mcp.ReadResourceRequest) ([]mcp.ResourceContents, error) {
	p, err := h.manager.Active()
	if err != nil {
		return errorResource(req.Params.URI, err.Error()), nil
	}

	files, err := p.List()
	if err != nil {
		return errorResource(req.Params.URI, err.Error()), nil
	}

	data, err := json.MarshalIndent(status{
		Name:      p.Name,
		RootPath:  p.RootPath,
		CreatedAt: p.CreatedAt,
		FileCount: len(files),
	}, "", "  ")
	if err != nil {
		return nil, fmt.Errorf("marshaling status: %w", err)
	}

	return []mcp.ResourceContents{
		mcp.TextResourceContents{
			URI:      req.Params.URI,
			MIMEType: "application/json",
			Text:     string(data),
		},
	}, nil
}

// errorResource returns a resource with an error message.
func errorResource(uri, message string) []mcp.ResourceContents {
	return []mcp.ResourceContents{
		mcp.TextResourceContents{
			URI:      uri,
			MIMEType: "text/plain",
			Text:     fmt.Sprintf("Error: %s", message),
		},
	}
}
