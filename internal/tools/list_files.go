package tools

import (
	"context"
	"time"

	"github.com/mark3labs/mcp-go/mcp"

	"inkwell/internal/project"
)

// ListFilesTool handles the list_project_files MCP tool.
type ListFilesTool struct {
	manager *project.Manager
}

// NewListFilesTool creates a ListFilesTool with the given manager.
func NewListFilesTool(manager *project.Manager) *ListFilesTool {
	return &ListFilesTool{manager: manager}
}

// Definition returns the MCP tool definition for registration.
func (t *ListFilesTool) Definition() mcp.Tool {
	return mcp.NewTool("list_project_files",
		mcp.WithDescription(
			"List all files in the active project recursively, in the same "+
				"deterministic order used by the export tools (chapter_2 before chapter_10).",
		),
	)
}

// fileEntry is one row of the listing response.
type fileEntry struct {
	Name      string    `json:"name"`
	Path      string    `json:"path"`
	SizeBytes int64     `json:"size_bytes"`
	SizeKB    float64   `json:"size_kb"`
	Modified  time.Time `json:"modified"`
}

// Handle processes the list_project_files tool call.
func (t *ListFilesTool) Handle(ctx context.Context, req mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	p, err := t.manager.Active()
	if err != nil {
		return errResult(err), nil
	}

	files, err := p.List()
	if err != nil {
		return errResult(err), nil
	}

	entries := make([]fileEntry, 0, len(files))
	for _, f := range files {
		entries = append(entries, fileEntry{
			Name:      f.Name,
			Path:      f.RelPath,
			SizeBytes: f.Size,
			SizeKB:    sizeKB(f.Size),
			Modified:  f.ModTime,
		})
	}

	listing := struct {
		Project    string      `json:"project"`
		TotalFiles int         `json:"total_files"`
		Files      []fileEntry `json:"files"`
	}{
		Project:    p.Name,
		TotalFiles: len(entries),
		Files:      entries,
	}
	return jsonResult(listing)
}
