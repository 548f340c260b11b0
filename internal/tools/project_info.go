package tools

import (
	"context"
	"time"

	"github.com/mark3labs/mcp-go/mcp"

	"inkwell/internal/project"
)

// ProjectInfoTool handles the get_project_info MCP tool.
type ProjectInfoTool struct {
	manager *project.Manager
}

// NewProjectInfoTool creates a ProjectInfoTool with the given manager.
func NewProjectInfoTool(manager *project.Manager) *ProjectInfoTool {
	return &ProjectInfoTool{manager: manager}
}

// Definition returns the MCP tool definition for registration.
func (t *ProjectInfoTool) Definition() mcp.Tool {
	return mcp.NewTool("get_project_info",
		mcp.WithDescription(
			"Get information about the active writing project: name, location, "+
				"creation time, and file count.",
		),
	)
}

// Handle processes the get_project_info tool call.
func (t *ProjectInfoTool) Handle(ctx context.Context, req mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	p, err := t.manager.Active()
	if err != nil {
		return errResult(err), nil
	}

	files, err := p.List()
	if err != nil {
		return errResult(err), nil
	}

	info := struct {
		Name      string    `json:"name"`
		RootPath  string    `json:"root_path"`
		OutputDir string    `json:"output_dir"`
		CreatedAt time.Time `json:"created_at"`
		QueriedAt time.Time `json:"queried_at"`
		FileCount int       `json:"file_count"`
		Status    string    `json:"status"`
	}{
		Name:      p.Name,
		RootPath:  p.RootPath,
		OutputDir: t.manager.OutputDir(),
		CreatedAt: p.CreatedAt,
		QueriedAt: time.Now(),
		FileCount: len(files),
		Status:    "active",
	}
	return jsonResult(info)
}
