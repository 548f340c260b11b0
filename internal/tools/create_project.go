package tools

import (
	"context"
	"fmt"

	"github.com/mark3labs/mcp-go/mcp"

	"inkwell/internal/project"
)

// CreateProjectTool handles the create_project MCP tool.
// It creates (or replaces) the active writing project.
type CreateProjectTool struct {
	manager *project.Manager
}

// NewCreateProjectTool creates a CreateProjectTool with the given manager.
func NewCreateProjectTool(manager *project.Manager) *CreateProjectTool {
	return &CreateProjectTool{manager: manager}
}

// Definition returns the MCP tool definition for registration.
func (t *CreateProjectTool) Definition() mcp.Tool {
	return mcp.NewTool("create_project",
		mcp.WithDescription(
			"Create a new writing project directory and make it the active project. "+
				"All file tools operate on the active project. "+
				"Creating a new project replaces the previous active one.",
		),
		mcp.WithString("project_name",
			mcp.Required(),
			mcp.Description("Name for the project (sanitized into a directory name)"),
		),
	)
}

// Handle processes the create_project tool call.
func (t *CreateProjectTool) Handle(ctx context.Context, req mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	name := req.GetString("project_name", "")
	if name == "" {
		return mcp.NewToolResultError("'project_name' is required"), nil
	}

	p, err := t.manager.Create(name)
	if err != nil {
		return errResult(err), nil
	}

	response := fmt.Sprintf(
		"Project '%s' created successfully at: %s\n\n"+
			"It is now the active project. Use write_file to add markdown files, "+
			"or create_writing_template to start from a skeleton.",
		p.Name, p.RootPath,
	)
	return mcp.NewToolResultText(response), nil
}
