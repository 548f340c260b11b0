package tools

import (
	"context"

	"github.com/mark3labs/mcp-go/mcp"

	"inkwell/internal/project"
)

// ReadFileTool handles the read_file MCP tool.
type ReadFileTool struct {
	manager *project.Manager
}

// NewReadFileTool creates a ReadFileTool with the given manager.
func NewReadFileTool(manager *project.Manager) *ReadFileTool {
	return &ReadFileTool{manager: manager}
}

// Definition returns the MCP tool definition for registration.
func (t *ReadFileTool) Definition() mcp.Tool {
	return mcp.NewTool("read_file",
		mcp.WithDescription(
			"Read the content of a file in the active project. "+
				"Filenames without an extension get .md appended.",
		),
		mcp.WithString("filename",
			mcp.Required(),
			mcp.Description("File name, relative to the project root"),
		),
	)
}

// Handle processes the read_file tool call.
func (t *ReadFileTool) Handle(ctx context.Context, req mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	filename := req.GetString("filename", "")
	if filename == "" {
		return mcp.NewToolResultError("'filename' is required"), nil
	}

	p, err := t.manager.Active()
	if err != nil {
		return errResult(err), nil
	}

	content, err := p.ReadFile(filename)
	if err != nil {
		return errResult(err), nil
	}
	return mcp.NewToolResultText(content), nil
}
