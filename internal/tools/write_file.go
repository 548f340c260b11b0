package tools

import (
	"context"
	"fmt"

	"github.com/mark3labs/mcp-go/mcp"

	"inkwell/internal/project"
)

// WriteFileTool handles the write_file MCP tool.
type WriteFileTool struct {
	manager *project.Manager
}

// NewWriteFileTool creates a WriteFileTool with the given manager.
func NewWriteFileTool(manager *project.Manager) *WriteFileTool {
	return &WriteFileTool{manager: manager}
}

// Definition returns the MCP tool definition for registration.
func (t *WriteFileTool) Definition() mcp.Tool {
	return mcp.NewTool("write_file",
		mcp.WithDescription(
			"Write content to a file in the active project. "+
				"Filenames without an extension get .md appended. "+
				"Mode 'create' fails if the file exists; 'append' adds to the end; "+
				"'overwrite' replaces the content.",
		),
		mcp.WithString("filename",
			mcp.Required(),
			mcp.Description("File name, relative to the project root (subdirectories allowed)"),
		),
		mcp.WithString("content",
			mcp.Required(),
			mcp.Description("Content to write"),
		),
		mcp.WithString("mode",
			mcp.Description("Write mode: 'create', 'append', or 'overwrite'. Defaults to 'create'."),
			mcp.DefaultString("create"),
			mcp.Enum("create", "append", "overwrite"),
		),
	)
}

// Handle processes the write_file tool call.
func (t *WriteFileTool) Handle(ctx context.Context, req mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	filename := req.GetString("filename", "")
	if filename == "" {
		return mcp.NewToolResultError("'filename' is required"), nil
	}
	content := req.GetString("content", "")
	mode := project.WriteMode(req.GetString("mode", string(project.ModeCreate)))

	p, err := t.manager.Active()
	if err != nil {
		return errResult(err), nil
	}

	n, err := p.WriteFile(filename, content, mode)
	if err != nil {
		return errResult(err), nil
	}

	response := fmt.Sprintf("File '%s' written successfully (%d bytes, mode: %s) in project '%s'.",
		filename, n, mode, p.Name)
	return mcp.NewToolResultText(response), nil
}
