package tools

import (
	"context"
	"time"

	"github.com/mark3labs/mcp-go/mcp"

	"inkwell/internal/project"
)

// FileStatsTool handles the get_file_stats MCP tool.
type FileStatsTool struct {
	manager *project.Manager
}

// NewFileStatsTool creates a FileStatsTool with the given manager.
func NewFileStatsTool(manager *project.Manager) *FileStatsTool {
	return &FileStatsTool{manager: manager}
}

// Definition returns the MCP tool definition for registration.
func (t *FileStatsTool) Definition() mcp.Tool {
	return mcp.NewTool("get_file_stats",
		mcp.WithDescription(
			"Get size and timestamps for a file in the active project.",
		),
		mcp.WithString("filename",
			mcp.Required(),
			mcp.Description("File name, relative to the project root"),
		),
	)
}

// Handle processes the get_file_stats tool call.
func (t *FileStatsTool) Handle(ctx context.Context, req mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	filename := req.GetString("filename", "")
	if filename == "" {
		return mcp.NewToolResultError("'filename' is required"), nil
	}

	p, err := t.manager.Active()
	if err != nil {
		return errResult(err), nil
	}

	info, err := p.Stat(filename)
	if err != nil {
		return errResult(err), nil
	}

	stats := struct {
		Name      string    `json:"name"`
		Path      string    `json:"path"`
		SizeBytes int64     `json:"size_bytes"`
		SizeKB    float64   `json:"size_kb"`
		Created   time.Time `json:"created"`
		Modified  time.Time `json:"modified"`
	}{
		Name:      info.Name,
		Path:      info.RelPath,
		SizeBytes: info.Size,
		SizeKB:    sizeKB(info.Size),
		// Creation time is not portably available; mod time is the
		// closest stable stand-in.
		Created:  info.ModTime,
		Modified: info.ModTime,
	}
	return jsonResult(stats)
}
