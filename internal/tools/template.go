package tools

import (
	"context"
	"fmt"

	"github.com/mark3labs/mcp-go/mcp"

	"inkwell/internal/project"
	"inkwell/internal/templates"
)

// CreateTemplateTool handles the create_writing_template MCP tool.
// It renders a writing skeleton and saves it into the active project.
type CreateTemplateTool struct {
	manager  *project.Manager
	renderer *templates.Renderer
}

// NewCreateTemplateTool creates a CreateTemplateTool with its dependencies.
func NewCreateTemplateTool(manager *project.Manager, renderer *templates.Renderer) *CreateTemplateTool {
	return &CreateTemplateTool{manager: manager, renderer: renderer}
}

// Definition returns the MCP tool definition for registration.
func (t *CreateTemplateTool) Definition() mcp.Tool {
	return mcp.NewTool("create_writing_template",
		mcp.WithDescription(
			"Create a structured writing template in the active project: "+
				"novel (chapter outline), short_story, book (non-fiction), or poetry.",
		),
		mcp.WithString("template_type",
			mcp.Required(),
			mcp.Description("Template type"),
			mcp.Enum("novel", "short_story", "book", "poetry"),
		),
		mcp.WithString("title",
			mcp.Required(),
			mcp.Description("Title of the work"),
		),
		mcp.WithNumber("chapters",
			mcp.Description("Planned chapter count (novel templates only)"),
			mcp.DefaultNumber(templates.DefaultChapters),
		),
	)
}

// Handle processes the create_writing_template tool call.
func (t *CreateTemplateTool) Handle(ctx context.Context, req mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	typ := templates.Type(req.GetString("template_type", ""))
	title := req.GetString("title", "")
	chapters := int(req.GetFloat("chapters", templates.DefaultChapters))

	if typ == "" {
		return mcp.NewToolResultError("'template_type' is required"), nil
	}
	if title == "" {
		return mcp.NewToolResultError("'title' is required"), nil
	}
	if chapters < 1 {
		chapters = templates.DefaultChapters
	}

	p, err := t.manager.Active()
	if err != nil {
		return errResult(err), nil
	}

	content, err := t.renderer.Render(typ, templates.Data{Title: title, Chapters: chapters})
	if err != nil {
		return errResult(err), nil
	}

	filename := templates.Filename(typ, title)
	n, err := p.WriteFile(filename, content, project.ModeCreate)
	if err != nil {
		return errResult(err), nil
	}

	response := fmt.Sprintf("Template '%s' created successfully (%d bytes) in project '%s'.",
		filename, n, p.Name)
	return mcp.NewToolResultText(response), nil
}
