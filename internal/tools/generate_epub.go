package tools

import (
	"context"
	"fmt"

	"github.com/mark3labs/mcp-go/mcp"

	"inkwell/internal/project"
	"inkwell/internal/render"
)

// GenerateEPUBTool handles the generate_epub MCP tool.
type GenerateEPUBTool struct {
	manager  *project.Manager
	registry *render.Registry
}

// NewGenerateEPUBTool creates a GenerateEPUBTool with its dependencies.
func NewGenerateEPUBTool(manager *project.Manager, registry *render.Registry) *GenerateEPUBTool {
	return &GenerateEPUBTool{manager: manager, registry: registry}
}

// Definition returns the MCP tool definition for registration.
func (t *GenerateEPUBTool) Definition() mcp.Tool {
	return mcp.NewTool("generate_epub",
		mcp.WithDescription(
			"Compile all markdown files of the active project into an EPUB ebook. "+
				"Chapters are ordered the same way list_project_files orders them.",
		),
		mcp.WithString("output_filename",
			mcp.Description("Output file name; defaults to a slug of the book title"),
		),
		mcp.WithString("title",
			mcp.Description("Book title; defaults to the project title from frontmatter"),
		),
		mcp.WithString("author",
			mcp.Description("Author name for the EPUB metadata"),
		),
	)
}

// Handle processes the generate_epub tool call.
func (t *GenerateEPUBTool) Handle(ctx context.Context, req mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	p, err := t.manager.Active()
	if err != nil {
		return errResult(err), nil
	}

	gen, err := t.registry.Acquire(render.FormatEPUB)
	if err != nil {
		return errResult(project.Errorf(project.KindRenderUnavailable,
			"EPUB export is not available in this build: %v", err)), nil
	}

	docs, err := collectForExport(p)
	if err != nil {
		return errResult(err), nil
	}

	title := req.GetString("title", "")
	if title == "" {
		title = render.ProjectTitle(docs)
	}
	author := req.GetString("author", "")
	if author == "" {
		author = "Inkwell"
	}

	name := exportOutputName(req.GetString("output_filename", ""), title, ".epub")
	outPath, err := p.ResolvePath(name)
	if err != nil {
		return errResult(err), nil
	}

	written, err := gen.Generate(docs, render.Options{
		OutputPath:  outPath,
		Title:       title,
		Author:      author,
		Description: render.ProjectDescription(docs),
	})
	if err != nil {
		return errResult(project.Errorf(project.KindRenderFailed,
			"generating EPUB: %v", err)), nil
	}

	response := fmt.Sprintf("EPUB generated successfully: %s (%d chapters)", written, len(docs))
	return mcp.NewToolResultText(response), nil
}
