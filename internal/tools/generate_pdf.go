package tools

import (
	"context"
	"fmt"

	"github.com/mark3labs/mcp-go/mcp"

	"inkwell/internal/project"
	"inkwell/internal/render"
)

// GeneratePDFTool handles the generate_pdf MCP tool.
type GeneratePDFTool struct {
	manager  *project.Manager
	registry *render.Registry
}

// NewGeneratePDFTool creates a GeneratePDFTool with its dependencies.
func NewGeneratePDFTool(manager *project.Manager, registry *render.Registry) *GeneratePDFTool {
	return &GeneratePDFTool{manager: manager, registry: registry}
}

// Definition returns the MCP tool definition for registration.
func (t *GeneratePDFTool) Definition() mcp.Tool {
	return mcp.NewTool("generate_pdf",
		mcp.WithDescription(
			"Compile all markdown files of the active project into a single PDF "+
				"with cover page and table of contents. Chapters are ordered the "+
				"same way list_project_files orders them.",
		),
		mcp.WithString("output_filename",
			mcp.Description("Output file name; defaults to a slug of the project title"),
		),
	)
}

// Handle processes the generate_pdf tool call.
func (t *GeneratePDFTool) Handle(ctx context.Context, req mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	p, err := t.manager.Active()
	if err != nil {
		return errResult(err), nil
	}

	gen, err := t.registry.Acquire(render.FormatPDF)
	if err != nil {
		return errResult(project.Errorf(project.KindRenderUnavailable,
			"PDF export is not available in this build: %v", err)), nil
	}

	docs, err := collectForExport(p)
	if err != nil {
		return errResult(err), nil
	}

	title := render.ProjectTitle(docs)
	name := exportOutputName(req.GetString("output_filename", ""), title, ".pdf")
	outPath, err := p.ResolvePath(name)
	if err != nil {
		return errResult(err), nil
	}

	written, err := gen.Generate(docs, render.Options{
		OutputPath:  outPath,
		Title:       title,
		Author:      "Inkwell",
		Description: render.ProjectDescription(docs),
	})
	if err != nil {
		return errResult(project.Errorf(project.KindRenderFailed,
			"generating PDF: %v", err)), nil
	}

	response := fmt.Sprintf("PDF generated successfully: %s (%d sections)", written, len(docs))
	return mcp.NewToolResultText(response), nil
}
