// Package server wires all MCP components and creates the server instance.
//
// This is the composition root: it creates concrete implementations
// and injects them into the tools/prompts/resources that depend on
// them. No business logic lives here — only wiring.
package server

import (
	"fmt"
	"os"

	"github.com/mark3labs/mcp-go/server"

	"inkwell/internal/logging"
	"inkwell/internal/project"
	"inkwell/internal/prompts"
	"inkwell/internal/render"
	"inkwell/internal/resources"
	"inkwell/internal/templates"
	"inkwell/internal/tools"
)

// Version is set at build time via ldflags.
var Version = "dev"

// DefaultOutputDir is where projects are created when
// INKWELL_OUTPUT_DIR is not set.
const DefaultOutputDir = "output"

// New creates and configures the MCP server with all tools, prompts,
// and resources registered. This is the single place where all
// dependencies are resolved.
func New() (*server.MCPServer, error) {
	// --- Create shared dependencies ---

	outputDir := os.Getenv("INKWELL_OUTPUT_DIR")
	if outputDir == "" {
		outputDir = DefaultOutputDir
	}
	manager := project.NewManager(outputDir)
	logging.Debug("project manager ready", "output_dir", outputDir)

	renderer, err := templates.NewRenderer()
	if err != nil {
		return nil, fmt.Errorf("creating template renderer: %w", err)
	}

	registry := render.NewRegistry()
	render.RegisterDefaults(registry)
	logging.Debug("export registry ready", "formats", registry.Formats())

	// --- Create the MCP server ---

	s := server.NewMCPServer(
		"inkwell",
		Version,
		server.WithToolCapabilities(true),
		server.WithResourceCapabilities(false, true),
		server.WithPromptCapabilities(true),
		server.WithRecovery(),
		server.WithInstructions(serverInstructions()),
	)

	// --- Register project tools ---

	createProject := tools.NewCreateProjectTool(manager)
	s.AddTool(createProject.Definition(), createProject.Handle)

	writeFile := tools.NewWriteFileTool(manager)
	s.AddTool(writeFile.Definition(), writeFile.Handle)

	projectInfo := tools.NewProjectInfoTool(manager)
	s.AddTool(projectInfo.Definition(), projectInfo.Handle)

	listFiles := tools.NewListFilesTool(manager)
	s.AddTool(listFiles.Definition(), listFiles.Handle)

	readFile := tools.NewReadFileTool(manager)
	s.AddTool(readFile.Definition(), readFile.Handle)

	fileStats := tools.NewFileStatsTool(manager)
	s.AddTool(fileStats.Definition(), fileStats.Handle)

	createTemplate := tools.NewCreateTemplateTool(manager, renderer)
	s.AddTool(createTemplate.Definition(), createTemplate.Handle)

	// --- Register export tools ---
	//
	// The generators behind the registry may be compiled out (noexport
	// builds); the tools then answer with render_unavailable instead
	// of disappearing from the tool list.

	generatePDF := tools.NewGeneratePDFTool(manager, registry)
	s.AddTool(generatePDF.Definition(), generatePDF.Handle)

	generateEPUB := tools.NewGenerateEPUBTool(manager, registry)
	s.AddTool(generateEPUB.Definition(), generateEPUB.Handle)

	// --- Register prompts ---

	novelPrompt := prompts.NewNovelPrompt()
	s.AddPrompt(novelPrompt.Definition(), novelPrompt.Handle)

	shortStoryPrompt := prompts.NewShortStoryPrompt()
	s.AddPrompt(shortStoryPrompt.Definition(), shortStoryPrompt.Handle)

	nonfictionPrompt := prompts.NewNonfictionBookPrompt()
	s.AddPrompt(nonfictionPrompt.Definition(), nonfictionPrompt.Handle)

	// --- Register resources ---

	resourceHandler := resources.NewHandler(manager)
	s.AddResource(resourceHandler.StatusResource(), resourceHandler.HandleStatus)

	return s, nil
}

// serverInstructions returns the system instructions that tell the AI
// how to use the writing workspace effectively.
func serverInstructions() string {
	return `You have access to Inkwell, a creative-writing workspace MCP server.

## WORKFLOW

1. Always start by creating a project with create_project. Every other
   file tool operates on the active project and fails without one.
2. Write content as markdown files with write_file. Use one file per
   chapter (chapter_01.md, chapter_02.md, ...) for long works; numeric
   suffixes sort naturally (chapter_2 comes before chapter_10).
3. Use create_writing_template to start a novel, short_story, book, or
   poetry skeleton instead of a blank page.
4. Inspect progress with list_project_files, get_project_info,
   read_file, and get_file_stats.
5. When the work is ready, compile it with generate_pdf or
   generate_epub. Chapters are assembled in the same order
   list_project_files shows them.

## PROMPTS

The write_novel, write_short_story, and write_nonfiction_book prompts
produce structured writing briefs (genre, tone, and audience aware)
that guide a complete writing session using these tools.

## NOTES

- write_file mode 'create' refuses to clobber existing files; use
  'append' or 'overwrite' deliberately.
- YAML frontmatter (title, description, project_title, author) on your
  markdown files improves export metadata.
- If an export tool reports render_unavailable, this build was compiled
  without that generator; the writing tools still work.`
}
