package prompts

import (
	"context"
	"fmt"

	"github.com/mark3labs/mcp-go/mcp"
)

// NovelPrompt handles the write_novel MCP prompt.
type NovelPrompt struct{}

// NewNovelPrompt creates a NovelPrompt.
func NewNovelPrompt() *NovelPrompt {
	return &NovelPrompt{}
}

// Definition returns the MCP prompt definition for registration.
func (p *NovelPrompt) Definition() mcp.Prompt {
	return mcp.NewPrompt(NameWriteNovel,
		mcp.WithPromptDescription("Prompt for creating a complete novel"),
		mcp.WithArgument("theme",
			mcp.RequiredArgument(),
			mcp.ArgumentDescription("Main theme of the novel"),
		),
		mcp.WithArgument("genre",
			mcp.RequiredArgument(),
			mcp.ArgumentDescription("Literary genre (fiction, mystery, romance, sci-fi, etc.)"),
		),
		mcp.WithArgument("chapters",
			mcp.ArgumentDescription("Number of chapters (default: 8-12)"),
		),
		mcp.WithArgument("length",
			mcp.ArgumentDescription("Approximate length per chapter (short, medium, long)"),
		),
	)
}

// Handle processes the write_novel prompt request.
func (p *NovelPrompt) Handle(ctx context.Context, req mcp.GetPromptRequest) (*mcp.GetPromptResult, error) {
	args := req.Params.Arguments

	text, err := Build(NameWriteNovel, args)
	if err != nil {
		return nil, err
	}

	return &mcp.GetPromptResult{
		Description: fmt.Sprintf("Create a %s novel about %s with %s chapters",
			args["genre"], args["theme"], argOr(args, "chapters", "8-12")),
		Messages: []mcp.PromptMessage{
			{
				Role:    mcp.RoleUser,
				Content: mcp.NewTextContent(text),
			},
		},
	}, nil
}

// argOr returns the argument value or a fallback when absent or empty.
func argOr(args map[string]string, key, fallback string) string {
	if v, ok := args[key]; ok && v != "" {
		return v
	}
	return fallback
}
