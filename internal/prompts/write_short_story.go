package prompts

import (
	"context"
	"fmt"

	"github.com/mark3labs/mcp-go/mcp"
)

// ShortStoryPrompt handles the write_short_story MCP prompt.
type ShortStoryPrompt struct{}

// NewShortStoryPrompt creates a ShortStoryPrompt.
func NewShortStoryPrompt() *ShortStoryPrompt {
	return &ShortStoryPrompt{}
}

// Definition returns the MCP prompt definition for registration.
func (p *ShortStoryPrompt) Definition() mcp.Prompt {
	return mcp.NewPrompt(NameWriteShortStory,
		mcp.WithPromptDescription("Prompt for creating a short story"),
		mcp.WithArgument("theme",
			mcp.RequiredArgument(),
			mcp.ArgumentDescription("Theme or premise of the story"),
		),
		mcp.WithArgument("length",
			mcp.ArgumentDescription("Desired length (short: 1k-2k, medium: 2k-4k, long: 4k-6k words)"),
		),
		mcp.WithArgument("tone",
			mcp.ArgumentDescription("Story tone (dramatic, comedic, reflective, etc.)"),
		),
	)
}

// Handle processes the write_short_story prompt request.
func (p *ShortStoryPrompt) Handle(ctx context.Context, req mcp.GetPromptRequest) (*mcp.GetPromptResult, error) {
	args := req.Params.Arguments

	text, err := Build(NameWriteShortStory, args)
	if err != nil {
		return nil, err
	}

	return &mcp.GetPromptResult{
		Description: fmt.Sprintf("Short story about %s (%s) with %s tone",
			args["theme"], argOr(args, "length", "medium"), argOr(args, "tone", "narrative")),
		Messages: []mcp.PromptMessage{
			{
				Role:    mcp.RoleUser,
				Content: mcp.NewTextContent(text),
			},
		},
	}, nil
}
