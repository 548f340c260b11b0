package prompts

import (
	"context"
	"fmt"

	"github.com/mark3labs/mcp-go/mcp"
)

// NonfictionBookPrompt handles the write_nonfiction_book MCP prompt.
type NonfictionBookPrompt struct{}

// NewNonfictionBookPrompt creates a NonfictionBookPrompt.
func NewNonfictionBookPrompt() *NonfictionBookPrompt {
	return &NonfictionBookPrompt{}
}

// Definition returns the MCP prompt definition for registration.
func (p *NonfictionBookPrompt) Definition() mcp.Prompt {
	return mcp.NewPrompt(NameWriteNonfictionBook,
		mcp.WithPromptDescription("Prompt for creating a non-fiction book"),
		mcp.WithArgument("theme",
			mcp.RequiredArgument(),
			mcp.ArgumentDescription("Main theme of the book"),
		),
		mcp.WithArgument("audience",
			mcp.ArgumentDescription("Target audience (beginners, experts, general)"),
		),
		mcp.WithArgument("chapters",
			mcp.ArgumentDescription("Number of planned chapters"),
		),
	)
}

// Handle processes the write_nonfiction_book prompt request.
func (p *NonfictionBookPrompt) Handle(ctx context.Context, req mcp.GetPromptRequest) (*mcp.GetPromptResult, error) {
	args := req.Params.Arguments

	text, err := Build(NameWriteNonfictionBook, args)
	if err != nil {
		return nil, err
	}

	return &mcp.GetPromptResult{
		Description: fmt.Sprintf("Non-fiction book about %s for %s audience with %s chapters",
			args["theme"], argOr(args, "audience", "general"), argOr(args, "chapters", "8-12")),
		Messages: []mcp.PromptMessage{
			{
				Role:    mcp.RoleUser,
				Content: mcp.NewTextContent(text),
			},
		},
	}, nil
}
