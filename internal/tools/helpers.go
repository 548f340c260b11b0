// Package tools implements the MCP tool handlers for the writing
// workspace.
//
// Each file holds one tool: a struct carrying its dependencies
// (injected via constructor), a Definition for registration, and a
// Handle compatible with mcp-go's CallToolRequest signature. Handlers
// never touch the filesystem themselves — all file access goes through
// the project manager, which enforces path containment.
package tools

import (
	"encoding/json"
	"errors"
	"fmt"

	"github.com/mark3labs/mcp-go/mcp"

	"inkwell/internal/project"
)

// errResult converts an error into a structured tool-error payload so
// clients can branch on the kind without parsing prose:
//
//	{"error": {"kind": "file_exists", "message": "..."}}
//
// Errors outside the project taxonomy are reported as kind "internal".
func errResult(err error) *mcp.CallToolResult {
	kind := "internal"
	message := err.Error()

	var pe *project.Error
	if errors.As(err, &pe) {
		kind = string(pe.Kind)
		message = pe.Message
	}

	payload := struct {
		Error struct {
			Kind    string `json:"kind"`
			Message string `json:"message"`
		} `json:"error"`
	}{}
	payload.Error.Kind = kind
	payload.Error.Message = message

	data, merr := json.Marshal(payload)
	if merr != nil {
		return mcp.NewToolResultError(message)
	}
	return mcp.NewToolResultError(string(data))
}

// jsonResult marshals v into an indented JSON text result.
func jsonResult(v any) (*mcp.CallToolResult, error) {
	data, err := json.MarshalIndent(v, "", "  ")
	if err != nil {
		return nil, fmt.Errorf("encoding response: %w", err)
	}
	return mcp.NewToolResultText(string(data)), nil
}

// sizeKB converts a byte count to kilobytes rounded to two decimals,
// the unit shown in listings and stats.
func sizeKB(bytes int64) float64 {
	return float64(bytes*100/1024) / 100
}
