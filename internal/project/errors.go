package project

import (
	"errors"
	"fmt"
)

// ErrorKind is a machine-readable error category. Tool handlers surface
// it to the MCP client alongside the human-readable message so callers
// can react without parsing prose.
type ErrorKind string

const (
	KindNoActiveProject   ErrorKind = "no_active_project"
	KindInvalidMode       ErrorKind = "invalid_mode"
	KindPathTraversal     ErrorKind = "path_traversal"
	KindFileExists        ErrorKind = "file_exists"
	KindFileNotFound      ErrorKind = "file_not_found"
	KindUnknownTemplate   ErrorKind = "unknown_template"
	KindUnknownPrompt     ErrorKind = "unknown_prompt"
	KindRenderUnavailable ErrorKind = "render_unavailable"
	KindRenderFailed      ErrorKind = "render_failed"
)

// Error carries a kind plus a message. All failures that cross the tool
// boundary are one of these; anything else is an internal error.
type Error struct {
	Kind    ErrorKind
	Message string
}

func (e *Error) Error() string {
	return fmt.Sprintf("%s: %s", e.Kind, e.Message)
}

// Errorf builds a taxonomy error with a formatted message.
func Errorf(kind ErrorKind, format string, args ...any) *Error {
	return &Error{Kind: kind, Message: fmt.Sprintf(format, args...)}
}

// KindOf extracts the error kind, or ("", false) for errors outside
// the taxonomy.
func KindOf(err error) (ErrorKind, bool) {
	var pe *Error
	if errors.As(err, &pe) {
		return pe.Kind, true
	}
	return "", false
}

// ErrNoActiveProject is returned by Manager.Active when no project has
// been created yet. It is a fixed instance so callers can use errors.Is.
var ErrNoActiveProject = &Error{
	Kind:    KindNoActiveProject,
	Message: "no active project; create one first with create_project",
}
