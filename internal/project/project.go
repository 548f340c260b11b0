// Package project holds the session state for the writing workspace:
// the single active project and the file operations scoped to it.
//
// A Manager owns at most one active project at a time. Creating a new
// project replaces the previous one; nothing is merged and nothing is
// torn down. The pointer lives only in memory — restarting the server
// always starts with no active project.
//
// Every filename that reaches the filesystem goes through resolve,
// which enforces containment inside the project root before any I/O
// happens. The check is lexical: symlinks are not followed.
package project

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"sync"
	"time"
)

// Project is the active writing project.
type Project struct {
	Name      string    `json:"name"`
	RootPath  string    `json:"root_path"`
	CreatedAt time.Time `json:"created_at"`
}

// Manager holds the active-project singleton. Construct one per server
// (or per test) and inject it into the tools that need it.
type Manager struct {
	outputDir string

	mu     sync.RWMutex
	active *Project
}

// NewManager creates a Manager that places projects under outputDir.
func NewManager(outputDir string) *Manager {
	return &Manager{outputDir: outputDir}
}

// OutputDir returns the directory under which projects are created.
func (m *Manager) OutputDir() string {
	return m.outputDir
}

// Create makes (or replaces) the active project. The name is sanitized
// into a filesystem-safe directory name and the directory tree is
// created if absent. Safe to call when the directory already exists.
func (m *Manager) Create(name string) (*Project, error) {
	safe := SanitizeName(name)
	if safe == "" {
		return nil, fmt.Errorf("project name %q contains no usable characters", name)
	}

	root := filepath.Join(m.outputDir, safe)
	if err := os.MkdirAll(root, 0o755); err != nil {
		return nil, err
	}

	p := &Project{
		Name:      safe,
		RootPath:  root,
		CreatedAt: time.Now(),
	}

	m.mu.Lock()
	m.active = p
	m.mu.Unlock()

	return p, nil
}

// Active returns the current project, or ErrNoActiveProject if none
// has been created in this process.
func (m *Manager) Active() (*Project, error) {
	m.mu.RLock()
	defer m.mu.RUnlock()
	if m.active == nil {
		return nil, ErrNoActiveProject
	}
	return m.active, nil
}

// SanitizeName converts an arbitrary project name into a safe directory
// name: lowercase, spaces become underscores, everything outside
// [a-z0-9._-] is dropped, and leading dots are stripped so the result
// can never be hidden or escape upward.
func SanitizeName(name string) string {
	var b strings.Builder
	for _, r := range strings.ToLower(strings.TrimSpace(name)) {
		switch {
		case r >= 'a' && r <= 'z', r >= '0' && r <= '9', r == '-', r == '_', r == '.':
			b.WriteRune(r)
		case r == ' ':
			b.WriteRune('_')
		}
	}
	return strings.Trim(b.String(), ".")
}

// resolve joins filename onto the project root and verifies the result
// stays inside it. Absolute paths and any cleaned path that escapes the
// root are rejected with a path_traversal error. The containment check
// is lexical and runs before any filesystem access.
func (p *Project) resolve(filename string) (string, error) {
	if filename == "" {
		return "", fmt.Errorf("filename is required")
	}
	if filepath.IsAbs(filename) {
		return "", Errorf(KindPathTraversal, "absolute paths are not allowed: %s", filename)
	}

	cleaned := filepath.Clean(filename)
	if cleaned == ".." || strings.HasPrefix(cleaned, ".."+string(filepath.Separator)) {
		return "", Errorf(KindPathTraversal, "filename escapes the project directory: %s", filename)
	}

	full := filepath.Join(p.RootPath, cleaned)
	rel, err := filepath.Rel(p.RootPath, full)
	if err != nil || rel == ".." || strings.HasPrefix(rel, ".."+string(filepath.Separator)) {
		return "", Errorf(KindPathTraversal, "filename escapes the project directory: %s", filename)
	}
	return full, nil
}

// ResolvePath validates filename against the project root and returns
// the absolute path it names. Used by callers that write non-markdown
// artifacts (exports) directly into the project.
func (p *Project) ResolvePath(filename string) (string, error) {
	return p.resolve(filename)
}

// resolveMarkdown is resolve with the markdown convention applied:
// names without an extension get .md appended.
func (p *Project) resolveMarkdown(filename string) (string, error) {
	if filename != "" && filepath.Ext(filename) == "" {
		filename += ".md"
	}
	return p.resolve(filename)
}
