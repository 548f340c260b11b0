// Package render turns a project's markdown files into export artifacts.
//
// Collection is shared by every format: the same files, in the same
// natural order the file listing uses, with YAML frontmatter split off
// and titles extracted. The actual generators live behind a Registry so
// a build without them degrades to a distinct "unavailable" error
// instead of failing at startup.
package render

import (
	"fmt"
	"io/fs"
	"os"
	"path/filepath"
	"sort"
	"strings"

	"inkwell/internal/project"

	"github.com/adrg/frontmatter"
)

// Meta is the recognized frontmatter of a project markdown file.
type Meta struct {
	Title        string `yaml:"title"`
	Description  string `yaml:"description"`
	ProjectTitle string `yaml:"project_title"`
	Author       string `yaml:"author"`
}

// Document is one markdown file prepared for export.
type Document struct {
	RelPath     string
	Title       string
	Description string
	Body        string
	Meta        Meta
	WordCount   int
}

// Collect gathers all markdown files under root, excluding dotfiles and
// .context* summaries, in natural sort order. The ordering matches
// Project.List so exports and file listings always agree.
func Collect(root string) ([]Document, error) {
	var paths []string
	err := filepath.WalkDir(root, func(path string, d fs.DirEntry, err error) error {
		if err != nil {
			return err
		}
		name := d.Name()
		if strings.HasPrefix(name, ".") && path != root {
			if d.IsDir() {
				return filepath.SkipDir
			}
			return nil
		}
		if d.IsDir() || !strings.HasSuffix(name, ".md") {
			return nil
		}
		paths = append(paths, path)
		return nil
	})
	if err != nil {
		return nil, fmt.Errorf("scanning %s: %w", root, err)
	}

	sort.Slice(paths, func(i, j int) bool {
		return project.NaturalLess(paths[i], paths[j])
	})

	docs := make([]Document, 0, len(paths))
	for _, path := range paths {
		doc, err := readDocument(root, path)
		if err != nil {
			return nil, err
		}
		docs = append(docs, doc)
	}
	return docs, nil
}

// readDocument loads one markdown file, splitting frontmatter and
// resolving title and description fallbacks.
func readDocument(root, path string) (Document, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return Document{}, fmt.Errorf("reading %s: %w", path, err)
	}

	var meta Meta
	body, err := frontmatter.Parse(strings.NewReader(string(data)), &meta)
	if err != nil {
		// Malformed frontmatter: treat the whole file as body.
		body = data
		meta = Meta{}
	}

	rel, err := filepath.Rel(root, path)
	if err != nil {
		rel = filepath.Base(path)
	}

	content := strings.TrimSpace(string(body))
	title := meta.Title
	if title == "" {
		title = firstHeading(content)
	}
	if title == "" {
		title = strings.TrimSuffix(filepath.Base(path), ".md")
	}

	desc := meta.Description
	if desc == "" {
		desc = firstParagraphLine(content)
	}

	return Document{
		RelPath:     rel,
		Title:       title,
		Description: desc,
		Body:        content,
		Meta:        meta,
		WordCount:   len(strings.Fields(content)),
	}, nil
}

// firstHeading returns the text of the first level-1 heading, or "".
func firstHeading(content string) string {
	for _, line := range strings.Split(content, "\n") {
		if strings.HasPrefix(line, "# ") {
			return strings.TrimSpace(strings.TrimPrefix(line, "# "))
		}
	}
	return ""
}

// firstParagraphLine returns the first non-empty, non-heading line.
func firstParagraphLine(content string) string {
	for _, line := range strings.Split(content, "\n") {
		trimmed := strings.TrimSpace(line)
		if trimmed != "" && !strings.HasPrefix(trimmed, "#") {
			return trimmed
		}
	}
	return ""
}

// ProjectTitle derives a title for the whole export: an explicit
// project_title wins, then a title on a file named like a novel, then
// the first document's title.
func ProjectTitle(docs []Document) string {
	for _, d := range docs {
		if d.Meta.ProjectTitle != "" {
			return d.Meta.ProjectTitle
		}
		if d.Meta.Title != "" && strings.Contains(strings.ToLower(d.RelPath), "novel") {
			return d.Meta.Title
		}
	}
	if len(docs) > 0 {
		return docs[0].Title
	}
	return "Inkwell Project"
}

// ProjectDescription joins the first few document descriptions, capped
// at 500 characters, with a generic fallback.
func ProjectDescription(docs []Document) string {
	var parts []string
	for i, d := range docs {
		if i >= 3 {
			break
		}
		if d.Description != "" {
			parts = append(parts, d.Description)
		}
	}
	if len(parts) > 0 {
		joined := strings.Join(parts, " ")
		if len(joined) > 500 {
			joined = joined[:500]
		}
		return joined
	}
	return fmt.Sprintf("A creative writing project with %d sections.", len(docs))
}

// Slug converts a title into a filename-friendly form.
func Slug(title string) string {
	return strings.ToLower(strings.ReplaceAll(strings.TrimSpace(title), " ", "_"))
}
