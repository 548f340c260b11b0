package tools

import (
	"fmt"
	"strings"

	"inkwell/internal/project"
	"inkwell/internal/render"
)

// collectForExport gathers the project's markdown documents for an
// export run. A project without markdown cannot produce a book, which
// surfaces as render_failed rather than an empty artifact.
func collectForExport(p *project.Project) ([]render.Document, error) {
	docs, err := render.Collect(p.RootPath)
	if err != nil {
		return nil, fmt.Errorf("collecting project documents: %w", err)
	}
	if len(docs) == 0 {
		return nil, project.Errorf(project.KindRenderFailed,
			"no markdown files found in project '%s'; write some content first", p.Name)
	}
	return docs, nil
}

// exportOutputName returns the validated output filename, defaulting
// to a slug of the project title and forcing the format's extension.
func exportOutputName(requested, title, ext string) string {
	name := strings.TrimSpace(requested)
	if name == "" {
		name = render.Slug(title)
	}
	if !strings.HasSuffix(strings.ToLower(name), ext) {
		name += ext
	}
	return name
}
