// Package templates is the registry of writing skeletons. Each skeleton
// is a fixed document structure with the work's title (and chapter count
// for novels) substituted in; rendering is pure and touches no state.
package templates

import (
	"embed"
	"fmt"
	"strings"
	"text/template"
	"time"

	"inkwell/internal/project"
)

//go:embed skeletons/*.md.tmpl
var skeletonFS embed.FS

// Type identifies a writing skeleton.
type Type string

const (
	Novel      Type = "novel"
	ShortStory Type = "short_story"
	Book       Type = "book"
	Poetry     Type = "poetry"
)

// Types lists every registered skeleton type, for tool schemas and
// error messages.
var Types = []Type{Novel, ShortStory, Book, Poetry}

// DefaultChapters is the planned chapter count used when the caller
// doesn't specify one.
const DefaultChapters = 5

// Data is the caller-supplied substitution input.
type Data struct {
	Title    string
	Chapters int
}

// templateData is what the skeletons actually see.
type templateData struct {
	Title    string
	Chapters int
	Created  string
}

// Renderer renders writing skeletons parsed once at construction.
type Renderer struct {
	tmpl *template.Template
}

// NewRenderer parses all embedded skeletons. A parse failure is a
// packaging bug and surfaces immediately at server startup.
func NewRenderer() (*Renderer, error) {
	tmpl, err := template.ParseFS(skeletonFS, "skeletons/*.md.tmpl")
	if err != nil {
		return nil, fmt.Errorf("parsing skeleton templates: %w", err)
	}
	return &Renderer{tmpl: tmpl}, nil
}

// Render produces the skeleton text for the given type. Unknown types
// fail with an unknown_template error.
func (r *Renderer) Render(typ Type, data Data) (string, error) {
	name := string(typ) + ".md.tmpl"
	if r.tmpl.Lookup(name) == nil {
		return "", project.Errorf(project.KindUnknownTemplate,
			"template type %q is not valid: use %s", typ, typeList())
	}

	if data.Chapters <= 0 {
		data.Chapters = DefaultChapters
	}

	var b strings.Builder
	err := r.tmpl.ExecuteTemplate(&b, name, templateData{
		Title:    data.Title,
		Chapters: data.Chapters,
		Created:  time.Now().Format("2006-01-02 15:04:05"),
	})
	if err != nil {
		return "", fmt.Errorf("rendering %s template: %w", typ, err)
	}
	return b.String(), nil
}

// Filename returns the project filename a rendered skeleton is saved
// under: <type>_<slugified title>.md.
func Filename(typ Type, title string) string {
	slug := strings.ToLower(strings.ReplaceAll(strings.TrimSpace(title), " ", "_"))
	return fmt.Sprintf("%s_%s.md", typ, slug)
}

func typeList() string {
	names := make([]string, len(Types))
	for i, t := range Types {
		names[i] = string(t)
	}
	return strings.Join(names, ", ")
}
