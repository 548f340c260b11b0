package templates

import (
	"strings"
	"testing"

	"inkwell/internal/project"
)

// --- NewRenderer ---

func TestNewRenderer_Succeeds(t *testing.T) {
	r, err := NewRenderer()
	if err != nil {
		t.Fatalf("NewRenderer() failed: %v", err)
	}
	if r == nil {
		t.Fatal("NewRenderer() returned nil")
	}
}

// --- Render ---

func TestRender_Novel(t *testing.T) {
	r, err := NewRenderer()
	if err != nil {
		t.Fatalf("NewRenderer: %v", err)
	}

	result, err := r.Render(Novel, Data{Title: "The Last Lighthouse", Chapters: 12})
	if err != nil {
		t.Fatalf("Render(Novel) failed: %v", err)
	}

	checks := []string{
		"# The Last Lighthouse",
		"## Novel",
		"12 planned chapters",
		"### Chapter 1",
		"Inkwell MCP Server",
	}
	for _, check := range checks {
		if !strings.Contains(result, check) {
			t.Errorf("novel output missing: %q", check)
		}
	}
}

func TestRender_DefaultChapterCount(t *testing.T) {
	r, _ := NewRenderer()

	result, err := r.Render(Novel, Data{Title: "Untitled"})
	if err != nil {
		t.Fatalf("Render failed: %v", err)
	}
	if !strings.Contains(result, "5 planned chapters") {
		t.Errorf("expected default chapter count in output:\n%s", result)
	}
}

func TestRender_AllTypes(t *testing.T) {
	r, _ := NewRenderer()

	headings := map[Type]string{
		Novel:      "## Novel",
		ShortStory: "## Short Story",
		Book:       "## Book",
		Poetry:     "## Poetry Collection",
	}

	for _, typ := range Types {
		result, err := r.Render(typ, Data{Title: "Sample"})
		if err != nil {
			t.Errorf("Render(%s) failed: %v", typ, err)
			continue
		}
		if !strings.Contains(result, "# Sample") {
			t.Errorf("%s output missing title substitution", typ)
		}
		if !strings.Contains(result, headings[typ]) {
			t.Errorf("%s output missing heading %q", typ, headings[typ])
		}
	}
}

func TestRender_UnknownType(t *testing.T) {
	r, _ := NewRenderer()

	_, err := r.Render(Type("screenplay"), Data{Title: "Nope"})
	if err == nil {
		t.Fatal("expected error for unknown template type")
	}
	kind, ok := project.KindOf(err)
	if !ok || kind != project.KindUnknownTemplate {
		t.Errorf("error kind = %v, want unknown_template", kind)
	}
}

// --- Filename ---

func TestFilename(t *testing.T) {
	got := Filename(Novel, "The Last Lighthouse")
	want := "novel_the_last_lighthouse.md"
	if got != want {
		t.Errorf("Filename = %q, want %q", got, want)
	}
}
