package render

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func writeTestFile(t *testing.T, dir, name, content string) {
	t.Helper()
	require.NoError(t, os.WriteFile(filepath.Join(dir, name), []byte(content), 0o644))
}

func TestCollect_NaturalOrderAndExclusions(t *testing.T) {
	dir := t.TempDir()
	writeTestFile(t, dir, "chapter_10.md", "# Ten")
	writeTestFile(t, dir, "chapter_2.md", "# Two")
	writeTestFile(t, dir, "chapter_1.md", "# One")
	writeTestFile(t, dir, ".context-summary.md", "# Hidden")
	writeTestFile(t, dir, "notes.txt", "not markdown")

	docs, err := Collect(dir)
	require.NoError(t, err)
	require.Len(t, docs, 3)

	assert.Equal(t, "chapter_1.md", docs[0].RelPath)
	assert.Equal(t, "chapter_2.md", docs[1].RelPath)
	assert.Equal(t, "chapter_10.md", docs[2].RelPath)
}

func TestCollect_Deterministic(t *testing.T) {
	dir := t.TempDir()
	writeTestFile(t, dir, "b.md", "# B")
	writeTestFile(t, dir, "a.md", "# A")

	first, err := Collect(dir)
	require.NoError(t, err)
	second, err := Collect(dir)
	require.NoError(t, err)
	assert.Equal(t, first, second)
}

func TestCollect_FrontmatterAndFallbacks(t *testing.T) {
	dir := t.TempDir()
	writeTestFile(t, dir, "meta.md", "---\ntitle: From Meta\ndescription: A described file\n---\n\nBody text here.\n")
	writeTestFile(t, dir, "heading.md", "# From Heading\n\nFirst paragraph line.\n")
	writeTestFile(t, dir, "plain.md", "Just prose, no heading.\n")

	docs, err := Collect(dir)
	require.NoError(t, err)
	require.Len(t, docs, 3)

	byName := map[string]Document{}
	for _, d := range docs {
		byName[d.RelPath] = d
	}

	assert.Equal(t, "From Meta", byName["meta.md"].Title)
	assert.Equal(t, "A described file", byName["meta.md"].Description)
	assert.Equal(t, "Body text here.", byName["meta.md"].Body)

	assert.Equal(t, "From Heading", byName["heading.md"].Title)
	assert.Equal(t, "First paragraph line.", byName["heading.md"].Description)

	// No metadata, no heading: the file stem is the title.
	assert.Equal(t, "plain", byName["plain.md"].Title)
}

func TestCollect_WordCount(t *testing.T) {
	dir := t.TempDir()
	writeTestFile(t, dir, "a.md", "one two three")

	docs, err := Collect(dir)
	require.NoError(t, err)
	require.Len(t, docs, 1)
	assert.Equal(t, 3, docs[0].WordCount)
}

func TestProjectTitle(t *testing.T) {
	assert.Equal(t, "Inkwell Project", ProjectTitle(nil))

	docs := []Document{{RelPath: "a.md", Title: "First Title"}}
	assert.Equal(t, "First Title", ProjectTitle(docs))

	docs = []Document{
		{RelPath: "a.md", Title: "First Title"},
		{RelPath: "b.md", Meta: Meta{ProjectTitle: "Explicit"}},
	}
	assert.Equal(t, "Explicit", ProjectTitle(docs))

	docs = []Document{
		{RelPath: "novel_x.md", Title: "X", Meta: Meta{Title: "X"}},
	}
	assert.Equal(t, "X", ProjectTitle(docs))
}

func TestProjectDescription(t *testing.T) {
	docs := []Document{
		{Description: "First."},
		{Description: "Second."},
	}
	assert.Equal(t, "First. Second.", ProjectDescription(docs))

	assert.Contains(t, ProjectDescription([]Document{{}, {}}), "2 sections")
}

func TestSlug(t *testing.T) {
	assert.Equal(t, "the_last_lighthouse", Slug("The Last Lighthouse"))
}
