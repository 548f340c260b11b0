package project

import (
	"errors"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestCreate_MakesDirectoryAndSetsActive(t *testing.T) {
	m := NewManager(t.TempDir())

	p, err := m.Create("My Novel")
	require.NoError(t, err)
	assert.Equal(t, "my_novel", p.Name)

	st, err := os.Stat(p.RootPath)
	require.NoError(t, err)
	assert.True(t, st.IsDir())

	active, err := m.Active()
	require.NoError(t, err)
	assert.Equal(t, p, active)
}

func TestCreate_ReplacesPriorProject(t *testing.T) {
	m := NewManager(t.TempDir())

	first, err := m.Create("first")
	require.NoError(t, err)

	second, err := m.Create("second")
	require.NoError(t, err)

	active, err := m.Active()
	require.NoError(t, err)
	assert.Equal(t, second, active)
	assert.NotEqual(t, first.Name, active.Name)

	// The first project's directory is left alone on disk.
	_, err = os.Stat(first.RootPath)
	assert.NoError(t, err)
}

func TestCreate_IdempotentOnExistingDirectory(t *testing.T) {
	m := NewManager(t.TempDir())

	_, err := m.Create("demo")
	require.NoError(t, err)
	_, err = m.Create("demo")
	require.NoError(t, err)
}

func TestCreate_RejectsUnusableName(t *testing.T) {
	m := NewManager(t.TempDir())
	_, err := m.Create("///")
	assert.Error(t, err)
}

func TestActive_NoProject(t *testing.T) {
	m := NewManager(t.TempDir())

	_, err := m.Active()
	require.Error(t, err)
	assert.True(t, errors.Is(err, ErrNoActiveProject))

	kind, ok := KindOf(err)
	require.True(t, ok)
	assert.Equal(t, KindNoActiveProject, kind)
}

func TestSanitizeName(t *testing.T) {
	cases := map[string]string{
		"My Great Novel":  "my_great_novel",
		"  spaced  ":      "spaced",
		"UPPER-case_1.2":  "upper-case_1.2",
		"../../etc":       "etc",
		"..":              "",
		"niño & dragón!?": "nio__dragn",
	}
	for in, want := range cases {
		assert.Equal(t, want, SanitizeName(in), "input %q", in)
	}
}

func newTestProject(t *testing.T) *Project {
	t.Helper()
	m := NewManager(t.TempDir())
	p, err := m.Create("test")
	require.NoError(t, err)
	return p
}

func TestWriteFile_CreateThenRead(t *testing.T) {
	p := newTestProject(t)

	n, err := p.WriteFile("a.md", "X", ModeCreate)
	require.NoError(t, err)
	assert.Equal(t, 1, n)

	content, err := p.ReadFile("a.md")
	require.NoError(t, err)
	assert.Equal(t, "X", content)
}

func TestWriteFile_CreateFailsOnExisting(t *testing.T) {
	p := newTestProject(t)

	_, err := p.WriteFile("a.md", "original", ModeCreate)
	require.NoError(t, err)

	_, err = p.WriteFile("a.md", "clobber", ModeCreate)
	require.Error(t, err)
	kind, ok := KindOf(err)
	require.True(t, ok)
	assert.Equal(t, KindFileExists, kind)

	// Existing content must be untouched.
	content, err := p.ReadFile("a.md")
	require.NoError(t, err)
	assert.Equal(t, "original", content)
}

func TestWriteFile_OverwriteReplacesExactly(t *testing.T) {
	p := newTestProject(t)

	_, err := p.WriteFile("a.md", "a much longer original body", ModeCreate)
	require.NoError(t, err)

	_, err = p.WriteFile("a.md", "new", ModeOverwrite)
	require.NoError(t, err)

	content, err := p.ReadFile("a.md")
	require.NoError(t, err)
	assert.Equal(t, "new", content)
}

func TestWriteFile_AppendConcatenates(t *testing.T) {
	p := newTestProject(t)

	_, err := p.WriteFile("a.md", "X", ModeCreate)
	require.NoError(t, err)
	_, err = p.WriteFile("a.md", "Y", ModeAppend)
	require.NoError(t, err)

	content, err := p.ReadFile("a.md")
	require.NoError(t, err)
	assert.Equal(t, "XY", content)

	// Append is equivalent to a single create of the concatenation.
	_, err = p.WriteFile("b.md", "XY", ModeCreate)
	require.NoError(t, err)
	other, err := p.ReadFile("b.md")
	require.NoError(t, err)
	assert.Equal(t, content, other)
}

func TestWriteFile_AppendCreatesMissingFile(t *testing.T) {
	p := newTestProject(t)

	_, err := p.WriteFile("fresh.md", "hello", ModeAppend)
	require.NoError(t, err)

	content, err := p.ReadFile("fresh.md")
	require.NoError(t, err)
	assert.Equal(t, "hello", content)
}

func TestWriteFile_InvalidMode(t *testing.T) {
	p := newTestProject(t)

	_, err := p.WriteFile("a.md", "X", WriteMode("replace"))
	require.Error(t, err)
	kind, _ := KindOf(err)
	assert.Equal(t, KindInvalidMode, kind)
}

func TestWriteFile_PathTraversalRejected(t *testing.T) {
	p := newTestProject(t)

	for _, name := range []string{
		"../escape.md",
		"../../etc/passwd",
		"sub/../../escape.md",
		"/etc/passwd",
	} {
		_, err := p.WriteFile(name, "X", ModeCreate)
		require.Error(t, err, "filename %q", name)
		kind, ok := KindOf(err)
		require.True(t, ok, "filename %q", name)
		assert.Equal(t, KindPathTraversal, kind, "filename %q", name)
	}

	// No mutation outside the root.
	parent := filepath.Dir(p.RootPath)
	entries, err := os.ReadDir(parent)
	require.NoError(t, err)
	require.Len(t, entries, 1)
	assert.Equal(t, "test", entries[0].Name())
}

func TestWriteFile_NestedPathStaysInside(t *testing.T) {
	p := newTestProject(t)

	_, err := p.WriteFile("chapters/one.md", "body", ModeCreate)
	require.NoError(t, err)

	content, err := p.ReadFile("chapters/one.md")
	require.NoError(t, err)
	assert.Equal(t, "body", content)
}

func TestReadFile_AppendsMarkdownExtension(t *testing.T) {
	p := newTestProject(t)

	_, err := p.WriteFile("notes.md", "n", ModeCreate)
	require.NoError(t, err)

	content, err := p.ReadFile("notes")
	require.NoError(t, err)
	assert.Equal(t, "n", content)
}

func TestReadFile_NotFound(t *testing.T) {
	p := newTestProject(t)

	_, err := p.ReadFile("missing.md")
	require.Error(t, err)
	kind, _ := KindOf(err)
	assert.Equal(t, KindFileNotFound, kind)
}

func TestStat_ReturnsSizeAndModTime(t *testing.T) {
	p := newTestProject(t)

	_, err := p.WriteFile("a.md", "12345", ModeCreate)
	require.NoError(t, err)

	info, err := p.Stat("a")
	require.NoError(t, err)
	assert.Equal(t, "a.md", info.Name)
	assert.Equal(t, int64(5), info.Size)
	assert.False(t, info.ModTime.IsZero())
}

func TestList_NaturalOrderAndDeterminism(t *testing.T) {
	p := newTestProject(t)

	for _, name := range []string{"chapter_10.md", "chapter_2.md", "chapter_1.md", "outline.md"} {
		_, err := p.WriteFile(name, "x", ModeCreate)
		require.NoError(t, err)
	}
	// Hidden context summaries are excluded.
	require.NoError(t, os.WriteFile(filepath.Join(p.RootPath, ".context-summary.md"), []byte("x"), 0o644))

	files, err := p.List()
	require.NoError(t, err)

	var names []string
	for _, f := range files {
		names = append(names, f.RelPath)
	}
	assert.Equal(t, []string{"chapter_1.md", "chapter_2.md", "chapter_10.md", "outline.md"}, names)

	again, err := p.List()
	require.NoError(t, err)
	assert.Equal(t, files, again)
}

func TestNaturalLess(t *testing.T) {
	assert.True(t, NaturalLess("chapter_2", "chapter_10"))
	assert.False(t, NaturalLess("chapter_10", "chapter_2"))
	assert.True(t, NaturalLess("a", "b"))
	assert.True(t, NaturalLess("a", "ab"))
	assert.False(t, NaturalLess("same", "same"))
}
