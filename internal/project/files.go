package project

import (
	"fmt"
	"io/fs"
	"os"
	"path/filepath"
	"sort"
	"strings"
	"time"
	"unicode"
)

// WriteMode controls how WriteFile treats an existing target.
type WriteMode string

const (
	ModeCreate    WriteMode = "create"
	ModeAppend    WriteMode = "append"
	ModeOverwrite WriteMode = "overwrite"
)

// ValidateMode returns an invalid_mode error for unrecognized modes.
func ValidateMode(mode WriteMode) error {
	switch mode {
	case ModeCreate, ModeAppend, ModeOverwrite:
		return nil
	}
	return Errorf(KindInvalidMode, "mode %q is not valid: use create, append, or overwrite", mode)
}

// FileInfo describes one file inside the project.
type FileInfo struct {
	Name    string    `json:"name"`
	RelPath string    `json:"path"`
	Size    int64     `json:"size_bytes"`
	ModTime time.Time `json:"modified"`
}

// WriteFile writes content to a file inside the project. Mode create
// fails with file_exists when the target is already present and leaves
// it untouched; append concatenates; overwrite replaces the content
// entirely. Returns the number of bytes written.
func (p *Project) WriteFile(filename, content string, mode WriteMode) (int, error) {
	if err := ValidateMode(mode); err != nil {
		return 0, err
	}

	full, err := p.resolveMarkdown(filename)
	if err != nil {
		return 0, err
	}

	if dir := filepath.Dir(full); dir != p.RootPath {
		if err := os.MkdirAll(dir, 0o755); err != nil {
			return 0, fmt.Errorf("creating directory %s: %w", dir, err)
		}
	}

	flags := os.O_WRONLY | os.O_CREATE
	switch mode {
	case ModeCreate:
		flags |= os.O_EXCL
	case ModeAppend:
		flags |= os.O_APPEND
	case ModeOverwrite:
		flags |= os.O_TRUNC
	}

	f, err := os.OpenFile(full, flags, 0o644)
	if err != nil {
		if os.IsExist(err) {
			return 0, Errorf(KindFileExists, "file %s already exists; use append or overwrite", filepath.Base(full))
		}
		return 0, fmt.Errorf("opening %s: %w", full, err)
	}

	n, err := f.WriteString(content)
	if cerr := f.Close(); err == nil {
		err = cerr
	}
	if err != nil {
		return n, fmt.Errorf("writing %s: %w", full, err)
	}
	return n, nil
}

// ReadFile returns the content of a project file. Names without an
// extension get .md appended before lookup.
func (p *Project) ReadFile(filename string) (string, error) {
	full, err := p.resolveMarkdown(filename)
	if err != nil {
		return "", err
	}

	data, err := os.ReadFile(full)
	if err != nil {
		if os.IsNotExist(err) {
			return "", Errorf(KindFileNotFound, "file %s not found in active project", filename)
		}
		return "", fmt.Errorf("reading %s: %w", full, err)
	}
	return string(data), nil
}

// Stat returns size and timestamps for a project file.
func (p *Project) Stat(filename string) (*FileInfo, error) {
	full, err := p.resolveMarkdown(filename)
	if err != nil {
		return nil, err
	}

	st, err := os.Stat(full)
	if err != nil {
		if os.IsNotExist(err) {
			return nil, Errorf(KindFileNotFound, "file %s not found in active project", filename)
		}
		return nil, fmt.Errorf("stat %s: %w", full, err)
	}

	rel, _ := filepath.Rel(p.RootPath, full)
	return &FileInfo{
		Name:    filepath.Base(full),
		RelPath: rel,
		Size:    st.Size(),
		ModTime: st.ModTime(),
	}, nil
}

// List enumerates all files under the project root recursively,
// skipping dotfiles and .context* summaries. Results come back in
// natural sort order by relative path so repeated calls with no
// intervening writes are identical, and so exports see chapters in
// the same order (chapter_2 before chapter_10).
func (p *Project) List() ([]FileInfo, error) {
	var files []FileInfo

	err := filepath.WalkDir(p.RootPath, func(path string, d fs.DirEntry, err error) error {
		if err != nil {
			return err
		}
		name := d.Name()
		if strings.HasPrefix(name, ".") && path != p.RootPath {
			if d.IsDir() {
				return filepath.SkipDir
			}
			return nil
		}
		if d.IsDir() {
			return nil
		}
		st, err := d.Info()
		if err != nil {
			return err
		}
		rel, err := filepath.Rel(p.RootPath, path)
		if err != nil {
			return err
		}
		files = append(files, FileInfo{
			Name:    name,
			RelPath: rel,
			Size:    st.Size(),
			ModTime: st.ModTime(),
		})
		return nil
	})
	if err != nil {
		return nil, fmt.Errorf("listing project files: %w", err)
	}

	sort.Slice(files, func(i, j int) bool {
		return NaturalLess(files[i].RelPath, files[j].RelPath)
	})
	return files, nil
}

// NaturalLess compares two strings treating digit runs as numbers, so
// chapter_2 sorts before chapter_10. Shared by List and the export
// document scanner to keep both orderings identical.
func NaturalLess(a, b string) bool {
	for a != "" && b != "" {
		ar, br := rune(a[0]), rune(b[0])
		if unicode.IsDigit(ar) && unicode.IsDigit(br) {
			an, arest := leadingInt(a)
			bn, brest := leadingInt(b)
			if an != bn {
				return an < bn
			}
			a, b = arest, brest
			continue
		}
		al, bl := unicode.ToLower(ar), unicode.ToLower(br)
		if al != bl {
			return al < bl
		}
		a, b = a[1:], b[1:]
	}
	return a == "" && b != ""
}

// leadingInt splits off the leading digit run of s as a number.
func leadingInt(s string) (int64, string) {
	var n int64
	i := 0
	for i < len(s) && s[i] >= '0' && s[i] <= '9' {
		// Cap to avoid overflow on pathological names.
		if n < 1<<50 {
			n = n*10 + int64(s[i]-'0')
		}
		i++
	}
	return n, s[i:]
}
