//go:build !noexport

package render

import (
	"bytes"
	"fmt"
	"html"
	"os"

	epub "github.com/go-shiori/go-epub"
	"github.com/yuin/goldmark"
)

// epubCSS is the shared stylesheet embedded in every generated ebook.
const epubCSS = `body {
	font-family: "Georgia", "Times New Roman", serif;
	line-height: 1.6;
	margin: 0;
	padding: 1em;
}

h1.chapter-title {
	font-size: 2.2em;
	text-align: center;
	margin-bottom: 1.5em;
	page-break-after: avoid;
}

h1, h2, h3, h4, h5, h6 {
	page-break-after: avoid;
}

p {
	margin-bottom: 1em;
	text-align: justify;
	orphans: 2;
	widows: 2;
}

blockquote {
	border-left: 3px solid #888;
	margin: 1em 0;
	padding: 0 1em;
	font-style: italic;
}

pre, code {
	font-family: "Courier New", monospace;
	font-size: 0.9em;
}
`

// epubGenerator renders documents into an EPUB: one XHTML section per
// document, markdown converted with goldmark, shared stylesheet, and
// title/author/description metadata.
type epubGenerator struct {
	md goldmark.Markdown
}

func newEPUBGenerator() (Generator, error) {
	return &epubGenerator{md: goldmark.New()}, nil
}

func (g *epubGenerator) Generate(docs []Document, opts Options) (string, error) {
	book, err := epub.NewEpub(opts.Title)
	if err != nil {
		return "", fmt.Errorf("creating epub: %w", err)
	}
	book.SetLang("en")
	if opts.Author != "" {
		book.SetAuthor(opts.Author)
	}
	if opts.Description != "" {
		book.SetDescription(opts.Description)
	}

	// go-epub takes CSS by file path, so stage the stylesheet in a
	// temp file for the duration of the build.
	cssFile, err := os.CreateTemp("", "inkwell-*.css")
	if err != nil {
		return "", fmt.Errorf("staging stylesheet: %w", err)
	}
	defer os.Remove(cssFile.Name())
	if _, err := cssFile.WriteString(epubCSS); err != nil {
		cssFile.Close()
		return "", fmt.Errorf("staging stylesheet: %w", err)
	}
	if err := cssFile.Close(); err != nil {
		return "", fmt.Errorf("staging stylesheet: %w", err)
	}

	cssPath, err := book.AddCSS(cssFile.Name(), "style.css")
	if err != nil {
		return "", fmt.Errorf("adding stylesheet: %w", err)
	}

	for i, doc := range docs {
		var buf bytes.Buffer
		if err := g.md.Convert([]byte(doc.Body), &buf); err != nil {
			return "", fmt.Errorf("converting %s: %w", doc.RelPath, err)
		}

		body := fmt.Sprintf("<h1 class=%q>%s</h1>\n%s",
			"chapter-title", html.EscapeString(doc.Title), buf.String())

		filename := fmt.Sprintf("chapter_%02d.xhtml", i+1)
		if _, err := book.AddSection(body, doc.Title, filename, cssPath); err != nil {
			return "", fmt.Errorf("adding section %s: %w", filename, err)
		}
	}

	if err := book.Write(opts.OutputPath); err != nil {
		return "", fmt.Errorf("writing EPUB: %w", err)
	}
	return opts.OutputPath, nil
}
