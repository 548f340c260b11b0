//go:build !noexport

package render

import (
	"fmt"
	"strings"
	"time"

	"github.com/jung-kurt/gofpdf"
)

// pdfGenerator renders documents into a paginated A4 PDF: cover page,
// table of contents, then one chapter per document with heading-aware
// layout and a page-number footer.
type pdfGenerator struct{}

func newPDFGenerator() (Generator, error) {
	return &pdfGenerator{}, nil
}

func (g *pdfGenerator) Generate(docs []Document, opts Options) (string, error) {
	pdf := gofpdf.New("P", "mm", "A4", "")
	tr := pdf.UnicodeTranslatorFromDescriptor("")

	pdf.SetTitle(opts.Title, true)
	if opts.Author != "" {
		pdf.SetAuthor(opts.Author, true)
	}
	pdf.SetMargins(25, 25, 25)
	pdf.SetAutoPageBreak(true, 25)

	pdf.SetFooterFunc(func() {
		if pdf.PageNo() == 1 {
			return // no page number on the cover
		}
		pdf.SetY(-18)
		pdf.SetFont("Times", "I", 9)
		pdf.CellFormat(0, 10, fmt.Sprintf("%d", pdf.PageNo()), "", 0, "C", false, 0, "")
	})

	g.writeCover(pdf, tr, opts.Title, len(docs))
	g.writeTOC(pdf, tr, docs)
	for _, doc := range docs {
		g.writeChapter(pdf, tr, doc)
	}

	if err := pdf.OutputFileAndClose(opts.OutputPath); err != nil {
		return "", fmt.Errorf("writing PDF: %w", err)
	}
	return opts.OutputPath, nil
}

func (g *pdfGenerator) writeCover(pdf *gofpdf.Fpdf, tr func(string) string, title string, fileCount int) {
	pdf.AddPage()
	pdf.SetY(90)
	pdf.SetFont("Times", "B", 30)
	pdf.MultiCell(0, 14, tr(title), "", "C", false)
	pdf.Ln(16)
	pdf.SetFont("Times", "", 12)
	pdf.MultiCell(0, 7, tr(fmt.Sprintf("%d chapters/sections", fileCount)), "", "C", false)
	pdf.MultiCell(0, 7, tr("Generated on "+time.Now().Format("January 2, 2006")), "", "C", false)
}

func (g *pdfGenerator) writeTOC(pdf *gofpdf.Fpdf, tr func(string) string, docs []Document) {
	pdf.AddPage()
	pdf.SetFont("Times", "B", 20)
	pdf.CellFormat(0, 12, tr("Table of Contents"), "", 1, "C", false, 0, "")
	pdf.Ln(6)
	pdf.SetFont("Times", "", 12)
	for i, doc := range docs {
		pdf.CellFormat(0, 8, tr(fmt.Sprintf("%d.  %s", i+1, doc.Title)), "", 1, "L", false, 0, "")
	}
}

func (g *pdfGenerator) writeChapter(pdf *gofpdf.Fpdf, tr func(string) string, doc Document) {
	pdf.AddPage()
	pdf.SetFont("Times", "B", 22)
	pdf.MultiCell(0, 11, tr(doc.Title), "", "L", false)
	pdf.Ln(5)

	var paragraph []string
	flush := func() {
		if len(paragraph) == 0 {
			return
		}
		pdf.SetFont("Times", "", 12)
		pdf.MultiCell(0, 6, tr(strings.Join(paragraph, " ")), "", "J", false)
		pdf.Ln(3)
		paragraph = paragraph[:0]
	}

	firstHeadingSkipped := false
	for _, line := range strings.Split(doc.Body, "\n") {
		trimmed := strings.TrimSpace(line)
		switch {
		case trimmed == "":
			flush()
		case strings.HasPrefix(trimmed, "#"):
			flush()
			level := headingLevel(trimmed)
			text := strings.TrimSpace(strings.TrimLeft(trimmed, "#"))
			// The chapter title is already printed above; skip its
			// duplicate level-1 heading in the body.
			if level == 1 && !firstHeadingSkipped && text == doc.Title {
				firstHeadingSkipped = true
				continue
			}
			pdf.SetFont("Times", "B", headingSize(level))
			pdf.MultiCell(0, 8, tr(text), "", "L", false)
			pdf.Ln(2)
		default:
			paragraph = append(paragraph, trimmed)
		}
	}
	flush()
}

func headingLevel(line string) int {
	level := 0
	for level < len(line) && line[level] == '#' {
		level++
	}
	if level > 6 {
		level = 6
	}
	return level
}

func headingSize(level int) float64 {
	switch level {
	case 1:
		return 20
	case 2:
		return 16
	case 3:
		return 14
	default:
		return 12
	}
}
