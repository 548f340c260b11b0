//go:build !noexport

package render

// RegisterDefaults wires the built-in PDF and EPUB generators into the
// registry. Building with -tags noexport compiles the generators (and
// gofpdf/go-epub) out entirely; the registry then reports both formats
// unavailable and the export tools degrade gracefully.
func RegisterDefaults(r *Registry) {
	r.Register(FormatPDF, newPDFGenerator)
	r.Register(FormatEPUB, newEPUBGenerator)
}
