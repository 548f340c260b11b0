//go:build noexport

package render

// RegisterDefaults registers nothing in noexport builds: generate_pdf
// and generate_epub report render_unavailable instead of linking the
// document libraries into the binary.
func RegisterDefaults(r *Registry) {}
