package render

import (
	"errors"
	"fmt"
	"sync"
)

// Export formats.
const (
	FormatPDF  = "pdf"
	FormatEPUB = "epub"
)

// ErrUnavailable signals that no generator is compiled in for the
// requested format. Callers surface it as render_unavailable so the
// user can be told to install the export build rather than retry.
var ErrUnavailable = errors.New("generator not available")

// Generator produces one export artifact from the collected documents.
// Generate returns the path of the written file.
type Generator interface {
	Generate(docs []Document, opts Options) (string, error)
}

// Options carries export metadata. OutputPath is always set by the
// caller; Title, Author and Description have been defaulted already.
type Options struct {
	OutputPath  string
	Title       string
	Author      string
	Description string
}

// Probe lazily constructs a Generator. It runs at most once per format
// per Registry; the outcome (success or failure) is cached for the
// process lifetime.
type Probe func() (Generator, error)

// Registry maps formats to generators. Construct one per server (or
// per test) and register probes into it; an empty Registry reports
// every format unavailable.
type Registry struct {
	mu     sync.Mutex
	probes map[string]Probe
	cache  map[string]probeResult
}

type probeResult struct {
	gen Generator
	err error
}

// NewRegistry creates an empty generator registry.
func NewRegistry() *Registry {
	return &Registry{
		probes: make(map[string]Probe),
		cache:  make(map[string]probeResult),
	}
}

// Register adds a probe for a format. Later registrations replace
// earlier ones until the format has been acquired once.
func (r *Registry) Register(format string, probe Probe) {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.probes[format] = probe
}

// Acquire returns the generator for a format, running its probe on
// first use. Unregistered formats and failed probes both come back as
// ErrUnavailable (wrapped with the probe's failure where there is one).
func (r *Registry) Acquire(format string) (Generator, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	if res, ok := r.cache[format]; ok {
		return res.gen, res.err
	}

	probe, ok := r.probes[format]
	if !ok {
		res := probeResult{err: fmt.Errorf("%s: %w", format, ErrUnavailable)}
		r.cache[format] = res
		return nil, res.err
	}

	gen, err := probe()
	if err != nil {
		err = fmt.Errorf("%s: %w: %v", format, ErrUnavailable, err)
		gen = nil
	}
	r.cache[format] = probeResult{gen: gen, err: err}
	return gen, err
}

// Formats returns the registered format names, mainly for logging.
func (r *Registry) Formats() []string {
	r.mu.Lock()
	defer r.mu.Unlock()
	names := make([]string, 0, len(r.probes))
	for name := range r.probes {
		names = append(names, name)
	}
	return names
}
