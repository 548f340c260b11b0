package render

import (
	"errors"
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type fakeGenerator struct{}

func (fakeGenerator) Generate(docs []Document, opts Options) (string, error) {
	return opts.OutputPath, nil
}

func TestAcquire_UnregisteredFormat(t *testing.T) {
	r := NewRegistry()

	_, err := r.Acquire(FormatPDF)
	require.Error(t, err)
	assert.True(t, errors.Is(err, ErrUnavailable))
}

func TestAcquire_ProbeRunsOnce(t *testing.T) {
	r := NewRegistry()

	calls := 0
	r.Register(FormatPDF, func() (Generator, error) {
		calls++
		return fakeGenerator{}, nil
	})

	for i := 0; i < 3; i++ {
		gen, err := r.Acquire(FormatPDF)
		require.NoError(t, err)
		require.NotNil(t, gen)
	}
	assert.Equal(t, 1, calls)
}

func TestAcquire_FailedProbeIsCachedAsUnavailable(t *testing.T) {
	r := NewRegistry()

	calls := 0
	r.Register(FormatEPUB, func() (Generator, error) {
		calls++
		return nil, fmt.Errorf("library missing")
	})

	for i := 0; i < 2; i++ {
		_, err := r.Acquire(FormatEPUB)
		require.Error(t, err)
		assert.True(t, errors.Is(err, ErrUnavailable))
	}
	assert.Equal(t, 1, calls)
}

func TestRegisterDefaults_ProvidesBothFormats(t *testing.T) {
	r := NewRegistry()
	RegisterDefaults(r)

	// In the default build both generators are compiled in; under
	// -tags noexport this test is skipped via the availability check.
	for _, format := range []string{FormatPDF, FormatEPUB} {
		gen, err := r.Acquire(format)
		if errors.Is(err, ErrUnavailable) {
			t.Skipf("%s generator not compiled in", format)
		}
		require.NoError(t, err)
		assert.NotNil(t, gen)
	}
}
