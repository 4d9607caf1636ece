package registry

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/google/go-cmp/cmp"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestSnapshot_RoundTrip(t *testing.T) {
	reg := openSample(t)
	path := filepath.Join(t.TempDir(), "catalog.gods")

	require.NoError(t, reg.SaveSnapshot(path))

	restored, err := OpenSnapshot(path)
	require.NoError(t, err)

	assert.Equal(t, reg.Source(), restored.Source())
	assert.Equal(t, reg.Columns(), restored.Columns())
	assert.Equal(t, reg.Names(), restored.Names())
	if diff := cmp.Diff(reg.ListAll(), restored.ListAll()); diff != "" {
		t.Errorf("records mismatch (-want +got):\n%s", diff)
	}

	pretty, err := restored.Pretty(1)
	require.NoError(t, err)
	assert.Equal(t, "[1] allweather - TRANSWEATHER | Multi-weather | Size: ~19000 images", pretty)
}

func TestSnapshot_LeavesSourceUntouched(t *testing.T) {
	source := writeCatalog(t, sampleCatalog)
	reg, err := Open(source)
	require.NoError(t, err)

	require.NoError(t, reg.SaveSnapshot(filepath.Join(t.TempDir(), "catalog.gods")))

	content, err := os.ReadFile(source)
	require.NoError(t, err)
	assert.Equal(t, sampleCatalog, string(content))
}

func TestOpenSnapshot_Missing(t *testing.T) {
	reg, err := OpenSnapshot(filepath.Join(t.TempDir(), "missing.gods"))
	assert.Nil(t, reg)
	assert.ErrorIs(t, err, ErrSourceNotFound)
}

func TestOpenSnapshot_Corrupt(t *testing.T) {
	path := filepath.Join(t.TempDir(), "corrupt.gods")
	require.NoError(t, os.WriteFile(path, []byte("not a snapshot at all"), 0o644))

	reg, err := OpenSnapshot(path)
	assert.Nil(t, reg)
	assert.ErrorIs(t, err, ErrMalformedSource)
}
