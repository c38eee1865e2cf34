package main

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoadManifest(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "manifest.json")
	contents := `{"entries":[{"name":"a","in":"a.vxl","out":"a.out.vxl"},{"name":"b","in":"b.vxl","out":"b.out.vxl"}]}`
	require.NoError(t, os.WriteFile(path, []byte(contents), 0o644))

	m, err := LoadManifest(path)
	require.NoError(t, err)
	require.Len(t, m.Entries, 2)
	assert.Equal(t, "a", m.Entries[0].Name)
	assert.Equal(t, "b.out.vxl", m.Entries[1].Out)
}

func TestLoadManifestMissingFile(t *testing.T) {
	_, err := LoadManifest("/nonexistent/manifest.json")
	require.Error(t, err)
}
