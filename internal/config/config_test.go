package config

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoad_OverridesOnlyGivenFields(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "voog.yaml")
	require.NoError(t, os.WriteFile(path, []byte("buffer_size: 512\n"), 0o644))

	rt, err := Load(path)
	require.NoError(t, err)
	assert.Equal(t, 512, rt.BufferSize)
	assert.Equal(t, float64(defaultSampleRate), rt.SampleRate)
}

func TestLoad_MissingFileErrors(t *testing.T) {
	_, err := Load(filepath.Join(t.TempDir(), "does-not-exist.yaml"))
	assert.Error(t, err)
}

func TestApply_OverridesPackageVars(t *testing.T) {
	defer Apply(Default())

	Apply(Runtime{SampleRate: 48000, BufferSize: 128})
	assert.Equal(t, 48000.0, SampleRate)
	assert.Equal(t, 128, BufferSize)
}
