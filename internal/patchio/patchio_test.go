package patchio

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/voog-synth/voog/internal/patch"
)

func TestEncodeDecode_RoundTrip(t *testing.T) {
	p := patch.Lead()
	data, err := Encode(p)
	require.NoError(t, err)

	got, err := Decode(data)
	require.NoError(t, err)
	assert.Equal(t, p, got)
}

func TestManager_SaveAndLoad(t *testing.T) {
	dir := t.TempDir()
	m, err := NewManager(dir)
	require.NoError(t, err)

	p := patch.Bass()
	require.NoError(t, m.Save(p))

	got, err := m.Load("bass")
	require.NoError(t, err)
	assert.Equal(t, p, got)

	names, err := m.ListSaved()
	require.NoError(t, err)
	assert.Contains(t, names, "bass")
}

func TestManager_LoadMissingPatchErrors(t *testing.T) {
	dir := t.TempDir()
	m, err := NewManager(dir)
	require.NoError(t, err)

	_, err = m.Load("does-not-exist")
	assert.Error(t, err)
}

func TestManager_ListSavedIgnoresNonJSON(t *testing.T) {
	dir := t.TempDir()
	m, err := NewManager(dir)
	require.NoError(t, err)
	require.NoError(t, m.Save(patch.Init()))

	stray := filepath.Join(dir, "notes.txt")
	require.NoError(t, os.WriteFile(stray, []byte("hello"), 0o644))

	names, err := m.ListSaved()
	require.NoError(t, err)
	assert.Equal(t, []string{"init"}, names)
}
