package main

import (
	"io"
	"os"
	"path/filepath"
	"testing"

	"github.com/pkg/errors"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/mogaika/gl_teapot/mesh"
)

func TestExport(t *testing.T) {
	dir := t.TempDir()
	for _, name := range []string{"teapot.glb", "teapot.gltf", "TEAPOT.FBX"} {
		path := filepath.Join(dir, name)
		require.NoError(t, export(mesh.Teapot(), path), name)
		st, err := os.Stat(path)
		require.NoError(t, err)
		assert.Greater(t, st.Size(), int64(1000), name)
	}
}

func TestExportUnknownFormat(t *testing.T) {
	path := filepath.Join(t.TempDir(), "teapot.obj")
	assert.Error(t, export(mesh.Teapot(), path))
	_, err := os.Stat(path)
	assert.True(t, os.IsNotExist(err))
}

func TestWriteFileFailureRemovesFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "teapot.glb")
	failure := errors.New("disk full")

	err := writeFile(path, func(w io.Writer) error {
		_, werr := w.Write([]byte("glTF"))
		require.NoError(t, werr)
		return failure
	})
	assert.True(t, errors.Is(err, failure))
	_, err = os.Stat(path)
	assert.True(t, os.IsNotExist(err))
}

func TestWriteFileCreateFailure(t *testing.T) {
	path := filepath.Join(t.TempDir(), "missing", "teapot.glb")
	called := false
	err := writeFile(path, func(io.Writer) error {
		called = true
		return nil
	})
	assert.Error(t, err)
	assert.False(t, called)
}
