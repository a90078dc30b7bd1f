package config

import (
	"os"
	"path/filepath"
	"strings"
	"testing"
	"time"

	"github.com/go-gl/mathgl/mgl32"
	"github.com/pkg/errors"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestDefaultIsValid(t *testing.T) {
	cfg := Default()
	require.NoError(t, cfg.Validate())
	assert.Equal(t, 900, cfg.Window.Width)
	assert.Equal(t, 700, cfg.Window.Height)
	assert.Equal(t, float32(60), cfg.Camera.FOV)
	assert.Equal(t, 16666667*time.Nanosecond, cfg.Render.FrameInterval)
}

func TestLoadFull(t *testing.T) {
	cfg, err := Load(filepath.Join("testdata", "full.yaml"))
	require.NoError(t, err)

	assert.Equal(t, Window{Width: 1280, Height: 720, Title: "teapots", DepthBits: 16, Samples: 0, VSync: false}, cfg.Window)
	assert.Equal(t, mgl32.Vec3{0, 0, -3}, cfg.Camera.Position)
	assert.Equal(t, mgl32.Vec3{0, 0, 1}, cfg.Camera.Direction)
	// not in the file
	assert.Equal(t, mgl32.Vec3{0, 1, 0}, cfg.Camera.Up)
	assert.Equal(t, float32(75), cfg.Camera.FOV)
	assert.Equal(t, 33*time.Millisecond, cfg.Render.FrameInterval)
	assert.Equal(t, [3]float32{0.2, 0.2, 0.7}, cfg.Render.ClearColor)
	assert.Equal(t, 1, cfg.Scene.Teapots)
	assert.Equal(t, Log{Level: "debug", Development: true}, cfg.Log)
}

func TestLoadExample(t *testing.T) {
	cfg, err := Load(filepath.Join("..", "teapot.example.yaml"))
	require.NoError(t, err)
	assert.Equal(t, Default(), cfg)
}

func TestDecodeEmpty(t *testing.T) {
	cfg, err := Decode(strings.NewReader(""))
	require.NoError(t, err)
	assert.Equal(t, Default(), cfg)
}

func TestDecodeErrors(t *testing.T) {
	for _, tc := range []struct {
		name string
		src  string
	}{
		{"unknown key", "window:\n  widht: 10\n"},
		{"zero width", "window:\n  width: 0\n"},
		{"fov 180", "camera:\n  fov: 180\n"},
		{"zero direction", "camera:\n  direction: [0, 0, 0]\n"},
		{"short vector", "camera:\n  position: [1, 2]\n"},
		{"zero up", "camera:\n  up: [0, 0, 0]\n"},
		{"negative interval", "render:\n  frame_interval: -1s\n"},
		{"negative teapots", "scene:\n  teapots: -1\n"},
		{"bad level", "log:\n  level: loud\n"},
		{"not yaml", "window: [\n"},
	} {
		t.Run(tc.name, func(t *testing.T) {
			_, err := Decode(strings.NewReader(tc.src))
			assert.Error(t, err)
		})
	}
}

func TestLoadMissingFile(t *testing.T) {
	_, err := Load(filepath.Join(t.TempDir(), "nope.yaml"))
	require.Error(t, err)
	assert.True(t, os.IsNotExist(errors.Cause(err)))
}
