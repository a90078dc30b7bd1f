package config

import (
	"io"
	"os"
	"time"

	"github.com/go-gl/mathgl/mgl32"
	"github.com/pkg/errors"
	"go.uber.org/zap/zapcore"
	"gopkg.in/yaml.v3"
)

// 60 Hz
const DefaultFrameInterval = 16666667 * time.Nanosecond

type Config struct {
	Window Window `yaml:"window"`
	Camera Camera `yaml:"camera"`
	Render Render `yaml:"render"`
	Scene  Scene  `yaml:"scene"`
	Log    Log    `yaml:"log"`
}

type Window struct {
	Width     int    `yaml:"width"`
	Height    int    `yaml:"height"`
	Title     string `yaml:"title"`
	DepthBits int    `yaml:"depth_bits"`
	Samples   int    `yaml:"samples"`
	VSync     bool   `yaml:"vsync"`
}

type Camera struct {
	Position  mgl32.Vec3 `yaml:"position,flow"`
	Direction mgl32.Vec3 `yaml:"direction,flow"`
	Up        mgl32.Vec3 `yaml:"up,flow"`
	FOV       float32    `yaml:"fov"`
}

type Render struct {
	FrameInterval time.Duration `yaml:"frame_interval"`
	ClearColor    [3]float32    `yaml:"clear_color,flow"`
}

type Scene struct {
	Teapots int `yaml:"teapots"`
}

type Log struct {
	Level       string `yaml:"level"`
	Development bool   `yaml:"development"`
}

func Default() *Config {
	return &Config{
		Window: Window{
			Width:     900,
			Height:    700,
			Title:     "OpenGl Hello World.",
			DepthBits: 24,
			Samples:   4,
			VSync:     true,
		},
		Camera: Camera{
			Position:  mgl32.Vec3{0, -2, 2},
			Direction: mgl32.Vec3{0, 1, -1},
			Up:        mgl32.Vec3{0, 1, 0},
			FOV:       60,
		},
		Render: Render{
			FrameInterval: DefaultFrameInterval,
		},
		Scene: Scene{
			Teapots: 2,
		},
		Log: Log{
			Level: "info",
		},
	}
}

// Load reads a YAML file over the defaults. Unknown keys are an error.
func Load(path string) (*Config, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, errors.Wrapf(err, "Cannot open config %q", path)
	}
	defer f.Close()

	cfg, err := Decode(f)
	if err != nil {
		return nil, errors.Wrapf(err, "Config %q", path)
	}
	return cfg, nil
}

func Decode(r io.Reader) (*Config, error) {
	cfg := Default()

	decoder := yaml.NewDecoder(r)
	decoder.KnownFields(true)
	if err := decoder.Decode(cfg); err != nil && err != io.EOF {
		return nil, errors.Wrap(err, "Unmarshaling error")
	}

	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return cfg, nil
}

func (c *Config) Validate() error {
	if c.Window.Width <= 0 || c.Window.Height <= 0 {
		return errors.Errorf("window size %dx%d must be positive", c.Window.Width, c.Window.Height)
	}
	if c.Window.DepthBits < 0 || c.Window.Samples < 0 {
		return errors.Errorf("depth bits %d and samples %d can't be negative", c.Window.DepthBits, c.Window.Samples)
	}
	if !(c.Camera.FOV > 0 && c.Camera.FOV < 180) {
		return errors.Errorf("camera fov %v must be in (0, 180)", c.Camera.FOV)
	}
	if c.Camera.Direction.Len() == 0 {
		return errors.New("camera direction is zero")
	}
	if c.Camera.Up.Len() == 0 {
		return errors.New("camera up is zero")
	}
	if c.Render.FrameInterval <= 0 {
		return errors.Errorf("frame interval %v must be positive", c.Render.FrameInterval)
	}
	if c.Scene.Teapots < 0 {
		return errors.Errorf("teapots count %d can't be negative", c.Scene.Teapots)
	}
	if _, err := zapcore.ParseLevel(c.Log.Level); err != nil {
		return errors.Wrap(err, "log level")
	}
	return nil
}
