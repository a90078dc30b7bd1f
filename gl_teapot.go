package main

import (
	"context"
	"flag"
	"log"
	"os"
	"os/signal"
	"runtime"

	"github.com/pkg/errors"
	"go.uber.org/zap"

	"github.com/mogaika/gl_teapot/app"
	"github.com/mogaika/gl_teapot/config"
	"github.com/mogaika/gl_teapot/glbackend"
	"github.com/mogaika/gl_teapot/r3d"
	"github.com/mogaika/gl_teapot/render"
	"github.com/mogaika/gl_teapot/scene"
	"github.com/mogaika/gl_teapot/utils"
)

func init() {
	// glfw and the gl context live on the main thread
	runtime.LockOSThread()
}

func main() {
	var configPath, logLevel string
	var glDebug bool
	flag.StringVar(&configPath, "config", "", "Path to yaml config, built in defaults when empty")
	flag.StringVar(&logLevel, "loglevel", "", "Override log level: debug, info, warn, error")
	flag.BoolVar(&glDebug, "gldebug", false, "Request a debug context and log OpenGL messages")
	flag.Parse()

	cfg := config.Default()
	if configPath != "" {
		var err error
		if cfg, err = config.Load(configPath); err != nil {
			log.Fatal(err)
		}
	}
	if logLevel != "" {
		cfg.Log.Level = logLevel
	}

	logger, err := utils.NewLogger(cfg.Log.Level, cfg.Log.Development)
	if err != nil {
		log.Fatal(err)
	}
	defer logger.Sync()

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt)
	defer stop()

	if err := run(ctx, cfg, logger, glDebug); err != nil {
		logger.Fatalw("Teapot demo failed", "error", err)
	}
}

func run(ctx context.Context, cfg *config.Config, log *zap.SugaredLogger, glDebug bool) error {
	camera, err := r3d.NewCamera(cfg.Camera.Position, cfg.Camera.Direction,
		r3d.Resolution{Width: uint32(cfg.Window.Width), Height: uint32(cfg.Window.Height)},
		cfg.Camera.FOV, r3d.WithWorldUp(cfg.Camera.Up))
	if err != nil {
		return errors.Wrap(err, "Camera")
	}

	window, err := glbackend.NewWindow(cfg.Window, log, glDebug)
	if err != nil {
		return err
	}
	defer window.Destroy()
	device := window.Device()

	program, err := device.CompileProgram(glbackend.TeapotVertexShader, glbackend.TeapotFragmentShader)
	if err != nil {
		return errors.Wrap(err, "Teapot program")
	}
	objects, err := scene.Teapots(device, cfg.Scene.Teapots)
	if err != nil {
		program.Release()
		return err
	}

	cc := cfg.Render.ClearColor
	a := app.New(window, camera, program, objects,
		app.WithLogger(log),
		app.WithFrameInterval(cfg.Render.FrameInterval),
		app.WithClearColor(render.Color{R: cc[0], G: cc[1], B: cc[2]}))

	if err := a.Run(ctx); err != nil && !errors.Is(err, context.Canceled) {
		return err
	}
	log.Infow("Bye", "frames", a.Frames())
	return nil
}
