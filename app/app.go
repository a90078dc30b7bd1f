// Package app drives the single threaded frame loop: it waits for the next
// tick or input, applies the input to the scene and renders one frame.
package app

import (
	"context"
	"time"

	"github.com/pkg/errors"
	"go.uber.org/zap"

	"github.com/mogaika/gl_teapot/config"
	"github.com/mogaika/gl_teapot/r3d"
	"github.com/mogaika/gl_teapot/render"
	"github.com/mogaika/gl_teapot/scene"
	"github.com/mogaika/gl_teapot/utils"
)

type App struct {
	source  EventSource
	camera  *r3d.Camera
	program render.Program
	objects []*scene.Object
	drawn   []render.Renderable

	clear    render.Color
	params   render.DrawParameters
	interval time.Duration
	now      func() time.Time
	log      *zap.SugaredLogger

	scope  *render.Scope
	frames int
}

type Option func(a *App)

func WithClock(now func() time.Time) Option {
	return func(a *App) { a.now = now }
}

func WithFrameInterval(interval time.Duration) Option {
	return func(a *App) { a.interval = interval }
}

func WithClearColor(c render.Color) Option {
	return func(a *App) { a.clear = c }
}

func WithDrawParameters(params render.DrawParameters) Option {
	return func(a *App) { a.params = params }
}

func WithLogger(log *zap.SugaredLogger) Option {
	return func(a *App) { a.log = log }
}

// New takes ownership of program and objects. They are released when Run
// returns, or by Close if Run is never called.
func New(source EventSource, camera *r3d.Camera, program render.Program, objects []*scene.Object, opts ...Option) *App {
	a := &App{
		source:   source,
		camera:   camera,
		program:  program,
		objects:  objects,
		clear:    render.Black,
		params:   render.DefaultDrawParameters,
		interval: config.DefaultFrameInterval,
		now:      time.Now,
		log:      zap.NewNop().Sugar(),
		scope:    render.NewScope(),
	}
	for _, opt := range opts {
		opt(a)
	}

	a.scope.Hold(program)
	a.drawn = make([]render.Renderable, len(objects))
	for i, o := range objects {
		a.scope.Hold(o)
		a.drawn[i] = o
	}
	return a
}

// Run loops until a close is requested, ctx is done or a frame fails. A
// close seen while waiting ends the loop before that frame is drawn.
func (a *App) Run(ctx context.Context) error {
	defer a.Close()

	pacer := NewPacer(a.now(), a.interval)
	a.log.Infow("Frame loop started", "interval", a.interval, "objects", len(a.objects))

	for {
		events := a.source.WaitUntil(pacer.Next(a.now()))
		if a.dispatch(events) {
			a.log.Infow("Close requested", "frames", a.frames)
			return nil
		}
		if err := ctx.Err(); err != nil {
			a.log.Infow("Frame loop cancelled", "frames", a.frames)
			return err
		}

		frame := a.source.NewFrame()
		if err := render.DrawFrame(frame, a.clear, a.drawn, a.camera, a.program, a.params); err != nil {
			return errors.Wrapf(err, "Frame %d", a.frames)
		}
		a.frames++
	}
}

// Close releases everything New took ownership of.
func (a *App) Close() {
	a.scope.Release()
}

// Frames is the number of frames presented so far.
func (a *App) Frames() int { return a.frames }

// dispatch applies events in order and reports whether the loop must stop.
// Events after a close are dropped.
func (a *App) dispatch(events []Event) bool {
	for _, ev := range events {
		switch e := ev.(type) {
		case CloseEvent:
			return true
		case ResizeEvent:
			a.resize(e)
		case KeyEvent:
			if a.key(e) {
				return true
			}
		default:
			a.log.Warnw("Unknown event", "event", ev)
		}
	}
	return false
}

func (a *App) resize(e ResizeEvent) {
	if e.Width < 0 || e.Height < 0 {
		a.log.Warnw("Negative resize ignored", "width", e.Width, "height", e.Height)
		return
	}
	err := a.camera.UpdateResolution(r3d.Resolution{Width: uint32(e.Width), Height: uint32(e.Height)})
	if err != nil {
		a.log.Debugw("Resize ignored", "width", e.Width, "height", e.Height, "error", err)
		return
	}
	a.log.Debugw("Resized", "width", e.Width, "height", e.Height, "aspect", a.camera.AspectRatio())
}

func (a *App) key(e KeyEvent) bool {
	if e.Key == KeyEscape {
		return true
	}
	if e.Action == Release {
		return false
	}

	switch e.Key {
	case KeyW:
		if len(a.objects) != 0 {
			a.objects[0].ScaleUp()
		}
	case KeyS:
		if len(a.objects) != 0 {
			a.objects[0].ScaleDown()
		}
	case KeyD:
		if e.Action == Press {
			a.dump()
		}
	}
	return false
}

type objectState struct {
	Name      string
	Transform r3d.Transform
}

func (a *App) dump() {
	objects := make([]objectState, len(a.objects))
	for i, o := range a.objects {
		objects[i] = objectState{Name: o.Name, Transform: o.Transform()}
	}
	utils.LogDump(a.log, "State", a.frames, a.camera, objects)
}
