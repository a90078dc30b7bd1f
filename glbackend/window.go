// Package glbackend puts the render and app interfaces on top of a GLFW
// window with an OpenGL 4.3 core context.
package glbackend

import (
	"time"

	"github.com/go-gl/glfw/v3.3/glfw"
	"github.com/pkg/errors"
	"go.uber.org/zap"

	"github.com/mogaika/gl_teapot/app"
	"github.com/mogaika/gl_teapot/config"
	"github.com/mogaika/gl_teapot/render"
)

var _ app.EventSource = (*Window)(nil)

// Window owns the GLFW library, the window and its context. Everything,
// Destroy included, must run on the locked main thread.
type Window struct {
	window *glfw.Window
	device *Device
	log    *zap.SugaredLogger

	queue []app.Event
}

// NewWindow opens the window and makes its context current. With debug set
// the context is created with debug output routed to the logger.
func NewWindow(cfg config.Window, log *zap.SugaredLogger, debug bool) (*Window, error) {
	if err := glfw.Init(); err != nil {
		return nil, errors.Wrap(err, "Failed to initialize glfw")
	}

	glfw.WindowHint(glfw.ContextVersionMajor, 4)
	glfw.WindowHint(glfw.ContextVersionMinor, 3)
	glfw.WindowHint(glfw.OpenGLProfile, glfw.OpenGLCoreProfile)
	glfw.WindowHint(glfw.OpenGLForwardCompatible, glfw.True)
	glfw.WindowHint(glfw.DepthBits, cfg.DepthBits)
	glfw.WindowHint(glfw.Samples, cfg.Samples)
	glfw.WindowHint(glfw.Resizable, glfw.True)
	if debug {
		glfw.WindowHint(glfw.OpenGLDebugContext, glfw.True)
	}

	window, err := glfw.CreateWindow(cfg.Width, cfg.Height, cfg.Title, nil, nil)
	if err != nil {
		glfw.Terminate()
		return nil, errors.Wrap(err, "Failed to create window")
	}
	window.MakeContextCurrent()
	if cfg.VSync {
		glfw.SwapInterval(1)
	} else {
		glfw.SwapInterval(0)
	}

	w := &Window{window: window, log: log}

	if w.device, err = newDevice(log, debug); err != nil {
		window.Destroy()
		glfw.Terminate()
		return nil, err
	}

	window.SetFramebufferSizeCallback(w.onFramebufferSize)
	window.SetCloseCallback(w.onClose)
	window.SetKeyCallback(w.onKey)

	width, height := window.GetFramebufferSize()
	log.Infow("Window created", "width", cfg.Width, "height", cfg.Height,
		"framebuffer_width", width, "framebuffer_height", height,
		"depth_bits", cfg.DepthBits, "samples", cfg.Samples, "vsync", cfg.VSync)
	return w, nil
}

func (w *Window) Device() render.Device { return w.device }

func (w *Window) Destroy() {
	w.device.release()
	w.window.Destroy()
	glfw.Terminate()
}

// WaitUntil sleeps in glfw until an event arrives or the deadline passes.
// Events queued by an earlier call are returned without waiting.
func (w *Window) WaitUntil(deadline time.Time) []app.Event {
	if timeout := time.Until(deadline); len(w.queue) == 0 && timeout > 0 {
		glfw.WaitEventsTimeout(timeout.Seconds())
	} else {
		glfw.PollEvents()
	}

	events := w.queue
	w.queue = nil
	return events
}

func (w *Window) NewFrame() render.Frame {
	return &frame{w: w}
}

func (w *Window) push(ev app.Event) {
	w.queue = append(w.queue, ev)
}

func (w *Window) onFramebufferSize(_ *glfw.Window, width, height int) {
	w.push(app.ResizeEvent{Width: width, Height: height})
}

func (w *Window) onClose(_ *glfw.Window) {
	w.push(app.CloseEvent{})
}

func (w *Window) onKey(_ *glfw.Window, key glfw.Key, scancode int, action glfw.Action, mods glfw.ModifierKey) {
	k := convertKey(key)
	if k == app.KeyUnknown {
		return
	}
	w.push(app.KeyEvent{Key: k, Action: convertAction(action)})
}

func convertKey(key glfw.Key) app.Key {
	switch key {
	case glfw.KeyEscape:
		return app.KeyEscape
	case glfw.KeyW:
		return app.KeyW
	case glfw.KeyS:
		return app.KeyS
	case glfw.KeyD:
		return app.KeyD
	default:
		return app.KeyUnknown
	}
}

func convertAction(action glfw.Action) app.Action {
	switch action {
	case glfw.Release:
		return app.Release
	case glfw.Repeat:
		return app.Repeat
	default:
		return app.Press
	}
}
