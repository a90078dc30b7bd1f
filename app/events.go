package app

import (
	"fmt"
	"time"

	"github.com/mogaika/gl_teapot/render"
)

type Key int

const (
	KeyUnknown Key = iota
	KeyEscape
	KeyW
	KeyS
	KeyD
)

func (k Key) String() string {
	switch k {
	case KeyEscape:
		return "escape"
	case KeyW:
		return "w"
	case KeyS:
		return "s"
	case KeyD:
		return "d"
	default:
		return "unknown"
	}
}

type Action int

const (
	Press Action = iota
	Release
	Repeat
)

func (a Action) String() string {
	switch a {
	case Press:
		return "press"
	case Release:
		return "release"
	case Repeat:
		return "repeat"
	default:
		return "unknown"
	}
}

type Event interface {
	fmt.Stringer
	event()
}

// ResizeEvent carries the new framebuffer size in pixels.
type ResizeEvent struct {
	Width, Height int
}

type CloseEvent struct{}

type KeyEvent struct {
	Key    Key
	Action Action
}

func (ResizeEvent) event() {}
func (CloseEvent) event()  {}
func (KeyEvent) event()    {}

func (e ResizeEvent) String() string { return fmt.Sprintf("resize %dx%d", e.Width, e.Height) }
func (CloseEvent) String() string    { return "close" }
func (e KeyEvent) String() string    { return fmt.Sprintf("key %v %v", e.Key, e.Action) }

// EventSource is the window side of the loop. WaitUntil blocks until at
// least one event is queued or the deadline passes and returns everything
// queued so far, possibly nothing.
type EventSource interface {
	WaitUntil(deadline time.Time) []Event
	NewFrame() render.Frame
}
