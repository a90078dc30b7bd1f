// Package render sequences the draw calls of one frame against an abstract
// GPU device and draw target.
package render

import (
	"github.com/go-gl/mathgl/mgl32"
	"github.com/mogaika/gl_teapot/r3d"
	"github.com/pkg/errors"
)

type Color struct {
	R, G, B float32
}

var (
	White = Color{R: 1.0, G: 1.0, B: 1.0}
	Black = Color{R: 0.0, G: 0.0, B: 0.0}
	Blue  = Color{R: 0.2, G: 0.2, B: 0.7}
)

// Direction towards the single scene light, in world space
var DefaultLight = mgl32.Vec3{-1.0, 0.4, 0.9}

type Releaser interface {
	Release()
}

type VertexBuffer interface {
	Releaser
	Len() int
}

type IndexBuffer interface {
	Releaser
	Len() int
}

type Program interface {
	Releaser
}

// MeshBuffers are the GPU handles of one mesh, bound together for a draw call.
type MeshBuffers struct {
	Vertices VertexBuffer
	Normals  VertexBuffer
	Indices  IndexBuffer
}

// Device allocates GPU resources. Implementations must be used from the
// thread that owns the graphics context.
type Device interface {
	NewVertexBuffer(data []mgl32.Vec3) (VertexBuffer, error)
	NewIndexBuffer(data []uint16) (IndexBuffer, error)
	CompileProgram(vertexSource, fragmentSource string) (Program, error)
}

// Frame is the draw target of a single frame. Finish presents it and must be
// called exactly once.
type Frame interface {
	Clear(c Color)
	Dimensions() r3d.Resolution
	Draw(buffers MeshBuffers, program Program, uniforms Uniforms, params DrawParameters) error
	Finish() error
}

type Renderable interface {
	ModelMatrix() mgl32.Mat4
	Buffers() MeshBuffers
}

type Camera interface {
	GetPerspectiveMatrix() mgl32.Mat4
	GetViewMatrix() (mgl32.Mat4, error)
	UpdateResolution(resolution r3d.Resolution) error
}

type Uniforms struct {
	Model       mgl32.Mat4
	View        mgl32.Mat4
	Perspective mgl32.Mat4
	Light       mgl32.Vec3
}

// Render issues one draw call per object, in order.
func Render(frame Frame, objects []Renderable, camera Camera, program Program, params DrawParameters) error {
	perspective := camera.GetPerspectiveMatrix()
	view, err := camera.GetViewMatrix()
	if err != nil {
		return errors.Wrap(err, "view matrix")
	}

	for i, obj := range objects {
		uniforms := Uniforms{
			Model:       obj.ModelMatrix(),
			View:        view,
			Perspective: perspective,
			Light:       DefaultLight,
		}

		if err := frame.Draw(obj.Buffers(), program, uniforms, params); err != nil {
			return &DrawError{Index: i, Err: err}
		}
	}
	return nil
}

// DrawFrame clears the target, fits the camera to it, draws every object and
// presents the result. A failed draw returns before presenting, so a partial
// frame never reaches the screen.
func DrawFrame(frame Frame, clear Color, objects []Renderable, camera Camera, program Program, params DrawParameters) error {
	frame.Clear(clear)

	// zero sized while minimized, the last aspect ratio is kept
	if err := camera.UpdateResolution(frame.Dimensions()); err != nil && !errors.Is(err, r3d.ErrEmptyResolution) {
		return errors.Wrap(err, "camera resolution")
	}
	if err := Render(frame, objects, camera, program, params); err != nil {
		return err
	}
	if err := frame.Finish(); err != nil {
		return &PresentationError{Err: err}
	}
	return nil
}
