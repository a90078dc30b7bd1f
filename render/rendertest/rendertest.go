// Package rendertest provides in-memory render.Device and render.Frame
// implementations that record what they are asked to do.
package rendertest

import (
	"github.com/go-gl/mathgl/mgl32"
	"github.com/mogaika/gl_teapot/r3d"
	"github.com/mogaika/gl_teapot/render"
)

type Buffer struct {
	Kind     string
	Vertices []mgl32.Vec3
	Indices  []uint16
	Released int
}

func (b *Buffer) Release() { b.Released++ }

func (b *Buffer) Len() int {
	if b.Kind == "index" {
		return len(b.Indices)
	}
	return len(b.Vertices)
}

type Program struct {
	VertexSource, FragmentSource string
	Released                     int
}

func (p *Program) Release() { p.Released++ }

// Device records every allocation. AllocHook, when set, is consulted before
// each allocation with the resource kind ("vertex", "index", "program") and
// the number of allocations of that kind done so far; a non nil result fails it.
type Device struct {
	AllocHook func(kind string, n int) error

	Buffers  []*Buffer
	Programs []*Program

	counts map[string]int
}

func NewDevice() *Device {
	return &Device{counts: make(map[string]int)}
}

func (d *Device) alloc(kind string) error {
	if d.counts == nil {
		d.counts = make(map[string]int)
	}
	n := d.counts[kind]
	d.counts[kind] = n + 1
	if d.AllocHook != nil {
		return d.AllocHook(kind, n)
	}
	return nil
}

func (d *Device) NewVertexBuffer(data []mgl32.Vec3) (render.VertexBuffer, error) {
	if err := d.alloc("vertex"); err != nil {
		return nil, err
	}
	b := &Buffer{Kind: "vertex", Vertices: data}
	d.Buffers = append(d.Buffers, b)
	return b, nil
}

func (d *Device) NewIndexBuffer(data []uint16) (render.IndexBuffer, error) {
	if err := d.alloc("index"); err != nil {
		return nil, err
	}
	b := &Buffer{Kind: "index", Indices: data}
	d.Buffers = append(d.Buffers, b)
	return b, nil
}

func (d *Device) CompileProgram(vertexSource, fragmentSource string) (render.Program, error) {
	if err := d.alloc("program"); err != nil {
		return nil, err
	}
	p := &Program{VertexSource: vertexSource, FragmentSource: fragmentSource}
	d.Programs = append(d.Programs, p)
	return p, nil
}

// Live returns the buffers not released yet.
func (d *Device) Live() []*Buffer {
	var live []*Buffer
	for _, b := range d.Buffers {
		if b.Released == 0 {
			live = append(live, b)
		}
	}
	return live
}

type DrawCall struct {
	Buffers  render.MeshBuffers
	Program  render.Program
	Uniforms render.Uniforms
	Params   render.DrawParameters
}

// Frame records the operations applied to it in Ops.
type Frame struct {
	Size      r3d.Resolution
	DrawHook  func(i int) error
	FinishErr error

	Ops      []string
	Cleared  []render.Color
	Calls    []DrawCall
	Finished int
}

func NewFrame(width, height uint32) *Frame {
	return &Frame{Size: r3d.Resolution{Width: width, Height: height}}
}

func (f *Frame) Clear(c render.Color) {
	f.Ops = append(f.Ops, "clear")
	f.Cleared = append(f.Cleared, c)
}

func (f *Frame) Dimensions() r3d.Resolution {
	f.Ops = append(f.Ops, "dimensions")
	return f.Size
}

func (f *Frame) Draw(buffers render.MeshBuffers, program render.Program, uniforms render.Uniforms, params render.DrawParameters) error {
	f.Ops = append(f.Ops, "draw")
	if f.DrawHook != nil {
		if err := f.DrawHook(len(f.Calls)); err != nil {
			return err
		}
	}
	f.Calls = append(f.Calls, DrawCall{
		Buffers:  buffers,
		Program:  program,
		Uniforms: uniforms,
		Params:   params,
	})
	return nil
}

func (f *Frame) Finish() error {
	f.Ops = append(f.Ops, "finish")
	f.Finished++
	return f.FinishErr
}
