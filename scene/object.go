// Package scene holds the renderable objects of the demo.
package scene

import (
	"github.com/go-gl/mathgl/mgl32"
	"github.com/pkg/errors"

	"github.com/mogaika/gl_teapot/mesh"
	"github.com/mogaika/gl_teapot/r3d"
	"github.com/mogaika/gl_teapot/render"
)

// Multiplicative step of ScaleUp and ScaleDown
const ScaleStep = 1.01

const TeapotScale = 0.01

var _ render.Renderable = (*Object)(nil)

// Object is a GPU resident mesh with its transform. The buffers belong to the
// object and are freed by Release.
type Object struct {
	Name string

	vertices render.VertexBuffer
	normals  render.VertexBuffer
	indices  render.IndexBuffer

	transform r3d.Transform
}

func New(device render.Device, m *mesh.Mesh) (*Object, error) {
	o := &Object{Name: m.Name, transform: r3d.NewTransform()}

	var err error
	if o.vertices, err = device.NewVertexBuffer(m.Positions); err != nil {
		o.Release()
		return nil, &render.ResourceAllocationError{Resource: "vertex buffer", Err: err}
	}
	if o.normals, err = device.NewVertexBuffer(m.Normals); err != nil {
		o.Release()
		return nil, &render.ResourceAllocationError{Resource: "normal buffer", Err: err}
	}
	if o.indices, err = device.NewIndexBuffer(m.Indices); err != nil {
		o.Release()
		return nil, &render.ResourceAllocationError{Resource: "index buffer", Err: err}
	}
	return o, nil
}

func Teapot(device render.Device) (*Object, error) {
	o, err := New(device, mesh.Teapot())
	if err != nil {
		return nil, err
	}
	o.SetScale(TeapotScale)
	return o, nil
}

func (o *Object) Release() {
	if o.vertices != nil {
		o.vertices.Release()
		o.vertices = nil
	}
	if o.normals != nil {
		o.normals.Release()
		o.normals = nil
	}
	if o.indices != nil {
		o.indices.Release()
		o.indices = nil
	}
}

func (o *Object) Buffers() render.MeshBuffers {
	return render.MeshBuffers{
		Vertices: o.vertices,
		Normals:  o.normals,
		Indices:  o.indices,
	}
}

func (o *Object) Transform() r3d.Transform { return o.transform }

func (o *Object) SetTransform(transform r3d.Transform) { o.transform = transform }
func (o *Object) SetPosition(position mgl32.Vec3)      { o.transform.Position = position }
func (o *Object) SetScale(scale float32)               { o.transform.Scale = scale }

// scale is not clamped in either direction
func (o *Object) ScaleUp()   { o.transform.Scale *= ScaleStep }
func (o *Object) ScaleDown() { o.transform.Scale /= ScaleStep }

func (o *Object) ModelMatrix() mgl32.Mat4 {
	return o.transform.ModelMatrix()
}

// Teapots uploads n teapots. On failure the ones already made are released.
func Teapots(device render.Device, n int) ([]*Object, error) {
	objects := make([]*Object, 0, n)
	for i := 0; i < n; i++ {
		o, err := Teapot(device)
		if err != nil {
			for _, made := range objects {
				made.Release()
			}
			return nil, errors.Wrapf(err, "Teapot %d", i)
		}
		objects = append(objects, o)
	}
	return objects, nil
}
