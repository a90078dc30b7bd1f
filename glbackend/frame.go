package glbackend

import (
	"unsafe"

	"github.com/go-gl/gl/v4.3-core/gl"
	"github.com/pkg/errors"

	"github.com/mogaika/gl_teapot/r3d"
	"github.com/mogaika/gl_teapot/render"
)

var _ render.Frame = (*frame)(nil)

// frame draws straight into the default framebuffer of the window.
type frame struct {
	w        *Window
	finished bool
}

func (f *frame) Dimensions() r3d.Resolution {
	width, height := f.w.window.GetFramebufferSize()
	return r3d.Resolution{Width: uint32(max(width, 0)), Height: uint32(max(height, 0))}
}

func (f *frame) Clear(c render.Color) {
	size := f.Dimensions()
	gl.Viewport(0, 0, int32(size.Width), int32(size.Height))

	// depth writes off would also mask the depth clear
	gl.DepthMask(true)
	gl.ClearColor(c.R, c.G, c.B, 1.0)
	gl.ClearDepth(1.0)
	gl.Clear(gl.COLOR_BUFFER_BIT | gl.DEPTH_BUFFER_BIT)
}

func (f *frame) Draw(buffers render.MeshBuffers, prog render.Program, u render.Uniforms, params render.DrawParameters) error {
	p, ok := prog.(*program)
	if !ok || p.id == 0 {
		return errors.Errorf("program %T is not usable on this device", prog)
	}
	vertices, err := asBuffer(buffers.Vertices, gl.ARRAY_BUFFER)
	if err != nil {
		return errors.Wrap(err, "vertices")
	}
	normals, err := asBuffer(buffers.Normals, gl.ARRAY_BUFFER)
	if err != nil {
		return errors.Wrap(err, "normals")
	}
	indices, err := asBuffer(buffers.Indices, gl.ELEMENT_ARRAY_BUFFER)
	if err != nil {
		return errors.Wrap(err, "indices")
	}

	applyDrawParameters(params)

	gl.UseProgram(p.id)
	gl.UniformMatrix4fv(p.uModel, 1, false, &u.Model[0])
	gl.UniformMatrix4fv(p.uView, 1, false, &u.View[0])
	gl.UniformMatrix4fv(p.uPerspective, 1, false, &u.Perspective[0])
	gl.Uniform3fv(p.uLight, 1, &u.Light[0])

	gl.BindVertexArray(f.w.device.vao)

	gl.BindBuffer(gl.ARRAY_BUFFER, vertices.id)
	gl.VertexAttribPointerWithOffset(positionAttrib, 3, gl.FLOAT, false, 0, 0)
	gl.EnableVertexAttribArray(positionAttrib)

	gl.BindBuffer(gl.ARRAY_BUFFER, normals.id)
	gl.VertexAttribPointerWithOffset(normalAttrib, 3, gl.FLOAT, false, 0, 0)
	gl.EnableVertexAttribArray(normalAttrib)

	gl.BindBuffer(gl.ELEMENT_ARRAY_BUFFER, indices.id)
	gl.DrawElements(gl.TRIANGLES, int32(indices.n), gl.UNSIGNED_SHORT, unsafe.Pointer(nil))

	gl.BindVertexArray(0)
	gl.BindBuffer(gl.ARRAY_BUFFER, 0)

	if code := gl.GetError(); code != gl.NO_ERROR {
		return errors.Errorf("glDrawElements: %s", glErrorString(code))
	}
	return nil
}

func (f *frame) Finish() (err error) {
	if f.finished {
		return errors.New("frame already presented")
	}
	f.finished = true

	// glfw reports errors of the swap by panicking
	defer func() {
		if r := recover(); r != nil {
			if e, ok := r.(error); ok {
				err = errors.Wrap(e, "glfwSwapBuffers")
			} else {
				err = errors.Errorf("glfwSwapBuffers: %v", r)
			}
		}
	}()
	f.w.window.SwapBuffers()
	return nil
}
