package glbackend

import (
	"fmt"
	"unsafe"

	"github.com/go-gl/gl/v4.3-core/gl"
	"github.com/go-gl/mathgl/mgl32"
	"github.com/pkg/errors"
	"go.uber.org/zap"

	"github.com/mogaika/gl_teapot/render"
)

var _ render.Device = (*Device)(nil)

// Device allocates buffers and programs in the window's context. It has to
// be used from the thread the window was created on.
type Device struct {
	log *zap.SugaredLogger
	vao uint32
}

func newDevice(log *zap.SugaredLogger, debug bool) (*Device, error) {
	if err := gl.Init(); err != nil {
		return nil, errors.Wrap(err, "Failed to initialize OpenGL")
	}
	d := &Device{log: log}

	if debug {
		gl.Enable(gl.DEBUG_OUTPUT_SYNCHRONOUS)
		gl.Enable(gl.DEBUG_OUTPUT)
		gl.DebugMessageCallback(d.debugCallback, nil)
	}

	// core profile refuses to draw without a bound vertex array
	gl.GenVertexArrays(1, &d.vao)
	if d.vao == 0 {
		return nil, errors.New("Failed to create vertex array")
	}

	log.Infow("OpenGL context ready",
		"version", gl.GoStr(gl.GetString(gl.VERSION)),
		"renderer", gl.GoStr(gl.GetString(gl.RENDERER)))
	return d, nil
}

func (d *Device) release() {
	if d.vao != 0 {
		gl.DeleteVertexArrays(1, &d.vao)
		d.vao = 0
	}
}

type buffer struct {
	id     uint32
	target uint32
	n      int
}

func (b *buffer) Len() int { return b.n }

func (b *buffer) Release() {
	if b.id != 0 {
		gl.DeleteBuffers(1, &b.id)
		b.id = 0
	}
}

func (d *Device) NewVertexBuffer(data []mgl32.Vec3) (render.VertexBuffer, error) {
	var ptr unsafe.Pointer
	if len(data) != 0 {
		ptr = gl.Ptr(data)
	}
	return d.newBuffer(gl.ARRAY_BUFFER, len(data), len(data)*int(unsafe.Sizeof(mgl32.Vec3{})), ptr)
}

func (d *Device) NewIndexBuffer(data []uint16) (render.IndexBuffer, error) {
	var ptr unsafe.Pointer
	if len(data) != 0 {
		ptr = gl.Ptr(data)
	}
	return d.newBuffer(gl.ELEMENT_ARRAY_BUFFER, len(data), len(data)*2, ptr)
}

func (d *Device) newBuffer(target uint32, n, size int, data unsafe.Pointer) (*buffer, error) {
	b := &buffer{target: target, n: n}

	gl.GenBuffers(1, &b.id)
	if b.id == 0 {
		return nil, errors.New("glGenBuffers returned no name")
	}

	// element buffer binding is vertex array state
	gl.BindVertexArray(d.vao)
	gl.BindBuffer(target, b.id)
	gl.BufferData(target, size, data, gl.STATIC_DRAW)
	gl.BindBuffer(target, 0)
	gl.BindVertexArray(0)

	if code := gl.GetError(); code != gl.NO_ERROR {
		b.Release()
		return nil, errors.Errorf("glBufferData of %d bytes: %s", size, glErrorString(code))
	}
	return b, nil
}

func asBuffer(r render.Releaser, target uint32) (*buffer, error) {
	b, ok := r.(*buffer)
	if !ok {
		return nil, errors.Errorf("buffer %T does not belong to this device", r)
	}
	if b.id == 0 {
		return nil, errors.New("buffer is released")
	}
	if b.target != target {
		return nil, errors.Errorf("buffer bound as 0x%x was created for 0x%x", target, b.target)
	}
	return b, nil
}

func applyDrawParameters(params render.DrawParameters) {
	gl.Enable(gl.DEPTH_TEST)
	switch params.DepthTest {
	case render.DepthLess:
		gl.DepthFunc(gl.LESS)
	case render.DepthLessOrEqual:
		gl.DepthFunc(gl.LEQUAL)
	default:
		gl.DepthFunc(gl.ALWAYS)
	}
	gl.DepthMask(params.DepthWrite)

	switch params.Culling {
	case render.CullClockwise:
		gl.Enable(gl.CULL_FACE)
		gl.FrontFace(gl.CCW)
		gl.CullFace(gl.BACK)
	case render.CullCounterClockwise:
		gl.Enable(gl.CULL_FACE)
		gl.FrontFace(gl.CCW)
		gl.CullFace(gl.FRONT)
	default:
		gl.Disable(gl.CULL_FACE)
	}
}

func glErrorString(code uint32) string {
	switch code {
	case gl.INVALID_ENUM:
		return "INVALID_ENUM"
	case gl.INVALID_VALUE:
		return "INVALID_VALUE"
	case gl.INVALID_OPERATION:
		return "INVALID_OPERATION"
	case gl.INVALID_FRAMEBUFFER_OPERATION:
		return "INVALID_FRAMEBUFFER_OPERATION"
	case gl.OUT_OF_MEMORY:
		return "OUT_OF_MEMORY"
	default:
		return fmt.Sprintf("0x%x", code)
	}
}

var glConstToString = map[uint32]string{
	gl.DEBUG_SOURCE_API:             "API",
	gl.DEBUG_SOURCE_WINDOW_SYSTEM:   "WINDOW SYSTEM",
	gl.DEBUG_SOURCE_SHADER_COMPILER: "SHADER COMPILER",
	gl.DEBUG_SOURCE_THIRD_PARTY:     "THIRD PARTY",
	gl.DEBUG_SOURCE_APPLICATION:     "APPLICATION",
	gl.DEBUG_SOURCE_OTHER:           "OTHER",

	gl.DEBUG_TYPE_ERROR:               "ERROR",
	gl.DEBUG_TYPE_DEPRECATED_BEHAVIOR: "DEPRECATED BEHAVIOR",
	gl.DEBUG_TYPE_UNDEFINED_BEHAVIOR:  "UNDEFINED BEHAVIOR",
	gl.DEBUG_TYPE_PORTABILITY:         "PORTABILITY",
	gl.DEBUG_TYPE_PERFORMANCE:         "PERFORMANCE",
	gl.DEBUG_TYPE_OTHER:               "OTHER",
	gl.DEBUG_TYPE_MARKER:              "MARKER",

	gl.DEBUG_SEVERITY_HIGH:         "HIGH",
	gl.DEBUG_SEVERITY_MEDIUM:       "MEDIUM",
	gl.DEBUG_SEVERITY_LOW:          "LOW",
	gl.DEBUG_SEVERITY_NOTIFICATION: "NOTIFICATION",
}

func (d *Device) debugCallback(source uint32, gltype uint32, id uint32,
	severity uint32, length int32, message string, userParam unsafe.Pointer) {

	log := d.log.With("component", "gl", "id", id,
		"severity", glConstToString[severity], "src", glConstToString[source], "type", glConstToString[gltype])

	switch {
	case gltype == gl.DEBUG_TYPE_ERROR:
		log.Error(message)
	case severity == gl.DEBUG_SEVERITY_NOTIFICATION:
		log.Debug(message)
	default:
		log.Warn(message)
	}
}
