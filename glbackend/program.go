package glbackend

import (
	_ "embed"

	"github.com/go-gl/gl/v4.3-core/gl"

	"github.com/mogaika/gl_teapot/render"
)

//go:embed shaders/teapot.vert
var TeapotVertexShader string

//go:embed shaders/teapot.frag
var TeapotFragmentShader string

// attribute locations fixed by the shaders layout qualifiers
const (
	positionAttrib = 0
	normalAttrib   = 1
)

type program struct {
	id                           uint32
	vertexShader, fragmentShader uint32

	uModel       int32
	uView        int32
	uPerspective int32
	uLight       int32
}

func (p *program) Release() {
	if p.id == 0 {
		return
	}
	gl.DetachShader(p.id, p.vertexShader)
	gl.DetachShader(p.id, p.fragmentShader)
	gl.DeleteProgram(p.id)
	gl.DeleteShader(p.vertexShader)
	gl.DeleteShader(p.fragmentShader)
	p.id = 0
}

func (d *Device) CompileProgram(vertexSource, fragmentSource string) (render.Program, error) {
	p := &program{}

	vs, err := compileShader(gl.VERTEX_SHADER, "vertex", vertexSource)
	if err != nil {
		return nil, err
	}
	p.vertexShader = vs

	fs, err := compileShader(gl.FRAGMENT_SHADER, "fragment", fragmentSource)
	if err != nil {
		gl.DeleteShader(p.vertexShader)
		return nil, err
	}
	p.fragmentShader = fs

	p.id = gl.CreateProgram()
	gl.AttachShader(p.id, p.vertexShader)
	gl.AttachShader(p.id, p.fragmentShader)
	gl.LinkProgram(p.id)

	var isLinked int32
	gl.GetProgramiv(p.id, gl.LINK_STATUS, &isLinked)
	if isLinked == gl.FALSE {
		var logSize int32
		gl.GetProgramiv(p.id, gl.INFO_LOG_LENGTH, &logSize)
		buf := make([]uint8, logSize+1)
		gl.GetProgramInfoLog(p.id, int32(len(buf)), &logSize, &buf[0])
		errString := string(buf[:logSize])
		d.log.Errorf("Failed to link program:\n%s", errString)

		p.Release()
		return nil, &render.ShaderCompileError{Stage: "link", Log: errString}
	}

	p.uModel = gl.GetUniformLocation(p.id, gl.Str("model\x00"))
	p.uView = gl.GetUniformLocation(p.id, gl.Str("view\x00"))
	p.uPerspective = gl.GetUniformLocation(p.id, gl.Str("perspective\x00"))
	p.uLight = gl.GetUniformLocation(p.id, gl.Str("u_light\x00"))
	d.log.Debugw("Program linked", "id", p.id,
		"model", p.uModel, "view", p.uView, "perspective", p.uPerspective, "light", p.uLight)

	return p, nil
}

func compileShader(xtype uint32, stage string, text string) (uint32, error) {
	csource, free := gl.Strs(text + "\x00")
	defer free()

	shader := gl.CreateShader(xtype)
	gl.ShaderSource(shader, 1, csource, nil)
	gl.CompileShader(shader)

	var success int32
	gl.GetShaderiv(shader, gl.COMPILE_STATUS, &success)
	if success == gl.FALSE {
		var logSize int32
		gl.GetShaderiv(shader, gl.INFO_LOG_LENGTH, &logSize)
		buf := make([]uint8, logSize+1)
		gl.GetShaderInfoLog(shader, int32(len(buf)), &logSize, &buf[0])

		gl.DeleteShader(shader)
		return gl.INVALID_INDEX, &render.ShaderCompileError{Stage: stage, Log: string(buf[:logSize])}
	}
	return shader, nil
}
