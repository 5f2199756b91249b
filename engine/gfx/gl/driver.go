// Package glbackend implements shader.Driver on OpenGL 3.3 core.
package glbackend

import (
	"log/slog"
	"strings"

	"github.com/go-gl/gl/v3.3-core/gl"

	"github.com/hubastard/glhelper/engine/gfx/shader"
)

// Driver forwards every call to the current OpenGL context.
// It must be used on the thread that made the context current.
type Driver struct{}

var _ shader.Driver = Driver{}

// Init loads the OpenGL entry points for the current context.
func Init(log *slog.Logger) error {
	if err := gl.Init(); err != nil {
		return err
	}
	log.Info("GL initialized", "version", gl.GoStr(gl.GetString(gl.VERSION)),
		"glsl", gl.GoStr(gl.GetString(gl.SHADING_LANGUAGE_VERSION)))
	return nil
}

func stageEnum(s shader.Stage) uint32 {
	switch s {
	case shader.StageVertex:
		return gl.VERTEX_SHADER
	case shader.StageFragment:
		return gl.FRAGMENT_SHADER
	case shader.StageGeometry:
		return gl.GEOMETRY_SHADER
	default:
		return gl.NONE
	}
}

func (Driver) CreateProgram() uint32    { return gl.CreateProgram() }
func (Driver) DeleteProgram(p uint32)   { gl.DeleteProgram(p) }
func (Driver) UseProgram(p uint32)      { gl.UseProgram(p) }
func (Driver) DeleteShader(s uint32)    { gl.DeleteShader(s) }
func (Driver) CompileShader(s uint32)   { gl.CompileShader(s) }
func (Driver) LinkProgram(p uint32)     { gl.LinkProgram(p) }
func (Driver) ValidateProgram(p uint32) { gl.ValidateProgram(p) }

func (Driver) AttachShader(p, s uint32) { gl.AttachShader(p, s) }
func (Driver) DetachShader(p, s uint32) { gl.DetachShader(p, s) }

func (Driver) CreateShader(stage shader.Stage) uint32 {
	e := stageEnum(stage)
	if e == gl.NONE {
		return 0
	}
	return gl.CreateShader(e)
}

func (Driver) ShaderSource(s uint32, source string) {
	csrc, free := gl.Strs(source + "\x00")
	defer free()
	gl.ShaderSource(s, 1, csrc, nil)
}

func (Driver) ShaderCompileStatus(s uint32) bool {
	var status int32
	gl.GetShaderiv(s, gl.COMPILE_STATUS, &status)
	return status == gl.TRUE
}

func (Driver) ShaderInfoLog(s uint32) string {
	var logLen int32
	gl.GetShaderiv(s, gl.INFO_LOG_LENGTH, &logLen)
	if logLen <= 0 {
		return ""
	}
	log := strings.Repeat("\x00", int(logLen))
	gl.GetShaderInfoLog(s, logLen, nil, gl.Str(log))
	return strings.TrimRight(log, "\x00")
}

func (Driver) ProgramLinkStatus(p uint32) bool {
	var status int32
	gl.GetProgramiv(p, gl.LINK_STATUS, &status)
	return status == gl.TRUE
}

func (Driver) ProgramValidateStatus(p uint32) bool {
	var status int32
	gl.GetProgramiv(p, gl.VALIDATE_STATUS, &status)
	return status == gl.TRUE
}

func (Driver) ProgramInfoLog(p uint32) string {
	var logLen int32
	gl.GetProgramiv(p, gl.INFO_LOG_LENGTH, &logLen)
	if logLen <= 0 {
		return ""
	}
	log := strings.Repeat("\x00", int(logLen))
	gl.GetProgramInfoLog(p, logLen, nil, gl.Str(log))
	return strings.TrimRight(log, "\x00")
}

func (Driver) BindAttribLocation(p, index uint32, name string) {
	gl.BindAttribLocation(p, index, gl.Str(name+"\x00"))
}

func (Driver) UniformLocation(p uint32, name string) int32 {
	return gl.GetUniformLocation(p, gl.Str(name+"\x00"))
}

func (Driver) AttribLocation(p uint32, name string) int32 {
	return gl.GetAttribLocation(p, gl.Str(name+"\x00"))
}
