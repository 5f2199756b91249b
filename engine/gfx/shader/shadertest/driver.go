// Package shadertest provides a recording shader.Driver for tests.
package shadertest

import (
	"fmt"
	"strings"

	"github.com/hubastard/glhelper/engine/gfx/shader"
)

// Driver records every call and hands out increasing handles starting at 1.
// Sources containing "error" fail to compile. Uniforms listed in Uniforms
// resolve to their mapped location; attributes resolve to their bound index.
type Driver struct {
	NoProgram bool // CreateProgram returns 0
	NoShader  bool // CreateShader returns 0
	LinkFails bool

	Calls    []string
	Sources  map[uint32]string
	Attached map[uint32][]uint32
	Bound    map[string]uint32
	Deleted  []uint32
	Uniforms map[string]int32

	next uint32
}

func New() *Driver {
	return &Driver{
		next:     1,
		Sources:  map[uint32]string{},
		Attached: map[uint32][]uint32{},
		Bound:    map[string]uint32{},
		Uniforms: map[string]int32{},
	}
}

var _ shader.Driver = (*Driver)(nil)

func (d *Driver) record(format string, args ...any) {
	d.Calls = append(d.Calls, fmt.Sprintf(format, args...))
}

// Count returns how many recorded calls start with prefix.
func (d *Driver) Count(prefix string) int {
	n := 0
	for _, c := range d.Calls {
		if strings.HasPrefix(c, prefix) {
			n++
		}
	}
	return n
}

func (d *Driver) handle() uint32 {
	h := d.next
	d.next++
	return h
}

func (d *Driver) CreateProgram() uint32 {
	d.record("CreateProgram")
	if d.NoProgram {
		return 0
	}
	return d.handle()
}

func (d *Driver) DeleteProgram(program uint32) { d.record("DeleteProgram %d", program) }
func (d *Driver) UseProgram(program uint32)    { d.record("UseProgram %d", program) }

func (d *Driver) CreateShader(stage shader.Stage) uint32 {
	d.record("CreateShader %s", stage)
	if d.NoShader {
		return 0
	}
	return d.handle()
}

func (d *Driver) DeleteShader(sh uint32) {
	d.record("DeleteShader %d", sh)
	d.Deleted = append(d.Deleted, sh)
}

func (d *Driver) ShaderSource(sh uint32, source string) {
	d.record("ShaderSource %d", sh)
	d.Sources[sh] = source
}

func (d *Driver) CompileShader(sh uint32) { d.record("CompileShader %d", sh) }

func (d *Driver) ShaderCompileStatus(sh uint32) bool {
	return !strings.Contains(d.Sources[sh], "error")
}

func (d *Driver) ShaderInfoLog(sh uint32) string {
	d.record("ShaderInfoLog %d", sh)
	if strings.Contains(d.Sources[sh], "error") {
		return "0:1: syntax error"
	}
	return ""
}

func (d *Driver) AttachShader(program, sh uint32) {
	d.record("AttachShader %d %d", program, sh)
	d.Attached[program] = append(d.Attached[program], sh)
}

func (d *Driver) DetachShader(program, sh uint32) {
	d.record("DetachShader %d %d", program, sh)
	list := d.Attached[program]
	for i, s := range list {
		if s == sh {
			d.Attached[program] = append(list[:i:i], list[i+1:]...)
			break
		}
	}
}

func (d *Driver) LinkProgram(program uint32)            { d.record("LinkProgram %d", program) }
func (d *Driver) ProgramLinkStatus(program uint32) bool { return !d.LinkFails }
func (d *Driver) ValidateProgram(program uint32)        { d.record("ValidateProgram %d", program) }
func (d *Driver) ProgramValidateStatus(uint32) bool     { return true }

func (d *Driver) ProgramInfoLog(program uint32) string {
	d.record("ProgramInfoLog %d", program)
	if d.LinkFails {
		return "link: missing main"
	}
	return ""
}

func (d *Driver) BindAttribLocation(program, index uint32, name string) {
	d.record("BindAttribLocation %d %d %s", program, index, name)
	d.Bound[name] = index
}

func (d *Driver) UniformLocation(program uint32, name string) int32 {
	if loc, ok := d.Uniforms[name]; ok {
		return loc
	}
	return shader.NotFound
}

func (d *Driver) AttribLocation(program uint32, name string) int32 {
	if idx, ok := d.Bound[name]; ok {
		return int32(idx)
	}
	return shader.NotFound
}
