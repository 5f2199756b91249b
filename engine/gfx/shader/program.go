// Package shader wraps a driver shader program: one program object, at most
// one shader object per stage, and the attribute bindings applied at link.
//
// A Program is not safe for concurrent use. Like every graphics call it must
// stay on the thread that owns the context.
package shader

import (
	"maps"
	"slices"
)

// Program owns a driver program object and the shaders attached to it.
type Program struct {
	drv    Driver
	cfg    Config
	handle uint32

	shaders    map[Stage]uint32
	attributes []string
}

// New creates the program object. If the driver hands back a zero handle the
// failure is logged and the returned Program rejects every shader.
func New(drv Driver, opts ...Option) *Program {
	p := &Program{
		drv:     drv,
		cfg:     resolve(opts),
		handle:  drv.CreateProgram(),
		shaders: map[Stage]uint32{},
	}
	if p.handle == 0 {
		p.cfg.Logger.Error("create program failed")
	}
	return p
}

// Handle returns the driver program handle, zero if creation failed.
func (p *Program) Handle() uint32 { return p.handle }

// Shader returns the shader tracked for stage.
func (p *Program) Shader(stage Stage) (uint32, bool) {
	sh, ok := p.shaders[stage]
	return sh, ok
}

// Attributes returns the registered attribute names in binding order.
func (p *Program) Attributes() []string { return slices.Clone(p.attributes) }

// AddShaderFromSource compiles source as the shader for stage and attaches it.
//
// A shader already tracked for stage is detached and deleted before the new
// one is compiled. It is not restored if compilation fails, leaving stage
// empty.
func (p *Program) AddShaderFromSource(stage Stage, source string) error {
	if stage == StageNone {
		return ErrInvalidStage
	}
	if p.handle == 0 {
		return ErrNoProgram
	}
	sh := p.drv.CreateShader(stage)
	if sh == 0 {
		return ErrCreateShader
	}

	if old, ok := p.shaders[stage]; ok {
		p.drv.DetachShader(p.handle, old)
		p.drv.DeleteShader(old)
	}
	p.shaders[stage] = sh

	if err := compile(p.drv, p.cfg, sh, stage, source); err != nil {
		p.drv.DeleteShader(sh)
		delete(p.shaders, stage)
		return err
	}
	p.drv.AttachShader(p.handle, sh)
	return nil
}

// AddShaderFromFile reads path and passes it to AddShaderFromSource.
func (p *Program) AddShaderFromFile(stage Stage, path string) error {
	source, err := SourceFromFile(path)
	if err != nil {
		if p.cfg.VerboseDiagnostics {
			p.cfg.Logger.Warn("load shader source failed", "stage", stage, "path", path, "err", err)
		}
		return err
	}
	return p.AddShaderFromSource(stage, source)
}

// Link links the program. Attributes must be added before Link for their
// bindings to apply. Shaders replaced after Link need another Link.
func (p *Program) Link() error {
	return linkProgram(p.drv, p.cfg, p.handle)
}

func (p *Program) Use() { p.drv.UseProgram(p.handle) }

// Validate checks the program against the whole context state and logs the
// outcome. Expensive; call it from development builds only.
func (p *Program) Validate() bool {
	return validateProgram(p.drv, p.cfg, p.handle)
}

// UniformLocation returns NotFound if name is not an active uniform.
func (p *Program) UniformLocation(name string) int32 {
	return p.drv.UniformLocation(p.handle, name)
}

// AddAttribute binds name to the next free attribute index. Names already
// registered are ignored.
func (p *Program) AddAttribute(name string) {
	if slices.Contains(p.attributes, name) {
		return
	}
	p.attributes = append(p.attributes, name)
	p.drv.BindAttribLocation(p.handle, uint32(len(p.attributes)-1), name)
}

// AttributeLocation returns NotFound if name is not an active attribute.
func (p *Program) AttributeLocation(name string) int32 {
	return p.drv.AttribLocation(p.handle, name)
}

// Delete releases every tracked shader, then the program. Further calls are
// no-ops.
func (p *Program) Delete() {
	for _, stage := range slices.Sorted(maps.Keys(p.shaders)) {
		p.drv.DeleteShader(p.shaders[stage])
	}
	clear(p.shaders)
	if p.handle != 0 {
		p.drv.DeleteProgram(p.handle)
		p.handle = 0
	}
}
