package shader

// Driver is the set of graphics driver primitives the wrapper is built on.
// Implementations are bound to the thread owning the graphics context.
// Handles are opaque; zero always means "no object".
type Driver interface {
	CreateProgram() uint32
	DeleteProgram(program uint32)
	UseProgram(program uint32)

	CreateShader(stage Stage) uint32
	DeleteShader(shader uint32)
	ShaderSource(shader uint32, source string)
	CompileShader(shader uint32)
	ShaderCompileStatus(shader uint32) bool
	ShaderInfoLog(shader uint32) string

	AttachShader(program, shader uint32)
	DetachShader(program, shader uint32)

	LinkProgram(program uint32)
	ProgramLinkStatus(program uint32) bool
	ValidateProgram(program uint32)
	ProgramValidateStatus(program uint32) bool
	ProgramInfoLog(program uint32) string

	BindAttribLocation(program, index uint32, name string)
	UniformLocation(program uint32, name string) int32
	AttribLocation(program uint32, name string) int32
}
