package shader

import (
	"errors"
	"fmt"
	"os"
	"unicode/utf8"
)

// The functions in this file work on raw handles. They never touch the
// shader tracking of a Program.

// SourceFromFile reads a whole shader source file. Empty or non-UTF-8
// files are rejected.
func SourceFromFile(path string) (string, error) {
	src, err := readSource(path)
	if err != nil {
		return "", err
	}
	if src == "" {
		return "", fmt.Errorf("%w: %q is empty", ErrReadSource, path)
	}
	return src, nil
}

func readSource(path string) (string, error) {
	b, err := os.ReadFile(path)
	if err != nil {
		return "", fmt.Errorf("%w: %w", ErrReadSource, err)
	}
	if !utf8.Valid(b) {
		return "", fmt.Errorf("%w: %q is not valid UTF-8", ErrReadSource, path)
	}
	return string(b), nil
}

// CheckShaderStatus logs the shader's info log and returns it. Nothing is
// queried unless verbose diagnostics are enabled.
func CheckShaderStatus(drv Driver, shader uint32, opts ...Option) string {
	return checkShaderStatus(drv, resolve(opts), shader)
}

// CheckProgramStatus logs the program's info log and returns it. Nothing is
// queried unless verbose diagnostics are enabled.
func CheckProgramStatus(drv Driver, program uint32, opts ...Option) string {
	return checkProgramStatus(drv, resolve(opts), program)
}

// ValidateProgram checks program against the whole current context state.
// This is expensive; use it in development only.
func ValidateProgram(drv Driver, program uint32, opts ...Option) bool {
	return validateProgram(drv, resolve(opts), program)
}

// LinkProgram links program and logs its info log. The link status is only
// returned as ErrLink when WithStrictLink is set.
func LinkProgram(drv Driver, program uint32, opts ...Option) error {
	return linkProgram(drv, resolve(opts), program)
}

// AddShadersFromFiles reads both sources and hands them to AddShadersFromSource.
// No driver call is made if either file cannot be read. Unlike
// SourceFromFile, an empty file is passed on and left to the compiler.
func AddShadersFromFiles(drv Driver, program uint32, vertexPath, fragmentPath string, opts ...Option) error {
	cfg := resolve(opts)
	vs, verr := readSource(vertexPath)
	fs, ferr := readSource(fragmentPath)
	if err := errors.Join(verr, ferr); err != nil {
		if cfg.VerboseDiagnostics {
			cfg.Logger.Warn("load shader sources failed",
				"vertex", vertexPath, "fragment", fragmentPath, "err", err)
		}
		return err
	}
	return addShadersFromSource(drv, cfg, program, vs, fs)
}

// AddShadersFromSource compiles a vertex and a fragment shader, attaches
// them to program, links it and deletes both shader objects. A stage that
// fails to compile is left out of the link; its error is returned after
// cleanup.
func AddShadersFromSource(drv Driver, program uint32, vertexSource, fragmentSource string, opts ...Option) error {
	return addShadersFromSource(drv, resolve(opts), program, vertexSource, fragmentSource)
}

func addShadersFromSource(drv Driver, cfg Config, program uint32, vs, fs string) error {
	if program == 0 {
		return ErrNoProgram
	}
	vsh, verr := attachNew(drv, cfg, program, StageVertex, vs)
	fsh, ferr := attachNew(drv, cfg, program, StageFragment, fs)
	lerr := linkProgram(drv, cfg, program)

	// The linked program keeps the compiled stages.
	for _, sh := range []uint32{vsh, fsh} {
		if sh != 0 {
			drv.DeleteShader(sh)
		}
	}
	return errors.Join(verr, ferr, lerr)
}

// attachNew creates, compiles and attaches a shader. It returns 0 and
// deletes the shader if compilation fails.
func attachNew(drv Driver, cfg Config, program uint32, stage Stage, source string) (uint32, error) {
	sh := drv.CreateShader(stage)
	if sh == 0 {
		return 0, fmt.Errorf("%w: %s", ErrCreateShader, stage)
	}
	if err := compile(drv, cfg, sh, stage, source); err != nil {
		drv.DeleteShader(sh)
		return 0, err
	}
	drv.AttachShader(program, sh)
	return sh, nil
}

func compile(drv Driver, cfg Config, sh uint32, stage Stage, source string) error {
	drv.ShaderSource(sh, source)
	drv.CompileShader(sh)
	if drv.ShaderCompileStatus(sh) {
		return nil
	}
	return &CompileError{Stage: stage, Log: checkShaderStatus(drv, cfg, sh)}
}

func linkProgram(drv Driver, cfg Config, program uint32) error {
	drv.LinkProgram(program)
	linked := drv.ProgramLinkStatus(program)
	checkProgramStatus(drv, cfg, program)
	if !linked {
		if cfg.VerboseDiagnostics {
			cfg.Logger.Warn("program link failed", "program", program, "strict", cfg.StrictLink)
		}
		if cfg.StrictLink {
			return fmt.Errorf("%w: program %d", ErrLink, program)
		}
	}
	return nil
}

func validateProgram(drv Driver, cfg Config, program uint32) bool {
	drv.ValidateProgram(program)
	ok := drv.ProgramValidateStatus(program)
	checkProgramStatus(drv, cfg, program)
	if cfg.VerboseDiagnostics {
		cfg.Logger.Debug("program validated", "program", program, "ok", ok)
	}
	return ok
}

func checkShaderStatus(drv Driver, cfg Config, sh uint32) string {
	if !cfg.VerboseDiagnostics {
		return ""
	}
	log := drv.ShaderInfoLog(sh)
	if log != "" {
		cfg.Logger.Info("shader info log", "shader", sh, "log", log)
	}
	return log
}

func checkProgramStatus(drv Driver, cfg Config, program uint32) string {
	if !cfg.VerboseDiagnostics {
		return ""
	}
	log := drv.ProgramInfoLog(program)
	if log != "" {
		cfg.Logger.Info("program info log", "program", program, "log", log)
	}
	return log
}
