package assets

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/pelletier/go-toml/v2"

	"github.com/hubastard/glhelper/engine/gfx/shader"
)

// Manifest describes a shader program in TOML:
//
//	vertex     = "triangle.vert"
//	fragment   = "triangle.frag"
//	attributes = ["aPos", "aColor"]
//	uniforms   = ["uTint"]
//	verbose    = true
//
// Stage paths are relative to the manifest file.
type Manifest struct {
	Vertex     string   `toml:"vertex"`
	Fragment   string   `toml:"fragment"`
	Geometry   string   `toml:"geometry"`
	Attributes []string `toml:"attributes"`
	Uniforms   []string `toml:"uniforms"`
	Verbose    *bool    `toml:"verbose"`
	StrictLink bool     `toml:"strict_link"`

	dir string
}

// LoadManifest parses the manifest at path.
func LoadManifest(path string) (*Manifest, error) {
	b, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("load manifest %q: %w", path, err)
	}
	var m Manifest
	if err := toml.Unmarshal(b, &m); err != nil {
		return nil, fmt.Errorf("parse manifest %q: %w", path, err)
	}
	if m.Vertex == "" || m.Fragment == "" {
		return nil, fmt.Errorf("manifest %q: vertex and fragment are required", path)
	}
	m.dir = filepath.Dir(path)
	return &m, nil
}

// Stages maps each configured stage to its resolved file path.
func (m *Manifest) Stages() map[shader.Stage]string {
	stages := map[shader.Stage]string{
		shader.StageVertex:   m.resolve(m.Vertex),
		shader.StageFragment: m.resolve(m.Fragment),
	}
	if m.Geometry != "" {
		stages[shader.StageGeometry] = m.resolve(m.Geometry)
	}
	return stages
}

func (m *Manifest) resolve(p string) string {
	if filepath.IsAbs(p) {
		return p
	}
	return filepath.Join(m.dir, p)
}

// Options turns the manifest settings into program options. Verbose is only
// applied when set, leaving the process default otherwise.
func (m *Manifest) Options() []shader.Option {
	opts := []shader.Option{shader.WithStrictLink(m.StrictLink)}
	if m.Verbose != nil {
		opts = append(opts, shader.WithVerboseDiagnostics(*m.Verbose))
	}
	return opts
}

// Build creates a program, compiles every stage, binds the attributes and
// links. Uniforms listed in the manifest that the linked program does not
// expose are reported as an error. The program is deleted on failure.
func (m *Manifest) Build(drv shader.Driver, opts ...shader.Option) (*shader.Program, error) {
	prog := shader.New(drv, append(m.Options(), opts...)...)
	if prog.Handle() == 0 {
		return nil, shader.ErrNoProgram
	}
	stages := m.Stages()
	for _, stage := range []shader.Stage{shader.StageVertex, shader.StageGeometry, shader.StageFragment} {
		path, ok := stages[stage]
		if !ok {
			continue
		}
		if err := prog.AddShaderFromFile(stage, path); err != nil {
			prog.Delete()
			return nil, fmt.Errorf("build program: %w", err)
		}
	}
	for _, name := range m.Attributes {
		prog.AddAttribute(name)
	}
	if err := prog.Link(); err != nil {
		prog.Delete()
		return nil, fmt.Errorf("build program: %w", err)
	}
	for _, name := range m.Uniforms {
		if prog.UniformLocation(name) == shader.NotFound {
			prog.Delete()
			return nil, fmt.Errorf("build program: uniform %q not found", name)
		}
	}
	return prog, nil
}
