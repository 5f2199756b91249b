package assets

import (
	"path/filepath"

	"github.com/hubastard/glhelper/engine/gfx/shader"
)

// Root is the directory asset names are resolved against.
var Root = "assets"

// ShaderPath returns the path of a shader asset.
func ShaderPath(name string) string {
	return filepath.Join(Root, "shaders", name)
}

// LoadShader reads a shader asset by name.
func LoadShader(name string) (string, error) {
	return shader.SourceFromFile(ShaderPath(name))
}
