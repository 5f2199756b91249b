package shader_test

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/hubastard/glhelper/engine/gfx/shader"
)

// replaceFile swaps path for new content in one rename, the way editors
// save, so the reloader never observes a half-written file.
func replaceFile(t *testing.T, path, content string) {
	t.Helper()
	tmp := path + ".tmp"
	require.NoError(t, os.WriteFile(tmp, []byte(content), 0o644))
	require.NoError(t, os.Rename(tmp, path))
}

func TestReloader(t *testing.T) {
	dir := t.TempDir()
	vs := filepath.Join(dir, "basic.vert")
	fs := filepath.Join(dir, "basic.frag")
	require.NoError(t, os.WriteFile(vs, []byte(vertexSrc), 0o644))
	require.NoError(t, os.WriteFile(fs, []byte(fragmentSrc), 0o644))

	p, drv := newTestProgram(t)
	require.NoError(t, p.AddShaderFromFile(shader.StageVertex, vs))
	require.NoError(t, p.AddShaderFromFile(shader.StageFragment, fs))
	require.NoError(t, p.Link())
	oldFrag, _ := p.Shader(shader.StageFragment)

	r, err := shader.NewReloader(p, map[shader.Stage]string{shader.StageVertex: vs, shader.StageFragment: fs})
	require.NoError(t, err)
	defer r.Close()

	stages, err := r.Apply()
	require.NoError(t, err)
	assert.Empty(t, stages)

	replaceFile(t, fs, fragmentSrc+"// edited\n")
	require.Eventually(t, r.Pending, 5*time.Second, 10*time.Millisecond)

	stages, err = r.Apply()
	require.NoError(t, err)
	assert.Equal(t, []shader.Stage{shader.StageFragment}, stages)

	newFrag, ok := p.Shader(shader.StageFragment)
	require.True(t, ok)
	assert.NotEqual(t, oldFrag, newFrag)
	assert.Contains(t, drv.Deleted, oldFrag)
	assert.Equal(t, 2, drv.Count("LinkProgram"))
}

func TestReloaderCompileFailureEmptiesStage(t *testing.T) {
	dir := t.TempDir()
	fs := filepath.Join(dir, "basic.frag")
	require.NoError(t, os.WriteFile(fs, []byte(fragmentSrc), 0o644))

	p, _ := newTestProgram(t)
	require.NoError(t, p.AddShaderFromFile(shader.StageFragment, fs))

	r, err := shader.NewReloader(p, map[shader.Stage]string{shader.StageFragment: fs})
	require.NoError(t, err)
	defer r.Close()

	replaceFile(t, fs, brokenSrc)
	require.Eventually(t, r.Pending, 5*time.Second, 10*time.Millisecond)

	stages, err := r.Apply()
	assert.ErrorIs(t, err, shader.ErrCompile)
	assert.Empty(t, stages)
	_, ok := p.Shader(shader.StageFragment)
	assert.False(t, ok)
}
