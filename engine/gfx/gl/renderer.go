package glbackend

import (
	"log/slog"

	"github.com/go-gl/gl/v3.3-core/gl"

	"github.com/hubastard/glhelper/engine/core"
)

// RendererGL implements core.Renderer. Programs and meshes are owned by the
// app; the renderer only handles frame-level state.
type RendererGL struct {
	win core.Window
	log *slog.Logger
}

func NewRendererGL(win core.Window, cfg core.Config) (*RendererGL, error) {
	log := cfg.Logger
	if log == nil {
		log = slog.Default()
	}
	return &RendererGL{win: win, log: log}, nil
}

// Init loads GL entry points; the window's context must be current.
func (r *RendererGL) Init() error {
	return Init(r.log)
}

func (r *RendererGL) Shutdown() {
	gl.UseProgram(0)
	gl.BindVertexArray(0)
}

func (r *RendererGL) Resize(w, h int) {
	gl.Viewport(0, 0, int32(w), int32(h))
}

func (r *RendererGL) Clear(rf, gf, bf, af float32) {
	gl.ClearColor(rf, gf, bf, af)
	gl.Clear(gl.COLOR_BUFFER_BIT | gl.DEPTH_BUFFER_BIT)
}

var _ core.Renderer = (*RendererGL)(nil)
