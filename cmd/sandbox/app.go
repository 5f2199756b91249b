package main

import (
	"github.com/go-gl/gl/v3.3-core/gl"

	"github.com/hubastard/glhelper/engine/assets"
	"github.com/hubastard/glhelper/engine/core"
	glbackend "github.com/hubastard/glhelper/engine/gfx/gl"
	"github.com/hubastard/glhelper/engine/gfx/shader"
)

// App builds the triangle program from a manifest and draws it every frame.
// Escape quits, V validates the program.
type App struct {
	manifestPath string
	watch        bool
	validate     bool

	prog     *shader.Program
	tri      *glbackend.Triangle
	reloader *shader.Reloader
	tint     int32
}

func (a *App) OnStart(e *core.Engine) error {
	m, err := assets.LoadManifest(a.manifestPath)
	if err != nil {
		return err
	}
	a.prog, err = m.Build(glbackend.Driver{}, shader.WithLogger(e.Log))
	if err != nil {
		return err
	}
	if a.validate {
		e.Log.Info("program validated", "ok", a.prog.Validate())
	}
	a.tint = a.prog.UniformLocation("uTint")

	a.tri, err = glbackend.NewTriangle(a.prog)
	if err != nil {
		return err
	}

	if a.watch {
		a.reloader, err = shader.NewReloader(a.prog, m.Stages())
		if err != nil {
			return err
		}
	}
	return nil
}

func (a *App) OnUpdate(e *core.Engine, dt float64) {
	if a.reloader == nil || !a.reloader.Pending() {
		return
	}
	if _, err := a.reloader.Apply(); err != nil {
		e.Log.Warn("shader reload failed", "err", err)
	}
	a.tint = a.prog.UniformLocation("uTint")
}

func (a *App) OnRender(e *core.Engine, alpha float64) {
	a.prog.Use()
	gl.Uniform4f(a.tint, 1, 1, 1, 1)
	a.tri.Draw(a.prog)
}

func (a *App) OnEvent(e *core.Engine, ev core.Event) {
	switch ev := ev.(type) {
	case core.EventCloseRequested:
		e.Window.RequestClose()
	case core.EventKey:
		if !ev.Down {
			return
		}
		switch ev.Key {
		case core.KeyEscape:
			e.Window.RequestClose()
		case core.KeyV:
			e.Log.Info("program validated", "ok", a.prog.Validate())
		}
	}
}

// OnShutdown also runs after a failed OnStart, so every field may be nil.
func (a *App) OnShutdown(e *core.Engine) {
	if a.reloader != nil {
		a.reloader.Close()
	}
	if a.tri != nil {
		a.tri.Delete()
	}
	if a.prog != nil {
		a.prog.Delete()
	}
}
