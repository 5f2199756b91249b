package main

import (
	"flag"
	"log/slog"
	"os"

	"github.com/hubastard/glhelper/engine/assets"
	"github.com/hubastard/glhelper/engine/core"
	glbackend "github.com/hubastard/glhelper/engine/gfx/gl"
	"github.com/hubastard/glhelper/engine/platform"
)

func main() {
	manifest := flag.String("manifest", assets.ShaderPath("triangle.toml"), "shader program manifest")
	watch := flag.Bool("watch", false, "reload shader stages when their files change")
	validate := flag.Bool("validate", false, "validate the program after linking")
	flag.Parse()

	log := slog.New(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{Level: slog.LevelDebug}))
	cfg := core.Config{
		Title:      "glhelper sandbox",
		Width:      1280,
		Height:     720,
		VSync:      true,
		ClearColor: [4]float32{0.08, 0.10, 0.12, 1},
		Logger:     log,
	}
	app := &App{manifestPath: *manifest, watch: *watch, validate: *validate}

	newWindow := func(cfg core.Config) (core.Window, error) {
		return platform.NewGLFWWindow(cfg, nil)
	}
	newRenderer := func(win core.Window, cfg core.Config) (core.Renderer, error) {
		return glbackend.NewRendererGL(win, cfg)
	}

	if err := core.Run(app, cfg, newWindow, newRenderer); err != nil {
		log.Error("sandbox failed", "err", err)
		os.Exit(1)
	}
}
