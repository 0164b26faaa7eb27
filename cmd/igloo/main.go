package main

import (
	"flag"
	"runtime"

	"igloo/internal/app"
	"igloo/internal/config"
	"igloo/internal/graphics"
	"igloo/internal/graphics/opengl"
	"igloo/internal/graphics/renderer"
	"igloo/internal/input"
	"igloo/internal/log"
	"igloo/internal/scene"

	"github.com/go-gl/glfw/v3.3/glfw"
)

func init() {
	runtime.LockOSThread()
}

func main() {
	configPath := flag.String("config", "", "path to a TOML settings file")
	flag.Parse()

	logger := log.New("main")

	cfg, err := config.Load(*configPath)
	if err != nil {
		panic(err)
	}
	level, err := log.ParseLevel(cfg.Runtime.LogLevel)
	if err != nil {
		panic(err)
	}
	log.SetLevel(level)
	config.SetFPSLimit(cfg.Runtime.FPSLimit)

	if err := glfw.Init(); err != nil {
		panic(err)
	}
	defer glfw.Terminate()

	window, err := app.SetupWindow(cfg.Window)
	if err != nil {
		panic(err)
	}
	defer window.Destroy()

	ctx, err := opengl.New()
	if err != nil {
		panic(err)
	}
	logger.Infof("OpenGL %s", ctx.Version())

	width, height := window.GetFramebufferSize()
	r, err := renderer.New(ctx, renderer.Options{
		Textures: graphics.TexturePaths{
			graphics.Ice:   cfg.Assets.Ice,
			graphics.Water: cfg.Assets.Water,
			graphics.Snow:  cfg.Assets.Snow,
		},
		Scene:    scene.NewOBJ(ctx, cfg.Assets.SceneDir, cfg.Assets.SceneFile),
		Viewport: graphics.Viewport{Width: width, Height: height},
	})
	if err != nil {
		panic(err)
	}
	defer r.Dispose()

	if err := r.Initialize(); err != nil {
		panic(err)
	}

	im := input.NewInputManager()
	view := input.NewViewController(cfg.View.SceneDistance, cfg.View.RotationStep, cfg.View.DistanceStep)

	app.NewApp(window, cfg.Window.Title, r, view, im).Run()
}
