// Command triangle is a smoke test for the fixed-function backend: it opens
// a GL 2.1 window and draws one recorded triangle per frame.
package main

import (
	"runtime"
	"time"

	"igloo/internal/app"
	"igloo/internal/config"
	"igloo/internal/graphics/gfx"
	"igloo/internal/graphics/opengl"
	"igloo/internal/log"

	"github.com/go-gl/glfw/v3.3/glfw"
	"github.com/go-gl/mathgl/mgl32"
)

func init() {
	runtime.LockOSThread()
}

var triangle = &gfx.Mesh{
	Mode: gfx.Triangles,
	Vertices: []gfx.Vertex{
		{Position: mgl32.Vec3{0, 0.5, 0}, Normal: mgl32.Vec3{0, 0, 1}},
		{Position: mgl32.Vec3{-0.5, -0.5, 0}, Normal: mgl32.Vec3{0, 0, 1}},
		{Position: mgl32.Vec3{0.5, -0.5, 0}, Normal: mgl32.Vec3{0, 0, 1}},
	},
}

func main() {
	logger := log.New("triangle")

	if err := glfw.Init(); err != nil {
		panic(err)
	}
	defer glfw.Terminate()

	window, err := app.SetupWindow(config.Window{Width: 800, Height: 600, Title: "GL 2.1 triangle"})
	if err != nil {
		panic(err)
	}
	defer window.Destroy()

	ctx, err := opengl.New()
	if err != nil {
		panic(err)
	}
	logger.Infof("OpenGL %s", ctx.Version())

	// The frame never changes, so it is recorded once.
	frame := gfx.NewList(8)
	frame.ClearColor(0, 0, 0, 1)
	frame.Clear(gfx.ColorBuffer)
	frame.Color(0, 1, 0)
	gfx.DrawMesh(frame, triangle)

	frames := 0
	fpsTicker := time.NewTicker(time.Second)
	defer fpsTicker.Stop()

	for !window.ShouldClose() {
		if window.GetKey(glfw.KeyEscape) == glfw.Press {
			window.SetShouldClose(true)
		}

		frame.Execute(ctx)
		window.SwapBuffers()
		glfw.PollEvents()
		frames++

		select {
		case <-fpsTicker.C:
			logger.Infof("FPS: %d", frames)
			frames = 0
		default:
		}
	}
}
