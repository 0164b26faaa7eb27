package app

import (
	"fmt"
	"time"

	"igloo/internal/config"
	"igloo/internal/graphics/renderer"
	"igloo/internal/input"
	"igloo/internal/log"
	"igloo/internal/profiling"

	"github.com/go-gl/glfw/v3.3/glfw"
)

const (
	// slowFrame is the processing time above which a frame is logged.
	slowFrame = 16 * time.Millisecond
	// statsInterval is how often frame statistics are shown in the title.
	statsInterval = time.Second
)

// FrameRenderer is the part of the renderer the loop drives.
type FrameRenderer interface {
	Draw(p renderer.FrameParams)
	Resize(width, height int) error
}

type App struct {
	window       *glfw.Window
	inputManager *input.InputManager
	view         *input.ViewController
	renderer     FrameRenderer

	limiter *FrameLimiter
	logger  log.Logger

	title     string
	history   profiling.FrameHistory
	frames    int
	idle      time.Duration
	lastStats time.Time
}

// NewApp installs the key, framebuffer-size and refresh callbacks on window.
func NewApp(window *glfw.Window, title string, r FrameRenderer, view *input.ViewController, im *input.InputManager) *App {
	a := &App{
		window:       window,
		inputManager: im,
		view:         view,
		renderer:     r,
		limiter:      NewFrameLimiter(config.GetFPSLimit),
		logger:       log.New("app"),
		title:        title,
		lastStats:    time.Now(),
	}

	im.SetKeyCallback(window)
	window.SetFramebufferSizeCallback(func(w *glfw.Window, width, height int) {
		a.handleResize(width, height)
	})
	window.SetRefreshCallback(func(w *glfw.Window) {
		a.RefreshRender()
	})

	return a
}

func (a *App) Run() {
	for !a.window.ShouldClose() {
		a.tick()
	}
}

func (a *App) tick() {
	profiling.ResetFrame()
	startTick := time.Now()

	glfw.PollEvents()
	if a.view.Update(a.inputManager) {
		a.window.SetShouldClose(true)
	}

	a.renderer.Draw(a.view.Params())
	a.swap()

	d := time.Since(startTick)
	if d > slowFrame {
		a.logger.Debugf("Slow frame: %v. Top tasks: %s", d, profiling.TopN(5))
	}
	a.history.Add(d)
	a.frames++
	if now := time.Now(); now.Sub(a.lastStats) >= statsInterval {
		a.window.SetTitle(a.statsTitle(now.Sub(a.lastStats)))
		a.logger.Debugf("%d frames, %v idle in limiter", a.frames, a.idle)
		a.frames = 0
		a.idle = 0
		a.lastStats = now
	}

	a.inputManager.PostUpdate()

	iconified := a.window.GetAttrib(glfw.Iconified) == glfw.True
	a.idle += a.limiter.Wait(iconified)
}

func (a *App) swap() {
	defer profiling.Track("glfw.SwapBuffers")()
	a.window.SwapBuffers()
}

// statsTitle formats the window title with the frame rate over elapsed
// and the frame time window.
func (a *App) statsTitle(elapsed time.Duration) string {
	fps := float64(a.frames) / elapsed.Seconds()
	lo, hi, avg := a.history.Stats()
	return fmt.Sprintf("%s | %.0f fps | frame %.1f/%.1f/%.1f ms",
		a.title, fps, ms(lo), ms(avg), ms(hi))
}

func ms(d time.Duration) float64 { return float64(d.Microseconds()) / 1000 }

// handleResize forwards framebuffer sizes to the renderer. A minimized
// window reports 0x0, which is skipped.
func (a *App) handleResize(width, height int) {
	if width <= 0 || height <= 0 {
		return
	}
	if err := a.renderer.Resize(width, height); err != nil {
		a.logger.Warningf("resize: %v", err)
	}
}

// RefreshRender handles window resize repaints
func (a *App) RefreshRender() {
	a.renderer.Draw(a.view.Params())
	a.window.SwapBuffers()
}
