package wirecanvas

import (
	"fmt"

	"github.com/hajimehoshi/ebiten/v2"
)

// RunConfig configures Run and NewGame. Zero fields take defaults.
type RunConfig struct {
	Title  string // window title, default "wirecanvas"
	Width  int    // initial window width, default 1280
	Height int    // initial window height, default 720

	// ShowFPS draws an FPS/TPS readout in the top-left corner.
	ShowFPS bool
	// Debug logs per-frame stats at debug level through Logger.
	Debug bool

	// ClearColor is the background. The zero value means DefaultClearColor.
	ClearColor Color

	// VertexCapacity and AspectCorrect are passed to the Renderer.
	VertexCapacity int
	AspectCorrect  bool

	// ScreenshotDir is where Game.Screenshot writes, default "screenshots".
	ScreenshotDir string
	// TestScript, if set, is loaded with LoadTestScript and attached to the
	// game so input is replayed from the script.
	TestScript []byte
}

const (
	defaultTitle         = "wirecanvas"
	defaultWidth         = 1280
	defaultHeight        = 720
	defaultScreenshotDir = "screenshots"
)

func (c RunConfig) withDefaults() RunConfig {
	if c.Title == "" {
		c.Title = defaultTitle
	}
	if c.Width <= 0 {
		c.Width = defaultWidth
	}
	if c.Height <= 0 {
		c.Height = defaultHeight
	}
	if c.ClearColor == (Color{}) {
		c.ClearColor = DefaultClearColor
	}
	if c.ScreenshotDir == "" {
		c.ScreenshotDir = defaultScreenshotDir
	}
	return c
}

// Game drives a Canvas through ebiten: Update drains input into the camera,
// Draw clears and renders. It implements ebiten.Game.
type Game struct {
	// ScreenshotDir is the directory screenshots are written to.
	ScreenshotDir string

	canvas   *Canvas
	renderer *Renderer
	input    *InputHandler
	source   *EventSource

	clear   colorRGBA
	showFPS bool
	debug   bool

	events          []Event
	err             error
	testRunner      *TestRunner
	screenshotQueue []string
	frame           uint64
}

// NewGame creates the renderer and input plumbing for canvas. Renderer
// construction errors are returned unchanged.
func NewGame(canvas *Canvas, cfg RunConfig) (*Game, error) {
	cfg = cfg.withDefaults()
	r, err := NewRenderer(RendererConfig{
		VertexCapacity: cfg.VertexCapacity,
		AspectCorrect:  cfg.AspectCorrect,
	})
	if err != nil {
		return nil, err
	}
	g := &Game{
		ScreenshotDir: cfg.ScreenshotDir,
		canvas:        canvas,
		renderer:      r,
		input:         NewInputHandler(),
		source:        NewEventSource(),
		clear:         cfg.ClearColor.toRGBA(),
		showFPS:       cfg.ShowFPS,
		debug:         cfg.Debug,
	}
	if cfg.TestScript != nil {
		runner, err := LoadTestScript(cfg.TestScript)
		if err != nil {
			r.Dispose()
			return nil, err
		}
		g.SetTestRunner(runner)
	}
	return g, nil
}

// Renderer returns the game's renderer.
func (g *Game) Renderer() *Renderer {
	return g.renderer
}

// Input returns the game's input handler.
func (g *Game) Input() *InputHandler {
	return g.input
}

// Events returns the game's event source, for injecting synthetic input.
func (g *Game) Events() *EventSource {
	return g.source
}

// SetTestRunner attaches a scripted input runner, stepped once per Update.
func (g *Game) SetTestRunner(runner *TestRunner) {
	g.testRunner = runner
}

// Update steps the test runner, then drains this tick's events into the
// input handler in arrival order. A close event ends the loop with
// ebiten.Termination; a render error from the previous Draw is returned.
func (g *Game) Update() error {
	if g.err != nil {
		return g.err
	}
	if g.testRunner != nil {
		g.testRunner.step(g)
	}
	g.events = g.source.Poll(g.events)
	return g.handleEvents(g.events)
}

// handleEvents applies events in order and stops at the first close.
func (g *Game) handleEvents(events []Event) error {
	for _, e := range events {
		if e.Kind == EventClose {
			Logger().Info("close requested", "frame", g.frame)
			return ebiten.Termination
		}
		g.input.HandleEvent(g.renderer, e)
	}
	return nil
}

// Draw clears the screen and renders the canvas. A render error stops
// drawing and is reported by the next Update.
func (g *Game) Draw(screen *ebiten.Image) {
	if g.err != nil {
		return
	}
	g.frame++
	screen.Fill(g.clear)
	if err := g.renderer.Render(screen, g.canvas); err != nil {
		g.err = fmt.Errorf("frame %d: %w", g.frame, err)
		Logger().Error("render failed", "frame", g.frame, "err", err)
		return
	}
	if g.debug {
		g.debugLog(g.renderer.Stats())
	}
	if g.showFPS {
		drawFPS(screen)
	}
	g.flushScreenshots(screen)
}

// Layout uses the window size as the screen size so the projection always
// sees the real pixel dimensions.
func (g *Game) Layout(outsideWidth, outsideHeight int) (int, int) {
	return outsideWidth, outsideHeight
}

// Run opens a window and renders canvas until the window is closed or a
// fatal render error occurs.
func Run(canvas *Canvas, cfg RunConfig) error {
	cfg = cfg.withDefaults()
	g, err := NewGame(canvas, cfg)
	if err != nil {
		return err
	}
	defer g.renderer.Dispose()

	ebiten.SetWindowSize(cfg.Width, cfg.Height)
	ebiten.SetWindowTitle(cfg.Title)
	ebiten.SetWindowResizingMode(ebiten.WindowResizingModeEnabled)
	ebiten.SetWindowClosingHandled(true)

	Logger().Info("starting", "title", cfg.Title, "width", cfg.Width, "height", cfg.Height, "views", canvas.Len())
	return ebiten.RunGame(g)
}
