package engine

import (
	"context"
	"fmt"

	"github.com/spaghettifunk/sketchbook/engine/config"
	"github.com/spaghettifunk/sketchbook/engine/core"
	"github.com/spaghettifunk/sketchbook/engine/platform"
	"github.com/spaghettifunk/sketchbook/engine/renderer"
	"github.com/spaghettifunk/sketchbook/engine/renderer/metadata"
	"github.com/spaghettifunk/sketchbook/engine/renderer/opengl"
)

type Stage uint8

const (
	// Engine is in an uninitialized state
	EngineStageUninitialized Stage = iota
	// Engine is currently initializing
	EngineStageInitializing
	// Engine initialization is complete
	EngineStageInitialized
	// Engine is currently running
	EngineStageRunning
	// Engine is in the process of shutting down
	EngineStageShuttingDown
)

// Window is the part of the platform layer the engine drives.
type Window interface {
	Startup(applicationName string, x, y int32, width, height uint32) error
	Shutdown() error
	PumpMessages() bool
	SwapBuffers()
	FramebufferSize() (uint32, uint32)
	SetTitle(title string)
}

type Engine struct {
	currentStage Stage
	gameInstance *Game
	isRunning    bool
	isSuspended  bool
	window       Window
	renderer     *renderer.Renderer
	watcher      *config.Watcher
	stopWatcher  context.CancelFunc
	width        uint32
	height       uint32
	clock        *core.Clock
	metrics      *core.FrameMetrics
	lastTime     float64
	lastFPS      float64
}

// New wires the game to a glfw window and the OpenGL renderer.
func New(g *Game) (*Engine, error) {
	p, err := platform.New()
	if err != nil {
		core.LogError(err.Error())
		return nil, err
	}
	return newEngine(g, p, opengl.New(p)), nil
}

func newEngine(g *Game, window Window, backend renderer.RendererBackend) *Engine {
	return &Engine{
		currentStage: EngineStageUninitialized,
		gameInstance: g,
		clock:        core.NewClock(),
		metrics:      core.NewFrameMetrics(),
		window:       window,
		renderer:     renderer.New(backend),
		isRunning:    true,
		isSuspended:  false,
		width:        g.ApplicationConfig.StartWidth,
		height:       g.ApplicationConfig.StartHeight,
	}
}

func (e *Engine) Initialize() error {
	e.currentStage = EngineStageInitializing
	appConfig := e.gameInstance.ApplicationConfig

	if appConfig.LogLevel != "" {
		if err := core.SetLogLevel(appConfig.LogLevel); err != nil {
			return err
		}
	}

	// initialize input
	if err := core.InputInitialize(); err != nil {
		return err
	}

	// initialize events
	if err := core.EventInitialize(); err != nil {
		return err
	}

	// register some events
	core.EventRegister(core.EVENT_CODE_APPLICATION_QUIT, e, e.onEvent)
	core.EventRegister(core.EVENT_CODE_KEY_PRESSED, e, e.onKey)
	core.EventRegister(core.EVENT_CODE_RESIZED, e, e.onResized)
	core.EventRegister(core.EVENT_CODE_CONFIG_RELOADED, e, e.onConfigReloaded)

	if err := e.window.Startup(appConfig.Name,
		appConfig.StartPosX,
		appConfig.StartPosY,
		appConfig.StartWidth,
		appConfig.StartHeight); err != nil {
		return err
	}
	// the framebuffer can be larger than the window on high density displays
	e.width, e.height = e.window.FramebufferSize()

	if err := e.renderer.Initialize(appConfig.Name, e.width, e.height); err != nil {
		return err
	}

	if appConfig.ConfigPath != "" {
		if err := e.startWatcher(appConfig.ConfigPath); err != nil {
			// the sketch still runs, only without hot reload
			core.LogWarn("config hot reload disabled: %s", err)
		}
	}

	if err := e.gameInstance.FnInitialize(); err != nil {
		return err
	}

	if err := e.gameInstance.FnOnResize(e.width, e.height); err != nil {
		return err
	}
	e.currentStage = EngineStageInitialized
	return nil
}

func (e *Engine) startWatcher(path string) error {
	w, err := config.NewWatcher(path)
	if err != nil {
		return err
	}
	ctx, cancel := context.WithCancel(context.Background())
	if err := w.Start(ctx); err != nil {
		cancel()
		w.Close()
		return err
	}
	e.watcher = w
	e.stopWatcher = cancel
	core.LogInfo("watching %s for changes", path)
	return nil
}

// pollConfig hands the latest reloaded configuration to the event queue.
func (e *Engine) pollConfig() {
	if e.watcher == nil {
		return
	}
	select {
	case cfg := <-e.watcher.Configs():
		if err := core.EventPost(core.EventContext{Type: core.EVENT_CODE_CONFIG_RELOADED, Data: cfg}); err != nil {
			core.LogWarn(err.Error())
		}
	default:
	}
}

// Run drives the frame loop until the window closes, a quit event is fired
// or ctx is cancelled.
func (e *Engine) Run(ctx context.Context) error {
	if e.currentStage != EngineStageInitialized {
		return core.ErrNotInitialized
	}
	e.currentStage = EngineStageRunning

	e.clock.Start()
	e.clock.Update()
	e.lastTime = e.clock.Elapsed()

	for e.isRunning {
		if ctx.Err() != nil {
			core.LogInfo("context cancelled, shutting down.")
			break
		}
		if !e.window.PumpMessages() {
			e.isRunning = false
			break
		}

		e.pollConfig()
		core.EventProcess()
		if !e.isRunning || e.isSuspended {
			continue
		}

		// Update clock and get delta time.
		e.clock.Update()
		currentTime := e.clock.Elapsed()
		delta := currentTime - e.lastTime

		if err := e.frame(delta); err != nil {
			e.isRunning = false
			return err
		}

		e.clock.Update()
		e.metrics.Update(e.clock.Elapsed() - currentTime)
		e.reportFPS()

		// NOTE: Input update/state copying should always be handled
		// after any input should be recorded; I.E. before this line.
		// As a safety, input is the last thing to be updated before
		// this frame ends.
		core.InputUpdate()

		// Update last time
		e.lastTime = currentTime
	}
	return nil
}

func (e *Engine) frame(delta float64) error {
	if err := e.gameInstance.FnUpdate(delta); err != nil {
		core.LogError("Game update failed, shutting down: %s", err)
		return err
	}

	packet := metadata.NewRenderPacket(delta, e.width, e.height)
	// Call the game's render routine.
	if err := e.gameInstance.FnRender(packet, delta); err != nil {
		core.LogError("Game render failed, shutting down: %s", err)
		return err
	}

	if err := e.renderer.DrawFrame(packet); err != nil {
		core.LogError("Draw frame failed, shutting down: %s", err)
		return err
	}
	return nil
}

func (e *Engine) reportFPS() {
	fps, frameTime := e.metrics.Frame()
	if fps == e.lastFPS {
		return
	}
	e.lastFPS = fps
	e.window.SetTitle(fmt.Sprintf("%s - %.0f fps (%.2f ms)", e.gameInstance.ApplicationConfig.Name, fps, frameTime))
}

func (e *Engine) Shutdown() error {
	e.currentStage = EngineStageShuttingDown
	if e.watcher != nil {
		e.stopWatcher()
		if err := e.watcher.Close(); err != nil {
			core.LogWarn(err.Error())
		}
		e.watcher = nil
	}
	if e.gameInstance.FnShutdown != nil {
		if err := e.gameInstance.FnShutdown(); err != nil {
			core.LogError(err.Error())
		}
	}
	if err := e.renderer.Shutdown(); err != nil {
		return err
	}
	if err := core.EventShutdown(); err != nil {
		return err
	}
	if err := core.InputShutdown(); err != nil {
		return err
	}
	if err := e.window.Shutdown(); err != nil {
		return err
	}
	e.currentStage = EngineStageUninitialized
	return nil
}

// GetFramebufferSize returns the width and height (in this order)
// of the application Framebuffer
func (e *Engine) GetFramebufferSize() (uint32, uint32) {
	return e.width, e.height
}

func (e *Engine) onEvent(context core.EventContext, listener interface{}) bool {
	switch context.Type {
	case core.EVENT_CODE_APPLICATION_QUIT:
		core.LogInfo("EVENT_CODE_APPLICATION_QUIT received, shutting down.")
		e.isRunning = false
		return true
	}
	return false
}

func (e *Engine) onKey(context core.EventContext, listener interface{}) bool {
	ke, ok := context.Data.(*core.KeyEvent)
	if !ok {
		core.LogError("wrong event associated with the event type `%d`", context.Type)
		return false
	}

	switch ke.KeyCode {
	case core.KEY_ESCAPE:
		// NOTE: Technically firing an event to itself, but there may be other listeners.
		core.EventFire(core.EventContext{Type: core.EVENT_CODE_APPLICATION_QUIT})
		// Block anything else from processing this.
		return true
	case core.KEY_R:
		core.LogDebug("camera reset requested")
		core.EventFire(core.EventContext{Type: core.EVENT_CODE_CAMERA_RESET})
		return true
	}
	return false
}

func (e *Engine) onResized(context core.EventContext, listener interface{}) bool {
	se, ok := context.Data.(*core.ResizeEvent)
	if !ok {
		core.LogError("wrong event associated with the event type `%d`", context.Type)
		return false
	}

	width := se.Width
	height := se.Height

	// Check if different. If so, trigger a resize event.
	if width == e.width && height == e.height {
		return false
	}
	e.width = width
	e.height = height
	core.LogDebug("Window resize: %d, %d", width, height)

	if err := e.renderer.OnResize(width, height); err != nil {
		core.LogError(err.Error())
	}

	// Handle minimization
	if width == 0 || height == 0 {
		core.LogInfo("Window minimized, suspending application.")
		e.isSuspended = true
		return true
	}
	if e.isSuspended {
		core.LogInfo("Window restored, resuming application.")
		e.isSuspended = false
		// no frame was timed while suspended
		e.clock.Update()
		e.lastTime = e.clock.Elapsed()
	}
	if err := e.gameInstance.FnOnResize(width, height); err != nil {
		core.LogError(err.Error())
	}
	return false
}

func (e *Engine) onConfigReloaded(context core.EventContext, listener interface{}) bool {
	cfg, ok := context.Data.(*config.Config)
	if !ok {
		core.LogError("wrong event associated with the event type `%d`", context.Type)
		return false
	}
	if cfg.LogLevel != "" {
		if err := core.SetLogLevel(cfg.LogLevel); err != nil {
			core.LogWarn(err.Error())
		}
	}
	core.LogInfo("configuration reloaded")
	if e.gameInstance.FnOnConfigChanged != nil {
		if err := e.gameInstance.FnOnConfigChanged(cfg); err != nil {
			core.LogError("failed to apply the new configuration: %s", err)
		}
	}
	return false
}
