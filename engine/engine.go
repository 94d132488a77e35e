package engine

import (
	"fmt"
	"time"

	"github.com/spaghettifunk/ombra/engine/canvas"
	"github.com/spaghettifunk/ombra/engine/core"
	"github.com/spaghettifunk/ombra/engine/systems"
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

/**
 * @brief The cooperative main loop.
 *
 * The engine runs everything on one goroutine: per frame it drains queued
 * texture reloads, steps animations, calls the game's update callback and
 * hands the off-screen backbuffer to the game's render callback. Background
 * goroutines (asset watcher, preload workers) only ever enqueue work that
 * this loop picks up.
 */
type Engine struct {
	currentStage  Stage
	gameInstance  *Game
	isRunning     bool
	isSuspended   bool
	systemManager *systems.SystemManager
	backbuffer    *canvas.Buffer
	width         uint32
	height        uint32
	clock         *core.Clock
	metrics       *core.Metrics
	lastTime      float64
}

func New(g *Game) (*Engine, error) {
	if g == nil || g.ApplicationConfig == nil {
		return nil, fmt.Errorf("func New - game with an application config is required")
	}
	config := g.ApplicationConfig

	core.SetLogLevel(config.logLevel())

	sm, err := systems.NewSystemManager(&systems.SystemManagerConfig{
		AssetBasePath:   config.AssetBasePath,
		MaxTextureCount: config.MaxTextureCount,
		WorkerCount:     config.WorkerCount,
	})
	if err != nil {
		core.LogError(err.Error())
		return nil, err
	}
	g.SystemManager = sm

	return &Engine{
		currentStage:  EngineStageUninitialized,
		gameInstance:  g,
		systemManager: sm,
		backbuffer:    canvas.NewBuffer(config.StartWidth, config.StartHeight),
		width:         config.StartWidth,
		height:        config.StartHeight,
		clock:         core.NewClock(),
		metrics:       core.NewMetrics(),
	}, nil
}

func (e *Engine) Initialize() error {
	e.currentStage = EngineStageInitializing

	core.EventInitialize()
	core.EventRegister(core.EVENT_CODE_APPLICATION_QUIT, e, e.onQuit)
	core.EventRegister(core.EVENT_CODE_RESIZED, e, e.onResized)

	if e.gameInstance.FnInitialize != nil {
		if err := e.gameInstance.FnInitialize(); err != nil {
			return err
		}
	}

	e.currentStage = EngineStageInitialized
	return nil
}

// Backbuffer exposes the engine-owned off-screen surface games draw into.
func (e *Engine) Backbuffer() *canvas.Buffer {
	return e.backbuffer
}

func (e *Engine) SystemManager() *systems.SystemManager {
	return e.systemManager
}

func (e *Engine) Run() error {
	e.isRunning = true
	e.currentStage = EngineStageRunning

	e.clock.Start()
	e.clock.Update()
	e.lastTime = e.clock.Elapsed()

	targetFrameSeconds := 1.0 / float64(e.gameInstance.ApplicationConfig.TargetFPS)

	for e.isRunning {
		if e.isSuspended {
			time.Sleep(time.Duration(targetFrameSeconds * float64(time.Second)))
			continue
		}

		// Update clock and get delta time.
		e.clock.Update()
		currentTime := e.clock.Elapsed()
		delta := currentTime - e.lastTime
		frameStart := time.Now()

		// Drain queued texture reloads and step animations before the game
		// sees the frame.
		e.systemManager.Update(delta)

		if e.gameInstance.FnUpdate != nil {
			if err := e.gameInstance.FnUpdate(delta); err != nil {
				core.LogError("game update failed, shutting down: %s", err.Error())
				e.isRunning = false
				break
			}
		}

		if e.gameInstance.FnRender != nil {
			if err := e.gameInstance.FnRender(e.backbuffer, delta); err != nil {
				core.LogError("game render failed, shutting down: %s", err.Error())
				e.isRunning = false
				break
			}
		}

		// Figure out how long the frame took and give back what is left.
		frameElapsed := time.Since(frameStart).Seconds()
		e.metrics.Update(frameElapsed)
		if remaining := targetFrameSeconds - frameElapsed; remaining > 0 {
			time.Sleep(time.Duration(remaining * float64(time.Second)))
		}

		e.lastTime = currentTime
	}

	return nil
}

func (e *Engine) Shutdown() error {
	e.currentStage = EngineStageShuttingDown
	e.isRunning = false

	if err := e.systemManager.Shutdown(); err != nil {
		return err
	}
	return core.EventShutdown()
}

// FPS returns the current frames-per-second and average frame time in ms.
func (e *Engine) FPS() (float64, float64) {
	return e.metrics.Frame()
}

func (e *Engine) onQuit(code core.SystemEventCode, sender interface{}, listener interface{}, data core.EventContext) bool {
	core.LogInfo("application quit requested")
	e.isRunning = false
	return true
}

func (e *Engine) onResized(code core.SystemEventCode, sender interface{}, listener interface{}, data core.EventContext) bool {
	width := uint32(data.Data.U16[0])
	height := uint32(data.Data.U16[1])
	if width == e.width && height == e.height {
		return false
	}

	e.width = width
	e.height = height
	e.backbuffer.Resize(width, height)

	if e.gameInstance.FnOnResize != nil {
		if err := e.gameInstance.FnOnResize(width, height); err != nil {
			core.LogError(err.Error())
		}
	}
	return false
}
