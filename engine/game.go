package engine

import (
	"github.com/spaghettifunk/sketchbook/engine/config"
	"github.com/spaghettifunk/sketchbook/engine/renderer/metadata"
)

type Game struct {
	ApplicationConfig *ApplicationConfig
	State             interface{}
	FnInitialize      Initialize
	FnUpdate          Update
	FnRender          Render
	FnOnResize        OnResize
	FnOnConfigChanged OnConfigChanged
	FnShutdown        Shutdown
}

type Initialize func() error
type Update func(deltaTime float64) error
type Render func(packet *metadata.RenderPacket, deltaTime float64) error
type OnResize func(width uint32, height uint32) error
type OnConfigChanged func(cfg *config.Config) error
type Shutdown func() error
