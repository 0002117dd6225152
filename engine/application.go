package engine

import (
	"github.com/spaghettifunk/sketchbook/engine/config"
)

type ApplicationConfig struct {
	// Window starting position x axis, if applicable.
	StartPosX int32
	// Window starting position y axis, if applicable.
	StartPosY int32
	// Window starting width, if applicable.
	StartWidth uint32
	// Window starting height, if applicable.
	StartHeight uint32
	// The application name used in windowing, if applicable.
	Name     string
	LogLevel string
	// Config file watched for changes. Empty disables hot reload.
	ConfigPath string
}

// NewApplicationConfig takes the window settings from cfg.
func NewApplicationConfig(cfg *config.Config, configPath string) *ApplicationConfig {
	return &ApplicationConfig{
		StartPosX:   cfg.Window.PosX,
		StartPosY:   cfg.Window.PosY,
		StartWidth:  cfg.Window.Width,
		StartHeight: cfg.Window.Height,
		Name:        cfg.Window.Title,
		LogLevel:    cfg.LogLevel,
		ConfigPath:  configPath,
	}
}
