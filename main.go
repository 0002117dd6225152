/*
Sketchbook opens a window and runs one of the sketches on top of the
engine package. The scene is read from a TOML file that is watched for
changes while the sketch runs.
*/
package main

import (
	"context"
	"errors"
	"flag"
	"fmt"
	"io/fs"
	"os"
	"os/signal"
	"syscall"

	"github.com/spaghettifunk/sketchbook/engine"
	"github.com/spaghettifunk/sketchbook/engine/config"
	"github.com/spaghettifunk/sketchbook/engine/core"
	"github.com/spaghettifunk/sketchbook/sketches"
)

func main() {
	configPath := flag.String("config", "configs/sketch.toml", "scene configuration, reloaded on change")
	sketchName := flag.String("sketch", "", "sketch to run, overrides the configuration")
	list := flag.Bool("list", false, "list the available sketches and exit")
	flag.Parse()

	if *list {
		for _, name := range sketches.Names() {
			fmt.Println(name)
		}
		return
	}

	if err := run(*configPath, *sketchName); err != nil {
		core.LogFatal("%s", err)
	}
}

func run(configPath, sketchName string) error {
	cfg, err := config.Load(configPath)
	switch {
	case errors.Is(err, fs.ErrNotExist):
		core.LogWarn("%s not found, using the default scene", configPath)
		cfg = config.Default()
		configPath = ""
	case err != nil:
		return err
	}
	if sketchName == "" {
		sketchName = cfg.Sketch
	}

	game, err := sketches.NewGame(sketchName, cfg, configPath)
	if err != nil {
		return err
	}

	e, err := engine.New(game)
	if err != nil {
		return err
	}
	if err := e.Initialize(); err != nil {
		return err
	}

	// capture sigterm and other system calls
	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGTERM, syscall.SIGINT, syscall.SIGQUIT)
	defer stop()

	runErr := e.Run(ctx)
	if err := e.Shutdown(); err != nil {
		core.LogError(err.Error())
	}
	return runErr
}
