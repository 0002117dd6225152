//go:build mage

package main

import (
	"fmt"
	"os"

	"github.com/magefile/mage/mg"
)

type Run mg.Namespace

// Runs the sketch named by $SKETCH, or the one in configs/sketch.toml.
func (Run) Sketch() error {
	args := []string{"run", ".", "-config", "configs/sketch.toml"}
	if name := os.Getenv("SKETCH"); name != "" {
		args = append(args, "-sketch", name)
	}
	fmt.Println("Run sketchbook...")
	if _, err := executeCmd("go", withArgs(args...), withStream()); err != nil {
		return err
	}
	return nil
}

// Lists the sketches that can be run.
func (Run) List() error {
	if _, err := executeCmd("go", withArgs("run", ".", "-list"), withStream()); err != nil {
		return err
	}
	return nil
}
