package core

import (
	"errors"

	"github.com/spaghettifunk/sketchbook/engine/containers"
	"github.com/spaghettifunk/sketchbook/engine/math"
)

var (
	ErrIndexOutOfRange   = math.ErrIndexOutOfRange
	ErrInvalidGeometry   = errors.New("invalid geometry")
	ErrDegenerateCamera  = errors.New("degenerate camera")
	ErrInvalidProjection = errors.New("invalid projection")
	ErrInvalidConfig     = errors.New("invalid configuration")
	ErrUnknownSketch     = errors.New("unknown sketch")
	ErrShaderCompile     = errors.New("shader compilation failed")
	ErrShaderLink        = errors.New("shader program link failed")
	ErrUnknownShader     = errors.New("unknown shader")
	ErrInvalidUniform    = errors.New("invalid uniform")
	ErrQueueFull         = containers.ErrQueueFull
	ErrQueueEmpty        = containers.ErrQueueEmpty
	ErrNotInitialized    = errors.New("subsystem not initialized")
	ErrUnknown           = errors.New("unknown")
)
