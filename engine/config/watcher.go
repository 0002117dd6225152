package config

import (
	"context"
	"errors"
	"fmt"
	"path/filepath"
	"sync"

	"github.com/fsnotify/fsnotify"

	"github.com/spaghettifunk/sketchbook/engine/core"
)

var ErrWatcherClosed = errors.New("config watcher already closed")

/**
 * @brief Watches a config file and delivers a freshly loaded Config every
 * time the file is written. Files that fail to load are reported on Errors
 * and the previous config stays in effect.
 */
type Watcher struct {
	path string

	fsnotify *fsnotify.Watcher
	configs  chan *Config
	errors   chan error
	done     chan struct{}

	mutex    sync.Mutex
	isClosed bool
	wg       sync.WaitGroup
}

// NewWatcher watches the directory holding path, since editors often replace
// a file instead of writing it in place.
func NewWatcher(path string) (*Watcher, error) {
	abs, err := filepath.Abs(path)
	if err != nil {
		return nil, err
	}
	fsWatch, err := fsnotify.NewWatcher()
	if err != nil {
		return nil, err
	}
	if err := fsWatch.Add(filepath.Dir(abs)); err != nil {
		fsWatch.Close()
		return nil, fmt.Errorf("watching %s: %w", filepath.Dir(abs), err)
	}
	return &Watcher{
		path:     abs,
		fsnotify: fsWatch,
		configs:  make(chan *Config, 1),
		errors:   make(chan error, 1),
		done:     make(chan struct{}),
	}, nil
}

// Configs delivers reloaded configurations. Only the most recent one is kept
// when the reader falls behind.
func (w *Watcher) Configs() <-chan *Config {
	return w.configs
}

func (w *Watcher) Errors() <-chan error {
	return w.errors
}

// Start runs the watch loop until ctx is cancelled or Close is called.
func (w *Watcher) Start(ctx context.Context) error {
	w.mutex.Lock()
	defer w.mutex.Unlock()
	if w.isClosed {
		return ErrWatcherClosed
	}
	w.wg.Add(1)
	go w.start(ctx)
	return nil
}

func (w *Watcher) start(ctx context.Context) {
	defer w.wg.Done()
	for {
		select {
		case e, ok := <-w.fsnotify.Events:
			if !ok {
				return
			}
			if filepath.Clean(e.Name) != w.path {
				continue
			}
			if e.Op&(fsnotify.Create|fsnotify.Write) != 0 {
				w.reload()
			}

		case err, ok := <-w.fsnotify.Errors:
			if !ok {
				return
			}
			core.LogError("config watcher: %s", err)
			w.sendError(err)

		case <-ctx.Done():
			return

		case <-w.done:
			return
		}
	}
}

func (w *Watcher) reload() {
	cfg, err := Load(w.path)
	if err != nil {
		// a half written file fails to parse; the next write event retries
		core.LogWarn("config %s not reloaded: %s", w.path, err)
		w.sendError(err)
		return
	}
	core.LogDebug("config %s reloaded", w.path)
	for {
		select {
		case w.configs <- cfg:
			return
		default:
		}
		// drop the stale config
		select {
		case <-w.configs:
		default:
		}
	}
}

func (w *Watcher) sendError(err error) {
	select {
	case w.errors <- err:
	default:
	}
}

// Close stops the loop and releases the fsnotify watcher. It is safe to call
// more than once.
func (w *Watcher) Close() error {
	w.mutex.Lock()
	if w.isClosed {
		w.mutex.Unlock()
		return nil
	}
	w.isClosed = true
	close(w.done)
	w.mutex.Unlock()

	w.wg.Wait()
	return w.fsnotify.Close()
}
