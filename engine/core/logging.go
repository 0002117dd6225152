package core

import (
	"fmt"
	"io"
	"os"
	"sync"
	"time"

	"github.com/charmbracelet/log"
)

var once sync.Once

type logger struct {
	*log.Logger
}

var singleton *logger

func getLogger() *logger {
	once.Do(
		func() {
			l := log.NewWithOptions(os.Stderr, log.Options{
				ReportCaller:    true,
				ReportTimestamp: true,
				TimeFormat:      time.RFC3339,
				Prefix:          "Sketchbook ✏️ ",
			})
			l.SetLevel(log.InfoLevel)
			// report the caller of LogX, not the wrapper itself
			l.SetCallerOffset(2)
			singleton = &logger{l}
		})
	return singleton
}

func parseLevel(level string) (log.Level, error) {
	lvl, err := log.ParseLevel(level)
	if err != nil {
		return lvl, fmt.Errorf("%w: log level %q", ErrInvalidConfig, level)
	}
	return lvl, nil
}

// ValidLogLevel reports whether level is one SetLogLevel accepts.
func ValidLogLevel(level string) error {
	_, err := parseLevel(level)
	return err
}

// SetLogLevel accepts debug, info, warn, error or fatal.
func SetLogLevel(level string) error {
	lvl, err := parseLevel(level)
	if err != nil {
		return err
	}
	getLogger().SetLevel(lvl)
	return nil
}

// LogLevel returns the current level name.
func LogLevel() string {
	return getLogger().GetLevel().String()
}

// SetLogOutput redirects every log line to w.
func SetLogOutput(w io.Writer) {
	getLogger().SetOutput(w)
}

func LogDebug(msg string, args ...interface{}) {
	getLogger().Debugf(msg, args...)
}

func LogInfo(msg string, args ...interface{}) {
	getLogger().Infof(msg, args...)
}

func LogWarn(msg string, args ...interface{}) {
	getLogger().Warnf(msg, args...)
}

func LogError(msg string, args ...interface{}) {
	getLogger().Errorf(msg, args...)
}

func LogFatal(msg string, args ...interface{}) {
	getLogger().Fatalf(msg, args...)
}
