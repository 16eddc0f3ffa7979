// Package logging provides the op/go-logging-backed implementation of
// core.Logger used by the renderer and loader.
package logging

import (
	"io"
	"os"

	"github.com/op/go-logging"

	"github.com/jpeterson-dev/wray/pkg/core"
)

// Level mirrors the subset of go-logging severities the CLI exposes.
type Level logging.Level

const (
	Debug Level = iota
	Info
	Notice
	Warning
	Error
)

var format = logging.MustStringFormatter(
	`%{color}[%{time:15:04:05.000}] [%{module}] [%{level}]%{color:reset} %{message}`,
)

var leveledBackend logging.LeveledBackend

// wrapper adapts a *logging.Logger to core.Logger, which only needs a
// single Printf-shaped method.
type wrapper struct {
	*logging.Logger
}

func (w wrapper) Printf(format string, args ...interface{}) {
	w.Logger.Infof(format, args...)
}

// New creates a named core.Logger.
func New(name string) core.Logger {
	return wrapper{logging.MustGetLogger(name)}
}

// SetSink overrides the backend output sink.
func SetSink(sink io.Writer) {
	backend := logging.NewLogBackend(sink, "", 0)
	backendWithFormatter := logging.NewBackendFormatter(backend, format)
	leveledBackend = logging.AddModuleLevel(backendWithFormatter)
	leveledBackend.SetLevel(logging.INFO, "")
	logging.SetBackend(leveledBackend)
}

// SetLevel sets logger verbosity.
func SetLevel(level Level) {
	var loggerLevel logging.Level
	switch level {
	case Debug:
		loggerLevel = logging.DEBUG
	case Info:
		loggerLevel = logging.INFO
	case Notice:
		loggerLevel = logging.NOTICE
	case Warning:
		loggerLevel = logging.WARNING
	case Error:
		loggerLevel = logging.ERROR
	}
	leveledBackend.SetLevel(loggerLevel, "")
}

func init() {
	SetSink(os.Stdout)
	SetLevel(Notice)
}
