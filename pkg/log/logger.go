// Package log provides named, levelled loggers backed by go-logging.
// Loggers satisfy core.Logger and can be passed straight to the renderer.
package log

import (
	"io"
	"os"

	"github.com/op/go-logging"
)

// Level is a logging verbosity
type Level int

// Levels accepted by SetLevel, from most to least verbose
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

// plainFormat drops colour codes for sinks that are not terminals
var plainFormat = logging.MustStringFormatter(
	`[%{time:15:04:05.000}] [%{module}] [%{level}] %{message}`,
)

var leveledBackend logging.LeveledBackend

// Logger is a named logger
type Logger interface {
	Debugf(format string, v ...interface{})
	Infof(format string, v ...interface{})
	Noticef(format string, v ...interface{})
	Warningf(format string, v ...interface{})
	Errorf(format string, v ...interface{})
}

// New creates a named logger
func New(name string) Logger {
	return logging.MustGetLogger(name)
}

// SetSink redirects all loggers to sink. Colour codes are only written
// to os.Stdout and os.Stderr. The level is reset to Notice.
func SetSink(sink io.Writer) {
	f := plainFormat
	if sink == os.Stdout || sink == os.Stderr {
		f = format
	}
	backend := logging.NewLogBackend(sink, "", 0)
	leveledBackend = logging.AddModuleLevel(logging.NewBackendFormatter(backend, f))
	logging.SetBackend(leveledBackend)
	SetLevel(Notice)
}

// SetLevel sets the verbosity of every logger
func SetLevel(level Level) {
	loggerLevel := logging.NOTICE
	switch level {
	case Debug:
		loggerLevel = logging.DEBUG
	case Info:
		loggerLevel = logging.INFO
	case Warning:
		loggerLevel = logging.WARNING
	case Error:
		loggerLevel = logging.ERROR
	}
	leveledBackend.SetLevel(loggerLevel, "")
}

func init() {
	SetSink(os.Stderr)
}
