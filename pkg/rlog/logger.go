// Package rlog wraps go-logging with the leveled, named-logger interface
// the rest of rayforge uses for ambient diagnostics (BVH build stats,
// worker counts, scene load failures).
package rlog

import (
	"io"
	"os"

	"github.com/op/go-logging"
)

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

// Logger is the leveled logging interface every rayforge package depends
// on instead of the concrete go-logging type.
type Logger interface {
	Debug(v ...interface{})
	Debugf(format string, v ...interface{})

	Notice(v ...interface{})
	Noticef(format string, v ...interface{})

	Info(v ...interface{})
	Infof(format string, v ...interface{})

	Warning(v ...interface{})
	Warningf(format string, v ...interface{})

	Error(v ...interface{})
	Errorf(format string, v ...interface{})
}

// New returns a logger tagged with the given module name.
func New(name string) Logger {
	return logging.MustGetLogger(name)
}

// SetSink redirects all logger output to w.
func SetSink(w io.Writer) {
	backend := logging.NewLogBackend(w, "", 0)
	formatted := logging.NewBackendFormatter(backend, format)
	leveledBackend = logging.AddModuleLevel(formatted)
	leveledBackend.SetLevel(logging.INFO, "")
	logging.SetBackend(leveledBackend)
}

// SetLevel sets the minimum level that reaches the sink.
func SetLevel(level Level) {
	var loggingLevel logging.Level
	switch level {
	case Debug:
		loggingLevel = logging.DEBUG
	case Info:
		loggingLevel = logging.INFO
	case Notice:
		loggingLevel = logging.NOTICE
	case Warning:
		loggingLevel = logging.WARNING
	case Error:
		loggingLevel = logging.ERROR
	}
	leveledBackend.SetLevel(loggingLevel, "")
}

func init() {
	SetSink(os.Stdout)
	SetLevel(Notice)
}
